package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maderacraft/furniture-go/internal/domain/entity"
	"github.com/maderacraft/furniture-go/internal/domain/valueobject"
)

func baseConstraints() ProductConstraints {
	return ProductConstraints{
		WidthMinMm:     400,
		WidthMaxMm:     1200,
		DepthMm:        580,
		ModuleEligible: true,
	}
}

func placedAt(x, y, width float64, zone entity.Zone) entity.PlacedModule {
	return entity.PlacedModule{
		ID:        uuid.New(),
		DesignID:  uuid.New(),
		ProductID: uuid.New(),
		Geometry: entity.ModuleGeometry{
			PositionX: x,
			PositionY: y,
			WidthMm:   width,
			DepthMm:   580,
			Zone:      zone,
		},
		UnitPrice: valueobject.USD(100),
	}
}

func TestValidateAppend_FirstModuleInRowStartsAtZero(t *testing.T) {
	v := NewPlacementValidator(0)

	result := v.ValidateAppend(PlacementDraft{WidthMm: 600}, baseConstraints(), nil)

	require.True(t, result.OK())
	assert.Equal(t, 0.0, result.Normalized.PositionX)
	assert.Equal(t, 600.0, result.Normalized.WidthMm)
	assert.Equal(t, entity.ZoneFloor, result.Normalized.Zone)
	assert.Equal(t, 0.0, result.Normalized.LockedMountHeightMm)
}

func TestValidateAppend_PacksAgainstRowRightEdge(t *testing.T) {
	v := NewPlacementValidator(0)
	existing := []entity.PlacedModule{
		placedAt(0, 0, 600, entity.ZoneFloor),
		placedAt(600, 0, 450, entity.ZoneFloor),
	}

	result := v.ValidateAppend(PlacementDraft{WidthMm: 800}, baseConstraints(), existing)

	require.True(t, result.OK())
	assert.Equal(t, 1050.0, result.Normalized.PositionX)
}

// Appending N modules sequentially must never overlap, and the final right
// edge must equal the sum of all widths.
func TestValidateAppend_SequentialAppendsNeverOverlap(t *testing.T) {
	v := NewPlacementValidator(0)
	widths := []float64{600, 450, 900, 400, 1200, 550}

	var placed []entity.PlacedModule
	var sum float64
	for _, w := range widths {
		result := v.ValidateAppend(PlacementDraft{WidthMm: w}, baseConstraints(), placed)
		require.True(t, result.OK())

		m, err := entity.NewPlacedModule(uuid.New(), uuid.New(), result.Normalized, valueobject.USD(100))
		require.NoError(t, err)
		placed = append(placed, *m)
		sum += w
	}

	for i := 1; i < len(placed); i++ {
		assert.GreaterOrEqual(t, placed[i].Geometry.PositionX, placed[i-1].RightEdge())
	}
	assert.Equal(t, sum, placed[len(placed)-1].RightEdge())
}

func TestValidateAppend_RowsAndZonesPackIndependently(t *testing.T) {
	v := NewPlacementValidator(0)
	existing := []entity.PlacedModule{
		placedAt(0, 0, 600, entity.ZoneFloor),
		placedAt(0, 0, 900, entity.ZoneWall),
	}

	sameRow := v.ValidateAppend(PlacementDraft{WidthMm: 500}, baseConstraints(), existing)
	otherRow := v.ValidateAppend(PlacementDraft{PositionY: 1, WidthMm: 500}, baseConstraints(), existing)

	require.True(t, sameRow.OK())
	require.True(t, otherRow.OK())
	assert.Equal(t, 600.0, sameRow.Normalized.PositionX, "wall module must not affect the floor row")
	assert.Equal(t, 0.0, otherRow.Normalized.PositionX)
}

func TestValidateAppend_WallProductGetsLockedMountHeight(t *testing.T) {
	v := NewPlacementValidator(0)
	constraints := baseConstraints()
	constraints.WallMounted = true

	result := v.ValidateAppend(PlacementDraft{WidthMm: 600}, constraints, nil)

	require.True(t, result.OK())
	assert.Equal(t, entity.ZoneWall, result.Normalized.Zone)
	assert.Equal(t, float64(DefaultWallMountHeightMm), result.Normalized.LockedMountHeightMm)
}

func TestValidateAppend_RejectsWidthOutsideRange(t *testing.T) {
	tests := []struct {
		name  string
		width float64
	}{
		{"below minimum", 200},
		{"above maximum", 1500},
		{"negative", -600},
	}

	v := NewPlacementValidator(0)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := v.ValidateAppend(PlacementDraft{WidthMm: tt.width}, baseConstraints(), nil)

			assert.Contains(t, result.Errors, ReasonWidthInvalid)
			assert.Equal(t, entity.ModuleGeometry{}, result.Normalized, "rejected drafts keep a zero geometry")
		})
	}
}

func TestValidateAppend_ZeroWidthDefaultsToProductMinimum(t *testing.T) {
	v := NewPlacementValidator(0)

	result := v.ValidateAppend(PlacementDraft{}, baseConstraints(), nil)

	require.True(t, result.OK())
	assert.Equal(t, 400.0, result.Normalized.WidthMm)
}

func TestValidateAppend_FixedWidthIgnoresRequest(t *testing.T) {
	v := NewPlacementValidator(0)
	constraints := ProductConstraints{
		WidthMinMm:     600,
		WidthMaxMm:     600,
		FixedWidth:     true,
		DepthMm:        580,
		ModuleEligible: true,
	}

	result := v.ValidateAppend(PlacementDraft{WidthMm: 1000}, constraints, nil)

	require.True(t, result.OK())
	assert.Equal(t, 600.0, result.Normalized.WidthMm)
}

func TestValidateAppend_RejectsIneligibleProduct(t *testing.T) {
	v := NewPlacementValidator(0)
	constraints := baseConstraints()
	constraints.ModuleEligible = false

	result := v.ValidateAppend(PlacementDraft{WidthMm: 600}, constraints, nil)

	assert.Contains(t, result.Errors, ReasonNotEligible)
}

func TestValidateResize_GrowingIntoNeighbourIsRejected(t *testing.T) {
	v := NewPlacementValidator(0)
	left := placedAt(0, 0, 600, entity.ZoneFloor)
	right := placedAt(600, 0, 450, entity.ZoneFloor)
	existing := []entity.PlacedModule{left, right}

	result := v.ValidateResize(left, 800, baseConstraints(), existing)

	assert.Contains(t, result.Errors, ReasonOverlap)
	assert.Equal(t, left.Geometry, result.Normalized, "rejected resize keeps the current geometry")
}

func TestValidateResize_ShrinkingLeavesAGap(t *testing.T) {
	// Shrinking is always legal: the engine never re-flows neighbours,
	// so the freed space simply stays empty.
	v := NewPlacementValidator(0)
	left := placedAt(0, 0, 600, entity.ZoneFloor)
	right := placedAt(600, 0, 450, entity.ZoneFloor)
	existing := []entity.PlacedModule{left, right}

	result := v.ValidateResize(left, 500, baseConstraints(), existing)

	require.True(t, result.OK())
	assert.Equal(t, 500.0, result.Normalized.WidthMm)
	assert.Equal(t, 0.0, result.Normalized.PositionX)
}

func TestValidateResize_LastModuleMayGrowFreely(t *testing.T) {
	v := NewPlacementValidator(0)
	left := placedAt(0, 0, 600, entity.ZoneFloor)
	right := placedAt(600, 0, 450, entity.ZoneFloor)
	existing := []entity.PlacedModule{left, right}

	result := v.ValidateResize(right, 1100, baseConstraints(), existing)

	require.True(t, result.OK())
	assert.Equal(t, 1100.0, result.Normalized.WidthMm)
	assert.Equal(t, 600.0, result.Normalized.PositionX)
}

func TestValidateResize_OtherRowsDoNotBlockTheResize(t *testing.T) {
	v := NewPlacementValidator(0)
	target := placedAt(0, 0, 600, entity.ZoneFloor)
	wall := placedAt(100, 0, 900, entity.ZoneWall)
	existing := []entity.PlacedModule{target, wall}

	result := v.ValidateResize(target, 1200, baseConstraints(), existing)

	require.True(t, result.OK())
}

func TestValidateResize_RejectsWidthOutsideRange(t *testing.T) {
	v := NewPlacementValidator(0)
	target := placedAt(0, 0, 600, entity.ZoneFloor)

	result := v.ValidateResize(target, 5000, baseConstraints(), []entity.PlacedModule{target})

	assert.Contains(t, result.Errors, ReasonWidthInvalid)
	assert.Equal(t, target.Geometry, result.Normalized)
}
