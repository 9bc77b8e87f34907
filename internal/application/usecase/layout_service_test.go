package usecase

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maderacraft/furniture-go/internal/application/dto"
	"github.com/maderacraft/furniture-go/internal/domain/entity"
	"github.com/maderacraft/furniture-go/internal/domain/repository"
	"github.com/maderacraft/furniture-go/internal/domain/service"
	"github.com/maderacraft/furniture-go/internal/domain/valueobject"
	"github.com/maderacraft/furniture-go/internal/infrastructure/persistance/memory"
)

type layoutFixture struct {
	svc      *LayoutService
	products *memory.ProductRepository
	designID uuid.UUID
}

func newLayoutFixture(t *testing.T, settings valueobject.PriceAdjustmentSettings) layoutFixture {
	t.Helper()

	products := memory.NewProductRepository()
	svc := NewLayoutService(products, memory.NewModuleRepository(), memory.NewSettingsRepository(settings), 0, nil)

	return layoutFixture{
		svc:      svc,
		products: products,
		designID: uuid.New(),
	}
}

func TestLayoutService_FirstModulePlacedAtOrigin(t *testing.T) {
	fx := newLayoutFixture(t, valueobject.PriceAdjustmentSettings{})
	product := seedProduct(t, fx.products, 100)

	resp, err := fx.svc.AddModule(context.Background(), fx.designID, dto.PlaceModuleRequest{
		ProductID: product.ID.String(),
		WidthMm:   600,
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, resp.PositionX)
	assert.Equal(t, 600.0, resp.WidthMm)
	assert.Equal(t, string(entity.ZoneFloor), resp.Zone)
	assert.Equal(t, 100.0, resp.UnitPriceUsd)
}

func TestLayoutService_ModulesPackLeftToRight(t *testing.T) {
	fx := newLayoutFixture(t, valueobject.PriceAdjustmentSettings{})
	product := seedProduct(t, fx.products, 100)

	widths := []float64{600, 450, 900}
	var expectedX float64
	for _, w := range widths {
		resp, err := fx.svc.AddModule(context.Background(), fx.designID, dto.PlaceModuleRequest{
			ProductID: product.ID.String(),
			WidthMm:   w,
		})
		require.NoError(t, err)
		assert.Equal(t, expectedX, resp.PositionX)
		expectedX += w
	}
}

func TestLayoutService_ModulePriceUsesPlacedWidth(t *testing.T) {
	fx := newLayoutFixture(t, valueobject.PriceAdjustmentSettings{})
	product := seedProduct(t, fx.products, 120)
	product.SetPricingFormula("basePriceUsd * (widthMm / 600)")
	require.NoError(t, fx.products.Update(context.Background(), product))

	resp, err := fx.svc.AddModule(context.Background(), fx.designID, dto.PlaceModuleRequest{
		ProductID: product.ID.String(),
		WidthMm:   900,
	})
	require.NoError(t, err)

	assert.Equal(t, 180.0, resp.UnitPriceUsd)
}

func TestLayoutService_IneligibleProductRejected(t *testing.T) {
	fx := newLayoutFixture(t, valueobject.PriceAdjustmentSettings{})

	schema := valueobject.DimensionSchema{
		Width:  valueobject.AxisRange{MinMm: 400, MaxMm: 1200, DefaultMm: 600},
		Height: valueobject.AxisRange{MinMm: 600, MaxMm: 900, DefaultMm: 720},
		Depth:  valueobject.AxisRange{MinMm: 300, MaxMm: 650, DefaultMm: 580},
	}
	sofa, err := entity.NewProduct("Sofa", "SOFA-1", entity.FamilyCustomFurniture, valueobject.USD(500), schema)
	require.NoError(t, err)
	require.NoError(t, fx.products.Create(context.Background(), sofa))

	_, err = fx.svc.AddModule(context.Background(), fx.designID, dto.PlaceModuleRequest{
		ProductID: sofa.ID.String(),
		WidthMm:   600,
	})

	var rejected *PlacementRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Contains(t, rejected.Reasons, service.ReasonNotEligible)
}

func TestLayoutService_OutOfRangeWidthRejected(t *testing.T) {
	fx := newLayoutFixture(t, valueobject.PriceAdjustmentSettings{})
	product := seedProduct(t, fx.products, 100)

	_, err := fx.svc.AddModule(context.Background(), fx.designID, dto.PlaceModuleRequest{
		ProductID: product.ID.String(),
		WidthMm:   5000,
	})

	var rejected *PlacementRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Contains(t, rejected.Reasons, service.ReasonWidthInvalid)

	totals, err := fx.svc.Totals(context.Background(), fx.designID)
	require.NoError(t, err)
	assert.Equal(t, 0, totals.ModuleCount)
}

func TestLayoutService_ResizeIntoNeighbourRejected(t *testing.T) {
	ctx := context.Background()
	fx := newLayoutFixture(t, valueobject.PriceAdjustmentSettings{})
	product := seedProduct(t, fx.products, 100)

	first, err := fx.svc.AddModule(ctx, fx.designID, dto.PlaceModuleRequest{
		ProductID: product.ID.String(),
		WidthMm:   600,
	})
	require.NoError(t, err)

	_, err = fx.svc.AddModule(ctx, fx.designID, dto.PlaceModuleRequest{
		ProductID: product.ID.String(),
		WidthMm:   450,
	})
	require.NoError(t, err)

	firstID := uuid.MustParse(first.ID)
	_, err = fx.svc.ResizeModule(ctx, fx.designID, firstID, dto.ResizeModuleRequest{WidthMm: 800})

	var rejected *PlacementRejectedError
	require.ErrorAs(t, err, &rejected)
	assert.Contains(t, rejected.Reasons, service.ReasonOverlap)
}

func TestLayoutService_ResizeShrinkRecomputesPrice(t *testing.T) {
	ctx := context.Background()
	fx := newLayoutFixture(t, valueobject.PriceAdjustmentSettings{})
	product := seedProduct(t, fx.products, 120)
	product.SetPricingFormula("basePriceUsd * (widthMm / 600)")
	require.NoError(t, fx.products.Update(ctx, product))

	placed, err := fx.svc.AddModule(ctx, fx.designID, dto.PlaceModuleRequest{
		ProductID: product.ID.String(),
		WidthMm:   900,
	})
	require.NoError(t, err)
	require.Equal(t, 180.0, placed.UnitPriceUsd)

	resized, err := fx.svc.ResizeModule(ctx, fx.designID, uuid.MustParse(placed.ID), dto.ResizeModuleRequest{WidthMm: 600})
	require.NoError(t, err)

	assert.Equal(t, 600.0, resized.WidthMm)
	assert.Equal(t, 120.0, resized.UnitPriceUsd)
	assert.Equal(t, placed.PositionX, resized.PositionX)
}

func TestLayoutService_TotalsSumUnitPrices(t *testing.T) {
	ctx := context.Background()
	fx := newLayoutFixture(t, valueobject.PriceAdjustmentSettings{
		GlobalPercent: 10,
		GlobalEnabled: true,
	})
	product := seedProduct(t, fx.products, 100)

	for i := 0; i < 3; i++ {
		_, err := fx.svc.AddModule(ctx, fx.designID, dto.PlaceModuleRequest{
			ProductID: product.ID.String(),
			WidthMm:   600,
		})
		require.NoError(t, err)
	}

	totals, err := fx.svc.Totals(ctx, fx.designID)
	require.NoError(t, err)

	assert.Equal(t, 3, totals.ModuleCount)
	assert.Equal(t, 330.0, totals.SubtotalUsd)
	assert.Equal(t, totals.SubtotalUsd, totals.TotalUsd)
}

func TestLayoutService_RemoveModule(t *testing.T) {
	ctx := context.Background()
	fx := newLayoutFixture(t, valueobject.PriceAdjustmentSettings{})
	product := seedProduct(t, fx.products, 100)

	placed, err := fx.svc.AddModule(ctx, fx.designID, dto.PlaceModuleRequest{
		ProductID: product.ID.String(),
		WidthMm:   600,
	})
	require.NoError(t, err)

	require.NoError(t, fx.svc.RemoveModule(ctx, fx.designID, uuid.MustParse(placed.ID)))

	totals, err := fx.svc.Totals(ctx, fx.designID)
	require.NoError(t, err)
	assert.Equal(t, 0, totals.ModuleCount)

	err = fx.svc.RemoveModule(ctx, fx.designID, uuid.MustParse(placed.ID))
	assert.ErrorIs(t, err, repository.ErrModuleNotFound)
}

func TestLayoutService_WallProductLocksMountHeight(t *testing.T) {
	ctx := context.Background()
	fx := newLayoutFixture(t, valueobject.PriceAdjustmentSettings{})

	schema := valueobject.DimensionSchema{
		Width:  valueobject.AxisRange{MinMm: 400, MaxMm: 1200, DefaultMm: 600},
		Height: valueobject.AxisRange{MinMm: 300, MaxMm: 900, DefaultMm: 720},
		Depth:  valueobject.AxisRange{MinMm: 280, MaxMm: 400, DefaultMm: 330},
	}
	wall, err := entity.NewProduct("Wall Cabinet", "WC-600", entity.FamilyKitchenModule, valueobject.USD(80), schema)
	require.NoError(t, err)
	wall.WallMounted = true
	require.NoError(t, fx.products.Create(ctx, wall))

	resp, err := fx.svc.AddModule(ctx, fx.designID, dto.PlaceModuleRequest{
		ProductID: wall.ID.String(),
		WidthMm:   600,
	})
	require.NoError(t, err)

	assert.Equal(t, string(entity.ZoneWall), resp.Zone)
	assert.Equal(t, float64(service.DefaultWallMountHeightMm), resp.LockedMountHeightMm)
}
