package service

import (
	"sort"

	"github.com/google/uuid"
	"github.com/maderacraft/furniture-go/internal/domain/entity"
)

// DefaultWallMountHeightMm is the standard mount height for wall-zone
// modules. Every wall module in a design mounts at the same height.
const DefaultWallMountHeightMm = 1450

// Placement rejection reasons, surfaced verbatim in the validation error
// list. Callers must not persist a draft that produced any of them.
const (
	ReasonWidthInvalid = "width invalid"
	ReasonOverlap      = "overlap detected"
	ReasonNotEligible  = "product not eligible"
)

// ProductConstraints carries the slice of a product the validator needs:
// width bounds, declared depth, and flow eligibility.
type ProductConstraints struct {
	// WidthMinMm and WidthMaxMm bound the adjustable width. For a fixed
	// width product they are equal.
	WidthMinMm float64
	WidthMaxMm float64

	// FixedWidth forces the width regardless of the caller's request.
	FixedWidth bool

	// DepthMm is the product's declared depth.
	DepthMm float64

	// WallMounted selects the wall zone and its locked mount height.
	WallMounted bool

	// ModuleEligible is false for products outside the kitchen-module
	// family; such drafts are rejected outright.
	ModuleEligible bool
}

// ConstraintsForProduct derives placement constraints from a catalog product.
//
// Parameters:
//   - p: the catalog product
//
// Returns:
//   - ProductConstraints: what the validator needs to know about p
func ConstraintsForProduct(p *entity.Product) ProductConstraints {
	return ProductConstraints{
		WidthMinMm:     p.Schema.Width.MinMm,
		WidthMaxMm:     p.Schema.Width.MaxMm,
		FixedWidth:     p.HasFixedWidth(),
		DepthMm:        p.Schema.Depth.Clamp(p.Schema.Depth.Default()),
		WallMounted:    p.WallMounted,
		ModuleEligible: p.IsModuleEligible(),
	}
}

// PlacementDraft is an unvalidated proposal to place a module in a design.
type PlacementDraft struct {
	// ProductID is the catalog product being placed.
	ProductID uuid.UUID

	// PositionY identifies the target row within the zone.
	PositionY float64

	// WidthMm is the requested width; ignored for fixed-width products
	// and defaulted to the product minimum when zero.
	WidthMm float64
}

// PlacementResult is the validator's answer: a normalized geometry when the
// draft is legal, or a non-empty error list when it is not. A rejected draft
// keeps Normalized at its pre-validation value so callers cannot persist a
// half-built geometry by accident.
type PlacementResult struct {
	// Errors lists every rejection reason found; empty means valid.
	Errors []string

	// Normalized is the geometry to persist, meaningful only when
	// Errors is empty.
	Normalized entity.ModuleGeometry
}

// OK reports whether the draft passed validation.
func (r PlacementResult) OK() bool {
	return len(r.Errors) == 0
}

// PlacementValidator checks a draft against the product's constraints and the
// modules already placed in the same design, and computes the normalized
// position. Appends auto-pack against the row's right edge; width updates may
// fail rather than cascade-shift neighbours, since the engine never re-flows
// a row on resize.
type PlacementValidator struct {
	wallMountHeightMm float64
}

// NewPlacementValidator creates a PlacementValidator.
//
// Parameters:
//   - wallMountHeightMm: locked mount height for wall modules;
//     zero selects DefaultWallMountHeightMm
//
// Returns:
//   - *PlacementValidator: the configured validator
func NewPlacementValidator(wallMountHeightMm float64) *PlacementValidator {
	if wallMountHeightMm <= 0 {
		wallMountHeightMm = DefaultWallMountHeightMm
	}
	return &PlacementValidator{wallMountHeightMm: wallMountHeightMm}
}

// ValidateAppend validates placing a new module at the end of a row.
//
// The new module's X position is normalized to the right edge of the last
// module in the target row (auto-pack, no gaps); the caller's X is ignored.
//
// Parameters:
//   - draft: the unvalidated placement proposal
//   - constraints: the product's placement constraints
//   - existing: every module already placed in the same design
//
// Returns:
//   - PlacementResult: normalized geometry, or rejection reasons
func (v *PlacementValidator) ValidateAppend(
	draft PlacementDraft,
	constraints ProductConstraints,
	existing []entity.PlacedModule,
) PlacementResult {
	var result PlacementResult

	if !constraints.ModuleEligible {
		result.Errors = append(result.Errors, ReasonNotEligible)
	}

	width, ok := resolveWidth(draft.WidthMm, constraints)
	if !ok {
		result.Errors = append(result.Errors, ReasonWidthInvalid)
	}

	if !result.OK() {
		return result
	}

	zone, mountHeight := v.zoneFor(constraints)
	row := modulesInRow(existing, zone, draft.PositionY)

	positionX := 0.0
	for _, m := range row {
		if edge := m.RightEdge(); edge > positionX {
			positionX = edge
		}
	}

	result.Normalized = entity.ModuleGeometry{
		PositionX:           positionX,
		PositionY:           draft.PositionY,
		WidthMm:             width,
		DepthMm:             constraints.DepthMm,
		Zone:                zone,
		LockedMountHeightMm: mountHeight,
	}
	return result
}

// ValidateResize validates changing an existing module's width in place.
//
// The module keeps its X position. If the widened module would cross its
// immediate right neighbour's left edge the resize is rejected; neighbours
// are never shifted automatically.
//
// Parameters:
//   - target: the module being resized
//   - requestedWidthMm: the new width request
//   - constraints: the product's placement constraints
//   - existing: every module placed in the same design, including target
//
// Returns:
//   - PlacementResult: updated geometry, or rejection reasons with the
//     target's current geometry untouched
func (v *PlacementValidator) ValidateResize(
	target entity.PlacedModule,
	requestedWidthMm float64,
	constraints ProductConstraints,
	existing []entity.PlacedModule,
) PlacementResult {
	result := PlacementResult{Normalized: target.Geometry}

	if !constraints.ModuleEligible {
		result.Errors = append(result.Errors, ReasonNotEligible)
	}

	width, ok := resolveWidth(requestedWidthMm, constraints)
	if !ok {
		result.Errors = append(result.Errors, ReasonWidthInvalid)
	}

	if !result.OK() {
		return result
	}

	row := modulesInRow(existing, target.Geometry.Zone, target.Geometry.PositionY)
	newRightEdge := target.Geometry.PositionX + width
	if neighbour, found := rightNeighbour(row, target); found && newRightEdge > neighbour.Geometry.PositionX {
		result.Errors = append(result.Errors, ReasonOverlap)
		return result
	}

	geometry := target.Geometry
	geometry.WidthMm = width
	result.Normalized = geometry
	return result
}

// zoneFor maps constraints to the zone and its locked mount height.
func (v *PlacementValidator) zoneFor(constraints ProductConstraints) (entity.Zone, float64) {
	if constraints.WallMounted {
		return entity.ZoneWall, v.wallMountHeightMm
	}
	return entity.ZoneFloor, 0
}

// resolveWidth resolves the draft width against the constraints.
//
// A fixed-width product always yields its fixed width. Otherwise a zero
// request defaults to the product minimum, and a request outside
// [WidthMinMm, WidthMaxMm] or non-positive is invalid.
func resolveWidth(requested float64, constraints ProductConstraints) (float64, bool) {
	if constraints.FixedWidth {
		if constraints.WidthMinMm <= 0 {
			return 0, false
		}
		return constraints.WidthMinMm, true
	}
	if requested == 0 {
		requested = constraints.WidthMinMm
	}
	if requested <= 0 || requested < constraints.WidthMinMm || requested > constraints.WidthMaxMm {
		return 0, false
	}
	return requested, true
}

// modulesInRow selects the modules sharing a zone and row, sorted by X.
func modulesInRow(existing []entity.PlacedModule, zone entity.Zone, positionY float64) []entity.PlacedModule {
	var row []entity.PlacedModule
	for _, m := range existing {
		if m.Geometry.Zone == zone && m.Geometry.PositionY == positionY {
			row = append(row, m)
		}
	}
	sort.Slice(row, func(i, j int) bool {
		return row[i].Geometry.PositionX < row[j].Geometry.PositionX
	})
	return row
}

// rightNeighbour finds the nearest module to the right of target in its row.
func rightNeighbour(row []entity.PlacedModule, target entity.PlacedModule) (entity.PlacedModule, bool) {
	var nearest entity.PlacedModule
	found := false
	for _, m := range row {
		if m.ID == target.ID {
			continue
		}
		if m.Geometry.PositionX > target.Geometry.PositionX {
			if !found || m.Geometry.PositionX < nearest.Geometry.PositionX {
				nearest = m
				found = true
			}
		}
	}
	return nearest, found
}
