// Package entity contains the core bussiness entities of the domain layer.
package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/maderacraft/furniture-go/internal/domain/valueobject"
)

// Placed module errors.
var (
	ErrInvalidModuleWidth = errors.New("module width must be positive")
	ErrInvalidUnitPrice   = errors.New("module unit price must be positive")
)

// Zone identifies the mounting zone of a placed module.
// Wall modules share one locked mount height; floor modules sit at zero.
type Zone string

const (
	ZoneFloor Zone = "FLOOR" // Base cabinets, islands
	ZoneWall  Zone = "WALL"  // Wall-hung cabinets at the locked mount height
)

// ModuleGeometry is the normalized output of placement validation: the only
// legal source of a placed module's position and size.
type ModuleGeometry struct {
	// PositionX is the left edge offset along the row in millimeters
	PositionX float64 `json:"position_x"`

	// PositionY identifies the row within the zone
	PositionY float64 `json:"position_y"`

	// WidthMm is the resolved module width in millimeters
	WidthMm float64 `json:"width_mm"`

	// DepthMm is the module depth in millimeters
	DepthMm float64 `json:"depth_mm"`

	// Zone is the mounting zone
	Zone Zone `json:"zone"`

	// LockedMountHeightMm is the fixed vertical offset; zero for floor modules
	LockedMountHeightMm float64 `json:"locked_mount_height_mm"`
}

// RightEdge returns the X coordinate of the geometry's right edge.
func (g ModuleGeometry) RightEdge() float64 {
	return g.PositionX + g.WidthMm
}

// PlacedModule is one discrete module placed in a design layout. It is owned
// by exactly one design and is created only from validator-normalized
// geometry, never from raw caller input.
type PlacedModule struct {
	// ID is the unique identifier for the placed module
	ID uuid.UUID `json:"id"`

	// DesignID is the owning kitchen project or furniture configuration
	DesignID uuid.UUID `json:"design_id"`

	// ProductID is the module's catalog product
	ProductID uuid.UUID `json:"product_id"`

	// Geometry is the normalized position and size
	Geometry ModuleGeometry `json:"geometry"`

	// UnitPrice is the computed price for this module in USD
	UnitPrice valueobject.Money `json:"unit_price"`

	// CreatedAt is the timestamp when the module was placed
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp when the module was last changed
	UpdatedAt time.Time `json:"updated_at"`
}

// NewPlacedModule creates a placed module from validator output.
//
// Parameters:
//   - designID: the owning design
//   - productID: the catalog product being placed
//   - geometry: normalized geometry from the placement validator
//   - unitPrice: computed unit price in USD (must be positive)
//
// Returns:
//   - *PlacedModule: the created module
//   - error: validation error if geometry or price is invalid
func NewPlacedModule(
	designID, productID uuid.UUID,
	geometry ModuleGeometry,
	unitPrice valueobject.Money,
) (*PlacedModule, error) {
	if geometry.WidthMm <= 0 {
		return nil, ErrInvalidModuleWidth
	}
	if !unitPrice.IsPositive() {
		return nil, ErrInvalidUnitPrice
	}

	now := time.Now().UTC()

	return &PlacedModule{
		ID:        uuid.New(),
		DesignID:  designID,
		ProductID: productID,
		Geometry:  geometry,
		UnitPrice: unitPrice,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// ApplyResize replaces the module geometry and price after a successful
// width revalidation.
//
// Parameters:
//   - geometry: new normalized geometry
//   - unitPrice: recomputed unit price
//
// Returns:
//   - error: validation error if geometry or price is invalid
func (m *PlacedModule) ApplyResize(geometry ModuleGeometry, unitPrice valueobject.Money) error {
	if geometry.WidthMm <= 0 {
		return ErrInvalidModuleWidth
	}
	if !unitPrice.IsPositive() {
		return ErrInvalidUnitPrice
	}
	m.Geometry = geometry
	m.UnitPrice = unitPrice
	m.UpdatedAt = time.Now().UTC()
	return nil
}

// RightEdge returns the X coordinate of the module's right edge.
func (m *PlacedModule) RightEdge() float64 {
	return m.Geometry.RightEdge()
}
