package dto

import (
	"github.com/maderacraft/furniture-go/internal/domain/entity"
	"github.com/maderacraft/furniture-go/internal/domain/service"
)

// PlaceModuleRequest represents a request to add a module to a design row.
type PlaceModuleRequest struct {
	// ProductID is the unique identifier of the product to place.
	ProductID string `json:"product_id"`

	// PositionY is the vertical row coordinate in millimeters.
	PositionY float64 `json:"position_y"`

	// WidthMm is the requested module width in millimeters. Zero means unspecified.
	WidthMm float64 `json:"width_mm"`

	// HeightMm is the requested module height in millimeters. Zero means unspecified.
	HeightMm float64 `json:"height_mm"`

	// DepthMm is the requested module depth in millimeters. Zero means unspecified.
	DepthMm float64 `json:"depth_mm"`

	// PayingCurrency is the currency the customer intends to pay with.
	PayingCurrency string `json:"paying_currency"`
}

// Validate checks the place module request fields.
//
// Returns:
//   - []ValidationError: The list of validation errors, empty when valid
func (r PlaceModuleRequest) Validate() []ValidationError {
	var errs []ValidationError

	if r.ProductID == "" {
		errs = append(errs, ValidationError{Field: "product_id", Message: "product_id is required"})
	}
	if r.WidthMm < 0 {
		errs = append(errs, ValidationError{Field: "width_mm", Message: "width_mm must not be negative"})
	}

	return errs
}

// ResizeModuleRequest represents a request to resize a placed module.
type ResizeModuleRequest struct {
	// WidthMm is the new module width in millimeters. Zero means unspecified.
	WidthMm float64 `json:"width_mm"`

	// HeightMm is the new module height in millimeters. Zero means unspecified.
	HeightMm float64 `json:"height_mm"`

	// DepthMm is the new module depth in millimeters. Zero means unspecified.
	DepthMm float64 `json:"depth_mm"`

	// PayingCurrency is the currency the customer intends to pay with.
	PayingCurrency string `json:"paying_currency"`
}

// Validate checks the resize module request fields.
//
// Returns:
//   - []ValidationError: The list of validation errors, empty when valid
func (r ResizeModuleRequest) Validate() []ValidationError {
	var errs []ValidationError

	if r.WidthMm < 0 {
		errs = append(errs, ValidationError{Field: "width_mm", Message: "width_mm must not be negative"})
	}

	return errs
}

// ModuleResponse represents a placed module in API responses.
type ModuleResponse struct {
	// ID is the unique identifier of the placed module.
	ID string `json:"id"`

	// DesignID is the design the module belongs to.
	DesignID string `json:"design_id"`

	// ProductID is the product the module was placed from.
	ProductID string `json:"product_id"`

	// PositionX is the horizontal left edge in millimeters.
	PositionX float64 `json:"position_x"`

	// PositionY is the vertical row coordinate in millimeters.
	PositionY float64 `json:"position_y"`

	// WidthMm is the module width in millimeters.
	WidthMm float64 `json:"width_mm"`

	// DepthMm is the module depth in millimeters.
	DepthMm float64 `json:"depth_mm"`

	// Zone is the placement zone, FLOOR or WALL.
	Zone string `json:"zone"`

	// LockedMountHeightMm is the locked mount height for wall modules.
	LockedMountHeightMm float64 `json:"locked_mount_height_mm,omitempty"`

	// UnitPriceUsd is the module unit price in USD.
	UnitPriceUsd float64 `json:"unit_price_usd"`
}

// NewModuleResponse maps a placed module entity to its API representation.
//
// Parameters:
//   - m: The placed module entity
//
// Returns:
//   - ModuleResponse: The populated response
func NewModuleResponse(m *entity.PlacedModule) ModuleResponse {
	return ModuleResponse{
		ID:                  m.ID.String(),
		DesignID:            m.DesignID.String(),
		ProductID:           m.ProductID.String(),
		PositionX:           m.Geometry.PositionX,
		PositionY:           m.Geometry.PositionY,
		WidthMm:             m.Geometry.WidthMm,
		DepthMm:             m.Geometry.DepthMm,
		Zone:                string(m.Geometry.Zone),
		LockedMountHeightMm: m.Geometry.LockedMountHeightMm,
		UnitPriceUsd:        m.UnitPrice.ToFloat(),
	}
}

// TotalsResponse represents aggregated design totals in API responses.
type TotalsResponse struct {
	// DesignID is the design the totals were computed for.
	DesignID string `json:"design_id"`

	// ModuleCount is the number of placed modules in the design.
	ModuleCount int `json:"module_count"`

	// SubtotalUsd is the sum of module unit prices in USD.
	SubtotalUsd float64 `json:"subtotal_usd"`

	// TotalUsd is the final design total in USD.
	TotalUsd float64 `json:"total_usd"`
}

// NewTotalsResponse maps computed design totals to their API representation.
//
// Parameters:
//   - designID: The design identifier
//   - moduleCount: The number of placed modules
//   - totals: The aggregated totals
//
// Returns:
//   - TotalsResponse: The populated response
func NewTotalsResponse(designID string, moduleCount int, totals service.DesignTotals) TotalsResponse {
	return TotalsResponse{
		DesignID:    designID,
		ModuleCount: moduleCount,
		SubtotalUsd: totals.Subtotal.ToFloat(),
		TotalUsd:    totals.Total.ToFloat(),
	}
}
