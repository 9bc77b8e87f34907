package dto

import (
	"github.com/maderacraft/furniture-go/internal/domain/entity"
	"github.com/maderacraft/furniture-go/internal/domain/valueobject"
)

// AxisRangeDTO represents one dimension axis in API payloads.
type AxisRangeDTO struct {
	// MinMm is the lower bound in millimeters.
	MinMm float64 `json:"min_mm"`

	// MaxMm is the upper bound in millimeters.
	MaxMm float64 `json:"max_mm"`

	// DefaultMm is the value used when the caller supplies none.
	DefaultMm float64 `json:"default_mm"`
}

// DimensionSchemaDTO represents a product's dimension schema in API payloads.
type DimensionSchemaDTO struct {
	// Width is the width axis range.
	Width AxisRangeDTO `json:"width"`

	// Height is the height axis range.
	Height AxisRangeDTO `json:"height"`

	// Depth is the depth axis range.
	Depth AxisRangeDTO `json:"depth"`
}

// ToValueObject converts the schema DTO to its domain value object.
func (d DimensionSchemaDTO) ToValueObject() valueobject.DimensionSchema {
	toRange := func(a AxisRangeDTO) valueobject.AxisRange {
		return valueobject.AxisRange{MinMm: a.MinMm, MaxMm: a.MaxMm, DefaultMm: a.DefaultMm}
	}
	return valueobject.DimensionSchema{
		Width:  toRange(d.Width),
		Height: toRange(d.Height),
		Depth:  toRange(d.Depth),
	}
}

// CreateProductRequest represents a request to register a parametric product.
type CreateProductRequest struct {
	// Name is the display name of the product.
	Name string `json:"name"`

	// SKU is the unique stock keeping unit.
	SKU string `json:"sku"`

	// Family is the product family: custom_furniture, kitchen_module or catalog.
	Family string `json:"family"`

	// CategoryID is the optional pricing category.
	CategoryID string `json:"category_id"`

	// SettlementCurrency is the supplier's invoicing currency.
	SettlementCurrency string `json:"settlement_currency"`

	// ReferencePriceUsd is the baseline price in USD.
	ReferencePriceUsd float64 `json:"reference_price_usd"`

	// Schema defines the dimension ranges in millimeters.
	Schema DimensionSchemaDTO `json:"schema"`

	// PricingFormula is the optional per-product pricing expression.
	PricingFormula string `json:"pricing_formula"`

	// WallMounted marks the product as wall-zone placed.
	WallMounted bool `json:"wall_mounted"`
}

// Validate checks the create product request fields.
//
// Returns:
//   - []ValidationError: The list of validation errors, empty when valid
func (r CreateProductRequest) Validate() []ValidationError {
	var errs []ValidationError

	if r.Name == "" {
		errs = append(errs, ValidationError{Field: "name", Message: "name is required"})
	}
	if r.SKU == "" {
		errs = append(errs, ValidationError{Field: "sku", Message: "sku is required"})
	}
	if r.ReferencePriceUsd <= 0 {
		errs = append(errs, ValidationError{Field: "reference_price_usd", Message: "reference_price_usd must be positive"})
	}

	return errs
}

// ProductResponse represents a product in API responses.
type ProductResponse struct {
	// ID is the unique identifier of the product.
	ID string `json:"id"`

	// Name is the display name of the product.
	Name string `json:"name"`

	// SKU is the unique stock keeping unit.
	SKU string `json:"sku"`

	// Family is the product family.
	Family string `json:"family"`

	// CategoryID is the pricing category, empty for uncategorized.
	CategoryID string `json:"category_id,omitempty"`

	// SettlementCurrency is the supplier's invoicing currency.
	SettlementCurrency string `json:"settlement_currency"`

	// ReferencePriceUsd is the baseline price in USD.
	ReferencePriceUsd float64 `json:"reference_price_usd"`

	// Schema defines the dimension ranges in millimeters.
	Schema DimensionSchemaDTO `json:"schema"`

	// PricingFormula is the per-product pricing expression, if any.
	PricingFormula string `json:"pricing_formula,omitempty"`

	// WallMounted marks the product as wall-zone placed.
	WallMounted bool `json:"wall_mounted"`

	// ModuleEligible reports whether the product can be placed in designs.
	ModuleEligible bool `json:"module_eligible"`
}

// NewProductResponse maps a product entity to its API representation.
//
// Parameters:
//   - p: The product entity
//
// Returns:
//   - ProductResponse: The populated response
func NewProductResponse(p *entity.Product) ProductResponse {
	toAxis := func(a valueobject.AxisRange) AxisRangeDTO {
		return AxisRangeDTO{MinMm: a.MinMm, MaxMm: a.MaxMm, DefaultMm: a.DefaultMm}
	}

	return ProductResponse{
		ID:                 p.ID.String(),
		Name:               p.Name,
		SKU:                p.SKU,
		Family:             string(p.Family),
		CategoryID:         p.CategoryID,
		SettlementCurrency: string(p.SettlementCurrency),
		ReferencePriceUsd:  p.ReferencePrice.ToFloat(),
		Schema: DimensionSchemaDTO{
			Width:  toAxis(p.Schema.Width),
			Height: toAxis(p.Schema.Height),
			Depth:  toAxis(p.Schema.Depth),
		},
		PricingFormula: p.PricingFormula,
		WallMounted:    p.WallMounted,
		ModuleEligible: p.IsModuleEligible(),
	}
}
