package dto

import "github.com/maderacraft/furniture-go/internal/domain/valueobject"

// QuoteRequest represents a request to price a parametric product.
type QuoteRequest struct {
	// ProductID is the unique identifier of the product to price.
	ProductID string `json:"product_id"`

	// WidthMm is the requested width in millimeters. Zero means unspecified.
	WidthMm float64 `json:"width_mm"`

	// HeightMm is the requested height in millimeters. Zero means unspecified.
	HeightMm float64 `json:"height_mm"`

	// DepthMm is the requested depth in millimeters. Zero means unspecified.
	DepthMm float64 `json:"depth_mm"`

	// PayingCurrency is the currency the customer intends to pay with.
	PayingCurrency string `json:"paying_currency"`
}

// Validate checks the quote request fields.
//
// Returns:
//   - []ValidationError: The list of validation errors, empty when valid
func (r QuoteRequest) Validate() []ValidationError {
	var errs []ValidationError

	if r.ProductID == "" {
		errs = append(errs, ValidationError{Field: "product_id", Message: "product_id is required"})
	}
	if r.WidthMm < 0 {
		errs = append(errs, ValidationError{Field: "width_mm", Message: "width_mm must not be negative"})
	}
	if r.HeightMm < 0 {
		errs = append(errs, ValidationError{Field: "height_mm", Message: "height_mm must not be negative"})
	}
	if r.DepthMm < 0 {
		errs = append(errs, ValidationError{Field: "depth_mm", Message: "depth_mm must not be negative"})
	}

	return errs
}

// QuoteResponse represents the result of pricing a parametric product.
type QuoteResponse struct {
	// ProductID is the unique identifier of the priced product.
	ProductID string `json:"product_id"`

	// WidthMm is the working width used for pricing, in millimeters.
	WidthMm float64 `json:"width_mm"`

	// HeightMm is the working height used for pricing, in millimeters.
	HeightMm float64 `json:"height_mm"`

	// DepthMm is the working depth used for pricing, in millimeters.
	DepthMm float64 `json:"depth_mm"`

	// ReferenceVolumeMm3 is the working volume in cubic millimeters.
	ReferenceVolumeMm3 float64 `json:"reference_volume_mm3"`

	// AdjustedPriceUsd is the price after percentage adjustments, in USD.
	AdjustedPriceUsd float64 `json:"adjusted_price_usd"`

	// UnitPriceUsd is the final unit price after formula evaluation, in USD.
	UnitPriceUsd float64 `json:"unit_price_usd"`
}

// NewQuoteResponse builds a quote response from engine output.
//
// Parameters:
//   - productID: The priced product identifier
//   - dims: The working dimensions
//   - volumeMm3: The working reference volume
//   - adjusted: The price after percentage adjustments
//   - unit: The final unit price
//
// Returns:
//   - QuoteResponse: The populated response
func NewQuoteResponse(productID string, dims valueobject.Dimensions, volumeMm3 float64, adjusted, unit valueobject.Money) QuoteResponse {
	return QuoteResponse{
		ProductID:          productID,
		WidthMm:            dims.WidthMm,
		HeightMm:           dims.HeightMm,
		DepthMm:            dims.DepthMm,
		ReferenceVolumeMm3: volumeMm3,
		AdjustedPriceUsd:   adjusted.ToFloat(),
		UnitPriceUsd:       unit.ToFloat(),
	}
}
