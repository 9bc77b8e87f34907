// Package entity contains the core bussiness entities of the domain layer.
package entity

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/maderacraft/furniture-go/internal/domain/valueobject"
)

// Product errors define domain-specific error conditions for products.
var (
	ErrInvalidProductName     = errors.New("product name cannot be empty")
	ErrInvalidProductSKU      = errors.New("product SKU cannot be empty")
	ErrInvalidReferencePrice  = errors.New("product reference price must be positive")
	ErrInvalidDimensionSchema = errors.New("product dimension schema is invalid")
)

// ProductFamily classifies what a product can be used for.
type ProductFamily string

const (
	FamilyCustomFurniture ProductFamily = "custom_furniture" // Parametric one-off pieces
	FamilyKitchenModule   ProductFamily = "kitchen_module"   // Discrete modules for the kitchen designer
	FamilyCatalog         ProductFamily = "catalog"          // Fixed catalog items, no configurator
)

// Product is a configurable furniture product: a declared dimension schema,
// a reference price, and an optional per-product pricing formula that makes
// the final price dimension-sensitive.
type Product struct {
	// ID is the unique identifier for the product
	ID uuid.UUID `json:"id"`

	// Name is the name of the product
	Name string `json:"name"`

	// SKU is the stock keeping unit identifier
	SKU string `json:"sku"`

	// CategoryID classifies the product for category surcharges.
	// Empty means uncategorized (no category adjustment applies).
	CategoryID string `json:"category_id,omitempty"`

	// Family determines which design flows accept the product
	Family ProductFamily `json:"family"`

	// SettlementCurrency is the currency the supplier invoices in
	SettlementCurrency valueobject.Currency `json:"settlement_currency"`

	// ReferencePrice is the schema baseline price in USD
	ReferencePrice valueobject.Money `json:"reference_price"`

	// Schema declares the adjustable dimension ranges in millimeters
	Schema valueobject.DimensionSchema `json:"schema"`

	// PricingFormula is an optional expression over the working dimensions.
	// Empty means "use the adjusted reference price unmodified".
	PricingFormula string `json:"pricing_formula,omitempty"`

	// WallMounted places kitchen modules of this product in the wall zone
	WallMounted bool `json:"wall_mounted"`

	// CreatedAt is the timestamp when the product was created
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the timestamp when the product was last updated
	UpdatedAt time.Time `json:"updated_at"`

	// Version is used for optimistic locking
	Version int `json:"version"`
}

// NewProduct creates a new Product entity with the provided details.
// It validates the input and derives sane defaults.
//
// Parameters:
//   - name: Name of the product (required)
//   - sku: Stock Keeping Unit identifier (required, must be unique)
//   - family: Product family governing design-flow eligibility
//   - referencePrice: Baseline USD price (must be positive)
//   - schema: Dimension ranges in millimeters (must be valid)
//
// Returns:
//   - *Product: newly created Product
//   - error: Validation error if input is invalid
func NewProduct(
	name, sku string,
	family ProductFamily,
	referencePrice valueobject.Money,
	schema valueobject.DimensionSchema,
) (*Product, error) {
	if name == "" {
		return nil, ErrInvalidProductName
	}
	if sku == "" {
		return nil, ErrInvalidProductSKU
	}
	if !referencePrice.IsPositive() {
		return nil, ErrInvalidReferencePrice
	}
	if err := schema.Validate(); err != nil {
		return nil, errors.Join(ErrInvalidDimensionSchema, err)
	}

	now := time.Now().UTC()

	return &Product{
		ID:                 uuid.New(),
		Name:               name,
		SKU:                sku,
		Family:             family,
		SettlementCurrency: valueobject.CurrencyUSD,
		ReferencePrice:     referencePrice,
		Schema:             schema,
		CreatedAt:          now,
		UpdatedAt:          now,
		Version:            1,
	}, nil
}

// SetPricingFormula attaches or clears the per-product pricing formula.
// The formula is validated lazily at evaluation time; a broken formula
// degrades to the adjusted reference price rather than blocking orders.
//
// Parameters:
//   - formula: expression string, or empty to clear
func (p *Product) SetPricingFormula(formula string) {
	p.PricingFormula = formula
	p.UpdatedAt = time.Now().UTC()
}

// SetCategory assigns the product to a pricing category.
//
// Parameters:
//   - categoryID: category identifier, or empty to uncategorize
func (p *Product) SetCategory(categoryID string) {
	p.CategoryID = categoryID
	p.UpdatedAt = time.Now().UTC()
}

// SetSettlementCurrency updates the supplier settlement currency.
//
// Parameters:
//   - currency: the settlement currency code
func (p *Product) SetSettlementCurrency(currency valueobject.Currency) {
	p.SettlementCurrency = currency
	p.UpdatedAt = time.Now().UTC()
}

// SetSchema replaces the dimension schema after validating it.
//
// Parameters:
//   - schema: new dimension ranges
//
// Returns:
//   - error: ErrInvalidDimensionSchema if the schema is invalid
func (p *Product) SetSchema(schema valueobject.DimensionSchema) error {
	if err := schema.Validate(); err != nil {
		return errors.Join(ErrInvalidDimensionSchema, err)
	}
	p.Schema = schema
	p.UpdatedAt = time.Now().UTC()
	return nil
}

// IsModuleEligible checks if the product may be placed in a kitchen layout.
//
// Returns:
//   - bool: true for kitchen-module family products
func (p *Product) IsModuleEligible() bool {
	return p.Family == FamilyKitchenModule
}

// HasFixedWidth checks if the width axis is non-adjustable.
func (p *Product) HasFixedWidth() bool {
	return p.Schema.Width.IsFixed()
}
