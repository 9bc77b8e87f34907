package service

import (
	"github.com/maderacraft/furniture-go/internal/domain/valueobject"
)

// PriceAdjuster applies the layered percentage adjustments to a base price in
// a fixed, auditable order: category, settlement currency, global, then the
// dollar-payment discount. Each stage compounds on the previous result and is
// gated by its own enabled flag.
//
// The currency surcharge compares the supplier's settlement currency; the
// payment discount compares the customer's paying instrument. Both are
// explicit parameters so callers cannot confuse the two.
type PriceAdjuster struct{}

// NewPriceAdjuster creates a new PriceAdjuster.
func NewPriceAdjuster() *PriceAdjuster {
	return &PriceAdjuster{}
}

// Adjust computes the adjusted reference price.
//
// The result is never allowed to reach zero or below: any stage that would
// produce a non-positive running value is skipped and the prior value kept.
// Rounding to two decimals happens once, at the end.
//
// Parameters:
//   - basePrice: the product's reference price in USD (must be positive)
//   - settlementCurrency: the supplier's invoicing currency
//   - payingCurrency: the instrument the customer pays with
//   - categoryID: the product's category, empty for uncategorized
//   - settings: immutable adjustment settings snapshot
//
// Returns:
//   - valueobject.Money: adjusted reference price, USD, two decimals
func (a *PriceAdjuster) Adjust(
	basePrice valueobject.Money,
	settlementCurrency valueobject.Currency,
	payingCurrency valueobject.Currency,
	categoryID string,
	settings valueobject.PriceAdjustmentSettings,
) valueobject.Money {
	if !basePrice.IsPositive() {
		return basePrice
	}

	base := basePrice.ToFloat()
	running := base

	// 1. Category surcharge, computed against the base price.
	if pct, ok := settings.CategoryPercent[categoryID]; ok && categoryID != "" {
		running = applyStep(running, base*pct/100)
	}

	// 2. Settlement-currency surcharge, compounding on the running value.
	if settings.CurrencyEnabled {
		if pct, ok := settings.CurrencyPercent[settlementCurrency]; ok {
			running = applyStep(running, running*pct/100)
		}
	}

	// 3. Global surcharge.
	if settings.GlobalEnabled {
		running = applyStep(running, running*settings.GlobalPercent/100)
	}

	// 4. Dollar-payment discount.
	if settings.USDDiscountEnabled && payingCurrency.IsUSDDenominated() {
		running = applyStep(running, -running*settings.USDDiscountPercent/100)
	}

	return valueobject.USD(running)
}

// applyStep adds delta to the running value, skipping the step entirely if it
// would drive the price to zero or below.
func applyStep(running, delta float64) float64 {
	next := running + delta
	if next <= 0 {
		return running
	}
	return next
}
