// Package valueobject contains value objects that represent concepts without identity.
package valueobject

// PriceAdjustmentSettings is the process-wide percentage configuration applied
// on top of a product's reference price. It is loaded fresh from the settings
// store for every pricing call and treated as an immutable snapshot; the
// engine never mutates it.
//
// Absent map entries mean "no adjustment for that key" (0%). Each stage is
// additionally gated by its own enabled flag.
type PriceAdjustmentSettings struct {
	// GlobalPercent is the surcharge applied to every product.
	GlobalPercent float64 `json:"global_percent"`

	// GlobalEnabled gates the global surcharge.
	GlobalEnabled bool `json:"global_enabled"`

	// CurrencyPercent maps a settlement currency to its surcharge.
	CurrencyPercent map[Currency]float64 `json:"currency_percent"`

	// CurrencyEnabled gates the currency surcharge.
	CurrencyEnabled bool `json:"currency_enabled"`

	// CategoryPercent maps a category id to its surcharge. Sparse:
	// categories without an entry get no category adjustment.
	CategoryPercent map[string]float64 `json:"category_percent"`

	// USDDiscountPercent is the discount granted when the customer pays
	// with a dollar-denominated instrument.
	USDDiscountPercent float64 `json:"usd_discount_percent"`

	// USDDiscountEnabled gates the dollar-payment discount.
	USDDiscountEnabled bool `json:"usd_discount_enabled"`
}

// Clone returns a deep copy of the settings so a snapshot handed to the
// engine cannot alias the store's maps.
//
// Returns:
//   - PriceAdjustmentSettings: an independent copy
func (s PriceAdjustmentSettings) Clone() PriceAdjustmentSettings {
	out := s
	if s.CurrencyPercent != nil {
		out.CurrencyPercent = make(map[Currency]float64, len(s.CurrencyPercent))
		for k, v := range s.CurrencyPercent {
			out.CurrencyPercent[k] = v
		}
	}
	if s.CategoryPercent != nil {
		out.CategoryPercent = make(map[string]float64, len(s.CategoryPercent))
		for k, v := range s.CategoryPercent {
			out.CategoryPercent[k] = v
		}
	}
	return out
}
