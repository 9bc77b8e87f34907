// Package usecase contains the application use cases orchestrating the
// domain engine, repositories and DTO mapping.
package usecase

import (
	"strings"

	"github.com/maderacraft/furniture-go/internal/domain/entity"
	"github.com/maderacraft/furniture-go/internal/domain/service"
	"github.com/maderacraft/furniture-go/internal/domain/valueobject"
)

// pricingPipeline chains the three pricing stages for one product: resolve
// working dimensions, apply percentage adjustments, evaluate the formula.
// Both quote and layout use cases price through the same pipeline so a
// standalone quote and a placed module can never disagree on price.
type pricingPipeline struct {
	resolver  *service.DimensionResolver
	adjuster  *service.PriceAdjuster
	evaluator *service.FormulaEvaluator
}

func newPricingPipeline() pricingPipeline {
	return pricingPipeline{
		resolver:  service.NewDimensionResolver(),
		adjuster:  service.NewPriceAdjuster(),
		evaluator: service.NewFormulaEvaluator(),
	}
}

// price runs the full pipeline for a product.
//
// Parameters:
//   - product: the product being priced
//   - requested: caller-supplied dimensions, zero axes mean absent
//   - payingCurrency: the instrument the customer pays with
//   - settings: the adjustment settings snapshot
//
// Returns:
//   - service.ResolvedDimensions: the working dimensions and volume
//   - valueobject.Money: the adjusted price before formula evaluation
//   - valueobject.Money: the final unit price
func (p pricingPipeline) price(
	product *entity.Product,
	requested valueobject.Dimensions,
	payingCurrency valueobject.Currency,
	settings valueobject.PriceAdjustmentSettings,
) (service.ResolvedDimensions, valueobject.Money, valueobject.Money) {
	resolved := p.resolver.Resolve(product.Schema, requested)

	adjusted := p.adjuster.Adjust(
		product.ReferencePrice,
		product.SettlementCurrency,
		payingCurrency,
		product.CategoryID,
		settings,
	)

	unit := p.evaluator.Evaluate(product.PricingFormula, resolved.Dimensions, adjusted, product.CategoryID)

	return resolved, adjusted, unit
}

// currencyOrDefault normalizes a currency code, falling back to USD when
// the code is empty.
func currencyOrDefault(code string) valueobject.Currency {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return valueobject.CurrencyUSD
	}
	return valueobject.Currency(code)
}
