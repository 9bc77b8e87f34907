package service

import (
	"github.com/maderacraft/furniture-go/internal/domain/entity"
	"github.com/maderacraft/furniture-go/internal/domain/valueobject"
)

// DesignTotals is the pure aggregate over a design's placed modules.
// Recomputed in full after every mutation, never edited independently.
type DesignTotals struct {
	// Subtotal is the sum of every placed module's unit price.
	Subtotal valueobject.Money `json:"subtotal"`

	// Total is the amount the customer pays. Currently equal to the
	// subtotal; taxes and delivery are priced by external collaborators.
	Total valueobject.Money `json:"total"`
}

// BudgetAggregator folds placed module prices into design totals. It carries
// no state and caches nothing: a full recompute on every call keeps the
// totals consistent with the module set that produced them.
type BudgetAggregator struct{}

// NewBudgetAggregator creates a new BudgetAggregator.
func NewBudgetAggregator() *BudgetAggregator {
	return &BudgetAggregator{}
}

// Aggregate sums the unit prices of the given modules.
//
// Parameters:
//   - modules: the design's currently placed modules
//
// Returns:
//   - DesignTotals: subtotal and total in USD; zero for an empty design
func (a *BudgetAggregator) Aggregate(modules []entity.PlacedModule) DesignTotals {
	var cents int64
	for _, m := range modules {
		cents += m.UnitPrice.Amount
	}
	subtotal := valueobject.NewMoney(cents, valueobject.CurrencyUSD)
	return DesignTotals{
		Subtotal: subtotal,
		Total:    subtotal,
	}
}
