package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/maderacraft/furniture-go/internal/domain/entity"
	"github.com/maderacraft/furniture-go/internal/domain/valueobject"
)

func TestAggregate_EmptyDesignHasZeroTotals(t *testing.T) {
	a := NewBudgetAggregator()

	got := a.Aggregate(nil)

	assert.Equal(t, valueobject.Zero(valueobject.CurrencyUSD), got.Subtotal)
	assert.Equal(t, valueobject.Zero(valueobject.CurrencyUSD), got.Total)
}

func TestAggregate_SingleModuleEqualsItsUnitPrice(t *testing.T) {
	a := NewBudgetAggregator()
	module := placedAt(0, 0, 600, entity.ZoneFloor)
	module.UnitPrice = valueobject.USD(249.99)

	got := a.Aggregate([]entity.PlacedModule{module})

	assert.Equal(t, valueobject.USD(249.99), got.Subtotal)
	assert.Equal(t, valueobject.USD(249.99), got.Total)
}

func TestAggregate_SumsEveryModule(t *testing.T) {
	a := NewBudgetAggregator()

	prices := []float64{120.50, 310, 89.99}
	var modules []entity.PlacedModule
	for i, p := range prices {
		m := placedAt(float64(i)*600, 0, 600, entity.ZoneFloor)
		m.UnitPrice = valueobject.USD(p)
		modules = append(modules, m)
	}

	got := a.Aggregate(modules)

	assert.Equal(t, valueobject.USD(520.49), got.Subtotal)
	assert.Equal(t, got.Subtotal, got.Total)
}
