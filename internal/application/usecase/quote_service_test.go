package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maderacraft/furniture-go/internal/application/dto"
	"github.com/maderacraft/furniture-go/internal/domain/entity"
	"github.com/maderacraft/furniture-go/internal/domain/repository"
	"github.com/maderacraft/furniture-go/internal/domain/valueobject"
	"github.com/maderacraft/furniture-go/internal/infrastructure/persistance/memory"
)

func seedProduct(t *testing.T, products repository.ProductRepository, priceUsd float64) *entity.Product {
	t.Helper()

	schema := valueobject.DimensionSchema{
		Width:  valueobject.AxisRange{MinMm: 400, MaxMm: 1200, DefaultMm: 600},
		Height: valueobject.AxisRange{MinMm: 600, MaxMm: 900, DefaultMm: 720},
		Depth:  valueobject.AxisRange{MinMm: 300, MaxMm: 650, DefaultMm: 580},
	}

	product, err := entity.NewProduct("Base Cabinet", "BC-600", entity.FamilyKitchenModule, valueobject.USD(priceUsd), schema)
	require.NoError(t, err)
	require.NoError(t, products.Create(context.Background(), product))
	return product
}

func newQuoteFixture(t *testing.T, priceUsd float64, settings valueobject.PriceAdjustmentSettings) (*QuoteService, *entity.Product) {
	t.Helper()

	products := memory.NewProductRepository()
	product := seedProduct(t, products, priceUsd)
	svc := NewQuoteService(products, memory.NewSettingsRepository(settings), nil)
	return svc, product
}

func TestQuoteService_NoAdjustmentsReturnsBasePrice(t *testing.T) {
	svc, product := newQuoteFixture(t, 100, valueobject.PriceAdjustmentSettings{})

	resp, err := svc.PriceProduct(context.Background(), dto.QuoteRequest{
		ProductID: product.ID.String(),
	})
	require.NoError(t, err)

	assert.Equal(t, 100.0, resp.UnitPriceUsd)
	assert.Equal(t, 100.0, resp.AdjustedPriceUsd)
	assert.Equal(t, 600.0, resp.WidthMm)
	assert.Equal(t, 720.0, resp.HeightMm)
	assert.Equal(t, 580.0, resp.DepthMm)
	assert.Equal(t, 600.0*720.0*580.0, resp.ReferenceVolumeMm3)
}

func TestQuoteService_GlobalAdjustmentApplied(t *testing.T) {
	svc, product := newQuoteFixture(t, 100, valueobject.PriceAdjustmentSettings{
		GlobalPercent: 10,
		GlobalEnabled: true,
	})

	resp, err := svc.PriceProduct(context.Background(), dto.QuoteRequest{
		ProductID: product.ID.String(),
	})
	require.NoError(t, err)

	assert.Equal(t, 110.0, resp.UnitPriceUsd)
}

func TestQuoteService_FormulaScalesWithWidth(t *testing.T) {
	products := memory.NewProductRepository()
	product := seedProduct(t, products, 120)
	product.SetPricingFormula("basePriceUsd * (widthMm / 600)")
	require.NoError(t, products.Update(context.Background(), product))

	svc := NewQuoteService(products, memory.NewSettingsRepository(valueobject.PriceAdjustmentSettings{}), nil)

	resp, err := svc.PriceProduct(context.Background(), dto.QuoteRequest{
		ProductID: product.ID.String(),
		WidthMm:   900,
	})
	require.NoError(t, err)

	assert.Equal(t, 900.0, resp.WidthMm)
	assert.Equal(t, 180.0, resp.UnitPriceUsd)
}

func TestQuoteService_OutOfRangeDimensionsFallBack(t *testing.T) {
	svc, product := newQuoteFixture(t, 100, valueobject.PriceAdjustmentSettings{})

	resp, err := svc.PriceProduct(context.Background(), dto.QuoteRequest{
		ProductID: product.ID.String(),
		WidthMm:   5000,
		HeightMm:  100,
	})
	require.NoError(t, err)

	assert.Equal(t, 600.0, resp.WidthMm)
	assert.Equal(t, 720.0, resp.HeightMm)
}

func TestQuoteService_USDPaymentDiscount(t *testing.T) {
	svc, product := newQuoteFixture(t, 100, valueobject.PriceAdjustmentSettings{
		USDDiscountPercent: 5,
		USDDiscountEnabled: true,
	})

	cash, err := svc.PriceProduct(context.Background(), dto.QuoteRequest{
		ProductID:      product.ID.String(),
		PayingCurrency: "USD",
	})
	require.NoError(t, err)
	assert.Equal(t, 95.0, cash.UnitPriceUsd)

	bolivar, err := svc.PriceProduct(context.Background(), dto.QuoteRequest{
		ProductID:      product.ID.String(),
		PayingCurrency: "VES",
	})
	require.NoError(t, err)
	assert.Equal(t, 100.0, bolivar.UnitPriceUsd)
}

func TestQuoteService_UnknownProduct(t *testing.T) {
	svc, _ := newQuoteFixture(t, 100, valueobject.PriceAdjustmentSettings{})

	_, err := svc.PriceProduct(context.Background(), dto.QuoteRequest{
		ProductID: "550e8400-e29b-41d4-a716-446655440000",
	})
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestQuoteService_MalformedProductID(t *testing.T) {
	svc, _ := newQuoteFixture(t, 100, valueobject.PriceAdjustmentSettings{})

	_, err := svc.PriceProduct(context.Background(), dto.QuoteRequest{
		ProductID: "not-a-uuid",
	})
	assert.ErrorIs(t, err, repository.ErrInvalidInput)
}
