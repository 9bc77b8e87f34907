package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maderacraft/furniture-go/internal/application/dto"
	"github.com/maderacraft/furniture-go/internal/application/usecase"
	"github.com/maderacraft/furniture-go/internal/domain/valueobject"
	"github.com/maderacraft/furniture-go/internal/infrastructure/persistance/memory"
)

func newTestRouter(t *testing.T, settings valueobject.PriceAdjustmentSettings) chi.Router {
	t.Helper()

	products := memory.NewProductRepository()
	modules := memory.NewModuleRepository()
	settingsRepo := memory.NewSettingsRepository(settings)

	catalog := usecase.NewCatalogService(products, nil)
	quotes := usecase.NewQuoteService(products, settingsRepo, nil)
	layout := usecase.NewLayoutService(products, modules, settingsRepo, 0, nil)

	r := chi.NewRouter()
	r.Route("/v1", func(r chi.Router) {
		r.Mount("/products", NewProductHandler(catalog).Routes())
		r.Mount("/quotes", NewQuoteHandler(quotes).Routes())
		r.Mount("/designs", NewLayoutHandler(layout).Routes())
	})
	return r
}

func doJSON(t *testing.T, router chi.Router, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var envelope dto.APIResponse[T]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.True(t, envelope.Success, "expected success envelope, got: %s", rec.Body.String())
	return envelope.Data
}

func cabinetRequest(sku string) dto.CreateProductRequest {
	return dto.CreateProductRequest{
		Name:              "Base Cabinet",
		SKU:               sku,
		Family:            "kitchen_module",
		ReferencePriceUsd: 100,
		Schema: dto.DimensionSchemaDTO{
			Width:  dto.AxisRangeDTO{MinMm: 400, MaxMm: 1200, DefaultMm: 600},
			Height: dto.AxisRangeDTO{MinMm: 600, MaxMm: 900, DefaultMm: 720},
			Depth:  dto.AxisRangeDTO{MinMm: 300, MaxMm: 650, DefaultMm: 580},
		},
	}
}

func createProduct(t *testing.T, router chi.Router, req dto.CreateProductRequest) dto.ProductResponse {
	t.Helper()

	rec := doJSON(t, router, http.MethodPost, "/v1/products", req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decodeData[dto.ProductResponse](t, rec)
}

func TestProductEndpoints(t *testing.T) {
	router := newTestRouter(t, valueobject.PriceAdjustmentSettings{})

	created := createProduct(t, router, cabinetRequest("BC-600"))
	assert.Equal(t, "BC-600", created.SKU)
	assert.True(t, created.ModuleEligible)

	rec := doJSON(t, router, http.MethodGet, "/v1/products/"+created.ID, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/v1/products?search=cabinet", nil)
	listed := decodeData[[]dto.ProductResponse](t, rec)
	require.Len(t, listed, 1)

	rec = doJSON(t, router, http.MethodPost, "/v1/products", cabinetRequest("BC-600"))
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestProductValidation(t *testing.T) {
	router := newTestRouter(t, valueobject.PriceAdjustmentSettings{})

	req := cabinetRequest("BC-600")
	req.Name = ""
	req.ReferencePriceUsd = 0

	rec := doJSON(t, router, http.MethodPost, "/v1/products", req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var envelope dto.APIResponse[any]
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &envelope))
	require.NotNil(t, envelope.Error)
	assert.Equal(t, "VALIDATION_ERROR", envelope.Error.Code)
	assert.Len(t, envelope.Error.ValidationErrors, 2)
}

func TestQuoteEndpoint(t *testing.T) {
	router := newTestRouter(t, valueobject.PriceAdjustmentSettings{
		GlobalPercent: 10,
		GlobalEnabled: true,
	})
	product := createProduct(t, router, cabinetRequest("BC-600"))

	rec := doJSON(t, router, http.MethodPost, "/v1/quotes", dto.QuoteRequest{
		ProductID: product.ID,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	quote := decodeData[dto.QuoteResponse](t, rec)
	assert.Equal(t, 110.0, quote.UnitPriceUsd)
	assert.Equal(t, 600.0, quote.WidthMm)
}

func TestQuoteUnknownProduct(t *testing.T) {
	router := newTestRouter(t, valueobject.PriceAdjustmentSettings{})

	rec := doJSON(t, router, http.MethodPost, "/v1/quotes", dto.QuoteRequest{
		ProductID: uuid.NewString(),
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDesignLifecycle(t *testing.T) {
	router := newTestRouter(t, valueobject.PriceAdjustmentSettings{})
	product := createProduct(t, router, cabinetRequest("BC-600"))
	designID := uuid.NewString()
	base := fmt.Sprintf("/v1/designs/%s", designID)

	// Place two modules; the second packs to the right of the first
	first := decodeData[dto.ModuleResponse](t, doJSON(t, router, http.MethodPost, base+"/modules", dto.PlaceModuleRequest{
		ProductID: product.ID,
		WidthMm:   600,
	}))
	assert.Equal(t, 0.0, first.PositionX)

	second := decodeData[dto.ModuleResponse](t, doJSON(t, router, http.MethodPost, base+"/modules", dto.PlaceModuleRequest{
		ProductID: product.ID,
		WidthMm:   450,
	}))
	assert.Equal(t, 600.0, second.PositionX)

	// Growing the first module into the second is rejected
	rec := doJSON(t, router, http.MethodPut, base+"/modules/"+first.ID, dto.ResizeModuleRequest{WidthMm: 800})
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	// Shrinking is fine
	rec = doJSON(t, router, http.MethodPut, base+"/modules/"+first.ID, dto.ResizeModuleRequest{WidthMm: 500})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	// Totals reflect both modules
	totals := decodeData[dto.TotalsResponse](t, doJSON(t, router, http.MethodGet, base+"/totals", nil))
	assert.Equal(t, 2, totals.ModuleCount)
	assert.Equal(t, 200.0, totals.SubtotalUsd)

	// Remove one and re-check
	rec = doJSON(t, router, http.MethodDelete, base+"/modules/"+second.ID, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	totals = decodeData[dto.TotalsResponse](t, doJSON(t, router, http.MethodGet, base+"/totals", nil))
	assert.Equal(t, 1, totals.ModuleCount)

	modules := decodeData[[]dto.ModuleResponse](t, doJSON(t, router, http.MethodGet, base+"/modules", nil))
	require.Len(t, modules, 1)
	assert.Equal(t, first.ID, modules[0].ID)
}

func TestDesignMalformedIDs(t *testing.T) {
	router := newTestRouter(t, valueobject.PriceAdjustmentSettings{})

	rec := doJSON(t, router, http.MethodGet, "/v1/designs/not-a-uuid/totals", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodDelete, fmt.Sprintf("/v1/designs/%s/modules/nope", uuid.NewString()), nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
