package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/maderacraft/furniture-go/internal/application/dto"
	"github.com/maderacraft/furniture-go/internal/application/usecase"
	"github.com/maderacraft/furniture-go/internal/domain/entity"
	"github.com/maderacraft/furniture-go/internal/domain/repository"
)

// ProductHandler exposes catalog management endpoints.
type ProductHandler struct {
	catalog *usecase.CatalogService
}

// NewProductHandler creates a new product handler.
//
// Parameters:
//   - catalog: the catalog service
//
// Returns:
//   - *ProductHandler: the created handler
func NewProductHandler(catalog *usecase.CatalogService) *ProductHandler {
	return &ProductHandler{catalog: catalog}
}

// Routes mounts the product endpoints on a router.
//
// Returns:
//   - chi.Router: router with product routes
func (h *ProductHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Create)
	r.Get("/", h.List)
	r.Get("/{productID}", h.Get)
	return r
}

// Create handles POST /v1/products.
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req dto.CreateProductRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		respondValidation(w, r, errs)
		return
	}

	resp, err := h.catalog.RegisterProduct(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondOK(w, r, http.StatusCreated, resp)
}

// Get handles GET /v1/products/{productID}.
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	resp, err := h.catalog.GetProduct(r.Context(), chi.URLParam(r, "productID"))
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondOK(w, r, http.StatusOK, resp)
}

// List handles GET /v1/products with optional category, family, search
// and pagination query parameters.
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := repository.ProductFilter{
		CategoryID: query.Get("category_id"),
		Family:     entity.ProductFamily(query.Get("family")),
		SearchTerm: query.Get("search"),
	}
	if limit, err := strconv.Atoi(query.Get("limit")); err == nil {
		filter.Limit = limit
	}
	if offset, err := strconv.Atoi(query.Get("offset")); err == nil {
		filter.Offset = offset
	}

	resp, err := h.catalog.ListProducts(r.Context(), filter)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondOK(w, r, http.StatusOK, resp)
}
