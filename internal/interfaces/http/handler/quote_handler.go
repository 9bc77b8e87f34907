package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/maderacraft/furniture-go/internal/application/dto"
	"github.com/maderacraft/furniture-go/internal/application/usecase"
)

// QuoteHandler exposes the parametric pricing endpoint.
type QuoteHandler struct {
	quotes *usecase.QuoteService
}

// NewQuoteHandler creates a new quote handler.
//
// Parameters:
//   - quotes: the quote service
//
// Returns:
//   - *QuoteHandler: the created handler
func NewQuoteHandler(quotes *usecase.QuoteService) *QuoteHandler {
	return &QuoteHandler{quotes: quotes}
}

// Routes mounts the quote endpoints on a router.
//
// Returns:
//   - chi.Router: router with quote routes
func (h *QuoteHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Post("/", h.Price)
	return r
}

// Price handles POST /v1/quotes. It prices a single product at the
// requested dimensions without touching any design.
func (h *QuoteHandler) Price(w http.ResponseWriter, r *http.Request) {
	var req dto.QuoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		respondValidation(w, r, errs)
		return
	}

	resp, err := h.quotes.PriceProduct(r.Context(), req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondOK(w, r, http.StatusOK, resp)
}
