package handler

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/maderacraft/furniture-go/internal/application/dto"
	"github.com/maderacraft/furniture-go/internal/application/usecase"
	"github.com/maderacraft/furniture-go/internal/domain/repository"
)

// LayoutHandler exposes the design canvas endpoints: placing, resizing
// and removing modules and reading design totals.
type LayoutHandler struct {
	layout *usecase.LayoutService
}

// NewLayoutHandler creates a new layout handler.
//
// Parameters:
//   - layout: the layout service
//
// Returns:
//   - *LayoutHandler: the created handler
func NewLayoutHandler(layout *usecase.LayoutService) *LayoutHandler {
	return &LayoutHandler{layout: layout}
}

// Routes mounts the design endpoints on a router.
//
// Returns:
//   - chi.Router: router with design routes
func (h *LayoutHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Route("/{designID}", func(r chi.Router) {
		r.Get("/modules", h.ListModules)
		r.Post("/modules", h.AddModule)
		r.Put("/modules/{moduleID}", h.ResizeModule)
		r.Delete("/modules/{moduleID}", h.RemoveModule)
		r.Get("/totals", h.Totals)
	})
	return r
}

// AddModule handles POST /v1/designs/{designID}/modules.
func (h *LayoutHandler) AddModule(w http.ResponseWriter, r *http.Request) {
	designID, ok := parseUUIDParam(w, r, "designID")
	if !ok {
		return
	}

	var req dto.PlaceModuleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		respondValidation(w, r, errs)
		return
	}

	resp, err := h.layout.AddModule(r.Context(), designID, req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondOK(w, r, http.StatusCreated, resp)
}

// ResizeModule handles PUT /v1/designs/{designID}/modules/{moduleID}.
func (h *LayoutHandler) ResizeModule(w http.ResponseWriter, r *http.Request) {
	designID, ok := parseUUIDParam(w, r, "designID")
	if !ok {
		return
	}
	moduleID, ok := parseUUIDParam(w, r, "moduleID")
	if !ok {
		return
	}

	var req dto.ResizeModuleRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if errs := req.Validate(); len(errs) > 0 {
		respondValidation(w, r, errs)
		return
	}

	resp, err := h.layout.ResizeModule(r.Context(), designID, moduleID, req)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondOK(w, r, http.StatusOK, resp)
}

// RemoveModule handles DELETE /v1/designs/{designID}/modules/{moduleID}.
func (h *LayoutHandler) RemoveModule(w http.ResponseWriter, r *http.Request) {
	designID, ok := parseUUIDParam(w, r, "designID")
	if !ok {
		return
	}
	moduleID, ok := parseUUIDParam(w, r, "moduleID")
	if !ok {
		return
	}

	if err := h.layout.RemoveModule(r.Context(), designID, moduleID); err != nil {
		respondError(w, r, err)
		return
	}

	respondOK(w, r, http.StatusOK, map[string]string{"status": "deleted"})
}

// ListModules handles GET /v1/designs/{designID}/modules.
func (h *LayoutHandler) ListModules(w http.ResponseWriter, r *http.Request) {
	designID, ok := parseUUIDParam(w, r, "designID")
	if !ok {
		return
	}

	resp, err := h.layout.Modules(r.Context(), designID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondOK(w, r, http.StatusOK, resp)
}

// Totals handles GET /v1/designs/{designID}/totals.
func (h *LayoutHandler) Totals(w http.ResponseWriter, r *http.Request) {
	designID, ok := parseUUIDParam(w, r, "designID")
	if !ok {
		return
	}

	resp, err := h.layout.Totals(r.Context(), designID)
	if err != nil {
		respondError(w, r, err)
		return
	}

	respondOK(w, r, http.StatusOK, resp)
}

// parseUUIDParam parses a UUID URL parameter, answering a 400 itself on
// failure.
//
// Returns:
//   - uuid.UUID: the parsed UUID
//   - bool: true when parsing succeeded
func parseUUIDParam(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	raw := chi.URLParam(r, name)
	id, err := uuid.Parse(raw)
	if err != nil {
		respondError(w, r, fmt.Errorf("%w: malformed %s %q", repository.ErrInvalidInput, name, raw))
		return uuid.Nil, false
	}
	return id, true
}
