// Package handler contains the HTTP handlers exposing the pricing and
// placement API over Chi routes.
package handler

import (
	"errors"
	"net/http"

	"github.com/go-chi/render"

	"github.com/maderacraft/furniture-go/internal/application/dto"
	"github.com/maderacraft/furniture-go/internal/application/usecase"
	"github.com/maderacraft/furniture-go/internal/domain/repository"
)

// respondOK writes a success envelope with the given status code.
func respondOK[T any](w http.ResponseWriter, r *http.Request, status int, data T) {
	render.Status(r, status)
	render.JSON(w, r, dto.NewSuccessResponse(data))
}

// respondValidation writes a 400 with field-level validation errors.
func respondValidation(w http.ResponseWriter, r *http.Request, errs []dto.ValidationError) {
	render.Status(r, http.StatusBadRequest)
	render.JSON(w, r, dto.NewValidationErrorResponse[any](errs))
}

// respondError maps application errors onto HTTP status codes and writes
// an error envelope.
func respondError(w http.ResponseWriter, r *http.Request, err error) {
	var rejected *usecase.PlacementRejectedError

	switch {
	case errors.As(err, &rejected):
		render.Status(r, http.StatusUnprocessableEntity)
		render.JSON(w, r, dto.NewErrorResponse[any]("PLACEMENT_REJECTED", rejected.Error()))
	case repository.IsNotFoundError(err):
		render.Status(r, http.StatusNotFound)
		render.JSON(w, r, dto.NewErrorResponse[any]("NOT_FOUND", err.Error()))
	case errors.Is(err, repository.ErrInvalidInput):
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, dto.NewErrorResponse[any]("INVALID_INPUT", err.Error()))
	case errors.Is(err, repository.ErrDuplicateSKU):
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, dto.NewErrorResponse[any]("DUPLICATE_SKU", err.Error()))
	case errors.Is(err, repository.ErrOptimisticLock):
		render.Status(r, http.StatusConflict)
		render.JSON(w, r, dto.NewErrorResponse[any]("CONFLICT", err.Error()))
	default:
		render.Status(r, http.StatusInternalServerError)
		render.JSON(w, r, dto.NewErrorResponse[any]("INTERNAL_ERROR", "An unexpected error occurred"))
	}
}

// decodeJSON decodes the request body, answering a 400 itself on failure.
//
// Returns:
//   - bool: true when decoding succeeded
func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := render.DecodeJSON(r.Body, v); err != nil {
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, dto.NewErrorResponse[any]("MALFORMED_BODY", "Request body is not valid JSON"))
		return false
	}
	return true
}
