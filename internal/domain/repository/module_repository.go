// Package repository contains the repository interfaces (ports) for data access.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/maderacraft/furniture-go/internal/domain/entity"
)

// ModuleRepository defines the interface for placed-module persistence.
// A placed module is owned by exactly one design; every mutation and the
// totals recompute that follows it must share one transaction boundary,
// which the implementation provides.
type ModuleRepository interface {
	// ListByDesign retrieves every module placed in a design, ordered by
	// zone, row and X position.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//   - designID: the owning design
	//
	// Returns:
	//   - []entity.PlacedModule: copies of the design's modules
	//   - error: any error encountered during retrieval
	ListByDesign(ctx context.Context, designID uuid.UUID) ([]entity.PlacedModule, error)

	// GetByID retrieves a single placed module.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//   - designID: the owning design
	//   - moduleID: the module's UUID
	//
	// Returns:
	//   - *entity.PlacedModule: the retrieved module
	//   - error: ErrModuleNotFound if the module doesn't exist
	GetByID(ctx context.Context, designID, moduleID uuid.UUID) (*entity.PlacedModule, error)

	// Create persists a newly placed module.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//   - module: the module to create
	//
	// Returns:
	//   - error: any error encountered during creation
	Create(ctx context.Context, module *entity.PlacedModule) error

	// Update persists changes to a placed module after a resize.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//   - module: the module to update
	//
	// Returns:
	//   - error: ErrModuleNotFound if the module doesn't exist
	Update(ctx context.Context, module *entity.PlacedModule) error

	// Delete removes a placed module from its design.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//   - designID: the owning design
	//   - moduleID: the module's UUID
	//
	// Returns:
	//   - error: ErrModuleNotFound if the module doesn't exist
	Delete(ctx context.Context, designID, moduleID uuid.UUID) error
}
