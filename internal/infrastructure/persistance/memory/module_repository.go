package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/maderacraft/furniture-go/internal/domain/entity"
	"github.com/maderacraft/furniture-go/internal/domain/repository"
)

// ModuleRepository is an in-memory placed-module store grouped by design.
type ModuleRepository struct {
	mu      sync.RWMutex
	designs map[uuid.UUID]map[uuid.UUID]entity.PlacedModule
}

// NewModuleRepository creates an empty in-memory module repository.
func NewModuleRepository() *ModuleRepository {
	return &ModuleRepository{
		designs: make(map[uuid.UUID]map[uuid.UUID]entity.PlacedModule),
	}
}

// ListByDesign retrieves every module placed in a design, ordered by zone,
// row and X position.
func (r *ModuleRepository) ListByDesign(ctx context.Context, designID uuid.UUID) ([]entity.PlacedModule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	design := r.designs[designID]
	modules := make([]entity.PlacedModule, 0, len(design))
	for _, m := range design {
		modules = append(modules, m)
	}

	sort.Slice(modules, func(i, j int) bool {
		a, b := modules[i].Geometry, modules[j].Geometry
		if a.Zone != b.Zone {
			return a.Zone < b.Zone
		}
		if a.PositionY != b.PositionY {
			return a.PositionY < b.PositionY
		}
		return a.PositionX < b.PositionX
	})

	return modules, nil
}

// GetByID retrieves a single placed module.
func (r *ModuleRepository) GetByID(ctx context.Context, designID, moduleID uuid.UUID) (*entity.PlacedModule, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	module, ok := r.designs[designID][moduleID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", repository.ErrModuleNotFound, moduleID)
	}

	copied := module
	return &copied, nil
}

// Create persists a newly placed module.
func (r *ModuleRepository) Create(ctx context.Context, module *entity.PlacedModule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	design, ok := r.designs[module.DesignID]
	if !ok {
		design = make(map[uuid.UUID]entity.PlacedModule)
		r.designs[module.DesignID] = design
	}

	design[module.ID] = *module
	return nil
}

// Update persists changes to a placed module after a resize.
func (r *ModuleRepository) Update(ctx context.Context, module *entity.PlacedModule) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	design := r.designs[module.DesignID]
	if _, ok := design[module.ID]; !ok {
		return fmt.Errorf("%w: %s", repository.ErrModuleNotFound, module.ID)
	}

	design[module.ID] = *module
	return nil
}

// Delete removes a placed module from its design.
func (r *ModuleRepository) Delete(ctx context.Context, designID, moduleID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	design := r.designs[designID]
	if _, ok := design[moduleID]; !ok {
		return fmt.Errorf("%w: %s", repository.ErrModuleNotFound, moduleID)
	}

	delete(design, moduleID)
	return nil
}
