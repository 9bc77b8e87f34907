package usecase

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/maderacraft/furniture-go/internal/application/dto"
	"github.com/maderacraft/furniture-go/internal/application/port"
	"github.com/maderacraft/furniture-go/internal/domain/entity"
	"github.com/maderacraft/furniture-go/internal/domain/repository"
	"github.com/maderacraft/furniture-go/internal/domain/service"
	"github.com/maderacraft/furniture-go/internal/domain/valueobject"
)

// PlacementRejectedError reports why a placement or resize was refused.
// A rejected operation leaves the design unchanged.
type PlacementRejectedError struct {
	// Reasons are the individual rejection reasons in check order.
	Reasons []string
}

// Error implements the error interface.
func (e *PlacementRejectedError) Error() string {
	return "placement rejected: " + strings.Join(e.Reasons, ", ")
}

// LayoutService manages module placement inside a design: appending,
// resizing, removing and totaling. Every mutation recomputes the affected
// module's price through the same pipeline the quote service uses, and all
// mutations on one design are serialized so a reader never observes a
// placed module without its price.
type LayoutService struct {
	products   repository.ProductRepository
	modules    repository.ModuleRepository
	settings   repository.SettingsRepository
	validator  *service.PlacementValidator
	aggregator *service.BudgetAggregator
	pipeline   pricingPipeline
	logger     port.Logger

	mu          sync.Mutex
	designLocks map[uuid.UUID]*sync.Mutex
}

// NewLayoutService creates a new layout service.
//
// Parameters:
//   - products: the product repository
//   - modules: the placed-module repository
//   - settings: the adjustment settings repository
//   - wallMountHeightMm: mount height locked onto wall modules, 0 for the default
//   - logger: the application logger
//
// Returns:
//   - *LayoutService: the created service
func NewLayoutService(
	products repository.ProductRepository,
	modules repository.ModuleRepository,
	settings repository.SettingsRepository,
	wallMountHeightMm float64,
	logger port.Logger,
) *LayoutService {
	if logger == nil {
		logger = port.NopLogger{}
	}
	return &LayoutService{
		products:    products,
		modules:     modules,
		settings:    settings,
		validator:   service.NewPlacementValidator(wallMountHeightMm),
		aggregator:  service.NewBudgetAggregator(),
		pipeline:    newPricingPipeline(),
		logger:      logger,
		designLocks: make(map[uuid.UUID]*sync.Mutex),
	}
}

// AddModule places a product as a new module at the end of a design row.
//
// The module is auto-packed against the right edge of the target row; any
// caller-supplied X coordinate is ignored. The unit price is computed from
// the normalized geometry before the module is persisted.
//
// Parameters:
//   - ctx: context for cancellation and deadlines
//   - designID: the design to place into
//   - req: the placement request
//
// Returns:
//   - dto.ModuleResponse: the placed module
//   - error: *PlacementRejectedError, ErrProductNotFound or ErrInvalidInput
func (s *LayoutService) AddModule(ctx context.Context, designID uuid.UUID, req dto.PlaceModuleRequest) (dto.ModuleResponse, error) {
	lock := s.designLock(designID)
	lock.Lock()
	defer lock.Unlock()

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return dto.ModuleResponse{}, fmt.Errorf("%w: malformed product id %q", repository.ErrInvalidInput, req.ProductID)
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return dto.ModuleResponse{}, err
	}

	settings, err := s.settings.Load(ctx)
	if err != nil {
		return dto.ModuleResponse{}, fmt.Errorf("loading adjustment settings: %w", err)
	}

	existing, err := s.modules.ListByDesign(ctx, designID)
	if err != nil {
		return dto.ModuleResponse{}, err
	}

	constraints := service.ConstraintsForProduct(product)
	draft := service.PlacementDraft{
		ProductID: productID,
		PositionY: req.PositionY,
		WidthMm:   req.WidthMm,
	}

	result := s.validator.ValidateAppend(draft, constraints, existing)
	if !result.OK() {
		s.logger.WithContext(ctx).Warn("module placement rejected",
			"design_id", designID.String(),
			"product_id", req.ProductID,
			"reasons", strings.Join(result.Errors, ", "),
		)
		return dto.ModuleResponse{}, &PlacementRejectedError{Reasons: result.Errors}
	}

	unitPrice := s.priceGeometry(product, result.Normalized, req.HeightMm, req.DepthMm, req.PayingCurrency, settings)

	module, err := entity.NewPlacedModule(designID, productID, result.Normalized, unitPrice)
	if err != nil {
		return dto.ModuleResponse{}, err
	}

	if err := s.modules.Create(ctx, module); err != nil {
		return dto.ModuleResponse{}, err
	}

	s.logger.WithContext(ctx).Info("module placed",
		"design_id", designID.String(),
		"module_id", module.ID.String(),
		"position_x", module.Geometry.PositionX,
		"width_mm", module.Geometry.WidthMm,
	)

	return dto.NewModuleResponse(module), nil
}

// ResizeModule changes the width of an already placed module in place.
//
// The module keeps its X position; if the new width would cross the left
// edge of its immediate right neighbour the resize is rejected and the
// design is left untouched. On success the unit price is recomputed.
//
// Parameters:
//   - ctx: context for cancellation and deadlines
//   - designID: the owning design
//   - moduleID: the module to resize
//   - req: the resize request
//
// Returns:
//   - dto.ModuleResponse: the resized module
//   - error: *PlacementRejectedError, ErrModuleNotFound or ErrProductNotFound
func (s *LayoutService) ResizeModule(ctx context.Context, designID, moduleID uuid.UUID, req dto.ResizeModuleRequest) (dto.ModuleResponse, error) {
	lock := s.designLock(designID)
	lock.Lock()
	defer lock.Unlock()

	module, err := s.modules.GetByID(ctx, designID, moduleID)
	if err != nil {
		return dto.ModuleResponse{}, err
	}

	product, err := s.products.GetByID(ctx, module.ProductID)
	if err != nil {
		return dto.ModuleResponse{}, err
	}

	settings, err := s.settings.Load(ctx)
	if err != nil {
		return dto.ModuleResponse{}, fmt.Errorf("loading adjustment settings: %w", err)
	}

	existing, err := s.modules.ListByDesign(ctx, designID)
	if err != nil {
		return dto.ModuleResponse{}, err
	}

	constraints := service.ConstraintsForProduct(product)

	result := s.validator.ValidateResize(*module, req.WidthMm, constraints, existing)
	if !result.OK() {
		s.logger.WithContext(ctx).Warn("module resize rejected",
			"design_id", designID.String(),
			"module_id", moduleID.String(),
			"reasons", strings.Join(result.Errors, ", "),
		)
		return dto.ModuleResponse{}, &PlacementRejectedError{Reasons: result.Errors}
	}

	unitPrice := s.priceGeometry(product, result.Normalized, req.HeightMm, req.DepthMm, req.PayingCurrency, settings)

	if err := module.ApplyResize(result.Normalized, unitPrice); err != nil {
		return dto.ModuleResponse{}, err
	}

	if err := s.modules.Update(ctx, module); err != nil {
		return dto.ModuleResponse{}, err
	}

	s.logger.WithContext(ctx).Info("module resized",
		"design_id", designID.String(),
		"module_id", moduleID.String(),
		"width_mm", module.Geometry.WidthMm,
	)

	return dto.NewModuleResponse(module), nil
}

// RemoveModule deletes a placed module from its design.
//
// Parameters:
//   - ctx: context for cancellation and deadlines
//   - designID: the owning design
//   - moduleID: the module to remove
//
// Returns:
//   - error: ErrModuleNotFound if the module doesn't exist
func (s *LayoutService) RemoveModule(ctx context.Context, designID, moduleID uuid.UUID) error {
	lock := s.designLock(designID)
	lock.Lock()
	defer lock.Unlock()

	if err := s.modules.Delete(ctx, designID, moduleID); err != nil {
		return err
	}

	s.logger.WithContext(ctx).Info("module removed",
		"design_id", designID.String(),
		"module_id", moduleID.String(),
	)
	return nil
}

// Modules lists the design's placed modules in canvas order.
//
// Parameters:
//   - ctx: context for cancellation and deadlines
//   - designID: the design to list
//
// Returns:
//   - []dto.ModuleResponse: the placed modules
//   - error: any error encountered while listing modules
func (s *LayoutService) Modules(ctx context.Context, designID uuid.UUID) ([]dto.ModuleResponse, error) {
	modules, err := s.modules.ListByDesign(ctx, designID)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ModuleResponse, 0, len(modules))
	for i := range modules {
		responses = append(responses, dto.NewModuleResponse(&modules[i]))
	}
	return responses, nil
}

// Totals aggregates the design's module prices into budget totals.
//
// Parameters:
//   - ctx: context for cancellation and deadlines
//   - designID: the design to total
//
// Returns:
//   - dto.TotalsResponse: module count, subtotal and total
//   - error: any error encountered while listing modules
func (s *LayoutService) Totals(ctx context.Context, designID uuid.UUID) (dto.TotalsResponse, error) {
	modules, err := s.modules.ListByDesign(ctx, designID)
	if err != nil {
		return dto.TotalsResponse{}, err
	}

	totals := s.aggregator.Aggregate(modules)
	return dto.NewTotalsResponse(designID.String(), len(modules), totals), nil
}

// priceGeometry prices a module at its normalized width, keeping the
// caller's height and depth requests for the remaining axes.
func (s *LayoutService) priceGeometry(
	product *entity.Product,
	geometry entity.ModuleGeometry,
	heightMm, depthMm float64,
	payingCurrency string,
	settings valueobject.PriceAdjustmentSettings,
) valueobject.Money {
	requested := valueobject.Dimensions{
		WidthMm:  geometry.WidthMm,
		HeightMm: heightMm,
		DepthMm:  depthMm,
	}
	_, _, unit := s.pipeline.price(product, requested, currencyOrDefault(payingCurrency), settings)
	return unit
}

// designLock returns the mutex serializing mutations for one design,
// creating it on first use.
func (s *LayoutService) designLock(designID uuid.UUID) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()

	lock, ok := s.designLocks[designID]
	if !ok {
		lock = &sync.Mutex{}
		s.designLocks[designID] = lock
	}
	return lock
}
