package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/maderacraft/furniture-go/internal/application/dto"
	"github.com/maderacraft/furniture-go/internal/application/port"
	"github.com/maderacraft/furniture-go/internal/domain/repository"
	"github.com/maderacraft/furniture-go/internal/domain/valueobject"
)

// QuoteService prices a single parametric product for caller-supplied
// dimensions without placing anything in a design.
type QuoteService struct {
	products repository.ProductRepository
	settings repository.SettingsRepository
	pipeline pricingPipeline
	logger   port.Logger
}

// NewQuoteService creates a new quote service.
//
// Parameters:
//   - products: the product repository
//   - settings: the adjustment settings repository
//   - logger: the application logger
//
// Returns:
//   - *QuoteService: the created service
func NewQuoteService(
	products repository.ProductRepository,
	settings repository.SettingsRepository,
	logger port.Logger,
) *QuoteService {
	if logger == nil {
		logger = port.NopLogger{}
	}
	return &QuoteService{
		products: products,
		settings: settings,
		pipeline: newPricingPipeline(),
		logger:   logger,
	}
}

// PriceProduct computes a quote for a product at the requested dimensions.
//
// Absent or out-of-range dimensions are silently replaced by the product
// schema's defaults, so a valid product always yields a quote.
//
// Parameters:
//   - ctx: context for cancellation and deadlines
//   - req: the quote request
//
// Returns:
//   - dto.QuoteResponse: working dimensions and computed prices
//   - error: ErrProductNotFound or ErrInvalidInput
func (s *QuoteService) PriceProduct(ctx context.Context, req dto.QuoteRequest) (dto.QuoteResponse, error) {
	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		return dto.QuoteResponse{}, fmt.Errorf("%w: malformed product id %q", repository.ErrInvalidInput, req.ProductID)
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return dto.QuoteResponse{}, err
	}

	settings, err := s.settings.Load(ctx)
	if err != nil {
		return dto.QuoteResponse{}, fmt.Errorf("loading adjustment settings: %w", err)
	}

	requested := valueobject.Dimensions{
		WidthMm:  req.WidthMm,
		HeightMm: req.HeightMm,
		DepthMm:  req.DepthMm,
	}

	resolved, adjusted, unit := s.pipeline.price(product, requested, currencyOrDefault(req.PayingCurrency), settings)

	s.logger.WithContext(ctx).Debug("product priced",
		"product_id", product.ID.String(),
		"width_mm", resolved.Dimensions.WidthMm,
		"unit_price_usd", unit.ToFloat(),
	)

	return dto.NewQuoteResponse(req.ProductID, resolved.Dimensions, resolved.ReferenceVolumeMm3, adjusted, unit), nil
}
