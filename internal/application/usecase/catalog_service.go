package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/maderacraft/furniture-go/internal/application/dto"
	"github.com/maderacraft/furniture-go/internal/application/port"
	"github.com/maderacraft/furniture-go/internal/domain/entity"
	"github.com/maderacraft/furniture-go/internal/domain/repository"
	"github.com/maderacraft/furniture-go/internal/domain/valueobject"
)

// CatalogService manages the parametric product catalog.
type CatalogService struct {
	products repository.ProductRepository
	logger   port.Logger
}

// NewCatalogService creates a new catalog service.
//
// Parameters:
//   - products: the product repository
//   - logger: the application logger
//
// Returns:
//   - *CatalogService: the created service
func NewCatalogService(products repository.ProductRepository, logger port.Logger) *CatalogService {
	if logger == nil {
		logger = port.NopLogger{}
	}
	return &CatalogService{
		products: products,
		logger:   logger,
	}
}

// RegisterProduct creates a new product from the request.
//
// Parameters:
//   - ctx: context for cancellation and deadlines
//   - req: the create product request
//
// Returns:
//   - dto.ProductResponse: the created product
//   - error: ErrDuplicateSKU, ErrInvalidInput or a validation error
func (s *CatalogService) RegisterProduct(ctx context.Context, req dto.CreateProductRequest) (dto.ProductResponse, error) {
	family, err := parseFamily(req.Family)
	if err != nil {
		return dto.ProductResponse{}, err
	}

	product, err := entity.NewProduct(
		req.Name,
		req.SKU,
		family,
		valueobject.USD(req.ReferencePriceUsd),
		req.Schema.ToValueObject(),
	)
	if err != nil {
		return dto.ProductResponse{}, fmt.Errorf("%w: %s", repository.ErrInvalidInput, err)
	}

	if req.CategoryID != "" {
		product.SetCategory(req.CategoryID)
	}
	if req.SettlementCurrency != "" {
		product.SetSettlementCurrency(currencyOrDefault(req.SettlementCurrency))
	}
	if req.PricingFormula != "" {
		product.SetPricingFormula(req.PricingFormula)
	}
	product.WallMounted = req.WallMounted

	if err := s.products.Create(ctx, product); err != nil {
		return dto.ProductResponse{}, err
	}

	s.logger.WithContext(ctx).Info("product registered",
		"product_id", product.ID.String(),
		"sku", product.SKU,
		"family", string(product.Family),
	)

	return dto.NewProductResponse(product), nil
}

// GetProduct retrieves one product by ID.
//
// Parameters:
//   - ctx: context for cancellation and deadlines
//   - id: the product's UUID string
//
// Returns:
//   - dto.ProductResponse: the product
//   - error: ErrProductNotFound or ErrInvalidInput
func (s *CatalogService) GetProduct(ctx context.Context, id string) (dto.ProductResponse, error) {
	productID, err := uuid.Parse(id)
	if err != nil {
		return dto.ProductResponse{}, fmt.Errorf("%w: malformed product id %q", repository.ErrInvalidInput, id)
	}

	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return dto.ProductResponse{}, err
	}

	return dto.NewProductResponse(product), nil
}

// ListProducts retrieves products matching the filter.
//
// Parameters:
//   - ctx: context for cancellation and deadlines
//   - filter: category, family, search and pagination options
//
// Returns:
//   - []dto.ProductResponse: the matching products
//   - error: any error encountered during retrieval
func (s *CatalogService) ListProducts(ctx context.Context, filter repository.ProductFilter) ([]dto.ProductResponse, error) {
	products, err := s.products.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]dto.ProductResponse, 0, len(products))
	for _, p := range products {
		responses = append(responses, dto.NewProductResponse(p))
	}
	return responses, nil
}

// parseFamily validates a product family string, defaulting to the
// custom furniture family when absent.
func parseFamily(raw string) (entity.ProductFamily, error) {
	switch entity.ProductFamily(raw) {
	case entity.FamilyCustomFurniture, entity.FamilyKitchenModule, entity.FamilyCatalog:
		return entity.ProductFamily(raw), nil
	case "":
		return entity.FamilyCustomFurniture, nil
	default:
		return "", fmt.Errorf("%w: unknown product family %q", repository.ErrInvalidInput, raw)
	}
}
