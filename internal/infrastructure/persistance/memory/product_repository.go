// Package memory provides in-memory implementations of the repository
// interfaces. They are the storage backend for the catalog and the design
// canvas: concurrency-safe, copy-on-read, and suitable for tests and for
// single-process deployments.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/maderacraft/furniture-go/internal/domain/entity"
	"github.com/maderacraft/furniture-go/internal/domain/repository"
)

// ProductRepository is an in-memory product store keyed by product ID,
// with a secondary SKU index enforcing SKU uniqueness.
type ProductRepository struct {
	mu       sync.RWMutex
	products map[uuid.UUID]entity.Product
	bySKU    map[string]uuid.UUID
}

// NewProductRepository creates an empty in-memory product repository.
func NewProductRepository() *ProductRepository {
	return &ProductRepository{
		products: make(map[uuid.UUID]entity.Product),
		bySKU:    make(map[string]uuid.UUID),
	}
}

// Create persists a new product.
func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, taken := r.bySKU[product.SKU]; taken {
		return fmt.Errorf("%w: %s", repository.ErrDuplicateSKU, product.SKU)
	}

	r.products[product.ID] = *product
	r.bySKU[product.SKU] = product.ID
	return nil
}

// GetByID retrieves a product by its unique identifier.
func (r *ProductRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", repository.ErrProductNotFound, id)
	}

	copied := product
	return &copied, nil
}

// GetBySKU retrieves a product by its SKU.
func (r *ProductRepository) GetBySKU(ctx context.Context, sku string) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	id, ok := r.bySKU[sku]
	if !ok {
		return nil, fmt.Errorf("%w: sku %s", repository.ErrProductNotFound, sku)
	}

	copied := r.products[id]
	return &copied, nil
}

// Update persists changes to an existing product, guarding against
// concurrent edits with the product's version counter.
func (r *ProductRepository) Update(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	stored, ok := r.products[product.ID]
	if !ok {
		return fmt.Errorf("%w: %s", repository.ErrProductNotFound, product.ID)
	}
	if stored.Version != product.Version {
		return fmt.Errorf("%w: product %s", repository.ErrOptimisticLock, product.ID)
	}

	if stored.SKU != product.SKU {
		if _, taken := r.bySKU[product.SKU]; taken {
			return fmt.Errorf("%w: %s", repository.ErrDuplicateSKU, product.SKU)
		}
		delete(r.bySKU, stored.SKU)
		r.bySKU[product.SKU] = product.ID
	}

	product.Version++
	r.products[product.ID] = *product
	return nil
}

// FindAll retrieves products matching the filter.
func (r *ProductRepository) FindAll(ctx context.Context, filter repository.ProductFilter) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var matched []*entity.Product
	for _, product := range r.products {
		if !matchesFilter(product, filter) {
			continue
		}
		copied := product
		matched = append(matched, &copied)
	}

	sortProductsByName(matched)

	return paginate(matched, filter.Offset, filter.Limit), nil
}

func matchesFilter(product entity.Product, filter repository.ProductFilter) bool {
	if filter.CategoryID != "" && product.CategoryID != filter.CategoryID {
		return false
	}
	if filter.Family != "" && product.Family != filter.Family {
		return false
	}
	if filter.SearchTerm != "" {
		term := strings.ToLower(filter.SearchTerm)
		if !strings.Contains(strings.ToLower(product.Name), term) &&
			!strings.Contains(strings.ToLower(product.SKU), term) {
			return false
		}
	}
	return true
}

func sortProductsByName(products []*entity.Product) {
	sort.Slice(products, func(i, j int) bool {
		return products[i].Name < products[j].Name
	})
}

func paginate(products []*entity.Product, offset, limit int) []*entity.Product {
	// Negative values arrive unchecked from query parameters
	if offset < 0 {
		offset = 0
	}
	if offset >= len(products) {
		return nil
	}
	products = products[offset:]
	if limit > 0 && limit < len(products) {
		products = products[:limit]
	}
	return products
}
