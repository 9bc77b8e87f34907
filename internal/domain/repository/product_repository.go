// Package repository contains the repository interfaces (ports) for data access.
package repository

import (
	"context"

	"github.com/google/uuid"
	"github.com/maderacraft/furniture-go/internal/domain/entity"
)

// ProductFilter contains criteria for filtering products.
type ProductFilter struct {
	// CategoryID filters products by pricing category. Empty matches all.
	CategoryID string

	// Family filters products by product family. Empty matches all.
	Family entity.ProductFamily

	// SearchTerm searches in name and SKU.
	SearchTerm string

	// Limit specifies the maximum number of results
	Limit int

	// Offset specifies the starting position for pagination
	Offset int
}

// ProductRepository defines the interface for product persistance operations.
// It abstracts the data access layer for product entities.
//
// Example usage:
//
//	repo := memory.NewProductRepository()
//	product, err := repo.GetByID(ctx, productID)
type ProductRepository interface {
	// Create persists a new product to the data store.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//   - product: The product to create
	//
	// Returns:
	//   - error: ErrDuplicateSKU if the SKU is already taken
	Create(ctx context.Context, product *entity.Product) error

	// GetByID retrieves a product by its unique identifier.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//   - id: The product's UUID
	//
	// Returns:
	//   - *entity.Product: The retrieved product, or nil if not found
	//   - error: ErrProductNotFound if product doesn't exist
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// GetBySKU retrieves a product by its SKU.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//   - sku: The product's SKU
	//
	// Returns:
	//   - *entity.Product: The retrieved product, or nil if not found
	//   - error: ErrProductNotFound if product doesn't exist
	GetBySKU(ctx context.Context, sku string) (*entity.Product, error)

	// Update persists changes to an existing product.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//   - product: The product to update
	//
	// Returns:
	//   - error: ErrOptimisticLock if version mismatch
	Update(ctx context.Context, product *entity.Product) error

	// FindAll retrieves products matching the given filter criteria.
	//
	// Parameters:
	//   - ctx: context for cancellation and deadlines
	//   - filter: Criteria to filter products
	//
	// Returns:
	//   - []*entity.Product: List of matching products
	//   - error: any error encountered during retrieval
	FindAll(ctx context.Context, filter ProductFilter) ([]*entity.Product, error)
}
