package catalog

import (
	"context"
)

// ProductFilter narrows the storefront product listing
type ProductFilter struct {
	CategoryID *int64
	Usage      UsageType
	Search     string
	// InStockOnly hides products with no stock
	InStockOnly bool
}

// ProductRepository defines the interface for product persistence
type ProductRepository interface {
	// FindByID finds a product by its ID
	FindByID(ctx context.Context, id int64) (*Product, error)

	// FindByName finds a product by name (used by seeding)
	FindByName(ctx context.Context, name string) (*Product, error)

	// Browse lists products matching the filter, newest first
	Browse(ctx context.Context, filter ProductFilter) ([]Product, error)

	// FindFeatured lists up to limit in-stock products, newest first
	FindFeatured(ctx context.Context, limit int) ([]Product, error)

	// FindRelated lists in-stock products of the same category, excluding the product itself
	FindRelated(ctx context.Context, product *Product, limit int) ([]Product, error)

	// FindAllWithCategory lists every product with its category name, newest first
	FindAllWithCategory(ctx context.Context) ([]ProductListing, error)

	// FindInStockByName lists in-stock products ordered by name
	FindInStockByName(ctx context.Context) ([]Product, error)

	// FindLowStock lists products with stock below threshold, lowest first
	FindLowStock(ctx context.Context, threshold int) ([]Product, error)

	// Count counts all products
	Count(ctx context.Context) (int64, error)

	// Save creates or updates a product
	Save(ctx context.Context, product *Product) error

	// Delete deletes a product
	Delete(ctx context.Context, id int64) error

	// IsOrdered checks whether any order line references the product
	IsOrdered(ctx context.Context, id int64) (bool, error)
}
