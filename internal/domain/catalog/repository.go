package catalog

import (
	"context"

	"github.com/google/uuid"
)

// ProductRepository defines read access to the product catalog
type ProductRepository interface {
	// FindByID finds a product by ID
	FindByID(ctx context.Context, id uuid.UUID) (*Product, error)

	// FindBySKU finds a product by SKU
	FindBySKU(ctx context.Context, sku string) (*Product, error)

	// FindAll returns the full catalog
	FindAll(ctx context.Context) ([]Product, error)
}
