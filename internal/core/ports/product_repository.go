package ports

import (
	"context"

	"github.com/modabay/storefront-api/internal/core/domain"
)

// ProductRepository defines the interface for catalog persistence.
type ProductRepository interface {
	FindAll(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	// FindByIDs returns products for the given ids; ids with no matching
	// product are simply absent from the result, not an error.
	FindByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
	FindFeatured(ctx context.Context) ([]domain.Product, error)
	FindByCategory(ctx context.Context, category string) ([]domain.Product, error)
	// Sample returns up to n randomly chosen products.
	Sample(ctx context.Context, n int) ([]domain.Product, error)
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
	SetFeatured(ctx context.Context, id string, featured bool) (*domain.Product, error)
}
