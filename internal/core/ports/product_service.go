package ports

import (
	"context"

	"github.com/modabay/storefront-api/internal/core/domain"
)

// CreateProductInput carries the fields for a new catalog entry. Image is an
// optional data URI handed to the image host before the product is stored.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Image       string
	Category    string
}

type ProductService interface {
	ListAll(ctx context.Context) ([]domain.Product, error)
	// Featured serves from the cache when possible and repopulates it on a
	// miss.
	Featured(ctx context.Context) ([]domain.Product, error)
	Recommended(ctx context.Context) ([]domain.Product, error)
	ByCategory(ctx context.Context, category string) ([]domain.Product, error)
	Create(ctx context.Context, in CreateProductInput) (*domain.Product, error)
	// Delete destroys the hosted image first, then removes the product.
	Delete(ctx context.Context, id string) error
	// ToggleFeatured flips the flag and rewrites the featured cache.
	ToggleFeatured(ctx context.Context, id string) (*domain.Product, error)
}
