package ports

import (
	"context"

	"github.com/modabay/storefront-api/internal/core/domain"
)

// ProductCache memoizes the featured-products list. GetFeatured reports a
// miss with ok=false rather than an error; cache failures are never fatal to
// a read path.
type ProductCache interface {
	GetFeatured(ctx context.Context) (products []domain.Product, ok bool, err error)
	SetFeatured(ctx context.Context, products []domain.Product) error
}
