package ports

import (
	"context"

	"github.com/modabay/storefront-api/internal/core/domain"
)

// UserRepository defines the interface for user persistence. Update replaces
// the whole document; cart mutations deliberately ride on it with no partial
// update or optimistic concurrency (last write wins).
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	FindByID(ctx context.Context, id string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}
