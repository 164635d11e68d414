package ports

import (
	"context"

	"github.com/modabay/storefront-api/internal/core/domain"
)

// OrderRepository defines the interface for order persistence. Orders are
// append-only snapshots; there is no update operation.
type OrderRepository interface {
	Create(ctx context.Context, order *domain.Order) (*domain.Order, error)
	FindByUser(ctx context.Context, userID string) ([]domain.Order, error)
}
