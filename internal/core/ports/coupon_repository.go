package ports

import (
	"context"

	"github.com/modabay/storefront-api/internal/core/domain"
)

// CouponRepository defines the interface for coupon persistence. Lookups are
// always scoped to a user; codes are not globally unique.
type CouponRepository interface {
	FindActiveByUser(ctx context.Context, userID string) (*domain.Coupon, error)
	// FindActiveByCode matches {code, userID, isActive:true}.
	FindActiveByCode(ctx context.Context, code, userID string) (*domain.Coupon, error)
	Create(ctx context.Context, coupon *domain.Coupon) (*domain.Coupon, error)
	Deactivate(ctx context.Context, code, userID string) error
}
