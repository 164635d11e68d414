package ports

import (
	"context"

	"github.com/modabay/storefront-api/internal/core/domain"
)

type CouponService interface {
	// GetActive returns the user's active coupon, or nil when there is none.
	GetActive(ctx context.Context, userID string) (*domain.Coupon, error)
	// Validate checks a code for the user. An expired coupon is deactivated
	// on the spot and reported as domain.ErrCouponExpired.
	Validate(ctx context.Context, code, userID string) (*domain.Coupon, error)
	// CreateGiftCoupon issues a 10%-off, 30-day coupon for the user. If the
	// user already holds an active coupon it is returned unchanged instead
	// of inserting a second one.
	CreateGiftCoupon(ctx context.Context, userID string) (*domain.Coupon, error)
}
