package domain

import "errors"

// Sentinel errors for the whole service. The HTTP layer maps each of these
// to a status code in one place (internal/api/error_handler.go); services
// return them directly or wrapped with %w.
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")

	// ErrTokenExpired is kept distinct from ErrInvalidToken so a client can
	// tell an expired access token (worth a refresh attempt) from a broken one.
	ErrTokenExpired = errors.New("token expired")
	ErrInvalidToken = errors.New("invalid token")
	ErrUnauthorized = errors.New("unauthorized")

	ErrForbidden = errors.New("access forbidden")

	ErrProductNotFound  = errors.New("product not found")
	ErrCartItemNotFound = errors.New("product not found in cart")
	ErrCouponNotFound   = errors.New("coupon not found")
	ErrCouponExpired    = errors.New("coupon has expired")

	ErrEmptyCheckout       = errors.New("checkout requires at least one product")
	ErrPaymentIncomplete   = errors.New("payment not completed")
	ErrProviderUnavailable = errors.New("payment provider unavailable")
)
