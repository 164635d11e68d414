package ports

import (
	"context"

	"github.com/modabay/storefront-api/internal/core/domain"
)

// CheckoutProductInput is one line of the checkout request: the product as
// the client saw it, priced in major units.
type CheckoutProductInput struct {
	ID       string
	Name     string
	Image    string
	Price    float64
	Quantity int64
}

// CheckoutSessionResult reports the opened provider session. TotalAmount is
// the discounted total in cents.
type CheckoutSessionResult struct {
	SessionID   string
	TotalAmount int64
}

// CheckoutService is the linear checkout orchestrator: create a provider
// session, then confirm it once the provider reports payment.
type CheckoutService interface {
	// CreateSession fails with domain.ErrEmptyCheckout before any provider
	// call when products is empty. A discounted total of $200 or more earns
	// the user a new gift coupon (fire-and-forget).
	CreateSession(ctx context.Context, userID string, products []CheckoutProductInput, couponCode string) (*CheckoutSessionResult, error)
	// ConfirmSession re-fetches the session from the provider and, only on a
	// paid status, deactivates the used coupon and persists the order
	// snapshot from session metadata. Any other status fails with
	// domain.ErrPaymentIncomplete and writes nothing.
	ConfirmSession(ctx context.Context, sessionID string) (*domain.Order, error)
	// ListOrders returns the user's confirmed orders, newest first.
	ListOrders(ctx context.Context, userID string) ([]domain.Order, error)
}
