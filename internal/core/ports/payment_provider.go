package ports

import "context"

// ProviderLineItem is one priced line sent to the payment provider.
// UnitAmount is in integer minor currency units (cents).
type ProviderLineItem struct {
	Name       string
	Image      string
	UnitAmount int64
	Quantity   int64
}

// ProviderSessionInput carries everything needed to open a checkout session
// on the provider side.
type ProviderSessionInput struct {
	LineItems  []ProviderLineItem
	DiscountID string
	SuccessURL string
	CancelURL  string
	Metadata   map[string]string
}

// ProviderSession is the provider-side view of a pending or settled payment.
type ProviderSession struct {
	ID            string
	PaymentStatus string
	AmountTotal   int64
	Metadata      map[string]string
}

const ProviderStatusPaid = "paid"

// PaymentProvider abstracts the external payment service (Stripe in
// production). Failures surface as domain.ErrProviderUnavailable; the
// orchestrator never retries.
type PaymentProvider interface {
	CreateSession(ctx context.Context, in ProviderSessionInput) (string, error)
	RetrieveSession(ctx context.Context, id string) (*ProviderSession, error)
	// CreateDiscount registers a single-use percentage discount and returns
	// its provider-side id.
	CreateDiscount(ctx context.Context, percentage int) (string, error)
}
