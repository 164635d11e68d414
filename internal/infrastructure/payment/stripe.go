package payment

import (
	"context"
	"fmt"

	stripe "github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"

	"github.com/modabay/storefront-api/internal/core/ports"
)

// StripeProvider implements ports.PaymentProvider against the Stripe
// Checkout API. All amounts are already in cents by the time they get here.
type StripeProvider struct {
	api      *client.API
	currency string
}

// NewStripeProvider creates a provider with its own API client so the
// process-wide stripe key singleton is never touched.
func NewStripeProvider(secretKey string) *StripeProvider {
	api := &client.API{}
	api.Init(secretKey, nil)
	return &StripeProvider{api: api, currency: "usd"}
}

func (p *StripeProvider) CreateSession(ctx context.Context, in ports.ProviderSessionInput) (string, error) {
	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(in.LineItems))
	for _, item := range in.LineItems {
		productData := &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
			Name: stripe.String(item.Name),
		}
		if item.Image != "" {
			productData.Images = stripe.StringSlice([]string{item.Image})
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency:    stripe.String(p.currency),
				ProductData: productData,
				UnitAmount:  stripe.Int64(item.UnitAmount),
			},
			Quantity: stripe.Int64(item.Quantity),
		})
	}

	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		LineItems:          lineItems,
		Mode:               stripe.String(string(stripe.CheckoutSessionModePayment)),
		SuccessURL:         stripe.String(in.SuccessURL),
		CancelURL:          stripe.String(in.CancelURL),
	}
	params.Context = ctx
	if in.DiscountID != "" {
		params.Discounts = []*stripe.CheckoutSessionDiscountParams{
			{Coupon: stripe.String(in.DiscountID)},
		}
	}
	for k, v := range in.Metadata {
		params.AddMetadata(k, v)
	}

	session, err := p.api.CheckoutSessions.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe create session: %w", err)
	}
	return session.ID, nil
}

func (p *StripeProvider) RetrieveSession(ctx context.Context, id string) (*ports.ProviderSession, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx

	session, err := p.api.CheckoutSessions.Get(id, params)
	if err != nil {
		return nil, fmt.Errorf("stripe retrieve session: %w", err)
	}

	return &ports.ProviderSession{
		ID:            session.ID,
		PaymentStatus: string(session.PaymentStatus),
		AmountTotal:   session.AmountTotal,
		Metadata:      session.Metadata,
	}, nil
}

func (p *StripeProvider) CreateDiscount(ctx context.Context, percentage int) (string, error) {
	params := &stripe.CouponParams{
		PercentOff: stripe.Float64(float64(percentage)),
		Duration:   stripe.String(string(stripe.CouponDurationOnce)),
	}
	params.Context = ctx

	coupon, err := p.api.Coupons.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe create coupon: %w", err)
	}
	return coupon.ID, nil
}
