package service

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/modabay/storefront-api/internal/core/domain"
	"github.com/modabay/storefront-api/internal/core/ports"
)

// giftCouponThreshold is the discounted total, in cents, at which a checkout
// earns the user a new gift coupon ($200).
const giftCouponThreshold = 20000

// confirmTimeout bounds the provider round-trip that gates order
// persistence. The original design left this unbounded; 10s is generous for
// a single session retrieval and keeps the confirmation request from
// hanging forever on a stuck provider.
const confirmTimeout = 10 * time.Second

// CheckoutService is the linear checkout orchestrator:
// session creation → provider-side payment → confirmation. No step branches
// back, and a failure at any point aborts the whole operation with no
// partial order.
type CheckoutService struct {
	coupons    ports.CouponRepository
	couponSvc  ports.CouponService
	orders     ports.OrderRepository
	provider   ports.PaymentProvider
	successURL string
	cancelURL  string
	log        zerolog.Logger
}

func NewCheckoutService(
	coupons ports.CouponRepository,
	couponSvc ports.CouponService,
	orders ports.OrderRepository,
	provider ports.PaymentProvider,
	clientURL string,
	log zerolog.Logger,
) *CheckoutService {
	return &CheckoutService{
		coupons:    coupons,
		couponSvc:  couponSvc,
		orders:     orders,
		provider:   provider,
		successURL: clientURL + "/purchase-success?session_id={CHECKOUT_SESSION_ID}",
		cancelURL:  clientURL + "/purchase-cancel",
		log:        log,
	}
}

// sessionItem is the line-item snapshot stored in provider session metadata.
// Confirmation builds the order from this, not from live cart or catalog
// state, so prices stay locked at checkout time.
type sessionItem struct {
	ID         string `json:"id"`
	Quantity   int64  `json:"quantity"`
	UnitAmount int64  `json:"unit_amount"`
}

func (s *CheckoutService) CreateSession(ctx context.Context, userID string, products []ports.CheckoutProductInput, couponCode string) (*ports.CheckoutSessionResult, error) {
	if len(products) == 0 {
		return nil, domain.ErrEmptyCheckout
	}

	var total int64
	lineItems := make([]ports.ProviderLineItem, 0, len(products))
	snapshot := make([]sessionItem, 0, len(products))
	for _, p := range products {
		unitAmount := int64(math.Round(p.Price * 100))
		total += unitAmount * p.Quantity
		lineItems = append(lineItems, ports.ProviderLineItem{
			Name:       p.Name,
			Image:      p.Image,
			UnitAmount: unitAmount,
			Quantity:   p.Quantity,
		})
		snapshot = append(snapshot, sessionItem{
			ID:         p.ID,
			Quantity:   p.Quantity,
			UnitAmount: unitAmount,
		})
	}

	discountID := ""
	if couponCode != "" {
		coupon, err := s.coupons.FindActiveByCode(ctx, couponCode, userID)
		if err == nil {
			total -= int64(math.Round(float64(total) * float64(coupon.DiscountPercentage) / 100))
			discountID, err = s.provider.CreateDiscount(ctx, coupon.DiscountPercentage)
			if err != nil {
				return nil, fmt.Errorf("%w: create discount: %v", domain.ErrProviderUnavailable, err)
			}
		} else if err != domain.ErrCouponNotFound {
			return nil, err
		}
	}

	itemsJSON, err := json.Marshal(snapshot)
	if err != nil {
		return nil, err
	}

	sessionID, err := s.provider.CreateSession(ctx, ports.ProviderSessionInput{
		LineItems:  lineItems,
		DiscountID: discountID,
		SuccessURL: s.successURL,
		CancelURL:  s.cancelURL,
		Metadata: map[string]string{
			"userId":     userID,
			"couponCode": couponCode,
			"items":      string(itemsJSON),
		},
	})
	if err != nil {
		return nil, fmt.Errorf("%w: create session: %v", domain.ErrProviderUnavailable, err)
	}

	// Big spenders earn a fresh coupon. Fire-and-forget: not transactional
	// with the checkout, and a failure never fails the session.
	if total >= giftCouponThreshold {
		if _, err := s.couponSvc.CreateGiftCoupon(ctx, userID); err != nil {
			s.log.Warn().Err(err).Str("user_id", userID).Msg("failed to issue gift coupon")
		}
	}

	s.log.Info().
		Str("user_id", userID).
		Str("session_id", sessionID).
		Int64("total_amount", total).
		Msg("checkout session created")

	return &ports.CheckoutSessionResult{SessionID: sessionID, TotalAmount: total}, nil
}

// ListOrders returns the user's confirmed orders, newest first.
func (s *CheckoutService) ListOrders(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orders.FindByUser(ctx, userID)
}

func (s *CheckoutService) ConfirmSession(ctx context.Context, sessionID string) (*domain.Order, error) {
	// Re-fetch the session status from the provider; the caller-supplied
	// callback is never trusted. This round-trip gates the local write.
	fetchCtx, cancel := context.WithTimeout(ctx, confirmTimeout)
	defer cancel()

	session, err := s.provider.RetrieveSession(fetchCtx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w: retrieve session: %v", domain.ErrProviderUnavailable, err)
	}

	if session.PaymentStatus != ports.ProviderStatusPaid {
		return nil, domain.ErrPaymentIncomplete
	}

	userID := session.Metadata["userId"]
	if couponCode := session.Metadata["couponCode"]; couponCode != "" {
		if err := s.coupons.Deactivate(ctx, couponCode, userID); err != nil {
			return nil, err
		}
	}

	var snapshot []sessionItem
	if err := json.Unmarshal([]byte(session.Metadata["items"]), &snapshot); err != nil {
		return nil, fmt.Errorf("decode session items: %w", err)
	}

	items := make([]domain.OrderItem, 0, len(snapshot))
	for _, it := range snapshot {
		items = append(items, domain.OrderItem{
			ProductID:  it.ID,
			Quantity:   it.Quantity,
			UnitAmount: it.UnitAmount,
		})
	}

	order, err := s.orders.Create(ctx, &domain.Order{
		UserID:            userID,
		Items:             items,
		TotalAmount:       session.AmountTotal,
		ProviderSessionID: session.ID,
		CreatedAt:         time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.log.Info().
		Str("order_id", order.ID).
		Str("user_id", userID).
		Str("session_id", session.ID).
		Int64("total_amount", order.TotalAmount).
		Msg("order confirmed")

	return order, nil
}
