package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/modabay/storefront-api/internal/core/domain"
	"github.com/modabay/storefront-api/internal/core/ports"
)

type checkoutFixture struct {
	svc      *CheckoutService
	coupons  *stubCouponRepo
	orders   *stubOrderRepo
	provider *stubProvider
}

func newTestCheckout(coupons ...*domain.Coupon) *checkoutFixture {
	repo := newStubCouponRepo(coupons...)
	orders := &stubOrderRepo{}
	provider := newStubProvider()
	couponSvc := NewCouponService(repo, zerolog.Nop())
	svc := NewCheckoutService(repo, couponSvc, orders, provider, "http://localhost:3000", zerolog.Nop())
	return &checkoutFixture{svc: svc, coupons: repo, orders: orders, provider: provider}
}

func TestCheckoutService_CreateSession_CentsMath(t *testing.T) {
	f := newTestCheckout()

	res, err := f.svc.CreateSession(context.Background(), "user_1", []ports.CheckoutProductInput{
		{ID: "p1", Name: "Mug", Price: 10.00, Quantity: 2},
		{ID: "p2", Name: "Shirt", Price: 5.00, Quantity: 1},
	}, "")
	if err != nil {
		t.Fatalf("create session failed: %v", err)
	}
	if res.TotalAmount != 2500 {
		t.Fatalf("expected 2500 cents, got %d", res.TotalAmount)
	}
	if res.SessionID == "" {
		t.Fatalf("expected a session id")
	}
	if f.provider.lastInput.LineItems[0].UnitAmount != 1000 || f.provider.lastInput.LineItems[0].Quantity != 2 {
		t.Fatalf("unexpected line item %+v", f.provider.lastInput.LineItems[0])
	}
}

func TestCheckoutService_CreateSession_CouponDiscountsTotal(t *testing.T) {
	f := newTestCheckout(&domain.Coupon{
		Code: "GIFTTENOFF", DiscountPercentage: 10,
		ExpirationDate: time.Now().Add(time.Hour), IsActive: true, UserID: "user_1",
	})

	res, err := f.svc.CreateSession(context.Background(), "user_1", []ports.CheckoutProductInput{
		{ID: "p1", Name: "Mug", Price: 10.00, Quantity: 2},
		{ID: "p2", Name: "Shirt", Price: 5.00, Quantity: 1},
	}, "GIFTTENOFF")
	if err != nil {
		t.Fatalf("create session failed: %v", err)
	}
	if res.TotalAmount != 2250 {
		t.Fatalf("expected 2250 cents after 10%% discount, got %d", res.TotalAmount)
	}
	if f.provider.discountCalls != 1 {
		t.Fatalf("expected one provider discount, got %d", f.provider.discountCalls)
	}
	if f.provider.lastInput.DiscountID != f.provider.lastDiscountID {
		t.Fatalf("discount id not forwarded to session: %q vs %q", f.provider.lastInput.DiscountID, f.provider.lastDiscountID)
	}
}

func TestCheckoutService_CreateSession_UnknownCouponIgnored(t *testing.T) {
	f := newTestCheckout()

	res, err := f.svc.CreateSession(context.Background(), "user_1", []ports.CheckoutProductInput{
		{ID: "p1", Name: "Mug", Price: 10.00, Quantity: 1},
	}, "GIFTNOSUCH")
	if err != nil {
		t.Fatalf("create session failed: %v", err)
	}
	if res.TotalAmount != 1000 {
		t.Fatalf("expected undiscounted total, got %d", res.TotalAmount)
	}
	if f.provider.discountCalls != 0 {
		t.Fatalf("expected no provider discount for unknown code")
	}
}

func TestCheckoutService_CreateSession_EmptyList(t *testing.T) {
	f := newTestCheckout()

	if _, err := f.svc.CreateSession(context.Background(), "user_1", nil, ""); err != domain.ErrEmptyCheckout {
		t.Fatalf("expected ErrEmptyCheckout, got %v", err)
	}
	if f.provider.createCalls != 0 {
		t.Fatalf("provider must not be called for an empty checkout")
	}
}

func TestCheckoutService_CreateSession_GiftCouponAtThreshold(t *testing.T) {
	f := newTestCheckout()

	res, err := f.svc.CreateSession(context.Background(), "user_1", []ports.CheckoutProductInput{
		{ID: "p1", Name: "Console", Price: 200.00, Quantity: 1},
	}, "")
	if err != nil {
		t.Fatalf("create session failed: %v", err)
	}
	if res.TotalAmount != 20000 {
		t.Fatalf("expected 20000 cents, got %d", res.TotalAmount)
	}

	coupon, err := f.coupons.FindActiveByUser(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("expected gift coupon to be issued: %v", err)
	}
	if coupon.DiscountPercentage != 10 {
		t.Fatalf("expected 10%% gift coupon, got %+v", coupon)
	}

	// A second qualifying checkout does not mint a second active coupon.
	if _, err := f.svc.CreateSession(context.Background(), "user_1", []ports.CheckoutProductInput{
		{ID: "p1", Name: "Console", Price: 200.00, Quantity: 1},
	}, ""); err != nil {
		t.Fatalf("create session failed: %v", err)
	}
	if len(f.coupons.coupons) != 1 {
		t.Fatalf("expected exactly one coupon, got %d", len(f.coupons.coupons))
	}
}

func TestCheckoutService_CreateSession_BelowThresholdNoGift(t *testing.T) {
	f := newTestCheckout()

	if _, err := f.svc.CreateSession(context.Background(), "user_1", []ports.CheckoutProductInput{
		{ID: "p1", Name: "Mug", Price: 199.99, Quantity: 1},
	}, ""); err != nil {
		t.Fatalf("create session failed: %v", err)
	}
	if len(f.coupons.coupons) != 0 {
		t.Fatalf("expected no gift coupon below threshold")
	}
}

func TestCheckoutService_ConfirmSession_PaidPersistsOrder(t *testing.T) {
	f := newTestCheckout(&domain.Coupon{
		Code: "GIFTTENOFF", DiscountPercentage: 10,
		ExpirationDate: time.Now().Add(time.Hour), IsActive: true, UserID: "user_1",
	})

	res, err := f.svc.CreateSession(context.Background(), "user_1", []ports.CheckoutProductInput{
		{ID: "p1", Name: "Mug", Price: 10.00, Quantity: 2},
	}, "GIFTTENOFF")
	if err != nil {
		t.Fatalf("create session failed: %v", err)
	}
	f.provider.markPaid(res.SessionID)

	order, err := f.svc.ConfirmSession(context.Background(), res.SessionID)
	if err != nil {
		t.Fatalf("confirm failed: %v", err)
	}
	if order.UserID != "user_1" || order.ProviderSessionID != res.SessionID {
		t.Fatalf("unexpected order %+v", order)
	}
	if len(order.Items) != 1 || order.Items[0].ProductID != "p1" || order.Items[0].Quantity != 2 || order.Items[0].UnitAmount != 1000 {
		t.Fatalf("order items not rebuilt from session snapshot: %+v", order.Items)
	}
	if f.coupons.coupons["GIFTTENOFF"].IsActive {
		t.Fatalf("expected redeemed coupon to be deactivated")
	}
	if len(f.orders.orders) != 1 {
		t.Fatalf("expected one persisted order, got %d", len(f.orders.orders))
	}
}

func TestCheckoutService_ConfirmSession_UnpaidNoOrder(t *testing.T) {
	f := newTestCheckout()

	res, err := f.svc.CreateSession(context.Background(), "user_1", []ports.CheckoutProductInput{
		{ID: "p1", Name: "Mug", Price: 10.00, Quantity: 1},
	}, "")
	if err != nil {
		t.Fatalf("create session failed: %v", err)
	}

	if _, err := f.svc.ConfirmSession(context.Background(), res.SessionID); err != domain.ErrPaymentIncomplete {
		t.Fatalf("expected ErrPaymentIncomplete, got %v", err)
	}
	if len(f.orders.orders) != 0 {
		t.Fatalf("no order may be written for an unpaid session")
	}
}

func TestCheckoutService_ListOrders_OnlyOwnOrders(t *testing.T) {
	f := newTestCheckout()
	f.orders.orders = []domain.Order{
		{ID: "order_1", UserID: "user_1"},
		{ID: "order_2", UserID: "user_2"},
		{ID: "order_3", UserID: "user_1"},
	}

	orders, err := f.svc.ListOrders(context.Background(), "user_1")
	if err != nil {
		t.Fatalf("list orders failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %+v", orders)
	}
	for _, o := range orders {
		if o.UserID != "user_1" {
			t.Fatalf("foreign order leaked: %+v", o)
		}
	}
}

func TestCheckoutService_ConfirmSession_ProviderFailure(t *testing.T) {
	f := newTestCheckout()

	_, err := f.svc.ConfirmSession(context.Background(), "cs_test_missing")
	if !errors.Is(err, domain.ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
