package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/modabay/storefront-api/internal/core/domain"
	"github.com/modabay/storefront-api/internal/core/ports"
)

const (
	giftCouponPercentage = 10
	giftCouponLifetime   = 30 * 24 * time.Hour
)

// CouponService manages per-user single-use discount coupons.
type CouponService struct {
	repo ports.CouponRepository
	log  zerolog.Logger
}

func NewCouponService(repo ports.CouponRepository, log zerolog.Logger) *CouponService {
	return &CouponService{repo: repo, log: log}
}

func (s *CouponService) GetActive(ctx context.Context, userID string) (*domain.Coupon, error) {
	coupon, err := s.repo.FindActiveByUser(ctx, userID)
	if err != nil {
		if err == domain.ErrCouponNotFound {
			return nil, nil
		}
		return nil, err
	}
	return coupon, nil
}

func (s *CouponService) Validate(ctx context.Context, code, userID string) (*domain.Coupon, error) {
	coupon, err := s.repo.FindActiveByCode(ctx, code, userID)
	if err != nil {
		return nil, err
	}

	if coupon.Expired(time.Now().UTC()) {
		if err := s.repo.Deactivate(ctx, coupon.Code, userID); err != nil {
			s.log.Warn().Err(err).Str("code", coupon.Code).Msg("failed to deactivate expired coupon")
		}
		return nil, domain.ErrCouponExpired
	}

	return coupon, nil
}

// CreateGiftCoupon enforces the one-active-coupon-per-user invariant at
// creation time: if the user already holds an active coupon, that coupon is
// returned and no new one is inserted.
func (s *CouponService) CreateGiftCoupon(ctx context.Context, userID string) (*domain.Coupon, error) {
	existing, err := s.repo.FindActiveByUser(ctx, userID)
	if err == nil {
		return existing, nil
	}
	if err != domain.ErrCouponNotFound {
		return nil, err
	}

	now := time.Now().UTC()
	coupon := &domain.Coupon{
		Code:               generateCouponCode(),
		DiscountPercentage: giftCouponPercentage,
		ExpirationDate:     now.Add(giftCouponLifetime),
		IsActive:           true,
		UserID:             userID,
		CreatedAt:          now,
	}

	created, err := s.repo.Create(ctx, coupon)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", userID).Str("code", created.Code).Msg("gift coupon issued")
	return created, nil
}

// generateCouponCode returns a code like GIFT3F9A2C.
func generateCouponCode() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:6]
	return "GIFT" + suffix
}
