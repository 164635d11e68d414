package domain

import "time"

// Coupon is a per-user, time-bounded percentage discount. It is single-use:
// a confirmed checkout flips IsActive to false. At most one active coupon
// exists per user at a time.
type Coupon struct {
	ID                 string    `json:"id"`
	Code               string    `json:"code"`
	DiscountPercentage int       `json:"discount_percentage"`
	ExpirationDate     time.Time `json:"expiration_date"`
	IsActive           bool      `json:"is_active"`
	UserID             string    `json:"user_id"`
	CreatedAt          time.Time `json:"created_at"`
}

// Expired reports whether the coupon's expiration date has passed.
func (c *Coupon) Expired(now time.Time) bool {
	return c.ExpirationDate.Before(now)
}
