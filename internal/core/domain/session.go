package domain

import "time"

// Credential lifetimes. The refresh TTL doubles as the session-store entry
// TTL and the refresh cookie max-age, so the three always expire together.
const (
	AccessTokenTTL  = 15 * time.Minute
	RefreshTokenTTL = 7 * 24 * time.Hour
)
