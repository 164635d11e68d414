package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/modabay/storefront-api/internal/core/domain"
	"github.com/modabay/storefront-api/internal/core/ports"
)

// TokenService signs and verifies the two JWT credentials. Access and
// refresh tokens use separate secrets so one can never stand in for the
// other. Claims carry only the user id (plus exp and a jti for uniqueness).
type TokenService struct {
	accessSecret  string
	refreshSecret string
	accessTTL     time.Duration
	refreshTTL    time.Duration
}

func NewTokenService(accessSecret, refreshSecret string, accessTTL, refreshTTL time.Duration) *TokenService {
	// Zero means default; negative TTLs are allowed so tests can mint
	// already-expired tokens.
	if accessTTL == 0 {
		accessTTL = domain.AccessTokenTTL
	}
	if refreshTTL == 0 {
		refreshTTL = domain.RefreshTokenTTL
	}
	return &TokenService{
		accessSecret:  accessSecret,
		refreshSecret: refreshSecret,
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
	}
}

func (s *TokenService) Issue(userID string) (ports.TokenPair, error) {
	access, err := sign(userID, s.accessSecret, s.accessTTL)
	if err != nil {
		return ports.TokenPair{}, err
	}
	refresh, err := sign(userID, s.refreshSecret, s.refreshTTL)
	if err != nil {
		return ports.TokenPair{}, err
	}
	return ports.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func (s *TokenService) IssueAccess(userID string) (string, error) {
	return sign(userID, s.accessSecret, s.accessTTL)
}

func (s *TokenService) VerifyAccess(token string) (string, error) {
	return verify(token, s.accessSecret)
}

func (s *TokenService) VerifyRefresh(token string) (string, error) {
	return verify(token, s.refreshSecret)
}

func sign(userID, secret string, ttl time.Duration) (string, error) {
	claims := jwt.MapClaims{
		"userId": userID,
		"exp":    time.Now().Add(ttl).Unix(),
		"jti":    uuid.NewString(),
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(secret))
}

func verify(token, secret string) (string, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(secret), nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", domain.ErrTokenExpired
		}
		return "", domain.ErrInvalidToken
	}
	if !tkn.Valid {
		return "", domain.ErrInvalidToken
	}

	userID, _ := claims["userId"].(string)
	if userID == "" {
		return "", domain.ErrInvalidToken
	}
	return userID, nil
}
