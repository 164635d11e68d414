package service

import (
	"testing"
	"time"

	"github.com/modabay/storefront-api/internal/core/domain"
)

func newTestTokens() *TokenService {
	return NewTokenService("access-secret", "refresh-secret", 0, 0)
}

func TestTokenService_Issue_DistinctTokensSameSubject(t *testing.T) {
	svc := newTestTokens()

	first, err := svc.Issue("user_1")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	second, err := svc.Issue("user_1")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if first.AccessToken == second.AccessToken {
		t.Fatalf("expected distinct access tokens")
	}
	if first.RefreshToken == second.RefreshToken {
		t.Fatalf("expected distinct refresh tokens")
	}

	for _, token := range []string{first.AccessToken, second.AccessToken} {
		userID, err := svc.VerifyAccess(token)
		if err != nil {
			t.Fatalf("verify access failed: %v", err)
		}
		if userID != "user_1" {
			t.Fatalf("expected user_1, got %s", userID)
		}
	}
	for _, token := range []string{first.RefreshToken, second.RefreshToken} {
		userID, err := svc.VerifyRefresh(token)
		if err != nil {
			t.Fatalf("verify refresh failed: %v", err)
		}
		if userID != "user_1" {
			t.Fatalf("expected user_1, got %s", userID)
		}
	}
}

func TestTokenService_Verify_SecretsNotInterchangeable(t *testing.T) {
	svc := newTestTokens()

	pair, err := svc.Issue("user_1")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := svc.VerifyAccess(pair.RefreshToken); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for refresh token on access verify, got %v", err)
	}
	if _, err := svc.VerifyRefresh(pair.AccessToken); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for access token on refresh verify, got %v", err)
	}
}

func TestTokenService_Verify_Expired(t *testing.T) {
	svc := NewTokenService("access-secret", "refresh-secret", -time.Minute, -time.Minute)

	pair, err := svc.Issue("user_1")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := svc.VerifyAccess(pair.AccessToken); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
	if _, err := svc.VerifyRefresh(pair.RefreshToken); err != domain.ErrTokenExpired {
		t.Fatalf("expected ErrTokenExpired, got %v", err)
	}
}

func TestTokenService_Verify_Garbage(t *testing.T) {
	svc := newTestTokens()

	if _, err := svc.VerifyAccess("not-a-token"); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}

func TestTokenService_Verify_TamperedSecret(t *testing.T) {
	svc := newTestTokens()
	other := NewTokenService("different-secret", "refresh-secret", 0, 0)

	pair, err := svc.Issue("user_1")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}

	if _, err := other.VerifyAccess(pair.AccessToken); err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken for wrong secret, got %v", err)
	}
}
