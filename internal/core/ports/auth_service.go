package ports

import (
	"context"

	"github.com/modabay/storefront-api/internal/core/domain"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*domain.User, TokenPair, error)
	Login(ctx context.Context, email, password string) (*domain.User, TokenPair, error)
	// Logout deletes the session entry named by the refresh token. The
	// cookie clearing itself is the transport layer's job.
	Logout(ctx context.Context, refreshToken string) error
	// Refresh exchanges a refresh token for a new access token. It fails
	// with domain.ErrUnauthorized when the submitted token does not exactly
	// match the one currently stored for the user.
	Refresh(ctx context.Context, refreshToken string) (string, error)
}
