package service

import (
	"context"
	"crypto/subtle"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/modabay/storefront-api/internal/core/domain"
	"github.com/modabay/storefront-api/internal/core/ports"
)

// AuthService implements signup, login and the refresh-token lifecycle.
// The session store holds exactly one refresh token per user; each login or
// refresh rotation overwrites it, which is the sole replay-prevention
// mechanism.
type AuthService struct {
	users    ports.UserRepository
	tokens   ports.TokenService
	sessions ports.SessionStore
	log      zerolog.Logger
}

func NewAuthService(users ports.UserRepository, tokens ports.TokenService, sessions ports.SessionStore, log zerolog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, sessions: sessions, log: log}
}

func (s *AuthService) Signup(ctx context.Context, name, email, password string) (*domain.User, ports.TokenPair, error) {
	if name == "" || email == "" || password == "" {
		return nil, ports.TokenPair{}, domain.ErrInvalidCredentials
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ports.TokenPair{}, domain.ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, ports.TokenPair{}, err
	}

	now := time.Now().UTC()
	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleCustomer,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		return nil, ports.TokenPair{}, err
	}

	pair, err := s.startSession(ctx, created.ID)
	if err != nil {
		return nil, ports.TokenPair{}, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("user signed up")
	return created, pair, nil
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*domain.User, ports.TokenPair, error) {
	if email == "" || password == "" {
		return nil, ports.TokenPair{}, domain.ErrInvalidCredentials
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, ports.TokenPair{}, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ports.TokenPair{}, domain.ErrInvalidCredentials
	}

	pair, err := s.startSession(ctx, user.ID)
	if err != nil {
		return nil, ports.TokenPair{}, err
	}

	s.log.Info().Str("user_id", user.ID).Msg("user logged in")
	return user, pair, nil
}

// startSession issues a fresh token pair and stores the refresh token,
// overwriting whatever session the user had before.
func (s *AuthService) startSession(ctx context.Context, userID string) (ports.TokenPair, error) {
	pair, err := s.tokens.Issue(userID)
	if err != nil {
		return ports.TokenPair{}, err
	}
	if err := s.sessions.Put(ctx, userID, pair.RefreshToken, domain.RefreshTokenTTL); err != nil {
		return ports.TokenPair{}, err
	}
	return pair, nil
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return nil
	}

	userID, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		// The cookies get cleared either way; an unverifiable token has no
		// session entry we could name, so there is nothing left to do.
		s.log.Debug().Err(err).Msg("logout with unverifiable refresh token")
		return nil
	}

	if err := s.sessions.Delete(ctx, userID); err != nil {
		return err
	}

	s.log.Info().Str("user_id", userID).Msg("user logged out")
	return nil
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if refreshToken == "" {
		return "", domain.ErrUnauthorized
	}

	userID, err := s.tokens.VerifyRefresh(refreshToken)
	if err != nil {
		return "", err
	}

	stored, err := s.sessions.Get(ctx, userID)
	if err != nil {
		return "", err
	}
	// Byte-for-byte match against the stored token. A cryptographically
	// valid token that has been rotated out (new login elsewhere) or revoked
	// (logout) fails here.
	if stored == "" || subtle.ConstantTimeCompare([]byte(stored), []byte(refreshToken)) != 1 {
		return "", domain.ErrUnauthorized
	}

	return s.tokens.IssueAccess(userID)
}
