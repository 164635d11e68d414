package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/modabay/storefront-api/internal/core/domain"
	"github.com/modabay/storefront-api/internal/core/ports"
)

// AccessCookie is the cookie carrying the short-lived access token.
const AccessCookie = "access_token"

// RefreshCookie is the cookie carrying the long-lived refresh token.
const RefreshCookie = "refresh_token"

// userContextKey is where Auth stashes the loaded user record.
const userContextKey = "user"

// Auth verifies the access-token cookie, loads the user record and injects
// it into the request context. An expired token is reported distinctly from
// an invalid one so the client can decide whether to hit the refresh route.
func Auth(tokens ports.TokenService, users ports.UserRepository) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(AccessCookie)
			if err != nil || cookie.Value == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing access token")
			}

			userID, err := tokens.VerifyAccess(cookie.Value)
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					return echo.NewHTTPError(http.StatusUnauthorized, "access token expired")
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid access token")
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "user not found")
			}

			c.Set(userContextKey, user)
			return next(c)
		}
	}
}

// UserFromContext returns the user record injected by Auth.
func UserFromContext(c echo.Context) (*domain.User, bool) {
	user, ok := c.Get(userContextKey).(*domain.User)
	return user, ok
}
