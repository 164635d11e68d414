package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/modabay/storefront-api/internal/api/middleware"
	"github.com/modabay/storefront-api/internal/core/domain"
)

// currentUser extracts the user record injected by the Auth middleware and
// fast-fails with 401 when it is absent (which means the route was wired
// without the middleware, or the middleware was bypassed).
func currentUser(c echo.Context) (*domain.User, error) {
	user, ok := middleware.UserFromContext(c)
	if !ok || user == nil {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication")
	}
	return user, nil
}
