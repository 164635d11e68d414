package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/modabay/storefront-api/internal/api/metrics"
	"github.com/modabay/storefront-api/internal/api/middleware"
	"github.com/modabay/storefront-api/internal/core/domain"
	"github.com/modabay/storefront-api/internal/core/ports"
)

// AuthHandler handles signup, login, logout and the refresh-token exchange.
// Tokens travel only as cookies: httpOnly, SameSite=Strict, Secure in
// production. Clearing both cookies is the logout contract.
type AuthHandler struct {
	authService ports.AuthService
	secure      bool
}

func NewAuthHandler(authService ports.AuthService, secureCookies bool) *AuthHandler {
	return &AuthHandler{authService: authService, secure: secureCookies}
}

type signupRequest struct {
	Name     string `json:"name"     validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type userResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type authResponse struct {
	User    userResponse `json:"user"`
	Message string       `json:"message"`
}

type messageResponse struct {
	Message string `json:"message"`
}

// Signup creates a new customer account and starts a session.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      signupRequest  true  "Account details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /api/auth/signup [post]
func (h *AuthHandler) Signup(c echo.Context) error {
	var req signupRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, pair, err := h.authService.Signup(c.Request().Context(), req.Name, req.Email, req.Password)
	if err != nil {
		return err
	}

	h.setAuthCookies(c, pair)
	return c.JSON(http.StatusCreated, authResponse{
		User:    toUserResponse(user),
		Message: "user created successfully",
	})
}

// Login authenticates an account and starts a session, replacing any
// session the user had elsewhere.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, pair, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	h.setAuthCookies(c, pair)
	return c.JSON(http.StatusOK, authResponse{
		User:    toUserResponse(user),
		Message: "logged in successfully",
	})
}

// Logout revokes the session named by the refresh cookie and clears both
// auth cookies.
//
// @Summary      Logout
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Router       /api/auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	refreshToken := cookieValue(c, middleware.RefreshCookie)

	if err := h.authService.Logout(c.Request().Context(), refreshToken); err != nil {
		return err
	}

	h.clearAuthCookies(c)
	return c.JSON(http.StatusOK, messageResponse{Message: "logged out successfully"})
}

// Refresh exchanges the refresh cookie for a fresh access-token cookie.
//
// @Summary      Refresh the access token
// @Tags         auth
// @Produce      json
// @Success      200  {object}  messageResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/auth/refresh-token [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	refreshToken := cookieValue(c, middleware.RefreshCookie)
	if refreshToken == "" {
		metrics.TokenRefreshesTotal.WithLabelValues("failure").Inc()
		return echo.NewHTTPError(http.StatusUnauthorized, "no refresh token provided")
	}

	accessToken, err := h.authService.Refresh(c.Request().Context(), refreshToken)
	if err != nil {
		metrics.TokenRefreshesTotal.WithLabelValues("failure").Inc()
		return err
	}
	metrics.TokenRefreshesTotal.WithLabelValues("success").Inc()

	h.setCookie(c, middleware.AccessCookie, accessToken, domain.AccessTokenTTL)
	return c.JSON(http.StatusOK, messageResponse{Message: "token refreshed successfully"})
}

// Profile returns the authenticated user.
//
// @Summary      Get current user profile
// @Tags         auth
// @Produce      json
// @Success      200  {object}  userResponse
// @Failure      401  {object}  errorResponse
// @Router       /api/auth/profile [get]
func (h *AuthHandler) Profile(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toUserResponse(user))
}

func (h *AuthHandler) setAuthCookies(c echo.Context, pair ports.TokenPair) {
	h.setCookie(c, middleware.AccessCookie, pair.AccessToken, domain.AccessTokenTTL)
	h.setCookie(c, middleware.RefreshCookie, pair.RefreshToken, domain.RefreshTokenTTL)
}

func (h *AuthHandler) clearAuthCookies(c echo.Context) {
	h.setCookie(c, middleware.AccessCookie, "", -time.Second)
	h.setCookie(c, middleware.RefreshCookie, "", -time.Second)
}

func (h *AuthHandler) setCookie(c echo.Context, name, value string, ttl time.Duration) {
	c.SetCookie(&http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		MaxAge:   int(ttl.Seconds()),
		HttpOnly: true,
		Secure:   h.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

func cookieValue(c echo.Context, name string) string {
	cookie, err := c.Cookie(name)
	if err != nil {
		return ""
	}
	return cookie.Value
}

func toUserResponse(user *domain.User) userResponse {
	return userResponse{
		ID:    user.ID,
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
}
