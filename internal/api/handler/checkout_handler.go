package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/modabay/storefront-api/internal/api/metrics"
	"github.com/modabay/storefront-api/internal/core/ports"
)

// CheckoutHandler exposes the two checkout steps: opening a provider session
// and confirming it after the provider-side payment.
type CheckoutHandler struct {
	service ports.CheckoutService
}

func NewCheckoutHandler(service ports.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{service: service}
}

type checkoutProductRequest struct {
	ID       string  `json:"id"       validate:"required"`
	Name     string  `json:"name"     validate:"required"`
	Image    string  `json:"image"`
	Price    float64 `json:"price"    validate:"required,gt=0"`
	Quantity int64   `json:"quantity" validate:"required,gt=0"`
}

type createSessionRequest struct {
	Products   []checkoutProductRequest `json:"products"`
	CouponCode string                   `json:"coupon_code"`
}

type createSessionResponse struct {
	ID string `json:"id"`
	// TotalAmount is the discounted total converted back to major units.
	TotalAmount float64 `json:"total_amount"`
}

type confirmRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

type confirmResponse struct {
	Message string `json:"message"`
	OrderID string `json:"order_id"`
}

// CreateSession handles POST /api/payments/create-checkout-session.
//
// @Summary      Open a payment-provider checkout session
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      createSessionRequest  true  "Cart snapshot and optional coupon"
// @Success      200   {object}  createSessionResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /api/payments/create-checkout-session [post]
func (h *CheckoutHandler) CreateSession(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req createSessionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	for _, p := range req.Products {
		if err := c.Validate(&p); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}

	products := make([]ports.CheckoutProductInput, 0, len(req.Products))
	for _, p := range req.Products {
		products = append(products, ports.CheckoutProductInput{
			ID:       p.ID,
			Name:     p.Name,
			Image:    p.Image,
			Price:    p.Price,
			Quantity: p.Quantity,
		})
	}

	result, err := h.service.CreateSession(c.Request().Context(), user.ID, products, req.CouponCode)
	if err != nil {
		metrics.CheckoutSessionsTotal.WithLabelValues("failed").Inc()
		return err
	}
	metrics.CheckoutSessionsTotal.WithLabelValues("created").Inc()

	return c.JSON(http.StatusOK, createSessionResponse{
		ID:          result.SessionID,
		TotalAmount: float64(result.TotalAmount) / 100,
	})
}

// Orders handles GET /api/orders — the current user's order history.
//
// @Summary      List the current user's orders
// @Tags         orders
// @Produce      json
// @Success      200  {array}   domain.Order
// @Failure      401  {object}  errorResponse
// @Router       /api/orders [get]
func (h *CheckoutHandler) Orders(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	orders, err := h.service.ListOrders(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, orders)
}

// Confirm handles POST /api/payments/checkout-success. The session id is the
// only thing taken from the caller; payment status is re-fetched from the
// provider.
//
// @Summary      Confirm a checkout session and persist the order
// @Tags         payments
// @Accept       json
// @Produce      json
// @Param        body  body      confirmRequest  true  "Provider session id"
// @Success      200   {object}  confirmResponse
// @Failure      400   {object}  errorResponse
// @Failure      402   {object}  errorResponse
// @Failure      503   {object}  errorResponse
// @Router       /api/payments/checkout-success [post]
func (h *CheckoutHandler) Confirm(c echo.Context) error {
	if _, err := currentUser(c); err != nil {
		return err
	}

	var req confirmRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	order, err := h.service.ConfirmSession(c.Request().Context(), req.SessionID)
	if err != nil {
		return err
	}
	metrics.OrdersConfirmedTotal.Inc()

	return c.JSON(http.StatusOK, confirmResponse{
		Message: "payment successful, order created",
		OrderID: order.ID,
	})
}
