package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/modabay/storefront-api/internal/core/ports"
)

// CouponHandler handles coupon lookup and validation for the current user.
type CouponHandler struct {
	service ports.CouponService
}

func NewCouponHandler(service ports.CouponService) *CouponHandler {
	return &CouponHandler{service: service}
}

type validateCouponRequest struct {
	Code string `json:"code" validate:"required"`
}

type validCouponResponse struct {
	Message            string `json:"message"`
	Code               string `json:"code"`
	DiscountPercentage int    `json:"discount_percentage"`
}

// GetActive handles GET /api/coupons — the user's active coupon, or null.
//
// @Summary      Get the active coupon
// @Tags         coupons
// @Produce      json
// @Success      200  {object}  domain.Coupon
// @Failure      401  {object}  errorResponse
// @Router       /api/coupons [get]
func (h *CouponHandler) GetActive(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	coupon, err := h.service.GetActive(c.Request().Context(), user.ID)
	if err != nil {
		return err
	}
	// No active coupon is a normal answer, not an error.
	return c.JSON(http.StatusOK, coupon)
}

// Validate handles POST /api/coupons/validate.
//
// @Summary      Validate a coupon code
// @Tags         coupons
// @Accept       json
// @Produce      json
// @Param        body  body      validateCouponRequest  true  "Coupon code"
// @Success      200   {object}  validCouponResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/coupons/validate [post]
func (h *CouponHandler) Validate(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req validateCouponRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	coupon, err := h.service.Validate(c.Request().Context(), req.Code, user.ID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, validCouponResponse{
		Message:            "coupon is valid",
		Code:               coupon.Code,
		DiscountPercentage: coupon.DiscountPercentage,
	})
}
