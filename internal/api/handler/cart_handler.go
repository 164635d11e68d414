package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/modabay/storefront-api/internal/core/ports"
)

// CartHandler handles HTTP requests for cart operations. Every route runs
// behind the Auth middleware, so the user record is already loaded.
type CartHandler struct {
	service ports.CartService
}

func NewCartHandler(service ports.CartService) *CartHandler {
	return &CartHandler{service: service}
}

type addToCartRequest struct {
	ProductID string `json:"product_id" validate:"required"`
}

type removeFromCartRequest struct {
	// Empty or absent product_id clears the whole cart.
	ProductID string `json:"product_id"`
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

// View handles GET /api/cart — the cart joined against the catalog.
//
// @Summary      Get cart contents
// @Tags         cart
// @Produce      json
// @Success      200  {array}   ports.CartLine
// @Failure      401  {object}  errorResponse
// @Router       /api/cart [get]
func (h *CartHandler) View(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	lines, err := h.service.View(c.Request().Context(), user)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, lines)
}

// Add handles POST /api/cart — adds one unit of a product.
//
// @Summary      Add a product to the cart
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      addToCartRequest  true  "Product reference"
// @Success      200   {array}   domain.CartItem
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /api/cart [post]
func (h *CartHandler) Add(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items, err := h.service.AddItem(c.Request().Context(), user, req.ProductID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// Remove handles DELETE /api/cart — removes one product, or clears the cart
// when no product_id is supplied.
//
// @Summary      Remove a product from the cart (or clear it)
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        body  body      removeFromCartRequest  false  "Product reference; omit to clear"
// @Success      200   {array}   domain.CartItem
// @Failure      401   {object}  errorResponse
// @Router       /api/cart [delete]
func (h *CartHandler) Remove(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req removeFromCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	items, err := h.service.RemoveItem(c.Request().Context(), user, req.ProductID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}

// UpdateQuantity handles PUT /api/cart/:id — sets an entry's quantity;
// quantity 0 removes the entry.
//
// @Summary      Set the quantity of a cart entry
// @Tags         cart
// @Accept       json
// @Produce      json
// @Param        id    path      string                 true  "Product id"
// @Param        body  body      updateQuantityRequest  true  "New quantity"
// @Success      200   {array}   domain.CartItem
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /api/cart/{id} [put]
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	var req updateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	items, err := h.service.SetQuantity(c.Request().Context(), user, c.Param("id"), req.Quantity)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, items)
}
