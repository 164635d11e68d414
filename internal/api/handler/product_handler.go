package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/modabay/storefront-api/internal/core/ports"
)

// ProductHandler handles HTTP requests for the catalog: admin CRUD plus the
// public browse routes.
type ProductHandler struct {
	service ports.ProductService
}

func NewProductHandler(service ports.ProductService) *ProductHandler {
	return &ProductHandler{service: service}
}

type createProductRequest struct {
	Name        string  `json:"name"        validate:"required"`
	Description string  `json:"description" validate:"required"`
	Price       float64 `json:"price"       validate:"required,gt=0"`
	Image       string  `json:"image"`
	Category    string  `json:"category"    validate:"required"`
}

// List handles GET /api/products — the full catalog (admin only).
//
// @Summary      List all products
// @Tags         products
// @Produce      json
// @Success      200  {array}   domain.Product
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /api/products [get]
func (h *ProductHandler) List(c echo.Context) error {
	products, err := h.service.ListAll(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Featured handles GET /api/products/featured — served from cache when warm.
//
// @Summary      List featured products
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /api/products/featured [get]
func (h *ProductHandler) Featured(c echo.Context) error {
	products, err := h.service.Featured(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Recommended handles GET /api/products/recommendations — a random sample.
//
// @Summary      List recommended products
// @Tags         products
// @Produce      json
// @Success      200  {array}  domain.Product
// @Router       /api/products/recommendations [get]
func (h *ProductHandler) Recommended(c echo.Context) error {
	products, err := h.service.Recommended(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// ByCategory handles GET /api/products/category/:category.
//
// @Summary      List products in a category
// @Tags         products
// @Produce      json
// @Param        category  path     string  true  "Category name"
// @Success      200       {array}  domain.Product
// @Router       /api/products/category/{category} [get]
func (h *ProductHandler) ByCategory(c echo.Context) error {
	products, err := h.service.ByCategory(c.Request().Context(), c.Param("category"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, products)
}

// Create handles POST /api/products (admin only).
//
// @Summary      Create a product
// @Tags         products
// @Accept       json
// @Produce      json
// @Param        body  body      createProductRequest  true  "Product details (image as data URI)"
// @Success      201   {object}  domain.Product
// @Failure      400   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /api/products [post]
func (h *ProductHandler) Create(c echo.Context) error {
	var req createProductRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	product, err := h.service.Create(c.Request().Context(), ports.CreateProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Image:       req.Image,
		Category:    req.Category,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, product)
}

// Delete handles DELETE /api/products/:id (admin only).
//
// @Summary      Delete a product
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  messageResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/products/{id} [delete]
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, messageResponse{Message: "product deleted successfully"})
}

// ToggleFeatured handles PATCH /api/products/:id (admin only).
//
// @Summary      Toggle a product's featured flag
// @Tags         products
// @Produce      json
// @Param        id   path      string  true  "Product id"
// @Success      200  {object}  domain.Product
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /api/products/{id} [patch]
func (h *ProductHandler) ToggleFeatured(c echo.Context) error {
	product, err := h.service.ToggleFeatured(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, product)
}
