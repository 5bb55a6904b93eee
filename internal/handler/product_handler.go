package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"storefront/internal/model"
	"storefront/internal/service"
)

// ProductHandler handles catalog endpoints.
type ProductHandler struct {
	svc service.ProductService
	log *zap.Logger
}

// NewProductHandler creates a new product handler.
func NewProductHandler(svc service.ProductService, log *zap.Logger) *ProductHandler {
	return &ProductHandler{svc: svc, log: log}
}

// AddProductRequest represents a new catalog entry. Price and rate are
// pointers so that an explicit 0 is told apart from a missing field.
type AddProductRequest struct {
	Title string   `json:"title" validate:"required"`
	URL   string   `json:"url" validate:"required"`
	Price *float64 `json:"price" validate:"required,min=0"`
	Rate  *float64 `json:"rate" validate:"required,min=0,max=5"`
}

// Add godoc
// @Summary Add a product
// @Tags product
// @Accept json
// @Produce json
// @Param request body AddProductRequest true "Product"
// @Success 201 {object} model.Product
// @Failure 400 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /product/add [post]
func (h *ProductHandler) Add(c echo.Context) error {
	var req AddProductRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidBody.Echo()
	}
	if err := c.Validate(&req); err != nil {
		return respond(c, h.log, toValidationError("Product", err), "Failed to save product")
	}

	product, err := h.svc.Add(c.Request().Context(), model.Product{
		Title: req.Title,
		URL:   req.URL,
		Price: *req.Price,
		Rate:  *req.Rate,
	})
	if err != nil {
		return respond(c, h.log, err, "Failed to save product")
	}
	return c.JSON(http.StatusCreated, product)
}

// Search godoc
// @Summary Search products by title
// @Description Case-insensitive regular expression match on the title. An empty query returns every product.
// @Tags product
// @Produce json
// @Param search query string false "Title pattern"
// @Success 200 {array} model.Product
// @Failure 500 {object} errors.ErrorResponse
// @Router /product/search [get]
func (h *ProductHandler) Search(c echo.Context) error {
	products, err := h.svc.Search(c.Request().Context(), c.QueryParam("search"))
	if err != nil {
		return respond(c, h.log, err, "Failed to search products")
	}
	return c.JSON(http.StatusOK, products)
}

// List godoc
// @Summary List products
// @Tags product
// @Produce json
// @Success 200 {array} model.ProductSummary
// @Failure 500 {object} errors.ErrorResponse
// @Router /product/get [get]
func (h *ProductHandler) List(c echo.Context) error {
	summaries, err := h.svc.List(c.Request().Context())
	if err != nil {
		return respond(c, h.log, err, "Failed to retrieve products")
	}
	return c.JSON(http.StatusOK, summaries)
}
