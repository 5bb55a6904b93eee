package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"storefront/internal/auth"
	apperrors "storefront/internal/errors"
	"storefront/internal/model"
	"storefront/internal/service"
)

// OrderHandler handles order endpoints. Every route requires auth.Middleware.
type OrderHandler struct {
	svc service.OrderService
	log *zap.Logger
}

// NewOrderHandler creates a new order handler.
func NewOrderHandler(svc service.OrderService, log *zap.Logger) *OrderHandler {
	return &OrderHandler{svc: svc, log: log}
}

// AddOrderRequest represents an order placement. The owner comes from the
// token; any "user" field in the body is ignored.
type AddOrderRequest struct {
	Address        map[string]interface{} `json:"address"`
	ContactDetails string                 `json:"contactDetails"`
	OrderedItems   []interface{}          `json:"orderedItems"`
	TotalPrice     float64                `json:"totalPrice"`
}

// OrderCreatedResponse is returned after an order is stored.
type OrderCreatedResponse struct {
	Message  string      `json:"message"`
	NewOrder model.Order `json:"newOrder"`
}

// OrderListResponse wraps the caller's orders.
type OrderListResponse struct {
	Orders []model.UserOrder `json:"orders"`
}

// Add godoc
// @Summary Place an order
// @Tags order
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body AddOrderRequest true "Order"
// @Success 201 {object} OrderCreatedResponse
// @Failure 400 {object} errors.ErrorResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /order/add [post]
func (h *OrderHandler) Add(c echo.Context) error {
	identity, ok := auth.IdentityFromEcho(c)
	if !ok {
		return apperrors.MapErrorToHTTP(apperrors.ErrMissingToken, "").Echo()
	}

	var req AddOrderRequest
	if err := c.Bind(&req); err != nil {
		return errInvalidBody.Echo()
	}

	order, err := h.svc.Add(c.Request().Context(), identity.UserID, service.OrderInput{
		Address:        req.Address,
		ContactDetails: req.ContactDetails,
		OrderedItems:   req.OrderedItems,
		TotalPrice:     req.TotalPrice,
	})
	if err != nil {
		return respond(c, h.log, err, "Failed to add order")
	}

	return c.JSON(http.StatusCreated, OrderCreatedResponse{
		Message:  "Order created successfully",
		NewOrder: *order,
	})
}

// ListForUser godoc
// @Summary List the caller's orders
// @Tags order
// @Produce json
// @Security BearerAuth
// @Success 200 {object} OrderListResponse
// @Failure 401 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorResponse
// @Router /order/user/ [get]
func (h *OrderHandler) ListForUser(c echo.Context) error {
	identity, ok := auth.IdentityFromEcho(c)
	if !ok {
		return apperrors.MapErrorToHTTP(apperrors.ErrMissingToken, "").Echo()
	}

	orders, err := h.svc.ListForUser(c.Request().Context(), identity.UserID)
	if err != nil {
		return respond(c, h.log, err, "Failed to fetch user orders")
	}
	return c.JSON(http.StatusOK, OrderListResponse{Orders: orders})
}
