package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/apperr"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/middleware"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/repository"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/service"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/validation"
	"github.com/momen-x/e-commerce-Admin-dashboard/pkg/logger"
	"github.com/momen-x/e-commerce-Admin-dashboard/prometheus"
	"go.uber.org/zap"
)

// OrderHandler serves the order endpoints. Creation and the webhook-driven
// update are public storefront paths; only deletion requires the owner.
type OrderHandler struct {
	repo   *repository.OrderRepository
	orders *service.OrderService
	gate   *service.AuthzGate
}

// NewOrderHandler returns the order handler
func NewOrderHandler(repo *repository.OrderRepository, orders *service.OrderService, gate *service.AuthzGate) *OrderHandler {
	return &OrderHandler{repo: repo, orders: orders, gate: gate}
}

// List handles GET /api/stores/:storeId/orders, newest-first
func (h *OrderHandler) List(c echo.Context) error {
	storeID, err := paramID(c, "storeId")
	if err != nil {
		return respondError(c, err)
	}

	ctx := c.Request().Context()
	if _, err := h.gate.StoreExists(ctx, storeID); err != nil {
		return respondError(c, err)
	}

	orders, err := h.repo.List(ctx, storeID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, orders)
}

// Get handles GET /api/stores/:storeId/orders/:id
func (h *OrderHandler) Get(c echo.Context) error {
	storeID, err := paramID(c, "storeId")
	if err != nil {
		return respondError(c, err)
	}
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	order, err := h.repo.Get(c.Request().Context(), storeID, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, order)
}

// Create handles POST /api/stores/:storeId/orders, the anonymous storefront
// write
func (h *OrderHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)

	storeID, err := paramID(c, "storeId")
	if err != nil {
		return respondError(c, err)
	}

	var in validation.OrderInput
	if err := c.Bind(&in); err != nil {
		return respondBadRequest(c, "Invalid request data")
	}
	if errs := in.Validate(); len(errs) > 0 {
		return respondValidation(c, errs)
	}

	order, err := h.orders.CreateOrder(c.Request().Context(), storeID, &in)
	if err != nil {
		if apperr.IsConflict(err) {
			prometheus.RecordConflict("order")
		}
		return respondError(c, err)
	}

	log.Info("Order created",
		zap.Uint("store_id", storeID),
		zap.Uint("order_id", order.ID),
		zap.Int("item_count", len(order.Items)))
	prometheus.RecordOrderOperation("create")
	return c.JSON(http.StatusCreated, order)
}

// Update handles PATCH /api/stores/:storeId/orders/:id, the
// webhook-equivalent path flipping the payment flag and replacing items
func (h *OrderHandler) Update(c echo.Context) error {
	log := logger.FromEcho(c)

	storeID, err := paramID(c, "storeId")
	if err != nil {
		return respondError(c, err)
	}
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var in validation.OrderUpdateInput
	if err := c.Bind(&in); err != nil {
		return respondBadRequest(c, "Invalid request data")
	}
	if errs := in.Validate(); len(errs) > 0 {
		return respondValidation(c, errs)
	}

	order, err := h.orders.UpdateOrder(c.Request().Context(), storeID, id, &in)
	if err != nil {
		if apperr.IsConflict(err) {
			prometheus.RecordConflict("order")
		}
		return respondError(c, err)
	}

	log.Info("Order updated",
		zap.Uint("store_id", storeID),
		zap.Uint("order_id", order.ID),
		zap.Bool("is_paid", order.IsPaid),
		zap.Int("item_count", len(order.Items)))
	prometheus.RecordOrderOperation("update")
	return c.JSON(http.StatusOK, order)
}

// Delete handles DELETE /api/stores/:storeId/orders/:id, owner only
func (h *OrderHandler) Delete(c echo.Context) error {
	storeID, err := paramID(c, "storeId")
	if err != nil {
		return respondError(c, err)
	}
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	ctx := c.Request().Context()
	if _, err := h.gate.Authorize(ctx, middleware.CallerID(c), storeID); err != nil {
		return respondError(c, err)
	}

	if err := h.repo.Delete(ctx, storeID, id); err != nil {
		return respondError(c, err)
	}

	prometheus.RecordOrderOperation("delete")
	return c.JSON(http.StatusOK, echo.Map{"message": "Order deleted successfully"})
}
