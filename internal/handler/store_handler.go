package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/middleware"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/model"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/repository"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/service"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/validation"
	"github.com/momen-x/e-commerce-Admin-dashboard/pkg/logger"
	"github.com/momen-x/e-commerce-Admin-dashboard/prometheus"
	"go.uber.org/zap"
)

// StoreHandler serves the tenancy roots: create, list, rename and the
// cascading delete.
type StoreHandler struct {
	stores  *repository.StoreRepository
	gate    *service.AuthzGate
	deleter *service.StoreDeleter
}

// NewStoreHandler returns the store handler
func NewStoreHandler(stores *repository.StoreRepository, gate *service.AuthzGate, deleter *service.StoreDeleter) *StoreHandler {
	return &StoreHandler{stores: stores, gate: gate, deleter: deleter}
}

// Create handles POST /api/stores
func (h *StoreHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)
	callerID := middleware.CallerID(c)

	var in validation.StoreInput
	if err := c.Bind(&in); err != nil {
		return respondBadRequest(c, "Invalid request data")
	}
	if errs := in.Validate(); len(errs) > 0 {
		return respondValidation(c, errs)
	}

	ctx := c.Request().Context()
	taken, err := h.stores.NameTaken(ctx, callerID, in.Name)
	if err != nil {
		return respondError(c, err)
	}
	if taken {
		return respondBadRequest(c, "Store already exists")
	}

	store := &model.Store{Name: in.Name, OwnerID: callerID}
	if err := h.stores.Create(ctx, store); err != nil {
		return respondError(c, err)
	}

	log.Info("Store created",
		zap.Uint("store_id", store.ID),
		zap.String("name", store.Name),
		zap.Uint("owner_id", store.OwnerID))
	prometheus.RecordStoreOperation("create")
	return c.JSON(http.StatusCreated, store)
}

// List handles GET /api/stores, returning the caller's stores
func (h *StoreHandler) List(c echo.Context) error {
	callerID := middleware.CallerID(c)

	stores, err := h.stores.ListByOwner(c.Request().Context(), callerID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, stores)
}

// Get handles GET /api/stores/:storeId, owner only
func (h *StoreHandler) Get(c echo.Context) error {
	storeID, err := paramID(c, "storeId")
	if err != nil {
		return respondError(c, err)
	}

	store, err := h.gate.Authorize(c.Request().Context(), middleware.CallerID(c), storeID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, store)
}

// Update handles PUT /api/stores/:storeId, renaming the store
func (h *StoreHandler) Update(c echo.Context) error {
	log := logger.FromEcho(c)

	storeID, err := paramID(c, "storeId")
	if err != nil {
		return respondError(c, err)
	}

	var in validation.StoreInput
	if err := c.Bind(&in); err != nil {
		return respondBadRequest(c, "Invalid request data")
	}
	if errs := in.Validate(); len(errs) > 0 {
		return respondValidation(c, errs)
	}

	ctx := c.Request().Context()
	store, err := h.gate.Authorize(ctx, middleware.CallerID(c), storeID)
	if err != nil {
		return respondError(c, err)
	}

	if store.Name != in.Name {
		taken, err := h.stores.NameTaken(ctx, store.OwnerID, in.Name)
		if err != nil {
			return respondError(c, err)
		}
		if taken {
			return respondBadRequest(c, "Store already exists")
		}
	}

	updated, err := h.stores.Rename(ctx, storeID, in.Name)
	if err != nil {
		return respondError(c, err)
	}

	log.Info("Store renamed",
		zap.Uint("store_id", storeID),
		zap.String("name", updated.Name))
	prometheus.RecordStoreOperation("update")
	return c.JSON(http.StatusOK, updated)
}

// Delete handles DELETE /api/stores/:storeId. The store and its entire
// entity graph go together or not at all.
func (h *StoreHandler) Delete(c echo.Context) error {
	storeID, err := paramID(c, "storeId")
	if err != nil {
		return respondError(c, err)
	}

	if err := h.deleter.DeleteStore(c.Request().Context(), middleware.CallerID(c), storeID); err != nil {
		return respondError(c, err)
	}

	prometheus.RecordStoreOperation("delete")
	return c.JSON(http.StatusOK, echo.Map{"message": "Store deleted successfully"})
}
