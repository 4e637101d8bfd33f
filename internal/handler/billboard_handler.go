package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/apperr"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/middleware"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/model"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/repository"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/service"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/validation"
	"github.com/momen-x/e-commerce-Admin-dashboard/pkg/logger"
	"github.com/momen-x/e-commerce-Admin-dashboard/prometheus"
	"go.uber.org/zap"
)

// BillboardHandler serves the billboard endpoints. Reads are public after a
// store-exists check; writes require the store owner.
type BillboardHandler struct {
	repo *repository.Catalog[model.Billboard]
	gate *service.AuthzGate
}

// NewBillboardHandler returns the billboard handler
func NewBillboardHandler(repo *repository.Catalog[model.Billboard], gate *service.AuthzGate) *BillboardHandler {
	return &BillboardHandler{repo: repo, gate: gate}
}

// List handles GET /api/stores/:storeId/billboards
func (h *BillboardHandler) List(c echo.Context) error {
	storeID, err := paramID(c, "storeId")
	if err != nil {
		return respondError(c, err)
	}

	ctx := c.Request().Context()
	if _, err := h.gate.StoreExists(ctx, storeID); err != nil {
		return respondError(c, err)
	}

	billboards, err := h.repo.List(ctx, storeID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, billboards)
}

// Get handles GET /api/stores/:storeId/billboards/:id
func (h *BillboardHandler) Get(c echo.Context) error {
	storeID, err := paramID(c, "storeId")
	if err != nil {
		return respondError(c, err)
	}
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	billboard, err := h.repo.Get(c.Request().Context(), storeID, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, billboard)
}

// Create handles POST /api/stores/:storeId/billboards
func (h *BillboardHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)

	storeID, err := paramID(c, "storeId")
	if err != nil {
		return respondError(c, err)
	}

	var in validation.BillboardInput
	if err := c.Bind(&in); err != nil {
		return respondBadRequest(c, "Invalid request data")
	}
	if errs := in.Validate(); len(errs) > 0 {
		return respondValidation(c, errs)
	}

	ctx := c.Request().Context()
	if _, err := h.gate.Authorize(ctx, middleware.CallerID(c), storeID); err != nil {
		return respondError(c, err)
	}

	billboard := &model.Billboard{
		StoreID:  storeID,
		Label:    in.Label,
		ImageURL: in.ImageURL,
	}
	if err := h.repo.Create(ctx, billboard); err != nil {
		return respondError(c, err)
	}

	log.Info("Billboard created",
		zap.Uint("store_id", storeID),
		zap.Uint("billboard_id", billboard.ID),
		zap.String("label", billboard.Label))
	prometheus.RecordCatalogOperation("billboard", "create")
	return c.JSON(http.StatusCreated, billboard)
}

// Update handles PATCH /api/stores/:storeId/billboards/:id with
// partial-field semantics
func (h *BillboardHandler) Update(c echo.Context) error {
	storeID, err := paramID(c, "storeId")
	if err != nil {
		return respondError(c, err)
	}
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var in validation.BillboardUpdateInput
	if err := c.Bind(&in); err != nil {
		return respondBadRequest(c, "Invalid request data")
	}
	if errs := in.Validate(); len(errs) > 0 {
		return respondValidation(c, errs)
	}

	ctx := c.Request().Context()
	if _, err := h.gate.Authorize(ctx, middleware.CallerID(c), storeID); err != nil {
		return respondError(c, err)
	}

	fields := map[string]interface{}{}
	if in.Label != nil {
		fields["label"] = *in.Label
	}
	if in.ImageURL != nil {
		fields["image_url"] = *in.ImageURL
	}

	billboard, err := h.repo.Update(ctx, storeID, id, fields)
	if err != nil {
		return respondError(c, err)
	}

	prometheus.RecordCatalogOperation("billboard", "update")
	return c.JSON(http.StatusOK, billboard)
}

// Delete handles DELETE /api/stores/:storeId/billboards/:id. A billboard
// still referenced by a category is rejected with Conflict.
func (h *BillboardHandler) Delete(c echo.Context) error {
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
		if apperr.IsConflict(err) {
			prometheus.RecordConflict("billboard")
		}
		return respondError(c, err)
	}

	prometheus.RecordCatalogOperation("billboard", "delete")
	return c.JSON(http.StatusOK, echo.Map{"message": "Billboard deleted successfully"})
}
