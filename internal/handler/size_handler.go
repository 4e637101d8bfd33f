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
	"github.com/momen-x/e-commerce-Admin-dashboard/prometheus"
)

// SizeHandler serves the size option endpoints
type SizeHandler struct {
	repo *repository.Catalog[model.Size]
	gate *service.AuthzGate
}

// NewSizeHandler returns the size handler
func NewSizeHandler(repo *repository.Catalog[model.Size], gate *service.AuthzGate) *SizeHandler {
	return &SizeHandler{repo: repo, gate: gate}
}

// List handles GET /api/stores/:storeId/sizes
func (h *SizeHandler) List(c echo.Context) error {
	storeID, err := paramID(c, "storeId")
	if err != nil {
		return respondError(c, err)
	}

	ctx := c.Request().Context()
	if _, err := h.gate.StoreExists(ctx, storeID); err != nil {
		return respondError(c, err)
	}

	sizes, err := h.repo.List(ctx, storeID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, sizes)
}

// Get handles GET /api/stores/:storeId/sizes/:id
func (h *SizeHandler) Get(c echo.Context) error {
	storeID, err := paramID(c, "storeId")
	if err != nil {
		return respondError(c, err)
	}
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	size, err := h.repo.Get(c.Request().Context(), storeID, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, size)
}

// Create handles POST /api/stores/:storeId/sizes
func (h *SizeHandler) Create(c echo.Context) error {
	storeID, err := paramID(c, "storeId")
	if err != nil {
		return respondError(c, err)
	}

	var in validation.SizeInput
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

	size := &model.Size{
		StoreID: storeID,
		Name:    in.Name,
		Value:   in.Value,
	}
	if err := h.repo.Create(ctx, size); err != nil {
		return respondError(c, err)
	}

	prometheus.RecordCatalogOperation("size", "create")
	return c.JSON(http.StatusCreated, size)
}

// Update handles PATCH /api/stores/:storeId/sizes/:id
func (h *SizeHandler) Update(c echo.Context) error {
	storeID, err := paramID(c, "storeId")
	if err != nil {
		return respondError(c, err)
	}
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var in validation.SizeUpdateInput
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
	if in.Name != nil {
		fields["name"] = *in.Name
	}
	if in.Value != nil {
		fields["value"] = *in.Value
	}

	size, err := h.repo.Update(ctx, storeID, id, fields)
	if err != nil {
		return respondError(c, err)
	}

	prometheus.RecordCatalogOperation("size", "update")
	return c.JSON(http.StatusOK, size)
}

// Delete handles DELETE /api/stores/:storeId/sizes/:id. A size still
// referenced by a product is rejected with Conflict.
func (h *SizeHandler) Delete(c echo.Context) error {
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
			prometheus.RecordConflict("size")
		}
		return respondError(c, err)
	}

	prometheus.RecordCatalogOperation("size", "delete")
	return c.JSON(http.StatusOK, echo.Map{"message": "Size deleted successfully"})
}
