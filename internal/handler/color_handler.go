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

// ColorHandler serves the color option endpoints
type ColorHandler struct {
	repo *repository.Catalog[model.Color]
	gate *service.AuthzGate
}

// NewColorHandler returns the color handler
func NewColorHandler(repo *repository.Catalog[model.Color], gate *service.AuthzGate) *ColorHandler {
	return &ColorHandler{repo: repo, gate: gate}
}

// List handles GET /api/stores/:storeId/colors
func (h *ColorHandler) List(c echo.Context) error {
	storeID, err := paramID(c, "storeId")
	if err != nil {
		return respondError(c, err)
	}

	ctx := c.Request().Context()
	if _, err := h.gate.StoreExists(ctx, storeID); err != nil {
		return respondError(c, err)
	}

	colors, err := h.repo.List(ctx, storeID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, colors)
}

// Get handles GET /api/stores/:storeId/colors/:id
func (h *ColorHandler) Get(c echo.Context) error {
	storeID, err := paramID(c, "storeId")
	if err != nil {
		return respondError(c, err)
	}
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	color, err := h.repo.Get(c.Request().Context(), storeID, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, color)
}

// Create handles POST /api/stores/:storeId/colors
func (h *ColorHandler) Create(c echo.Context) error {
	storeID, err := paramID(c, "storeId")
	if err != nil {
		return respondError(c, err)
	}

	var in validation.ColorInput
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

	color := &model.Color{
		StoreID: storeID,
		Name:    in.Name,
		Value:   in.Value,
	}
	if err := h.repo.Create(ctx, color); err != nil {
		return respondError(c, err)
	}

	prometheus.RecordCatalogOperation("color", "create")
	return c.JSON(http.StatusCreated, color)
}

// Update handles PATCH /api/stores/:storeId/colors/:id
func (h *ColorHandler) Update(c echo.Context) error {
	storeID, err := paramID(c, "storeId")
	if err != nil {
		return respondError(c, err)
	}
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var in validation.ColorUpdateInput
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

	color, err := h.repo.Update(ctx, storeID, id, fields)
	if err != nil {
		return respondError(c, err)
	}

	prometheus.RecordCatalogOperation("color", "update")
	return c.JSON(http.StatusOK, color)
}

// Delete handles DELETE /api/stores/:storeId/colors/:id. A color still
// referenced by a product is rejected with Conflict.
func (h *ColorHandler) Delete(c echo.Context) error {
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
			prometheus.RecordConflict("color")
		}
		return respondError(c, err)
	}

	prometheus.RecordCatalogOperation("color", "delete")
	return c.JSON(http.StatusOK, echo.Map{"message": "Color deleted successfully"})
}
