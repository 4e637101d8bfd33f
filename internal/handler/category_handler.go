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

// CategoryHandler serves the category endpoints
type CategoryHandler struct {
	repo *repository.Catalog[model.Category]
	gate *service.AuthzGate
}

// NewCategoryHandler returns the category handler
func NewCategoryHandler(repo *repository.Catalog[model.Category], gate *service.AuthzGate) *CategoryHandler {
	return &CategoryHandler{repo: repo, gate: gate}
}

// List handles GET /api/stores/:storeId/categories
func (h *CategoryHandler) List(c echo.Context) error {
	storeID, err := paramID(c, "storeId")
	if err != nil {
		return respondError(c, err)
	}

	ctx := c.Request().Context()
	if _, err := h.gate.StoreExists(ctx, storeID); err != nil {
		return respondError(c, err)
	}

	categories, err := h.repo.List(ctx, storeID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, categories)
}

// Get handles GET /api/stores/:storeId/categories/:id
func (h *CategoryHandler) Get(c echo.Context) error {
	storeID, err := paramID(c, "storeId")
	if err != nil {
		return respondError(c, err)
	}
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	category, err := h.repo.Get(c.Request().Context(), storeID, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, category)
}

// Create handles POST /api/stores/:storeId/categories. The referenced
// billboard must belong to the same store.
func (h *CategoryHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)

	storeID, err := paramID(c, "storeId")
	if err != nil {
		return respondError(c, err)
	}

	var in validation.CategoryInput
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

	category := &model.Category{
		StoreID:     storeID,
		Name:        in.Name,
		BillboardID: in.BillboardID,
	}
	if err := h.repo.Create(ctx, category); err != nil {
		return respondError(c, err)
	}

	log.Info("Category created",
		zap.Uint("store_id", storeID),
		zap.Uint("category_id", category.ID),
		zap.String("name", category.Name))
	prometheus.RecordCatalogOperation("category", "create")
	return c.JSON(http.StatusCreated, category)
}

// Update handles PATCH /api/stores/:storeId/categories/:id
func (h *CategoryHandler) Update(c echo.Context) error {
	storeID, err := paramID(c, "storeId")
	if err != nil {
		return respondError(c, err)
	}
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var in validation.CategoryUpdateInput
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
	if in.BillboardID != nil {
		fields["billboard_id"] = *in.BillboardID
	}

	category, err := h.repo.Update(ctx, storeID, id, fields)
	if err != nil {
		return respondError(c, err)
	}

	prometheus.RecordCatalogOperation("category", "update")
	return c.JSON(http.StatusOK, category)
}

// Delete handles DELETE /api/stores/:storeId/categories/:id. A category
// still referenced by a product is rejected with Conflict.
func (h *CategoryHandler) Delete(c echo.Context) error {
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
			prometheus.RecordConflict("category")
		}
		return respondError(c, err)
	}

	prometheus.RecordCatalogOperation("category", "delete")
	return c.JSON(http.StatusOK, echo.Map{"message": "Category deleted successfully"})
}
