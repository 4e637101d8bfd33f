package handler

import (
	"net/http"
	"strconv"

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

// ProductHandler serves the product endpoints. The storefront reads publicly
// with optional filters; the owner manages the catalog.
type ProductHandler struct {
	repo *repository.ProductRepository
	gate *service.AuthzGate
}

// NewProductHandler returns the product handler
func NewProductHandler(repo *repository.ProductRepository, gate *service.AuthzGate) *ProductHandler {
	return &ProductHandler{repo: repo, gate: gate}
}

// List handles GET /api/stores/:storeId/products with optional
// category_id, is_featured and is_archived filters
func (h *ProductHandler) List(c echo.Context) error {
	storeID, err := paramID(c, "storeId")
	if err != nil {
		return respondError(c, err)
	}

	ctx := c.Request().Context()
	if _, err := h.gate.StoreExists(ctx, storeID); err != nil {
		return respondError(c, err)
	}

	var filter repository.ProductFilter
	if raw := c.QueryParam("category_id"); raw != "" {
		categoryID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			return respondBadRequest(c, "Invalid category_id")
		}
		id := uint(categoryID)
		filter.CategoryID = &id
	}
	if raw := c.QueryParam("is_featured"); raw != "" {
		featured, err := strconv.ParseBool(raw)
		if err != nil {
			return respondBadRequest(c, "Invalid is_featured")
		}
		filter.IsFeatured = &featured
	}
	if raw := c.QueryParam("is_archived"); raw != "" {
		archived, err := strconv.ParseBool(raw)
		if err != nil {
			return respondBadRequest(c, "Invalid is_archived")
		}
		filter.IsArchived = &archived
	}

	products, err := h.repo.List(ctx, storeID, filter)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, products)
}

// Get handles GET /api/stores/:storeId/products/:id
func (h *ProductHandler) Get(c echo.Context) error {
	storeID, err := paramID(c, "storeId")
	if err != nil {
		return respondError(c, err)
	}
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	product, err := h.repo.Get(c.Request().Context(), storeID, id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, product)
}

// Create handles POST /api/stores/:storeId/products
func (h *ProductHandler) Create(c echo.Context) error {
	log := logger.FromEcho(c)

	storeID, err := paramID(c, "storeId")
	if err != nil {
		return respondError(c, err)
	}

	var in validation.ProductInput
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

	product := &model.Product{
		StoreID:    storeID,
		Name:       in.Name,
		Price:      in.Price,
		CategoryID: in.CategoryID,
		SizeID:     in.SizeID,
		ColorID:    in.ColorID,
		IsFeatured: in.IsFeatured,
		IsArchived: in.IsArchived,
	}
	if err := h.repo.Create(ctx, product, in.Images); err != nil {
		return respondError(c, err)
	}

	created, err := h.repo.Get(ctx, storeID, product.ID)
	if err != nil {
		return respondError(c, err)
	}

	log.Info("Product created",
		zap.Uint("store_id", storeID),
		zap.Uint("product_id", product.ID),
		zap.String("name", product.Name),
		zap.Int64("price", product.Price))
	prometheus.RecordCatalogOperation("product", "create")
	return c.JSON(http.StatusCreated, created)
}

// Update handles PATCH /api/stores/:storeId/products/:id. Supplying an
// image list replaces the whole set; omitted fields stay as they are.
func (h *ProductHandler) Update(c echo.Context) error {
	storeID, err := paramID(c, "storeId")
	if err != nil {
		return respondError(c, err)
	}
	id, err := paramID(c, "id")
	if err != nil {
		return respondError(c, err)
	}

	var in validation.ProductUpdateInput
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
	if in.Price != nil {
		fields["price"] = *in.Price
	}
	if in.CategoryID != nil {
		fields["category_id"] = *in.CategoryID
	}
	if in.SizeID != nil {
		fields["size_id"] = *in.SizeID
	}
	if in.ColorID != nil {
		fields["color_id"] = *in.ColorID
	}
	if in.IsFeatured != nil {
		fields["is_featured"] = *in.IsFeatured
	}
	if in.IsArchived != nil {
		fields["is_archived"] = *in.IsArchived
	}

	product, err := h.repo.Update(ctx, storeID, id, fields, in.Images)
	if err != nil {
		return respondError(c, err)
	}

	prometheus.RecordCatalogOperation("product", "update")
	return c.JSON(http.StatusOK, product)
}

// Delete handles DELETE /api/stores/:storeId/products/:id. A product still
// referenced by order items is rejected with Conflict.
func (h *ProductHandler) Delete(c echo.Context) error {
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
			prometheus.RecordConflict("product")
		}
		return respondError(c, err)
	}

	prometheus.RecordCatalogOperation("product", "delete")
	return c.JSON(http.StatusOK, echo.Map{"message": "Product deleted successfully"})
}
