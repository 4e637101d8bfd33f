package repository

import (
	"context"
	"errors"
	"time"

	"github.com/momen-x/e-commerce-Admin-dashboard/internal/apperr"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/model"
	"github.com/momen-x/e-commerce-Admin-dashboard/prometheus"
	"gorm.io/gorm"
)

const (
	productRefConflictMsg    = "Referenced category, size or color does not exist"
	productDeleteConflictMsg = "Product is still referenced by order items"
)

// ProductFilter narrows a product listing. Nil fields are ignored.
type ProductFilter struct {
	CategoryID *uint
	IsFeatured *bool
	IsArchived *bool
}

// ProductRepository persists products together with their ordered image
// lists. Multi-row writes (product plus images) run in one transaction.
type ProductRepository struct {
	db *gorm.DB
}

// NewProductRepository returns the product repository
func NewProductRepository(db *gorm.DB) *ProductRepository {
	return &ProductRepository{db: db}
}

func (r *ProductRepository) scoped(ctx context.Context, storeID uint) *gorm.DB {
	return r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Preload("Category").
		Preload("Size").
		Preload("Color").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		})
}

// List returns the store's products with their category, size, color and
// images loaded
func (r *ProductRepository) List(ctx context.Context, storeID uint, filter ProductFilter) ([]model.Product, error) {
	query := r.scoped(ctx, storeID)
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.IsFeatured != nil {
		query = query.Where("is_featured = ?", *filter.IsFeatured)
	}
	if filter.IsArchived != nil {
		query = query.Where("is_archived = ?", *filter.IsArchived)
	}

	var products []model.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

// Get returns one product scoped to the store
func (r *ProductRepository) Get(ctx context.Context, storeID, id uint) (*model.Product, error) {
	var product model.Product
	err := r.scoped(ctx, storeID).Where("id = ?", id).First(&product).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Product not found")
	}
	if err != nil {
		return nil, err
	}
	return &product, nil
}

// Create inserts the product and its image rows as one unit. The referenced
// category, size and color must belong to the same store.
func (r *ProductRepository) Create(ctx context.Context, product *model.Product, imageURLs []string) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := productRefsInStore(tx, product); err != nil {
			return err
		}
		if err := tx.Create(product).Error; err != nil {
			return err
		}
		return insertImages(tx, product.ID, imageURLs)
	})
	if err != nil {
		return translate(err, productRefConflictMsg)
	}
	return nil
}

// Update applies a partial-field update. A non-nil image list replaces the
// whole image set; fields and images commit together or not at all.
func (r *ProductRepository) Update(ctx context.Context, storeID, id uint, fields map[string]interface{}, imageURLs *[]string) (*model.Product, error) {
	defer prometheus.TrackDBOperation("update")(time.Now())

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product model.Product
		err := tx.Where("store_id = ? AND id = ?", storeID, id).First(&product).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Product not found")
		}
		if err != nil {
			return err
		}

		if len(fields) > 0 {
			if err := tx.Model(&product).Updates(fields).Error; err != nil {
				return err
			}
			if err := tx.Where("store_id = ? AND id = ?", storeID, id).First(&product).Error; err != nil {
				return err
			}
			if err := productRefsInStore(tx, &product); err != nil {
				return err
			}
		}

		if imageURLs != nil {
			if err := tx.Where("product_id = ?", product.ID).Delete(&model.ProductImage{}).Error; err != nil {
				return err
			}
			if err := insertImages(tx, product.ID, *imageURLs); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, translate(err, productRefConflictMsg)
	}
	return r.Get(ctx, storeID, id)
}

// Delete removes the product and its image rows. A product still referenced
// by order items is rejected with Conflict.
func (r *ProductRepository) Delete(ctx context.Context, storeID, id uint) error {
	defer prometheus.TrackDBOperation("delete")(time.Now())

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product model.Product
		err := tx.Where("store_id = ? AND id = ?", storeID, id).First(&product).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Product not found")
		}
		if err != nil {
			return err
		}

		// Items referencing the product must block deletion before the
		// owned image rows are touched.
		var itemCount int64
		if err := tx.Model(&model.OrderItem{}).Where("product_id = ?", product.ID).Count(&itemCount).Error; err != nil {
			return err
		}
		if itemCount > 0 {
			return apperr.Conflict(productDeleteConflictMsg)
		}

		if err := tx.Where("product_id = ?", product.ID).Delete(&model.ProductImage{}).Error; err != nil {
			return err
		}
		return tx.Delete(&product).Error
	})
	return translate(err, productDeleteConflictMsg)
}

// productRefsInStore verifies the product's category, size and color all
// belong to the product's own store
func productRefsInStore(tx *gorm.DB, product *model.Product) error {
	if err := refInStore(tx, &model.Category{}, product.StoreID, product.CategoryID, productRefConflictMsg); err != nil {
		return err
	}
	if err := refInStore(tx, &model.Size{}, product.StoreID, product.SizeID, productRefConflictMsg); err != nil {
		return err
	}
	return refInStore(tx, &model.Color{}, product.StoreID, product.ColorID, productRefConflictMsg)
}

func insertImages(tx *gorm.DB, productID uint, urls []string) error {
	if len(urls) == 0 {
		return nil
	}
	images := make([]model.ProductImage, 0, len(urls))
	for i, url := range urls {
		images = append(images, model.ProductImage{
			ProductID: productID,
			URL:       url,
			Position:  i,
		})
	}
	return tx.Create(&images).Error
}
