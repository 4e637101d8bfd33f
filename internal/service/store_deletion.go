package service

import (
	"context"

	"github.com/momen-x/e-commerce-Admin-dashboard/internal/model"
	"github.com/momen-x/e-commerce-Admin-dashboard/pkg/logger"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// StoreDeleter removes a store together with its entire owned entity graph.
// The steps run in foreign-key order inside one transaction: a failure at
// any step rolls everything back and leaves the store fully intact.
type StoreDeleter struct {
	db   *gorm.DB
	gate *AuthzGate
}

// NewStoreDeleter returns the cascade deletion coordinator
func NewStoreDeleter(db *gorm.DB, gate *AuthzGate) *StoreDeleter {
	return &StoreDeleter{db: db, gate: gate}
}

// DeleteStore authorizes the caller and deletes the store's full graph.
// Deletion order: order items, orders, product images, products, categories,
// billboards, sizes, colors, then the store row. Each step removes rows whose
// foreign keys point at rows deleted by a later step, so no step can trip a
// constraint.
func (d *StoreDeleter) DeleteStore(ctx context.Context, callerID, storeID uint) error {
	log := logger.FromContext(ctx)

	store, err := d.gate.Authorize(ctx, callerID, storeID)
	if err != nil {
		return err
	}

	err = d.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		orderIDs := tx.Table("orders").Select("id").Where("store_id = ?", storeID)
		if err := tx.Where("order_id IN (?)", orderIDs).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("store_id = ?", storeID).Delete(&model.Order{}).Error; err != nil {
			return err
		}

		productIDs := tx.Table("products").Select("id").Where("store_id = ?", storeID)
		if err := tx.Where("product_id IN (?)", productIDs).Delete(&model.ProductImage{}).Error; err != nil {
			return err
		}
		if err := tx.Where("store_id = ?", storeID).Delete(&model.Product{}).Error; err != nil {
			return err
		}

		if err := tx.Where("store_id = ?", storeID).Delete(&model.Category{}).Error; err != nil {
			return err
		}
		if err := tx.Where("store_id = ?", storeID).Delete(&model.Billboard{}).Error; err != nil {
			return err
		}
		if err := tx.Where("store_id = ?", storeID).Delete(&model.Size{}).Error; err != nil {
			return err
		}
		if err := tx.Where("store_id = ?", storeID).Delete(&model.Color{}).Error; err != nil {
			return err
		}

		return tx.Delete(&model.Store{}, storeID).Error
	})
	if err != nil {
		log.Error("Store cascade deletion failed, rolled back",
			zap.Uint("store_id", storeID),
			zap.Error(err))
		return err
	}

	log.Info("Store deleted with full entity graph",
		zap.Uint("store_id", storeID),
		zap.String("store_name", store.Name),
		zap.Uint("owner_id", store.OwnerID))
	return nil
}
