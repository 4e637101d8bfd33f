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

const orderItemConflictMsg = "Order item references a product that does not exist"

// OrderRepository persists orders and their line items. Item writes always
// ride inside a transaction with their order; the aggregate update itself
// lives in the order service.
type OrderRepository struct {
	db *gorm.DB
}

// NewOrderRepository returns the order repository
func NewOrderRepository(db *gorm.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

func (r *OrderRepository) scoped(ctx context.Context, storeID uint) *gorm.DB {
	return r.db.WithContext(ctx).
		Where("store_id = ?", storeID).
		Preload("Items.Product")
}

// List returns the store's orders newest-first with items and their
// products loaded
func (r *OrderRepository) List(ctx context.Context, storeID uint) ([]model.Order, error) {
	var orders []model.Order
	err := r.scoped(ctx, storeID).Order("created_at DESC").Find(&orders).Error
	if err != nil {
		return nil, err
	}
	return orders, nil
}

// Get returns one order aggregate scoped to the store
func (r *OrderRepository) Get(ctx context.Context, storeID, id uint) (*model.Order, error) {
	var order model.Order
	err := r.scoped(ctx, storeID).Where("id = ?", id).First(&order).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Order not found")
	}
	if err != nil {
		return nil, err
	}
	return &order, nil
}

// Create inserts the order and its items as one unit. An item pointing at a
// nonexistent product, or at another store's product, aborts the whole insert.
func (r *OrderRepository) Create(ctx context.Context, order *model.Order, items []model.OrderItem) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := itemsInStore(tx, order.StoreID, items); err != nil {
			return err
		}
		if err := tx.Create(order).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		for i := range items {
			items[i].OrderID = order.ID
		}
		return tx.Create(&items).Error
	})
	if err != nil {
		return translate(err, orderItemConflictMsg)
	}
	return nil
}

// UpdateAggregate atomically applies the payment flag flip and the full item
// replacement, then re-reads the aggregate inside the same transaction. A nil
// isPaid keeps the current flag; a nil items pointer keeps the current item
// set; a non-nil empty slice clears it. Callers never observe the new flag
// with the old items or vice versa.
func (r *OrderRepository) UpdateAggregate(ctx context.Context, storeID, id uint, isPaid *bool, items *[]model.OrderItem) (*model.Order, error) {
	defer prometheus.TrackDBOperation("update")(time.Now())

	var updated model.Order
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order model.Order
		err := tx.Where("store_id = ? AND id = ?", storeID, id).First(&order).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Order not found")
		}
		if err != nil {
			return err
		}

		if isPaid != nil {
			if err := tx.Model(&order).Update("is_paid", *isPaid).Error; err != nil {
				return err
			}
		}

		if items != nil {
			if err := itemsInStore(tx, storeID, *items); err != nil {
				return err
			}
			if err := tx.Where("order_id = ?", order.ID).Delete(&model.OrderItem{}).Error; err != nil {
				return err
			}
			if len(*items) > 0 {
				newItems := make([]model.OrderItem, len(*items))
				copy(newItems, *items)
				for i := range newItems {
					newItems[i].ID = 0
					newItems[i].OrderID = order.ID
				}
				if err := tx.Create(&newItems).Error; err != nil {
					return err
				}
			}
		}

		return tx.Preload("Items.Product").First(&updated, order.ID).Error
	})
	if err != nil {
		return nil, translate(err, orderItemConflictMsg)
	}
	return &updated, nil
}

// itemsInStore verifies every item's product exists in the given store. A
// product from another store is rejected exactly like a missing one.
func itemsInStore(tx *gorm.DB, storeID uint, items []model.OrderItem) error {
	if len(items) == 0 {
		return nil
	}
	ids := make([]uint, 0, len(items))
	seen := make(map[uint]struct{}, len(items))
	for _, item := range items {
		if _, ok := seen[item.ProductID]; ok {
			continue
		}
		seen[item.ProductID] = struct{}{}
		ids = append(ids, item.ProductID)
	}

	var count int64
	err := tx.Model(&model.Product{}).Where("store_id = ? AND id IN ?", storeID, ids).Count(&count).Error
	if err != nil {
		return err
	}
	if count != int64(len(ids)) {
		return apperr.Conflict(orderItemConflictMsg)
	}
	return nil
}

// Delete removes the order and its items
func (r *OrderRepository) Delete(ctx context.Context, storeID, id uint) error {
	defer prometheus.TrackDBOperation("delete")(time.Now())

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var order model.Order
		err := tx.Where("store_id = ? AND id = ?", storeID, id).First(&order).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return apperr.NotFound("Order not found")
		}
		if err != nil {
			return err
		}
		if err := tx.Where("order_id = ?", order.ID).Delete(&model.OrderItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(&order).Error
	})
}
