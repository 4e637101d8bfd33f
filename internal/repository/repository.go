// Package repository implements store-scoped persistence on top of gorm.
// Every read and write is keyed by the owning store id, so a row from one
// tenant can never be reached through another tenant's scope. Storage-level
// constraint violations are translated into the apperr taxonomy here and
// never leak upward as raw database errors.
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

// translate re-types storage constraint violations. Foreign-key violations
// become Conflict with the given human-readable dependency message; anything
// unrecognized passes through for the request boundary to normalize.
func translate(err error, conflictMsg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return apperr.Conflict(conflictMsg)
	}
	return err
}

// refInStore verifies a referenced row exists AND belongs to the given store.
// The foreign key alone only proves existence; rows must never reference
// another store's rows, and a cross-store id is reported exactly like a
// missing one so tenants cannot probe each other's catalogs.
func refInStore(tx *gorm.DB, modelValue interface{}, storeID, id uint, msg string) error {
	var count int64
	err := tx.Model(modelValue).Where("store_id = ? AND id = ?", storeID, id).Count(&count).Error
	if err != nil {
		return err
	}
	if count == 0 {
		return apperr.Conflict(msg)
	}
	return nil
}

// Catalog is the store-scoped repository shared by the simple catalog
// entities (billboards, categories, sizes, colors).
type Catalog[T any] struct {
	db        *gorm.DB
	resource  string // display name used in not-found messages
	deleteMsg string // conflict message when a delete hits a foreign key
	refMsg    string // conflict message when a write references a missing row
	preloads  []string
	checkRefs func(tx *gorm.DB, entity *T) error // store-scoped reference check, nil when the entity has none
}

// NewBillboardRepository returns the billboard repository
func NewBillboardRepository(db *gorm.DB) *Catalog[model.Billboard] {
	return &Catalog[model.Billboard]{
		db:        db,
		resource:  "Billboard",
		deleteMsg: "Billboard is still referenced by categories",
		refMsg:    "Referenced record does not exist",
	}
}

// NewCategoryRepository returns the category repository
func NewCategoryRepository(db *gorm.DB) *Catalog[model.Category] {
	return &Catalog[model.Category]{
		db:        db,
		resource:  "Category",
		deleteMsg: "Category is still referenced by products",
		refMsg:    "Referenced billboard does not exist",
		preloads:  []string{"Billboard"},
		checkRefs: func(tx *gorm.DB, category *model.Category) error {
			return refInStore(tx, &model.Billboard{}, category.StoreID, category.BillboardID,
				"Referenced billboard does not exist")
		},
	}
}

// NewSizeRepository returns the size repository
func NewSizeRepository(db *gorm.DB) *Catalog[model.Size] {
	return &Catalog[model.Size]{
		db:        db,
		resource:  "Size",
		deleteMsg: "Size is still referenced by products",
		refMsg:    "Referenced record does not exist",
	}
}

// NewColorRepository returns the color repository
func NewColorRepository(db *gorm.DB) *Catalog[model.Color] {
	return &Catalog[model.Color]{
		db:        db,
		resource:  "Color",
		deleteMsg: "Color is still referenced by products",
		refMsg:    "Referenced record does not exist",
	}
}

func (r *Catalog[T]) scoped(ctx context.Context, storeID uint) *gorm.DB {
	q := r.db.WithContext(ctx).Where("store_id = ?", storeID)
	for _, preload := range r.preloads {
		q = q.Preload(preload)
	}
	return q
}

// List returns every row belonging to the store
func (r *Catalog[T]) List(ctx context.Context, storeID uint) ([]T, error) {
	defer prometheus.TrackDBOperation("query")(time.Now())

	var entities []T
	if err := r.scoped(ctx, storeID).Find(&entities).Error; err != nil {
		return nil, err
	}
	return entities, nil
}

// Get returns one row scoped to the store
func (r *Catalog[T]) Get(ctx context.Context, storeID, id uint) (*T, error) {
	var entity T
	err := r.scoped(ctx, storeID).Where("id = ?", id).First(&entity).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound(r.resource + " not found")
	}
	if err != nil {
		return nil, err
	}
	return &entity, nil
}

// Create inserts the entity. The caller has already validated the payload
// and stamped the store id. References to other entities must point inside
// the same store.
func (r *Catalog[T]) Create(ctx context.Context, entity *T) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if r.checkRefs != nil {
			if err := r.checkRefs(tx, entity); err != nil {
				return err
			}
		}
		return translate(tx.Create(entity).Error, r.refMsg)
	})
}

// Update applies a partial-field update and returns the fresh row. Only the
// provided fields change. A retargeted reference is re-checked against the
// store before the update commits.
func (r *Catalog[T]) Update(ctx context.Context, storeID, id uint, fields map[string]interface{}) (*T, error) {
	entity, err := r.Get(ctx, storeID, id)
	if err != nil {
		return nil, err
	}
	if len(fields) > 0 {
		defer prometheus.TrackDBOperation("update")(time.Now())
		err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
			if err := tx.Model(entity).Updates(fields).Error; err != nil {
				return translate(err, r.refMsg)
			}
			if r.checkRefs != nil {
				var fresh T
				if err := tx.Where("store_id = ? AND id = ?", storeID, id).First(&fresh).Error; err != nil {
					return err
				}
				return r.checkRefs(tx, &fresh)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}
	return r.Get(ctx, storeID, id)
}

// Delete removes one row scoped to the store. A foreign key still pointing
// at the row surfaces as Conflict, never as a raw constraint error.
func (r *Catalog[T]) Delete(ctx context.Context, storeID, id uint) error {
	defer prometheus.TrackDBOperation("delete")(time.Now())

	var entity T
	result := r.db.WithContext(ctx).Where("store_id = ? AND id = ?", storeID, id).Delete(&entity)
	if result.Error != nil {
		return translate(result.Error, r.deleteMsg)
	}
	if result.RowsAffected == 0 {
		return apperr.NotFound(r.resource + " not found")
	}
	return nil
}
