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

// StoreRepository persists the tenancy roots. Deleting a store goes through
// the cascade coordinator, not through this repository.
type StoreRepository struct {
	db *gorm.DB
}

// NewStoreRepository returns the store repository
func NewStoreRepository(db *gorm.DB) *StoreRepository {
	return &StoreRepository{db: db}
}

// Get returns the store by id
func (r *StoreRepository) Get(ctx context.Context, id uint) (*model.Store, error) {
	var store model.Store
	err := r.db.WithContext(ctx).First(&store, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperr.NotFound("Store not found")
	}
	if err != nil {
		return nil, err
	}
	return &store, nil
}

// ListByOwner returns every store owned by the caller
func (r *StoreRepository) ListByOwner(ctx context.Context, ownerID uint) ([]model.Store, error) {
	var stores []model.Store
	if err := r.db.WithContext(ctx).Where("owner_id = ?", ownerID).Find(&stores).Error; err != nil {
		return nil, err
	}
	return stores, nil
}

// NameTaken reports whether the owner already has a store with this name
func (r *StoreRepository) NameTaken(ctx context.Context, ownerID uint, name string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&model.Store{}).
		Where("owner_id = ? AND name = ?", ownerID, name).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Create inserts a new store. Store names are unique per owner; a racing
// duplicate that slips past the pre-check is caught by the unique index.
func (r *StoreRepository) Create(ctx context.Context, store *model.Store) error {
	defer prometheus.TrackDBOperation("insert")(time.Now())

	err := r.db.WithContext(ctx).Create(store).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return apperr.Validation("Store already exists")
	}
	return err
}

// Rename updates the store name
func (r *StoreRepository) Rename(ctx context.Context, id uint, name string) (*model.Store, error) {
	defer prometheus.TrackDBOperation("update")(time.Now())

	store, err := r.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	err = r.db.WithContext(ctx).Model(store).Update("name", name).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, apperr.Validation("Store already exists")
	}
	if err != nil {
		return nil, err
	}
	return store, nil
}
