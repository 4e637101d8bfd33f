package repository

import (
	"context"
	"testing"

	"github.com/momen-x/e-commerce-Admin-dashboard/internal/apperr"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStoreCreateAndGet(t *testing.T) {
	db := openTestDB(t)
	repo := NewStoreRepository(db)
	ctx := context.Background()

	store := &model.Store{Name: "Shop1", OwnerID: 1}
	require.NoError(t, repo.Create(ctx, store))
	require.NotZero(t, store.ID)

	got, err := repo.Get(ctx, store.ID)
	require.NoError(t, err)
	assert.Equal(t, "Shop1", got.Name)
	assert.Equal(t, uint(1), got.OwnerID)
}

func TestStoreGetNotFound(t *testing.T) {
	db := openTestDB(t)
	repo := NewStoreRepository(db)

	_, err := repo.Get(context.Background(), 42)
	assert.True(t, apperr.IsNotFound(err))
}

func TestStoreNameUniquePerOwner(t *testing.T) {
	db := openTestDB(t)
	repo := NewStoreRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Store{Name: "Shop1", OwnerID: 1}))

	taken, err := repo.NameTaken(ctx, 1, "Shop1")
	require.NoError(t, err)
	assert.True(t, taken)

	// Same name under another owner is fine
	taken, err = repo.NameTaken(ctx, 2, "Shop1")
	require.NoError(t, err)
	assert.False(t, taken)
	require.NoError(t, repo.Create(ctx, &model.Store{Name: "Shop1", OwnerID: 2}))

	// The unique index backs up the pre-check against races
	err = repo.Create(ctx, &model.Store{Name: "Shop1", OwnerID: 1})
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestStoreListByOwner(t *testing.T) {
	db := openTestDB(t)
	repo := NewStoreRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &model.Store{Name: "A", OwnerID: 1}))
	require.NoError(t, repo.Create(ctx, &model.Store{Name: "B", OwnerID: 1}))
	require.NoError(t, repo.Create(ctx, &model.Store{Name: "C", OwnerID: 2}))

	stores, err := repo.ListByOwner(ctx, 1)
	require.NoError(t, err)
	assert.Len(t, stores, 2)
}

func TestStoreRename(t *testing.T) {
	db := openTestDB(t)
	repo := NewStoreRepository(db)
	ctx := context.Background()

	store := &model.Store{Name: "Old", OwnerID: 1}
	require.NoError(t, repo.Create(ctx, store))

	renamed, err := repo.Rename(ctx, store.ID, "New")
	require.NoError(t, err)
	assert.Equal(t, "New", renamed.Name)

	got, err := repo.Get(ctx, store.ID)
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
}
