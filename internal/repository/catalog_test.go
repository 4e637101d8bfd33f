package repository

import (
	"context"
	"testing"

	"github.com/momen-x/e-commerce-Admin-dashboard/internal/apperr"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBillboardRoundTrip(t *testing.T) {
	db := openTestDB(t)
	store := seedStore(t, db, 1, "Shop1")
	repo := NewBillboardRepository(db)
	ctx := context.Background()

	billboard := &model.Billboard{StoreID: store.ID, Label: "Summer Sale", ImageURL: "https://img.test/summer"}
	require.NoError(t, repo.Create(ctx, billboard))
	require.NotZero(t, billboard.ID)

	got, err := repo.Get(ctx, store.ID, billboard.ID)
	require.NoError(t, err)
	assert.Equal(t, "Summer Sale", got.Label)
	assert.Equal(t, "https://img.test/summer", got.ImageURL)
	assert.Equal(t, store.ID, got.StoreID)
}

func TestCatalogListIsStoreScoped(t *testing.T) {
	db := openTestDB(t)
	store1 := seedStore(t, db, 1, "Shop1")
	store2 := seedStore(t, db, 2, "Shop2")
	seedBillboard(t, db, store1.ID, "one")
	seedBillboard(t, db, store1.ID, "two")
	seedBillboard(t, db, store2.ID, "other")

	repo := NewBillboardRepository(db)
	billboards, err := repo.List(context.Background(), store1.ID)
	require.NoError(t, err)
	assert.Len(t, billboards, 2)
	for _, b := range billboards {
		assert.Equal(t, store1.ID, b.StoreID)
	}
}

func TestCatalogGetWrongStoreIsNotFound(t *testing.T) {
	db := openTestDB(t)
	store1 := seedStore(t, db, 1, "Shop1")
	store2 := seedStore(t, db, 2, "Shop2")
	billboard := seedBillboard(t, db, store1.ID, "mine")

	repo := NewBillboardRepository(db)
	_, err := repo.Get(context.Background(), store2.ID, billboard.ID)
	assert.True(t, apperr.IsNotFound(err))
}

func TestCatalogPartialUpdate(t *testing.T) {
	db := openTestDB(t)
	store := seedStore(t, db, 1, "Shop1")
	size := seedSize(t, db, store.ID, "Small", "S")

	repo := NewSizeRepository(db)
	updated, err := repo.Update(context.Background(), store.ID, size.ID, map[string]interface{}{
		"value": "XS",
	})
	require.NoError(t, err)
	assert.Equal(t, "Small", updated.Name, "omitted field must keep its value")
	assert.Equal(t, "XS", updated.Value)
}

func TestCatalogUpdateEmptyFieldsIsNoop(t *testing.T) {
	db := openTestDB(t)
	store := seedStore(t, db, 1, "Shop1")
	color := seedColor(t, db, store.ID, "Red", "#FF0000")

	repo := NewColorRepository(db)
	updated, err := repo.Update(context.Background(), store.ID, color.ID, map[string]interface{}{})
	require.NoError(t, err)
	assert.Equal(t, "Red", updated.Name)
	assert.Equal(t, "#FF0000", updated.Value)
}

func TestCatalogDeleteNotFound(t *testing.T) {
	db := openTestDB(t)
	store := seedStore(t, db, 1, "Shop1")

	repo := NewColorRepository(db)
	err := repo.Delete(context.Background(), store.ID, 999)
	assert.True(t, apperr.IsNotFound(err))
}

// Create Billboard B1; create Category C1 referencing B1; deleting B1 must
// conflict; after deleting C1, deleting B1 succeeds.
func TestBillboardDeleteBlockedByCategory(t *testing.T) {
	db := openTestDB(t)
	store := seedStore(t, db, 1, "Shop1")
	b1 := seedBillboard(t, db, store.ID, "B1")
	c1 := seedCategory(t, db, store.ID, b1.ID, "C1")

	billboards := NewBillboardRepository(db)
	categories := NewCategoryRepository(db)
	ctx := context.Background()

	err := billboards.Delete(ctx, store.ID, b1.ID)
	require.True(t, apperr.IsConflict(err))
	assert.EqualError(t, err, "Billboard is still referenced by categories")

	require.NoError(t, categories.Delete(ctx, store.ID, c1.ID))
	assert.NoError(t, billboards.Delete(ctx, store.ID, b1.ID))
}

func TestCategoryDeleteBlockedByProduct(t *testing.T) {
	db := openTestDB(t)
	store := seedStore(t, db, 1, "Shop1")
	product := seedProduct(t, db, store.ID, "shirt")

	repo := NewCategoryRepository(db)
	err := repo.Delete(context.Background(), store.ID, product.CategoryID)
	require.True(t, apperr.IsConflict(err))
	assert.EqualError(t, err, "Category is still referenced by products")
}

func TestSizeAndColorDeleteBlockedByProduct(t *testing.T) {
	db := openTestDB(t)
	store := seedStore(t, db, 1, "Shop1")
	product := seedProduct(t, db, store.ID, "shirt")
	ctx := context.Background()

	err := NewSizeRepository(db).Delete(ctx, store.ID, product.SizeID)
	require.True(t, apperr.IsConflict(err))
	assert.EqualError(t, err, "Size is still referenced by products")

	err = NewColorRepository(db).Delete(ctx, store.ID, product.ColorID)
	require.True(t, apperr.IsConflict(err))
	assert.EqualError(t, err, "Color is still referenced by products")
}

func TestCategoryCreateWithMissingBillboard(t *testing.T) {
	db := openTestDB(t)
	store := seedStore(t, db, 1, "Shop1")

	repo := NewCategoryRepository(db)
	err := repo.Create(context.Background(), &model.Category{
		StoreID:     store.ID,
		Name:        "orphan",
		BillboardID: 12345,
	})
	assert.True(t, apperr.IsConflict(err))
}

// A billboard id from another store must be rejected like a missing one,
// and nothing may be inserted.
func TestCategoryCreateWithForeignStoreBillboard(t *testing.T) {
	db := openTestDB(t)
	store1 := seedStore(t, db, 1, "Shop1")
	store2 := seedStore(t, db, 2, "Shop2")
	billboard := seedBillboard(t, db, store1.ID, "hero")

	repo := NewCategoryRepository(db)
	err := repo.Create(context.Background(), &model.Category{
		StoreID:     store2.ID,
		Name:        "poached",
		BillboardID: billboard.ID,
	})
	require.True(t, apperr.IsConflict(err))
	assert.EqualError(t, err, "Referenced billboard does not exist")

	var count int64
	require.NoError(t, db.Model(&model.Category{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCategoryUpdateToForeignStoreBillboard(t *testing.T) {
	db := openTestDB(t)
	store1 := seedStore(t, db, 1, "Shop1")
	store2 := seedStore(t, db, 2, "Shop2")
	foreign := seedBillboard(t, db, store1.ID, "foreign")
	own := seedBillboard(t, db, store2.ID, "own")
	category := seedCategory(t, db, store2.ID, own.ID, "Shirts")

	repo := NewCategoryRepository(db)
	ctx := context.Background()

	_, err := repo.Update(ctx, store2.ID, category.ID, map[string]interface{}{
		"billboard_id": foreign.ID,
	})
	require.True(t, apperr.IsConflict(err))

	// The rejected retarget must not stick
	got, err := repo.Get(ctx, store2.ID, category.ID)
	require.NoError(t, err)
	assert.Equal(t, own.ID, got.BillboardID)
}

func TestCategoryGetPreloadsBillboard(t *testing.T) {
	db := openTestDB(t)
	store := seedStore(t, db, 1, "Shop1")
	billboard := seedBillboard(t, db, store.ID, "hero")
	category := seedCategory(t, db, store.ID, billboard.ID, "Shirts")

	repo := NewCategoryRepository(db)
	got, err := repo.Get(context.Background(), store.ID, category.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Billboard)
	assert.Equal(t, "hero", got.Billboard.Label)
}
