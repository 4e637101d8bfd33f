package repository

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/model"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// openTestDB returns an isolated in-memory database with foreign keys
// enforced, so constraint translation behaves like it does on postgres.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.AllModels()...))
	return db
}

func seedStore(t *testing.T, db *gorm.DB, ownerID uint, name string) *model.Store {
	t.Helper()
	store := &model.Store{Name: name, OwnerID: ownerID}
	require.NoError(t, db.Create(store).Error)
	return store
}

func seedBillboard(t *testing.T, db *gorm.DB, storeID uint, label string) *model.Billboard {
	t.Helper()
	billboard := &model.Billboard{StoreID: storeID, Label: label, ImageURL: "https://img.test/" + label}
	require.NoError(t, db.Create(billboard).Error)
	return billboard
}

func seedCategory(t *testing.T, db *gorm.DB, storeID, billboardID uint, name string) *model.Category {
	t.Helper()
	category := &model.Category{StoreID: storeID, Name: name, BillboardID: billboardID}
	require.NoError(t, db.Create(category).Error)
	return category
}

func seedSize(t *testing.T, db *gorm.DB, storeID uint, name, value string) *model.Size {
	t.Helper()
	size := &model.Size{StoreID: storeID, Name: name, Value: value}
	require.NoError(t, db.Create(size).Error)
	return size
}

func seedColor(t *testing.T, db *gorm.DB, storeID uint, name, value string) *model.Color {
	t.Helper()
	color := &model.Color{StoreID: storeID, Name: name, Value: value}
	require.NoError(t, db.Create(color).Error)
	return color
}

// seedProduct creates a product with its own category, size and color
func seedProduct(t *testing.T, db *gorm.DB, storeID uint, name string) *model.Product {
	t.Helper()
	billboard := seedBillboard(t, db, storeID, name+"-bb")
	category := seedCategory(t, db, storeID, billboard.ID, name+"-cat")
	size := seedSize(t, db, storeID, name+"-size", "M")
	color := seedColor(t, db, storeID, name+"-color", "#000000")

	product := &model.Product{
		StoreID:    storeID,
		Name:       name,
		Price:      1000,
		CategoryID: category.ID,
		SizeID:     size.ID,
		ColorID:    color.ID,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}
