package service

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/model"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/repository"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

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

func newGate(db *gorm.DB) *AuthzGate {
	return NewAuthzGate(repository.NewStoreRepository(db))
}

func seedStore(t *testing.T, db *gorm.DB, ownerID uint, name string) *model.Store {
	t.Helper()
	store := &model.Store{Name: name, OwnerID: ownerID}
	require.NoError(t, db.Create(store).Error)
	return store
}

func seedProduct(t *testing.T, db *gorm.DB, storeID uint, name string) *model.Product {
	t.Helper()
	billboard := &model.Billboard{StoreID: storeID, Label: name + "-bb", ImageURL: "https://img.test/" + name}
	require.NoError(t, db.Create(billboard).Error)
	category := &model.Category{StoreID: storeID, Name: name + "-cat", BillboardID: billboard.ID}
	require.NoError(t, db.Create(category).Error)
	size := &model.Size{StoreID: storeID, Name: name + "-size", Value: "S"}
	require.NoError(t, db.Create(size).Error)
	color := &model.Color{StoreID: storeID, Name: name + "-color", Value: "#000000"}
	require.NoError(t, db.Create(color).Error)

	product := &model.Product{
		StoreID:    storeID,
		Name:       name,
		Price:      500,
		CategoryID: category.ID,
		SizeID:     size.ID,
		ColorID:    color.ID,
	}
	require.NoError(t, db.Create(product).Error)
	return product
}

// seedFullGraph populates one store with a row of every entity type and
// returns the store
func seedFullGraph(t *testing.T, db *gorm.DB, ownerID uint, name string) *model.Store {
	t.Helper()
	store := seedStore(t, db, ownerID, name)

	billboard := &model.Billboard{StoreID: store.ID, Label: "bb", ImageURL: "https://img.test/bb"}
	require.NoError(t, db.Create(billboard).Error)
	category := &model.Category{StoreID: store.ID, Name: "cat", BillboardID: billboard.ID}
	require.NoError(t, db.Create(category).Error)
	size := &model.Size{StoreID: store.ID, Name: "Small", Value: "S"}
	require.NoError(t, db.Create(size).Error)
	color := &model.Color{StoreID: store.ID, Name: "Red", Value: "#FF0000"}
	require.NoError(t, db.Create(color).Error)

	product := &model.Product{
		StoreID:    store.ID,
		Name:       "shirt",
		Price:      1000,
		CategoryID: category.ID,
		SizeID:     size.ID,
		ColorID:    color.ID,
	}
	require.NoError(t, db.Create(product).Error)
	require.NoError(t, db.Create(&model.ProductImage{ProductID: product.ID, URL: "https://img.test/p", Position: 0}).Error)

	order := &model.Order{StoreID: store.ID, Phone: "555"}
	require.NoError(t, db.Create(order).Error)
	require.NoError(t, db.Create(&model.OrderItem{OrderID: order.ID, ProductID: product.ID, Quantity: 1}).Error)

	return store
}
