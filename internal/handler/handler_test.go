package handler

import (
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/labstack/echo/v4"
	mid "github.com/momen-x/e-commerce-Admin-dashboard/internal/middleware"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/model"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/repository"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/service"
	"github.com/momen-x/e-commerce-Admin-dashboard/pkg/jwtutil"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestServer wires the full route table against an in-memory database,
// mirroring the production wiring in cmd/server.
func newTestServer(t *testing.T) (*echo.Echo, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(model.AllModels()...))

	storeRepo := repository.NewStoreRepository(db)
	billboardRepo := repository.NewBillboardRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	gate := service.NewAuthzGate(storeRepo)
	deleter := service.NewStoreDeleter(db, gate)
	orderService := service.NewOrderService(orderRepo, gate)

	storeHandler := NewStoreHandler(storeRepo, gate, deleter)
	billboardHandler := NewBillboardHandler(billboardRepo, gate)
	orderHandler := NewOrderHandler(orderRepo, orderService, gate)

	e := echo.New()
	e.HideBanner = true

	storeAPI := e.Group("/api/stores", mid.RequireAuth)
	storeAPI.POST("", storeHandler.Create)
	storeAPI.GET("", storeHandler.List)
	storeAPI.GET("/:storeId", storeHandler.Get)
	storeAPI.PUT("/:storeId", storeHandler.Update)
	storeAPI.DELETE("/:storeId", storeHandler.Delete)

	catalogAPI := e.Group("/api/stores/:storeId", mid.OptionalAuth)
	catalogAPI.GET("/billboards", billboardHandler.List)
	catalogAPI.POST("/billboards", billboardHandler.Create)
	catalogAPI.GET("/billboards/:id", billboardHandler.Get)
	catalogAPI.PATCH("/billboards/:id", billboardHandler.Update)
	catalogAPI.DELETE("/billboards/:id", billboardHandler.Delete)
	catalogAPI.GET("/orders", orderHandler.List)
	catalogAPI.POST("/orders", orderHandler.Create)
	catalogAPI.GET("/orders/:id", orderHandler.Get)
	catalogAPI.PATCH("/orders/:id", orderHandler.Update)
	catalogAPI.DELETE("/orders/:id", orderHandler.Delete)

	return e, db
}

func bearer(t *testing.T, userID uint) string {
	t.Helper()
	token, err := jwtutil.GenerateToken(userID, "")
	require.NoError(t, err)
	return "Bearer " + token
}

func doJSON(e *echo.Echo, method, path, auth, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if auth != "" {
		req.Header.Set("Authorization", auth)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func createStore(t *testing.T, db *gorm.DB, ownerID uint, name string) *model.Store {
	t.Helper()
	store := &model.Store{Name: name, OwnerID: ownerID}
	require.NoError(t, db.Create(store).Error)
	return store
}

func createBillboard(t *testing.T, db *gorm.DB, storeID uint, label string) *model.Billboard {
	t.Helper()
	billboard := &model.Billboard{StoreID: storeID, Label: label, ImageURL: "https://img.test/" + label}
	require.NoError(t, db.Create(billboard).Error)
	return billboard
}
