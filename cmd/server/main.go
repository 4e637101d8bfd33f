package main

import (
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/handler"
	mid "github.com/momen-x/e-commerce-Admin-dashboard/internal/middleware"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/model"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/repository"
	"github.com/momen-x/e-commerce-Admin-dashboard/internal/service"
	"github.com/momen-x/e-commerce-Admin-dashboard/pkg/config"
	"github.com/momen-x/e-commerce-Admin-dashboard/pkg/database"
	"github.com/momen-x/e-commerce-Admin-dashboard/pkg/jwtutil"
	"github.com/momen-x/e-commerce-Admin-dashboard/pkg/logger"
	"github.com/momen-x/e-commerce-Admin-dashboard/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	appConfig, err := config.Load("storefront-admin")
	if err != nil {
		// Can't use structured logger yet since it's not initialized
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	if err := logger.InitLogger(&logger.LogConfig{
		Level:       appConfig.Log.Level,
		Environment: appConfig.Server.Env,
		ServiceName: appConfig.ServiceName,
	}); err != nil {
		panic("Failed to initialize logger: " + err.Error())
	}
	log := logger.GetLogger()
	defer log.Sync()

	log.Info("Starting storefront-admin", appConfig.LogConfig()...)

	// Initialize JWT utility
	jwtutil.Initialize(&appConfig.JWT)

	// Initialize Prometheus metrics
	prometheus.InitMetrics(appConfig)
	log.Info("Prometheus metrics initialized",
		zap.String("metrics_prefix", appConfig.Metrics.Prefix))

	// Initialize database
	db, err := database.InitDB(&appConfig.DB)
	if err != nil {
		log.Fatal("Failed to initialize database", zap.Error(err))
	}
	log.Info("Database connection established")

	if err := database.MigrateModels(model.AllModels()...); err != nil {
		log.Fatal("Failed to run migrations", zap.Error(err))
	}
	log.Info("Database migrations completed")

	// Repositories
	storeRepo := repository.NewStoreRepository(db)
	billboardRepo := repository.NewBillboardRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	sizeRepo := repository.NewSizeRepository(db)
	colorRepo := repository.NewColorRepository(db)
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)

	// Services
	gate := service.NewAuthzGate(storeRepo)
	deleter := service.NewStoreDeleter(db, gate)
	orderService := service.NewOrderService(orderRepo, gate)

	// Handlers
	storeHandler := handler.NewStoreHandler(storeRepo, gate, deleter)
	billboardHandler := handler.NewBillboardHandler(billboardRepo, gate)
	categoryHandler := handler.NewCategoryHandler(categoryRepo, gate)
	sizeHandler := handler.NewSizeHandler(sizeRepo, gate)
	colorHandler := handler.NewColorHandler(colorRepo, gate)
	productHandler := handler.NewProductHandler(productRepo, gate)
	orderHandler := handler.NewOrderHandler(orderRepo, orderService, gate)

	// Initialize Echo instance
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(echomw.Recover())
	e.Use(mid.RequestIDMiddleware)
	e.Use(mid.MetricsMiddleware)

	// Operational endpoints
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))
	e.GET("/health", handler.Health)

	// Store API routes - owner scoped
	storeAPI := e.Group("/api/stores", mid.RequireAuth)
	storeAPI.POST("", storeHandler.Create)
	storeAPI.GET("", storeHandler.List)
	storeAPI.GET("/:storeId", storeHandler.Get)
	storeAPI.PUT("/:storeId", storeHandler.Update)
	storeAPI.DELETE("/:storeId", storeHandler.Delete)

	// Catalog API routes - public reads, owner writes; the authorization
	// gate decides per request
	catalogAPI := e.Group("/api/stores/:storeId", mid.OptionalAuth)

	catalogAPI.GET("/billboards", billboardHandler.List)
	catalogAPI.POST("/billboards", billboardHandler.Create)
	catalogAPI.GET("/billboards/:id", billboardHandler.Get)
	catalogAPI.PATCH("/billboards/:id", billboardHandler.Update)
	catalogAPI.DELETE("/billboards/:id", billboardHandler.Delete)

	catalogAPI.GET("/categories", categoryHandler.List)
	catalogAPI.POST("/categories", categoryHandler.Create)
	catalogAPI.GET("/categories/:id", categoryHandler.Get)
	catalogAPI.PATCH("/categories/:id", categoryHandler.Update)
	catalogAPI.DELETE("/categories/:id", categoryHandler.Delete)

	catalogAPI.GET("/sizes", sizeHandler.List)
	catalogAPI.POST("/sizes", sizeHandler.Create)
	catalogAPI.GET("/sizes/:id", sizeHandler.Get)
	catalogAPI.PATCH("/sizes/:id", sizeHandler.Update)
	catalogAPI.DELETE("/sizes/:id", sizeHandler.Delete)

	catalogAPI.GET("/colors", colorHandler.List)
	catalogAPI.POST("/colors", colorHandler.Create)
	catalogAPI.GET("/colors/:id", colorHandler.Get)
	catalogAPI.PATCH("/colors/:id", colorHandler.Update)
	catalogAPI.DELETE("/colors/:id", colorHandler.Delete)

	catalogAPI.GET("/products", productHandler.List)
	catalogAPI.POST("/products", productHandler.Create)
	catalogAPI.GET("/products/:id", productHandler.Get)
	catalogAPI.PATCH("/products/:id", productHandler.Update)
	catalogAPI.DELETE("/products/:id", productHandler.Delete)

	// Order API routes - storefront writes are public, deletion is owner only
	catalogAPI.GET("/orders", orderHandler.List)
	catalogAPI.POST("/orders", orderHandler.Create)
	catalogAPI.GET("/orders/:id", orderHandler.Get)
	catalogAPI.PATCH("/orders/:id", orderHandler.Update)
	catalogAPI.DELETE("/orders/:id", orderHandler.Delete)

	// Start server
	port := appConfig.Server.Port
	log.Info("Starting server", zap.String("port", port))
	if err := e.Start(":" + port); err != nil {
		log.Fatal("Server error", zap.Error(err))
	}
}
