package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"shopmart/internal/caching"
	"shopmart/internal/config"
	"shopmart/internal/handlers"
	"shopmart/internal/jobs"
	"shopmart/internal/repositories"
	"shopmart/internal/services"
	"shopmart/pkg/database"
)

const version = "1.0.0"

func main() {
	// Optional .env for development; real deployments set the environment.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	pool, err := database.NewPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// Create store and cache service
	store := repositories.NewStore(pool)
	cacheSvc := caching.NewRedisCacheService(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)

	// Create services
	userSvc := services.NewUserService(store)
	productSvc := services.NewProductService(store, cacheSvc)
	orderSvc := services.NewOrderService(store, cacheSvc)

	// Create handlers
	balanceHandlers := handlers.NewBalanceHandlers(userSvc)
	productHandlers := handlers.NewProductHandlers(productSvc)
	orderHandlers := handlers.NewOrderHandlers(orderSvc)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheSvc)

	// Background cache warmer
	warmer, err := jobs.NewCatalogWarmer(productSvc)
	if err != nil {
		log.Fatalf("Failed to create catalog warmer: %v", err)
	}
	warmer.Start()
	defer func() {
		if err := warmer.Stop(); err != nil {
			log.Printf("Failed to stop catalog warmer: %v", err)
		}
	}()

	// Create Echo instance
	e := echo.New()
	e.Validator = handlers.NewRequestValidator()

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	// API routes
	api := e.Group("/api")
	api.GET("/products", productHandlers.ListProducts)
	api.GET("/products/popular", productHandlers.ListPopularProducts)
	api.PATCH("/products/:id/stock", productHandlers.UpdateStock)
	api.GET("/balance/:userId", balanceHandlers.GetBalance)
	api.POST("/balance/charge", balanceHandlers.ChargeBalance)
	api.POST("/orders", orderHandlers.CreateOrder)
	api.GET("/orders/:id", orderHandlers.GetOrder)

	log.Printf("shopmart server v%s starting on port %d", version, cfg.Port)
	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.Port)))
}
