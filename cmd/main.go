package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/labstack/gommon/random"
	"github.com/redis/go-redis/v9"

	"hotelops/internal/caching"
	"hotelops/internal/handlers"
	"hotelops/internal/jobs"
	"hotelops/internal/jobs/background"
	"hotelops/internal/middleware"
	"hotelops/internal/repositories"
	"hotelops/internal/services"
	"hotelops/pkg/database"
)

const version = "1.0.0"

func main() {
	ctx := context.Background()

	// Database connection
	databaseURL := os.Getenv("DATABASE_URL")
	if databaseURL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}
	pool, err := database.NewPool(ctx, databaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	// JWT configuration
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		jwtSecret = random.String(32) // Generated secret for development only
		log.Printf("WARNING: Using generated JWT secret")
	}

	// Redis configuration
	redisAddr := os.Getenv("REDIS_ADDR")
	if redisAddr == "" {
		redisAddr = "localhost:6379"
	}
	redisDB := 0
	if redisDBStr := os.Getenv("REDIS_DB"); redisDBStr != "" {
		if db, err := strconv.Atoi(redisDBStr); err == nil {
			redisDB = db
		}
	}
	redisClient := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       redisDB,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		log.Printf("WARN: Redis unreachable at startup: %v", err)
	}
	cacheSvc := caching.NewRedisCacheWithClient(redisClient)

	// MinIO configuration
	minioEndpoint := os.Getenv("MINIO_ENDPOINT")
	if minioEndpoint == "" {
		minioEndpoint = "localhost:9000"
	}
	minioAccessKey := os.Getenv("MINIO_ACCESS_KEY")
	if minioAccessKey == "" {
		minioAccessKey = "minioadmin"
	}
	minioSecretKey := os.Getenv("MINIO_SECRET_KEY")
	if minioSecretKey == "" {
		minioSecretKey = "minioadmin"
	}
	minioUseSSL := os.Getenv("MINIO_USE_SSL") == "true"

	objectSvc, err := services.NewMinioService(minioEndpoint, minioAccessKey, minioSecretKey, minioUseSSL)
	if err != nil {
		log.Fatalf("Failed to initialize MinIO service: %v", err)
	}
	photosBucket := os.Getenv("WASTAGE_PHOTOS_BUCKET")
	if photosBucket == "" {
		photosBucket = "wastage-photos"
	}
	if err := objectSvc.EnsureBucketExists(ctx, photosBucket); err != nil {
		log.Printf("WARN: Could not ensure photos bucket exists: %v", err)
	}

	// Repositories
	hotelRepo := repositories.NewHotelRepo(pool)
	userRepo := repositories.NewUserRepo(pool)
	itemRepo := repositories.NewInventoryItemRepo(pool)
	txnRepo := repositories.NewInventoryTransactionRepo(pool)
	menuRepo := repositories.NewMenuItemRepo(pool)
	kotRepo := repositories.NewKotRepo(pool)
	wastageRepo := repositories.NewWastageRepo(pool)
	requestRepo := repositories.NewStockRequestRepo(pool)
	notificationRepo := repositories.NewNotificationRepo(pool)
	auditRepo := repositories.NewAuditLogsRepo(pool)

	// Services
	auditSvc := services.NewAuditLogsService(auditRepo)
	notifySvc := services.NewNotificationService(notificationRepo, userRepo)
	ledger := services.NewStockLedger(pool, cacheSvc)
	inventorySvc := services.NewInventoryService(itemRepo, cacheSvc)
	menuSvc := services.NewMenuService(menuRepo, itemRepo)
	recipeSvc := services.NewRecipeDeductionService(kotRepo, menuRepo, itemRepo, ledger)
	kotSvc := services.NewKotService(kotRepo, menuRepo, recipeSvc, auditSvc)
	wastageSvc := services.NewWastageService(wastageRepo, itemRepo, ledger, notifySvc, auditSvc, objectSvc, photosBucket)
	requestSvc := services.NewStockRequestService(requestRepo, itemRepo, ledger, auditSvc)
	alertSvc := jobs.NewLowStockAlertService(itemRepo, notifySvc)

	// Handlers
	healthHandlers := handlers.NewHealthHandlers(pool, redisClient)
	inventoryHandlers := handlers.NewInventoryHandlers(inventorySvc, ledger, txnRepo)
	menuHandlers := handlers.NewMenuHandlers(menuSvc)
	kotHandlers := handlers.NewKotHandlers(kotSvc)
	wastageHandlers := handlers.NewWastageHandlers(wastageSvc)
	requestHandlers := handlers.NewStockRequestHandlers(requestSvc)
	notificationHandlers := handlers.NewNotificationHandlers(notifySvc)

	// Background jobs
	scheduler := background.NewJobScheduler(hotelRepo, kotSvc, alertSvc)
	if err := scheduler.Start(); err != nil {
		log.Fatalf("Failed to start job scheduler: %v", err)
	}
	defer func() {
		if err := scheduler.Stop(); err != nil {
			log.Printf("Job scheduler shutdown error: %v", err)
		}
	}()

	// Echo instance
	e := echo.New()
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())

	// Health endpoints (no auth required)
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)
	e.GET("/health/live", healthHandlers.LivenessCheck)

	// Protected API routes
	v1 := e.Group("/v1")
	v1.Use(middleware.JWTMiddleware(jwtSecret))

	// Inventory items
	v1.POST("/inventory-items", inventoryHandlers.CreateItem, middleware.RequirePermission(middleware.PermInventoryWrite))
	v1.GET("/inventory-items", inventoryHandlers.ListItems, middleware.RequirePermission(middleware.PermInventoryRead))
	v1.GET("/inventory-items/low-stock", inventoryHandlers.LowStockItems, middleware.RequirePermission(middleware.PermInventoryRead))
	v1.POST("/inventory-items/search", inventoryHandlers.SearchItems, middleware.RequirePermission(middleware.PermInventoryRead))
	v1.GET("/inventory-items/:id", inventoryHandlers.GetItem, middleware.RequirePermission(middleware.PermInventoryRead))
	v1.DELETE("/inventory-items/:id", inventoryHandlers.DeleteItem, middleware.RequirePermission(middleware.PermInventoryWrite))

	// Inventory ledger
	v1.POST("/inventory-transactions", inventoryHandlers.CreateTransaction, middleware.RequirePermission(middleware.PermInventoryWrite))
	v1.GET("/inventory-transactions", inventoryHandlers.ListTransactions, middleware.RequirePermission(middleware.PermInventoryRead))

	// Menu
	v1.POST("/menu-items", menuHandlers.CreateMenuItem, middleware.RequirePermission(middleware.PermMenuManage))
	v1.GET("/menu-items", menuHandlers.ListMenuItems, middleware.RequirePermission(middleware.PermInventoryRead))
	v1.PUT("/menu-items/:id", menuHandlers.UpdateMenuItem, middleware.RequirePermission(middleware.PermMenuManage))

	// KOT orders
	v1.POST("/kot-orders", kotHandlers.CreateOrder, middleware.RequirePermission(middleware.PermKotCreate))
	v1.GET("/kot-orders/:id", kotHandlers.GetOrder, middleware.RequirePermission(middleware.PermKotUpdate))
	v1.POST("/kot-orders/:id/items", kotHandlers.AddItem, middleware.RequirePermission(middleware.PermKotCreate))
	v1.PUT("/kot-items/:itemId/status", kotHandlers.UpdateItemStatus, middleware.RequirePermission(middleware.PermKotUpdate))

	// Wastage
	v1.POST("/wastages", wastageHandlers.CreateWastage, middleware.RequirePermission(middleware.PermWastageCreate))
	v1.GET("/wastages", wastageHandlers.ListWastages, middleware.RequirePermission(middleware.PermInventoryRead))
	v1.POST("/wastages/:id/approve", wastageHandlers.ApproveWastage, middleware.RequirePermission(middleware.PermWastageApprove))
	v1.POST("/wastages/:id/reject", wastageHandlers.RejectWastage, middleware.RequirePermission(middleware.PermWastageApprove))
	v1.POST("/wastages/:id/photo", wastageHandlers.UploadPhoto, middleware.RequirePermission(middleware.PermWastageCreate))

	// Stock requests
	v1.POST("/stock-requests", requestHandlers.CreateRequest, middleware.RequirePermission(middleware.PermStockRequestCreate))
	v1.GET("/stock-requests", requestHandlers.ListRequests, middleware.RequirePermission(middleware.PermInventoryRead))
	v1.PATCH("/stock-requests/:id/approve", requestHandlers.ApproveRequest, middleware.RequirePermission(middleware.PermStockRequestApprove))
	v1.PATCH("/stock-requests/:id/deliver", requestHandlers.DeliverRequest, middleware.RequirePermission(middleware.PermStockRequestDeliver))

	// Notifications
	v1.GET("/notifications", notificationHandlers.ListNotifications)
	v1.PUT("/notifications/:id/read", notificationHandlers.MarkNotificationRead)

	// Start server
	portStr := os.Getenv("PORT")
	if portStr == "" {
		portStr = "8080"
	}
	port, err := strconv.Atoi(portStr)
	if err != nil {
		log.Fatalf("Invalid port %s: %v", portStr, err)
	}

	go func() {
		log.Printf("hotelops server v%s starting on port %d", version, port)
		if err := e.Start(fmt.Sprintf(":%d", port)); err != nil {
			log.Printf("Server stopped: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server shutdown error: %v", err)
	}
}
