package main

import (
	"golang-storefront-backend/configs"
	"golang-storefront-backend/internal/handlers"
	"golang-storefront-backend/internal/middleware"
	"golang-storefront-backend/internal/models"
	"golang-storefront-backend/internal/repositories"
	"golang-storefront-backend/internal/services"
	"golang-storefront-backend/pkg/auth"
	"golang-storefront-backend/pkg/cache"
	"golang-storefront-backend/pkg/database"
	"golang-storefront-backend/pkg/messaging"
	"log"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	config := configs.LoadConfig()

	// Set Gin mode
	gin.SetMode(config.Server.Mode)

	// Initialize database connections
	db, err := database.NewDatabase(config.Database.PostgresURL, config.Database.MongoURL, config.Database.MongoDBName)
	if err != nil {
		log.Fatal("Failed to connect to databases:", err)
	}
	defer db.Close()

	// Auto-migrate PostgreSQL tables
	if err := autoMigratePostgres(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize Redis cache
	redisCache := cache.NewRedisCache(config.Redis.URL, config.Redis.Password, config.Redis.DB)
	if redisCache == nil {
		log.Fatal("Failed to connect to Redis")
	}
	defer redisCache.Close()

	// Initialize Kafka
	kafkaProducer := messaging.NewKafkaProducer(config.Kafka.Brokers)
	defer kafkaProducer.Close()

	// Initialize JWT manager (access: 1 hour, refresh: 30 days)
	jwtManager := auth.NewJWTManager(config.JWT.SecretKey, config.JWT.ExpiryHours, 30)

	// Initialize PostgreSQL repositories
	userRepo := repositories.NewUserRepository(db.Postgres)
	addressRepo := repositories.NewAddressRepository(db.Postgres)
	orderRepo := repositories.NewOrderRepository(db.Postgres)
	paymentRepo := repositories.NewPaymentRepository(db.Postgres)

	// Redis-backed stores for the cart and favorites documents
	cartStore := repositories.NewRedisCartStore(redisCache)
	favoriteStore := repositories.NewRedisFavoriteStore(redisCache)

	// Catalog repositories. When MongoDB is unavailable the catalog serves
	// the seeded mock data so the storefront keeps working locally.
	var productRepo repositories.ProductRepository
	var categoryRepo repositories.CategoryRepository
	if db.MongoDB != nil {
		productRepo = repositories.NewProductRepository(db.MongoDB)
		categoryRepo = repositories.NewCategoryRepository(db.MongoDB)
	} else {
		productRepo = repositories.NewMockProductRepository()
		categoryRepo = repositories.NewMockCategoryRepository()
	}

	// Initialize services
	authService := services.NewAuthService(userRepo, jwtManager, redisCache)
	addressService := services.NewAddressService(addressRepo)
	productService := services.NewProductService(productRepo, categoryRepo, redisCache)
	cartService := services.NewCartService(cartStore)
	favoriteService := services.NewFavoriteService(favoriteStore)
	checkoutService := services.NewCheckoutService(cartStore, addressRepo, orderRepo, paymentRepo, kafkaProducer, config.Kafka.Brokers)
	orderService := services.NewOrderService(orderRepo, paymentRepo)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtManager)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	addressHandler := handlers.NewAddressHandler(addressService)
	productHandler := handlers.NewProductHandler(productService)
	cartHandler := handlers.NewCartHandler(cartService)
	favoriteHandler := handlers.NewFavoriteHandler(favoriteService)
	checkoutHandler := handlers.NewCheckoutHandler(checkoutService)
	orderHandler := handlers.NewOrderHandler(orderService)

	// Initialize Gin router
	router := gin.Default()

	// Global middleware
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RecoveryMiddleware())

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "healthy",
			"service": "golang-storefront-backend",
		})
	})

	// API routes
	api := router.Group("/api/v1")

	// Register routes
	authHandler.RegisterRoutes(api, authMiddleware)
	addressHandler.RegisterRoutes(api, authMiddleware)
	productHandler.RegisterRoutes(api, authMiddleware)
	cartHandler.RegisterRoutes(api, authMiddleware)
	favoriteHandler.RegisterRoutes(api, authMiddleware)
	checkoutHandler.RegisterRoutes(api, authMiddleware)
	orderHandler.RegisterRoutes(api, authMiddleware)

	log.Printf("Server starting on port %s", config.Server.Port)
	log.Fatal(router.Run(":" + config.Server.Port))
}

func autoMigratePostgres(db *database.Database) error {
	return db.Postgres.AutoMigrate(
		&models.User{},
		&models.Address{},
		&models.Order{},
		&models.OrderItem{},
		&models.Payment{},
	)
}
