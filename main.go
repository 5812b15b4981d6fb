// @title AntaShop API
// @version 1.0
// @description ANTA storefront and admin dashboard backend
// @host localhost:8081
// @BasePath /api/v1
// @schemes http
package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/bavien2005/AntaShop-Website/adminstore"
	"github.com/bavien2005/AntaShop-Website/cart"
	"github.com/bavien2005/AntaShop-Website/config"
	cms_analytics "github.com/bavien2005/AntaShop-Website/controllers/cms/analytics_controller"
	cms_message "github.com/bavien2005/AntaShop-Website/controllers/cms/message_controller"
	cms_notification "github.com/bavien2005/AntaShop-Website/controllers/cms/notification_controller"
	cms_order "github.com/bavien2005/AntaShop-Website/controllers/cms/order_controller"
	cms_product "github.com/bavien2005/AntaShop-Website/controllers/cms/product_controller"
	cms_settings "github.com/bavien2005/AntaShop-Website/controllers/cms/settings_controller"
	"github.com/bavien2005/AntaShop-Website/controllers/ecommerce/auth_controller"
	"github.com/bavien2005/AntaShop-Website/controllers/ecommerce/cart_controller"
	"github.com/bavien2005/AntaShop-Website/controllers/ecommerce/payment_controller"
	store_product "github.com/bavien2005/AntaShop-Website/controllers/ecommerce/product_controller"
	"github.com/bavien2005/AntaShop-Website/events"
	"github.com/bavien2005/AntaShop-Website/middleware"
	"github.com/bavien2005/AntaShop-Website/routes/cms_routes"
	"github.com/bavien2005/AntaShop-Website/routes/ecommerce_routes"
	"github.com/bavien2005/AntaShop-Website/services"
)

func init() {
	_ = godotenv.Load()
}

func main() {
	// Redis connection (document store + rate limiter; optional)
	config.ConnectRedis()
	// Upstream service endpoints and shared HTTP client
	config.InitServices()

	// ✅ Initialize JWT Service for Admin Auth
	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("❌ JWT_SECRET environment variable not set")
	}
	if err := services.InitJWTService(jwtSecret); err != nil {
		log.Fatalf("Failed to initialize JWT service: %v", err)
	}
	log.Println("✅ JWT Service initialized")

	// ✅ Initialize Google OAuth
	config.InitGoogleOAuth()

	// Upstream clients
	cartService := services.NewCartService(config.APIBaseURL, config.HTTPClient)
	productService := services.NewProductService(config.APIBaseURL, config.HTTPClient)
	paymentService := services.NewPaymentService(config.APIBaseURL, config.HTTPClient)
	cloudUpload := services.NewCloudUploadService(config.CloudUploadURL, config.HTTPClient)

	// Cloudinary is preferred for admin image uploads when configured
	var cloudinaryService *services.CloudinaryService
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	if cloudName != "" {
		var err error
		cloudinaryService, err = services.NewCloudinaryService(
			cloudName,
			os.Getenv("CLOUDINARY_API_KEY"),
			os.Getenv("CLOUDINARY_API_SECRET"),
		)
		if err != nil {
			log.Fatalf("Failed to initialize Cloudinary: %v", err)
		}
		log.Println("✅ Cloudinary initialized")
	}

	// Admin document storage: Redis when available, files otherwise
	var storage adminstore.DocumentStorage
	if config.RedisClient != nil {
		storage = adminstore.NewRedisStorage(config.RedisClient, "anta:")
	} else {
		fileStorage, err := adminstore.NewFileStorage(config.GetEnv("ADMIN_DATA_DIR", "./data"))
		if err != nil {
			log.Printf("⚠️  file storage unavailable (%v), admin data is in-memory only", err)
			storage = adminstore.NewMemoryStorage()
		} else {
			storage = fileStorage
		}
	}

	// Admin product CRUD goes remote-first only when a product service
	// is configured; otherwise the local document is authoritative.
	var remote adminstore.RemoteProducts
	if config.ProductServiceURL != "" {
		remote = services.NewProductService(config.ProductServiceURL, config.HTTPClient)
	}
	store := adminstore.NewStore(config.Ctx, storage, remote)

	// Session-scoped cart managers, driven by auth events
	notifier := events.NewNotifier()
	registry := cart.NewRegistry(cartService)
	notifier.Register(registry)

	// Controller wiring
	store_product.Init(productService)
	cart_controller.Init(registry, notifier)
	auth_controller.Init(notifier, registry)
	payment_controller.Init(paymentService, store)
	cms_product.Init(store, cloudinaryService, cloudUpload)
	cms_order.Init(store)
	cms_message.Init(store)
	cms_notification.Init(store)
	cms_settings.Init(store)
	cms_analytics.Init(store)

	// Background maintenance
	scheduler := cron.New()
	scheduler.AddFunc("@every 10m", func() {
		ctx, cancel := config.WithCustomTimeout(30 * time.Second)
		defer cancel()
		store.Snapshot(ctx)
	})
	scheduler.AddFunc("@daily", func() {
		ctx, cancel := config.WithCustomTimeout(30 * time.Second)
		defer cancel()
		store.PruneNotifications(ctx, 30*24*time.Hour)
	})
	scheduler.AddFunc("@hourly", func() {
		if pruned := registry.Prune(2 * time.Hour); pruned > 0 {
			log.Printf("[cart.registry] pruned %d idle session(s)", pruned)
		}
	})
	scheduler.Start()
	defer scheduler.Stop()

	corsCfg := cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:3001"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-CSRF-Token", "X-Requested-With"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
		ExposeHeaders:    []string{"Content-Disposition", "Content-Length"}, // invoice downloads
	}
	if frontend := os.Getenv("STORE_FRONTEND_URL"); frontend != "" {
		corsCfg.AllowOrigins = append(corsCfg.AllowOrigins, frontend)
	}

	router := gin.Default()
	router.Use(cors.New(corsCfg))

	// Register API routes
	api := router.Group("/api/v1")

	// ✅ Setup Admin Routes (at /api/v1/admin prefix)
	cms_routes.SetupAdminRoutes(api)
	log.Println("✅ Admin routes registered")

	// Register CMS routes (at /api/v1/admin prefix)
	adminGroup := api.Group("/admin")
	adminGroup.Use(middleware.RateLimiter(100, time.Minute))
	adminGroup.Use(middleware.AdminAuthMiddleware())
	cms_routes.SetupProductRoutes(adminGroup)
	cms_routes.SetupOrderRoutes(adminGroup)
	cms_routes.SetupMessageRoutes(adminGroup)
	cms_routes.SetupNotificationRoutes(adminGroup)
	cms_routes.SetupSettingsRoutes(adminGroup)
	cms_routes.SetupAnalyticsRoutes(adminGroup)

	// Public storefront (no rate limiter)
	ecommerce_routes.SetupAuthRoutes(api)
	ecommerce_routes.SetupStorefrontRoutes(api)
	ecommerce_routes.SetupCartRoutes(api)
	ecommerce_routes.SetupPaymentRoutes(api)

	fmt.Println("🚀 Server is running on http://localhost:8081")
	router.Run(":8081")
}
