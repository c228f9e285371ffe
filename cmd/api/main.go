package main

import (
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/driver/mysql"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/kedaimae/kedai-backend/internal/common"
	"github.com/kedaimae/kedai-backend/internal/config"
	"github.com/kedaimae/kedai-backend/internal/domain"
	"github.com/kedaimae/kedai-backend/internal/gateway"
	"github.com/kedaimae/kedai-backend/internal/handler"
	"github.com/kedaimae/kedai-backend/internal/middleware"
	"github.com/kedaimae/kedai-backend/internal/mirror"
	"github.com/kedaimae/kedai-backend/internal/notify"
	"github.com/kedaimae/kedai-backend/internal/registry"
	"github.com/kedaimae/kedai-backend/internal/routes"
	"github.com/kedaimae/kedai-backend/internal/seed"
	"github.com/kedaimae/kedai-backend/internal/service"
	"github.com/kedaimae/kedai-backend/internal/store"
	"github.com/kedaimae/kedai-backend/internal/ws"
	pkgcache "github.com/kedaimae/kedai-backend/pkg/cache"
	"github.com/kedaimae/kedai-backend/pkg/i18n"
	"github.com/kedaimae/kedai-backend/pkg/jwt"
	pkglogger "github.com/kedaimae/kedai-backend/pkg/logger"
	pkgredis "github.com/kedaimae/kedai-backend/pkg/redis"
)

// @title           Kedai Mae API
// @version         1.0
// @description     Kedai Mae Restaurant - Ordering and Community Backend API
//
// @license.name    MIT
//
// @host            localhost:8080
// @BasePath        /api/v1
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Authorization header using the Bearer scheme. Example: "Bearer {token}"

// getConfigPath returns config file path based on APP_ENV environment variable
func getConfigPath() string {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	return fmt.Sprintf("configs/config.%s.yaml", env)
}

func main() {
	dotenvFiles := config.LoadDotEnv()

	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "local"
	}
	pkglogger.InitStructured(env)
	pkglogger.Info("APP_ENV=%s, loaded env files: %v", env, dotenvFiles)

	configPath := getConfigPath()
	cfg := config.LoadOrDefault(configPath)
	pkglogger.Info("Config loaded from %s (port=%d, db=%s)", configPath, cfg.Server.Port, cfg.Database.Driver)

	// Durable mirror database
	db, err := initDB(cfg)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&domain.Order{}, &domain.OrderItem{}); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}
	pkglogger.Info("Connected to %s database", cfg.Database.Driver)

	// Redis is optional; the API degrades to single-instance mode without it
	redisClient, err := pkgredis.NewClient(
		cfg.Redis.Host,
		cfg.Redis.Port,
		cfg.Redis.Password,
		cfg.Redis.DB,
		cfg.Redis.PoolSize,
	)
	if err != nil {
		pkglogger.Info("Warning: Failed to connect to Redis: %v (continuing without Redis)", err)
		redisClient = nil
	} else {
		pkglogger.Info("Connected to Redis")
	}

	var cacheService pkgcache.Service
	if redisClient != nil {
		cacheService = pkgcache.NewService(redisClient)
		pkglogger.Info("Cache service initialized")
	}

	// WebSocket Hub
	wsHub := ws.NewHub(redisClient)
	go wsHub.Run()
	defer wsHub.Stop()

	// JWT Manager
	jwtManager := jwt.NewManager(cfg.JWT.Secret, cfg.JWTExpiry())

	// i18n Bundle
	i18nBundle := i18n.NewBundle(i18n.LocaleEn)
	for locale, msgs := range i18n.DefaultMessages() {
		i18nBundle.LoadMessages(locale, msgs)
	}
	if _, err := os.Stat("i18n"); err == nil {
		if err := i18nBundle.LoadDir("i18n"); err != nil {
			pkglogger.Warn("i18n LoadDir failed: %v", err)
		}
	}

	// Request validators (phone format on contact fields)
	if err := common.RegisterValidators(); err != nil {
		log.Fatalf("Failed to register validators: %v", err)
	}

	// Notification fan-out: websocket push plus structured logs
	notifier := notify.NewMulti(notify.NewHubSink(wsHub), notify.NewLogSink())

	// Core wiring
	reg := registry.New(seed.DiscountCodes(), seed.PromoCodes())
	mirrorStore, err := mirror.NewGormStore(db)
	if err != nil {
		log.Fatalf("Failed to initialize mirror store: %v", err)
	}
	carts := store.NewCartStore(reg, mirrorStore, notifier)

	orderGateway := gateway.NewSimulatedOrderGateway(cfg.OrderDelay())
	identityGateway := gateway.NewSimulatedIdentityGateway(cfg.IdentityDelay())

	menuService := service.NewMenuService(seed.MenuItems(), cacheService)
	cartService := service.NewCartService(carts, menuService)
	checkoutService := service.NewCheckoutService(
		carts,
		reg,
		db,
		orderGateway,
		notifier,
		seed.DeliveryOptions(),
		seed.PaymentMethods(),
		cfg.CartClearDelay(),
	)
	eventService := service.NewEventService(seed.Events(), seed.PaymentMethods(), notifier)
	communityService := service.NewCommunityService(seed.ForumPosts(), seed.Polls(), seed.ShowcasePosts(), notifier)
	galleryService := service.NewGalleryService(seed.GalleryImages())

	seedUsers := seed.Users()
	authService, err := service.NewAuthService(seedUsers, jwtManager, identityGateway, mirrorStore, db)
	if err != nil {
		log.Fatalf("Failed to initialize auth service: %v", err)
	}

	adminService := service.NewAdminService(db, menuService, reg, service.Counts{
		MenuItems:  len(seed.MenuItems()),
		Events:     len(seed.Events()),
		ForumPosts: len(seed.ForumPosts()),
		Users:      len(seedUsers),
	})

	// Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "Accept-Language", "X-Request-ID"},
		AllowCredentials: true,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		ExposeHeaders:    []string{"X-Request-ID", "X-RateLimit-Remaining"},
		MaxAge:           86400,
	}
	router.Use(cors.New(corsConfig))

	router.Use(middleware.I18n())
	router.Use(middleware.Metrics())
	router.Use(middleware.RequestLogger())

	if redisClient != nil && cfg.Server.Env == "production" {
		router.Use(middleware.RateLimit(redisClient, middleware.DefaultRateLimitConfig()))
	}

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health Check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "kedai-backend",
			"time":    time.Now().Unix(),
		})
	})

	// Handlers
	menuHandler := handler.NewMenuHandler(menuService, authService)
	cartHandler := handler.NewCartHandler(cartService, i18nBundle)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService, i18nBundle)
	eventHandler := handler.NewEventHandler(eventService, i18nBundle)
	communityHandler := handler.NewCommunityHandler(communityService, authService, i18nBundle)
	galleryHandler := handler.NewGalleryHandler(galleryService)
	authHandler := handler.NewAuthHandler(authService, i18nBundle)
	adminHandler := handler.NewAdminHandler(adminService, authService)
	wsHandler := handler.NewWSHandler(wsHub, strings.Join(cfg.CORS.AllowOrigins, ","))

	routes.Setup(
		router,
		menuHandler,
		cartHandler,
		checkoutHandler,
		eventHandler,
		communityHandler,
		galleryHandler,
		authHandler,
		adminHandler,
		wsHandler,
		jwtManager,
	)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	pkglogger.Info("Server listening on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// initDB opens the mirror database. SQLite is the embedded default;
// MySQL is used when a DSN is configured.
func initDB(cfg *config.Config) (*gorm.DB, error) {
	gormCfg := &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	}

	switch cfg.Database.Driver {
	case "mysql":
		return gorm.Open(mysql.Open(cfg.Database.DSN), gormCfg)
	default:
		return gorm.Open(sqlite.Open(cfg.Database.Path), gormCfg)
	}
}
