package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/modabay/storefront-api/internal/api/handler"
	"github.com/modabay/storefront-api/internal/api/middleware"
	"github.com/modabay/storefront-api/internal/core/domain"
	"github.com/modabay/storefront-api/internal/core/ports"
	"github.com/modabay/storefront-api/internal/core/service"
	"github.com/modabay/storefront-api/internal/infrastructure/config"
	mongodb "github.com/modabay/storefront-api/internal/infrastructure/db/mongo"
	redisdb "github.com/modabay/storefront-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// External collaborators (payment provider, image host) come in as ports so
// tests and main can substitute implementations.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	provider ports.PaymentProvider,
	images ports.ImageStore,
	cfg *config.Config,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("storefront"))

	// --- Repositories ---
	userRepo := mongodb.NewUserRepository(db)
	productRepo := mongodb.NewProductRepository(db)
	couponRepo := mongodb.NewCouponRepository(db)
	orderRepo := mongodb.NewOrderRepository(db)
	sessionStore := redisdb.NewSessionStore(rdb)
	productCache := redisdb.NewProductCache(rdb)

	// --- Services ---
	tokenService := service.NewTokenService(cfg.AccessTokenSecret, cfg.RefreshTokenSecret, domain.AccessTokenTTL, domain.RefreshTokenTTL)
	authService := service.NewAuthService(userRepo, tokenService, sessionStore, log)
	cartService := service.NewCartService(userRepo, productRepo, log)
	productService := service.NewProductService(productRepo, productCache, images, log)
	couponService := service.NewCouponService(couponRepo, log)
	checkoutService := service.NewCheckoutService(couponRepo, couponService, orderRepo, provider, cfg.ClientURL, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService, cfg.IsProduction())
	cartHandler := handler.NewCartHandler(cartService)
	productHandler := handler.NewProductHandler(productService)
	couponHandler := handler.NewCouponHandler(couponService)
	checkoutHandler := handler.NewCheckoutHandler(checkoutService)

	authRequired := middleware.Auth(tokenService, userRepo)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	auth := e.Group("/api/auth")
	auth.POST("/signup", authHandler.Signup)
	auth.POST("/login", authHandler.Login)
	auth.POST("/logout", authHandler.Logout)
	auth.POST("/refresh-token", authHandler.Refresh)
	auth.GET("/profile", authHandler.Profile, authRequired)

	// --- Product routes ---
	products := e.Group("/api/products")
	products.GET("/featured", productHandler.Featured)
	products.GET("/recommendations", productHandler.Recommended)
	products.GET("/category/:category", productHandler.ByCategory)
	products.GET("", productHandler.List, authRequired, adminOnly)
	products.POST("", productHandler.Create, authRequired, adminOnly)
	products.DELETE("/:id", productHandler.Delete, authRequired, adminOnly)
	products.PATCH("/:id", productHandler.ToggleFeatured, authRequired, adminOnly)

	// --- Cart routes ---
	cart := e.Group("/api/cart", authRequired)
	cart.GET("", cartHandler.View)
	cart.POST("", cartHandler.Add)
	cart.DELETE("", cartHandler.Remove)
	cart.PUT("/:id", cartHandler.UpdateQuantity)

	// --- Coupon routes ---
	coupons := e.Group("/api/coupons", authRequired)
	coupons.GET("", couponHandler.GetActive)
	coupons.POST("/validate", couponHandler.Validate)

	// --- Payment routes ---
	payments := e.Group("/api/payments", authRequired)
	payments.POST("/create-checkout-session", checkoutHandler.CreateSession)
	payments.POST("/checkout-success", checkoutHandler.Confirm)

	// --- Order history ---
	orders := e.Group("/api/orders", authRequired)
	orders.GET("", checkoutHandler.Orders)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
