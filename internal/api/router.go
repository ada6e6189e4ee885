package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/saasdash/dashboard-api/internal/api/handler"
	"github.com/saasdash/dashboard-api/internal/api/middleware"
	"github.com/saasdash/dashboard-api/internal/core/domain"
	"github.com/saasdash/dashboard-api/internal/core/service"
	"github.com/saasdash/dashboard-api/internal/infrastructure/config"
	"github.com/saasdash/dashboard-api/internal/infrastructure/db/sqlite"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(db *gorm.DB, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORS())
	e.Use(echoprometheus.NewMiddleware("dashboard"))

	// --- Dependencies ---
	userRepo := sqlite.NewUserRepository(db)
	productRepo := sqlite.NewProductRepository(db)
	invoiceRepo := sqlite.NewInvoiceRepository(db)

	tokens := service.NewTokenService(cfg.JWTAccessSecret, cfg.JWTRefreshSecret, 0, 0)
	authService := service.NewAuthService(userRepo, tokens, log)
	userService := service.NewUserService(userRepo, log)
	productService := service.NewProductService(productRepo, log)
	invoiceService := service.NewInvoiceService(invoiceRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	productHandler := handler.NewProductHandler(productService)
	invoiceHandler := handler.NewInvoiceHandler(invoiceService)
	settingsHandler := handler.NewSettingsHandler(userService)

	requireAuth := middleware.Auth(tokens)
	adminOnly := middleware.RBAC(domain.RoleAdmin)
	userOnly := middleware.RBAC(domain.RoleUser)

	// --- Auth routes ---
	e.POST("/auth/signup", authHandler.Signup)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/refresh", authHandler.Refresh)

	// --- Admin routes (access token + ADMIN role) ---
	admin := e.Group("/admin", requireAuth, adminOnly)
	admin.GET("/users", userHandler.List)
	admin.PATCH("/users/:id/role", userHandler.ChangeRole)
	admin.DELETE("/users/:id", userHandler.Delete)

	admin.GET("/products", productHandler.AdminList)
	admin.GET("/products/:id", productHandler.AdminGet)
	admin.POST("/products", productHandler.AdminCreate)
	admin.PUT("/products/:id", productHandler.AdminUpdate)
	admin.DELETE("/products/:id", productHandler.AdminDelete)

	admin.GET("/invoices", invoiceHandler.AdminList)
	admin.GET("/invoices/user/:userId", invoiceHandler.AdminListByUser)
	admin.POST("/invoices", invoiceHandler.AdminCreate)
	admin.PUT("/invoices/:id", invoiceHandler.AdminUpdate)
	admin.DELETE("/invoices/:id", invoiceHandler.AdminDelete)

	// --- User routes (access token + USER role, owner-scoped) ---
	userProducts := e.Group("/user/products", requireAuth, userOnly)
	userProducts.GET("", productHandler.List)
	userProducts.POST("", productHandler.Create)
	userProducts.PUT("/:id", productHandler.Update)
	userProducts.DELETE("/:id", productHandler.Delete)

	userInvoices := e.Group("/user/invoices", requireAuth, userOnly)
	userInvoices.GET("", invoiceHandler.List)
	userInvoices.POST("", invoiceHandler.Create)
	userInvoices.PUT("/:id", invoiceHandler.Update)
	userInvoices.DELETE("/:id", invoiceHandler.Delete)

	// Settings are open to any authenticated role.
	e.PUT("/user/settings", settingsHandler.Update, requireAuth)

	// --- Operational endpoints (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – is the database up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
