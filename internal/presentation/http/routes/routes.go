package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mercibizhub/bizhub-api/internal/config"
	domainRepo "github.com/mercibizhub/bizhub-api/internal/domain/repository"
	"github.com/mercibizhub/bizhub-api/internal/presentation/http/handler"
	"github.com/mercibizhub/bizhub-api/internal/presentation/http/middleware"
	"github.com/mercibizhub/bizhub-api/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Product   *handler.ProductHandler
	Sale      *handler.SaleHandler
	Invoice   *handler.InvoiceHandler
	Document  *handler.DocumentHandler
	Settings  *handler.SettingsHandler
	Dashboard *handler.DashboardHandler
	Events    *handler.EventsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	JWTManager      *utils.JWTManager
	Cfg             *config.Config
	IdempotencyRepo domainRepo.IdempotencyRepository
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware())
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": deps.Cfg.App.Name,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Public routes (no authentication required)
		registerAuthRoutes(v1, h)

		// SSE stream authenticates its token from the query string, so it
		// cannot sit behind the header-based auth middleware.
		v1.GET("/events", h.Events.Stream)

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-user rate limiter
		rateLimiter := middleware.NewUserRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		// Retried writes with the same Idempotency-Key replay the cached response
		protected.Use(middleware.Idempotency(middleware.IdempotencyConfig{
			Repository: deps.IdempotencyRepo,
		}))

		registerProtectedRoutes(protected, h)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		auth.POST("/forgot-password", h.Auth.ForgotPassword)
		auth.POST("/reset-password", h.Auth.ResetPassword)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleAuth)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Settings
	protected.GET("/settings", h.Settings.GetSettings)
	protected.PUT("/settings", h.Settings.UpdateSettings)

	// Dashboard
	protected.GET("/dashboard/summary", h.Dashboard.GetSummary)

	// Products
	registerProductRoutes(protected, h)

	// Sales
	registerSaleRoutes(protected, h)

	// Invoices
	registerInvoiceRoutes(protected, h)

	// Documents
	registerDocumentRoutes(protected, h)
}

func registerProductRoutes(protected *gin.RouterGroup, h *Handlers) {
	products := protected.Group("/products")
	{
		products.GET("", h.Product.List)
		products.POST("", h.Product.Create)
		products.POST("/delete-many", h.Product.DeleteMany)
		products.GET("/:id", h.Product.Get)
		products.PUT("/:id", h.Product.Update)
		products.DELETE("/:id", h.Product.Delete)
	}
}

func registerSaleRoutes(protected *gin.RouterGroup, h *Handlers) {
	sales := protected.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		sales.POST("", h.Sale.Create)
		sales.POST("/delete-many", h.Sale.DeleteMany)
		sales.GET("/export", h.Sale.Export)
		sales.GET("/:id", h.Sale.Get)
		sales.PUT("/:id", h.Sale.Update)
		sales.DELETE("/:id", h.Sale.Delete)
	}
}

func registerInvoiceRoutes(protected *gin.RouterGroup, h *Handlers) {
	invoices := protected.Group("/invoices")
	{
		invoices.GET("", h.Invoice.List)
		invoices.POST("", h.Invoice.Create)
		invoices.POST("/delete-many", h.Invoice.DeleteMany)
		invoices.GET("/export", h.Invoice.Export)
		invoices.GET("/:id", h.Invoice.Get)
		invoices.PUT("/:id", h.Invoice.Update)
		invoices.DELETE("/:id", h.Invoice.Delete)
	}
}

func registerDocumentRoutes(protected *gin.RouterGroup, h *Handlers) {
	documents := protected.Group("/documents")
	{
		documents.GET("/forms", h.Document.ListForms)
		documents.POST("/forms/:slug/generate", h.Document.Generate)
	}
}
