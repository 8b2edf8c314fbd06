package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/mercibizhub/bizhub-api/internal/application/service"
	"github.com/mercibizhub/bizhub-api/internal/config"
	"github.com/mercibizhub/bizhub-api/internal/events"
	"github.com/mercibizhub/bizhub-api/internal/infrastructure/database"
	"github.com/mercibizhub/bizhub-api/internal/infrastructure/repository"
	"github.com/mercibizhub/bizhub-api/internal/presentation/http/handler"
	"github.com/mercibizhub/bizhub-api/internal/presentation/http/routes"
	"github.com/mercibizhub/bizhub-api/pkg/email"
	"github.com/mercibizhub/bizhub-api/pkg/oauth"
	"github.com/mercibizhub/bizhub-api/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	setupLogger(cfg.App.Env)

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Warn().Err(err).Msg("failed to seed default data")
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	passwordResetRepo := repository.NewPasswordResetTokenRepository(db)
	productRepo := repository.NewProductRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	invoiceRepo := repository.NewInvoiceRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize the live-update hub
	hub := events.NewHub()
	notifier := events.NewHubNotifier(hub)

	// Initialize email service
	emailService := email.NewService(email.Config{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUsername,
		SMTPPassword: cfg.Email.SMTPPassword,
		FromName:     cfg.Email.FromName,
		FromEmail:    cfg.Email.FromEmail,
		FrontendURL:  cfg.Email.FrontendURL,
	})

	// Initialize Google sign-in service
	googleService := oauth.NewGoogleService(oauth.GoogleConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, passwordResetRepo, jwtManager, emailService, googleService)
	productService := service.NewProductService(productRepo, notifier)
	saleService := service.NewSaleService(saleRepo, productRepo, settingsRepo, notifier)
	invoiceService := service.NewInvoiceService(invoiceRepo, productRepo, settingsRepo, notifier)
	settingsService := service.NewSettingsService(settingsRepo, notifier)
	dashboardService := service.NewDashboardService(saleRepo, invoiceRepo)
	documentService := service.NewDocumentService()
	exportService := service.NewExportService(saleRepo, invoiceRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService, googleService),
		Product:   handler.NewProductHandler(productService),
		Sale:      handler.NewSaleHandler(saleService, exportService),
		Invoice:   handler.NewInvoiceHandler(invoiceService, exportService),
		Document:  handler.NewDocumentHandler(documentService, cfg.Upload.MaxTemplateSize),
		Settings:  handler.NewSettingsHandler(settingsService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		Events:    handler.NewEventsHandler(hub, jwtManager),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Info().
		Str("service", cfg.App.Name).
		Str("env", cfg.App.Env).
		Str("port", port).
		Msg("starting server")

	if err := router.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}

func setupLogger(env string) {
	if env == "production" {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
	} else {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = zerolog.New(os.Stdout).With().Timestamp().Logger()
}
