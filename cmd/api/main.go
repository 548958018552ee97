package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nftpro1212/frons-pos/internal/application/feed"
	"github.com/nftpro1212/frons-pos/internal/application/service"
	"github.com/nftpro1212/frons-pos/internal/config"
	"github.com/nftpro1212/frons-pos/internal/infrastructure/database"
	"github.com/nftpro1212/frons-pos/internal/infrastructure/events"
	infraRepo "github.com/nftpro1212/frons-pos/internal/infrastructure/repository"
	"github.com/nftpro1212/frons-pos/internal/presentation/http/handler"
	"github.com/nftpro1212/frons-pos/internal/presentation/http/routes"
	"github.com/nftpro1212/frons-pos/pkg/email"
	"github.com/nftpro1212/frons-pos/pkg/oauth"
	"github.com/nftpro1212/frons-pos/pkg/utils"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Seed default data
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := infraRepo.NewUserRepository(db)
	roleRepo := infraRepo.NewRoleRepository(db)
	permissionRepo := infraRepo.NewPermissionRepository(db)
	orderRepo := infraRepo.NewOrderRepository(db)
	orderItemRepo := infraRepo.NewOrderItemRepository(db)
	paymentRepo := infraRepo.NewPaymentRepository(db)
	tableRepo := infraRepo.NewTableRepository(db)
	menuItemRepo := infraRepo.NewMenuItemRepository(db)
	menuCategoryRepo := infraRepo.NewMenuCategoryRepository(db)
	printerRepo := infraRepo.NewPrinterRepository(db)
	settingsRepo := infraRepo.NewSettingsRepository(db)
	idempotencyRepo := infraRepo.NewIdempotencyRepository(db)
	analyticsRepo := infraRepo.NewAnalyticsRepository(db)

	// Every payment submission leaves a key behind; sweep expired ones
	go func() {
		ticker := time.NewTicker(time.Hour)
		defer ticker.Stop()
		for range ticker.C {
			if err := idempotencyRepo.DeleteExpired(context.Background()); err != nil {
				log.Printf("Warning: failed to sweep idempotency keys: %v", err)
			}
		}
	}()

	// Connect to the message bus. The register must keep selling when the
	// bus is down, so a failed connection downgrades to local-only mode.
	var busPublisher events.Publisher
	var busSubscriber events.Subscriber
	if natsPub, err := events.NewNATSPublisher(cfg.NATS.URL); err != nil {
		log.Printf("Warning: message bus unavailable, running local-only: %v", err)
	} else {
		busPublisher = natsPub
		defer natsPub.Close()

		natsSub, err := events.NewNATSSubscriber(cfg.NATS.URL)
		if err != nil {
			log.Printf("Warning: failed to subscribe to message bus: %v", err)
		} else {
			busSubscriber = natsSub
			defer natsSub.Close()
		}
	}
	orderEvents := events.NewOrderEventPublisher(busPublisher, cfg.NATS.OrderSubject)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.SMTP.Host,
		SMTPPort:     cfg.SMTP.Port,
		SMTPUsername: cfg.SMTP.Username,
		SMTPPassword: cfg.SMTP.Password,
		FromName:     cfg.SMTP.FromName,
		FromEmail:    cfg.SMTP.FromEmail,
	})

	// Initialize Google OAuth service
	googleOAuthService := oauth.NewGoogleOAuthService(oauth.GoogleOAuthConfig{
		ClientID:           cfg.OAuth.GoogleClientID,
		ClientSecret:       cfg.OAuth.GoogleClientSecret,
		RedirectURL:        cfg.OAuth.GoogleRedirectURL,
		FrontendSuccessURL: cfg.OAuth.FrontendSuccessURL,
		FrontendErrorURL:   cfg.OAuth.FrontendErrorURL,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, roleRepo, jwtManager, googleOAuthService)
	userService := service.NewUserService(userRepo, roleRepo, permissionRepo)
	orderService := service.NewOrderService(orderRepo, orderItemRepo, menuItemRepo, tableRepo, orderEvents)
	printerService := service.NewPrinterService(printerRepo, settingsRepo, busPublisher)
	paymentService := service.NewPaymentService(paymentRepo, orderRepo, userRepo, settingsRepo, printerService, emailService, orderEvents)
	tableService := service.NewTableService(tableRepo, orderRepo)
	menuService := service.NewMenuService(menuItemRepo, menuCategoryRepo)
	settingsService := service.NewSettingsService(settingsRepo, printerRepo)
	dashboardService := service.NewDashboardService(analyticsRepo, paymentRepo)

	// Warm the live order feed and attach it to the bus
	liveFeed := feed.New()
	warmCtx, cancelWarm := context.WithTimeout(context.Background(), 10*time.Second)
	if err := liveFeed.Warm(warmCtx, orderRepo); err != nil {
		log.Printf("Warning: failed to warm live order feed: %v", err)
	}
	cancelWarm()
	if busSubscriber != nil {
		if err := liveFeed.Subscribe(context.Background(), busSubscriber, cfg.NATS.OrderSubject); err != nil {
			log.Printf("Warning: failed to attach live feed to bus: %v", err)
		}
	}

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Order:     handler.NewOrderHandler(orderService),
		Payment:   handler.NewPaymentHandler(paymentService),
		Table:     handler.NewTableHandler(tableService),
		Menu:      handler.NewMenuHandler(menuService),
		Printer:   handler.NewPrinterHandler(printerService),
		Settings:  handler.NewSettingsHandler(settingsService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		User:      handler.NewUserHandler(userService),
		Live:      handler.NewLiveHandler(liveFeed),
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

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
		log.Printf("Environment: %s", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt, then drain in-flight requests
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	log.Println("Server exited")
}
