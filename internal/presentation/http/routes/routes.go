package routes

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/nftpro1212/frons-pos/internal/config"
	domainRepo "github.com/nftpro1212/frons-pos/internal/domain/repository"
	"github.com/nftpro1212/frons-pos/internal/presentation/http/handler"
	"github.com/nftpro1212/frons-pos/internal/presentation/http/middleware"
	"github.com/nftpro1212/frons-pos/pkg/utils"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Auth      *handler.AuthHandler
	Order     *handler.OrderHandler
	Payment   *handler.PaymentHandler
	Table     *handler.TableHandler
	Menu      *handler.MenuHandler
	Printer   *handler.PrinterHandler
	Settings  *handler.SettingsHandler
	Dashboard *handler.DashboardHandler
	User      *handler.UserHandler
	Live      *handler.LiveHandler
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

		// Protected routes (authentication required)
		protected := v1.Group("")
		protected.Use(middleware.AuthMiddleware(deps.JWTManager))

		// Per-client rate limiter
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		protected.Use(rateLimiter.Middleware())

		registerProtectedRoutes(protected, h, deps)
	}

	return router
}

func registerAuthRoutes(v1 *gin.RouterGroup, h *Handlers) {
	auth := v1.Group("/auth")
	{
		auth.POST("/login", h.Auth.Login)
		auth.POST("/register", h.Auth.Register)
		auth.POST("/refresh", h.Auth.RefreshToken)
		// Google OAuth routes
		auth.GET("/google", h.Auth.GoogleLogin)
		auth.GET("/google/callback", h.Auth.GoogleCallback)
	}
}

func registerProtectedRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	// Auth/Profile routes
	protected.POST("/auth/logout", h.Auth.Logout)
	protected.GET("/profile", h.Auth.GetProfile)
	protected.PUT("/profile", h.Auth.UpdateProfile)
	protected.PUT("/profile/password", h.Auth.ChangePassword)

	// Settings
	settings := protected.Group("/settings")
	settings.Use(middleware.RequirePermission("manage-settings"))
	{
		settings.GET("", h.Settings.Get)
		settings.PUT("", h.Settings.Update)
	}

	// Dashboard
	dashboard := protected.Group("/dashboard")
	dashboard.Use(middleware.RequirePermission("view-dashboard"))
	{
		dashboard.GET("", h.Dashboard.Stats)
	}

	registerTableRoutes(protected, h)
	registerMenuRoutes(protected, h)
	registerOrderRoutes(protected, h, deps)
	registerPaymentRoutes(protected, h, deps)
	registerLiveRoutes(protected, h)
	registerPrinterRoutes(protected, h)
	registerUserRoutes(protected, h)
}

func registerTableRoutes(protected *gin.RouterGroup, h *Handlers) {
	tables := protected.Group("/tables")
	tables.Use(middleware.RequirePermission("manage-tables"))
	{
		tables.GET("", h.Table.List)
		tables.POST("", h.Table.Create)
		tables.GET("/:id", h.Table.Get)
		tables.PUT("/:id", h.Table.Update)
		tables.DELETE("/:id", h.Table.Delete)
	}
}

func registerMenuRoutes(protected *gin.RouterGroup, h *Handlers) {
	menu := protected.Group("/menu")
	menu.Use(middleware.RequirePermission("manage-menu"))
	{
		menu.GET("/categories", h.Menu.ListCategories)
		menu.POST("/categories", h.Menu.CreateCategory)
		menu.PUT("/categories/:id", h.Menu.UpdateCategory)
		menu.DELETE("/categories/:id", h.Menu.DeleteCategory)

		menu.GET("/items", h.Menu.ListItems)
		menu.POST("/items", h.Menu.CreateItem)
		menu.GET("/items/:id", h.Menu.GetItem)
		menu.PUT("/items/:id", h.Menu.UpdateItem)
		menu.DELETE("/items/:id", h.Menu.DeleteItem)
	}
}

func registerOrderRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	orders := protected.Group("/orders")
	orders.Use(middleware.RequirePermission("manage-orders"))
	{
		orders.GET("", h.Order.List)
		// Order creation honors an idempotency key when the register
		// sends one, but does not demand it
		orders.POST("", middleware.Idempotency(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Order.Create)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id", h.Order.Update)
		orders.POST("/:id/void", h.Order.Void)
		orders.GET("/:id/checkout", h.Order.CheckoutTotals)
		orders.POST("/:id/checkout", h.Order.CheckoutPreview)
	}
}

func registerPaymentRoutes(protected *gin.RouterGroup, h *Handlers, deps *Deps) {
	payments := protected.Group("/payments")
	payments.Use(middleware.RequirePermission("submit-payments"))
	{
		payments.GET("", h.Payment.List)
		// Payment submission requires an idempotency key so a register
		// retrying over a flaky link cannot settle an order twice
		payments.POST("", middleware.IdempotencyRequired(middleware.IdempotencyConfig{
			Repo: deps.IdempotencyRepo,
		}), h.Payment.Submit)
		payments.GET("/:id", h.Payment.Get)
		payments.GET("/:id/receipt", h.Payment.GetReceipt)
		payments.GET("/:id/receipt/download", h.Payment.DownloadReceipt)
		payments.POST("/:id/print", h.Payment.Print)
		payments.POST("/:id/email", h.Payment.Email)
	}
}

func registerLiveRoutes(protected *gin.RouterGroup, h *Handlers) {
	live := protected.Group("/live")
	live.Use(middleware.RequirePermission("manage-orders"))
	{
		live.GET("/orders", h.Live.Orders)
		live.GET("/orders/:id", h.Live.Order)
	}
}

func registerPrinterRoutes(protected *gin.RouterGroup, h *Handlers) {
	printers := protected.Group("/printers")
	printers.Use(middleware.RequirePermission("manage-printers"))
	{
		printers.GET("", h.Printer.List)
		printers.POST("", h.Printer.Create)
		printers.GET("/status", h.Printer.Status)
		printers.GET("/:id", h.Printer.Get)
		printers.PUT("/:id", h.Printer.Update)
		printers.DELETE("/:id", h.Printer.Delete)
		printers.POST("/:id/test", h.Printer.TestPrint)
	}
}

func registerUserRoutes(protected *gin.RouterGroup, h *Handlers) {
	users := protected.Group("/users")
	users.Use(middleware.RequirePermission("manage-users"))
	{
		users.GET("", h.User.List)
		users.POST("", h.User.Create)
		users.GET("/:id", h.User.Get)
		users.PUT("/:id/roles", middleware.RequireRole("admin"), h.User.UpdateRoles)
		users.PUT("/:id/active", middleware.RequireRole("admin"), h.User.SetActive)
		users.DELETE("/:id", middleware.RequireRole("admin"), h.User.Delete)
	}

	roles := protected.Group("/roles")
	roles.Use(middleware.RequirePermission("manage-users"))
	{
		roles.GET("", h.User.ListRoles)
	}

	permissions := protected.Group("/permissions")
	permissions.Use(middleware.RequirePermission("manage-users"))
	{
		permissions.GET("", h.User.ListPermissions)
	}
}
