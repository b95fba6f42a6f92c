package routes

import (
	"time"

	"github.com/cratetracker/cratetracker-api/internal/config"
	domainRepo "github.com/cratetracker/cratetracker-api/internal/domain/repository"
	"github.com/cratetracker/cratetracker-api/internal/presentation/http/handler"
	"github.com/cratetracker/cratetracker-api/internal/presentation/http/middleware"
	"github.com/gin-gonic/gin"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Vendor      *handler.VendorHandler
	Sale        *handler.SaleHandler
	CrateReturn *handler.CrateReturnHandler
	Report      *handler.ReportHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
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
		rateLimiter := middleware.NewClientRateLimiter(middleware.RateLimiterConfig{
			RequestsPerSecond: float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration),
			BurstSize:         deps.Cfg.RateLimit.Requests,
			CleanupInterval:   5 * time.Minute,
			EntryTTL:          10 * time.Minute,
		})
		v1.Use(rateLimiter.Middleware())

		registerVendorRoutes(v1, h)
		registerSaleRoutes(v1, h, deps)
		registerCrateReturnRoutes(v1, h)
		registerReportRoutes(v1, h)
	}

	return router
}

func registerVendorRoutes(v1 *gin.RouterGroup, h *Handlers) {
	vendors := v1.Group("/vendors")
	{
		vendors.GET("", h.Vendor.List)
		vendors.POST("", h.Vendor.Create)
		vendors.GET("/:id", h.Vendor.Get)
		vendors.PUT("/:id", h.Vendor.Update)
		vendors.DELETE("/:id", h.Vendor.Delete)
	}
}

func registerSaleRoutes(v1 *gin.RouterGroup, h *Handlers, deps *Deps) {
	idempotency := middleware.Idempotency(middleware.IdempotencyConfig{
		Repo: deps.IdempotencyRepo,
	})

	sales := v1.Group("/sales")
	{
		sales.GET("", h.Sale.List)
		// Creation and payment application honor an optional Idempotency-Key
		// header so retried requests do not double-apply
		sales.POST("", idempotency, h.Sale.Create)
		sales.GET("/:id", h.Sale.Get)
		sales.PUT("/:id", h.Sale.Update)
		sales.DELETE("/:id", h.Sale.Delete)
		sales.PUT("/:id/payment", idempotency, h.Sale.RecordPayment)
		sales.GET("/:id/payments", h.Sale.ListPayments)
	}
}

func registerCrateReturnRoutes(v1 *gin.RouterGroup, h *Handlers) {
	returns := v1.Group("/crate-returns")
	{
		returns.GET("", h.CrateReturn.List)
		returns.POST("", h.CrateReturn.Create)
		returns.GET("/:id", h.CrateReturn.Get)
		returns.DELETE("/:id", h.CrateReturn.Delete)
	}
}

func registerReportRoutes(v1 *gin.RouterGroup, h *Handlers) {
	reports := v1.Group("/reports")
	{
		reports.GET("/summary", h.Report.GetSummary)
	}
}
