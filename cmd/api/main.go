package main

import (
	"log"
	"os"

	"github.com/cratetracker/cratetracker-api/internal/application/service"
	"github.com/cratetracker/cratetracker-api/internal/config"
	"github.com/cratetracker/cratetracker-api/internal/infrastructure/database"
	"github.com/cratetracker/cratetracker-api/internal/infrastructure/repository"
	"github.com/cratetracker/cratetracker-api/internal/presentation/http/handler"
	"github.com/cratetracker/cratetracker-api/internal/presentation/http/routes"
	"github.com/gin-gonic/gin"
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

	// Initialize repositories
	vendorRepo := repository.NewVendorRepository(db)
	saleRepo := repository.NewSaleRepository(db)
	paymentRepo := repository.NewPaymentRepository(db)
	crateReturnRepo := repository.NewCrateReturnRepository(db)
	reportRepo := repository.NewReportRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	vendorService := service.NewVendorService(vendorRepo, saleRepo)
	saleService := service.NewSaleService(saleRepo, paymentRepo, vendorRepo)
	crateReturnService := service.NewCrateReturnService(crateReturnRepo, vendorRepo)
	reportService := service.NewReportService(reportRepo, vendorRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Vendor:      handler.NewVendorHandler(vendorService),
		Sale:        handler.NewSaleHandler(saleService),
		CrateReturn: handler.NewCrateReturnHandler(crateReturnService),
		Report:      handler.NewReportHandler(reportService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
