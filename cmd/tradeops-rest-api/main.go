// cmd/tradeops-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"

	v1 "github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/api/rest/v1"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/app"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/cases"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/extraction"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/domain/jobs"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/infrastructure/intake"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/infrastructure/persistence"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/infrastructure/persistence/models"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/infrastructure/report"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/infrastructure/vertexai"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/pkg/config"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/pkg/logger"
	"github.com/SoubhikGhosh/TradeOps-Data-Extraction/internal/pkg/metrics"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "../../configs/rest-app.yaml"
	}

	restConfig, err := config.InitializeRestConfig(configPath)
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	// Initialize logger
	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	// Initialize application dependencies
	deps, err := initializeDependencies(restConfig, log)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer func() {
		if err := deps.extractor.Close(); err != nil {
			log.Warn("Failed to close model client: ", err)
		}
	}()

	// Setup and start server with graceful shutdown
	return startServerWithGracefulShutdown(restConfig, deps, log)
}

// appDependencies holds all initialized application components
type appDependencies struct {
	db        *gorm.DB
	extractor *vertexai.GeminiExtractor
	collector *metrics.Collector
	services  *appServices
}

type appServices struct {
	jobProcessing  jobs.JobProcessingService
	jobMetadata    jobs.JobMetadataService
	reportDownload jobs.ReportDownloadService
}

// initializeDependencies sets up all application components
func initializeDependencies(cfg *config.RestConfig, log logger.Logger) (*appDependencies, error) {
	// Initialize database
	db, err := persistence.NewDBConnection(cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to create db connection: %w", err)
	}

	// Run migrations
	if err := db.AutoMigrate(&models.JobModel{}); err != nil {
		return nil, fmt.Errorf("failed to migrate schema: %w", err)
	}
	log.Info("Database migrations completed successfully")

	// Initialize repositories
	jobRepo, err := persistence.NewGormJobRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create job repository: %w", err)
	}

	// Initialize archive intake and model client
	archiveIntake, err := intake.NewZipIntake(cfg.Processing.TempDir, cfg.Processing.ClassifyUnknown, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create archive intake: %w", err)
	}

	extractor, err := vertexai.NewGeminiExtractor(context.Background(), &cfg.Vertex, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create field extractor: %w", err)
	}

	reportWriter := report.NewExcelWriter(log)
	collector := metrics.NewCollector()

	// Initialize services
	services, err := initializeApplicationServices(cfg, archiveIntake, extractor, reportWriter, jobRepo, collector, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize services: %w", err)
	}

	return &appDependencies{
		db:        db,
		extractor: extractor,
		collector: collector,
		services:  services,
	}, nil
}

// initializeApplicationServices sets up all application services
func initializeApplicationServices(
	cfg *config.RestConfig,
	archiveIntake cases.ArchiveIntake,
	extractor *vertexai.GeminiExtractor,
	reportWriter cases.ReportWriter,
	jobRepo jobs.JobRepository,
	collector *metrics.Collector,
	log logger.Logger,
) (*appServices, error) {
	var classifier extraction.DocumentClassifier
	if cfg.Processing.ClassifyUnknown {
		classifier = extractor
	}

	caseProcessingService, err := app.NewCaseProcessingService(
		archiveIntake, extractor, classifier, reportWriter,
		&cfg.Processing, collector, log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create case processing service: %w", err)
	}

	jobProcessingService, err := app.NewJobProcessingService(
		caseProcessingService, archiveIntake, jobRepo, collector, log,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create job processing service: %w", err)
	}

	jobMetadataService, err := app.NewJobMetadataService(jobRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create job metadata service: %w", err)
	}

	reportDownloadService, err := app.NewReportDownloadService(jobRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create report download service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		jobProcessing:  jobProcessingService,
		jobMetadata:    jobMetadataService,
		reportDownload: reportDownloadService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, deps *appDependencies, log logger.Logger) error {
	// Setup router
	r := gin.Default()

	// Configure CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.Use(v1.RequestMetrics(deps.collector))

	// Setup API routes
	v1.SetupRoutes(r,
		deps.services.jobProcessing,
		deps.services.jobMetadata,
		deps.services.reportDownload,
	)

	// Serve OpenAPI spec (replaces Swagger)
	r.GET("/api/v1/tdx/openapi.yaml", func(c *gin.Context) {
		c.File("./api/openapi/v1/tradeops.yaml")
	})

	// Operational endpoints
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, v1.InfoResponse{Message: "ok"})
	})
	r.GET("/ready", readinessHandler(deps.db))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Create HTTP server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start server in goroutine
	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Block until we receive a signal or server error
	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info("Received signal ", sig, ", initiating graceful shutdown")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}

// readinessHandler answers ready once the database connection can be pinged
func readinessHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(c.Request.Context())
		}
		if err != nil {
			c.JSON(http.StatusServiceUnavailable, v1.ErrorResponse{
				Message: fmt.Sprintf("database unavailable: %v", err),
			})
			return
		}
		c.JSON(http.StatusOK, v1.InfoResponse{Message: "ready"})
	}
}
