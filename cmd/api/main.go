package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	_ "github.com/joho/godotenv/autoload"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/sjperalta/fintera-amortization/docs" // Swagger docs
	"github.com/sjperalta/fintera-amortization/internal/config"
	"github.com/sjperalta/fintera-amortization/internal/database"
	"github.com/sjperalta/fintera-amortization/internal/handlers"
	"github.com/sjperalta/fintera-amortization/internal/jobs"
	"github.com/sjperalta/fintera-amortization/internal/middleware"
	"github.com/sjperalta/fintera-amortization/internal/repository"
	"github.com/sjperalta/fintera-amortization/internal/services"
	"github.com/sjperalta/fintera-amortization/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title Fintera Amortization API
// @version 1.0
// @description Amortization schedules, payment allocation and journal posting for prepaid vendor contracts

// @contact.name API Support
// @contact.url http://www.swagger.io/support
// @contact.email support@swagger.io

// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080
// @BasePath /api/v1
// @schemes http
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Setup(cfg.Environment)

	// Initialize Sentry (GlitchTip) when DSN is configured
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
		}); err != nil {
			logger.Error("Sentry initialization failed", "error", err)
		} else {
			logger.Info("Sentry initialized")
		}
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.RunMigrations {
		if err := database.RunMigrations(cfg.DatabaseURL); err != nil {
			logger.Error("Failed to run migrations", "error", err)
			os.Exit(1)
		}
	}

	// Connect to database
	db, err := database.Connect(cfg.DatabaseURL, database.DefaultOptions(cfg.IsProduction()))
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	logger.Info("Connected to database")

	repos := repository.NewRepositories(db)

	// Initialize background worker
	worker := jobs.NewWorker(cfg.WorkerCount)
	logger.Info("Started background worker", "goroutines", cfg.WorkerCount)

	svcs := services.NewServices(repos, worker, services.SettingsFromConfig(cfg))
	scheduleJobs(worker, svcs, cfg)

	h := handlers.NewHandlers(svcs)
	router := setupRouter(h, cfg)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	worker.Shutdown()
	logger.Info("Background worker stopped")

	if err := database.Close(db); err != nil {
		logger.Error("Failed to close database", "error", err)
	}

	// Flush Sentry events before exit
	if cfg.SentryDSN != "" {
		sentry.Flush(5 * time.Second)
	}

	logger.Info("Server exited gracefully")
}

func setupRouter(h *handlers.Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	if cfg.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))
	router.Use(middleware.Operator())
	router.Use(gzip.Gzip(gzip.DefaultCompression))

	// Redirect root to swagger
	router.GET("/", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
	})
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/api/v1")
	{
		v1.GET("/health", h.Health.Index)

		v1.POST("/amortization/calculate", h.Amortization.Calculate)

		contracts := v1.Group("/contracts")
		{
			contracts.GET("", h.Contract.Index)
			contracts.POST("", h.Contract.Create)
			contracts.GET("/:contract_id", h.Contract.Show)
			contracts.PATCH("/:contract_id", h.Contract.Update)

			contracts.GET("/:contract_id/amortization", h.Amortization.ByContract)

			contracts.GET("/:contract_id/payments", h.Payment.IndexByContract)
			contracts.POST("/:contract_id/payments", h.Payment.Execute)

			contracts.GET("/:contract_id/journal_entries", h.Journal.IndexByContract)
			contracts.GET("/:contract_id/journal_entries/preview", h.Journal.PreviewAmortization)
			contracts.POST("/:contract_id/journal_entries/amortization", h.Journal.GenerateAmortization)

			contracts.GET("/:contract_id/exports/schedule.xlsx", h.Report.ScheduleXLSX)
			contracts.GET("/:contract_id/exports/journal.pdf", h.Report.JournalPDF)
			contracts.GET("/:contract_id/exports/journal.csv", h.Report.JournalCSV)

			contracts.GET("/:contract_id/operation_logs", h.Audit.IndexByContract)
		}

		payments := v1.Group("/payments")
		{
			payments.POST("/preview", h.Payment.Preview)
			payments.GET("/:payment_id", h.Payment.Show)
			payments.POST("/:payment_id/cancel", h.Payment.Cancel)
		}

		reports := v1.Group("/reports")
		{
			reports.GET("/dashboard", h.Report.Dashboard)
			reports.GET("/vendors", h.Report.Vendors)
		}

		v1.GET("/jobs/status", h.Job.Status)
	}

	return router
}

func scheduleJobs(worker *jobs.Worker, svcs *services.Services, cfg *config.Config) {
	// Warm the report cache at startup, then refresh it before it expires
	worker.ScheduleEveryImmediate(cfg.ReportCacheTTL, func(ctx context.Context) error {
		logger.Info("[Job] Refreshing report cache...")
		return svcs.Report.RefreshCache(ctx)
	})

	logger.Info("Scheduled recurring jobs")
}
