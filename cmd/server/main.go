package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/open-sedori/sedori/internal/auth"
	"github.com/open-sedori/sedori/internal/catalog"
	"github.com/open-sedori/sedori/internal/compliance/engine"
	"github.com/open-sedori/sedori/internal/compliance/router"
	"github.com/open-sedori/sedori/internal/compliance/service"
	"github.com/open-sedori/sedori/internal/config"
	"github.com/open-sedori/sedori/internal/database"
	"github.com/open-sedori/sedori/internal/license"
	"github.com/open-sedori/sedori/internal/middleware"
	"github.com/open-sedori/sedori/internal/regulation"
	"github.com/open-sedori/sedori/internal/uploads"
)

func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	slog.Info("configuration loaded successfully",
		"db_host", cfg.Database.Host,
		"db_port", cfg.Database.Port,
		"db_name", cfg.Database.Name,
		"db_sslmode", cfg.Database.SSLMode,
	)

	slog.Info("CORS configuration",
		"allowed_origins", cfg.CORS.AllowedOrigins,
		"allowed_methods", cfg.CORS.AllowedMethods,
		"allowed_headers", cfg.CORS.AllowedHeaders,
		"allow_credentials", cfg.CORS.AllowCredentials,
		"max_age", cfg.CORS.MaxAge,
	)

	slog.Info("compliance engine configuration",
		"review_threshold", cfg.Compliance.ReviewThreshold,
		"expiring_soon_days", cfg.Compliance.ExpiringSoonDays,
	)

	// Initialize database connection
	db, err := database.New(&cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	defer func() {
		if err := database.Close(db); err != nil {
			slog.Error("failed to close database", "error", err)
		}
	}()

	if err := database.HealthCheck(db); err != nil {
		log.Fatalf("database health check failed: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelStartup()

	if err := regulation.Seed(startupCtx, db); err != nil {
		log.Fatalf("failed to seed regulation rules: %v", err)
	}

	// Initialize document storage driver
	storage, err := uploads.NewStorageFromConfig(startupCtx, cfg.Storage)
	if err != nil {
		log.Fatalf("failed to initialize document storage: %v", err)
	}

	// Wire services
	issuer := auth.NewTokenIssuer(cfg.Auth.JWTSecret, time.Duration(cfg.Auth.TokenTTLMinutes)*time.Minute)
	authService := auth.NewAuthService(db, issuer)
	productService := catalog.NewProductService(db)
	licenseService := license.NewLicenseService(db)
	ruleService := regulation.NewRuleService(db)
	documentService := uploads.NewDocumentService(db, storage)

	evaluator := engine.NewEvaluator(engine.FromAppConfig(cfg.Compliance))
	checkService := service.NewCheckService(
		service.NewGormCheckStore(db),
		productService,
		licenseService,
		ruleService,
		evaluator,
	)

	// Set up HTTP routes
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())
	r.Use(middleware.CORS(cfg.CORS))
	r.Use(auth.Middleware(issuer))

	r.GET("/health", func(c *gin.Context) {
		if err := database.HealthCheck(db); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")
	auth.NewAuthRouter(authService).Register(api)
	catalog.NewProductRouter(productService).Register(api)
	license.NewLicenseRouter(licenseService).Register(api)
	router.NewComplianceRouter(checkService).Register(api)
	uploads.NewDocumentRouter(documentService).Register(api)

	// Set up graceful shutdown
	serverAddr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:    serverAddr,
		Handler: r,
	}

	// Channel to listen for interrupt signals
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	// Start server in a goroutine
	go func() {
		slog.Info("starting server", "port", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("failed to start server", "error", err)
			quit <- syscall.SIGTERM
		}
	}()

	// Wait for interrupt signal
	<-quit
	slog.Info("shutting down server...")

	// Create a context with timeout for graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Attempt graceful shutdown of HTTP server
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
	} else {
		slog.Info("server gracefully stopped")
	}

	slog.Info("server stopped")
}
