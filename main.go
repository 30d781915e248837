package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/mollybeach/honeyvaiult/config"
	"github.com/mollybeach/honeyvaiult/docs"
	"github.com/mollybeach/honeyvaiult/internal/cache"
	"github.com/mollybeach/honeyvaiult/internal/chain"
	"github.com/mollybeach/honeyvaiult/internal/database"
	"github.com/mollybeach/honeyvaiult/internal/events"
	"github.com/mollybeach/honeyvaiult/internal/handlers"
	"github.com/mollybeach/honeyvaiult/internal/middleware"
	"github.com/mollybeach/honeyvaiult/internal/repository"
	"github.com/mollybeach/honeyvaiult/internal/services"
)

// @title Praxos Vault API
// @version 1.0
// @description Factory-deployed RWA vaults: weighted allocations over tokenized real-world assets with ERC-4626 style deposits.
// @BasePath /
func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	setupLogging(cfg)

	// Create context for initialization
	ctx := context.Background()

	// Initialize the ledger; committed events flow into the bus
	bus := events.NewBus()
	ledger, err := chain.New(cfg.FactoryOwner, bus)
	if err != nil {
		log.Fatalf("Failed to deploy factory: %v", err)
	}

	// Audit persistence is optional
	var auditSvc *services.AuditService
	if cfg.PGURL != "" {
		db, err := database.New(ctx, cfg.PGURL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := repository.EnsureSchema(ctx, db.Pool); err != nil {
			log.Fatalf("Failed to create schema: %v", err)
		}
		auditSvc = services.NewAuditService(ledger, repository.NewEventRepository(db.Pool), repository.NewVaultRepository(db.Pool))
		bus.Subscribe(auditSvc.Handle)
		log.Info("audit persistence enabled")
	} else {
		log.Warn("PG_URL not set, audit persistence disabled")
	}

	// Initialize caches
	memCache := cache.NewMemoryCache(cfg.SummaryCacheTTL)

	// Initialize services
	vaultSvc := services.NewVaultService(ledger, memCache, bus)
	tokenSvc := services.NewTokenService(ledger)
	recommendationSvc := services.NewRecommendationService()
	riskSvc := services.NewRiskService(ledger)

	if cfg.SeedDemo {
		seed, err := services.LoadSeedFile(cfg.SeedFile)
		if err != nil {
			log.Fatalf("Failed to load seed file: %v", err)
		}
		if _, err := services.NewSeeder(ledger, vaultSvc).Run(ctx, seed); err != nil {
			log.Fatalf("Failed to seed demo deployment: %v", err)
		}
	}
	if _, err := riskSvc.SimulateAll(ctx); err != nil {
		log.Fatalf("Failed to simulate asset risk: %v", err)
	}

	// Setup Gin router
	router := gin.New()
	router.Use(gin.Recovery(), middleware.RequestLogger(), middleware.ValidateCaller())

	(&handlers.Router{
		Vaults: handlers.NewVaultHandler(vaultSvc),
		Tokens: handlers.NewTokenHandler(tokenSvc),
		Assets: handlers.NewAssetHandler(tokenSvc, riskSvc),
		Users:  handlers.NewUserHandler(vaultSvc, recommendationSvc),
		Audit:  handlers.NewAuditHandler(auditSvc),
	}).Register(router)

	docs.SwaggerInfo.BasePath = "/"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Create HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.WithField("port", cfg.Port).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	// Give outstanding requests 5 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorf("Server forced to shutdown: %v", err)
	}

	// Drain queued events into the audit log before the pool closes
	bus.Close()
	log.Info("Server exited")
}

func setupLogging(cfg *config.Config) {
	if cfg.LogFormat == "json" {
		log.SetFormatter(&log.JSONFormatter{})
	} else {
		log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	}
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		log.WithField("log_level", cfg.LogLevel).Warn("unknown log level, using info")
		level = log.InfoLevel
	}
	log.SetLevel(level)
	if level < log.DebugLevel {
		gin.SetMode(gin.ReleaseMode)
	}
}
