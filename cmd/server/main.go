package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/tradejournal/Trade-Journal-Backend/internal/analytics"
	"github.com/tradejournal/Trade-Journal-Backend/internal/api"
	"github.com/tradejournal/Trade-Journal-Backend/internal/brokerage"
	"github.com/tradejournal/Trade-Journal-Backend/internal/config"
	"github.com/tradejournal/Trade-Journal-Backend/internal/database"
	"github.com/tradejournal/Trade-Journal-Backend/internal/repository"
	"github.com/tradejournal/Trade-Journal-Backend/internal/secure"
	"github.com/tradejournal/Trade-Journal-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection and apply migrations
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Notes encryption (optional, enabled when a key is configured)
	encryptor, err := secure.NewEncryptor(cfg.Notes.EncryptionKey)
	if err != nil {
		log.Fatalf("Failed to initialize notes encryption: %v", err)
	}

	// Computation core
	calculator := brokerage.NewCalculator(cfg.Brokerage)
	aggregator := analytics.NewAggregator(calculator)

	// Create repositories
	tradeRepo := repository.NewTradeRepository(db, encryptor)
	materializedRepo := repository.NewMaterializedRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	tradeService := service.NewTradeService(tradeRepo, calculator)
	analyticsService := service.NewAnalyticsService(tradeRepo, aggregator)
	snapshotService := service.NewSnapshotService(materializedRepo, analyticsService)

	// Schedule the monthly snapshot refresh
	scheduler := cron.New()
	if _, err := scheduler.AddFunc(cfg.Snapshot.RefreshSchedule, snapshotService.RefreshMonthlyPerformanceJob); err != nil {
		log.Fatalf("Failed to schedule snapshot refresh: %v", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Create router
	router := api.NewRouter(systemService, tradeService, analyticsService, snapshotService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
