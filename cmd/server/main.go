package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/vytor/chessdash/internal/api"
	"github.com/vytor/chessdash/internal/assets"
	"github.com/vytor/chessdash/internal/config"
	"github.com/vytor/chessdash/internal/dataset"
	"github.com/vytor/chessdash/internal/db"
	"github.com/vytor/chessdash/internal/eco"
	"github.com/vytor/chessdash/internal/logger"
	"github.com/vytor/chessdash/internal/metrics"
	"github.com/vytor/chessdash/internal/prediction"
	"github.com/vytor/chessdash/internal/repository/sqlite"
	"github.com/vytor/chessdash/internal/services"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("Chess Dashboard Starting")
	log.Info("===========================================")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("openings_csv=%s", cfg.OpeningsCSV)
	log.Debug("model_path=%s", cfg.ModelPath)
	log.Debug("assets_dir=%s", cfg.AssetsDir)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("metrics_enabled=%t", cfg.MetricsEnabled)
	log.Debug("ws_enabled=%t", cfg.WSEnabled)

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Load the opening table; the catalog is rebuilt from it on every start.
	openings, err := dataset.LoadOpenings(cfg.OpeningsCSV)
	if err != nil {
		log.WithError(err).Error("failed to load openings from %s", cfg.OpeningsCSV)
		os.Exit(1)
	}
	openingRepo := sqlite.NewOpeningRepository(database.DB)
	if err := openingRepo.ReplaceAll(context.Background(), openings); err != nil {
		log.WithError(err).Error("failed to import openings")
		os.Exit(1)
	}
	log.Info("loaded %d openings from %s", len(openings), cfg.OpeningsCSV)

	model, err := prediction.LoadModel(cfg.ModelPath)
	if err != nil {
		log.WithError(err).Error("failed to load outcome model from %s", cfg.ModelPath)
		os.Exit(1)
	}
	log.Info("outcome model loaded from %s", cfg.ModelPath)

	log.Debug("loading templates")
	tmpl, err := api.LoadTemplates()
	if err != nil {
		log.Error("failed to load templates: %v", err)
		os.Exit(1)
	}

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
		m.SetOpeningsLoaded(len(openings))
	}

	book := eco.NewBook()
	log.Debug("ECO book indexed: %d titles", book.Len())
	store := assets.New(os.DirFS(cfg.AssetsDir), "/assets")

	srv := &api.Server{
		OpeningService:    services.NewOpeningService(openingRepo, book, store, m),
		PredictionService: services.NewPredictionService(model, m),
		PieceService:      services.NewPieceService(store),
		Assets:            store.Handler(),
		DB:                database,
		Metrics:           m,
		Templates:         tmpl,
		WSEnabled:         cfg.WSEnabled,
	}

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	log.Info("===========================================")
	log.Info("Chess Dashboard Stopped")
	log.Info("===========================================")
}
