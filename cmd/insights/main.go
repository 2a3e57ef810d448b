package main

import (
	"context"
	"database/sql"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	corecfg "github.com/aevon-lab/retail-insights/internal/core/config"
	"github.com/aevon-lab/retail-insights/internal/core/storage"
	"github.com/aevon-lab/retail-insights/internal/core/storage/memory"
	"github.com/aevon-lab/retail-insights/internal/core/storage/postgres"
	"github.com/aevon-lab/retail-insights/internal/dashboard"
	"github.com/aevon-lab/retail-insights/internal/migrations"
	"github.com/aevon-lab/retail-insights/internal/report"
	"github.com/aevon-lab/retail-insights/internal/server"
)

func main() {
	configPath := flag.String("config", "insights.yaml", "Path to configuration file")
	flag.Parse()

	// 0. Initialize Logger
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, nil)))

	// 1. Load Configuration
	cfg, err := corecfg.Load(*configPath)
	if err != nil {
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	slog.SetDefault(newLogger(cfg.Logging))
	slog.Info("Loaded config",
		"database", cfg.Database.Type,
		"timezone", cfg.Report.Timezone,
		"request_timeout", cfg.Server.RequestTimeout)

	loc, err := cfg.Report.Location()
	if err != nil {
		slog.Error("Invalid report timezone", "timezone", cfg.Report.Timezone, "error", err)
		os.Exit(1)
	}

	// 2. Initialize Storage
	source, db, closeSource, err := openSource(cfg.Database)
	if err != nil {
		slog.Error("Failed to initialize data source", "type", cfg.Database.Type, "error", err)
		os.Exit(1)
	}
	defer closeSource()

	// 3. Initialize Services
	reportSvc := report.NewService(source, cfg.Report.DefaultPageSize, loc)
	dashboardSvc := dashboard.NewService(source, cfg.Dashboard.FeedSize, cfg.Dashboard.TopN, loc)

	// 4. Initialize Server. A nil *sql.DB must not become a non-nil interface.
	var health server.HealthChecker
	if db != nil {
		health = db
	}
	srv := server.New(cfg.Server.Addr(), health, cfg.Server.Mode, cfg.Server.RequestTimeout)
	reportSvc.RegisterRoutes(srv.Engine)
	dashboardSvc.RegisterRoutes(srv.Engine)

	// 5. Start Services
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Signal handler -> triggers the shutdown sequence below.
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit
		slog.Info("Signal received, shutting down...")
		cancel()
	}()

	// HTTP server blocks until ctx is cancelled.
	if err := srv.Run(ctx); err != nil {
		slog.Error("Server stopped with error", "error", err)
	}

	slog.Info("Shutdown complete")
}

func newLogger(cfg corecfg.LoggingConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: cfg.SlogLevel()}
	if cfg.Format == "json" {
		return slog.New(slog.NewJSONHandler(os.Stdout, opts))
	}
	return slog.New(slog.NewTextHandler(os.Stdout, opts))
}

// openSource builds the configured data source. db is nil in snapshot mode.
func openSource(cfg corecfg.DatabaseConfig) (storage.DataSource, *sql.DB, func(), error) {
	if cfg.Type == corecfg.DatabaseSnapshot {
		snap, err := memory.LoadSnapshot(cfg.SnapshotPath)
		if err != nil {
			return nil, nil, nil, err
		}
		return memory.NewSource(snap), nil, func() {}, nil
	}

	db, err := postgres.Open(cfg.DSN, cfg.MaxOpenConns, cfg.MaxIdleConns)
	if err != nil {
		return nil, nil, nil, err
	}

	// Migrations run before the adapter validates the schema and prepares statements.
	if err := migrations.RunMigrations(db, cfg.AutoMigrate); err != nil {
		db.Close()
		return nil, nil, nil, err
	}

	adapter, err := postgres.NewAdapter(db)
	if err != nil {
		db.Close()
		return nil, nil, nil, err
	}

	closeFn := func() {
		if err := adapter.Close(); err != nil {
			slog.Error("[Postgres] Failed to close adapter", "error", err)
		}
	}
	return adapter, db, closeFn, nil
}
