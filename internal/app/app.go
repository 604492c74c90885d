// Package app initializes and orchestrates the main components of the readmekit
// service. It wires together the configuration, storage, generator, and server.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/readmekit/readmekit/internal/config"
	"github.com/readmekit/readmekit/internal/core"
	"github.com/readmekit/readmekit/internal/db"
	"github.com/readmekit/readmekit/internal/generate"
	"github.com/readmekit/readmekit/internal/jobs"
	"github.com/readmekit/readmekit/internal/llm"
	"github.com/readmekit/readmekit/internal/prompt"
	"github.com/readmekit/readmekit/internal/server"
	"github.com/readmekit/readmekit/internal/storage"
)

// App holds the main application components.
type App struct {
	ctx        context.Context
	cfg        *config.Config
	server     *server.Server
	logger     *slog.Logger
	dispatcher core.JobDispatcher
	dbConn     *db.DB
}

// NewApp sets up the application with all its dependencies.
func NewApp(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	logger.Info("initializing readmekit service",
		"model", cfg.Model,
		"base_url", cfg.BaseURL,
		"max_workers", cfg.MaxWorkers)

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	store := storage.NewStore(dbConn.DB)

	builder, err := prompt.NewBuilder()
	if err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("failed to initialize prompt builder: %w", err)
	}

	// Without an API key the generator runs in fallback-only mode and every
	// document comes from the local template renderer.
	var completer core.Completer
	if cfg.APIKey != "" {
		completer = llm.NewClient(llm.Config{
			APIKey:   cfg.APIKey,
			BaseURL:  cfg.BaseURL,
			Referer:  cfg.Referer,
			AppTitle: cfg.AppTitle,
		}, logger)
	} else {
		logger.Warn("no API key configured, documents will be rendered locally")
	}

	generator := generate.NewGenerator(builder, completer, logger)
	generateJob := jobs.NewGenerateJob(generator, store, logger)
	dispatcher := jobs.NewDispatcher(generateJob, cfg.MaxWorkers, logger)
	httpServer := server.NewServer(ctx, cfg, dispatcher, store, logger)

	logger.Info("readmekit service initialized successfully")
	return &App{
		ctx:        ctx,
		cfg:        cfg,
		server:     httpServer,
		logger:     logger,
		dispatcher: dispatcher,
		dbConn:     dbConn,
	}, nil
}

// Start runs the HTTP server.
func (a *App) Start() error {
	a.logger.Info("starting readmekit service",
		"server_port", a.cfg.ServerPort,
		"max_workers", a.cfg.MaxWorkers)

	err := a.server.Start()
	if err != nil {
		a.logger.Error("failed to start HTTP server", "error", err)
		return err
	}

	return nil
}

// Stop shuts down the application cleanly.
func (a *App) Stop() error {
	a.logger.Info("shutting down readmekit services")

	// Stop the HTTP server first to prevent new incoming requests.
	serverErr := a.server.Stop()
	if serverErr != nil {
		a.logger.Error("error during HTTP server shutdown", "error", serverErr)
		// Continue to stop other components even if the server failed.
	}

	// Stop the job dispatcher, allowing in-flight jobs to finish.
	a.dispatcher.Stop()

	a.logger.Info("closing database connection")
	if err := a.dbConn.Close(); err != nil {
		a.logger.Error("error closing database", "error", err)
	}

	if serverErr != nil {
		a.logger.Error("readmekit stopped with errors", "error", serverErr)
		return serverErr
	}

	a.logger.Info("readmekit stopped successfully")
	return nil
}
