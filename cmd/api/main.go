package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/paddynes2/stride-process-app/internal/api"
	"github.com/paddynes2/stride-process-app/internal/api/handlers"
	"github.com/paddynes2/stride-process-app/internal/repository"
	"github.com/paddynes2/stride-process-app/internal/services"
	"github.com/paddynes2/stride-process-app/pkg/config"
	"github.com/paddynes2/stride-process-app/pkg/database"
	"github.com/paddynes2/stride-process-app/pkg/logger"
)

func main() {
	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("Starting Stride process-mapping engine",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
	)

	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	log.Info("Database connected successfully")

	validate := validator.New(validator.WithRequiredStructEnabled())

	workspaceRepo := repository.NewWorkspaceRepository(db)
	tabRepo := repository.NewTabRepository(db)
	sectionRepo := repository.NewSectionRepository(db)
	stepRepo := repository.NewStepRepository(db)
	connectionRepo := repository.NewConnectionRepository(db)

	router := api.NewRouter(api.Dependencies{
		WorkspacesHandler:  handlers.NewWorkspacesHandler(workspaceRepo, validate),
		TabsHandler:        handlers.NewTabsHandler(tabRepo, validate),
		SectionsHandler:    handlers.NewSectionsHandler(sectionRepo, validate),
		StepsHandler:       handlers.NewStepsHandler(stepRepo, validate),
		ConnectionsHandler: handlers.NewConnectionsHandler(connectionRepo, validate),
		SummaryHandler:     handlers.NewSummaryHandler(services.NewSummaryService(stepRepo)),
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}
}
