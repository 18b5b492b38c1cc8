package main

import (
	"context"

	"go.uber.org/zap"

	"github.com/paddynes2/stride-process-app/internal/models"
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

	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}

	// pgcrypto provides gen_random_uuid() on Postgres < 13.
	if err := db.Exec(`CREATE EXTENSION IF NOT EXISTS pgcrypto`).Error; err != nil {
		log.Warn("create pgcrypto extension failed", zap.Error(err))
	}

	err = db.AutoMigrate(
		&models.Workspace{},
		&models.Tab{},
		&models.Section{},
		&models.Step{},
		&models.Connection{},
	)
	if err != nil {
		log.Fatal("migration failed", zap.Error(err))
	}

	log.Info("migrations applied")
}
