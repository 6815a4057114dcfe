package main

import (
	"context"
	"log"
	"os"

	"go-resume-backend/config"
	"go-resume-backend/internal/repository/postgres"
	"go-resume-backend/pkg/database"
	"go-resume-backend/pkg/logger"
)

// Applies the embedded schema migrations and exits
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	logger.Init(cfg.LogLevel)
	defer logger.Sync()

	ctx := context.Background()
	pool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		logger.Log.Errorw("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	db := database.OpenDB(pool)
	defer db.Close()

	if err := postgres.RunMigrations(ctx, db); err != nil {
		logger.Log.Errorw("Migration failed", "error", err)
		os.Exit(1)
	}
	logger.Log.Info("Migrations applied")
}
