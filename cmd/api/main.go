package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-resume-backend/config"
	_ "go-resume-backend/docs" // Important for Swagger
	"go-resume-backend/internal/delivery/http/middleware"
	v1 "go-resume-backend/internal/delivery/http/v1"
	"go-resume-backend/internal/repository/postgres"
	"go-resume-backend/internal/usecase"
	"go-resume-backend/pkg/auth"
	"go-resume-backend/pkg/database"
	"go-resume-backend/pkg/logger"
	"go-resume-backend/pkg/redis"
	"go-resume-backend/pkg/validation"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// @title           Resume Review API
// @version         1.0
// @description     Resume management and recruiter review backend.
// @host            localhost:8080
// @BasePath        /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	defer logger.Sync()
	logger.Log.Infow("Starting resume backend", "port", cfg.Port)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(ctx, cfg.DBUrl)
	if err != nil {
		logger.Log.Errorw("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	if cfg.MigrateOnStart {
		db := database.OpenDB(dbPool)
		err := postgres.RunMigrations(ctx, db)
		db.Close()
		if err != nil {
			logger.Log.Errorw("Failed to apply migrations", "error", err)
			os.Exit(1)
		}
		logger.Log.Info("Migrations applied")
	}

	// 4. Setup Redis (optional)
	healthChecks := map[string]usecase.HealthCheck{"database": dbPool.Ping}
	var scripter goredis.Scripter
	redisClient, err := redis.New(ctx, redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword})
	switch {
	case err == nil:
		defer redisClient.Close()
		scripter = redisClient
		healthChecks["redis"] = func(ctx context.Context) error { return redisClient.Ping(ctx).Err() }
		logger.Log.Info("Redis connected, rate limiting is distributed")
	case errors.Is(err, redis.ErrNotConfigured):
		logger.Log.Info("Redis not configured, rate limiting is in-memory")
	default:
		logger.Log.Warnw("Redis unavailable, rate limiting is in-memory", "error", err)
	}

	// 5. Setup Repositories
	userRepo := postgres.NewUserRepository(dbPool)
	resumeRepo := postgres.NewResumeRepository(dbPool)
	logRepo := postgres.NewResumeLogRepository(dbPool)

	// 6. Setup UseCases
	validate := validation.New()
	authUC := usecase.NewAuthUsecase(userRepo)
	resumeUC := usecase.NewResumeUsecase(resumeRepo, validate)
	recruiterUC := usecase.NewRecruiterUsecase(resumeRepo, logRepo, validate)
	healthUC := usecase.NewHealthUsecase(healthChecks)

	// 7. Setup Auth
	var jwksProvider *auth.Provider
	if cfg.JWKSURL != "" {
		jwksProvider = auth.NewProvider(cfg.JWKSURL, &http.Client{Timeout: 10 * time.Second})
	}
	verifier := auth.NewVerifier(cfg.JWTSecret, jwksProvider)

	limiter := middleware.NewRateLimiter(
		middleware.DefaultRateLimitConfig(cfg.RateLimitGlobalThreshold, time.Duration(cfg.RateLimitWindowSeconds)*time.Second),
		scripter,
	)
	go limiter.Cleanup(ctx, 5*time.Minute)

	// 8. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:         authUC,
		ResumeUC:       resumeUC,
		RecruiterUC:    recruiterUC,
		HealthUC:       healthUC,
		Verifier:       verifier,
		RateLimiter:    limiter,
		AllowedOrigins: cfg.AllowedOrigins,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Errorw("Listen failed", "error", err)
			stop()
		}
	}()

	// Graceful Shutdown
	<-ctx.Done()
	logger.Log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
