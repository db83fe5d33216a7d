package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/vasanthsingh/QuickPass/config"
	"github.com/vasanthsingh/QuickPass/internal/api/handler"
	"github.com/vasanthsingh/QuickPass/internal/api/router"
	"github.com/vasanthsingh/QuickPass/internal/repository"
	"github.com/vasanthsingh/QuickPass/internal/service"
	"github.com/vasanthsingh/QuickPass/pkg/database"
	"github.com/vasanthsingh/QuickPass/pkg/jwt"
	applogger "github.com/vasanthsingh/QuickPass/pkg/logger"
	"github.com/vasanthsingh/QuickPass/pkg/redis"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "loading config: %v\n", err)
		os.Exit(1)
	}

	// 2. Build the logger
	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "building logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("quickpass starting",
		zap.Int("port", cfg.Server.Port),
		zap.String("log_level", cfg.Log.Level),
	)

	// 3. Connect the database
	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}

	// 3.1 Run schema migrations
	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("unwrapping sql.DB failed", zap.Error(err))
	}
	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("database migration failed", zap.Error(err))
	}

	// 4. Connect Redis (optional: a failure disables the token blacklist
	// and login rate limiting, it never blocks startup)
	var rdb *redis.Client
	if cfg.Redis.Addr != "" {
		rdb, err = redis.NewClient(&cfg.Redis, logger)
		if err != nil {
			logger.Warn("redis connection failed, logout blacklist and rate limiting disabled", zap.Error(err))
			rdb = nil
		}
	} else {
		logger.Info("redis not configured, logout blacklist and rate limiting disabled")
	}

	// 5. Build the token manager
	secret, usingFallback := cfg.EffectiveJWTSecret()
	if usingFallback {
		logger.Warn("AUTH IS USING THE BUILT-IN DEVELOPMENT SECRET; set OUTPASS_AUTH_JWT_SECRET before deploying")
	}
	jwtMgr := jwt.NewManager(secret, cfg.Auth.TokenTTL)

	// 6. Dependency injection: repository → service → handler
	repo := repository.NewRepository(db)
	svc := service.NewService(repo, jwtMgr, rdb, logger)
	h := handler.NewHandler(svc)

	// 7. Build the router
	engine := router.Setup(cfg, h, jwtMgr, rdb, logger)

	// 8. Start the HTTP server with graceful shutdown
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("http server listening", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("http server failed", zap.Error(err))
		}
	}()

	// 9. Wait for a shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit

	logger.Info("shutdown signal received", zap.String("signal", sig.String()))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}

	if closeDB, _ := db.DB(); closeDB != nil {
		closeDB.Close()
	}
	if rdb != nil {
		rdb.Close()
	}

	logger.Info("server stopped")
}
