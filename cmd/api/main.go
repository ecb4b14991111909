package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/memberhub/members-api/internal/api"
	"github.com/memberhub/members-api/internal/auth"
	"github.com/memberhub/members-api/internal/core/service"
	"github.com/memberhub/members-api/internal/infrastructure/config"
	"github.com/memberhub/members-api/internal/infrastructure/db/mongo"
	"github.com/memberhub/members-api/internal/infrastructure/db/redis"
	"github.com/memberhub/members-api/internal/infrastructure/queue"
	"github.com/memberhub/members-api/pkg/logger"
)

func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: !cfg.IsProduction(),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Stores ---
	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() { _ = mongoClient.Disconnect(context.Background()) }()

	userRepo, err := mongo.NewUserRepository(ctx, db)
	if err != nil {
		log.Fatal().Err(err).Msg("user repository init failed")
	}

	// --- Identity strategy (one per deployment) ---
	var strategy auth.Strategy
	var rdb *goredis.Client

	switch cfg.Auth.Strategy {
	case auth.StrategySession:
		rdb, err = redis.Connect(ctx, redis.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() { _ = rdb.Close() }()
		strategy = auth.NewSessionStrategy(redis.NewSessionStore(rdb), userRepo, cfg.Auth.SessionTTL, cfg.IsProduction())
	case auth.StrategyToken:
		codec := auth.NewTokenCodec(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
		strategy = auth.NewTokenStrategy(codec, cfg.IsProduction())
	default:
		log.Fatal().Str("strategy", cfg.Auth.Strategy).Msg("unknown auth strategy")
	}

	// --- Services ---
	hasher := auth.NewPasswordHasher(cfg.Auth.BcryptCost)
	authService := service.NewAuthService(userRepo, hasher)
	adminService := service.NewAdminService(userRepo)

	// --- Audit pipeline ---
	auditService := service.NewAuditService(mongo.NewAuditRepository(db), log)
	dispatcher := queue.NewDispatcher(0, auditService, log)
	dispatcher.Start(ctx)

	// --- HTTP ---
	e := api.NewRouter(api.Deps{
		Strategy: strategy,
		Auth:     authService,
		Admin:    adminService,
		Audit:    dispatcher,
		Mongo:    db,
		Redis:    rdb,
		Log:      log,
	})

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Port)
		log.Info().
			Str("addr", addr).
			Str("strategy", strategy.Name()).
			Str("env", cfg.Env).
			Msg("server starting")
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	waitForShutdown(log)

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}

func waitForShutdown(log zerolog.Logger) {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	sig := <-sigCh
	log.Info().Str("signal", sig.String()).Msg("shutting down")
}
