package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/complaintdesk/portal/internal/api"
	"github.com/complaintdesk/portal/internal/core/ports"
	"github.com/complaintdesk/portal/internal/infrastructure/config"
	mongodb "github.com/complaintdesk/portal/internal/infrastructure/db/mongo"
	redisdb "github.com/complaintdesk/portal/internal/infrastructure/db/redis"
	"github.com/complaintdesk/portal/internal/infrastructure/session"
	"github.com/complaintdesk/portal/pkg/logger"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load(ctx)
	if err != nil {
		panic(err)
	}

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	client, db, err := mongodb.Connect(ctx, mongodb.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connection failed")
	}
	defer func() {
		_ = client.Disconnect(context.Background())
	}()

	userRepo := mongodb.NewUserRepository(db)
	if err := userRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("user index creation failed")
	}
	if err := mongodb.NewAssignmentRepository(db).EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("assignment index creation failed")
	}

	// Sessions live in Redis when an address is configured, otherwise in
	// process memory (single node only).
	var (
		sessions ports.SessionStore
		rdb      *redis.Client
	)
	if cfg.Redis.Addr != "" {
		rdb, err = redisdb.Connect(ctx, redisdb.Config{Addr: cfg.Redis.Addr, DB: cfg.Redis.DB})
		if err != nil {
			log.Fatal().Err(err).Msg("redis connection failed")
		}
		defer func() {
			_ = rdb.Close()
		}()
		sessions = redisdb.NewSessionStore(rdb)
	} else {
		log.Warn().Msg("REDIS_ADDR not set, using in-memory sessions")
		sessions = session.NewMemoryStore()
	}

	e := api.NewRouter(db, rdb, sessions, cfg, log)

	go func() {
		log.Info().Str("port", cfg.Port).Msg("server starting")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
