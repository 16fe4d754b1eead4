// @title        Shop API
// @version      1.0
// @description  E-commerce backend: accounts, catalog and per-user carts.
// @BasePath     /
// @securityDefinitions.apikey  CookieAuth
// @in                          cookie
// @name                        token
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/99minutos/shop-api/internal/api"
	"github.com/99minutos/shop-api/internal/api/handler"
	"github.com/99minutos/shop-api/internal/core/ports"
	"github.com/99minutos/shop-api/internal/core/service"
	"github.com/99minutos/shop-api/internal/infrastructure/db/mongo"
	"github.com/99minutos/shop-api/internal/infrastructure/db/redis"
	"github.com/99minutos/shop-api/internal/pkg/config"
	"github.com/99minutos/shop-api/internal/security"
	"github.com/99minutos/shop-api/pkg/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	code := run(ctx)
	stop()
	os.Exit(code)
}

func run(ctx context.Context) int {
	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Init(logger.Options{Service: "shop-api"}).Error().Err(err).Msg("load config")
		return 1
	}

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.LogPretty,
		Service: "shop-api",
	})

	mongoClient, db, err := mongo.Connect(ctx, mongo.Config{URI: cfg.Mongo.URI, Database: cfg.Mongo.Database})
	if err != nil {
		log.Error().Err(err).Msg("connect mongo")
		return 1
	}
	defer func() {
		dctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := mongoClient.Disconnect(dctx); err != nil {
			log.Warn().Err(err).Msg("disconnect mongo")
		}
	}()

	if err := mongo.EnsureIndexes(ctx, db); err != nil {
		log.Error().Err(err).Msg("ensure indexes")
		return 1
	}

	readiness := map[string]handler.DependencyCheck{
		"mongodb": func(ctx context.Context) error { return mongo.Ping(ctx, db) },
		"redis":   nil,
	}

	// Redis is optional: without it logout cannot revoke tokens and categories are not cached.
	var (
		revocations   ports.RevocationStore
		categoryCache ports.CategoryCache
	)
	if cfg.Redis.Enabled {
		rdb, err := redis.Connect(ctx, redis.Config{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			log.Error().Err(err).Msg("connect redis")
			return 1
		}
		defer closeRedis(rdb, log)

		revocations = redis.NewRevocationStore(rdb)
		categoryCache = redis.NewCategoryCache(rdb, cfg.Redis.CategoryCacheTTL)
		readiness["redis"] = func(ctx context.Context) error { return redis.Ping(ctx, rdb) }
	} else {
		log.Warn().Msg("redis disabled: session revocation and category cache are off")
	}

	tokens := security.NewJWTManager(cfg.Session.JWTSecret, cfg.Session.TTL)

	authService := service.NewAuthService(
		mongo.NewUserRepository(db),
		tokens,
		revocations,
		log.With().Str("component", "auth").Logger(),
	)
	catalogService := service.NewCatalogService(
		mongo.NewProductRepository(db),
		mongo.NewCategoryRepository(db),
		categoryCache,
		log.With().Str("component", "catalog").Logger(),
	)
	cartService := service.NewCartService(
		mongo.NewCartRepository(db),
		mongo.NewProductRepository(db),
		log.With().Str("component", "cart").Logger(),
	)

	e := api.NewRouter(api.Deps{
		Auth:        authService,
		Catalog:     catalogService,
		Cart:        cartService,
		Tokens:      tokens,
		Revocations: revocations,
		Readiness:   readiness,
		Cookie: handler.CookieConfig{
			TTL:    tokens.TTL(),
			Secure: cfg.Session.CookieSecure || cfg.IsProduction(),
		},
		CORSOrigin: cfg.Session.CORSOrigin,
		Log:        log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           e,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info().Str("addr", srv.Addr).Str("env", cfg.Env).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	case err := <-errCh:
		log.Error().Err(err).Msg("server crashed")
		return 1
	}

	sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(sctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
		_ = srv.Close()
	}

	log.Info().Msg("shutdown complete")
	return 0
}

func closeRedis(rdb *goredis.Client, log zerolog.Logger) {
	if err := rdb.Close(); err != nil {
		log.Warn().Err(err).Msg("close redis")
	}
}
