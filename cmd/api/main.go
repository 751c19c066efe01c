package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"

	"github.com/baharkarakas/txn-intake/internal/api"
	"github.com/baharkarakas/txn-intake/internal/auth"
	"github.com/baharkarakas/txn-intake/internal/config"
	"github.com/baharkarakas/txn-intake/internal/db"
	"github.com/baharkarakas/txn-intake/internal/logger"
	"github.com/baharkarakas/txn-intake/internal/metrics"
	"github.com/baharkarakas/txn-intake/internal/middleware"
	"github.com/baharkarakas/txn-intake/internal/repository"
	"github.com/baharkarakas/txn-intake/internal/repository/memory"
	"github.com/baharkarakas/txn-intake/internal/repository/mongodb"
	"github.com/baharkarakas/txn-intake/internal/repository/postgres"
	"github.com/baharkarakas/txn-intake/internal/services"
)

func main() {
	cfg, err := config.Load(".")
	if err != nil {
		slog.Error("config", "err", err)
		os.Exit(1)
	}
	log := logger.New(cfg.Env)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg)
	if err != nil {
		log.Error("store", "driver", cfg.StoreDriver, "err", err)
		os.Exit(1)
	}
	defer closeStore()

	txnSvc := services.NewTransactionService(store, services.NewAssembler(services.Options{}))

	metrics.Init()
	r := api.NewRouter(api.RouterDeps{
		Secrets:    auth.NewSecrets(cfg.SecretTokenID, cfg.SecretUserID, cfg.SecretPasswordID),
		TxnSvc:     txnSvc,
		Limiter:    newLimiter(cfg),
		Registerer: prometheus.DefaultRegisterer,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "store", cfg.StoreDriver, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server", "err", err)
			stop()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Shutdown(shutdownCtx)
}

func openStore(ctx context.Context, cfg config.Config) (repository.Transactions, func(), error) {
	switch cfg.StoreDriver {
	case "postgres":
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, err
		}
		if cfg.Migrate {
			if err := db.RunMigrations(ctx, pool); err != nil {
				pool.Close()
				return nil, nil, err
			}
		}
		return postgres.NewRepositories(pool).Transactions, pool.Close, nil
	case "mongo":
		client, err := db.NewMongo(ctx, cfg.MongoURI)
		if err != nil {
			return nil, nil, err
		}
		disconnect := func() { _ = client.Disconnect(context.Background()) }
		coll, err := db.TransactionCollection(ctx, client, cfg.MongoDatabase, cfg.StoreCollection)
		if err != nil {
			disconnect()
			return nil, nil, err
		}
		return mongodb.NewTransactions(coll), disconnect, nil
	default:
		slog.Warn("using in-memory store; documents are lost on restart")
		return memory.NewTransactions(), func() {}, nil
	}
}

// newLimiter prefers the shared Redis limiter when REDIS_URL is set.
func newLimiter(cfg config.Config) middleware.Limiter {
	if cfg.RateRPS <= 0 {
		return nil
	}
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err == nil {
			return middleware.NewRedisLimiter(redis.NewClient(opts), cfg.RedisPrefix, cfg.RateRPS, time.Second)
		}
		slog.Warn("invalid REDIS_URL; falling back to local rate limit", "err", err)
	}
	return middleware.NewTokenBucket(cfg.RateRPS)
}
