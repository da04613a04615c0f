package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/baharkarakas/minivenmo/internal/api"
	"github.com/baharkarakas/minivenmo/internal/api/handlers"
	"github.com/baharkarakas/minivenmo/internal/config"
	"github.com/baharkarakas/minivenmo/internal/db"
	"github.com/baharkarakas/minivenmo/internal/events"
	"github.com/baharkarakas/minivenmo/internal/logger"
	"github.com/baharkarakas/minivenmo/internal/metrics"
	"github.com/baharkarakas/minivenmo/internal/repository"
	"github.com/baharkarakas/minivenmo/internal/repository/postgres"
	"github.com/baharkarakas/minivenmo/internal/repository/sqlite"
	"github.com/baharkarakas/minivenmo/internal/services"
	"github.com/baharkarakas/minivenmo/internal/tracing"
	"github.com/baharkarakas/minivenmo/internal/worker"
)

func main() {
	if err := run(); err != nil {
		slog.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Env, cfg.LogLevel)
	slog.SetDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, cfg.ServiceName, cfg.OTLPEndpoint)
	if err != nil {
		return err
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(sctx); err != nil {
			log.Warn("tracing shutdown", "err", err)
		}
	}()

	store, err := openStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer store.Close()

	var pub events.Publisher
	if cfg.RabbitMQURL != "" {
		rp, err := events.NewRabbitMQPublisher(cfg.RabbitMQURL, cfg.RabbitMQExchange)
		if err != nil {
			return err
		}
		defer rp.Close()
		pub = rp
		log.Info("activity events enabled", "exchange", cfg.RabbitMQExchange)
	}

	// stopped before the publisher closes so queued events still go out
	wp := worker.NewPool(cfg.Workers, 256)
	defer wp.Stop()

	feedSvc := services.NewFeedService(store)
	users := &handlers.UsersHandler{
		UserSvc:            services.NewUserService(store),
		WalletSvc:          services.NewWalletService(store),
		PaymentSvc:         services.NewPaymentService(store, pub, wp),
		FriendSvc:          services.NewFriendService(store, pub, wp),
		FeedSvc:            feedSvc,
		DefaultCreditLimit: cfg.DefaultCreditLimit,
	}

	metrics.Init()
	r := api.NewRouter(api.RouterDeps{
		RateRPS: cfg.RateRPS,
		Users:   users,
		Feed:    &handlers.FeedHandler{FeedSvc: feedSvc},
		Ping:    store.Ping,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("server starting", "port", cfg.HTTPPort, "env", cfg.Env)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return err
	}

	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// openStore picks the embedded sqlite store for sqlite:/file: URLs and postgres otherwise.
func openStore(ctx context.Context, cfg config.Config) (repository.Store, error) {
	if path, ok := cfg.SQLitePath(); ok {
		slog.Info("using sqlite store", "path", path)
		return sqlite.New(path)
	}

	pool, err := db.NewPool(ctx, cfg.DatabaseURL, 0)
	if err != nil {
		return nil, err
	}
	if cfg.Migrate {
		if err := db.RunMigrations(ctx, pool); err != nil {
			pool.Close()
			return nil, err
		}
	}
	slog.Info("using postgres store")
	return postgres.New(pool), nil
}
