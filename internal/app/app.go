package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/afftrack/internal/broker"
	"github.com/GlebRadaev/afftrack/internal/cache"
	"github.com/GlebRadaev/afftrack/internal/config"
	"github.com/GlebRadaev/afftrack/internal/handlers"
	"github.com/GlebRadaev/afftrack/internal/pg"
	"github.com/GlebRadaev/afftrack/internal/postback"
	"github.com/GlebRadaev/afftrack/internal/repo"
	"github.com/GlebRadaev/afftrack/internal/service"
	"github.com/GlebRadaev/afftrack/internal/service/attributionservice"
	"github.com/GlebRadaev/afftrack/internal/service/funnelservice"
	"github.com/GlebRadaev/afftrack/pkg/clients"
	"github.com/GlebRadaev/afftrack/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg        *config.Config
	api        *handlers.Handlers
	srv        *service.Services
	repo       *repo.Repositories
	dispatcher *postback.Dispatcher

	closers []func() error
	errCh   chan error
	wg      sync.WaitGroup
	ready   bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	if err := logger.Setup(cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.Migrate(ctx, pool); err != nil {
		zap.L().Error("schema migration failed", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)
	a.closers = append(a.closers, func() error {
		pool.Close()
		return nil
	})

	attributionCache, err := a.attributionCache(ctx, cfg)
	if err != nil {
		return fmt.Errorf("can't connect to redis: %w", err)
	}

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, cfg, attributionCache, a.publisher(cfg))
	a.dispatcher = postback.New(cfg, a.repo.EventRepo, a.repo.PostbackRepo, a.repo.AffiliateRepo,
		clients.NewHTTPClient(cfg.PostbackTimeout))
	a.api = handlers.New(a.srv, a.dispatcher)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startDispatcher(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully")
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		return nil, err
	}
	return dbpool, nil
}

// attributionCache returns nil when no redis url is configured.
func (a *Application) attributionCache(ctx context.Context, cfg *config.Config) (attributionservice.Cache, error) {
	if cfg.RedisURL == "" {
		zap.L().Info("redis url not set, attribution cache disabled")
		return nil, nil
	}
	client, err := cache.NewClient(ctx, cfg.RedisURL)
	if err != nil {
		return nil, err
	}
	a.closers = append(a.closers, client.Close)
	return cache.NewAttributionCache(client), nil
}

func (a *Application) publisher(cfg *config.Config) funnelservice.Publisher {
	if len(cfg.KafkaBrokers) == 0 {
		return broker.NopPublisher{}
	}
	p := broker.NewEventPublisher(cfg.KafkaBrokers, cfg.KafkaTopicPrefix)
	a.closers = append(a.closers, p.Close)
	zap.L().Info("publishing funnel events to kafka", zap.Strings("brokers", cfg.KafkaBrokers))
	return p
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startDispatcher(ctx context.Context) {
	a.dispatcher.Start(ctx)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()
		a.dispatcher.Close()
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			zap.L().Warn("close failed", zap.Error(err))
		}
	}

	return appErr
}
