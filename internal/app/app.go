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
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"github.com/GlebRadaev/investledger/internal/config"
	"github.com/GlebRadaev/investledger/internal/delivery"
	"github.com/GlebRadaev/investledger/internal/handlers"
	"github.com/GlebRadaev/investledger/internal/pg"
	"github.com/GlebRadaev/investledger/internal/repo"
	"github.com/GlebRadaev/investledger/internal/service"
	"github.com/GlebRadaev/investledger/internal/service/settingsservice"
	"github.com/GlebRadaev/investledger/pkg/auth"
	"github.com/GlebRadaev/investledger/pkg/cache"
	"github.com/GlebRadaev/investledger/pkg/logger"
	"github.com/GlebRadaev/investledger/pkg/mailer"
	"github.com/GlebRadaev/investledger/pkg/push"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg  *config.Config
	api  *handlers.Handlers
	srv  *service.Services
	repo *repo.Repositories

	workerPool *delivery.WorkerPool
	closers    []func()

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	a.closers = append(a.closers, pool.Close)
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	settingsCache := a.settingsCache(ctx, cfg)

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)

	a.workerPool = delivery.NewWorkerPool(cfg.DeliveryWorkers, cfg.DeliveryQueueSize)
	a.closers = append(a.closers, a.workerPool.Close)
	dispatcher := delivery.New(
		a.repo.UserRepo,
		emailSender(cfg),
		pushSender(ctx, cfg),
		a.workerPool,
		delivery.NewMetrics(registry),
		delivery.Options{EmailMaxRetries: cfg.EmailMaxRetries},
	)

	jwtService := auth.NewJWTService(cfg.JWTSecret)
	a.srv = service.New(a.repo, txManager, jwtService, settingsCache, dispatcher, service.Options{
		TokenTTL:         cfg.TokenTTL,
		SettingsCacheTTL: cfg.SettingsCacheTTL,
		BcryptCost:       cfg.BcryptCost,
	})
	a.api = handlers.New(a.srv, jwtService, registry, cfg.CORSOrigins)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

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

// settingsCache returns nil when Redis is off or unreachable; settings are then read from Postgres.
func (a *Application) settingsCache(ctx context.Context, cfg *config.Config) settingsservice.Cache {
	if !cfg.CacheEnabled() {
		zap.L().Info("redis address not set, settings cache disabled")
		return nil
	}
	rdb, err := cache.Connect(ctx, cache.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		zap.L().Warn("redis unavailable, settings cache disabled", zap.Error(err))
		return nil
	}
	a.closers = append(a.closers, func() { _ = rdb.Close() })
	return cache.NewJSONCache(rdb)
}

func emailSender(cfg *config.Config) delivery.EmailSender {
	if !cfg.EmailEnabled() {
		zap.L().Info("smtp host not set, email delivery disabled")
		return nil
	}
	return mailer.New(mailer.Config{
		Host:     cfg.SMTPHost,
		Port:     cfg.SMTPPort,
		Username: cfg.SMTPUsername,
		Password: cfg.SMTPPassword,
		From:     cfg.SMTPFrom,
	})
}

func pushSender(ctx context.Context, cfg *config.Config) delivery.PushSender {
	if !cfg.PushEnabled() {
		zap.L().Info("fcm credentials not set, push delivery disabled")
		return nil
	}
	sender, err := push.New(ctx, cfg.FCMCredentialsFile)
	if err != nil {
		zap.L().Warn("push delivery disabled", zap.Error(err))
		return nil
	}
	return sender
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

	a.close()

	return appErr
}

// close releases resources in reverse order of acquisition.
func (a *Application) close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}
