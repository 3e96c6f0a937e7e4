// Package server initializes and runs the todokeeper server: it opens the
// configured ledger backend, builds the todo service and serves it over gRPC
// next to an HTTP metrics endpoint, with graceful shutdown on signals.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"github.com/dmitrijs2005/todokeeper/internal/address"
	"github.com/dmitrijs2005/todokeeper/internal/dbx"
	"github.com/dmitrijs2005/todokeeper/internal/identity"
	"github.com/dmitrijs2005/todokeeper/internal/ledger"
	"github.com/dmitrijs2005/todokeeper/internal/ledger/levelstore"
	"github.com/dmitrijs2005/todokeeper/internal/ledger/memstore"
	"github.com/dmitrijs2005/todokeeper/internal/ledger/redisstore"
	"github.com/dmitrijs2005/todokeeper/internal/ledger/sqlstore"
	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/dmitrijs2005/todokeeper/internal/server/config"
	"github.com/dmitrijs2005/todokeeper/internal/server/metrics"
	"github.com/dmitrijs2005/todokeeper/internal/todo"

	gs "github.com/dmitrijs2005/todokeeper/internal/server/grpc"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config   *config.Config
	logger   logging.Logger
	store    ledger.Store
	todos    *todo.Service
	verifier *identity.TokenVerifier
	registry *prometheus.Registry
	metrics  *metrics.Metrics
}

// NewApp wires the application from c. The caller owns the returned App
// and must call Run, which closes the store on exit.
func NewApp(ctx context.Context, c *config.Config) (*App, error) {
	logger, err := logging.New(os.Stdout, c.LogFormat, c.LogLevel)
	if err != nil {
		return nil, err
	}

	store, err := openStore(ctx, c)
	if err != nil {
		return nil, fmt.Errorf("storage init error: %w", err)
	}

	deriver, err := address.NewDeriver(c.DeriverCacheSize)
	if err != nil {
		_ = store.Close()
		return nil, err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	return &App{
		config:   c,
		logger:   logger,
		store:    store,
		todos:    todo.NewService(store, deriver, logger),
		verifier: identity.NewTokenVerifier(c.TokenMaxAge),
		registry: reg,
		metrics:  metrics.New(reg),
	}, nil
}

func openStore(ctx context.Context, c *config.Config) (ledger.Store, error) {
	switch c.Storage {
	case config.StorageMemory:
		return memstore.New(), nil
	case config.StoragePostgres:
		return sqlstore.Open(ctx, dbx.Postgres, c.DatabaseDSN)
	case config.StorageSQLite:
		return sqlstore.Open(ctx, dbx.SQLite, c.DatabaseDSN)
	case config.StorageLevelDB:
		return levelstore.Open(c.LevelDBPath)
	case config.StorageRedis:
		return redisstore.Open(ctx, c.RedisURL, redisstore.WithPrefix(c.RedisPrefix))
	default:
		return nil, fmt.Errorf("unknown storage %q", c.Storage)
	}
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	// Channel to catch OS signals.
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startGRPCServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := gs.NewGRPCServer(app.config.EndpointAddrGRPC, app.logger, app.todos, app.verifier, app.metrics)
	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) startMetricsServer(ctx context.Context, cancelFunc context.CancelFunc) {
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler(app.registry))
	srv := &http.Server{Addr: app.config.MetricsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	app.logger.Info(ctx, "Starting metrics server", "address", app.config.MetricsAddr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

// Run serves until ctx is canceled, a signal arrives or a server fails.
func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...", "storage", app.config.Storage)

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startGRPCServer(ctx, cancelFunc)
	}()

	if app.config.MetricsAddr != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			app.startMetricsServer(ctx, cancelFunc)
		}()
	}

	wg.Wait()

	if err := app.store.Close(); err != nil {
		app.logger.Error(context.Background(), "store close", "error", err)
	}
	app.logger.Info(context.Background(), "Stopped")
}
