package app

import (
	"context"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/avc-dev/referral-service/internal/config"
	"github.com/avc-dev/referral-service/internal/config/db"
	"github.com/avc-dev/referral-service/internal/metrics"
	"github.com/avc-dev/referral-service/internal/migrations"
	"go.uber.org/zap"
)

// App представляет приложение реферального сервиса
type App struct {
	config  *config.Config
	logger  *zap.Logger
	dbPool  db.Database
	metrics *metrics.Metrics
	router  http.Handler
	closers []func() error
}

// New создает новый экземпляр приложения из флагов и окружения
func New(ctx context.Context) (*App, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		return nil, err
	}

	app, err := NewWithConfig(ctx, cfg, logger)
	if err != nil {
		_ = logger.Sync()
		return nil, err
	}

	return app, nil
}

// NewWithConfig собирает приложение по готовой конфигурации
func NewWithConfig(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	app := &App{
		config:  cfg,
		logger:  logger,
		metrics: metrics.New(),
	}

	if cfg.DatabaseDSN != "" {
		database, err := initDatabase(ctx, cfg.DatabaseDSN, logger)
		if err != nil {
			return nil, err
		}
		app.dbPool = database
	}

	deps, err := initDependencies(ctx, cfg, logger, app.dbPool, app.metrics)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	app.closers = append(app.closers, deps.closers...)
	app.router = newRouter(deps, app.metrics, logger)

	return app, nil
}

// Router возвращает HTTP обработчик приложения
func (a *App) Router() http.Handler {
	return a.router
}

// Run запускает приложение и блокируется до сигнала завершения
func Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := New(ctx)
	if err != nil {
		return err
	}
	defer app.logger.Sync()
	defer app.Close()

	return app.Serve(ctx)
}

// Close освобождает ресурсы приложения
func (a *App) Close() {
	for _, closeFn := range a.closers {
		if err := closeFn(); err != nil {
			a.logger.Warn("failed to close resource", zap.Error(err))
		}
	}
	a.closers = nil

	if a.dbPool != nil {
		a.logger.Info("Closing database connection pool")
		a.dbPool.Close()
		a.dbPool = nil
	}
}

func newLogger(level string) (*zap.Logger, error) {
	atomicLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	zapConfig := zap.NewProductionConfig()
	zapConfig.Level = atomicLevel

	return zapConfig.Build()
}

// initDatabase подключается к базе и применяет миграции
func initDatabase(ctx context.Context, dsn string, logger *zap.Logger) (db.Database, error) {
	database, err := db.NewConfig(dsn).Connect(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := migrations.NewMigrator(database.DB(), logger).RunUp(); err != nil {
		database.Close()
		return nil, err
	}

	logger.Info("Connected to database")
	return database, nil
}
