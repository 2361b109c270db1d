package app

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/avc-dev/referral-service/internal/config"
	"github.com/avc-dev/referral-service/internal/config/db"
	"github.com/avc-dev/referral-service/internal/docs"
	"github.com/avc-dev/referral-service/internal/handler"
	"github.com/avc-dev/referral-service/internal/metrics"
	"github.com/avc-dev/referral-service/internal/middleware"
	"github.com/avc-dev/referral-service/internal/ratelimit"
	"github.com/avc-dev/referral-service/internal/repository"
	"github.com/avc-dev/referral-service/internal/service"
	"github.com/avc-dev/referral-service/internal/store"
	"github.com/avc-dev/referral-service/internal/usecase"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// dependencies - собранные компоненты, из которых строится роутер
type dependencies struct {
	handler  *handler.Handler
	identity *middleware.IdentityMiddleware
	limiter  ratelimit.Limiter
	docs     *docs.Docs
	closers  []func() error
}

// initDependencies инициализирует все зависимости приложения
func initDependencies(ctx context.Context, cfg *config.Config, logger *zap.Logger, database db.Database, m *metrics.Metrics) (*dependencies, error) {
	referrals, err := initReferralService(ctx, cfg, logger, database)
	if err != nil {
		return nil, err
	}

	authService := service.NewAuthService(cfg.JWTSecret)
	identity := middleware.NewIdentityMiddleware(authService, middleware.IdentityConfig{
		Header:        cfg.UserIDHeader,
		DefaultUserID: cfg.DefaultUserID,
		RequireAuth:   cfg.RequireAuth,
	}, logger)

	deps := &dependencies{
		handler:  handler.New(referrals, logger, database, m),
		identity: identity,
	}

	deps.limiter, deps.closers = initLimiter(cfg.RateLimit, logger)

	if cfg.EnableDocs {
		deps.docs, err = docs.New(logger)
		if err != nil {
			return nil, err
		}
	}

	return deps, nil
}

// initReferralService выбирает реализацию реферальной программы по SERVICE_MODE
func initReferralService(ctx context.Context, cfg *config.Config, logger *zap.Logger, database db.Database) (handler.ReferralService, error) {
	if cfg.ServiceMode == config.ServiceModeFixture {
		logger.Info("Using fixture referral service")
		return usecase.NewFixtureUsecase(cfg.LinkBaseURL, logger), nil
	}

	storage, err := initStorage(cfg, logger, database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	repo := repository.New(storage)

	if database == nil && cfg.DefaultUserID != "" {
		seedStorage(ctx, repo, cfg.DefaultUserID, logger)
	}

	referralService := service.NewReferralService(repo, cfg)
	return usecase.NewReferralUsecase(repo, referralService, logger), nil
}

// initStorage создает хранилище на основе конфигурации
func initStorage(cfg *config.Config, logger *zap.Logger, database db.Database) (repository.Store, error) {
	if database != nil {
		logger.Info("Using database storage")
		return store.NewDatabaseStore(database), nil
	}

	if cfg.FileStoragePath != "" {
		fileStore, err := store.NewFileStore(cfg.FileStoragePath)
		if err != nil {
			return nil, fmt.Errorf("failed to create file store: %w", err)
		}
		logger.Info("Using file storage", zap.String("path", cfg.FileStoragePath))
		return fileStore, nil
	}

	logger.Info("Using in-memory storage")
	return store.NewStore(), nil
}

// seedStorage загружает демонстрационного реферера. Ошибка не мешает запуску.
func seedStorage(ctx context.Context, seeder usecase.Seeder, userID string, logger *zap.Logger) {
	err := usecase.Seed(ctx, seeder, userID, time.Now())
	switch {
	case errors.Is(err, store.ErrAlreadyExists):
		logger.Warn("Fixture referral code belongs to another user, skipping seed",
			zap.String("user_id", userID),
		)
	case err != nil:
		logger.Warn("Failed to seed storage", zap.Error(err))
	default:
		logger.Info("Storage seeded", zap.String("user_id", userID))
	}
}

// initLimiter создает лимитер по RATE_LIMIT_STRATEGY
func initLimiter(cfg config.RateLimitConfig, logger *zap.Logger) (ratelimit.Limiter, []func() error) {
	switch cfg.Strategy {
	case config.RateLimitNone:
		logger.Info("Rate limiting disabled")
		return ratelimit.Unlimited{}, nil
	case config.RateLimitToken:
		logger.Info("Using token bucket rate limiter",
			zap.Int("permits", cfg.Permits),
			zap.Duration("window", cfg.Window),
		)
		return ratelimit.NewTokenBucket(cfg.Permits, cfg.Window), nil
	}

	if cfg.RedisAddr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		logger.Info("Using redis fixed window rate limiter",
			zap.String("addr", cfg.RedisAddr),
			zap.Int("permits", cfg.Permits),
			zap.Duration("window", cfg.Window),
		)
		return ratelimit.NewRedisWindow(client, cfg.Permits, cfg.Window), []func() error{client.Close}
	}

	logger.Info("Using fixed window rate limiter",
		zap.Int("permits", cfg.Permits),
		zap.Duration("window", cfg.Window),
		zap.Int("queue", cfg.QueueLimit),
	)
	return ratelimit.NewFixedWindow(cfg.Permits, cfg.Window, cfg.QueueLimit), nil
}
