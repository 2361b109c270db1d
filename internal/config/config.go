package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/go-playground/validator/v10"
)

const (
	ServiceModeFixture = "fixture"
	ServiceModeStore   = "store"

	RateLimitFixed = "fixed"
	RateLimitToken = "token"
	RateLimitNone  = "none"
)

// Config содержит всю конфигурацию сервиса.
// Приоритет: переменные окружения > флаги > значения по умолчанию.
type Config struct {
	ServerAddress   NetworkAddress `env:"SERVER_ADDRESS"`
	GRPCAddress     string         `env:"GRPC_ADDRESS"`
	LinkBaseURL     URLPrefix      `env:"LINK_BASE_URL" validate:"required"`
	DatabaseDSN     string         `env:"DATABASE_DSN"`
	FileStoragePath string         `env:"FILE_STORAGE_PATH"`
	ServiceMode     string         `env:"SERVICE_MODE" validate:"oneof=fixture store"`

	JWTSecret     string `env:"JWT_SECRET" validate:"required"`
	DefaultUserID string `env:"DEFAULT_USER_ID"`
	UserIDHeader  string `env:"USER_ID_HEADER"`
	RequireAuth   bool   `env:"REQUIRE_AUTH"`

	EnableDocs      bool          `env:"ENABLE_DOCS"`
	LogLevel        string        `env:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" validate:"gt=0"`

	Retry     RetryConfig     `envPrefix:"RETRY_"`
	RateLimit RateLimitConfig `envPrefix:"RATE_LIMIT_"`
}

// RetryConfig - настройки повторных попыток генерации кода
type RetryConfig struct {
	MaxAttempts int `env:"MAX_ATTEMPTS" validate:"gt=0"`
}

// RateLimitConfig - политика ограничения частоты запросов
type RateLimitConfig struct {
	Strategy      string        `env:"STRATEGY" validate:"oneof=fixed token none"`
	Permits       int           `env:"PERMITS" validate:"gt=0"`
	Window        time.Duration `env:"WINDOW" validate:"gt=0"`
	QueueLimit    int           `env:"QUEUE" validate:"gte=0"`
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" validate:"gte=0"`
}

// NewDefaultConfig возвращает конфигурацию со значениями по умолчанию
func NewDefaultConfig() *Config {
	return &Config{
		ServerAddress:   NetworkAddress{Host: "localhost", Port: 8080},
		LinkBaseURL:     URLPrefix("https://cartoncaps.link/"),
		ServiceMode:     ServiceModeFixture,
		JWTSecret:       "dev-secret-change-me",
		DefaultUserID:   "test-user",
		UserIDHeader:    "X-User-ID",
		EnableDocs:      true,
		LogLevel:        "info",
		ShutdownTimeout: 10 * time.Second,
		Retry: RetryConfig{
			MaxAttempts: 10,
		},
		RateLimit: RateLimitConfig{
			Strategy:   RateLimitFixed,
			Permits:    20,
			Window:     time.Minute,
			QueueLimit: 2,
		},
	}
}

var validate = validator.New()

// Load загружает конфигурацию из аргументов командной строки и окружения
func Load() (*Config, error) {
	return LoadFromArgs(os.Args[1:])
}

// LoadFromArgs загружает конфигурацию из переданных аргументов и окружения
func LoadFromArgs(args []string) (*Config, error) {
	cfg := NewDefaultConfig()

	fs := flag.NewFlagSet("referrals", flag.ContinueOnError)
	fs.Var(&cfg.ServerAddress, "a", "address to run HTTP server")
	fs.StringVar(&cfg.GRPCAddress, "g", cfg.GRPCAddress, "address to run gRPC health server")
	fs.Var(&cfg.LinkBaseURL, "l", "base URL for referral links")
	fs.StringVar(&cfg.DatabaseDSN, "d", cfg.DatabaseDSN, "database connection string")
	fs.StringVar(&cfg.FileStoragePath, "f", cfg.FileStoragePath, "file storage path")
	fs.StringVar(&cfg.ServiceMode, "m", cfg.ServiceMode, "service mode: fixture or store")

	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("failed to parse flags: %w", err)
	}

	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет значения конфигурации
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) && len(validationErrs) > 0 {
			first := validationErrs[0]
			return fmt.Errorf("invalid config: field %s failed on %q", first.Namespace(), first.Tag())
		}
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}
