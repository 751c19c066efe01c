package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Env             string `mapstructure:"APP_ENV"`
	HTTPPort        string `mapstructure:"HTTP_PORT" validate:"required,numeric"`
	StoreDriver     string `mapstructure:"STORE_DRIVER" validate:"oneof=mongo postgres memory"`
	DatabaseURL     string `mapstructure:"DATABASE_URL" validate:"required_if=StoreDriver postgres"`
	MongoURI        string `mapstructure:"MONGO_URI" validate:"required_if=StoreDriver mongo"`
	MongoDatabase   string `mapstructure:"MONGO_DATABASE"`
	StoreCollection string `mapstructure:"STORE_COLLECTION" validate:"required"`
	Migrate         bool   `mapstructure:"APP_MIGRATE"`
	RateRPS         int    `mapstructure:"RATE_RPS" validate:"gte=0"`
	RedisURL        string `mapstructure:"REDIS_URL"`
	RedisPrefix     string `mapstructure:"REDIS_RATE_LIMIT_PREFIX"`

	SecretTokenID    string `mapstructure:"SECRET_TOKEN_ID" validate:"required"`
	SecretUserID     string `mapstructure:"SECRET_USER_ID" validate:"required"`
	SecretPasswordID string `mapstructure:"SECRET_PASSWORD_ID" validate:"required"`
}

var keys = []string{
	"APP_ENV", "HTTP_PORT", "STORE_DRIVER", "DATABASE_URL", "MONGO_URI",
	"MONGO_DATABASE", "STORE_COLLECTION", "APP_MIGRATE", "RATE_RPS",
	"REDIS_URL", "REDIS_RATE_LIMIT_PREFIX",
	"SECRET_TOKEN_ID", "SECRET_USER_ID", "SECRET_PASSWORD_ID",
}

// Load reads the environment and an optional .env file under path. The
// result is read-only for the life of the process.
func Load(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()

	v.SetDefault("APP_ENV", "dev")
	v.SetDefault("HTTP_PORT", "8080")
	v.SetDefault("STORE_DRIVER", "memory")
	v.SetDefault("MONGO_DATABASE", "transactions")
	v.SetDefault("STORE_COLLECTION", "transaction-automation-k6-test")
	v.SetDefault("APP_MIGRATE", false)
	v.SetDefault("RATE_RPS", 0)
	v.SetDefault("REDIS_RATE_LIMIT_PREFIX", "txn-intake:rate_limit")

	for _, k := range keys {
		_ = v.BindEnv(k)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			slog.Warn("failed to read config file; using environment values", "err", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	cfg.StoreDriver = strings.ToLower(strings.TrimSpace(cfg.StoreDriver))
	cfg.RedisURL = strings.TrimSpace(cfg.RedisURL)

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}
