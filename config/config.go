package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	HTTPPort string `mapstructure:"HTTP_PORT" validate:"required"`
	GRPCPort string `mapstructure:"GRPC_PORT" validate:"required"`

	DBDriver   string `mapstructure:"DB_DRIVER" validate:"oneof=postgres sqlite"`
	DBHost     string `mapstructure:"DB_HOST" validate:"required_if=DBDriver postgres"`
	DBPort     string `mapstructure:"DB_PORT" validate:"required_if=DBDriver postgres"`
	DBUser     string `mapstructure:"DB_USER" validate:"required_if=DBDriver postgres"`
	DBPassword string `mapstructure:"DB_PASSWORD"`
	DBName     string `mapstructure:"DB_NAME" validate:"required_if=DBDriver postgres"`
	DBSSLMode  string `mapstructure:"DB_SSLMODE"`
	SQLitePath string `mapstructure:"SQLITE_PATH" validate:"required_if=DBDriver sqlite"`

	// RedisAddr empty disables the course cache and submission rate limiting.
	RedisAddr string        `mapstructure:"REDIS_ADDR"`
	CacheTTL  time.Duration `mapstructure:"CACHE_TTL" validate:"gt=0"`

	AllowedOrigins       string        `mapstructure:"ALLOWED_ORIGINS"`
	SubmissionRateLimit  int           `mapstructure:"SUBMISSION_RATE_LIMIT" validate:"gte=0"`
	SubmissionRateWindow time.Duration `mapstructure:"SUBMISSION_RATE_WINDOW" validate:"gt=0"`

	SeedOnStart bool   `mapstructure:"SEED_ON_START"`
	LogLevel    string `mapstructure:"LOG_LEVEL" validate:"oneof=debug info warn error"`
	GinMode     string `mapstructure:"GIN_MODE" validate:"oneof=debug release test"`
}

var defaults = map[string]any{
	"HTTP_PORT":              ":8080",
	"GRPC_PORT":              ":9090",
	"DB_DRIVER":              "postgres",
	"DB_HOST":                "",
	"DB_PORT":                "5432",
	"DB_USER":                "",
	"DB_PASSWORD":            "",
	"DB_NAME":                "",
	"DB_SSLMODE":             "disable",
	"SQLITE_PATH":            "emax.db",
	"REDIS_ADDR":             "",
	"CACHE_TTL":              "5m",
	"ALLOWED_ORIGINS":        "*",
	"SUBMISSION_RATE_LIMIT":  10,
	"SUBMISSION_RATE_WINDOW": "1m",
	"SEED_ON_START":          true,
	"LOG_LEVEL":              "info",
	"GIN_MODE":               "release",
}

// LoadConfig reads app.env from path when present and lets the environment
// override every key.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("env")

	v.AutomaticEnv()
	for key, value := range defaults {
		v.SetDefault(key, value)
		if err = v.BindEnv(key); err != nil {
			return
		}
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("read config: %w", err)
		}
		err = nil
	}

	if err = v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("decode config: %w", err)
	}
	err = config.Validate()
	return
}

func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// DSN returns the connection string for the configured driver.
func (c Config) DSN() string {
	if c.DBDriver == "sqlite" {
		return c.SQLitePath
	}
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort, c.DBSSLMode)
}

// Origins splits ALLOWED_ORIGINS on commas.
func (c Config) Origins() []string {
	var out []string
	for _, o := range strings.Split(c.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	return out
}
