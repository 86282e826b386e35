package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	API       APIConfig       `mapstructure:"api"`
	Session   SessionConfig   `mapstructure:"session"`
	Retry     RetryConfig     `mapstructure:"retry"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Tracing   TracingConfig   `mapstructure:"tracing"`
	Metrics   MetricsConfig   `mapstructure:"metrics"`
	Log       LogConfig       `mapstructure:"log"`
}

type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	// UploadBaseURL points at the multipart upload host when it differs from
	// the JSON API host. Empty means uploads share BaseURL.
	UploadBaseURL string        `mapstructure:"upload_base_url"`
	Timeout       time.Duration `mapstructure:"timeout_seconds"`
}

type SessionConfig struct {
	File string `mapstructure:"file"`
}

type RetryConfig struct {
	MaxAttempts int           `mapstructure:"max_attempts"`
	BackoffBase time.Duration `mapstructure:"backoff_base_seconds"`
}

type RateLimitConfig struct {
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

type TracingConfig struct {
	Enabled           bool   `mapstructure:"enabled"`
	CollectorEndpoint string `mapstructure:"collector_endpoint"`
}

type MetricsConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Addr    string `mapstructure:"addr"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

func LoadConfig(path string) (*Config, error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetEnvPrefix("FOODIEFRAME")
	viper.AutomaticEnv()

	viper.BindEnv("api.base_url", "FOODIEFRAME_API_URL")
	viper.BindEnv("api.upload_base_url", "FOODIEFRAME_UPLOAD_URL")
	viper.BindEnv("session.file", "FOODIEFRAME_SESSION_FILE")
	viper.BindEnv("log.level", "FOODIEFRAME_LOG_LEVEL")
	viper.BindEnv("tracing.enabled", "TRACING_ENABLED")
	viper.BindEnv("tracing.collector_endpoint", "TRACING_COLLECTOR_ENDPOINT")

	viper.SetDefault("api.base_url", "http://localhost:8081/api")
	viper.SetDefault("api.timeout_seconds", 30)
	viper.SetDefault("retry.max_attempts", 3)
	viper.SetDefault("retry.backoff_base_seconds", 1)
	viper.SetDefault("rate_limit.requests_per_second", 20)
	viper.SetDefault("rate_limit.burst", 40)
	viper.SetDefault("metrics.addr", "localhost:9091")
	viper.SetDefault("log.level", "info")

	if err := viper.ReadInConfig(); err != nil {
		// Defaults plus env vars are enough to run without a config file.
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	cfg.API.Timeout = cfg.API.Timeout * time.Second
	cfg.Retry.BackoffBase = cfg.Retry.BackoffBase * time.Second

	if cfg.Session.File == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir for session file: %w", err)
		}
		cfg.Session.File = filepath.Join(home, ".foodieframe", "session.json")
	}

	if cfg.API.BaseURL == "" {
		return nil, fmt.Errorf("api.base_url must not be empty")
	}

	return &cfg, nil
}
