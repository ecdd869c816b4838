package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

type Config struct {
	Forecast  ForecastConfig  `mapstructure:"forecast"`
	Redis     RedisConfig     `mapstructure:"redis"`
	Cache     CacheConfig     `mapstructure:"cache"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type ForecastConfig struct {
	APIKey  string `mapstructure:"api_key"`
	BaseURL string `mapstructure:"base_url"`
	// TimeoutSeconds bounds a single API call.
	TimeoutSeconds int `mapstructure:"timeout_seconds"`
}

type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type CacheConfig struct {
	Enabled bool `mapstructure:"enabled"`
	// ForecastTTLSeconds applies to forecast responses, which go stale
	// quickly. TimeMachineTTLSeconds applies to historical responses,
	// which never change.
	ForecastTTLSeconds    int `mapstructure:"forecast_ttl_seconds"`
	TimeMachineTTLSeconds int `mapstructure:"time_machine_ttl_seconds"`
}

type RateLimitConfig struct {
	// RequestsPerSecond and Burst feed a token bucket guarding the
	// upstream API quota.
	RequestsPerSecond float64 `mapstructure:"requests_per_second"`
	Burst             int     `mapstructure:"burst"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func Load() (*Config, error) {
	// Load .env file if it exists
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("error loading .env file: %w", err)
		}
	}

	// Configure YAML config file search
	viper.SetConfigName("forecastio")
	viper.SetConfigType("yaml")

	// Add search paths in order of precedence (first found wins)
	viper.AddConfigPath(".")
	viper.AddConfigPath("$HOME")
	viper.AddConfigPath("$HOME/.config")
	viper.AddConfigPath("/etc")

	// Environment variables
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Map specific environment variables to config keys
	viper.BindEnv("forecast.api_key", "FORECAST_API_KEY")
	viper.BindEnv("forecast.base_url", "FORECAST_BASE_URL")
	viper.BindEnv("forecast.timeout_seconds", "FORECAST_TIMEOUT_SECONDS")

	viper.BindEnv("redis.host", "REDIS_HOST")
	viper.BindEnv("redis.port", "REDIS_PORT")
	viper.BindEnv("redis.password", "REDIS_PASSWORD")
	viper.BindEnv("redis.db", "REDIS_DB")

	viper.BindEnv("cache.enabled", "CACHE_ENABLED")
	viper.BindEnv("cache.forecast_ttl_seconds", "CACHE_FORECAST_TTL_SECONDS")
	viper.BindEnv("cache.time_machine_ttl_seconds", "CACHE_TIME_MACHINE_TTL_SECONDS")

	viper.BindEnv("rate_limit.requests_per_second", "RATE_LIMIT_RPS")
	viper.BindEnv("rate_limit.burst", "RATE_LIMIT_BURST")

	viper.BindEnv("logging.level", "LOG_LEVEL")
	viper.BindEnv("logging.format", "LOG_FORMAT")

	setDefaults()

	// Read config file if exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	if config.Forecast.APIKey == "" {
		return nil, fmt.Errorf("forecast API key is required (set FORECAST_API_KEY)")
	}

	return &config, nil
}

func setDefaults() {
	// Forecast defaults
	viper.SetDefault("forecast.base_url", "https://api.darksky.net/forecast")
	viper.SetDefault("forecast.timeout_seconds", 10)

	// Redis defaults
	viper.SetDefault("redis.host", "localhost")
	viper.SetDefault("redis.port", 6379)
	viper.SetDefault("redis.db", 0)

	// Cache defaults
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.forecast_ttl_seconds", 600)
	viper.SetDefault("cache.time_machine_ttl_seconds", 86400)

	// Rate limit defaults fit the free tier (1000 calls/day)
	viper.SetDefault("rate_limit.requests_per_second", 0.0115)
	viper.SetDefault("rate_limit.burst", 10)

	// Logging defaults
	viper.SetDefault("logging.level", "info")
	viper.SetDefault("logging.format", "json")
}
