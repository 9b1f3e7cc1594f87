package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/viper"
)

// Storage backends
const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendRedis  = "redis"
)

type Config struct {
	Storage StorageConfig `mapstructure:"storage"`
	Auth    AuthConfig    `mapstructure:"auth"`
	Log     LogConfig     `mapstructure:"log"`
}

type StorageConfig struct {
	Backend string      `mapstructure:"backend" envconfig:"STORAGE_BACKEND" default:"memory"`
	Dir     string      `mapstructure:"dir" envconfig:"STORAGE_DIR" default:"./data"`
	Redis   RedisConfig `mapstructure:"redis"`
}

type RedisConfig struct {
	URL          string        `mapstructure:"url" envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	MaxRetries   int           `mapstructure:"max_retries" envconfig:"REDIS_MAX_RETRIES" default:"3"`
	RetryBackoff time.Duration `mapstructure:"retry_backoff" envconfig:"REDIS_RETRY_BACKOFF" default:"100ms"`
	PoolSize     int           `mapstructure:"pool_size" envconfig:"REDIS_POOL_SIZE" default:"10"`
	MinIdleConns int           `mapstructure:"min_idle_conns" envconfig:"REDIS_MIN_IDLE_CONNS" default:"2"`
}

type AuthConfig struct {
	BcryptCost int     `mapstructure:"bcrypt_cost" envconfig:"AUTH_BCRYPT_COST" default:"12"`
	LoginRate  float64 `mapstructure:"login_rate" envconfig:"AUTH_LOGIN_RATE" default:"1"`
	LoginBurst int     `mapstructure:"login_burst" envconfig:"AUTH_LOGIN_BURST" default:"5"`
}

type LogConfig struct {
	Level string `mapstructure:"level" envconfig:"LOG_LEVEL" default:"info"`
}

// Load reads config.yaml from the working directory or ./config. When no file
// exists, configuration falls back to CLINICA_* environment variables and
// built-in defaults.
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	setDefaults()
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return fromEnv()
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &config, nil
}

func fromEnv() (*Config, error) {
	var config Config
	if err := envconfig.Process("clinica", &config); err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}
	return &config, nil
}

func setDefaults() {
	viper.SetDefault("storage.backend", BackendMemory)
	viper.SetDefault("storage.dir", "./data")
	viper.SetDefault("storage.redis.url", "redis://localhost:6379/0")
	viper.SetDefault("storage.redis.max_retries", 3)
	viper.SetDefault("storage.redis.retry_backoff", "100ms")
	viper.SetDefault("storage.redis.pool_size", 10)
	viper.SetDefault("storage.redis.min_idle_conns", 2)
	viper.SetDefault("auth.bcrypt_cost", 12)
	viper.SetDefault("auth.login_rate", 1)
	viper.SetDefault("auth.login_burst", 5)
	viper.SetDefault("log.level", "info")
}
