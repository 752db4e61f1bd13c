// Package config provides configuration management using viper.
// It supports loading from YAML files and environment variable overrides.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all application configuration.
type Config struct {
	App     AppConfig     `mapstructure:"app"`
	Storage StorageConfig `mapstructure:"storage"`
	Rewards RewardsConfig `mapstructure:"rewards"`
}

// AppConfig holds application-level settings.
type AppConfig struct {
	// BaseURL is prepended to generated referral links.
	BaseURL string `mapstructure:"base_url"`
}

// StorageConfig selects and configures the key-value backend.
type StorageConfig struct {
	// Driver is one of "file", "redis" or "postgres".
	Driver   string         `mapstructure:"driver"`
	File     FileConfig     `mapstructure:"file"`
	Redis    RedisConfig    `mapstructure:"redis"`
	Postgres PostgresConfig `mapstructure:"postgres"`
}

// FileConfig holds file store configuration.
type FileConfig struct {
	Path string `mapstructure:"path"`
}

// RedisConfig holds redis connection configuration.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// PostgresConfig holds PostgreSQL connection configuration.
type PostgresConfig struct {
	Host            string        `mapstructure:"host"`
	Port            int           `mapstructure:"port"`
	User            string        `mapstructure:"user"`
	Password        string        `mapstructure:"password"`
	Name            string        `mapstructure:"name"`
	PoolSize        int           `mapstructure:"pool_size"`
	ConnectTimeout  time.Duration `mapstructure:"connect_timeout"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `mapstructure:"max_conn_idle_time"`
}

// RewardsConfig holds the credit amounts and the daily sell cap.
type RewardsConfig struct {
	SignupBonus   int64 `mapstructure:"signup_bonus"`
	ReferralBonus int64 `mapstructure:"referral_bonus"`
	SellReward    int64 `mapstructure:"sell_reward"`
	DailySellCap  int   `mapstructure:"daily_sell_cap"`
}

// DSN returns the PostgreSQL connection string.
func (p *PostgresConfig) DSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.Name,
	)
}

// Load reads configuration from file and environment variables.
// It looks for config.yaml in the given directory.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(configPath)
	v.AddConfigPath(".")
	v.AddConfigPath("./config")

	// Environment variables use underscore separator and uppercase,
	// e.g. STORAGE_DRIVER, REWARDS_SELL_REWARD
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Config file is optional - env vars and defaults can provide everything
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return &cfg, nil
}

// setDefaults sets default configuration values.
func setDefaults(v *viper.Viper) {
	v.SetDefault("app.base_url", "https://datacash.local/")

	// Storage defaults
	v.SetDefault("storage.driver", "file")
	v.SetDefault("storage.file.path", "data/datacash.json")
	v.SetDefault("storage.redis.addr", "localhost:6379")
	v.SetDefault("storage.redis.db", 0)
	v.SetDefault("storage.postgres.host", "localhost")
	v.SetDefault("storage.postgres.port", 5432)
	v.SetDefault("storage.postgres.user", "datacash")
	v.SetDefault("storage.postgres.name", "datacash")
	v.SetDefault("storage.postgres.pool_size", 4)
	v.SetDefault("storage.postgres.connect_timeout", "10s")
	v.SetDefault("storage.postgres.max_conn_lifetime", "1h")
	v.SetDefault("storage.postgres.max_conn_idle_time", "30m")

	// Reward defaults
	v.SetDefault("rewards.signup_bonus", 50)
	v.SetDefault("rewards.referral_bonus", 40)
	v.SetDefault("rewards.sell_reward", 500)
	v.SetDefault("rewards.daily_sell_cap", 4)
}
