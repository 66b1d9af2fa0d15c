// Package config loads and validates meet-sync configuration via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config captures all service configuration knobs loaded via Viper.
type Config struct {
	Source  SourceConfig  `mapstructure:"source"`
	DB      DBConfig      `mapstructure:"db"`
	Retry   RetryConfig   `mapstructure:"retry"`
	Sync    SyncConfig    `mapstructure:"sync"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// SourceConfig points at the upstream listing API.
type SourceConfig struct {
	URL            string `mapstructure:"url"`
	Limit          int    `mapstructure:"limit"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	UserAgent      string `mapstructure:"user_agent"`
}

// DBConfig controls access to the persistent store. URL and Password are the
// two values an operator must supply; everything else has defaults.
type DBConfig struct {
	URL                string `mapstructure:"url"`
	Password           string `mapstructure:"password"`
	Table              string `mapstructure:"table"`
	MaxConns           int32  `mapstructure:"max_conns"`
	MaxConnLifetimeMin int    `mapstructure:"max_conn_lifetime_minutes"`
}

// RetryConfig governs the fetch retry wrapper.
type RetryConfig struct {
	MaxAttempts      int `mapstructure:"max_attempts"`
	BaseDelaySeconds int `mapstructure:"base_delay_seconds"`
}

// SyncConfig governs store write pacing.
type SyncConfig struct {
	WriteDelayMs int `mapstructure:"write_delay_ms"`
}

// MetricsConfig toggles the metrics/health listener served during a run.
type MetricsConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Port    int  `mapstructure:"port"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

// Load builds a Config from disk/environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("MEETSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("source.url", "https://listings.example.com/api/events")
	v.SetDefault("source.limit", 500)
	v.SetDefault("source.timeout_seconds", 15)
	v.SetDefault("source.user_agent", "meet-sync/1.0")
	// Registered empty so Viper picks the values up from MEETSYNC_DB_URL /
	// MEETSYNC_DB_PASSWORD when no config file names them.
	v.SetDefault("db.url", "")
	v.SetDefault("db.password", "")
	v.SetDefault("db.table", "meets")
	v.SetDefault("db.max_conns", 2)
	v.SetDefault("db.max_conn_lifetime_minutes", 30)
	v.SetDefault("retry.max_attempts", 3)
	v.SetDefault("retry.base_delay_seconds", 1)
	v.SetDefault("sync.write_delay_ms", 250)
	v.SetDefault("metrics.enabled", false)
	v.SetDefault("metrics.port", 9190)
	v.SetDefault("logging.development", false)
}

// Validate enforces required values and reasonable limits. A missing store
// endpoint or credential is a fatal startup condition.
func (c Config) Validate() error {
	if c.Source.URL == "" {
		return fmt.Errorf("source.url must be set")
	}
	if c.Source.TimeoutSeconds <= 0 {
		return fmt.Errorf("source.timeout_seconds must be > 0")
	}
	if c.DB.URL == "" {
		return fmt.Errorf("db.url must be set")
	}
	if c.DB.Password == "" {
		return fmt.Errorf("db.password must be set")
	}
	if c.Retry.MaxAttempts <= 0 {
		return fmt.Errorf("retry.max_attempts must be > 0")
	}
	if c.Sync.WriteDelayMs < 0 {
		return fmt.Errorf("sync.write_delay_ms must be >= 0")
	}
	if c.Metrics.Enabled && c.Metrics.Port <= 0 {
		return fmt.Errorf("metrics.port must be > 0 when metrics are enabled")
	}
	return nil
}

// SourceTimeout converts the configured fetch timeout into a duration.
func (c Config) SourceTimeout() time.Duration {
	return time.Duration(c.Source.TimeoutSeconds) * time.Second
}

// RetryBaseDelay converts the configured backoff unit into a duration.
func (c Config) RetryBaseDelay() time.Duration {
	return time.Duration(c.Retry.BaseDelaySeconds) * time.Second
}

// WriteDelay converts the configured write pacing into a duration.
func (c Config) WriteDelay() time.Duration {
	return time.Duration(c.Sync.WriteDelayMs) * time.Millisecond
}

// MaxConnLifetime converts the configured pool lifetime into a duration.
func (c Config) MaxConnLifetime() time.Duration {
	return time.Duration(c.DB.MaxConnLifetimeMin) * time.Minute
}
