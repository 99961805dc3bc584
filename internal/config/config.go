// Package config loads and validates service configuration via Viper.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config captures all service configuration knobs loaded via Viper.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Fetch   FetchConfig   `mapstructure:"fetch"`
	Sources SourcesConfig `mapstructure:"sources"`
	Bulk    BulkConfig    `mapstructure:"bulk"`
	Sink    SinkConfig    `mapstructure:"sink"`
	DB      DBConfig      `mapstructure:"db"`
	Logging LoggingConfig `mapstructure:"logging"`
}

// ServerConfig controls HTTP server behavior.
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// FetchConfig governs the shared HTTP fetch client.
type FetchConfig struct {
	UserAgent      string `mapstructure:"user_agent"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

// SourcesConfig overrides provider endpoints, mainly for testing
// against local stand-ins. Empty values use each provider's default.
type SourcesConfig struct {
	ClearbitBaseURL   string `mapstructure:"clearbit_base_url"`
	FaviconBaseURL    string `mapstructure:"favicon_base_url"`
	DDGBaseURL        string `mapstructure:"ddg_base_url"`
	LiveSearchBaseURL string `mapstructure:"live_search_base_url"`
}

// BulkConfig caps bulk fan-out.
type BulkConfig struct {
	Concurrency int `mapstructure:"concurrency"`
}

// SinkConfig sets the logo output directory.
type SinkConfig struct {
	Dir string `mapstructure:"dir"`
}

// DBConfig controls the optional Postgres record store. An empty DSN
// keeps records in memory.
type DBConfig struct {
	DSN   string `mapstructure:"dsn"`
	Table string `mapstructure:"table"`
}

// LoggingConfig toggles zap development features.
type LoggingConfig struct {
	Development bool `mapstructure:"development"`
}

// Load builds a Config from disk/environment.
func Load(path string) (Config, error) {
	v := viper.New()
	v.SetEnvPrefix("LOGOFETCH")
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
	v.SetDefault("server.port", 8080)
	v.SetDefault("fetch.user_agent", "logofetch/1.0 (+https://github.com/logofetch/logofetch)")
	v.SetDefault("fetch.timeout_seconds", 10)
	v.SetDefault("bulk.concurrency", 5)
	v.SetDefault("sink.dir", "logos")
	v.SetDefault("db.table", "logo_fetches")
	v.SetDefault("logging.development", true)
}

// Validate enforces required values and reasonable limits.
func (c Config) Validate() error {
	if c.Server.Port <= 0 {
		return fmt.Errorf("server.port must be > 0")
	}
	if c.Fetch.TimeoutSeconds <= 0 {
		return fmt.Errorf("fetch.timeout_seconds must be > 0")
	}
	if c.Bulk.Concurrency <= 0 {
		return fmt.Errorf("bulk.concurrency must be > 0")
	}
	if strings.TrimSpace(c.Sink.Dir) == "" {
		return fmt.Errorf("sink.dir must be set")
	}
	return nil
}

// FetchTimeout converts the configured timeout into a duration.
func (c Config) FetchTimeout() time.Duration {
	return time.Duration(c.Fetch.TimeoutSeconds) * time.Second
}
