package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const envPrefix = "INSIGHTS_"

// Config represents the top-level application config.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Database  DatabaseConfig  `koanf:"database"`
	Report    ReportConfig    `koanf:"report"`
	Dashboard DashboardConfig `koanf:"dashboard"`
	Logging   LoggingConfig   `koanf:"logging"`
}

type ServerConfig struct {
	Port           int           `koanf:"port"`
	Host           string        `koanf:"host"`
	Mode           string        `koanf:"mode"` // debug | release
	RequestTimeout time.Duration `koanf:"request_timeout"`
}

// Addr is the listen address in host:port form.
func (c ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

const (
	DatabasePostgres = "postgres"
	DatabaseSnapshot = "snapshot"
)

type DatabaseConfig struct {
	Type         string `koanf:"type"` // postgres | snapshot
	DSN          string `koanf:"dsn"`
	MaxOpenConns int    `koanf:"max_open_conns"`
	MaxIdleConns int    `koanf:"max_idle_conns"`
	AutoMigrate  bool   `koanf:"auto_migrate"`
	SnapshotPath string `koanf:"snapshot_path"`
}

type ReportConfig struct {
	DefaultPageSize int    `koanf:"default_page_size"`
	Timezone        string `koanf:"timezone"` // IANA name, "Local" or "UTC"
}

// Location loads the configured timezone.
func (c ReportConfig) Location() (*time.Location, error) {
	return time.LoadLocation(c.Timezone)
}

type DashboardConfig struct {
	FeedSize int `koanf:"feed_size"`
	TopN     int `koanf:"top_n"`
}

type LoggingConfig struct {
	Level  string `koanf:"level"`  // debug | info | warn | error
	Format string `koanf:"format"` // text | json
}

// SlogLevel maps Level to a slog level. Unknown names yield info.
func (c LoggingConfig) SlogLevel() slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(c.Level)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server.port %d (must be 1-65535)", c.Server.Port)
	}
	if strings.TrimSpace(c.Server.Host) == "" {
		return fmt.Errorf("server.host is required")
	}
	if c.Server.Mode != "debug" && c.Server.Mode != "release" {
		return fmt.Errorf("invalid server.mode %q (must be debug or release)", c.Server.Mode)
	}
	if c.Server.RequestTimeout <= 0 {
		return fmt.Errorf("server.request_timeout must be > 0")
	}

	switch c.Database.Type {
	case DatabasePostgres:
		if strings.TrimSpace(c.Database.DSN) == "" {
			return fmt.Errorf("database.dsn is required")
		}
		if c.Database.MaxOpenConns <= 0 {
			return fmt.Errorf("database.max_open_conns must be > 0")
		}
		if c.Database.MaxIdleConns <= 0 {
			return fmt.Errorf("database.max_idle_conns must be > 0")
		}
	case DatabaseSnapshot:
		if strings.TrimSpace(c.Database.SnapshotPath) == "" {
			return fmt.Errorf("database.snapshot_path is required")
		}
	default:
		return fmt.Errorf("unsupported database.type %q", c.Database.Type)
	}

	if c.Report.DefaultPageSize <= 0 {
		return fmt.Errorf("report.default_page_size must be > 0")
	}
	if _, err := c.Report.Location(); err != nil {
		return fmt.Errorf("invalid report.timezone %q: %w", c.Report.Timezone, err)
	}

	if c.Dashboard.FeedSize <= 0 {
		return fmt.Errorf("dashboard.feed_size must be > 0")
	}
	if c.Dashboard.TopN <= 0 || c.Dashboard.TopN > 100 {
		return fmt.Errorf("invalid dashboard.top_n %d (must be 1-100)", c.Dashboard.TopN)
	}

	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid logging.level %q", c.Logging.Level)
	}
	if c.Logging.Format != "text" && c.Logging.Format != "json" {
		return fmt.Errorf("invalid logging.format %q (must be text or json)", c.Logging.Format)
	}

	return nil
}

// Load parses config from defaults, then file, then env, and validates it.
func Load(configPath string) (*Config, error) {
	k := koanf.New(".")

	defaults := map[string]interface{}{
		"server.port":              8080,
		"server.host":              "0.0.0.0",
		"server.mode":              "release",
		"server.request_timeout":   "15s",
		"database.type":            DatabasePostgres,
		"database.dsn":             "",
		"database.max_open_conns":  25,
		"database.max_idle_conns":  25,
		"database.auto_migrate":    true,
		"database.snapshot_path":   "./data/snapshot.yaml",
		"report.default_page_size": 10,
		"report.timezone":          "Local",
		"dashboard.feed_size":      5,
		"dashboard.top_n":          5,
		"logging.level":            "info",
		"logging.format":           "text",
	}
	for key, value := range defaults {
		k.Set(key, value)
	}

	if configPath != "" {
		if err := k.Load(file.Provider(configPath), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	}

	if err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		return strings.Replace(strings.ToLower(strings.TrimPrefix(s, envPrefix)), "__", ".", -1)
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
