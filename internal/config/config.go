// Package config loads service configuration from a YAML file with
// environment variable overrides and optional .env files.
package config

import (
	"time"
)

// Default configuration values.
const (
	defaultServiceName    = "frametag"
	defaultServiceVersion = "1.0.0"
	defaultServicePort    = 8084
	defaultConcurrency    = 10
	defaultLogLevel       = "info"
	defaultLogFormat      = "json"
	defaultCatalogPath    = "catalog.json"
	defaultCSVPath        = "frame-tags.csv"
	defaultMarkdownPath   = "FRAME_TAGS_REFERENCE.md"
	defaultDBDriver       = "sqlite3"
	defaultDBDSN          = "frametag.db"
	defaultESURL          = "http://localhost:9200"
	defaultESIndex        = "frametag_reconciled"
	defaultESTimeoutSec   = 30
	defaultRateRPS        = 50
)

// Config holds all configuration for the frametag service.
type Config struct {
	Service       ServiceConfig       `yaml:"service"`
	Catalog       CatalogConfig       `yaml:"catalog"`
	Output        OutputConfig        `yaml:"output"`
	Database      DatabaseConfig      `yaml:"database"`
	Elasticsearch ElasticsearchConfig `yaml:"elasticsearch"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name           string `yaml:"name"`
	Version        string `yaml:"version"`
	Port           int    `env:"FRAMETAG_PORT"        yaml:"port"`
	Debug          bool   `env:"APP_DEBUG"            yaml:"debug"`
	Concurrency    int    `env:"FRAMETAG_CONCURRENCY" yaml:"concurrency"`
	RateLimitRPS   int    `yaml:"rate_limit_rps"`
	RateLimitBurst int    `yaml:"rate_limit_burst"`
}

// CatalogConfig locates the product export snapshot.
type CatalogConfig struct {
	Path string `env:"FRAMETAG_CATALOG" yaml:"path"`
}

// OutputConfig locates the emitted artifacts.
type OutputConfig struct {
	CSVPath      string `env:"FRAMETAG_CSV"      yaml:"csv_path"`
	MarkdownPath string `env:"FRAMETAG_MARKDOWN" yaml:"markdown_path"`
}

// DatabaseConfig holds run-history database configuration: sqlite3 for local
// runs, postgres for a shared instance.
type DatabaseConfig struct {
	Enabled bool   `yaml:"enabled"`
	Driver  string `env:"FRAMETAG_DB_DRIVER" yaml:"driver"`
	DSN     string `env:"FRAMETAG_DB_DSN"    yaml:"dsn"`
}

// ElasticsearchConfig holds the optional review-index export settings.
type ElasticsearchConfig struct {
	Enabled bool          `yaml:"enabled"`
	URL     string        `env:"ELASTICSEARCH_URL" yaml:"url"`
	Index   string        `yaml:"index"`
	Timeout time.Duration `yaml:"timeout"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  yaml:"level"`
	Format string `env:"LOG_FORMAT" yaml:"format"`
}

// Load reads configuration from path and applies defaults and env overrides.
func Load(path string) (*Config, error) {
	return loadWithDefaults[Config](path, setDefaults)
}

func setDefaults(cfg *Config) {
	if cfg.Service.Name == "" {
		cfg.Service.Name = defaultServiceName
	}
	if cfg.Service.Version == "" {
		cfg.Service.Version = defaultServiceVersion
	}
	if cfg.Service.Port == 0 {
		cfg.Service.Port = defaultServicePort
	}
	if cfg.Service.Concurrency == 0 {
		cfg.Service.Concurrency = defaultConcurrency
	}
	if cfg.Service.RateLimitRPS == 0 {
		cfg.Service.RateLimitRPS = defaultRateRPS
	}
	if cfg.Service.RateLimitBurst == 0 {
		cfg.Service.RateLimitBurst = cfg.Service.RateLimitRPS
	}
	if cfg.Catalog.Path == "" {
		cfg.Catalog.Path = defaultCatalogPath
	}
	if cfg.Output.CSVPath == "" {
		cfg.Output.CSVPath = defaultCSVPath
	}
	if cfg.Output.MarkdownPath == "" {
		cfg.Output.MarkdownPath = defaultMarkdownPath
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = defaultDBDriver
	}
	if cfg.Database.DSN == "" {
		cfg.Database.DSN = defaultDBDSN
	}
	if cfg.Elasticsearch.URL == "" {
		cfg.Elasticsearch.URL = defaultESURL
	}
	if cfg.Elasticsearch.Index == "" {
		cfg.Elasticsearch.Index = defaultESIndex
	}
	if cfg.Elasticsearch.Timeout == 0 {
		cfg.Elasticsearch.Timeout = defaultESTimeoutSec * time.Second
	}
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = defaultLogLevel
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = defaultLogFormat
	}
}
