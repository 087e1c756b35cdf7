// Package config provides configuration management for the heatwatch
// pipeline.
//
// Configuration is loaded from:
// 1. config.yaml file (optional)
// 2. Environment variables (standard names like DATABASE_URL, SERVER_PORT)
// 3. Default values
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the root configuration structure.
type Config struct {
	Server      ServerConfig      `mapstructure:"server"`
	Database    DatabaseConfig    `mapstructure:"database"`
	Log         LogConfig         `mapstructure:"log"`
	River       RiverConfig       `mapstructure:"river"`
	Worker      WorkerConfig      `mapstructure:"worker"`
	Ingest      IngestConfig      `mapstructure:"ingest"`
	Enrichment  EnrichmentConfig  `mapstructure:"enrichment"`
	Claims      ClaimsConfig      `mapstructure:"claims"`
	Aggregation AggregationConfig `mapstructure:"aggregation"`
	Retention   RetentionConfig   `mapstructure:"retention"`
	Sources     SourcesConfig     `mapstructure:"sources"`
	Security    SecurityConfig    `mapstructure:"security"`
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Port            int           `mapstructure:"port"`
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`
	WriteTimeout    time.Duration `mapstructure:"write_timeout"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// DatabaseConfig contains PostgreSQL connection settings.
// A single pgxpool is shared by Ent and River.
type DatabaseConfig struct {
	URL string `mapstructure:"url"`

	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Database string `mapstructure:"database"`
	SSLMode  string `mapstructure:"sslmode"`

	MaxConns        int32         `mapstructure:"max_conns"`
	MinConns        int32         `mapstructure:"min_conns"`
	MaxConnLifetime time.Duration `mapstructure:"max_conn_lifetime"`
	MaxConnIdleTime time.Duration `mapstructure:"max_conn_idle_time"`

	AutoMigrate bool `mapstructure:"auto_migrate"`
}

// DSN returns the PostgreSQL connection string.
// Priority: DATABASE_URL > constructed from individual fields.
func (c DatabaseConfig) DSN() string {
	if c.URL != "" {
		return c.URL
	}
	sslmode := c.SSLMode
	if sslmode == "" {
		sslmode = "disable"
	}
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		c.User, c.Password, c.Host, c.Port, c.Database, sslmode,
	)
}

// LogConfig contains logging settings.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // json or console
}

// RiverConfig contains job queue settings. Stage attempt budgets live
// here because River owns retry and dead-letter routing.
type RiverConfig struct {
	EnrichmentWorkers  int `mapstructure:"enrichment_workers"`
	ClaimWorkers       int `mapstructure:"claim_workers"`
	AggregationWorkers int `mapstructure:"aggregation_workers"`

	// Per-stage attempt budgets. Enrichment gets more attempts than
	// storage-bound stages since external analyzers fail more often.
	EnrichmentMaxAttempts  int `mapstructure:"enrichment_max_attempts"`
	ClaimMaxAttempts       int `mapstructure:"claim_max_attempts"`
	AggregationMaxAttempts int `mapstructure:"aggregation_max_attempts"`

	// Backoff: exponential, RetryBackoffBase * 2^(attempt-1), capped.
	RetryBackoffBase time.Duration `mapstructure:"retry_backoff_base"`
	RetryBackoffCap  time.Duration `mapstructure:"retry_backoff_cap"`

	// BacklogThreshold is the pending-work count per queue above which
	// the backlog watch raises an alert. Reporting only, no shedding.
	BacklogThreshold int `mapstructure:"backlog_threshold"`

	CompletedJobRetentionPeriod time.Duration `mapstructure:"completed_job_retention_period"`
}

// WorkerConfig contains worker pool settings.
type WorkerConfig struct {
	GeneralPoolSize  int `mapstructure:"general_pool_size"`
	AnalyzerPoolSize int `mapstructure:"analyzer_pool_size"`
}

// IngestConfig contains Ingestion Gate settings.
type IngestConfig struct {
	MinContentLength int `mapstructure:"min_content_length"`
	// ClockSkewTolerance bounds how far in the future an event
	// timestamp may sit before the event is rejected.
	ClockSkewTolerance time.Duration `mapstructure:"clock_skew_tolerance"`
	// DedupWindow is the raw-hash duplicate suppression window.
	DedupWindow time.Duration `mapstructure:"dedup_window"`
	// SourceErrorThreshold marks a source DEGRADED after this many
	// consecutive errors.
	SourceErrorThreshold int `mapstructure:"source_error_threshold"`
	// PollInterval drives the registered-source poll loop.
	PollInterval time.Duration `mapstructure:"poll_interval"`
	// RegistryFile optionally declares sources in YAML.
	RegistryFile string `mapstructure:"registry_file"`
}

// EnrichmentConfig contains external analyzer settings.
type EnrichmentConfig struct {
	NLPEndpoint       string `mapstructure:"nlp_endpoint"`
	SatelliteEndpoint string `mapstructure:"satellite_endpoint"`
	// NLPTimeout bounds the standard analyzer call; SatelliteTimeout is
	// larger because imagery cross-validation is a heavier analysis.
	NLPTimeout       time.Duration `mapstructure:"nlp_timeout"`
	SatelliteTimeout time.Duration `mapstructure:"satellite_timeout"`
}

// ClaimsConfig contains Claim Resolver settings.
type ClaimsConfig struct {
	// EWMAWeight is the weight of the newest sample in the claim's
	// running risk average.
	EWMAWeight float64 `mapstructure:"ewma_weight"`
}

// AggregationConfig contains Aggregation Engine settings.
type AggregationConfig struct {
	HighRiskThreshold float64 `mapstructure:"high_risk_threshold"`
}

// RetentionConfig contains retention/compaction settings.
type RetentionConfig struct {
	AggregationDays  int `mapstructure:"aggregation_days"`
	ClaimArchiveDays int `mapstructure:"claim_archive_days"`
	DeadLetterDays   int `mapstructure:"dead_letter_days"`
}

// SourcesConfig reserves per-connector configuration.
type SourcesConfig struct {
	// Enabled toggles the poll loop entirely (ingest API stays up).
	PollEnabled bool `mapstructure:"poll_enabled"`
}

// SecurityConfig contains operator API auth settings.
type SecurityConfig struct {
	// JWTSigningKey verifies operator bearer tokens on admin endpoints.
	JWTSigningKey string `mapstructure:"jwt_signing_key"`
}

// Load reads configuration from file and environment variables.
// Standard environment variables without prefix (DATABASE_URL,
// SERVER_PORT, etc.): nested keys map dot to underscore.
func Load() (*Config, error) {
	v := viper.New()

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath("./config")
	v.AddConfigPath("/etc/heatwatch")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("read config: %w", err)
		}
		// Config file is optional, use defaults and env vars
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	return &cfg, nil
}

// Validate checks for critical configuration errors.
func (c *Config) Validate() error {
	if c.Claims.EWMAWeight <= 0 || c.Claims.EWMAWeight > 1 {
		return fmt.Errorf("claims.ewma_weight must be in (0,1], got %v", c.Claims.EWMAWeight)
	}
	if c.Aggregation.HighRiskThreshold < 0 || c.Aggregation.HighRiskThreshold > 1 {
		return fmt.Errorf("aggregation.high_risk_threshold must be in [0,1], got %v", c.Aggregation.HighRiskThreshold)
	}
	if c.River.RetryBackoffBase <= 0 {
		return fmt.Errorf("river.retry_backoff_base must be positive")
	}
	if c.River.RetryBackoffCap < c.River.RetryBackoffBase {
		return fmt.Errorf("river.retry_backoff_cap must be >= retry_backoff_base")
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	// Server
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "30s")
	v.SetDefault("server.write_timeout", "30s")
	v.SetDefault("server.shutdown_timeout", "30s")

	// Database (shared pool)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "heatwatch")
	v.SetDefault("database.password", "")
	v.SetDefault("database.database", "heatwatch")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("database.max_conns", 50)
	v.SetDefault("database.min_conns", 5)
	v.SetDefault("database.max_conn_lifetime", "1h")
	v.SetDefault("database.max_conn_idle_time", "10m")
	v.SetDefault("database.auto_migrate", false)

	// Log
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// River queues and retry policy
	v.SetDefault("river.enrichment_workers", 10)
	v.SetDefault("river.claim_workers", 10)
	v.SetDefault("river.aggregation_workers", 5)
	v.SetDefault("river.enrichment_max_attempts", 5)
	v.SetDefault("river.claim_max_attempts", 3)
	v.SetDefault("river.aggregation_max_attempts", 3)
	v.SetDefault("river.retry_backoff_base", "10s")
	v.SetDefault("river.retry_backoff_cap", "600s")
	v.SetDefault("river.backlog_threshold", 1000)
	v.SetDefault("river.completed_job_retention_period", "24h")

	// Worker pools
	v.SetDefault("worker.general_pool_size", 100)
	v.SetDefault("worker.analyzer_pool_size", 50)

	// Ingestion gate
	v.SetDefault("ingest.min_content_length", 8)
	v.SetDefault("ingest.clock_skew_tolerance", "5m")
	v.SetDefault("ingest.dedup_window", "10m")
	v.SetDefault("ingest.source_error_threshold", 5)
	v.SetDefault("ingest.poll_interval", "1m")
	v.SetDefault("ingest.registry_file", "")

	// Enrichment
	v.SetDefault("enrichment.nlp_endpoint", "http://localhost:9901")
	v.SetDefault("enrichment.satellite_endpoint", "http://localhost:9902")
	v.SetDefault("enrichment.nlp_timeout", "30s")
	v.SetDefault("enrichment.satellite_timeout", "300s")

	// Claim resolution
	v.SetDefault("claims.ewma_weight", 0.3)

	// Aggregation
	v.SetDefault("aggregation.high_risk_threshold", 0.5)

	// Retention
	v.SetDefault("retention.aggregation_days", 90)
	v.SetDefault("retention.claim_archive_days", 180)
	v.SetDefault("retention.dead_letter_days", 30)

	// Sources
	v.SetDefault("sources.poll_enabled", true)

	// Security
	v.SetDefault("security.jwt_signing_key", "")
}
