// internal/common/config/config.go
package config

import (
	"fmt"

	"github.com/c-xld1/ne-yesek-matching/internal/matching/scoring"
	"github.com/c-xld1/ne-yesek-matching/internal/matching/status"
)

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Server   ServerConfig   `mapstructure:"server"`
	Database DatabaseConfig `mapstructure:"database"`
	Matching MatchingConfig `mapstructure:"matching"`
	Audit    AuditConfig    `mapstructure:"audit"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

// --- Core App/Infrastructure Config ---

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

type ServerConfig struct {
	Address         string `mapstructure:"address"`
	ReadTimeout     int    `mapstructure:"read_timeout"`     // milliseconds
	WriteTimeout    int    `mapstructure:"write_timeout"`    // milliseconds
	ShutdownTimeout int    `mapstructure:"shutdown_timeout"` // milliseconds
}

type DatabaseConfig struct {
	Postgres      PostgresConfig      `mapstructure:"postgres"`
	Redis         RedisConfig         `mapstructure:"redis"`
	Elasticsearch ElasticsearchConfig `mapstructure:"elasticsearch"`
}

type PostgresConfig struct {
	Host           string `mapstructure:"host"`
	Port           int    `mapstructure:"port"`
	Database       string `mapstructure:"database"`
	User           string `mapstructure:"user"`
	Password       string `mapstructure:"password"`
	MaxConnections int    `mapstructure:"max_connections"`
	MaxIdle        int    `mapstructure:"max_idle"`
	SSLMode        string `mapstructure:"sslmode"`
}

// GetDSN returns the PostgreSQL connection string.
func (p PostgresConfig) GetDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.Database, p.SSLMode,
	)
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type ElasticsearchConfig struct {
	Addresses []string `mapstructure:"addresses"`
	Username  string   `mapstructure:"username"`
	Password  string   `mapstructure:"password"`
}

// --- Matching Engine Config ---

// MatchingConfig bounds the read path of one matching request. Scoring
// weights and status thresholds are part of the config so the model tunes
// without code changes; an omitted section falls back to the v1 model.
type MatchingConfig struct {
	RequestTimeout     int               `mapstructure:"request_timeout"` // milliseconds
	MaxResults         int               `mapstructure:"max_results"`
	TravelMinutesPerKm float64           `mapstructure:"travel_minutes_per_km"`
	HistoryLimit       int               `mapstructure:"history_limit"`
	HistoryCacheTTL    int               `mapstructure:"history_cache_ttl"` // seconds
	Scoring            scoring.Weights   `mapstructure:"scoring"`
	Status             status.Thresholds `mapstructure:"status"`
}

// AuditConfig bounds the best-effort recommendation audit write.
type AuditConfig struct {
	Backend      string `mapstructure:"backend"` // "postgres" | "elasticsearch"
	TopK         int    `mapstructure:"top_k"`
	WriteTimeout int    `mapstructure:"write_timeout"` // milliseconds
	RetryDelay   int    `mapstructure:"retry_delay"`   // milliseconds
	IndexName    string `mapstructure:"index_name"`    // elasticsearch backend only
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}
