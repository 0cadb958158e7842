// internal/common/config/loader.go
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/c-xld1/ne-yesek-matching/internal/matching/scoring"
	"github.com/c-xld1/ne-yesek-matching/internal/matching/status"
)

func Load() (*Config, error) {
	loadEnvFile()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./configs")
	viper.AddConfigPath("../../configs")
	viper.AddConfigPath(".")

	// Enable ENV override like DATABASE_POSTGRES_HOST
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	env := os.Getenv("APP_ENVIRONMENT")
	if env == "" {
		env = "development"
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading base config: %w", err)
		}
	}

	// Environment-specific overlay, e.g. config.production.yaml
	viper.SetConfigName(fmt.Sprintf("config.%s", env))
	_ = viper.MergeInConfig() // ignore error if not found

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)

	if err := validateConfig(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// loadEnvFile tries .env from the working directory and the project root.
func loadEnvFile() {
	possiblePaths := []string{".env", "../.env", "../../.env"}
	if rootDir := findProjectRoot(); rootDir != "" {
		possiblePaths = append(possiblePaths, filepath.Join(rootDir, ".env"))
	}

	for _, path := range possiblePaths {
		if _, err := os.Stat(path); err == nil {
			if err := godotenv.Load(path); err == nil {
				return
			}
		}
	}
}

// findProjectRoot walks up directories looking for go.mod.
func findProjectRoot() string {
	dir, err := os.Getwd()
	if err != nil {
		return ""
	}

	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}

func applyDefaults(cfg *Config) {
	if cfg.App.Name == "" {
		cfg.App.Name = "matching-server"
	}
	if cfg.App.Environment == "" {
		cfg.App.Environment = "development"
	}
	if cfg.Server.Address == "" {
		cfg.Server.Address = ":8080"
	}
	if cfg.Server.ReadTimeout == 0 {
		cfg.Server.ReadTimeout = 10000
	}
	if cfg.Server.WriteTimeout == 0 {
		cfg.Server.WriteTimeout = 10000
	}
	if cfg.Server.ShutdownTimeout == 0 {
		cfg.Server.ShutdownTimeout = 15000
	}

	if cfg.Database.Postgres.Port == 0 {
		cfg.Database.Postgres.Port = 5432
	}
	if cfg.Database.Postgres.MaxConnections == 0 {
		cfg.Database.Postgres.MaxConnections = 20
	}
	if cfg.Database.Postgres.MaxIdle == 0 {
		cfg.Database.Postgres.MaxIdle = 5
	}
	if cfg.Database.Postgres.SSLMode == "" {
		cfg.Database.Postgres.SSLMode = "disable"
	}
	if cfg.Database.Redis.Address == "" {
		cfg.Database.Redis.Address = "localhost:6379"
	}

	if cfg.Matching.RequestTimeout == 0 {
		cfg.Matching.RequestTimeout = 5000
	}
	if cfg.Matching.MaxResults == 0 {
		cfg.Matching.MaxResults = 20
	}
	if cfg.Matching.TravelMinutesPerKm == 0 {
		cfg.Matching.TravelMinutesPerKm = 3
	}
	if cfg.Matching.HistoryLimit == 0 {
		cfg.Matching.HistoryLimit = 10
	}
	if cfg.Matching.HistoryCacheTTL == 0 {
		cfg.Matching.HistoryCacheTTL = 300
	}
	if cfg.Matching.Scoring == (scoring.Weights{}) {
		cfg.Matching.Scoring = scoring.DefaultWeights()
	}
	if cfg.Matching.Status == (status.Thresholds{}) {
		cfg.Matching.Status = status.DefaultThresholds()
	}

	if cfg.Audit.Backend == "" {
		cfg.Audit.Backend = "postgres"
	}
	if cfg.Audit.TopK == 0 {
		cfg.Audit.TopK = 5
	}
	if cfg.Audit.WriteTimeout == 0 {
		cfg.Audit.WriteTimeout = 3000
	}
	if cfg.Audit.RetryDelay == 0 {
		cfg.Audit.RetryDelay = 500
	}
	if cfg.Audit.IndexName == "" {
		cfg.Audit.IndexName = "chef-recommendations"
	}

	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "info"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "json"
	}
}

func validateConfig(cfg *Config) error {
	if cfg.Matching.MaxResults < 1 {
		return fmt.Errorf("matching.max_results must be positive, got %d", cfg.Matching.MaxResults)
	}
	if cfg.Audit.TopK < 1 {
		return fmt.Errorf("audit.top_k must be positive, got %d", cfg.Audit.TopK)
	}
	if cfg.Audit.TopK > cfg.Matching.MaxResults {
		return fmt.Errorf("audit.top_k (%d) cannot exceed matching.max_results (%d)",
			cfg.Audit.TopK, cfg.Matching.MaxResults)
	}
	switch cfg.Audit.Backend {
	case "postgres", "elasticsearch":
	default:
		return fmt.Errorf("audit.backend must be postgres or elasticsearch, got %q", cfg.Audit.Backend)
	}
	if cfg.Matching.Scoring.TrustDivisor <= 0 {
		return fmt.Errorf("matching.scoring.trust_divisor must be positive, got %v", cfg.Matching.Scoring.TrustDivisor)
	}
	if cfg.Matching.Scoring.PrepDivisor <= 0 {
		return fmt.Errorf("matching.scoring.prep_divisor must be positive, got %v", cfg.Matching.Scoring.PrepDivisor)
	}
	return nil
}
