package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr              string `yaml:"addr"`
	DatabaseURL       string `yaml:"database_url"`
	Environment       string `yaml:"environment"`
	MigrationsDir     string `yaml:"migrations_dir"`
	RunMigrations     bool   `yaml:"run_migrations"`
	RunSeed           bool   `yaml:"run_seed"`
	MaxBodyBytes      int64  `yaml:"max_body_bytes"`
	MetricsEnabled    bool   `yaml:"metrics_enabled"`
	DefaultAssignedBy string `yaml:"default_assigned_by"`
}

// Load builds the configuration from an optional YAML file (CONFIG_FILE)
// with environment variables taking precedence.
func Load() Config {
	base := Config{
		Addr:              ":3030",
		Environment:       "development",
		MigrationsDir:     "migrations",
		RunMigrations:     true,
		RunSeed:           true,
		MaxBodyBytes:      1048576,
		MetricsEnabled:    true,
		DefaultAssignedBy: "admin",
	}

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if fileCfg, err := loadFile(path, base); err == nil {
			base = fileCfg
		}
	}

	return Config{
		Addr:              getEnv("APP_ADDR", base.Addr),
		DatabaseURL:       getEnv("DATABASE_URL", base.DatabaseURL),
		Environment:       getEnv("APP_ENV", base.Environment),
		MigrationsDir:     getEnv("MIGRATIONS_DIR", base.MigrationsDir),
		RunMigrations:     getEnvBool("RUN_MIGRATIONS", base.RunMigrations),
		RunSeed:           getEnvBool("RUN_SEED", base.RunSeed),
		MaxBodyBytes:      int64(getEnvInt("MAX_BODY_BYTES", int(base.MaxBodyBytes))),
		MetricsEnabled:    getEnvBool("METRICS_ENABLED", base.MetricsEnabled),
		DefaultAssignedBy: getEnv("DEFAULT_ASSIGNED_BY", base.DefaultAssignedBy),
	}
}

func loadFile(path string, base Config) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return base, fmt.Errorf("config: read file %s: %w", path, err)
	}
	cfg := base
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return base, fmt.Errorf("config: parse yaml: %w", err)
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.Environment == "production" && c.RunSeed {
		return fmt.Errorf("RUN_SEED must be disabled in production")
	}
	return nil
}
