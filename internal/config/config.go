package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

const (
	envPrefix     = "WALLETSYNC_"
	configFileEnv = "WALLETSYNC_CONFIG"

	StorageDriverPostgres = "postgres"
	StorageDriverMemory   = "memory"
)

type Config struct {
	PostgresAddress  string `koanf:"postgres_address"`
	PostgresPort     string `koanf:"postgres_port"`
	PostgresDB       string `koanf:"postgres_db"`
	PostgresUsername string `koanf:"postgres_username"`
	PostgresPassword string `koanf:"postgres_password"`

	StorageDriver  string `koanf:"storage_driver"`
	MigrationsPath string `koanf:"migrations_path"`

	HTTPPort string `koanf:"http_port"`
	LogLevel string `koanf:"log_level"`

	Workers           int           `koanf:"workers"`
	SweepInterval     time.Duration `koanf:"sweep_interval"`
	DivisionFreshness time.Duration `koanf:"division_freshness"`

	ESIBaseURL string        `koanf:"esi_base_url"`
	ESITimeout time.Duration `koanf:"esi_timeout"`
	UserAgent  string        `koanf:"user_agent"`

	SSOTokenURL        string `koanf:"sso_token_url"`
	SSOClientID        string `koanf:"sso_client_id"`
	SSOClientSecret    string `koanf:"sso_client_secret"`
	SSOClientSecretARN string `koanf:"sso_client_secret_arn"`
	AWSRegion          string `koanf:"aws_region"`
}

// In all cases the default behavior should be for the docker compose setup
func defaults() map[string]interface{} {
	return map[string]interface{}{
		"postgres_address":   "localhost",
		"postgres_port":      "5433",
		"postgres_db":        "postgres",
		"postgres_username":  "postgres",
		"postgres_password":  "testpassword",
		"storage_driver":     StorageDriverPostgres,
		"migrations_path":    "file://migrations",
		"http_port":          "9446",
		"log_level":          "info",
		"workers":            4,
		"sweep_interval":     "30m",
		"division_freshness": "1h",
		"esi_base_url":       "https://esi.evetech.net/latest",
		"esi_timeout":        "30s",
		"user_agent":         "walletsync",
		"sso_token_url":      "https://login.eveonline.com/v2/oauth/token",
	}
}

// ProcessEnvironmentVariables layers the defaults, the optional YAML file
// named by WALLETSYNC_CONFIG and WALLETSYNC_* environment variables, in
// that order.
func ProcessEnvironmentVariables() (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("config: load defaults: %w", err)
	}

	if path := os.Getenv(configFileEnv); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("config: load %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(envPrefix, ".", func(s string) string {
		if s == configFileEnv {
			return ""
		}
		return strings.ToLower(strings.TrimPrefix(s, envPrefix))
	}), nil)
	if err != nil {
		return nil, fmt.Errorf("config: load environment: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Workers < 1 {
		errs = append(errs, fmt.Errorf("workers must be at least 1, got %d", c.Workers))
	}
	if c.SweepInterval <= 0 {
		errs = append(errs, errors.New("sweep_interval must be positive"))
	}
	if c.DivisionFreshness <= 0 {
		errs = append(errs, errors.New("division_freshness must be positive"))
	}
	if c.ESITimeout <= 0 {
		errs = append(errs, errors.New("esi_timeout must be positive"))
	}
	switch c.StorageDriver {
	case StorageDriverPostgres, StorageDriverMemory:
	default:
		errs = append(errs, fmt.Errorf("unknown storage_driver %q", c.StorageDriver))
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

func (c *Config) PostgresConnectionString() string {
	return "postgres://" + c.PostgresUsername + ":" +
		c.PostgresPassword + "@" + c.PostgresAddress + ":" +
		c.PostgresPort + "/" + c.PostgresDB + "?sslmode=disable"
}
