package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"

	// Modal serves the dev deployment of an app under a "-dev" host suffix.
	devHostSuffix = "-dev"
	hostDomain    = ".modal.run"
)

// Config holds the client configuration loaded from environment variables.
// It is computed once at process start and treated as immutable afterwards.
type Config struct {
	Env                string        `mapstructure:"app_env"`
	LogLevel           string        `mapstructure:"log_level"`
	HostPrefix         string        `mapstructure:"host_prefix"`
	BaseURLOverride    string        `mapstructure:"base_url"`
	HTTPTimeoutSeconds int64         `mapstructure:"http_timeout_seconds"`
	HTTPTimeout        time.Duration `mapstructure:"-"`

	baseURL string
}

// Load reads configuration from environment variables and an optional .env file.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	v := viper.New()

	v.SetDefault("app_env", EnvDevelopment)
	v.SetDefault("log_level", "info")
	v.SetDefault("host_prefix", "twitter95--db-client-api")
	v.SetDefault("base_url", "")
	v.SetDefault("http_timeout_seconds", 15)

	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	cfg.Env = strings.ToLower(strings.TrimSpace(cfg.Env))
	switch cfg.Env {
	case EnvDevelopment, EnvProduction:
	default:
		return nil, fmt.Errorf("invalid app_env %q (must be %s or %s)", cfg.Env, EnvDevelopment, EnvProduction)
	}

	if strings.TrimSpace(cfg.HostPrefix) == "" && strings.TrimSpace(cfg.BaseURLOverride) == "" {
		return nil, fmt.Errorf("host_prefix must not be empty")
	}
	if cfg.HTTPTimeoutSeconds <= 0 {
		return nil, fmt.Errorf("invalid http_timeout_seconds (must be positive seconds)")
	}
	cfg.HTTPTimeout = time.Duration(cfg.HTTPTimeoutSeconds) * time.Second

	cfg.baseURL = deriveBaseURL(&cfg)

	return &cfg, nil
}

// BaseURL returns the service base URL selected at load time. The development
// environment maps to the dev-suffixed host; production maps to the plain host.
// An explicit base_url setting overrides the derivation entirely.
func (c *Config) BaseURL() string { return c.baseURL }

func deriveBaseURL(cfg *Config) string {
	if override := strings.TrimSpace(cfg.BaseURLOverride); override != "" {
		return strings.TrimRight(override, "/")
	}

	suffix := ""
	if cfg.Env == EnvDevelopment {
		suffix = devHostSuffix
	}
	return "https://" + strings.TrimSpace(cfg.HostPrefix) + suffix + hostDomain
}
