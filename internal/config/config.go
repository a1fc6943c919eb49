package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Policy selects how lookup failures are reported to the caller
type Policy string

const (
	// PolicyStrict propagates upstream failures as error responses
	PolicyStrict Policy = "strict"
	// PolicyBestEffort masks failures with an estimated record and status 200
	PolicyBestEffort Policy = "best-effort"
)

// Default upstream settings
const (
	DefaultURLTemplate      = "https://nspd.gov.ru/api/geoportal/v2/search/geoportal?thematicSearchId=1&query={cadastralNumber}"
	DefaultUserAgent        = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	DefaultAccept           = "application/json"
	DefaultReferer          = "https://nspd.gov.ru/map"
	StrictTimeout           = 10 * time.Second
	BestEffortTimeout       = 15 * time.Second
	CadastralNumberTemplate = "{cadastralNumber}"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	Policy      Policy
	Upstream    UpstreamConfig
	Logging     LoggingConfig
	RateLimit   RateLimitConfig
}

// UpstreamConfig holds settings for the cadastral data provider
type UpstreamConfig struct {
	URLTemplate        string
	Timeout            time.Duration
	UserAgent          string
	Accept             string
	Referer            string
	InsecureSkipVerify bool
}

// LoggingConfig holds logger configuration
type LoggingConfig struct {
	Level  string
	Format string // "json" or "text"
}

// RateLimitConfig holds rate limiting settings for the development server
type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load loads configuration from environment variables and config files
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()
	v.SetDefault("PORT", "8081")
	v.SetDefault("ENVIRONMENT", "development")
	v.SetDefault("LOOKUP_POLICY", string(PolicyStrict))
	v.SetDefault("NSPD_URL_TEMPLATE", DefaultURLTemplate)
	v.SetDefault("NSPD_USER_AGENT", DefaultUserAgent)
	v.SetDefault("NSPD_ACCEPT", DefaultAccept)
	v.SetDefault("NSPD_REFERER", DefaultReferer)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("RATE_LIMIT_RPS", 10.0)
	v.SetDefault("RATE_LIMIT_BURST", 20)

	policy, err := ParsePolicy(v.GetString("LOOKUP_POLICY"))
	if err != nil {
		return nil, err
	}

	config := &Config{
		Environment: v.GetString("ENVIRONMENT"),
		Port:        v.GetString("PORT"),
		Policy:      policy,
		Upstream: UpstreamConfig{
			URLTemplate:        v.GetString("NSPD_URL_TEMPLATE"),
			Timeout:            policy.DefaultTimeout(),
			UserAgent:          v.GetString("NSPD_USER_AGENT"),
			Accept:             v.GetString("NSPD_ACCEPT"),
			Referer:            v.GetString("NSPD_REFERER"),
			InsecureSkipVerify: policy == PolicyBestEffort,
		},
		Logging: LoggingConfig{
			Level:  v.GetString("LOG_LEVEL"),
			Format: v.GetString("LOG_FORMAT"),
		},
		RateLimit: RateLimitConfig{
			RequestsPerSecond: v.GetFloat64("RATE_LIMIT_RPS"),
			Burst:             v.GetInt("RATE_LIMIT_BURST"),
		},
	}

	// Policy-dependent defaults only apply when not set explicitly
	if v.IsSet("NSPD_TIMEOUT") {
		timeout := v.GetDuration("NSPD_TIMEOUT")
		if timeout <= 0 {
			return nil, fmt.Errorf("invalid NSPD_TIMEOUT %q: must be a positive duration", v.GetString("NSPD_TIMEOUT"))
		}
		config.Upstream.Timeout = timeout
	}
	if v.IsSet("NSPD_INSECURE_TLS") {
		config.Upstream.InsecureSkipVerify = v.GetBool("NSPD_INSECURE_TLS")
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return config, nil
}

// Validate checks configuration consistency
func (c *Config) Validate() error {
	if !strings.Contains(c.Upstream.URLTemplate, CadastralNumberTemplate) {
		return fmt.Errorf("NSPD_URL_TEMPLATE must contain the %s placeholder", CadastralNumberTemplate)
	}
	if c.Upstream.UserAgent == "" {
		return fmt.Errorf("NSPD_USER_AGENT must not be empty")
	}
	return nil
}

// ParsePolicy converts a configuration value into a Policy
func ParsePolicy(value string) (Policy, error) {
	switch Policy(strings.ToLower(strings.TrimSpace(value))) {
	case "", PolicyStrict:
		return PolicyStrict, nil
	case PolicyBestEffort, "best_effort", "besteffort":
		return PolicyBestEffort, nil
	default:
		return "", fmt.Errorf("invalid LOOKUP_POLICY %q: expected %q or %q", value, PolicyStrict, PolicyBestEffort)
	}
}

// DefaultTimeout returns the upstream timeout used when none is configured
func (p Policy) DefaultTimeout() time.Duration {
	if p == PolicyBestEffort {
		return BestEffortTimeout
	}
	return StrictTimeout
}

// IsBestEffort reports whether failures are masked with estimates
func (p Policy) IsBestEffort() bool {
	return p == PolicyBestEffort
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
