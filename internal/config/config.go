package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int
	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	CatalogBaseURL     string
	CatalogTimeout     time.Duration
	CatalogMaxRetries  int
	CatalogFixturePath string // when set, the catalog is read from this file instead of the API

	RevealDelay      time.Duration
	SessionCacheSize int
	SessionTTL       time.Duration

	TrustedProxies []string
	RateLimit      int
	RateWindow     time.Duration

	ConsulAddr  string // empty disables service registration
	ServiceHost string // host Consul health checks reach us on
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	var errs []error
	intVar := func(key string, def int) int {
		v, err := getEnvAsInt(key, def)
		errs = append(errs, err)
		return v
	}
	durationVar := func(key string, def time.Duration) time.Duration {
		v, err := getEnvAsDuration(key, def)
		errs = append(errs, err)
		return v
	}

	cfg := &Config{
		Port:        intVar(EnvPort, DefaultPort),
		LogLevel:    strings.ToLower(getEnv(EnvLogLevel, DefaultLogLevel)),
		LogFormat:   strings.ToLower(getEnv(EnvLogFormat, DefaultLogFormat)),
		Environment: getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName: getEnv(EnvServiceName, DefaultServiceName),
		Version:     getEnv(EnvVersion, DefaultVersion),

		CatalogBaseURL:     getEnv(EnvCatalogBaseURL, DefaultCatalogBaseURL),
		CatalogTimeout:     durationVar(EnvCatalogTimeout, DefaultCatalogTimeout),
		CatalogMaxRetries:  intVar(EnvCatalogMaxRetries, DefaultCatalogMaxRetries),
		CatalogFixturePath: getEnv(EnvCatalogFixturePath, ""),

		RevealDelay:      durationVar(EnvRevealDelay, DefaultRevealDelay),
		SessionCacheSize: intVar(EnvSessionCacheSize, DefaultSessionCacheSize),
		SessionTTL:       durationVar(EnvSessionTTL, DefaultSessionTTL),

		TrustedProxies: getEnvAsSlice(EnvTrustedProxies),
		RateLimit:      intVar(EnvRateLimit, DefaultRateLimit),
		RateWindow:     durationVar(EnvRateWindow, DefaultRateWindow),

		ConsulAddr:  getEnv(EnvConsulAddr, ""),
		ServiceHost: getEnv(EnvServiceHost, ""),
	}

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// UsesFixture reports whether the catalog comes from a local file
func (c *Config) UsesFixture() bool {
	return c.CatalogFixturePath != ""
}

// UsesDiscovery reports whether the instance registers with Consul
func (c *Config) UsesDiscovery() bool {
	return c.ConsulAddr != ""
}

// IsDevelopment reports whether the service runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable. Unset or empty yields the default.
func getEnvAsInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return defaultValue, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return v, nil
}

// getEnvAsDuration parses a Go duration ("1500ms", "2h"). Unset or empty yields the default.
func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := getEnv(key, "")
	if raw == "" {
		return defaultValue, nil
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return defaultValue, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return v, nil
}

// getEnvAsSlice splits a comma separated variable, dropping blanks
func getEnvAsSlice(key string) []string {
	var out []string
	for _, part := range strings.Split(getEnv(key, ""), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
