package config

import (
	"time"

	"github.com/StanleyPangaruy/valorant-lootbox/internal/catalog"
)

// Environment variable names
const (
	EnvPort               = "PORT"
	EnvLogLevel           = "LOG_LEVEL"
	EnvLogFormat          = "LOG_FORMAT"
	EnvEnvironment        = "ENVIRONMENT"
	EnvServiceName        = "SERVICE_NAME"
	EnvVersion            = "VERSION"
	EnvCatalogBaseURL     = "CATALOG_BASE_URL"
	EnvCatalogTimeout     = "CATALOG_TIMEOUT"
	EnvCatalogMaxRetries  = "CATALOG_MAX_RETRIES"
	EnvCatalogFixturePath = "CATALOG_FIXTURE_PATH"
	EnvRevealDelay        = "REVEAL_DELAY"
	EnvSessionCacheSize   = "SESSION_CACHE_SIZE"
	EnvSessionTTL         = "SESSION_TTL"
	EnvTrustedProxies     = "TRUSTED_PROXIES"
	EnvRateLimit          = "RATE_LIMIT"
	EnvRateWindow         = "RATE_WINDOW"
	EnvConsulAddr         = "CONSUL_HTTP_ADDR"
	EnvServiceHost        = "SERVICE_HOST"
)

// Defaults
const (
	DefaultPort              = 8080
	DefaultLogLevel          = "info"
	DefaultLogFormat         = "text"
	DefaultEnvironment       = "dev"
	DefaultServiceName       = "valorant-lootbox"
	DefaultVersion           = "dev"
	DefaultCatalogBaseURL    = catalog.DefaultBaseURL
	DefaultCatalogTimeout    = catalog.DefaultTimeout
	DefaultCatalogMaxRetries = catalog.DefaultMaxRetries
	DefaultRevealDelay       = 0
	DefaultSessionCacheSize  = 10000
	DefaultSessionTTL        = 2 * time.Hour
	DefaultRateLimit         = 1000
	DefaultRateWindow        = 5 * time.Minute
)

// MaxRevealDelay keeps the cosmetic delay from locking a session for long
const MaxRevealDelay = time.Minute

// ConfigPathSampleCatalog is a small offline catalog for local runs
const ConfigPathSampleCatalog = "configs/catalog.sample.yaml"

var validLogLevels = map[string]bool{"debug": true, "info": true, "warn": true, "warning": true, "error": true}

var validLogFormats = map[string]bool{"text": true, "json": true}
