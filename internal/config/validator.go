package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
)

// Validate checks value ranges. All problems are reported together.
func (c *Config) Validate() error {
	var errs []error

	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Errorf("%s must be between 1 and 65535, got %d", EnvPort, c.Port))
	}
	if !validLogLevels[c.LogLevel] {
		errs = append(errs, fmt.Errorf("%s must be one of debug, info, warn, error, got %q", EnvLogLevel, c.LogLevel))
	}
	if !validLogFormats[c.LogFormat] {
		errs = append(errs, fmt.Errorf("%s must be text or json, got %q", EnvLogFormat, c.LogFormat))
	}
	if !c.UsesFixture() {
		if u, err := url.Parse(c.CatalogBaseURL); err != nil || u.Scheme == "" || u.Host == "" {
			errs = append(errs, fmt.Errorf("%s must be an absolute URL, got %q", EnvCatalogBaseURL, c.CatalogBaseURL))
		}
	}
	if c.CatalogTimeout <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", EnvCatalogTimeout))
	}
	if c.CatalogMaxRetries < 0 {
		errs = append(errs, fmt.Errorf("%s must not be negative", EnvCatalogMaxRetries))
	}
	if c.RevealDelay < 0 || c.RevealDelay > MaxRevealDelay {
		errs = append(errs, fmt.Errorf("%s must be between 0 and %s", EnvRevealDelay, MaxRevealDelay))
	}
	if c.SessionCacheSize < 1 {
		errs = append(errs, fmt.Errorf("%s must be at least 1", EnvSessionCacheSize))
	}
	if c.SessionTTL <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", EnvSessionTTL))
	}
	if c.RateLimit < 1 {
		errs = append(errs, fmt.Errorf("%s must be at least 1", EnvRateLimit))
	}
	if c.RateWindow <= 0 {
		errs = append(errs, fmt.Errorf("%s must be positive", EnvRateWindow))
	}

	return errors.Join(errs...)
}

// Warnings lists settings that work but are probably not intended
func (c *Config) Warnings() []string {
	var warnings []string

	if c.UsesFixture() {
		if _, err := os.Stat(c.CatalogFixturePath); err != nil {
			warnings = append(warnings, fmt.Sprintf("%s %q is not readable; the skin pool will be empty", EnvCatalogFixturePath, c.CatalogFixturePath))
		}
		if !c.IsDevelopment() {
			warnings = append(warnings, fmt.Sprintf("%s is set outside development; drops come from a local fixture", EnvCatalogFixturePath))
		}
	}
	if c.LogLevel == "debug" && !c.IsDevelopment() {
		warnings = append(warnings, "debug logging is enabled outside development")
	}

	return warnings
}
