// Package config loads the application settings from the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/naka-gawa/npm-pkg-stats/internal/domain"
)

// Environment variables read by Load.
const (
	EnvToken        = "NPM_PKG_STATS_TOKEN"
	EnvRegistryURL  = "NPM_PKG_STATS_REGISTRY_URL"
	EnvDownloadsURL = "NPM_PKG_STATS_DOWNLOADS_URL"
	EnvBundleURL    = "NPM_PKG_STATS_BUNDLE_URL"
	EnvGraphQLURL   = "NPM_PKG_STATS_GRAPHQL_URL"
	EnvHTTPTimeout  = "NPM_PKG_STATS_HTTP_TIMEOUT"
)

// Default endpoints.
const (
	DefaultRegistryURL  = "https://registry.npmjs.org"
	DefaultDownloadsURL = "https://api.npmjs.org"
	DefaultBundleURL    = "https://bundlephobia.com"
	DefaultGraphQLURL   = "https://api.github.com/graphql"
	DefaultHTTPTimeout  = 30 * time.Second
)

// Config holds everything needed to build the gateways.
type Config struct {
	Token        string
	RegistryURL  string
	DownloadsURL string
	BundleURL    string
	GraphQLURL   string
	HTTPTimeout  time.Duration
}

// Load reads the configuration using os.Getenv.
func Load() (*Config, error) {
	return LoadFrom(os.Getenv)
}

// LoadFrom reads the configuration through getenv.
// A missing token is reported as domain.ErrMissingToken.
func LoadFrom(getenv func(string) string) (*Config, error) {
	cfg := &Config{
		Token:        getenv(EnvToken),
		RegistryURL:  valueOr(getenv(EnvRegistryURL), DefaultRegistryURL),
		DownloadsURL: valueOr(getenv(EnvDownloadsURL), DefaultDownloadsURL),
		BundleURL:    valueOr(getenv(EnvBundleURL), DefaultBundleURL),
		GraphQLURL:   valueOr(getenv(EnvGraphQLURL), DefaultGraphQLURL),
		HTTPTimeout:  DefaultHTTPTimeout,
	}
	if raw := getenv(EnvHTTPTimeout); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			return nil, &domain.ConfigurationError{
				Setting: EnvHTTPTimeout,
				Reason:  fmt.Sprintf("must be a positive duration, got %q", raw),
			}
		}
		cfg.HTTPTimeout = d
	}
	if cfg.Token == "" {
		return nil, domain.ErrMissingToken
	}
	return cfg, nil
}

func valueOr(v, fallback string) string {
	if v == "" {
		return fallback
	}
	return v
}
