package domain

import (
	"errors"
	"fmt"
)

// ConfigurationError reports a setting the application cannot run without.
type ConfigurationError struct {
	Setting string
	Reason  string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error: %s %s", e.Setting, e.Reason)
}

// ErrMissingToken is returned before any fetch when no GitHub token was supplied.
var ErrMissingToken = &ConfigurationError{
	Setting: "NPM_PKG_STATS_TOKEN",
	Reason:  "is not set; a GitHub token is required to query repository statistics",
}

// ErrNoRepository marks a package whose manifest declares no usable repository.
// It is never returned to callers; the aggregator turns it into a warning.
var ErrNoRepository = errors.New("package declares no repository")

// Source names an upstream service.
type Source string

const (
	SourceBundle     Source = "bundle size"
	SourceDownloads  Source = "npm downloads"
	SourceRegistry   Source = "npm registry"
	SourceRepository Source = "github"
)

// UpstreamError is a failed fetch from one of the upstream services.
type UpstreamError struct {
	Source  Source
	Package string
	Err     error
}

func (e *UpstreamError) Error() string {
	return fmt.Sprintf("%s: failed to fetch %s data: %v", e.Package, e.Source, e.Err)
}

func (e *UpstreamError) Unwrap() error { return e.Err }
