package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/naka-gawa/npm-pkg-stats/internal/domain"
)

// RegistryFetcher fetches package data from the npm ecosystem services.
type RegistryFetcher interface {
	FetchBundle(ctx context.Context, pkg string) (*domain.BundleData, error)
	FetchDownloads(ctx context.Context, pkg string) (*domain.DownloadData, error)
	// FetchRepositoryURL returns the repository URL declared in the package
	// manifest, or "" when there is none.
	FetchRepositoryURL(ctx context.Context, pkg string) (string, error)
}

// NPMEndpoints are the base URLs of the npm-side services.
type NPMEndpoints struct {
	Registry  string
	Downloads string
	Bundle    string
}

// NPMGateway is the concrete implementation of the RegistryFetcher interface.
type NPMGateway struct {
	client    *http.Client
	endpoints NPMEndpoints
	logger    *log.Logger
}

var _ RegistryFetcher = (*NPMGateway)(nil)

// NewNPMGateway creates a gateway using client for every request.
func NewNPMGateway(client *http.Client, endpoints NPMEndpoints, logger *log.Logger) *NPMGateway {
	endpoints.Registry = strings.TrimSuffix(endpoints.Registry, "/")
	endpoints.Downloads = strings.TrimSuffix(endpoints.Downloads, "/")
	endpoints.Bundle = strings.TrimSuffix(endpoints.Bundle, "/")
	return &NPMGateway{
		client:    client,
		endpoints: endpoints,
		logger:    logger,
	}
}

func (g *NPMGateway) FetchBundle(ctx context.Context, pkg string) (*domain.BundleData, error) {
	g.logger.Debug("Fetching bundle size", "package", pkg)
	u := fmt.Sprintf("%s/api/size?package=%s", g.endpoints.Bundle, url.QueryEscape(pkg))
	var data domain.BundleData
	if err := getJSON(ctx, g.client, u, &data); err != nil {
		return nil, fmt.Errorf("failed to fetch bundle size: %w", err)
	}
	return &data, nil
}

func (g *NPMGateway) FetchDownloads(ctx context.Context, pkg string) (*domain.DownloadData, error) {
	g.logger.Debug("Fetching weekly downloads", "package", pkg)
	u := fmt.Sprintf("%s/downloads/point/last-week/%s", g.endpoints.Downloads, pkg)
	var data domain.DownloadData
	if err := getJSON(ctx, g.client, u, &data); err != nil {
		return nil, fmt.Errorf("failed to fetch download count: %w", err)
	}
	return &data, nil
}

func (g *NPMGateway) FetchRepositoryURL(ctx context.Context, pkg string) (string, error) {
	g.logger.Debug("Fetching package manifest", "package", pkg)
	u := fmt.Sprintf("%s/%s", g.endpoints.Registry, url.PathEscape(pkg))
	var data registryResponse
	if err := getJSON(ctx, g.client, u, &data); err != nil {
		return "", fmt.Errorf("failed to fetch package manifest: %w", err)
	}

	if v, ok := data.Versions[data.DistTags.Latest]; ok {
		if repo := extractField(v.Repository, "url"); repo != "" {
			return repo, nil
		}
	}
	return extractField(data.Repository, "url"), nil
}

// extractField reads manifest fields that may be either a plain string or an
// object such as {"type": "git", "url": "..."}.
func extractField(v any, field string) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case map[string]any:
		if s, ok := val[field].(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

type registryResponse struct {
	DistTags struct {
		Latest string `json:"latest"`
	} `json:"dist-tags"`
	Versions   map[string]versionDetails `json:"versions"`
	Repository any                       `json:"repository"`
}

type versionDetails struct {
	Repository any `json:"repository"`
}
