// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/naka-gawa/npm-pkg-stats/internal/domain"
	"github.com/naka-gawa/npm-pkg-stats/internal/gateway"
	"golang.org/x/sync/errgroup"
)

// Aggregator is the use case for collecting package stats.
// It orchestrates the fetching, normalizing and merging of data.
type Aggregator struct {
	registry gateway.RegistryFetcher
	repos    gateway.RepositoryFetcher
	logger   *log.Logger
}

// Result is the outcome of one package pipeline. Exactly one of Record and
// Err is set.
type Result struct {
	Package string
	Record  *domain.Record
	Err     error
}

// NewAggregator creates a new Aggregator instance.
func NewAggregator(registry gateway.RegistryFetcher, repos gateway.RepositoryFetcher, logger *log.Logger) *Aggregator {
	return &Aggregator{
		registry: registry,
		repos:    repos,
		logger:   logger,
	}
}

// GetStats collects the statistics of a single package.
// No request is made when token is empty.
func (a *Aggregator) GetStats(ctx context.Context, token, pkg string) (*domain.Record, error) {
	if token == "" {
		return nil, domain.ErrMissingToken
	}
	return a.collect(ctx, token, pkg)
}

// GetAllStats runs one pipeline per package concurrently. A failing package
// does not stop the others; its error is reported in its Result. Results
// follow the order of pkgs.
func (a *Aggregator) GetAllStats(ctx context.Context, token string, pkgs []string) ([]Result, error) {
	if token == "" {
		return nil, domain.ErrMissingToken
	}

	results := make([]Result, len(pkgs))
	var wg sync.WaitGroup
	for i, pkg := range pkgs {
		wg.Go(func() {
			record, err := a.collect(ctx, token, pkg)
			results[i] = Result{Package: pkg, Record: record, Err: err}
		})
	}
	wg.Wait()
	return results, nil
}

func (a *Aggregator) collect(ctx context.Context, token, pkg string) (*domain.Record, error) {
	a.logger.Debug("Usecase: Starting data aggregation...", "package", pkg)

	var bundle *domain.BundleData
	var downloads *domain.DownloadData

	// Both npm-side fetches must succeed before anything is normalized.
	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		var err error
		bundle, err = a.registry.FetchBundle(egCtx, pkg)
		if err != nil {
			return &domain.UpstreamError{Source: domain.SourceBundle, Package: pkg, Err: err}
		}
		return nil
	})

	eg.Go(func() error {
		var err error
		downloads, err = a.registry.FetchDownloads(egCtx, pkg)
		if err != nil {
			return &domain.UpstreamError{Source: domain.SourceDownloads, Package: pkg, Err: err}
		}
		return nil
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	registryStats := BuildRegistryStats(bundle, downloads)

	repoURL, err := a.registry.FetchRepositoryURL(ctx, pkg)
	if err != nil {
		return nil, &domain.UpstreamError{Source: domain.SourceRegistry, Package: pkg, Err: err}
	}
	if repoURL == "" {
		a.warnNoRepository(pkg, domain.ErrNoRepository)
		return domain.NewRecord(pkg, registryStats), nil
	}

	coords, err := gateway.ParseRepositoryURL(repoURL)
	if err != nil {
		a.warnNoRepository(pkg, err)
		return domain.NewRecord(pkg, registryStats), nil
	}

	repo, err := a.repos.FetchRepository(ctx, token, coords)
	if err != nil {
		return nil, &domain.UpstreamError{Source: domain.SourceRepository, Package: pkg, Err: err}
	}

	a.logger.Debug("Usecase: Aggregation complete.", "package", pkg, "repository", coords.String())
	return domain.NewRecord(pkg, registryStats, BuildRepositoryStats(repo)), nil
}

func (a *Aggregator) warnNoRepository(pkg string, reason error) {
	a.logger.Warn("unable to gather stats from GitHub; showing npm stats only", "package", pkg, "reason", reason)
}
