// Package gateway provides access to the upstream services: the npm registry,
// the npm downloads API, the bundle size service and the GitHub GraphQL API.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gofri/go-github-ratelimit/github_ratelimit"
	"github.com/naka-gawa/npm-pkg-stats/internal/domain"
	"github.com/shurcooL/githubv4"
	"golang.org/x/oauth2"
)

// RepositoryFetcher fetches repository metrics from the source host.
type RepositoryFetcher interface {
	FetchRepository(ctx context.Context, token string, coords domain.Coordinates) (*domain.RepositoryData, error)
}

// GitHubGateway is the concrete implementation of the RepositoryFetcher interface.
// It holds no credentials; the token is supplied with each call.
type GitHubGateway struct {
	endpoint string
	base     http.RoundTripper
	timeout  time.Duration
	logger   *log.Logger
}

var _ RepositoryFetcher = (*GitHubGateway)(nil)

type totalCount struct {
	TotalCount *int64
}

// repositoryQuery is sent as:
//
//	query($name: String!, $owner: String!) {
//	  repository(owner: $owner, name: $name) {
//	    openIssues: issues(filterBy: {states: [OPEN]}) { totalCount }
//	    closedIssues: issues(filterBy: {states: [CLOSED]}) { totalCount }
//	    openPRs: pullRequests(states: [OPEN]) { totalCount }
//	    closedPRs: pullRequests(states: [CLOSED]) { totalCount }
//	    stargazers { totalCount }
//	    licenseInfo { name }
//	    releases(last: 1) { nodes { publishedAt } }
//	  }
//	}
type repositoryQuery struct {
	Repository struct {
		OpenIssues   totalCount `graphql:"openIssues: issues(filterBy: {states: [OPEN]})"`
		ClosedIssues totalCount `graphql:"closedIssues: issues(filterBy: {states: [CLOSED]})"`
		OpenPRs      totalCount `graphql:"openPRs: pullRequests(states: [OPEN])"`
		ClosedPRs    totalCount `graphql:"closedPRs: pullRequests(states: [CLOSED])"`
		Stargazers   totalCount
		LicenseInfo  struct {
			Name *string
		}
		Releases struct {
			Nodes []struct {
				PublishedAt *githubv4.DateTime
			}
		} `graphql:"releases(last: 1)"`
	} `graphql:"repository(owner: $owner, name: $name)"`
}

// NewGitHubGateway is a constructor that creates a new instance of GitHubGateway
// talking to the GraphQL endpoint.
func NewGitHubGateway(endpoint string, timeout time.Duration, logger *log.Logger) (*GitHubGateway, error) {
	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Minute, nil))
	if err != nil {
		return nil, fmt.Errorf("failed to create rate limit waiter: %w", err)
	}
	return &GitHubGateway{
		endpoint: endpoint,
		base:     rateLimitWaiter,
		timeout:  timeout,
		logger:   logger,
	}, nil
}

// client builds a GraphQL client authenticating with token.
func (g *GitHubGateway) client(token string) *githubv4.Client {
	httpClient := &http.Client{
		Timeout: g.timeout,
		Transport: &oauth2.Transport{
			Base:   g.base,
			Source: oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}),
		},
	}
	return githubv4.NewEnterpriseClient(g.endpoint, httpClient)
}

// FetchRepository queries issue, pull request, star, license and release data
// for the repository at coords.
func (g *GitHubGateway) FetchRepository(ctx context.Context, token string, coords domain.Coordinates) (*domain.RepositoryData, error) {
	g.logger.Debug("Fetching repository data", "repository", coords.String())
	variables := map[string]interface{}{
		"owner": githubv4.String(coords.Owner),
		"name":  githubv4.String(coords.Name),
	}

	var q repositoryQuery
	if err := g.client(token).Query(ctx, &q, variables); err != nil {
		return nil, fmt.Errorf("failed to execute GraphQL query for %s: %w", coords, err)
	}

	repo := q.Repository
	data := &domain.RepositoryData{
		OpenIssues:   repo.OpenIssues.TotalCount,
		ClosedIssues: repo.ClosedIssues.TotalCount,
		OpenPRs:      repo.OpenPRs.TotalCount,
		ClosedPRs:    repo.ClosedPRs.TotalCount,
		Stars:        repo.Stargazers.TotalCount,
		License:      repo.LicenseInfo.Name,
	}
	for _, node := range repo.Releases.Nodes {
		var published *time.Time
		if node.PublishedAt != nil {
			t := node.PublishedAt.Time
			published = &t
		}
		data.Releases = append(data.Releases, domain.Release{PublishedAt: published})
	}
	g.logger.Debug("Completed fetching repository data", "repository", coords.String())
	return data, nil
}
