package usecase

import (
	"time"

	"github.com/naka-gawa/npm-pkg-stats/internal/domain"
	"github.com/naka-gawa/npm-pkg-stats/internal/format"
)

// BuildRegistryStats converts bundle and download data into the four
// npm-derived statistics. Nil inputs are treated as empty responses.
func BuildRegistryStats(bundle *domain.BundleData, downloads *domain.DownloadData) []domain.Stat {
	if bundle == nil {
		bundle = &domain.BundleData{}
	}
	if downloads == nil {
		downloads = &domain.DownloadData{}
	}
	return []domain.Stat{
		{Label: domain.LabelVersion, Value: format.Text(bundle.Version)},
		{Label: domain.LabelDependencies, Value: format.Count(bundle.DependencyCount)},
		{Label: domain.LabelGzipSize, Value: format.Bytes(bundle.Gzip)},
		{Label: domain.LabelWeeklyDownloads, Value: format.Count(downloads.Downloads)},
	}
}

// BuildRepositoryStats converts repository data into the nine
// repository-derived statistics.
func BuildRepositoryStats(repo *domain.RepositoryData) []domain.Stat {
	if repo == nil {
		repo = &domain.RepositoryData{}
	}
	return []domain.Stat{
		{Label: domain.LabelStars, Value: format.Count(repo.Stars)},
		{Label: domain.LabelOpenPRs, Value: format.Count(repo.OpenPRs)},
		{Label: domain.LabelOpenPRsRatio, Value: format.Percentage(format.Ratio(repo.OpenPRs, repo.ClosedPRs))},
		{Label: domain.LabelClosedPRs, Value: format.Count(repo.ClosedPRs)},
		{Label: domain.LabelOpenIssues, Value: format.Count(repo.OpenIssues)},
		{Label: domain.LabelOpenIssuesRatio, Value: format.Percentage(format.Ratio(repo.OpenIssues, repo.ClosedIssues))},
		{Label: domain.LabelClosedIssues, Value: format.Count(repo.ClosedIssues)},
		{Label: domain.LabelLastRelease, Value: format.Date(lastRelease(repo.Releases))},
		{Label: domain.LabelLicense, Value: format.Text(repo.License)},
	}
}

// lastRelease returns the publish time of the most recent release.
func lastRelease(releases []domain.Release) *time.Time {
	if len(releases) == 0 {
		return nil
	}
	return releases[0].PublishedAt
}
