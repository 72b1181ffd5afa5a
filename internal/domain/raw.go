package domain

import "time"

// BundleData is the subset of the size-analysis response the application uses.
// Every field is optional.
type BundleData struct {
	Version         *string `json:"version"`
	DependencyCount *int64  `json:"dependencyCount"`
	Gzip            *int64  `json:"gzip"`
}

// DownloadData holds the trailing-week download count of a package.
type DownloadData struct {
	Downloads *int64 `json:"downloads"`
}

// Coordinates identify a repository on the source host.
type Coordinates struct {
	Owner string
	Name  string
}

func (c Coordinates) String() string {
	return c.Owner + "/" + c.Name
}

// Release is a published release of a repository.
type Release struct {
	PublishedAt *time.Time
}

// RepositoryData holds repository metrics. A nil count means the value was
// not present in the response.
type RepositoryData struct {
	OpenIssues   *int64
	ClosedIssues *int64
	OpenPRs      *int64
	ClosedPRs    *int64
	Stars        *int64
	License      *string
	// Releases are ordered most recent first.
	Releases []Release
}
