// Package domain contains the core data structures and domain logic for the application.
package domain

// Labels of the registry-derived statistics, in display order.
const (
	LabelVersion         = "version"
	LabelDependencies    = "dependencies"
	LabelGzipSize        = "gzip size"
	LabelWeeklyDownloads = "weekly npm downloads"
)

// Labels of the repository-derived statistics, in display order.
const (
	LabelStars           = "github stars"
	LabelOpenPRs         = "open PRs"
	LabelOpenPRsRatio    = "open PRs (% of total)"
	LabelClosedPRs       = "closed PRs"
	LabelOpenIssues      = "open issues"
	LabelOpenIssuesRatio = "open issues (% of total)"
	LabelClosedIssues    = "closed issues"
	LabelLastRelease     = "last release"
	LabelLicense         = "license"
)

// Stat is a single labelled, already formatted statistic.
type Stat struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Record holds the display statistics for a single package.
// It is the core domain entity of this application.
// Stats keep the order in which they were computed.
type Record struct {
	Package string `json:"package"`
	Stats   []Stat `json:"stats"`
}

// NewRecord creates a Record for pkg from one or more groups of stats.
func NewRecord(pkg string, groups ...[]Stat) *Record {
	r := &Record{Package: pkg}
	for _, g := range groups {
		r.Stats = append(r.Stats, g...)
	}
	return r
}

// Value returns the value stored under label.
func (r *Record) Value(label string) (string, bool) {
	for _, s := range r.Stats {
		if s.Label == label {
			return s.Value, true
		}
	}
	return "", false
}

// Labels returns the labels of the record in order.
func (r *Record) Labels() []string {
	labels := make([]string, len(r.Stats))
	for i, s := range r.Stats {
		labels[i] = s.Label
	}
	return labels
}
