// Package render lays out package statistics as tables.
//
// A single package is shown vertically: a "package" header with the package
// name, followed by one label/value row per statistic.
//
// Several packages are shown as a comparison table. The header row is
// "package" followed by the union of all labels in first-seen order, and each
// package forms one row whose first cell is the package name. Labels a package
// does not have (for example the GitHub fields of a package without a
// repository) are filled with the placeholder.
package render

import (
	"github.com/naka-gawa/npm-pkg-stats/internal/domain"
	"github.com/naka-gawa/npm-pkg-stats/internal/format"
)

// PackageHeader is the title of the package column.
const PackageHeader = "package"

// Table is a grid of display cells, independent of the output format.
type Table struct {
	Header []string
	Rows   [][]string
}

// Build picks the layout from the number of requested packages: vertical for
// one and comparison for two or more. The layout does not change when some
// packages failed and are missing from records. No records yield an empty
// table.
func Build(records []*domain.Record, requested int) Table {
	switch {
	case len(records) == 0:
		return Table{}
	case requested <= 1 && len(records) == 1:
		return Vertical(records[0])
	default:
		return Comparison(records)
	}
}

// Vertical lays out a single record as label/value rows.
func Vertical(r *domain.Record) Table {
	t := Table{Header: []string{PackageHeader, r.Package}}
	for _, s := range r.Stats {
		t.Rows = append(t.Rows, []string{s.Label, s.Value})
	}
	return t
}

// Comparison lays out records side by side, one row per record.
func Comparison(records []*domain.Record) Table {
	labels := UnionLabels(records)
	t := Table{Header: append([]string{PackageHeader}, labels...)}
	for _, r := range records {
		row := make([]string, 0, len(labels)+1)
		row = append(row, r.Package)
		for _, label := range labels {
			v, ok := r.Value(label)
			if !ok {
				v = format.Placeholder
			}
			row = append(row, v)
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}

// UnionLabels returns every label used by records without duplicates, in the
// order they are first seen.
func UnionLabels(records []*domain.Record) []string {
	seen := make(map[string]struct{})
	var labels []string
	for _, r := range records {
		for _, s := range r.Stats {
			if _, ok := seen[s.Label]; ok {
				continue
			}
			seen[s.Label] = struct{}{}
			labels = append(labels, s.Label)
		}
	}
	return labels
}
