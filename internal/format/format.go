// Package format turns raw statistic values into display strings.
// Every formatter is total: absent input yields Placeholder.
package format

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/montanaflynn/stats"
)

// Placeholder is shown for any statistic that could not be determined.
const Placeholder = "--"

const dateLayout = "2006-01-02"

// Optional formats v with f, or returns Placeholder when v is nil.
func Optional[T any](v *T, f func(T) string) string {
	if v == nil {
		return Placeholder
	}
	return f(*v)
}

// Size is a byte count scaled to a display unit.
type Size struct {
	Magnitude float64
	Unit      string
}

// ClassifySize picks the unit for a byte count by its order of magnitude.
// Values below 1000 stay in bytes, values below one million are shown in kB
// and anything larger in mB. Non-positive values are 0 B.
func ClassifySize(bytes int64) Size {
	if bytes <= 0 {
		return Size{Magnitude: 0, Unit: "B"}
	}
	switch {
	case bytes < 1_000:
		return Size{Magnitude: float64(bytes), Unit: "B"}
	case bytes < 1_000_000:
		return Size{Magnitude: float64(bytes) / 1024, Unit: "kB"}
	default:
		return Size{Magnitude: float64(bytes) / 1024 / 1024, Unit: "mB"}
	}
}

// String renders the size with one decimal place, e.g. "10.3 kB".
func (s Size) String() string {
	m, err := stats.Round(s.Magnitude, 1)
	if err != nil {
		m = s.Magnitude
	}
	return fmt.Sprintf("%.1f %s", m, s.Unit)
}

// Bytes formats an optional byte count as a Size.
func Bytes(n *int64) string {
	return Optional(n, func(v int64) string { return ClassifySize(v).String() })
}

// Ratio returns open / (open + closed). It is nil when either count is
// missing or both are zero.
func Ratio(open, closed *int64) *float64 {
	if open == nil || closed == nil {
		return nil
	}
	total := *open + *closed
	if total == 0 {
		return nil
	}
	r := float64(*open) / float64(total)
	return &r
}

// Percentage renders a fraction as a percentage with two decimals.
func Percentage(fraction *float64) string {
	return Optional(fraction, func(f float64) string {
		return fmt.Sprintf("%.2f%%", f*100)
	})
}

// Count renders an integer with thousands separators.
func Count(n *int64) string {
	return Optional(n, humanize.Comma)
}

// Date renders a timestamp as a UTC calendar date.
func Date(t *time.Time) string {
	return Optional(t, func(v time.Time) string { return v.UTC().Format(dateLayout) })
}

// Text returns s itself, or Placeholder when s is nil or empty.
func Text(s *string) string {
	if s == nil || *s == "" {
		return Placeholder
	}
	return *s
}
