package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/naka-gawa/npm-pkg-stats/internal/domain"
)

// Renderer writes tables and records to an output stream.
type Renderer struct {
	color bool
}

// NewRenderer creates a Renderer. When color is true the header row is
// printed in magenta.
func NewRenderer(color bool) *Renderer {
	return &Renderer{color: color}
}

// Render writes t as a boxed text table. An empty table writes nothing.
func (r *Renderer) Render(w io.Writer, t Table) error {
	if len(t.Header) == 0 {
		return nil
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleDefault)
	tw.Style().Format.Header = text.FormatDefault
	if r.color {
		tw.Style().Color.Header = text.Colors{text.FgMagenta}
	}

	tw.AppendHeader(toRow(t.Header))
	for _, row := range t.Rows {
		tw.AppendRow(toRow(row))
	}

	if _, err := fmt.Fprintln(w, tw.Render()); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}

// RenderJSON writes records as an indented JSON array.
func (r *Renderer) RenderJSON(w io.Writer, records []*domain.Record) error {
	if records == nil {
		records = []*domain.Record{}
	}
	jsonData, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results to JSON: %w", err)
	}
	if _, err := fmt.Fprintln(w, string(jsonData)); err != nil {
		return fmt.Errorf("failed to write JSON: %w", err)
	}
	return nil
}

func toRow(cells []string) table.Row {
	row := make(table.Row, len(cells))
	for i, c := range cells {
		row[i] = c
	}
	return row
}
