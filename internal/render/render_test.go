package render

import (
	"bytes"
	"encoding/json"
	"regexp"
	"strings"
	"testing"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/naka-gawa/npm-pkg-stats/internal/domain"
	"github.com/naka-gawa/npm-pkg-stats/internal/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func registryOnly(pkg string) *domain.Record {
	return domain.NewRecord(pkg, []domain.Stat{
		{Label: "version", Value: "1.0.0"},
		{Label: "dependencies", Value: "2"},
		{Label: "gzip size", Value: "1.0 kB"},
		{Label: "weekly npm downloads", Value: "1,234"},
	})
}

func withRepository(pkg string) *domain.Record {
	r := registryOnly(pkg)
	r.Stats = append(r.Stats,
		domain.Stat{Label: "github stars", Value: "10"},
		domain.Stat{Label: "license", Value: "MIT"},
	)
	return r
}

func TestVertical(t *testing.T) {
	got := Vertical(withRepository("react"))

	assert.Equal(t, []string{"package", "react"}, got.Header)
	assert.Equal(t, [][]string{
		{"version", "1.0.0"},
		{"dependencies", "2"},
		{"gzip size", "1.0 kB"},
		{"weekly npm downloads", "1,234"},
		{"github stars", "10"},
		{"license", "MIT"},
	}, got.Rows)
}

func TestComparison(t *testing.T) {
	testCases := []struct {
		name           string
		records        []*domain.Record
		expectedHeader []string
		expectedRows   [][]string
	}{
		{
			name:    "package without repository is padded",
			records: []*domain.Record{registryOnly("lonely"), withRepository("react")},
			expectedHeader: []string{
				"package", "version", "dependencies", "gzip size", "weekly npm downloads", "github stars", "license",
			},
			expectedRows: [][]string{
				{"lonely", "1.0.0", "2", "1.0 kB", "1,234", format.Placeholder, format.Placeholder},
				{"react", "1.0.0", "2", "1.0 kB", "1,234", "10", "MIT"},
			},
		},
		{
			name:    "label order follows the first package that has it",
			records: []*domain.Record{withRepository("react"), registryOnly("lonely")},
			expectedHeader: []string{
				"package", "version", "dependencies", "gzip size", "weekly npm downloads", "github stars", "license",
			},
			expectedRows: [][]string{
				{"react", "1.0.0", "2", "1.0 kB", "1,234", "10", "MIT"},
				{"lonely", "1.0.0", "2", "1.0 kB", "1,234", format.Placeholder, format.Placeholder},
			},
		},
		{
			name: "labels unique to later packages are appended",
			records: []*domain.Record{
				domain.NewRecord("a", []domain.Stat{{Label: "x", Value: "1"}}),
				domain.NewRecord("b", []domain.Stat{{Label: "y", Value: "2"}, {Label: "x", Value: "3"}}),
			},
			expectedHeader: []string{"package", "x", "y"},
			expectedRows: [][]string{
				{"a", "1", format.Placeholder},
				{"b", "3", "2"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Comparison(tc.records)
			assert.Equal(t, tc.expectedHeader, got.Header)
			assert.Equal(t, tc.expectedRows, got.Rows)
		})
	}
}

func TestBuild(t *testing.T) {
	assert.Equal(t, Table{}, Build(nil, 0))
	assert.Equal(t, Table{}, Build(nil, 2))
	assert.Equal(t, []string{"package", "react"}, Build([]*domain.Record{registryOnly("react")}, 1).Header)

	both := Build([]*domain.Record{registryOnly("a"), registryOnly("b")}, 2)
	assert.Equal(t, "package", both.Header[0])
	assert.Len(t, both.Rows, 2)
}

func TestBuild_LayoutFollowsRequestedCount(t *testing.T) {
	// Two packages were requested but only one succeeded.
	got := Build([]*domain.Record{registryOnly("react")}, 2)

	assert.Equal(t, []string{"package", "version", "dependencies", "gzip size", "weekly npm downloads"}, got.Header)
	assert.Equal(t, [][]string{{"react", "1.0.0", "2", "1.0 kB", "1,234"}}, got.Rows)
}

func TestRenderer_Render(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer(false).Render(&buf, Vertical(withRepository("react")))
	require.NoError(t, err)

	out := buf.String()
	// The header keeps its case.
	assert.Regexp(t, regexp.MustCompile(`\|\s*package\s*\|\s*react\s*\|`), out)
	assert.Regexp(t, regexp.MustCompile(`\|\s*weekly npm downloads\s*\|\s*1,234\s*\|`), out)
	assert.Regexp(t, regexp.MustCompile(`\|\s*license\s*\|\s*MIT\s*\|`), out)
	assert.NotContains(t, out, "\x1b[")

	// Every line of the table has the same width.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		assert.Equal(t, len(lines[0]), len(line), line)
	}
}

func TestRenderer_RenderColor(t *testing.T) {
	// go-pretty honours NO_COLOR globally; force colors on for this test.
	text.EnableColors()

	var buf bytes.Buffer
	require.NoError(t, NewRenderer(true).Render(&buf, Vertical(registryOnly("react"))))
	assert.Contains(t, buf.String(), "\x1b[35m")
}

func TestRenderer_RenderEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(false).Render(&buf, Table{}))
	assert.Empty(t, buf.String())
}

func TestRenderer_RenderJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewRenderer(false).RenderJSON(&buf, []*domain.Record{registryOnly("lonely")}))

	var decoded []struct {
		Package string `json:"package"`
		Stats   []struct {
			Label string `json:"label"`
			Value string `json:"value"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)
	assert.Equal(t, "lonely", decoded[0].Package)
	require.Len(t, decoded[0].Stats, 4)
	assert.Equal(t, "version", decoded[0].Stats[0].Label)
	assert.Equal(t, "1.0.0", decoded[0].Stats[0].Value)

	buf.Reset()
	require.NoError(t, NewRenderer(false).RenderJSON(&buf, nil))
	assert.Equal(t, "[]\n", buf.String())
}
