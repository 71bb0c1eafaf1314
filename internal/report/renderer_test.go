package report

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/himekoshi/github-wrapped/internal/domain"
)

func init() {
	// Plain output so assertions can match on substrings.
	pterm.DisableStyling()
}

func testSummary() *domain.Summary {
	activity := domain.NewActivityStats()
	activity.TotalEvents = 6
	activity.Commits = 4
	activity.PRsOpened = 1
	activity.PRsMerged = 1
	activity.IssuesOpened = 2
	activity.EventsPerRepo = map[string]int{"octo/app": 4, "octo/lib": 2}
	activity.EventsPerDay = map[string]int{"2024-01-01": 2, "2024-01-02": 4}

	return &domain.Summary{
		Username:  "octo",
		Days:      7,
		Activity:  activity,
		Languages: domain.LanguageStats{"Go": 3, "Rust": 1},
	}
}

func TestRenderer_Render(t *testing.T) {
	var buf bytes.Buffer
	err := NewRenderer(&buf).Render(testSummary())
	require.NoError(t, err)
	out := buf.String()

	assert.Contains(t, out, "octo (last 7 days)")
	assert.Contains(t, out, "Activity Summary")
	assert.Contains(t, out, "Total Commits")
	assert.Contains(t, out, "Busiest Day")
	assert.Contains(t, out, "2024-01-02 (4 events)")
	assert.Contains(t, out, "Top 5 Repositories")
	assert.Contains(t, out, "octo/app")
	assert.Contains(t, out, "Language Usage (All Repos)")
	assert.Contains(t, out, "Go")
	// In-range window carries no retention caveat.
	assert.NotContains(t, out, "older periods may be incomplete")
}

func TestRenderer_Render_EmptyWindow(t *testing.T) {
	summary := testSummary()
	summary.Activity = domain.NewActivityStats()

	var buf bytes.Buffer
	err := NewRenderer(&buf).Render(summary)
	require.NoError(t, err)
	out := buf.String()

	// The empty-history notice replaces the whole report body; it must
	// read as "nothing happened", not as an error.
	assert.Contains(t, out, "No activity found in this period.")
	assert.Contains(t, out, "last 90 days")
	assert.NotContains(t, out, "Activity Summary")
	assert.NotContains(t, out, "Top 5 Repositories")
	assert.NotContains(t, out, "Language Usage")
}

func TestRenderer_Render_WideWindowCaveat(t *testing.T) {
	summary := testSummary()
	summary.Days = 365

	var buf bytes.Buffer
	err := NewRenderer(&buf).Render(summary)
	require.NoError(t, err)

	assert.Contains(t, buf.String(), "Results for older periods may be incomplete.")
}

func TestRenderer_Render_NoLanguages(t *testing.T) {
	summary := testSummary()
	summary.Languages = domain.LanguageStats{}

	var buf bytes.Buffer
	err := NewRenderer(&buf).Render(summary)
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "Language Usage")
}

func TestWriteDailyChart(t *testing.T) {
	path := filepath.Join(t.TempDir(), "activity.html")

	err := WriteDailyChart(path, testSummary())
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "echarts")
	assert.Contains(t, string(content), "2024-01-01")
}
