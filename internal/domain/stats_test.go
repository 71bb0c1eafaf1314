package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestActivityStats_BusiestDay(t *testing.T) {
	testCases := []struct {
		name          string
		eventsPerDay  map[string]int
		expectedDay   string
		expectedCount int
		expectedOK    bool
	}{
		{
			name:          "strict maximum wins",
			eventsPerDay:  map[string]int{"2024-01-01": 2, "2024-01-02": 5, "2024-01-03": 1},
			expectedDay:   "2024-01-02",
			expectedCount: 5,
			expectedOK:    true,
		},
		{
			name:          "tie goes to the lexicographically smallest date",
			eventsPerDay:  map[string]int{"2024-01-03": 4, "2024-01-01": 4, "2024-01-02": 4},
			expectedDay:   "2024-01-01",
			expectedCount: 4,
			expectedOK:    true,
		},
		{
			name:         "empty histogram produces no busiest day",
			eventsPerDay: map[string]int{},
			expectedOK:   false,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			stats := NewActivityStats()
			stats.EventsPerDay = tc.eventsPerDay

			day, count, ok := stats.BusiestDay()

			assert.Equal(t, tc.expectedOK, ok)
			if tc.expectedOK {
				assert.Equal(t, tc.expectedDay, day)
				assert.Equal(t, tc.expectedCount, count)
			}
		})
	}
}

func TestActivityStats_TopRepos(t *testing.T) {
	stats := NewActivityStats()
	stats.EventsPerRepo = map[string]int{
		"octo/zeta":  3,
		"octo/alpha": 3,
		"octo/busy":  9,
		"octo/quiet": 1,
	}

	top := stats.TopRepos(3)

	// Count descending, name ascending on ties, truncated to n.
	assert.Equal(t, []NamedCount{
		{Name: "octo/busy", Count: 9},
		{Name: "octo/alpha", Count: 3},
		{Name: "octo/zeta", Count: 3},
	}, top)
}

func TestActivityStats_TopRepos_FewerThanN(t *testing.T) {
	stats := NewActivityStats()
	stats.EventsPerRepo = map[string]int{"octo/app": 2}

	assert.Equal(t, []NamedCount{{Name: "octo/app", Count: 2}}, stats.TopRepos(5))
	assert.Empty(t, NewActivityStats().TopRepos(5))
}

func TestActivityStats_MeanMedianPerDay(t *testing.T) {
	stats := NewActivityStats()
	stats.EventsPerDay = map[string]int{
		"2024-01-01": 1,
		"2024-01-02": 2,
		"2024-01-03": 6,
	}

	mean, median, ok := stats.MeanMedianPerDay()

	require.True(t, ok)
	assert.InDelta(t, 3.0, mean, 1e-9)
	assert.InDelta(t, 2.0, median, 1e-9)
}

func TestActivityStats_MeanMedianPerDay_Empty(t *testing.T) {
	_, _, ok := NewActivityStats().MeanMedianPerDay()
	assert.False(t, ok)
}

func TestLanguageStats_Top(t *testing.T) {
	langs := LanguageStats{
		"Go":         4,
		"Rust":       4,
		"TypeScript": 7,
		"Python":     1,
	}

	top := langs.Top(10)

	assert.Equal(t, []NamedCount{
		{Name: "TypeScript", Count: 7},
		{Name: "Go", Count: 4},
		{Name: "Rust", Count: 4},
		{Name: "Python", Count: 1},
	}, top)
}
