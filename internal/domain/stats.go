// Package domain contains the core data structures and domain logic for the application.
package domain

import (
	"sort"

	"github.com/montanaflynn/stats"
)

// ActivityStats holds the aggregated activity counters for one user
// over one time window. It is the core domain entity of this application.
//
// TotalEvents is the exact size of the filtered event set, not a sum
// recomputed from the histograms. Histogram entries only exist for
// keys that were actually seen, so counts are always positive.
type ActivityStats struct {
	TotalEvents   int            `json:"total_events"`
	Commits       int            `json:"commits"`
	PRsOpened     int            `json:"prs_opened"`
	PRsMerged     int            `json:"prs_merged"`
	IssuesOpened  int            `json:"issues_opened"`
	EventsPerRepo map[string]int `json:"events_per_repo"`
	EventsPerDay  map[string]int `json:"events_per_day"`
}

// NewActivityStats returns an empty record with initialized histograms.
func NewActivityStats() *ActivityStats {
	return &ActivityStats{
		EventsPerRepo: make(map[string]int),
		EventsPerDay:  make(map[string]int),
	}
}

// NamedCount pairs a histogram key with its count.
type NamedCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// BusiestDay returns the day with the strictly highest event count.
// Ties go to the lexicographically smallest date, which for
// YYYY-MM-DD keys is also the earliest. ok is false when the
// histogram is empty.
func (s *ActivityStats) BusiestDay() (day string, count int, ok bool) {
	for d, c := range s.EventsPerDay {
		if c > count || (c == count && (day == "" || d < day)) {
			day, count = d, c
		}
	}
	return day, count, day != ""
}

// TopRepos returns up to n repositories ordered by event count
// descending, name ascending on ties.
func (s *ActivityStats) TopRepos(n int) []NamedCount {
	return topCounts(s.EventsPerRepo, n)
}

// MeanMedianPerDay reports the mean and median number of events per
// active day. Days without any events never enter the histogram and
// do not dilute the result. ok is false when the histogram is empty.
func (s *ActivityStats) MeanMedianPerDay() (mean, median float64, ok bool) {
	if len(s.EventsPerDay) == 0 {
		return 0, 0, false
	}
	values := make([]float64, 0, len(s.EventsPerDay))
	for _, c := range s.EventsPerDay {
		values = append(values, float64(c))
	}
	var err error
	if mean, err = stats.Mean(values); err != nil {
		return 0, 0, false
	}
	if median, err = stats.Median(values); err != nil {
		return 0, 0, false
	}
	return mean, median, true
}

// LanguageStats counts repositories per primary language. Repositories
// without a recorded language are not represented at all.
type LanguageStats map[string]int

// Top returns up to n languages ordered by repository count
// descending, name ascending on ties.
func (l LanguageStats) Top(n int) []NamedCount {
	return topCounts(l, n)
}

func topCounts(histogram map[string]int, n int) []NamedCount {
	counts := make([]NamedCount, 0, len(histogram))
	for name, count := range histogram {
		counts = append(counts, NamedCount{Name: name, Count: count})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Name < counts[j].Name
	})
	if n < len(counts) {
		counts = counts[:n]
	}
	return counts
}

// Summary is the finished report input: one user's activity and
// language usage over one window. It is built fresh per run and
// handed to the renderer as-is.
type Summary struct {
	Username  string         `json:"username"`
	Days      int            `json:"days"`
	Activity  *ActivityStats `json:"activity"`
	Languages LanguageStats  `json:"languages"`
}
