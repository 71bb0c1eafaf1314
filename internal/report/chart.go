package report

import (
	"fmt"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/himekoshi/github-wrapped/internal/domain"
)

// WriteDailyChart writes an HTML bar chart of the per-day event
// histogram to path. Days are ordered chronologically; days with no
// events are absent from the histogram and so from the chart.
func WriteDailyChart(path string, summary *domain.Summary) error {
	days := make([]string, 0, len(summary.Activity.EventsPerDay))
	for day := range summary.Activity.EventsPerDay {
		days = append(days, day)
	}
	sort.Strings(days)

	data := make([]opts.BarData, 0, len(days))
	for _, day := range days {
		data = append(data, opts.BarData{Value: summary.Activity.EventsPerDay[day]})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle:       "GitHub activity",
			BackgroundColor: "transparent",
		}),
		charts.WithTitleOpts(opts.Title{
			Title: fmt.Sprintf("%s: events per day (last %d days)", summary.Username, summary.Days),
		}),
	)
	bar.SetXAxis(days).AddSeries("events", data)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create chart file: %w", err)
	}
	defer f.Close()

	return bar.Render(f)
}
