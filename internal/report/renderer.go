// Package report renders a finished summary for the terminal.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/pterm/pterm"

	"github.com/himekoshi/github-wrapped/internal/domain"
)

const (
	topRepoCount     = 5
	topLanguageCount = 10

	// eventFeedRetentionDays is roughly how long GitHub keeps public
	// events available on the feed.
	eventFeedRetentionDays = 90
)

// Renderer writes the terminal report. Every pterm component is
// rendered to a string and written to out, so tests can capture the
// whole report from a buffer.
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a Renderer writing to out.
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// Render prints the full activity report for the summary. A window
// with zero events gets an explicit empty-history notice instead of
// the summary block, so it cannot be mistaken for an error.
func (r *Renderer) Render(summary *domain.Summary) error {
	fmt.Fprintln(r.out, pterm.DefaultHeader.Sprintf(
		"GitHub Activity Report: %s (last %d days)", summary.Username, summary.Days))

	if summary.Activity.TotalEvents == 0 {
		notice := "No activity found in this period.\n" +
			"Note: the GitHub API only provides public events from the last 90 days."
		fmt.Fprintln(r.out, pterm.DefaultBox.WithTitle("Empty History").Sprint(notice))
		return nil
	}

	if err := r.renderSummary(summary.Activity); err != nil {
		return err
	}
	if err := r.renderTopRepos(summary.Activity); err != nil {
		return err
	}
	if err := r.renderLanguages(summary.Languages); err != nil {
		return err
	}

	if summary.Days > eventFeedRetentionDays {
		fmt.Fprintln(r.out, pterm.Info.Sprint(
			"GitHub only stores public events for 90 days. Results for older periods may be incomplete."))
	}
	return nil
}

func (r *Renderer) renderSummary(activity *domain.ActivityStats) error {
	rows := pterm.TableData{
		{"Total Events", strconv.Itoa(activity.TotalEvents)},
		{"Total Commits", strconv.Itoa(activity.Commits)},
		{"PRs Opened", strconv.Itoa(activity.PRsOpened)},
		{"PRs Merged", strconv.Itoa(activity.PRsMerged)},
		{"Issues Opened", strconv.Itoa(activity.IssuesOpened)},
	}
	if day, count, ok := activity.BusiestDay(); ok {
		rows = append(rows, []string{"Busiest Day", fmt.Sprintf("%s (%d events)", day, count)})
	}
	if mean, median, ok := activity.MeanMedianPerDay(); ok {
		rows = append(rows, []string{"Events per Active Day", fmt.Sprintf("mean %.1f / median %.1f", mean, median)})
	}

	table, err := pterm.DefaultTable.WithData(rows).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, pterm.DefaultBox.WithTitle("Activity Summary").Sprint(table))
	return nil
}

func (r *Renderer) renderTopRepos(activity *domain.ActivityStats) error {
	top := activity.TopRepos(topRepoCount)
	if len(top) == 0 {
		return nil
	}
	rows := pterm.TableData{{"#", "Repository", "Events"}}
	for i, repo := range top {
		rows = append(rows, []string{strconv.Itoa(i + 1), repo.Name, strconv.Itoa(repo.Count)})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, pterm.DefaultSection.Sprintf("Top %d Repositories", topRepoCount))
	fmt.Fprintln(r.out, table)
	return nil
}

// renderLanguages is skipped entirely when no repository has a
// recorded language.
func (r *Renderer) renderLanguages(languages domain.LanguageStats) error {
	top := languages.Top(topLanguageCount)
	if len(top) == 0 {
		return nil
	}
	rows := pterm.TableData{{"Language", "Repos"}}
	for _, lang := range top {
		rows = append(rows, []string{lang.Name, strconv.Itoa(lang.Count)})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
	if err != nil {
		return err
	}
	fmt.Fprintln(r.out, pterm.DefaultSection.Sprint("Language Usage (All Repos)"))
	fmt.Fprintln(r.out, table)
	return nil
}
