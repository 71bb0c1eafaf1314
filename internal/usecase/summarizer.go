// Package usecase contains the business logic of the application.
package usecase

import (
	"context"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/himekoshi/github-wrapped/internal/domain"
	"github.com/himekoshi/github-wrapped/internal/gateway"
)

// dayLayout is the histogram key format: the date portion of the
// event timestamp, UTC.
const dayLayout = "2006-01-02"

// Event actions that feed the typed counters.
const (
	actionOpened = "opened"
	actionClosed = "closed"
)

// Summarizer is the use case that turns a user's raw GitHub activity
// into a report summary. It orchestrates the fetching, windowing and
// folding of data.
type Summarizer struct {
	fetcher gateway.Fetcher
	logger  *logrus.Logger
}

// NewSummarizer creates a new Summarizer instance.
func NewSummarizer(fetcher gateway.Fetcher, logger *logrus.Logger) *Summarizer {
	return &Summarizer{
		fetcher: fetcher,
		logger:  logger,
	}
}

// Summarize fetches the user's events and repositories concurrently,
// narrows the events to the trailing window of days anchored at now,
// and folds both feeds into a Summary. The two fetches are
// independent; the first error cancels the sibling and fails the
// whole run with no partial result.
func (s *Summarizer) Summarize(ctx context.Context, user string, days int, now time.Time) (*domain.Summary, error) {
	cutoff := now.Add(-time.Duration(days) * 24 * time.Hour)
	s.logger.WithFields(logrus.Fields{
		"user":   user,
		"days":   days,
		"cutoff": cutoff.Format(time.RFC3339),
	}).Debug("starting summary")

	var events []*github.Event
	var repos []*github.Repository

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		var err error
		events, err = s.fetcher.FetchEvents(egCtx, user, cutoff)
		return err
	})

	eg.Go(func() error {
		var err error
		repos, err = s.fetcher.FetchRepos(egCtx, user)
		return err
	})

	if err := eg.Wait(); err != nil {
		return nil, err
	}

	windowed := FilterByWindow(events, cutoff)
	s.logger.WithFields(logrus.Fields{
		"fetched":   len(events),
		"in_window": len(windowed),
		"repos":     len(repos),
	}).Debug("all data fetched")

	return &domain.Summary{
		Username:  user,
		Days:      days,
		Activity:  AggregateActivity(windowed),
		Languages: AggregateLanguages(repos),
	}, nil
}

// FilterByWindow returns the events created at or after cutoff,
// preserving relative order. The boundary is inclusive and the window
// is unbounded toward the present, so events timestamped in the
// future stay in.
func FilterByWindow(events []*github.Event, cutoff time.Time) []*github.Event {
	filtered := make([]*github.Event, 0, len(events))
	for _, ev := range events {
		if !ev.GetCreatedAt().Time.Before(cutoff) {
			filtered = append(filtered, ev)
		}
	}
	return filtered
}

// AggregateActivity folds the filtered events into counters in a
// single pass. Every event counts toward the total and both
// histograms. Unknown event kinds and unparsable payloads are
// tolerated; they just leave the typed counters alone.
func AggregateActivity(events []*github.Event) *domain.ActivityStats {
	s := domain.NewActivityStats()
	for _, ev := range events {
		s.TotalEvents++
		s.EventsPerRepo[ev.GetRepo().GetName()]++
		s.EventsPerDay[ev.GetCreatedAt().Time.UTC().Format(dayLayout)]++

		payload, err := ev.ParsePayload()
		if err != nil {
			continue
		}
		switch p := payload.(type) {
		case *github.PushEvent:
			// A push with no size field contributes zero commits.
			s.Commits += p.GetSize()
		case *github.PullRequestEvent:
			switch p.GetAction() {
			case actionOpened:
				s.PRsOpened++
			case actionClosed:
				// Closed-but-unmerged PRs increment neither counter.
				if p.GetPullRequest().GetMerged() {
					s.PRsMerged++
				}
			}
		case *github.IssuesEvent:
			if p.GetAction() == actionOpened {
				s.IssuesOpened++
			}
		}
	}
	return s
}

// AggregateLanguages counts repositories per primary language.
// Repositories with no recorded language are skipped entirely rather
// than lumped into an "unknown" bucket.
func AggregateLanguages(repos []*github.Repository) domain.LanguageStats {
	langs := make(domain.LanguageStats)
	for _, repo := range repos {
		if lang := repo.GetLanguage(); lang != "" {
			langs[lang]++
		}
	}
	return langs
}
