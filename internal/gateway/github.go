// Package gateway provides a gateway to the GitHub REST API,
// wrapping the go-github client with this tool's pagination rules.
package gateway

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/google/go-github/v62/github"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"
)

// perPage is the fixed page size for both feeds.
const perPage = 100

// Fetcher defines the behavior of a gateway for fetching a user's
// public activity data from GitHub.
type Fetcher interface {
	// FetchEvents returns the user's event feed, newest first, fetched
	// page by page until the window bounded by cutoff is covered. The
	// result is a superset of the window: the final page may reach
	// past the cutoff. Exact windowing is the caller's job.
	FetchEvents(ctx context.Context, user string, cutoff time.Time) ([]*github.Event, error)
	// FetchRepos returns every repository owned by the user.
	FetchRepos(ctx context.Context, user string) ([]*github.Repository, error)
}

// GitHubGateway is the concrete implementation of the Fetcher interface.
type GitHubGateway struct {
	client *github.Client
	logger *logrus.Logger
}

var _ Fetcher = (*GitHubGateway)(nil)

// NewGitHubGateway builds a gateway authenticated with the given
// token. Every request carries the bearer token and is bounded by
// timeout. baseURL overrides the API origin (tests point it at a mock
// server); it must end with a slash.
func NewGitHubGateway(token, baseURL string, timeout time.Duration, logger *logrus.Logger) (*GitHubGateway, error) {
	ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
	httpClient := &http.Client{
		Timeout: timeout,
		Transport: &oauth2.Transport{
			Source: ts,
		},
	}
	client := github.NewClient(httpClient)
	if baseURL != "" {
		u, err := url.Parse(baseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid API base URL %q: %w", baseURL, err)
		}
		client.BaseURL = u
	}
	return &GitHubGateway{
		client: client,
		logger: logger,
	}, nil
}

// FetchEvents pages through /users/{user}/events. After appending a
// page it inspects the page's last (oldest) event: once that falls
// strictly before cutoff, no later page can hold an in-window event
// and iteration stops. A short page means the feed itself is
// exhausted; an empty or malformed page ends the feed without
// touching a last element.
//
// The stop rule trusts the API's newest-first ordering. An
// out-of-order feed could end iteration early; no compensation is
// attempted.
func (g *GitHubGateway) FetchEvents(ctx context.Context, user string, cutoff time.Time) ([]*github.Event, error) {
	g.logger.WithFields(logrus.Fields{
		"user":   user,
		"cutoff": cutoff.Format(time.RFC3339),
	}).Debug("fetching events")

	var all []*github.Event
	opts := &github.ListOptions{PerPage: perPage}
	for page := 1; ; page++ {
		opts.Page = page
		events, _, err := g.client.Activity.ListEventsPerformedByUser(ctx, user, false, opts)
		if err != nil {
			if isEndOfData(err) {
				g.logger.WithField("page", page).Debug("non-list event page, treating as end of feed")
				break
			}
			return nil, mapAPIError(err)
		}
		if len(events) == 0 {
			break
		}
		all = append(all, events...)

		oldest := events[len(events)-1].GetCreatedAt().Time
		if oldest.Before(cutoff) || len(events) < perPage {
			break
		}
		g.logger.WithField("page", page+1).Debug("fetching next page of events")
	}

	g.logger.WithField("events", len(all)).Debug("completed fetching events")
	return all, nil
}

// FetchRepos pages through /users/{user}/repos until a page returns
// fewer than perPage items (zero included). Repositories are never
// time-filtered; the full history participates in language stats.
func (g *GitHubGateway) FetchRepos(ctx context.Context, user string) ([]*github.Repository, error) {
	g.logger.WithField("user", user).Debug("fetching repositories")

	var all []*github.Repository
	opts := &github.RepositoryListByUserOptions{
		ListOptions: github.ListOptions{PerPage: perPage},
	}
	for page := 1; ; page++ {
		opts.Page = page
		repos, _, err := g.client.Repositories.ListByUser(ctx, user, opts)
		if err != nil {
			if isEndOfData(err) {
				g.logger.WithField("page", page).Debug("non-list repo page, treating as end of feed")
				break
			}
			return nil, mapAPIError(err)
		}
		all = append(all, repos...)
		if len(repos) < perPage {
			break
		}
		g.logger.WithField("page", page+1).Debug("fetching next page of repositories")
	}

	g.logger.WithField("repos", len(all)).Debug("completed fetching repositories")
	return all, nil
}
