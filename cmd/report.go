// Package cmd contains all the CLI commands for the application,
// built using the Cobra library.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/himekoshi/github-wrapped/internal/config"
	"github.com/himekoshi/github-wrapped/internal/gateway"
	"github.com/himekoshi/github-wrapped/internal/report"
	"github.com/himekoshi/github-wrapped/internal/usecase"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Summarizes a user's GitHub activity as a terminal report",
	Long: `Fetches a user's public events and repositories, aggregates the
activity within the trailing window, and renders a terminal report.`,
	Run: func(cmd *cobra.Command, args []string) {
		ctx := context.Background()

		// Get the verbose flag from the root command to set up the logger.
		verbose, _ := cmd.InheritedFlags().GetBool("verbose")
		logger := logrus.New()
		logger.SetOutput(io.Discard) // Default: discard all logs.
		if verbose {
			logger.SetOutput(os.Stderr) // If verbose, log to standard error.
			logger.SetLevel(logrus.DebugLevel)
		}

		// Get other flags. Flag presence is enforced by cobra; the
		// window size still has to be validated before any I/O.
		username, _ := cmd.Flags().GetString("username")
		days, _ := cmd.Flags().GetInt("days")
		chartPath, _ := cmd.Flags().GetString("chart")
		if days <= 0 {
			fatal("Days must be a positive integer.")
		}

		cfg, err := config.Load()
		if err != nil {
			fatal("Missing GITHUB_TOKEN. Set it in the environment or a .env file.")
		}

		// Inject dependencies and run the main business logic.
		githubGateway, err := gateway.NewGitHubGateway(cfg.GitHubToken, cfg.APIBaseURL, cfg.RequestTimeout, logger)
		if err != nil {
			fatal(fmt.Sprintf("Failed to create GitHub gateway: %v", err))
		}
		summarizer := usecase.NewSummarizer(githubGateway, logger)

		summary, err := summarizer.Summarize(ctx, username, days, time.Now().UTC())
		if err != nil {
			logger.WithError(err).Debug("summary failed")
			fatal(userMessage(err))
		}

		renderer := report.NewRenderer(os.Stdout)
		if err := renderer.Render(summary); err != nil {
			fatal(fmt.Sprintf("Failed to render report: %v", err))
		}

		if chartPath != "" {
			if err := report.WriteDailyChart(chartPath, summary); err != nil {
				fatal(fmt.Sprintf("Failed to write chart: %v", err))
			}
			pterm.Info.Printfln("Wrote daily activity chart to %s", chartPath)
		}
	},
}

// fatal prints a user-facing error message and aborts the run with a
// non-zero status. No partial report survives a fatal error.
func fatal(msg string) {
	pterm.Error.Println(msg)
	os.Exit(1)
}

// userMessage maps a fetch error onto the message shown to the user.
// The full wrapped cause is only visible in verbose logs.
func userMessage(err error) string {
	switch {
	case errors.Is(err, gateway.ErrUserNotFound):
		return "User not found."
	case errors.Is(err, gateway.ErrAuthOrRateLimit):
		return "Authentication failed or API rate limit exceeded."
	case errors.Is(err, gateway.ErrServer):
		return "GitHub server error. Try again later."
	default:
		return fmt.Sprintf("Network error: %v", err)
	}
}

func init() {
	rootCmd.AddCommand(reportCmd)
	reportCmd.Flags().StringP("username", "u", "", "Target GitHub user name (required)")
	reportCmd.Flags().IntP("days", "d", 0, "Time window in days (required, positive)")
	reportCmd.Flags().String("chart", "", "Write an HTML chart of daily activity to this file")
	reportCmd.MarkFlagRequired("username")
	reportCmd.MarkFlagRequired("days")
}
