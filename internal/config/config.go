// Package config loads runtime configuration from the environment.
package config

import (
	"errors"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	// DefaultAPIBaseURL is the GitHub REST API origin.
	DefaultAPIBaseURL = "https://api.github.com/"

	// DefaultRequestTimeout bounds every single API call.
	DefaultRequestTimeout = 15 * time.Second
)

// ErrMissingToken is returned when no GitHub token is configured.
var ErrMissingToken = errors.New("GITHUB_TOKEN is not set")

// Config holds everything the gateway needs to talk to GitHub.
type Config struct {
	GitHubToken    string
	APIBaseURL     string
	RequestTimeout time.Duration
}

// Load reads configuration from the environment. A .env file in the
// working directory is applied first when present. A missing token is
// an error; the caller must not issue any request without one.
func Load() (*Config, error) {
	_ = godotenv.Load()

	token := os.Getenv("GITHUB_TOKEN")
	if token == "" {
		return nil, ErrMissingToken
	}

	return &Config{
		GitHubToken:    token,
		APIBaseURL:     getEnv("GITHUB_API_URL", DefaultAPIBaseURL),
		RequestTimeout: DefaultRequestTimeout,
	}, nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
