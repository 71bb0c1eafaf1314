package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "ghp_testtoken")
	t.Setenv("GITHUB_API_URL", "")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "ghp_testtoken", cfg.GitHubToken)
	assert.Equal(t, DefaultAPIBaseURL, cfg.APIBaseURL)
	assert.Equal(t, DefaultRequestTimeout, cfg.RequestTimeout)
}

func TestLoad_APIBaseURLOverride(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "ghp_testtoken")
	t.Setenv("GITHUB_API_URL", "http://localhost:8080/")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/", cfg.APIBaseURL)
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("GITHUB_TOKEN", "")

	cfg, err := Load()

	assert.Nil(t, cfg)
	assert.ErrorIs(t, err, ErrMissingToken)
}
