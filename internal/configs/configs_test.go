package configs

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "output", cfg.OutputDir)
	assert.Equal(t, 14, cfg.LookbackDays)
	assert.Len(t, cfg.Categories, 9)
	assert.NotEmpty(t, cfg.GitHub.Queries)
	assert.NotEmpty(t, cfg.Helius.Programs)
	assert.NotEmpty(t, cfg.Helius.Stablecoins)
	assert.Equal(t, "SOLUSDT", cfg.Market.Symbol)

	for _, cat := range cfg.Categories {
		assert.NotEmpty(t, cat.ID)
		assert.NotEmpty(t, cat.Name)
		assert.NotEmpty(t, cat.Keywords, "category %s needs keywords to match anything", cat.ID)
		assert.NotEmpty(t, cat.BaseWhy)
		assert.GreaterOrEqual(t, cat.Boost, 0)
		assert.LessOrEqual(t, cat.Boost, 10)
	}
}

func TestLoadWithoutFile(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default().OutputDir, cfg.OutputDir)
}

func TestLoadYAMLOverlay(t *testing.T) {
	t.Setenv("GITHUB_ACCESS_TOKEN", "")

	path := filepath.Join(t.TempDir(), "radar.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
output_dir: /tmp/reports
lookback_days: 7
github:
  token: from-file
  limit: 5
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/tmp/reports", cfg.OutputDir)
	assert.Equal(t, 7, cfg.LookbackDays)
	assert.Equal(t, "from-file", cfg.GitHub.Token)
	assert.Equal(t, 5, cfg.GitHub.Limit)
	assert.Len(t, cfg.Categories, 9, "untouched sections keep their defaults")
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("GITHUB_ACCESS_TOKEN", "gh-token")
	t.Setenv("HELIUS_API_KEY", "helius-key")
	t.Setenv("OPENAI_API_KEY", "openai-key")

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "gh-token", cfg.GitHub.Token)
	assert.Equal(t, "helius-key", cfg.Helius.APIKey)
	assert.Equal(t, "openai-key", cfg.AI.APIKey)
}

func TestLoadEnvBeatsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radar.yaml")
	require.NoError(t, os.WriteFile(path, []byte("github:\n  token: from-file\n"), 0o644))
	t.Setenv("GITHUB_ACCESS_TOKEN", "from-env")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.GitHub.Token)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("/nonexistent/radar.yaml")
	require.Error(t, err)
}

func TestLoadBadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "radar.yaml")
	require.NoError(t, os.WriteFile(path, []byte("{not yaml"), 0o644))

	_, err := Load(path)
	require.Error(t, err)
}

func TestCategoryByID(t *testing.T) {
	cfg := Default()

	cat, ok := cfg.CategoryByID("ai_agents")
	require.True(t, ok)
	assert.Equal(t, "AI Agents & Autonomous Trading", cat.Name)

	_, ok = cfg.CategoryByID("nope")
	assert.False(t, ok)
}
