package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("PORT", "")
	t.Setenv("ANALYSIS_PROVIDER", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "RULES", cfg.AnalysisProvider)
	assert.Equal(t, 7, cfg.ShareTTLDays)
}

func TestLoad_YAMLFileWithEnvOverride(t *testing.T) {
	dir := t.TempDir()
	file := filepath.Join(dir, "config.yaml")
	content := "port: \"9000\"\nshare_ttl_days: 14\nshare_token_secret: from-file\n"
	require.NoError(t, os.WriteFile(file, []byte(content), 0644))

	t.Setenv("CONFIG_FILE", file)
	t.Setenv("PORT", "7000")
	t.Setenv("ANALYSIS_PROVIDER", "")
	t.Setenv("SHARE_TOKEN_SECRET", "")
	t.Setenv("SHARE_TTL_DAYS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "7000", cfg.Port) // env wins over file
	assert.Equal(t, 14, cfg.ShareTTLDays)
	assert.Equal(t, "from-file", cfg.ShareTokenSecret)
}

func TestLoad_InvalidProvider(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("ANALYSIS_PROVIDER", "GRANITE")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_OpenAIRequiresKey(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "missing.yaml"))
	t.Setenv("ANALYSIS_PROVIDER", "OPENAI")
	t.Setenv("OPENAI_API_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}
