package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))

	require.NoError(t, err)
	assert.Equal(t, "openai", cfg.LLM.Provider)
	assert.Contains(t, cfg.Prompts.DedupeInstruction, "are duplicates")
}

func TestLoadOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "docsift.toml")
	data := `
[llm]
provider = "claude"
model = "claude-3-5-haiku-latest"

[concurrency]
extract_workers = 4
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, "claude", cfg.LLM.Provider)
	assert.Equal(t, 4, cfg.Concurrency.ExtractWorkers)
	// Untouched sections keep their defaults.
	assert.NotEmpty(t, cfg.Prompts.DedupeSystem)
}

func TestLoadSecret(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".secret")
	require.NoError(t, os.WriteFile(path, []byte(`{"openai_api_key": "sk-test-123"}`), 0o600))

	key, err := LoadSecret(path, "openai")

	require.NoError(t, err)
	assert.Equal(t, "sk-test-123", key)
}

func TestLoadSecretMissingEntry(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".secret")
	require.NoError(t, os.WriteFile(path, []byte(`{"openai_api_key": "sk-test-123"}`), 0o600))

	_, err := LoadSecret(path, "claude")

	assert.Error(t, err)
}

func TestResolveAPIKeyPrefersSecretFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".secret")
	require.NoError(t, os.WriteFile(path, []byte(`{"openai_api_key": "sk-from-secret"}`), 0o600))

	cfg := Default()
	require.NoError(t, cfg.ResolveAPIKey(path))

	assert.Equal(t, "sk-from-secret", cfg.LLM.APIKey)
}

func TestResolveAPIKeyFallsBackToEnv(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-from-env")

	cfg := Default()
	require.NoError(t, cfg.ResolveAPIKey(""))

	assert.Equal(t, "sk-from-env", cfg.LLM.APIKey)
}

func TestResolveAPIKeyMissingIsError(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "")

	cfg := Default()
	err := cfg.ResolveAPIKey("")

	assert.Error(t, err)
}
