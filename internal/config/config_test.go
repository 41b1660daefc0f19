package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

const validConfig = `
llm:
  provider: gemini
  model: gemini-1.5-flash
  api_key: test-key
seeds:
  example_ideas: ./seed-ideas/seedIdeas.json
  response_log: ./seed-ideas/previous-responses.txt
pipeline:
  idea_count: 5
`

func TestLoadConfig(t *testing.T) {
	cfg, err := LoadConfig(writeConfig(t, validConfig))
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.LLM.Provider)
	assert.Equal(t, "test-key", cfg.LLM.APIKey)
	assert.Equal(t, 5, cfg.Pipeline.IdeaCount)

	// Defaults fill unspecified fields
	assert.Equal(t, 120, cfg.LLM.TimeoutSeconds)
	assert.Equal(t, 3, cfg.LLM.RetryCount)
	assert.Equal(t, 5, cfg.LLM.RetryDelaySeconds)
	assert.Equal(t, "./projects", cfg.Pipeline.OutputDir)
	assert.Equal(t, 3, cfg.Pipeline.CallDelaySeconds)
}

func TestLoadConfig_APIKeyFromEnv(t *testing.T) {
	t.Setenv("SCAFFOLDER_TEST_KEY", "env-key")

	cfg, err := LoadConfig(writeConfig(t, `
llm:
  model: gemini-1.5-flash
  api_key_env: SCAFFOLDER_TEST_KEY
seeds:
  example_ideas: ./seeds.json
`))
	require.NoError(t, err)
	assert.Equal(t, "env-key", cfg.LLM.APIKey)
}

func TestLoadConfig_MissingAPIKey(t *testing.T) {
	t.Setenv("SCAFFOLDER_TEST_KEY", "")

	_, err := LoadConfig(writeConfig(t, `
llm:
  model: gemini-1.5-flash
  api_key_env: SCAFFOLDER_TEST_KEY
seeds:
  example_ideas: ./seeds.json
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SCAFFOLDER_TEST_KEY")
}

func TestLoadConfig_UnsupportedProvider(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `
llm:
  provider: bard
  model: some-model
  api_key: k
seeds:
  example_ideas: ./seeds.json
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not supported")
}

func TestLoadConfig_LogRequiredWhenInUse(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, `
llm:
  model: gemini-1.5-flash
  api_key: k
seeds:
  example_ideas: ./seeds.json
pipeline:
  save_to_log: true
`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "response_log")
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestLoadConfig_BadYAML(t *testing.T) {
	_, err := LoadConfig(writeConfig(t, "llm: [unclosed"))
	require.Error(t, err)
}
