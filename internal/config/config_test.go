package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig(t *testing.T) {
	path := writeConfigFile(t, `{
		"provider": "gemini",
		"api_key": "test-key",
		"max_iterations": 5,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "gemini", cfg.Provider)
	assert.Equal(t, "test-key", cfg.APIKey)
	assert.Equal(t, 5, cfg.MaxIterations)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, `{not json`)

	_, err := LoadConfig(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr string
	}{
		{
			name: "valid",
			cfg:  Config{Provider: "anthropic", MaxIterations: 10},
		},
		{
			name: "empty is valid",
			cfg:  Config{},
		},
		{
			name:    "unknown provider",
			cfg:     Config{Provider: "openai"},
			wantErr: "config error",
		},
		{
			name:    "negative iterations",
			cfg:     Config{MaxIterations: -1},
			wantErr: "config error",
		},
		{
			name:    "iterations over cap",
			cfg:     Config{MaxIterations: 51},
			wantErr: "config error",
		},
		{
			name:    "missing resume file",
			cfg:     Config{Resume: "/nonexistent/resume.json"},
			wantErr: "resume file not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}

func TestValidate_ExistingResume(t *testing.T) {
	path := writeConfigFile(t, `{}`)
	cfg := Config{Resume: path}
	assert.NoError(t, cfg.Validate())
}

func TestMergeWithDefaults(t *testing.T) {
	cfg := Config{Provider: "anthropic"}
	defaults := Config{
		Provider:      "gemini",
		APIKey:        "default-key",
		Model:         "default-model",
		MaxIterations: 8,
	}

	merged := cfg.MergeWithDefaults(defaults)

	assert.Equal(t, "anthropic", merged.Provider, "explicit value wins")
	assert.Equal(t, "default-key", merged.APIKey)
	assert.Equal(t, "default-model", merged.Model)
	assert.Equal(t, 8, merged.MaxIterations)
}
