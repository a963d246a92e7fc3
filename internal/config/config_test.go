package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points the config and state lookups at temp dirs and clears TALLY_* vars
func isolate(t *testing.T) string {
	t.Helper()

	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)
	t.Setenv("HOME", t.TempDir())
	for _, name := range []string{
		"TALLY_BACKEND", "TALLY_DATA_PATH", "TALLY_PROMPT_STYLE",
		"TALLY_LOG_LEVEL", "TALLY_CLEAR_SCREEN", "TALLY_STATE_DIR",
	} {
		t.Setenv(name, "")
		require.NoError(t, os.Unsetenv(name))
	}
	return configHome
}

func writeConfig(t *testing.T, configHome, content string) {
	t.Helper()

	configDir := filepath.Join(configHome, "tally")
	require.NoError(t, os.MkdirAll(configDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(configDir, "config.yaml"), []byte(content), 0o644))
}

func TestLoadConfigWithoutFile(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Backend)
	assert.Equal(t, PromptLine, cfg.PromptStyle)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.ClearScreen)
	assert.Equal(t, ".tally", filepath.Base(cfg.StateDir))
	assert.Equal(t, filepath.Join(cfg.StateDir, "db.json"), cfg.DataFile())
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfigWithFile(t *testing.T) {
	configHome := isolate(t)
	writeConfig(t, configHome, `backend: sqlite
prompt_style: form
clear_screen: false
state_dir: /var/lib/tally
`)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sqlite", cfg.Backend)
	assert.Equal(t, PromptForm, cfg.PromptStyle)
	assert.False(t, cfg.ClearScreen)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, filepath.Join("/var/lib/tally", "db.sqlite"), cfg.DataFile())
}

func TestLoadConfigEnvOverridesFile(t *testing.T) {
	configHome := isolate(t)
	writeConfig(t, configHome, "backend: sqlite\nlog_level: warn\n")
	t.Setenv("TALLY_BACKEND", "memory")
	t.Setenv("TALLY_CLEAR_SCREEN", "false")
	t.Setenv("TALLY_DATA_PATH", "/tmp/custom.json")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "memory", cfg.Backend)
	assert.Equal(t, "warn", cfg.LogLevel)
	assert.False(t, cfg.ClearScreen)
	assert.Equal(t, "/tmp/custom.json", cfg.DataFile())
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	configHome := isolate(t)
	writeConfig(t, configHome, "backend: [unterminated\n")

	_, err := Load()
	assert.ErrorContains(t, err, "failed to parse config")
}

func TestLoadConfigInvalidEnv(t *testing.T) {
	isolate(t)
	t.Setenv("TALLY_CLEAR_SCREEN", "sometimes")

	_, err := Load()
	assert.ErrorContains(t, err, "parse env:")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"defaults", func(*Config) {}, ""},
		{"bad backend", func(c *Config) { c.Backend = "postgres" }, "unknown storage backend"},
		{"bad prompts", func(c *Config) { c.PromptStyle = "gui" }, "unknown prompt style"},
		{"bad level", func(c *Config) { c.LogLevel = "loud" }, "unknown log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}

func TestDataFileMemoryBackend(t *testing.T) {
	cfg := Default()
	cfg.Backend = "memory"
	cfg.StateDir = "/state"

	assert.Empty(t, cfg.DataFile())
}

func TestSaveRoundTrip(t *testing.T) {
	isolate(t)

	cfg := Default()
	cfg.Backend = "sqlite"
	cfg.StateDir = "/state"
	require.NoError(t, cfg.Save())

	path, err := Path()
	require.NoError(t, err)
	assert.FileExists(t, path)

	loaded, err := Load()
	require.NoError(t, err)
	assert.Equal(t, cfg, loaded)
}
