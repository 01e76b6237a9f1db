package config

import (
	"os"
	"path/filepath"
	"testing"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// allEnvKeys lists every OPENWHEN_ variable Load can read.
var allEnvKeys = []string{
	"OPENWHEN_LETTERS", "OPENWHEN_ASSETS", "OPENWHEN_SPEED", "OPENWHEN_SIGNATURE",
	"OPENWHEN_HEADING", "OPENWHEN_LOG_LEVEL", "OPENWHEN_LOG_FILE", "OPENWHEN_MOUSE",
}

// isolate unsets OPENWHEN_ variables and points HOME at an empty directory.
func isolate(t *testing.T) string {
	t.Helper()
	for _, key := range allEnvKeys {
		if orig, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, orig) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
	home := t.TempDir()
	t.Setenv("HOME", home)
	homedir.DisableCache = true
	t.Cleanup(func() { homedir.DisableCache = false })
	return home
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)
	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, 1.0, cfg.Speed)
	assert.Equal(t, "Open When Letters", cfg.Heading)
	assert.Equal(t, "With love,\nYour Name", cfg.Signature)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.True(t, cfg.Mouse)
	assert.Empty(t, cfg.Letters)
	assert.Empty(t, cfg.File)
}

func TestLoad_Env(t *testing.T) {
	isolate(t)
	t.Setenv("OPENWHEN_SPEED", "2.5")
	t.Setenv("OPENWHEN_LOG_LEVEL", "debug")
	t.Setenv("OPENWHEN_MOUSE", "false")

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, 2.5, cfg.Speed)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.False(t, cfg.Mouse)
}

func TestLoad_File(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, DefaultFileName)
	require.NoError(t, os.WriteFile(path, []byte("speed = 0.5\nheading = \"For You\"\nletters = \"~/letters.toml\"\n"), 0o644))

	cfg, err := Load(New(), "")
	require.NoError(t, err)
	assert.Equal(t, path, cfg.File)
	assert.Equal(t, 0.5, cfg.Speed)
	assert.Equal(t, "For You", cfg.Heading)
	assert.Equal(t, filepath.Join(home, "letters.toml"), cfg.Letters)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	home := isolate(t)
	path := filepath.Join(home, "custom.toml")
	require.NoError(t, os.WriteFile(path, []byte("speed = 0.5\n"), 0o644))
	t.Setenv("OPENWHEN_SPEED", "3")

	cfg, err := Load(New(), path)
	require.NoError(t, err)
	assert.Equal(t, 3.0, cfg.Speed)
}

func TestLoad_Errors(t *testing.T) {
	isolate(t)

	_, err := Load(New(), "/does/not/exist.toml")
	assert.Error(t, err)

	t.Setenv("OPENWHEN_SPEED", "0")
	_, err = Load(New(), "")
	assert.ErrorIs(t, err, ErrInvalidConfig)

	t.Setenv("OPENWHEN_SPEED", "1")
	t.Setenv("OPENWHEN_LOG_LEVEL", "chatty")
	_, err = Load(New(), "")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}
