package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"openwhen/internal/letter"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runCLI executes the root command with args and an isolated home directory.
func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	homedir.DisableCache = true
	t.Setenv("HOME", t.TempDir())

	cmd := newRootCommand()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

const twoLetters = `
[[letter]]
id = 1
title = "Open When You Can't Sleep"
accent_color = "#FEDA60"
message = "Count sheep."

[[letter]]
id = 2
title = "Open When It Rains"
accent_color = "396ABE"
stamp = "rain.png"
message = "Puddles."
`

func TestListCommand_DefaultLetters(t *testing.T) {
	out, err := runCLI(t, "list")
	require.NoError(t, err)

	for _, rec := range letter.Defaults() {
		assert.Contains(t, out, rec.Title)
	}
	assert.Contains(t, out, "#856f8d")
	assert.Contains(t, out, "#715e77", "flap shade of letter 1")
}

func TestListCommand_LettersFlag(t *testing.T) {
	path := writeFile(t, "letters.toml", twoLetters)

	out, err := runCLI(t, "list", "--letters", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Open When It Rains")
	assert.Contains(t, out, "rain.png")
	assert.NotContains(t, out, "Open When You Need a Hug")

	lines := strings.Split(out, "\n")
	var dark, light int
	for _, l := range lines {
		if strings.Contains(l, "Can't Sleep") && strings.Contains(l, "dark") {
			dark++
		}
		if strings.Contains(l, "Rains") && strings.Contains(l, "light") {
			light++
		}
	}
	assert.Equal(t, 1, dark, "yellow takes dark text")
	assert.Equal(t, 1, light, "blue takes light text")
}

func TestListCommand_MissingStampFlagged(t *testing.T) {
	path := writeFile(t, "letters.toml", twoLetters)

	out, err := runCLI(t, "list", "--letters", path, "--assets", t.TempDir())
	require.NoError(t, err)
	assert.Contains(t, out, "rain.png (missing)")
}

func TestListCommand_ConfigFile(t *testing.T) {
	letters := writeFile(t, "letters.toml", twoLetters)
	cfg := writeFile(t, "openwhen.toml", "letters = \""+filepath.ToSlash(letters)+"\"\n")

	out, err := runCLI(t, "list", "--config", cfg)
	require.NoError(t, err)
	assert.Contains(t, out, "Open When It Rains")
}

func TestRootCommand_BadSpeed(t *testing.T) {
	_, err := runCLI(t, "list", "--speed", "0")
	assert.Error(t, err)
}

func TestRenderCommand(t *testing.T) {
	out, err := runCLI(t, "render", "--width", "80")
	require.NoError(t, err)
	assert.Contains(t, out, "Open When Letters")
	assert.Contains(t, out, "#9")
}

func TestRootCommand_NoTerminalRendersStatic(t *testing.T) {
	out, err := runCLI(t)
	require.NoError(t, err)
	assert.Contains(t, out, "Open When Letters")
}

func TestValidateCommand(t *testing.T) {
	good := writeFile(t, "good.toml", twoLetters)
	out, err := runCLI(t, "validate", good)
	require.NoError(t, err)
	assert.Contains(t, out, "2 letters ok")

	bad := writeFile(t, "bad.toml", strings.Replace(twoLetters, "#FEDA60", "#FEDA6", 1))
	_, err = runCLI(t, "validate", bad)
	assert.Error(t, err)

	_, err = runCLI(t, "validate")
	assert.Error(t, err, "file argument is required")
}
