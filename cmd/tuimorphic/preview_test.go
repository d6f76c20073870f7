package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPreviewCommand_PrintsStaticFrameWhenNotATerminal(t *testing.T) {
	dir := isolateCLI(t)
	path := writeScene(t, dir, "settings.yaml", settingsScene)

	stdout, _, err := executeCommand(t, "preview", path)
	require.NoError(t, err)

	plain := ansi.Strip(stdout)
	assert.Contains(t, plain, "Settings")
	assert.Contains(t, plain, "[x] Sync")
}

func TestPreviewCommand_StaticFlag(t *testing.T) {
	isolateCLI(t)

	stdout, _, err := executeCommand(t, "preview", "--static", "--glyphs", "ascii")
	require.NoError(t, err)
	assert.Contains(t, ansi.Strip(stdout), "(*) Medium")
}

func TestPreviewCommand_LoadError(t *testing.T) {
	dir := isolateCLI(t)

	_, _, err := executeCommand(t, "preview", filepath.Join(dir, "missing.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to preview")
}

func TestRootCommand_LogFile(t *testing.T) {
	dir := isolateCLI(t)
	logPath := filepath.Join(dir, "tuimorphic.log")

	_, stderr, err := executeCommand(t, "render", "--format", "plain", "--log-level", "debug", "--log-file", logPath)
	require.NoError(t, err)
	assert.Empty(t, stderr)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "rendering scene")
}

func TestRootCommand_ConfigFile(t *testing.T) {
	dir := isolateCLI(t)
	configPath := writeScene(t, dir, "config.yml", "theme: mono\nglyphs: ascii\n")

	stdout, _, err := executeCommand(t, "--config", configPath, "render", "--format", "plain")
	require.NoError(t, err)
	assert.Contains(t, stdout, "(*) Medium")
}

func TestRootCommand_InvalidConfig(t *testing.T) {
	dir := isolateCLI(t)
	configPath := writeScene(t, dir, "config.yml", "theme: neon\n")

	_, _, err := executeCommand(t, "--config", configPath, "version")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to load settings")
}
