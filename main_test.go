package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CanvasCreator/internal/state"
)

func TestOutputKind(t *testing.T) {
	k, err := outputKind("out.PNG")
	require.NoError(t, err)
	assert.Equal(t, state.ExportPNG, k)

	k, err = outputKind("dir/out.pdf")
	require.NoError(t, err)
	assert.Equal(t, state.ExportPDF, k)

	_, err = outputKind("out.gif")
	assert.Error(t, err)
}

func TestReplayCommand(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CANVAS_CREATOR_THEME", "")
	t.Setenv("CANVAS_CREATOR_EXPORT_DIR", dir)
	t.Setenv("CANVAS_CREATOR_LOG_LEVEL", "")

	src := filepath.Join(dir, "demo.yaml")
	require.NoError(t, os.WriteFile(src, []byte("seed: 3\nevents:\n  - {type: down, x: 100, y: 100}\n  - {type: up, x: 100, y: 150}\n"), 0o644))
	out := filepath.Join(dir, "demo.png")

	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&bytes.Buffer{})
	rootCmd.SetArgs([]string{"replay", src, "-o", out, "--config", filepath.Join(dir, "missing.toml"), "--log-level", "error"})
	require.NoError(t, rootCmd.Execute())

	assert.FileExists(t, out)
	assert.Contains(t, stdout.String(), "(1 circles)")
}

func TestKeysCommand(t *testing.T) {
	var stdout bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetArgs([]string{"keys", "--config", filepath.Join(t.TempDir(), "missing.toml")})
	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, stdout.String(), "Ctrl + Z - Undo last circle")
	assert.Contains(t, stdout.String(), "Double-click on circle to delete it")
}
