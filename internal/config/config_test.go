package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CanvasCreator/internal/state"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, 800, cfg.Canvas.Width)
	assert.Equal(t, 600, cfg.Canvas.Height)
	assert.Equal(t, 20.0, cfg.Canvas.GridSize)
	assert.Equal(t, "#FF6B6B", cfg.Brush.Color)
	assert.Equal(t, 5.0, cfg.Brush.MinRadius)
	assert.Equal(t, 2*time.Second, cfg.Notify.Duration.Duration)
	assert.Equal(t, state.ThemeLight, cfg.ThemeVariant())
}

func TestLoadFromReader(t *testing.T) {
	t.Setenv("CANVAS_CREATOR_THEME", "")
	t.Setenv("CANVAS_CREATOR_EXPORT_DIR", "")
	t.Setenv("CANVAS_CREATOR_LOG_LEVEL", "")

	src := `
[canvas]
width = 1024
grid_size = 25

[brush]
color = "#118ab2"
random = true
seed = 99

[theme]
name = "dark"

[notify]
duration = "3500ms"

[export]
dir = "/tmp/out"

[keys]
undo = "u"
`
	cfg, err := LoadFromReader(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 1024, cfg.Canvas.Width)
	assert.Equal(t, 600, cfg.Canvas.Height, "unset keys keep defaults")
	assert.Equal(t, 25.0, cfg.Canvas.GridSize)
	assert.True(t, cfg.Brush.Random)
	assert.Equal(t, 3500*time.Millisecond, cfg.Notify.Duration.Duration)
	assert.Equal(t, "/tmp/out", cfg.Export.Dir)
	assert.Equal(t, map[string]string{"undo": "u"}, cfg.Keys)

	opts := cfg.StateOptions()
	assert.Equal(t, state.ThemeDark, opts.Theme)
	assert.Equal(t, uint64(99), opts.Seed)
	assert.Equal(t, "#118ab2", opts.Color)
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	t.Setenv("CANVAS_CREATOR_THEME", "")
	cases := map[string]string{
		"theme":    "[theme]\nname = \"neon\"",
		"color":    "[brush]\ncolor = \"red\"",
		"size":     "[canvas]\nwidth = 0",
		"duration": "[notify]\nduration = \"soon\"",
		"syntax":   "[canvas\nwidth = 1",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := LoadFromReader(strings.NewReader(src))
			assert.Error(t, err)
		})
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("CANVAS_CREATOR_THEME", "colorful")
	t.Setenv("CANVAS_CREATOR_EXPORT_DIR", "/srv/art")
	t.Setenv("CANVAS_CREATOR_LOG_LEVEL", "debug")

	cfg, err := LoadFromReader(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, state.ThemeColorful, cfg.ThemeVariant())
	assert.Equal(t, "/srv/art", cfg.Export.Dir)
	assert.Equal(t, "debug", cfg.Log.Level)
}

func TestLoadFromFileMissingUsesDefaults(t *testing.T) {
	t.Setenv("CANVAS_CREATOR_THEME", "")
	cfg, err := LoadFromFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.Canvas.Width)
}

func TestLoadSearchesXDG(t *testing.T) {
	t.Setenv("CANVAS_CREATOR_THEME", "")
	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	require.NoError(t, os.MkdirAll(filepath.Join(dir, appDir), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, appDir, "config.toml"),
		[]byte("[canvas]\nheight = 480\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 480, cfg.Canvas.Height)
}

func TestStateOptionsPicksSeed(t *testing.T) {
	cfg := DefaultConfig()
	assert.NotZero(t, cfg.StateOptions().Seed)
}
