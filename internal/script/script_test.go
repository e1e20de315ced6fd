package script

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"CanvasCreator/internal/keybinds"
	"CanvasCreator/internal/state"
)

const sample = `
seed: 42
theme: dark
color: "#4ecdc4"
events:
  - {type: down, x: 100, y: 100}
  - {type: move, x: 100, y: 130}
  - {type: up, x: 100, y: 160}
  - {type: down, x: 300, y: 300}
  - {type: up, x: 302, y: 300}
  - {type: down, x: 400, y: 100}
  - {type: up, x: 440, y: 100}
  - {type: key, key: ctrl+z}
  - {type: key, key: T}
  - {type: color, color: "#118AB2"}
  - {type: down, x: 500, y: 400}
  - {type: leave}
  - {type: export}
`

type fakeExporter struct {
	kinds []state.ExportKind
	err   error
}

func (f *fakeExporter) Export(kind state.ExportKind, s state.State) (string, error) {
	f.kinds = append(f.kinds, kind)
	if f.err != nil {
		return "", f.err
	}
	return "/tmp/out.png", nil
}

func TestParseAndRun(t *testing.T) {
	sc, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	require.Len(t, sc.Events, 13)

	opts, err := sc.Options(state.Options{Seed: 1})
	require.NoError(t, err)
	assert.Equal(t, uint64(42), opts.Seed)
	assert.Equal(t, state.ThemeDark, opts.Theme)
	assert.Equal(t, "#4ECDC4", opts.Color)

	events, err := sc.Compile(keybinds.NewRegistry())
	require.NoError(t, err)

	exp := &fakeExporter{}
	final := Run(state.New(opts), events, exp, nil)

	require.Equal(t, 1, final.Scene.Len())
	c, _ := final.Scene.At(0)
	assert.Equal(t, state.Point{X: 100, Y: 100}, c.Center)
	assert.Equal(t, "#4ECDC4", c.Color)
	assert.Equal(t, state.ThemeColorful, final.Theme)
	assert.Equal(t, "#118AB2", final.Color)
	assert.Equal(t, state.ModeIdle, final.Mode)
	assert.Equal(t, []state.ExportKind{state.ExportPNG}, exp.kinds)
	assert.Equal(t, "Image saved", final.LastAction)
}

func TestRunIsDeterministic(t *testing.T) {
	src := "seed: 9\nrandom: true\nevents:\n  - {type: down, x: 50, y: 50}\n  - {type: up, x: 50, y: 90}\n"
	run := func() state.Circle {
		sc, err := Parse(strings.NewReader(src))
		require.NoError(t, err)
		opts, err := sc.Options(state.Options{})
		require.NoError(t, err)
		events, err := sc.Compile(keybinds.NewRegistry())
		require.NoError(t, err)
		c, ok := Run(state.New(opts), events, nil, nil).Scene.At(0)
		require.True(t, ok)
		return c
	}
	assert.Equal(t, run(), run())
}

func TestRunReportsExportFailure(t *testing.T) {
	exp := &fakeExporter{err: errors.New("read-only")}
	final := Run(state.New(state.Options{}), []state.Event{{Type: state.EventExportPDF}}, exp, nil)
	assert.Equal(t, []state.ExportKind{state.ExportPDF}, exp.kinds)
	assert.Equal(t, "Save failed", final.LastAction)
}

func TestCompileErrors(t *testing.T) {
	cases := map[string]string{
		"type":  "events:\n  - {type: spin}\n",
		"key":   "events:\n  - {type: key, key: q}\n",
		"theme": "events:\n  - {type: theme, theme: neon}\n",
	}
	for name, src := range cases {
		t.Run(name, func(t *testing.T) {
			sc, err := Parse(strings.NewReader(src))
			require.NoError(t, err)
			_, err = sc.Compile(keybinds.NewRegistry())
			assert.Error(t, err)
		})
	}
}

func TestParseRejectsUnknownFields(t *testing.T) {
	_, err := Parse(strings.NewReader("seeds: 3\n"))
	assert.Error(t, err)
}

func TestParseEmpty(t *testing.T) {
	sc, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, sc.Events)
}

func TestOptionsValidation(t *testing.T) {
	_, err := (&Script{Theme: "neon"}).Options(state.Options{})
	assert.ErrorIs(t, err, state.ErrUnknownTheme)
	_, err = (&Script{Color: "blue"}).Options(state.Options{})
	assert.ErrorIs(t, err, state.ErrInvalidColor)
}
