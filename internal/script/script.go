// Package script reads YAML event scripts that drive the reducer without a
// display.
//
//	seed: 42
//	theme: dark
//	color: "#4ECDC4"
//	events:
//	  - {type: down, x: 100, y: 100}
//	  - {type: move, x: 100, y: 130}
//	  - {type: up, x: 100, y: 160}
//	  - {type: key, key: t}
package script

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"gopkg.in/yaml.v3"

	"CanvasCreator/internal/keybinds"
	"CanvasCreator/internal/state"
)

type Script struct {
	Seed   uint64  `yaml:"seed"`
	Theme  string  `yaml:"theme"`
	Color  string  `yaml:"color"`
	Random bool    `yaml:"random"`
	Events []Entry `yaml:"events"`
}

type Entry struct {
	Type  string  `yaml:"type"`
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Key   string  `yaml:"key"`
	Color string  `yaml:"color"`
	Theme string  `yaml:"theme"`
}

func Parse(r io.Reader) (*Script, error) {
	var s Script
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil {
		if err == io.EOF {
			return &s, nil
		}
		return nil, fmt.Errorf("script: %w", err)
	}
	return &s, nil
}

func ParseFile(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Parse(f)
}

// Options returns the initial state options, letting the script override
// the configured defaults.
func (s *Script) Options(base state.Options) (state.Options, error) {
	if s.Seed != 0 {
		base.Seed = s.Seed
	}
	if s.Theme != "" {
		t, err := state.ParseTheme(s.Theme)
		if err != nil {
			return base, fmt.Errorf("script: %w", err)
		}
		base.Theme = t
	}
	if s.Color != "" {
		c, err := state.NormalizeColor(s.Color)
		if err != nil {
			return base, fmt.Errorf("script: %w", err)
		}
		base.Color = c
	}
	if s.Random {
		base.Random = true
	}
	return base, nil
}

// Compile turns the entries into reducer events. Key entries are resolved
// through keys.
func (s *Script) Compile(keys *keybinds.Registry) ([]state.Event, error) {
	events := make([]state.Event, 0, len(s.Events))
	for i, e := range s.Events {
		ev, err := e.event(keys)
		if err != nil {
			return nil, fmt.Errorf("script: event %d: %w", i, err)
		}
		events = append(events, ev)
	}
	return events, nil
}

func (e Entry) event(keys *keybinds.Registry) (state.Event, error) {
	switch state.EventType(e.Type) {
	case state.EventPointerDown:
		return state.PointerDown(e.X, e.Y), nil
	case state.EventPointerMove:
		return state.PointerMove(e.X, e.Y), nil
	case state.EventPointerUp:
		return state.PointerUp(e.X, e.Y), nil
	case state.EventDoubleClick:
		return state.DoubleClick(e.X, e.Y), nil
	case state.EventSelectColor:
		return state.SelectColor(e.Color), nil
	case state.EventSetTheme:
		t, err := state.ParseTheme(e.Theme)
		if err != nil {
			return state.Event{}, err
		}
		return state.SetTheme(t), nil
	case state.EventPointerLeave, state.EventUndo, state.EventClear, state.EventToggleRandom,
		state.EventCycleTheme, state.EventExport, state.EventExportPDF:
		return state.Event{Type: state.EventType(e.Type)}, nil
	}
	if e.Type == "key" {
		action, ok := keys.Match(e.Key)
		if !ok {
			return state.Event{}, fmt.Errorf("no binding for key %q", e.Key)
		}
		ev, _ := action.Event()
		return ev, nil
	}
	return state.Event{}, fmt.Errorf("unknown event type %q", e.Type)
}

// Exporter performs export effects raised during a replay.
type Exporter interface {
	Export(kind state.ExportKind, s state.State) (string, error)
}

// Run folds events through the reducer from initial. Export effects go to
// exp when it is non-nil, and their outcome is fed back as an
// EventExported, as the desktop front end does.
func Run(initial state.State, events []state.Event, exp Exporter, logger *slog.Logger) state.State {
	s := initial
	for _, ev := range events {
		var eff state.Effect
		s, eff = state.Reduce(s, ev)
		logEffect(logger, ev, eff)
		if eff.Export != state.ExportNone && exp != nil {
			path, err := exp.Export(eff.Export, s)
			s, eff = state.Reduce(s, state.Exported(path, err))
			logEffect(logger, state.Exported(path, err), eff)
		}
	}
	return s
}

func logEffect(logger *slog.Logger, ev state.Event, eff state.Effect) {
	if logger == nil || eff.Notice == nil {
		return
	}
	logger.Debug("notice", "event", string(ev.Type), "severity", string(eff.Notice.Severity), "text", eff.Notice.Text)
}
