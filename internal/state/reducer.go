package state

import "fmt"

// DefaultMinRadius is the drag distance a release must exceed to commit.
const DefaultMinRadius = 5.0

type Mode int

const (
	ModeIdle Mode = iota
	ModeDragging
)

func (m Mode) String() string {
	if m == ModeDragging {
		return "dragging"
	}
	return "idle"
}

// State is the whole application state. It is a value: Reduce returns a new
// State and never mutates the one it was given.
type State struct {
	Scene Scene
	Mode  Mode

	Origin       Point
	Cursor       Point
	PreviewColor string

	Color      string
	Random     bool
	Theme      Theme
	MinRadius  float64
	LastAction string

	Seed    uint64
	Draws   uint64 // random palette draws so far
	Created uint64 // circles created so far, including removed ones
}

type Options struct {
	Color     string
	Random    bool
	Theme     Theme
	MinRadius float64
	Seed      uint64
}

func New(opts Options) State {
	color, err := NormalizeColor(opts.Color)
	if err != nil {
		color = DefaultColor()
	}
	minRadius := opts.MinRadius
	if minRadius <= 0 {
		minRadius = DefaultMinRadius
	}
	return State{
		Color:      color,
		Random:     opts.Random,
		Theme:      opts.Theme,
		MinRadius:  minRadius,
		Seed:       opts.Seed,
		LastAction: "None",
	}
}

// DragRadius is the distance from the drag origin to the cursor.
func (s State) DragRadius() float64 {
	return s.Origin.Dist(s.Cursor)
}

// Preview returns the ephemeral circle shown while dragging.
func (s State) Preview() (Circle, bool) {
	if s.Mode != ModeDragging {
		return Circle{}, false
	}
	return Circle{Center: s.Origin, Radius: s.DragRadius(), Color: s.PreviewColor}, true
}

// Reduce applies ev to s. Every event is total: events that do not apply to
// the current state leave it unchanged and return an empty Effect.
func Reduce(s State, ev Event) (State, Effect) {
	switch ev.Type {
	case EventPointerDown:
		return pointerDown(s, ev.Pos)
	case EventPointerMove:
		if s.Mode == ModeDragging {
			s.Cursor = ev.Pos
		}
		return s, Effect{}
	case EventPointerUp:
		return pointerUp(s, ev.Pos)
	case EventPointerLeave:
		if s.Mode != ModeDragging {
			return s, Effect{}
		}
		s = idle(s)
		return s, note(SeverityInfo, "Drag cancelled")
	case EventDoubleClick:
		return doubleClick(s, ev.Pos)
	case EventUndo:
		scene, removed, ok := s.Scene.RemoveLast()
		if !ok {
			return s, Effect{}
		}
		s.Scene = scene
		s.LastAction = fmt.Sprintf("Undo: removed %dpx radius circle", removed.RoundedRadius())
		return s, note(SeverityInfo, "Undo: Last circle removed")
	case EventClear:
		s.Scene = s.Scene.Clear()
		s.LastAction = "Canvas cleared"
		return s, note(SeverityInfo, "Canvas cleared!")
	case EventToggleRandom:
		s.Random = !s.Random
		if s.Random {
			s.LastAction = "Random colors enabled"
			return s, note(SeverityInfo, "Random colors enabled")
		}
		s.Color = DefaultColor()
		s.LastAction = "Random colors disabled"
		return s, note(SeverityInfo, "Random colors disabled")
	case EventSelectColor:
		color, err := NormalizeColor(ev.Color)
		if err != nil {
			return s, note(SeverityError, err.Error())
		}
		s.Random = false
		s.Color = color
		s.LastAction = "Color selected: " + color
		return s, note(SeverityInfo, "Color selected: "+color)
	case EventSetTheme:
		s.Theme = ev.Theme
		s.LastAction = "Theme changed to " + s.Theme.String()
		return s, note(SeverityInfo, "Theme: "+s.Theme.String())
	case EventCycleTheme:
		s.Theme = s.Theme.Next()
		s.LastAction = "Theme changed to " + s.Theme.String()
		return s, note(SeverityInfo, "Theme changed to "+s.Theme.String())
	case EventExport:
		return s, Effect{Export: ExportPNG}
	case EventExportPDF:
		return s, Effect{Export: ExportPDF}
	case EventExported:
		return exported(s, ev)
	}
	return s, Effect{}
}

func pointerDown(s State, p Point) (State, Effect) {
	if s.Mode == ModeIdle {
		if _, c, ok := s.Scene.HitTest(p); ok {
			s.LastAction = fmt.Sprintf("Selected circle: %dpx radius", c.RoundedRadius())
			return s, note(SeverityHit, fmt.Sprintf("Circle selected (%s)", c.Color))
		}
	}
	// A press while already dragging means the release was lost; restart.
	s.Mode = ModeDragging
	s.Origin = p
	s.Cursor = p
	s.PreviewColor = s.Color
	if s.Random {
		s.PreviewColor = RandomAt(s.Seed, tick(&s.Draws))
	}
	return s, Effect{}
}

func pointerUp(s State, p Point) (State, Effect) {
	if s.Mode != ModeDragging {
		return s, Effect{}
	}
	origin, color := s.Origin, s.PreviewColor
	s = idle(s)

	radius := origin.Dist(p)
	if radius <= s.MinRadius {
		return s, Effect{}
	}
	c := Circle{
		ID:     circleID(s.Seed, tick(&s.Created)),
		Center: origin,
		Radius: radius,
		Color:  color,
	}
	s.Scene = s.Scene.Add(c)
	s.LastAction = fmt.Sprintf("Created circle: %dpx radius", c.RoundedRadius())
	return s, note(SeveritySuccess, fmt.Sprintf("Circle created! Radius: %dpx", c.RoundedRadius()))
}

func doubleClick(s State, p Point) (State, Effect) {
	i, _, ok := s.Scene.HitTest(p)
	if !ok {
		return s, Effect{}
	}
	scene, removed, _ := s.Scene.RemoveAt(i)
	s.Scene = scene
	s.LastAction = fmt.Sprintf("Deleted circle: %dpx radius", removed.RoundedRadius())
	return s, note(SeverityWarning, fmt.Sprintf("Circle deleted! (%s)", removed.Color))
}

func exported(s State, ev Event) (State, Effect) {
	if ev.Err != nil {
		s.LastAction = "Save failed"
		return s, note(SeverityError, "Save failed: "+ev.Err.Error())
	}
	s.LastAction = "Image saved"
	return s, note(SeveritySuccess, "Image saved successfully!")
}

func idle(s State) State {
	s.Mode = ModeIdle
	s.Origin = Point{}
	s.Cursor = Point{}
	s.PreviewColor = ""
	return s
}

func note(sev Severity, text string) Effect {
	return Effect{Notice: &Notice{Severity: sev, Text: text}}
}
