package ui

import (
	"log/slog"

	"CanvasCreator/internal/render"
	"CanvasCreator/internal/state"
)

// Exporter writes the drawing to disk.
type Exporter interface {
	Export(kind state.ExportKind, s state.State) (string, error)
}

// Controller owns the application state. Every input goes through Dispatch,
// which reduces the event, lets every view redraw from the new state, and
// then carries out the effect. Fyne delivers input on one goroutine, so
// events are handled strictly one at a time.
type Controller struct {
	state    state.State
	surface  *render.Renderer
	exporter Exporter
	logger   *slog.Logger

	views    []func(state.State)
	OnNotice func(state.Notice)
}

func NewController(initial state.State, surface *render.Renderer, exporter Exporter, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		state:    initial,
		surface:  surface,
		exporter: exporter,
		logger:   logger,
	}
}

func (c *Controller) State() state.State { return c.state }

func (c *Controller) Surface() *render.Renderer { return c.surface }

func (c *Controller) Logger() *slog.Logger { return c.logger }

// Subscribe registers a view and draws it once with the current state.
func (c *Controller) Subscribe(view func(state.State)) {
	c.views = append(c.views, view)
	view(c.state)
}

func (c *Controller) Dispatch(ev state.Event) {
	prev := c.state
	next, eff := state.Reduce(c.state, ev)
	c.state = next

	if next.Scene.Len() != prev.Scene.Len() {
		c.logger.Debug("scene changed", "event", string(ev.Type), "circles", next.Scene.Len())
	}
	if next.Mode != prev.Mode {
		c.logger.Debug("mode", "from", prev.Mode.String(), "to", next.Mode.String())
	}
	for _, view := range c.views {
		view(next)
	}
	if eff.Notice != nil {
		c.logger.Info(eff.Notice.Text, "severity", string(eff.Notice.Severity))
		if c.OnNotice != nil {
			c.OnNotice(*eff.Notice)
		}
	}
	if eff.Export != state.ExportNone {
		c.export(eff.Export)
	}
}

func (c *Controller) export(kind state.ExportKind) {
	if c.exporter == nil {
		return
	}
	path, err := c.exporter.Export(kind, c.state)
	c.Dispatch(state.Exported(path, err))
}
