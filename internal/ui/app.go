package ui

import (
	"fmt"
	"log/slog"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"CanvasCreator/internal/config"
	"CanvasCreator/internal/export"
	"CanvasCreator/internal/keybinds"
	"CanvasCreator/internal/render"
	"CanvasCreator/internal/state"
)

const appID = "io.github.canvascreator"

// Window is the assembled main window and the controller behind it.
type Window struct {
	fyne.Window
	Ctrl   *Controller
	Board  *BoardWidget
	toasts *toaster
}

// NewWindow builds the main window on a. The caller shows it.
func NewWindow(a fyne.App, cfg *config.Config, logger *slog.Logger) (*Window, error) {
	keys, err := keybinds.FromConfig(cfg.Keys)
	if err != nil {
		return nil, fmt.Errorf("keys: %w", err)
	}
	surface, err := render.New(cfg.Canvas.Width, cfg.Canvas.Height, cfg.Canvas.GridSize)
	if err != nil {
		return nil, err
	}

	opts := cfg.StateOptions()
	logger.Info("starting", "theme", opts.Theme.String(), "seed", opts.Seed, "export_dir", cfg.Export.Dir)

	exporter := export.New(cfg.Export.Dir, surface, logger)
	ctrl := NewController(state.New(opts), surface, exporter, logger)

	w := &Window{
		Window: a.NewWindow("Canvas Creator"),
		Ctrl:   ctrl,
		toasts: newToaster(cfg.Notify.Duration.Duration),
	}
	ctrl.OnNotice = w.toasts.Show

	current := opts.Theme
	a.Settings().SetTheme(newAppTheme(current))
	ctrl.Subscribe(func(s state.State) {
		if s.Theme != current {
			current = s.Theme
			a.Settings().SetTheme(newAppTheme(current))
		}
	})

	w.Board = NewBoardWidget(ctrl)
	header := container.NewHBox(
		widget.NewLabelWithStyle("Canvas Creator", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		layout.NewSpacer(),
		newThemeSwitcher(ctrl),
	)
	top := container.NewVBox(header, NewToolbar(ctrl), widget.NewSeparator())
	body := container.NewBorder(
		top,
		newShortcutTable(keys.Help()),
		nil, nil,
		container.NewCenter(w.Board),
	)
	w.SetContent(container.NewStack(body, w.toasts.Overlay()))
	bindKeys(w.Canvas(), keys, ctrl.Dispatch)
	w.SetOnClosed(func() {
		if err := surface.Close(); err != nil {
			logger.Warn("close renderer", "err", err)
		}
	})
	return w, nil
}

// RunApp opens the main window and blocks until it is closed.
func RunApp(cfg *config.Config, logger *slog.Logger) error {
	a := app.NewWithID(appID)
	w, err := NewWindow(a, cfg, logger)
	if err != nil {
		return err
	}
	w.ShowAndRun()
	return nil
}
