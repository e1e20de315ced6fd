package ui

import (
	"fmt"
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"CanvasCreator/internal/state"
)

// --- Custom Widget for Color Swatches ---
type colorSwatch struct {
	widget.BaseWidget
	Hex      string
	OnTapped func(string)

	selected bool
	border   *canvas.Rectangle
}

func newColorSwatch(hex string, tapped func(string)) *colorSwatch {
	s := &colorSwatch{Hex: hex, OnTapped: tapped}
	s.ExtendBaseWidget(s)
	return s
}

func (s *colorSwatch) CreateRenderer() fyne.WidgetRenderer {
	rect := canvas.NewRectangle(hexColor(s.Hex))
	rect.SetMinSize(fyne.NewSize(32, 32))
	rect.CornerRadius = 16

	s.border = canvas.NewRectangle(color.Transparent)
	s.border.CornerRadius = 16
	s.applyBorder()

	return widget.NewSimpleRenderer(container.NewStack(rect, s.border))
}

func (s *colorSwatch) applyBorder() {
	if s.border == nil {
		return
	}
	if s.selected {
		s.border.StrokeColor = theme.Color(theme.ColorNameForeground)
		s.border.StrokeWidth = 3
	} else {
		s.border.StrokeColor = color.Gray{Y: 150}
		s.border.StrokeWidth = 1
	}
	s.border.Refresh()
}

func (s *colorSwatch) SetSelected(selected bool) {
	if s.selected == selected {
		return
	}
	s.selected = selected
	s.applyBorder()
}

func (s *colorSwatch) Tapped(_ *fyne.PointEvent) {
	if s.OnTapped != nil {
		s.OnTapped(s.Hex)
	}
}

// --- The Main Toolbar ---

// toolbar holds the controls that mirror state: the palette, the random
// toggle and the status line.
type toolbar struct {
	swatches []*colorSwatch
	random   *widget.Button
	circles  *widget.Label
	action   *widget.Label
	current  *canvas.Rectangle
}

func NewToolbar(ctrl *Controller) fyne.CanvasObject {
	tb := &toolbar{}

	// --- Color Palette ---
	onColorTapped := func(hex string) {
		ctrl.Dispatch(state.SelectColor(hex))
	}
	colorBox := container.NewHBox()
	for _, hex := range state.Presets {
		sw := newColorSwatch(hex, onColorTapped)
		tb.swatches = append(tb.swatches, sw)
		colorBox.Add(sw)
	}

	tb.random = widget.NewButtonWithIcon("Random Colors", theme.ViewRefreshIcon(), func() {
		ctrl.Dispatch(state.Event{Type: state.EventToggleRandom})
	})
	reset := widget.NewButtonWithIcon("Reset Canvas", theme.DeleteIcon(), func() {
		ctrl.Dispatch(state.Event{Type: state.EventClear})
	})
	reset.Importance = widget.DangerImportance
	save := widget.NewButtonWithIcon("Save Image", theme.DocumentSaveIcon(), func() {
		ctrl.Dispatch(state.Event{Type: state.EventExport})
	})
	save.Importance = widget.SuccessImportance
	pdf := widget.NewButtonWithIcon("Save PDF", theme.FileIcon(), func() {
		ctrl.Dispatch(state.Event{Type: state.EventExportPDF})
	})

	tb.circles = widget.NewLabel("")
	tb.action = widget.NewLabel("")
	tb.current = canvas.NewRectangle(color.Transparent)
	tb.current.SetMinSize(fyne.NewSize(16, 16))
	tb.current.CornerRadius = 8

	ctrl.Subscribe(tb.update)

	// --- Assemble everything ---
	tools := container.NewHBox(
		widget.NewLabel("Color:"),
		colorBox,
		widget.NewSeparator(),
		tb.random,
		reset,
		save,
		pdf,
		layout.NewSpacer(),
	)
	status := container.NewHBox(
		container.NewCenter(tb.current),
		tb.circles,
		widget.NewSeparator(),
		tb.action,
		layout.NewSpacer(),
	)
	return container.NewVBox(tools, status)
}

func (tb *toolbar) update(s state.State) {
	for _, sw := range tb.swatches {
		sw.SetSelected(!s.Random && sw.Hex == s.Color)
	}
	if s.Random {
		tb.random.Importance = widget.HighImportance
		tb.current.FillColor = color.Transparent
		tb.current.StrokeColor = theme.Color(theme.ColorNameForeground)
		tb.current.StrokeWidth = 1
	} else {
		tb.random.Importance = widget.MediumImportance
		tb.current.FillColor = hexColor(s.Color)
		tb.current.StrokeWidth = 0
	}
	tb.random.Refresh()
	tb.current.Refresh()
	tb.circles.SetText(fmt.Sprintf("Circles: %d", s.Scene.Len()))
	tb.action.SetText("Last Action: " + s.LastAction)
}

// newThemeSwitcher builds one button per theme with the active one
// highlighted.
func newThemeSwitcher(ctrl *Controller) fyne.CanvasObject {
	buttons := make(map[state.Theme]*widget.Button, len(state.Themes))
	box := container.NewHBox()
	for _, t := range state.Themes {
		btn := widget.NewButton(title(t.String()), func() {
			ctrl.Dispatch(state.SetTheme(t))
		})
		buttons[t] = btn
		box.Add(btn)
	}
	ctrl.Subscribe(func(s state.State) {
		for t, btn := range buttons {
			want := widget.MediumImportance
			if t == s.Theme {
				want = widget.HighImportance
			}
			if btn.Importance != want {
				btn.Importance = want
				btn.Refresh()
			}
		}
	})
	return box
}

// newShortcutTable lists the keyboard shortcuts.
func newShortcutTable(help []string) fyne.CanvasObject {
	box := container.NewVBox(widget.NewLabelWithStyle("Keyboard Shortcuts", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}))
	for _, line := range help {
		box.Add(widget.NewLabel(line))
	}
	return box
}

func title(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}
