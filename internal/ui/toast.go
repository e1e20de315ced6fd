package ui

import (
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"

	"CanvasCreator/internal/state"
)

// toaster stacks notices in the top right corner of the window and removes
// each one after a fixed delay.
type toaster struct {
	box      *fyne.Container
	duration time.Duration
}

func newToaster(duration time.Duration) *toaster {
	return &toaster{box: container.NewVBox(), duration: duration}
}

// Overlay is placed above the window content in a stack.
func (t *toaster) Overlay() fyne.CanvasObject {
	return container.NewBorder(
		container.NewHBox(layout.NewSpacer(), t.box),
		nil, nil, nil,
	)
}

func (t *toaster) Show(n state.Notice) {
	item := newToast(n)
	t.box.Add(item)
	time.AfterFunc(t.duration, func() {
		fyne.Do(func() { t.box.Remove(item) })
	})
}

// Len reports how many notices are on screen.
func (t *toaster) Len() int { return len(t.box.Objects) }

func newToast(n state.Notice) fyne.CanvasObject {
	bg := canvas.NewRectangle(hexColor(n.Severity.Color()))
	bg.CornerRadius = 5
	text := canvas.NewText(n.Text, color.White)
	text.TextStyle = fyne.TextStyle{Bold: true}
	return container.NewStack(bg, container.NewPadded(text))
}
