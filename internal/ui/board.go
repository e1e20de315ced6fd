package ui

import (
	"image"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"CanvasCreator/internal/state"
)

// BoardWidget is the drawing surface. It turns pointer input into reducer
// events and shows the image the renderer produced for the latest state.
type BoardWidget struct {
	widget.BaseWidget
	ctrl  *Controller
	size  fyne.Size
	frame image.Image
}

var _ fyne.Widget = (*BoardWidget)(nil)
var _ fyne.Draggable = (*BoardWidget)(nil)
var _ fyne.DoubleTappable = (*BoardWidget)(nil)
var _ desktop.Mouseable = (*BoardWidget)(nil)
var _ desktop.Hoverable = (*BoardWidget)(nil)

func NewBoardWidget(ctrl *Controller) *BoardWidget {
	w, h := ctrl.Surface().Size()
	b := &BoardWidget{
		ctrl: ctrl,
		size: fyne.NewSize(float32(w), float32(h)),
	}
	b.ExtendBaseWidget(b)
	ctrl.Subscribe(b.redraw)
	return b
}

// redraw renders the whole surface for s. There is no partial update.
func (b *BoardWidget) redraw(s state.State) {
	img, err := b.ctrl.Surface().Render(s)
	if err != nil {
		b.ctrl.Logger().Error("render failed", "err", err)
		return
	}
	b.frame = img
	b.Refresh()
}

func (b *BoardWidget) point(pos fyne.Position) (float64, float64) {
	return float64(pos.X), float64(pos.Y)
}

func (b *BoardWidget) MouseDown(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.ctrl.Dispatch(state.PointerDown(b.point(e.Position)))
}

func (b *BoardWidget) MouseUp(e *desktop.MouseEvent) {
	if e.Button != desktop.MouseButtonPrimary {
		return
	}
	b.ctrl.Dispatch(state.PointerUp(b.point(e.Position)))
}

func (b *BoardWidget) Dragged(e *fyne.DragEvent) {
	b.ctrl.Dispatch(state.PointerMove(b.point(e.Position)))
}

// DragEnd commits at the last drag position in case the release was
// delivered elsewhere. If MouseUp already ran the board is idle and this
// is a no-op.
func (b *BoardWidget) DragEnd() {
	s := b.ctrl.State()
	if s.Mode == state.ModeDragging {
		b.ctrl.Dispatch(state.PointerUp(s.Cursor.X, s.Cursor.Y))
	}
}

func (b *BoardWidget) DoubleTapped(e *fyne.PointEvent) {
	b.ctrl.Dispatch(state.DoubleClick(b.point(e.Position)))
}

func (b *BoardWidget) MouseIn(*desktop.MouseEvent) {}

func (b *BoardWidget) MouseMoved(e *desktop.MouseEvent) {
	if b.ctrl.State().Mode == state.ModeDragging {
		b.ctrl.Dispatch(state.PointerMove(b.point(e.Position)))
	}
}

func (b *BoardWidget) MouseOut() {
	b.ctrl.Dispatch(state.Event{Type: state.EventPointerLeave})
}

func (b *BoardWidget) CreateRenderer() fyne.WidgetRenderer {
	img := canvas.NewImageFromImage(b.frame)
	img.FillMode = canvas.ImageFillStretch
	img.ScaleMode = canvas.ImageScaleFastest
	img.SetMinSize(b.size)
	return &boardWidgetRenderer{board: b, image: img}
}

type boardWidgetRenderer struct {
	board *BoardWidget
	image *canvas.Image
}

func (r *boardWidgetRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.image}
}

func (r *boardWidgetRenderer) Refresh() {
	r.image.Image = r.board.frame
	canvas.Refresh(r.image)
}

func (r *boardWidgetRenderer) Layout(size fyne.Size) {
	r.image.Resize(size)
}

func (r *boardWidgetRenderer) MinSize() fyne.Size {
	return r.board.size
}

func (r *boardWidgetRenderer) Destroy() {}
