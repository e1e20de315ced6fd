// Package render draws the application state onto a raster surface.
//
// Every call is a full redraw: background, grid, every committed circle in
// insertion order, then the drag preview. Nothing is cached between calls
// except the font faces.
package render

import (
	"fmt"
	"image"
	"io"
	"math"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"CanvasCreator/internal/state"
)

const (
	outlineWidth   = 2
	gridLineWidth  = 1
	labelMinRadius = 30 // circles larger than this carry a radius label
	labelSize      = 14
)

type Renderer struct {
	width    int
	height   int
	gridSize float64

	regular *text.FontSource
	bold    *text.FontSource
	label   text.Face
	preview text.Face
}

// New loads the Go fonts and prepares a renderer for a width x height
// surface with grid lines every gridSize units.
func New(width, height int, gridSize float64) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("render: invalid surface size %dx%d", width, height)
	}
	if gridSize <= 0 {
		return nil, fmt.Errorf("render: invalid grid size %v", gridSize)
	}
	regular, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("render: load regular font: %w", err)
	}
	bold, err := text.NewFontSource(gobold.TTF)
	if err != nil {
		_ = regular.Close()
		return nil, fmt.Errorf("render: load bold font: %w", err)
	}
	return &Renderer{
		width:    width,
		height:   height,
		gridSize: gridSize,
		regular:  regular,
		bold:     bold,
		label:    bold.Face(labelSize),
		preview:  regular.Face(labelSize),
	}, nil
}

func (r *Renderer) Close() error {
	err := r.regular.Close()
	if berr := r.bold.Close(); err == nil {
		err = berr
	}
	return err
}

func (r *Renderer) Size() (int, int) { return r.width, r.height }

func (r *Renderer) GridSize() float64 { return r.gridSize }

// Render draws s and returns the resulting image.
func (r *Renderer) Render(s state.State) (image.Image, error) {
	dc := gg.NewContext(r.width, r.height)
	defer dc.Close()

	if err := r.draw(dc, s); err != nil {
		return nil, err
	}
	if err := dc.FlushGPU(); err != nil {
		return nil, fmt.Errorf("render: flush: %w", err)
	}
	return dc.Image(), nil
}

// EncodePNG renders s and writes it to w as PNG.
func (r *Renderer) EncodePNG(w io.Writer, s state.State) error {
	dc := gg.NewContext(r.width, r.height)
	defer dc.Close()

	if err := r.draw(dc, s); err != nil {
		return err
	}
	if err := dc.FlushGPU(); err != nil {
		return fmt.Errorf("render: flush: %w", err)
	}
	return dc.EncodePNG(w)
}

func (r *Renderer) draw(dc *gg.Context, s state.State) error {
	style := s.Theme.Style()
	dc.ClearWithColor(gg.Hex(style.Canvas))

	if err := r.drawGrid(dc, style); err != nil {
		return err
	}
	for _, c := range s.Scene.Circles() {
		if err := r.drawCircle(dc, c, style); err != nil {
			return err
		}
	}
	if preview, ok := s.Preview(); ok {
		if err := r.drawCircle(dc, preview, style); err != nil {
			return err
		}
		dc.SetFont(r.preview)
		dc.SetColor(gg.Hex(style.PreviewLabel).Color())
		dc.DrawString(fmt.Sprintf("Radius: %dpx", int(math.Round(preview.Radius))), s.Cursor.X+10, s.Cursor.Y-10)
	}
	return nil
}

func (r *Renderer) drawGrid(dc *gg.Context, style state.Style) error {
	w, h := float64(r.width), float64(r.height)
	dc.SetColor(gg.Hex(style.Grid).Color())
	dc.SetLineWidth(gridLineWidth)
	for x := 0.0; x <= w; x += r.gridSize {
		dc.DrawLine(x, 0, x, h)
	}
	for y := 0.0; y <= h; y += r.gridSize {
		dc.DrawLine(0, y, w, y)
	}
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("render: grid: %w", err)
	}
	return nil
}

func (r *Renderer) drawCircle(dc *gg.Context, c state.Circle, style state.Style) error {
	dc.DrawCircle(c.Center.X, c.Center.Y, c.Radius)
	dc.SetColor(gg.Hex(c.Color).Color())
	if err := dc.FillPreserve(); err != nil {
		return fmt.Errorf("render: fill circle %s: %w", c.ID, err)
	}
	dc.SetColor(gg.Hex(style.Outline).Color())
	dc.SetLineWidth(outlineWidth)
	if err := dc.Stroke(); err != nil {
		return fmt.Errorf("render: outline circle %s: %w", c.ID, err)
	}

	if c.Radius > labelMinRadius {
		dc.SetFont(r.label)
		dc.SetColor(gg.Hex(style.Label).Color())
		dc.DrawStringAnchored(fmt.Sprintf("r: %d", c.RoundedRadius()), c.Center.X, c.Center.Y, 0.5, 0.5)
	}
	return nil
}
