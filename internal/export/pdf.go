package export

import (
	"fmt"
	"io"
	"time"

	"github.com/gogpu/gg"
	"github.com/jung-kurt/gofpdf"

	"CanvasCreator/internal/state"
)

// WritePDF draws the scene as vector shapes on a single page the size of
// the canvas, one PDF point per canvas unit.
func WritePDF(w io.Writer, s state.State, width, height, gridSize float64, created time.Time) error {
	style := s.Theme.Style()

	p := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	p.SetTitle("Canvas Creation", true)
	p.SetCreator("Canvas Creator", true)
	p.SetCreationDate(created)
	p.SetMargins(0, 0, 0)
	p.SetAutoPageBreak(false, 0)
	p.AddPage()

	setFill(p, style.Canvas)
	p.Rect(0, 0, width, height, "F")

	setDraw(p, style.Grid)
	p.SetLineWidth(1)
	if gridSize <= 0 {
		gridSize = 20
	}
	for x := 0.0; x <= width; x += gridSize {
		p.Line(x, 0, x, height)
	}
	for y := 0.0; y <= height; y += gridSize {
		p.Line(0, y, width, y)
	}
	p.SetAlpha(1, "Normal")

	p.SetFont("Helvetica", "B", 14)
	for _, c := range s.Scene.Circles() {
		setFill(p, c.Color)
		p.Circle(c.Center.X, c.Center.Y, c.Radius, "F")

		setDraw(p, style.Outline)
		p.SetLineWidth(2)
		p.Circle(c.Center.X, c.Center.Y, c.Radius, "D")
		p.SetAlpha(1, "Normal")

		if c.Radius > 30 {
			label := fmt.Sprintf("r: %d", c.RoundedRadius())
			r, g, b, a := rgba(style.Label)
			p.SetTextColor(r, g, b)
			p.SetAlpha(a, "Normal")
			p.Text(c.Center.X-p.GetStringWidth(label)/2, c.Center.Y+14*0.35, label)
			p.SetAlpha(1, "Normal")
		}
	}

	if err := p.Output(w); err != nil {
		return fmt.Errorf("pdf: %w", err)
	}
	return nil
}

func setFill(p *gofpdf.Fpdf, hex string) {
	r, g, b, a := rgba(hex)
	p.SetFillColor(r, g, b)
	p.SetAlpha(a, "Normal")
}

func setDraw(p *gofpdf.Fpdf, hex string) {
	r, g, b, a := rgba(hex)
	p.SetDrawColor(r, g, b)
	p.SetAlpha(a, "Normal")
}

func rgba(hex string) (r, g, b int, a float64) {
	c := gg.Hex(hex)
	return int(c.R*255 + 0.5), int(c.G*255 + 0.5), int(c.B*255 + 0.5), c.A
}
