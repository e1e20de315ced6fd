// Package export writes the drawing to disk as PNG or PDF.
package export

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"CanvasCreator/internal/render"
	"CanvasCreator/internal/state"
)

const filePrefix = "canvas-creation-"

// Filename returns the download name for an export made at t, e.g.
// canvas-creation-2026-10-16.png. The date is the UTC calendar date.
func Filename(kind state.ExportKind, t time.Time) string {
	ext := ".png"
	if kind == state.ExportPDF {
		ext = ".pdf"
	}
	return filePrefix + t.UTC().Format("2006-01-02") + ext
}

type Exporter struct {
	Dir      string
	Renderer *render.Renderer
	Now      func() time.Time
	Logger   *slog.Logger
}

func New(dir string, r *render.Renderer, logger *slog.Logger) *Exporter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Exporter{Dir: dir, Renderer: r, Now: time.Now, Logger: logger}
}

// Export writes s in the requested format into Dir and returns the file
// path.
func (e *Exporter) Export(kind state.ExportKind, s state.State) (string, error) {
	path := filepath.Join(e.Dir, Filename(kind, e.Now()))
	if err := e.ExportTo(path, kind, s); err != nil {
		return "", err
	}
	return path, nil
}

// ExportTo writes s in the requested format to path.
func (e *Exporter) ExportTo(path string, kind state.ExportKind, s state.State) error {
	var write func(io.Writer) error
	switch kind {
	case state.ExportPNG:
		write = func(w io.Writer) error { return e.Renderer.EncodePNG(w, s) }
	case state.ExportPDF:
		width, height := e.Renderer.Size()
		grid := e.Renderer.GridSize()
		write = func(w io.Writer) error { return WritePDF(w, s, float64(width), float64(height), grid, e.Now()) }
	default:
		return fmt.Errorf("export: nothing to export for kind %d", kind)
	}

	if err := writeFile(path, write); err != nil {
		e.Logger.Error("export failed", "path", path, "err", err)
		return err
	}
	e.Logger.Info("exported", "path", path, "circles", s.Scene.Len())
	return nil
}

// writeFile writes through a temporary file in the target directory and
// renames it into place, so a failed export never leaves a truncated file.
// The handle is closed before returning.
func writeFile(path string, write func(io.Writer) error) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: create dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".canvas-*")
	if err != nil {
		return fmt.Errorf("export: create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := write(tmp); err != nil {
		tmp.Close()
		return fmt.Errorf("export: encode: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("export: close: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("export: rename: %w", err)
	}
	return nil
}
