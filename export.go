package main

import (
	"fmt"
	"image/color"
	"io"
	"os"
	"time"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"linkbox/connector"
	"linkbox/surface"
)

// pngContext draws the surface through gg onto an 800x600 image.
type pngContext struct {
	dc *gg.Context
}

func newPNGContext() *pngContext {
	dc := gg.NewContext(surface.Width, surface.Height)
	dc.SetColor(color.White)
	dc.Clear()
	dc.SetColor(color.Black)
	dc.SetLineWidth(1.0)
	return &pngContext{dc: dc}
}

func (p *pngContext) ClearRect(x, y, w, h float64) {
	p.dc.ClearPath()
	p.dc.SetColor(color.White)
	p.dc.DrawRectangle(x, y, w, h)
	p.dc.Fill()
	p.dc.SetColor(color.Black)
}

func (p *pngContext) BeginPath() { p.dc.ClearPath() }

func (p *pngContext) StrokeRect(x, y, w, h float64) {
	p.dc.DrawRectangle(x, y, w, h)
	p.dc.Stroke()
}

func (p *pngContext) MoveTo(x, y float64) { p.dc.MoveTo(x, y) }
func (p *pngContext) LineTo(x, y float64) { p.dc.LineTo(x, y) }
func (p *pngContext) Stroke()             { p.dc.Stroke() }

// writePNG renders the current surface, then labels the rectangles and
// marks each attachment point with its outward direction.
func (m *model) writePNG(w io.Writer) error {
	pc := newPNGContext()
	renderErr := m.surface.RenderTo(pc)

	ttfFont, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return fmt.Errorf("failed to parse font: %w", err)
	}
	face := truetype.NewFace(ttfFont, &truetype.Options{
		Size:    12,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	pc.dc.SetFontFace(face)

	for _, h := range []surface.Handle{surface.First, surface.Second} {
		r := m.surface.Rect(h)
		pc.dc.DrawStringAnchored(h.String(), r.Position.X, r.Position.Y, 0.5, 0.5)
	}

	a, b := m.surface.ConnectionPoints()
	for _, cp := range []connector.ConnectionPoint{a, b} {
		drawAttachmentPNG(pc.dc, cp)
	}

	if renderErr != nil {
		pc.dc.SetRGB(0.8, 0, 0)
		pc.dc.DrawString(renderErr.Error(), 8, 16)
	}
	return pc.dc.EncodePNG(w)
}

func drawAttachmentPNG(dc *gg.Context, cp connector.ConnectionPoint) {
	dc.SetColor(color.Black)
	dc.DrawCircle(cp.Point.X, cp.Point.Y, 2.5)
	dc.Fill()

	dx, dy, ok := connector.Direction(cp.Angle)
	if !ok {
		return
	}
	tickLength := 8.0
	dc.DrawLine(cp.Point.X, cp.Point.Y, cp.Point.X+dx*tickLength, cp.Point.Y+dy*tickLength)
	dc.Stroke()
}

func (m *model) exportPNG(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()
	if err := m.writePNG(file); err != nil {
		return err
	}
	return file.Close()
}

func (m *model) exportVisualTXT(filename string) error {
	file, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer file.Close()

	// Render the frame exactly as it appears, without the status line
	for _, line := range m.grid.Lines() {
		fmt.Fprintln(file, line)
	}
	return file.Close()
}

func (m *model) saveSnapshot(op FileOperation) {
	ext := "png"
	if op == FileOpSaveVisualTXT {
		ext = "txt"
	}
	filename, err := m.config.GetSavePath(fmt.Sprintf("linkbox-%d.%s", time.Now().Unix(), ext))
	if err == nil {
		switch op {
		case FileOpSavePNG:
			err = m.exportPNG(filename)
		case FileOpSaveVisualTXT:
			err = m.exportVisualTXT(filename)
		}
	}
	if err != nil {
		m.errorMessage = fmt.Sprintf("snapshot failed: %v", err)
		m.log.Error("snapshot failed", "file", filename, "error", err)
		return
	}
	m.successMessage = "saved " + filename
	m.log.Info("snapshot saved", "file", filename)
}
