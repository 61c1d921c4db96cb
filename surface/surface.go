// Package surface holds the two-rectangle diagram state, the drag state
// machine, and the redraw step that strokes rectangles and their connector
// onto a DrawContext.
package surface

import (
	"fmt"

	"linkbox/connector"
)

// Logical surface size.
const (
	Width  = 800
	Height = 600
)

// Default attachment angles: A leaves upward, B is entered from above.
const (
	DefaultAngleA = 270
	DefaultAngleB = 90
)

// DrawContext is the immediate-mode 2D drawing API the surface renders to.
type DrawContext interface {
	ClearRect(x, y, w, h float64)
	BeginPath()
	StrokeRect(x, y, w, h float64)
	MoveTo(x, y float64)
	LineTo(x, y float64)
	Stroke()
}

// Handle selects one of the two rectangles.
type Handle int

const (
	None Handle = iota
	First
	Second
)

func (h Handle) String() string {
	switch h {
	case First:
		return "A"
	case Second:
		return "B"
	}
	return "none"
}

// Surface owns two rectangles and redraws them, plus the connector between
// their top-center attachment points, after every position change.
type Surface struct {
	ctx      DrawContext
	rects    [2]connector.Rect
	angles   [2]float64
	calc     connector.Calculator
	dragging Handle
}

type Option func(*Surface)

// WithAngles overrides the attachment angles of A and B.
func WithAngles(a, b float64) Option {
	return func(s *Surface) { s.angles = [2]float64{a, b} }
}

// WithTolerance accepts attachment points within t of a rectangle edge.
func WithTolerance(t float64) Option {
	return func(s *Surface) { s.calc.Tolerance = t }
}

// MinRectSize is the smallest width or height a rectangle may have.
const MinRectSize = 1

// WithRects replaces the initial rectangles. Widths and heights below
// MinRectSize, NaN included, are raised to MinRectSize.
func WithRects(a, b connector.Rect) Option {
	return func(s *Surface) { s.rects = [2]connector.Rect{clampSize(a), clampSize(b)} }
}

func clampSize(r connector.Rect) connector.Rect {
	if !(r.Size.Width >= MinRectSize) {
		r.Size.Width = MinRectSize
	}
	if !(r.Size.Height >= MinRectSize) {
		r.Size.Height = MinRectSize
	}
	return r
}

// DefaultRects returns the rectangles a new surface starts with.
func DefaultRects() (a, b connector.Rect) {
	size := connector.Size{Width: 100, Height: 50}
	return connector.Rect{Position: connector.Point{X: 150, Y: 150}, Size: size},
		connector.Rect{Position: connector.Point{X: 400, Y: 300}, Size: size}
}

// New returns an idle surface drawing to ctx. Nothing is drawn until the
// first Render or position change.
func New(ctx DrawContext, opts ...Option) *Surface {
	a, b := DefaultRects()
	s := &Surface{
		ctx:    ctx,
		rects:  [2]connector.Rect{a, b},
		angles: [2]float64{DefaultAngleA, DefaultAngleB},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Rect returns the rectangle selected by h.
func (s *Surface) Rect(h Handle) connector.Rect {
	return s.rects[index(h)]
}

// Dragging returns the rectangle being dragged, or None.
func (s *Surface) Dragging() Handle {
	return s.dragging
}

// ConnectionPoints derives both attachment points from the current rects.
func (s *Surface) ConnectionPoints() (a, b connector.ConnectionPoint) {
	return connector.ConnectionPoint{Point: s.rects[0].TopCenter(), Angle: s.angles[0]},
		connector.ConnectionPoint{Point: s.rects[1].TopCenter(), Angle: s.angles[1]}
}

// Path computes the connector for the current state.
func (s *Surface) Path() (connector.Path, error) {
	a, b := s.ConnectionPoints()
	return s.calc.ComputePath(s.rects[0], s.rects[1], a, b)
}

// Render redraws into the surface's own context.
func (s *Surface) Render() error {
	return s.RenderTo(s.ctx)
}

// RenderTo clears ctx, strokes both rectangles and then the connector. If
// the connection points are invalid the connector is skipped and the
// *connector.InvalidConnectionError is returned wrapped. A nil ctx draws
// nothing but still validates.
func (s *Surface) RenderTo(ctx DrawContext) error {
	path, err := s.Path()
	if ctx == nil {
		if err != nil {
			return fmt.Errorf("render connector: %w", err)
		}
		return nil
	}
	ctx.ClearRect(0, 0, Width, Height)

	for _, r := range s.rects {
		ctx.BeginPath()
		ctx.StrokeRect(r.Left(), r.Top(), r.Size.Width, r.Size.Height)
	}

	if err != nil {
		return fmt.Errorf("render connector: %w", err)
	}
	ctx.BeginPath()
	ctx.MoveTo(path[0].X, path[0].Y)
	for _, p := range path[1:] {
		ctx.LineTo(p.X, p.Y)
	}
	ctx.Stroke()
	return nil
}

// SetPosition centers rectangle h on p and redraws.
func (s *Surface) SetPosition(h Handle, p connector.Point) error {
	if h == None {
		return nil
	}
	i := index(h)
	s.rects[i] = s.rects[i].Moved(p)
	return s.Render()
}

// Nudge moves rectangle h by (dx, dy) and redraws.
func (s *Surface) Nudge(h Handle, dx, dy float64) error {
	if h == None {
		return nil
	}
	pos := s.rects[index(h)].Position
	return s.SetPosition(h, connector.Point{X: pos.X + dx, Y: pos.Y + dy})
}

// Reset restores the default rectangle positions, keeping sizes, and
// redraws.
func (s *Surface) Reset() error {
	a, b := DefaultRects()
	s.rects[0] = s.rects[0].Moved(a.Position)
	s.rects[1] = s.rects[1].Moved(b.Position)
	s.dragging = None
	return s.Render()
}

func index(h Handle) int {
	if h == Second {
		return 1
	}
	return 0
}
