// Package connector validates rectangle attachment points and computes the
// connector path drawn between two rectangles.
package connector

import (
	"fmt"
	"strconv"
	"strings"
)

// Point is a position in surface space. Y grows downward.
type Point struct {
	X, Y float64
}

func (p Point) String() string {
	return fmt.Sprintf("(%s,%s)", formatCoord(p.X), formatCoord(p.Y))
}

// Size holds a non-negative width and height.
type Size struct {
	Width, Height float64
}

// Rect is a rectangle described by its center and size.
type Rect struct {
	Position Point
	Size     Size
}

func (r Rect) Left() float64   { return r.Position.X - r.Size.Width/2 }
func (r Rect) Right() float64  { return r.Position.X + r.Size.Width/2 }
func (r Rect) Top() float64    { return r.Position.Y - r.Size.Height/2 }
func (r Rect) Bottom() float64 { return r.Position.Y + r.Size.Height/2 }

// Contains reports whether p lies inside the bounding box, edges included.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left() && p.X <= r.Right() &&
		p.Y >= r.Top() && p.Y <= r.Bottom()
}

// TopCenter returns the midpoint of the top edge.
func (r Rect) TopCenter() Point {
	return Point{X: r.Position.X, Y: r.Position.Y - r.Size.Height/2}
}

// Moved returns a copy of r centered on p.
func (r Rect) Moved(p Point) Rect {
	r.Position = p
	return r
}

// ConnectionPoint is where a connector attaches to a rectangle and the
// outward direction it leaves in, in degrees.
type ConnectionPoint struct {
	Point Point
	Angle float64
}

func (c ConnectionPoint) String() string {
	return fmt.Sprintf("%s@%s", c.Point, formatCoord(c.Angle))
}

// Path is the ordered list of points a connector is drawn through.
type Path []Point

// String renders the path as space separated "x,y" pairs.
func (p Path) String() string {
	var b strings.Builder
	for i, pt := range p {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(formatCoord(pt.X))
		b.WriteByte(',')
		b.WriteString(formatCoord(pt.Y))
	}
	return b.String()
}

func formatCoord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
