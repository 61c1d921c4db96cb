package main

import (
	"math"
	"strings"

	"linkbox/surface"
)

// gridContext rasterizes surface drawing calls onto a grid of terminal
// cells. Surface coordinates are scaled so the full 800x600 surface fills
// the grid.
type gridContext struct {
	cols  int
	rows  int
	cells [][]rune
	path  []cell
}

func newGridContext(cols, rows int) *gridContext {
	g := &gridContext{}
	g.Resize(cols, rows)
	return g
}

func (g *gridContext) Resize(cols, rows int) {
	if cols < 1 {
		cols = 1
	}
	if rows < 1 {
		rows = 1
	}
	g.cols, g.rows = cols, rows
	g.cells = make([][]rune, rows)
	for y := range g.cells {
		g.cells[y] = []rune(strings.Repeat(" ", cols))
	}
	g.path = g.path[:0]
}

// toCell maps a surface point to the cell containing it.
func (g *gridContext) toCell(x, y float64) cell {
	return cell{
		X: int(math.Floor(x * float64(g.cols) / surface.Width)),
		Y: int(math.Floor(y * float64(g.rows) / surface.Height)),
	}
}

// toSurface maps a cell to the surface point at its center.
func (g *gridContext) toSurface(c cell) (float64, float64) {
	return (float64(c.X) + 0.5) * surface.Width / float64(g.cols),
		(float64(c.Y) + 0.5) * surface.Height / float64(g.rows)
}

func (g *gridContext) isValidPos(x, y int) bool {
	return y >= 0 && y < g.rows && x >= 0 && x < g.cols
}

func (g *gridContext) set(x, y int, r rune) {
	if g.isValidPos(x, y) {
		g.cells[y][x] = r
	}
}

func (g *gridContext) at(x, y int) rune {
	if !g.isValidPos(x, y) {
		return 0
	}
	return g.cells[y][x]
}

func (g *gridContext) ClearRect(x, y, w, h float64) {
	from := g.toCell(x, y)
	to := g.toCell(x+w, y+h)
	for cy := from.Y; cy < to.Y; cy++ {
		for cx := from.X; cx < to.X; cx++ {
			g.set(cx, cy, ' ')
		}
	}
}

func (g *gridContext) BeginPath() {
	g.path = g.path[:0]
}

func (g *gridContext) StrokeRect(x, y, w, h float64) {
	from := g.toCell(x, y)
	to := g.toCell(x+w, y+h)

	for cy := from.Y; cy <= to.Y; cy++ {
		for cx := from.X; cx <= to.X; cx++ {
			onRow := cy == from.Y || cy == to.Y
			onCol := cx == from.X || cx == to.X
			switch {
			case onRow && onCol:
				g.set(cx, cy, glyphCorner)
			case onRow:
				g.set(cx, cy, glyphHorizontal)
			case onCol:
				g.set(cx, cy, glyphVertical)
			}
		}
	}
}

func (g *gridContext) MoveTo(x, y float64) {
	g.path = append(g.path[:0], g.toCell(x, y))
}

func (g *gridContext) LineTo(x, y float64) {
	g.path = append(g.path, g.toCell(x, y))
}

// Stroke draws the pending polyline without overwriting rectangle borders,
// then marks its two ends.
func (g *gridContext) Stroke() {
	if len(g.path) == 0 {
		return
	}
	for i := 0; i+1 < len(g.path); i++ {
		g.drawLineSegment(g.path[i], g.path[i+1])
	}
	first, last := g.path[0], g.path[len(g.path)-1]
	g.set(first.X, first.Y, glyphEndpoint)
	g.set(last.X, last.Y, glyphEndpoint)
	g.path = g.path[:0]
}

func (g *gridContext) drawLineSegment(from, to cell) {
	glyph := segmentGlyph(to.X-from.X, to.Y-from.Y)

	dx, dy := abs(to.X-from.X), -abs(to.Y-from.Y)
	sx, sy := 1, 1
	if from.X > to.X {
		sx = -1
	}
	if from.Y > to.Y {
		sy = -1
	}
	errAcc := dx + dy
	x, y := from.X, from.Y
	for {
		if g.at(x, y) == ' ' {
			g.set(x, y, glyph)
		}
		if x == to.X && y == to.Y {
			return
		}
		e2 := 2 * errAcc
		if e2 >= dy {
			errAcc += dy
			x += sx
		}
		if e2 <= dx {
			errAcc += dx
			y += sy
		}
	}
}

// segmentGlyph picks the character that best follows a segment's slope.
func segmentGlyph(dx, dy int) rune {
	switch {
	case dy == 0 || abs(dx) > 2*abs(dy):
		return glyphHorizontal
	case dx == 0 || abs(dy) > 2*abs(dx):
		return glyphVertical
	case (dx > 0) == (dy > 0):
		return glyphFalling
	}
	return glyphRising
}

// Lines returns the grid as one string per row.
func (g *gridContext) Lines() []string {
	lines := make([]string, g.rows)
	for y, row := range g.cells {
		lines[y] = string(row)
	}
	return lines
}

func (g *gridContext) String() string {
	return strings.Join(g.Lines(), "\n")
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
