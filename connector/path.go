package connector

import "math"

// Calculator validates connection points and computes connector paths.
// The zero value compares edge coordinates exactly.
type Calculator struct {
	// Tolerance is the largest distance a point may sit from an edge and
	// still count as on it. Zero means exact equality.
	Tolerance float64
}

var defaultCalculator Calculator

// ComputePath validates both connection points with exact edge matching
// and returns the connector path from pointA to pointB.
func ComputePath(rectA, rectB Rect, pointA, pointB ConnectionPoint) (Path, error) {
	return defaultCalculator.ComputePath(rectA, rectB, pointA, pointB)
}

// Validate checks cp against rect with exact edge matching.
func Validate(rect Rect, cp ConnectionPoint) error {
	return defaultCalculator.Validate(rect, cp)
}

// ComputePath fails fast on the first invalid endpoint, checking A first.
// The returned path always starts at pointA.Point and ends at pointB.Point.
func (c Calculator) ComputePath(rectA, rectB Rect, pointA, pointB ConnectionPoint) (Path, error) {
	if err := c.validate(EndpointA, rectA, pointA); err != nil {
		return nil, err
	}
	if err := c.validate(EndpointB, rectB, pointB); err != nil {
		return nil, err
	}

	// Orthogonal routing around the rectangles would insert waypoints here.
	return Path{pointA.Point, pointB.Point}, nil
}

func (c Calculator) Validate(rect Rect, cp ConnectionPoint) error {
	return c.validate(EndpointNone, rect, cp)
}

func (c Calculator) validate(end Endpoint, rect Rect, cp ConnectionPoint) error {
	var reason Reason
	if !c.onEdge(rect, cp.Point) {
		reason |= ReasonOffEdge
	}
	if !ValidAngle(cp.Angle) {
		reason |= ReasonBadAngle
	}
	if reason == 0 {
		return nil
	}
	return &InvalidConnectionError{Endpoint: end, Rect: rect, Point: cp, Reason: reason}
}

func (c Calculator) onEdge(rect Rect, p Point) bool {
	left, right := rect.Left(), rect.Right()
	top, bottom := rect.Top(), rect.Bottom()

	onVertical := (c.near(p.X, left) || c.near(p.X, right)) &&
		p.Y >= top-c.Tolerance && p.Y <= bottom+c.Tolerance
	onHorizontal := (c.near(p.Y, top) || c.near(p.Y, bottom)) &&
		p.X >= left-c.Tolerance && p.X <= right+c.Tolerance
	return onVertical || onHorizontal
}

func (c Calculator) near(v, edge float64) bool {
	if c.Tolerance <= 0 {
		return v == edge
	}
	return math.Abs(v-edge) <= c.Tolerance
}

// ValidAngle reports whether angle mod 360 is 0, 90, 180 or 270. The
// remainder keeps the sign of angle, so negative angles are rejected.
func ValidAngle(angle float64) bool {
	switch math.Mod(angle, 360) {
	case 0, 90, 180, 270:
		return true
	}
	return false
}

// Direction returns the outward unit vector for a valid angle in screen
// coordinates: 0 points right, 90 down, 180 left, 270 up.
func Direction(angle float64) (dx, dy float64, ok bool) {
	if !ValidAngle(angle) {
		return 0, 0, false
	}
	switch math.Mod(angle, 360) {
	case 0:
		return 1, 0, true
	case 90:
		return 0, 1, true
	case 180:
		return -1, 0, true
	default:
		return 0, -1, true
	}
}
