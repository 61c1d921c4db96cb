package surface

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"testing"

	"linkbox/connector"
)

// recorder logs every draw call as a string.
type recorder struct {
	calls []string
}

func (r *recorder) ClearRect(x, y, w, h float64) {
	r.calls = append(r.calls, fmt.Sprintf("clear %g %g %g %g", x, y, w, h))
}
func (r *recorder) BeginPath() { r.calls = append(r.calls, "begin") }
func (r *recorder) StrokeRect(x, y, w, h float64) {
	r.calls = append(r.calls, fmt.Sprintf("rect %g %g %g %g", x, y, w, h))
}
func (r *recorder) MoveTo(x, y float64) { r.calls = append(r.calls, fmt.Sprintf("move %g %g", x, y)) }
func (r *recorder) LineTo(x, y float64) { r.calls = append(r.calls, fmt.Sprintf("line %g %g", x, y)) }
func (r *recorder) Stroke()             { r.calls = append(r.calls, "stroke") }

func (r *recorder) reset() { r.calls = nil }

func TestRender_DefaultState(t *testing.T) {
	rec := &recorder{}
	s := New(rec)
	if len(rec.calls) != 0 {
		t.Fatalf("New drew %v before Render", rec.calls)
	}

	if err := s.Render(); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := []string{
		"clear 0 0 800 600",
		"begin",
		"rect 100 125 100 50",
		"begin",
		"rect 350 275 100 50",
		"begin",
		"move 150 125",
		"line 400 275",
		"stroke",
	}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("Render() calls =\n%v\nwant\n%v", rec.calls, want)
	}
}

func TestConnectionPoints(t *testing.T) {
	s := New(nil)
	a, b := s.ConnectionPoints()
	if a != (connector.ConnectionPoint{Point: connector.Point{X: 150, Y: 125}, Angle: 270}) {
		t.Errorf("A = %v", a)
	}
	if b != (connector.ConnectionPoint{Point: connector.Point{X: 400, Y: 275}, Angle: 90}) {
		t.Errorf("B = %v", b)
	}

	if err := s.SetPosition(First, connector.Point{X: 10.25, Y: 33.5}); err != nil {
		t.Fatal(err)
	}
	a, _ = s.ConnectionPoints()
	if a.Point.X != 10.25 || a.Point.Y != 8.5 {
		t.Errorf("A after move = %v", a)
	}
}

func TestRender_InvalidAngleSkipsConnector(t *testing.T) {
	rec := &recorder{}
	s := New(rec, WithAngles(45, 90))

	err := s.Render()
	if err == nil {
		t.Fatal("Render() expected error for 45 degree angle")
	}
	var invalid *connector.InvalidConnectionError
	if !errors.As(err, &invalid) {
		t.Fatalf("error %v does not wrap *InvalidConnectionError", err)
	}
	if invalid.Endpoint != connector.EndpointA || invalid.Reason != connector.ReasonBadAngle {
		t.Errorf("error = %+v", invalid)
	}

	want := []string{
		"clear 0 0 800 600",
		"begin",
		"rect 100 125 100 50",
		"begin",
		"rect 350 275 100 50",
	}
	if !reflect.DeepEqual(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
}

func TestDragGesture(t *testing.T) {
	rec := &recorder{}
	s := New(rec)

	if got := s.PointerDown(connector.Point{X: 150, Y: 150}); got != First {
		t.Fatalf("PointerDown() = %v, want A", got)
	}
	if s.Dragging() != First {
		t.Fatalf("Dragging() = %v", s.Dragging())
	}

	rec.reset()
	if err := s.PointerMove(connector.Point{X: 200, Y: 220}); err != nil {
		t.Fatalf("PointerMove() error = %v", err)
	}
	if got := s.Rect(First).Position; got != (connector.Point{X: 200, Y: 220}) {
		t.Errorf("A position = %v, want (200,220)", got)
	}
	if len(rec.calls) == 0 || rec.calls[0] != "clear 0 0 800 600" {
		t.Errorf("PointerMove did not redraw: %v", rec.calls)
	}

	s.PointerUp()
	if s.Dragging() != None {
		t.Errorf("Dragging() after up = %v, want none", s.Dragging())
	}
	if got := s.Rect(First).Position; got != (connector.Point{X: 200, Y: 220}) {
		t.Errorf("A position after up = %v", got)
	}
	if got := s.Rect(Second).Position; got != (connector.Point{X: 400, Y: 300}) {
		t.Errorf("B moved to %v", got)
	}
}

func TestPointerDown(t *testing.T) {
	tests := []struct {
		name string
		p    connector.Point
		want Handle
	}{
		{"inside A", connector.Point{X: 150, Y: 150}, First},
		{"A top-left corner", connector.Point{X: 100, Y: 125}, First},
		{"A bottom-right corner", connector.Point{X: 200, Y: 175}, First},
		{"inside B", connector.Point{X: 420, Y: 310}, Second},
		{"B edge", connector.Point{X: 450, Y: 300}, Second},
		{"empty space", connector.Point{X: 10, Y: 10}, None},
		{"just outside A", connector.Point{X: 200.5, Y: 150}, None},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New(nil)
			if got := s.PointerDown(tt.p); got != tt.want {
				t.Errorf("PointerDown(%v) = %v, want %v", tt.p, got, tt.want)
			}
		})
	}
}

func TestPointerDown_OverlapPrefersA(t *testing.T) {
	a, _ := DefaultRects()
	b := a.Moved(connector.Point{X: 170, Y: 160})
	s := New(nil, WithRects(a, b))

	if got := s.PointerDown(connector.Point{X: 165, Y: 155}); got != First {
		t.Errorf("PointerDown in overlap = %v, want A", got)
	}
}

func TestPointerDown_IgnoredWhileDragging(t *testing.T) {
	s := New(nil)
	s.PointerDown(connector.Point{X: 400, Y: 300})
	if got := s.PointerDown(connector.Point{X: 150, Y: 150}); got != Second {
		t.Errorf("second PointerDown switched drag to %v", got)
	}
}

func TestPointerMove_Idle(t *testing.T) {
	rec := &recorder{}
	s := New(rec)
	s.PointerDown(connector.Point{X: 5, Y: 5})

	if err := s.PointerMove(connector.Point{X: 600, Y: 500}); err != nil {
		t.Fatal(err)
	}
	if len(rec.calls) != 0 {
		t.Errorf("idle move drew %v", rec.calls)
	}
	a, b := DefaultRects()
	if s.Rect(First) != a || s.Rect(Second) != b {
		t.Error("idle move changed a rectangle")
	}
}

func TestPointerMove_PropagatesRenderError(t *testing.T) {
	s := New(&recorder{}, WithAngles(270, 30))
	s.PointerDown(connector.Point{X: 400, Y: 300})

	err := s.PointerMove(connector.Point{X: 500, Y: 500})
	if !errors.Is(err, connector.ErrInvalidConnection) {
		t.Fatalf("PointerMove() error = %v, want invalid connection", err)
	}
	if got := s.Rect(Second).Position; got != (connector.Point{X: 500, Y: 500}) {
		t.Errorf("B position = %v, move should still apply", got)
	}
}

func TestNudgeAndReset(t *testing.T) {
	s := New(&recorder{})
	if err := s.Nudge(Second, -10, 5); err != nil {
		t.Fatal(err)
	}
	if got := s.Rect(Second).Position; got != (connector.Point{X: 390, Y: 305}) {
		t.Errorf("B after nudge = %v", got)
	}
	if err := s.Nudge(None, 1, 1); err != nil {
		t.Fatal(err)
	}

	s.PointerDown(connector.Point{X: 150, Y: 150})
	if err := s.Reset(); err != nil {
		t.Fatal(err)
	}
	a, b := DefaultRects()
	if s.Rect(First) != a || s.Rect(Second) != b {
		t.Error("Reset did not restore default rectangles")
	}
	if s.Dragging() != None {
		t.Error("Reset left a drag in progress")
	}
}

func TestWithTolerance(t *testing.T) {
	s := New(nil, WithTolerance(0.5))
	if s.calc.Tolerance != 0.5 {
		t.Errorf("Tolerance = %v, want 0.5", s.calc.Tolerance)
	}
	if _, err := s.Path(); err != nil {
		t.Errorf("Path() error = %v", err)
	}
}

func TestWithRects_ClampsSize(t *testing.T) {
	a := connector.Rect{Position: connector.Point{X: 50, Y: 50}, Size: connector.Size{Width: 0, Height: -4}}
	b, _ := DefaultRects()
	b.Size.Width = math.NaN()

	s := New(nil, WithRects(a, b))
	if got := s.Rect(First).Size; got != (connector.Size{Width: MinRectSize, Height: MinRectSize}) {
		t.Errorf("A size = %+v, want clamped to %v", got, MinRectSize)
	}
	if got := s.Rect(Second).Size; got.Width != MinRectSize || got.Height != 50 {
		t.Errorf("B size = %+v", got)
	}
	if _, err := s.Path(); err != nil {
		t.Errorf("Path() error = %v", err)
	}
}

func TestNilContextStillValidates(t *testing.T) {
	s := New(nil, WithAngles(45, 90))
	if err := s.Render(); !errors.Is(err, connector.ErrInvalidConnection) {
		t.Errorf("Render() error = %v, want invalid connection", err)
	}

	s.PointerDown(connector.Point{X: 150, Y: 150})
	err := s.PointerMove(connector.Point{X: 300, Y: 300})
	var invalid *connector.InvalidConnectionError
	if !errors.As(err, &invalid) || invalid.Endpoint != connector.EndpointA {
		t.Errorf("PointerMove() error = %v, want endpoint A failure", err)
	}
	if err := s.SetPosition(Second, connector.Point{X: 10, Y: 10}); err == nil {
		t.Error("SetPosition() hid the invalid connection")
	}
}
