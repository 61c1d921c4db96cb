package surface

import "linkbox/connector"

// HitTest returns the rectangle whose bounding box contains p. A wins when
// both do.
func (s *Surface) HitTest(p connector.Point) Handle {
	switch {
	case s.rects[0].Contains(p):
		return First
	case s.rects[1].Contains(p):
		return Second
	}
	return None
}

// PointerDown starts dragging the rectangle under p, if any. It is ignored
// while a drag is already in progress.
func (s *Surface) PointerDown(p connector.Point) Handle {
	if s.dragging == None {
		s.dragging = s.HitTest(p)
	}
	return s.dragging
}

// PointerMove snaps the dragged rectangle's center to p and redraws. It
// does nothing when idle.
func (s *Surface) PointerMove(p connector.Point) error {
	if s.dragging == None {
		return nil
	}
	return s.SetPosition(s.dragging, p)
}

// PointerUp ends any drag.
func (s *Surface) PointerUp() {
	s.dragging = None
}
