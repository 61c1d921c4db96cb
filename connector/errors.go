package connector

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidConnection matches every *InvalidConnectionError via errors.Is.
var ErrInvalidConnection = errors.New("connection points are invalid")

// Endpoint names which end of a connector a point belongs to.
type Endpoint int

const (
	EndpointNone Endpoint = iota
	EndpointA
	EndpointB
)

func (e Endpoint) String() string {
	switch e {
	case EndpointA:
		return "A"
	case EndpointB:
		return "B"
	}
	return ""
}

// Reason is a bit set of validation failures.
type Reason int

const (
	ReasonOffEdge Reason = 1 << iota
	ReasonBadAngle
)

func (r Reason) String() string {
	var parts []string
	if r&ReasonOffEdge != 0 {
		parts = append(parts, "point not on rectangle edge")
	}
	if r&ReasonBadAngle != 0 {
		parts = append(parts, "angle not axis aligned")
	}
	if len(parts) == 0 {
		return "ok"
	}
	return strings.Join(parts, ", ")
}

// InvalidConnectionError is returned when a connection point is off its
// rectangle's edge or carries a non axis-aligned angle.
type InvalidConnectionError struct {
	Endpoint Endpoint
	Rect     Rect
	Point    ConnectionPoint
	Reason   Reason
}

func (e *InvalidConnectionError) Error() string {
	if e.Endpoint == EndpointNone {
		return fmt.Sprintf("%v: %s: %s", ErrInvalidConnection, e.Point, e.Reason)
	}
	return fmt.Sprintf("%v: endpoint %s %s: %s", ErrInvalidConnection, e.Endpoint, e.Point, e.Reason)
}

func (e *InvalidConnectionError) Is(target error) bool {
	return target == ErrInvalidConnection
}
