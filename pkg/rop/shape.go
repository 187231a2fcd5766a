package rop

// Shape is the classification of a value.
type Shape uint8

const (
	ShapeAbsent Shape = iota
	ShapeSuccess
	ShapeFailure
	ShapeOpaque
)

func (s Shape) String() string {
	switch s {
	case ShapeAbsent:
		return "absent"
	case ShapeSuccess:
		return "success"
	case ShapeFailure:
		return "failure"
	case ShapeOpaque:
		return "opaque"
	default:
		return "unknown"
	}
}

// Marker tags slot 0 of a Tuple.
type Marker string

const (
	OK  Marker = "ok"
	Err Marker = "error"
)

// Tuple is a fixed-size ordered sequence. A Tuple of length >= 2 whose first
// slot is OK or Err classifies as Success or Failure; any other Tuple is
// Opaque.
type Tuple []any

func markerShape(slot any) (Shape, bool) {
	m, ok := slot.(Marker)
	if !ok {
		return ShapeOpaque, false
	}
	switch m {
	case OK:
		return ShapeSuccess, true
	case Err:
		return ShapeFailure, true
	}
	return ShapeOpaque, false
}

func shapeMarker(s Shape) Marker {
	if s == ShapeFailure {
		return Err
	}
	return OK
}
