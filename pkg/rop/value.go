package rop

import "fmt"

// Value is a classified value. The zero Value is Absent.
type Value struct {
	shape Shape
	slots []any // payload slots of a Success or Failure, never empty
	v     any   // the wrapped value of an Opaque
}

// Success builds a Success. Extra slots produce a multi-arity Success whose
// payload is the ordered list of every slot.
func Success(payload any, extra ...any) Value {
	return tagged(ShapeSuccess, payload, extra)
}

// Failure builds a Failure, see Success.
func Failure(reason any, extra ...any) Value {
	return tagged(ShapeFailure, reason, extra)
}

// None returns the Absent value.
func None() Value {
	return Value{}
}

func tagged(s Shape, first any, extra []any) Value {
	slots := make([]any, 0, len(extra)+1)
	slots = append(slots, first)
	slots = append(slots, extra...)
	return Value{shape: s, slots: slots}
}

func opaque(v any) Value {
	return Value{shape: ShapeOpaque, v: v}
}

func (v Value) Shape() Shape {
	return v.shape
}

func (v Value) IsSuccess() bool {
	return v.shape == ShapeSuccess
}

func (v Value) IsFailure() bool {
	return v.shape == ShapeFailure
}

func (v Value) IsAbsent() bool {
	return v.shape == ShapeAbsent
}

func (v Value) IsOpaque() bool {
	return v.shape == ShapeOpaque
}

// Arity counts the marker plus the payload slots of a Success or Failure.
// It is 0 for Absent and Opaque.
func (v Value) Arity() int {
	if len(v.slots) == 0 {
		return 0
	}
	return len(v.slots) + 1
}

// Payload extracts the meaningful content of v:
//   - Success/Failure of arity 2: the single slot, unwrapped
//   - Success/Failure of arity > 2: a fresh []any of the slots, in order
//   - Opaque: the wrapped value
//   - Absent: an empty []any
func (v Value) Payload() any {
	switch v.shape {
	case ShapeSuccess, ShapeFailure:
		if len(v.slots) == 1 {
			return v.slots[0]
		}
		return v.Slots()
	case ShapeOpaque:
		return v.v
	default:
		return []any{}
	}
}

// Slots returns a copy of the payload slots. Nil for Absent and Opaque.
func (v Value) Slots() []any {
	if len(v.slots) == 0 {
		return nil
	}
	out := make([]any, len(v.slots))
	copy(out, v.slots)
	return out
}

// Tuple returns the marker-first form of a Success or Failure, nil otherwise.
func (v Value) Tuple() Tuple {
	if len(v.slots) == 0 {
		return nil
	}
	t := make(Tuple, 0, len(v.slots)+1)
	t = append(t, shapeMarker(v.shape))
	return append(t, v.slots...)
}

// Unbox returns v in its unclassified form: a Tuple for Success and Failure,
// nil for Absent and the wrapped value for Opaque.
func (v Value) Unbox() any {
	switch v.shape {
	case ShapeSuccess, ShapeFailure:
		return v.Tuple()
	case ShapeOpaque:
		return v.v
	default:
		return nil
	}
}

func (v Value) String() string {
	switch v.shape {
	case ShapeSuccess, ShapeFailure:
		return fmt.Sprintf("%s%v", v.shape, v.slots)
	case ShapeOpaque:
		return fmt.Sprintf("opaque(%v)", v.v)
	default:
		return "absent"
	}
}
