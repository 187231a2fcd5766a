package rop

import "reflect"

// Classify determines the shape of an arbitrary value. First match wins:
//  1. a Value (or non-nil *Value) is returned as is
//  2. nil and typed nil pointers are Absent
//  3. a Tupler is classified through its Tuple, a nil Tuple being Absent
//  4. a Tuple or Go array of length >= 2 with an OK/Err marker in slot 0 is
//     Success/Failure
//  5. everything else is Opaque
//
// Slices other than Tuple are lists, not tuples, and are always Opaque.
// Classify never panics.
func Classify(x any) Value {
	switch t := x.(type) {
	case Value:
		return t
	case *Value:
		if t != nil {
			return *t
		}
		return None()
	}

	if IsNil(x) {
		return None()
	}

	switch t := x.(type) {
	case Tupler:
		tt := t.Tuple()
		if tt == nil {
			return None()
		}
		return classifyTuple(tt, x)
	case Tuple:
		return classifyTuple(t, x)
	}

	rv := reflect.ValueOf(x)
	if rv.Kind() == reflect.Array && rv.Len() >= 2 {
		s, ok := markerShape(rv.Index(0).Interface())
		if !ok {
			return opaque(x)
		}
		slots := make([]any, rv.Len()-1)
		for i := range slots {
			slots[i] = rv.Index(i + 1).Interface()
		}
		return Value{shape: s, slots: slots}
	}

	return opaque(x)
}

func classifyTuple(t Tuple, orig any) Value {
	if len(t) < 2 {
		return opaque(orig)
	}
	s, ok := markerShape(t[0])
	if !ok {
		return opaque(orig)
	}
	slots := make([]any, len(t)-1)
	copy(slots, t[1:])
	return Value{shape: s, slots: slots}
}

// ShapeOf is Classify(x).Shape().
func ShapeOf(x any) Shape {
	return Classify(x).Shape()
}

// Extract is Classify(x).Payload().
func Extract(x any) any {
	return Classify(x).Payload()
}
