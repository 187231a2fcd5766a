package solo

import (
	"github.com/ib-77/ropshape/pkg/rop"
)

// OrElse returns alternative when input is a Failure or Absent.
func OrElse(input any, alternative any) any {
	switch rop.ShapeOf(input) {
	case rop.ShapeFailure, rop.ShapeAbsent:
		return alternative
	}
	return input
}

// OrElseLazy calls f only when input is a Failure (with its reason) or Absent
// (with an empty []any).
func OrElseLazy(input any, f func(reason any) any) any {
	v := rop.Classify(input)
	switch v.Shape() {
	case rop.ShapeFailure, rop.ShapeAbsent:
		return f(v.Payload())
	}
	return input
}

// UnwrapOr extracts the payload of a Success, returns an Opaque value as is
// and falls back to def for Failure and Absent.
func UnwrapOr(input any, def any) any {
	v := rop.Classify(input)
	switch v.Shape() {
	case rop.ShapeFailure, rop.ShapeAbsent:
		return def
	}
	return v.Payload()
}

// UnwrapOrLazy is UnwrapOr with the fallback computed by f, see OrElseLazy
// for what f receives.
func UnwrapOrLazy(input any, f func(reason any) any) any {
	v := rop.Classify(input)
	switch v.Shape() {
	case rop.ShapeFailure, rop.ShapeAbsent:
		return f(v.Payload())
	}
	return v.Payload()
}
