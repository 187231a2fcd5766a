package solo

import (
	"github.com/ib-77/ropshape/pkg/rop"
)

// Map transforms the payload of a Success; an Opaque value is passed to f
// directly and f's return value is returned as is. Failure and Absent are
// returned unchanged without calling f.
func Map(input any, f func(payload any) any) any {
	v := rop.Classify(input)
	switch v.Shape() {
	case rop.ShapeSuccess:
		return rop.Success(f(v.Payload()))
	case rop.ShapeOpaque:
		return f(v.Payload())
	}
	return input
}

// MapErr transforms the reason of a Failure. Everything else is returned
// unchanged.
func MapErr(input any, f func(reason any) any) any {
	v := rop.Classify(input)
	if v.IsFailure() {
		return rop.Failure(f(v.Payload()))
	}
	return input
}

// AndThen hands the payload of a Success (or an Opaque value) to f and returns
// whatever f returns. The result is NOT re-wrapped: f is responsible for
// returning a Success or Failure if the caller wants one. Failure and Absent
// short-circuit.
func AndThen(input any, f func(payload any) any) any {
	v := rop.Classify(input)
	switch v.Shape() {
	case rop.ShapeSuccess, rop.ShapeOpaque:
		return f(v.Payload())
	}
	return input
}

func Replace(input any, newValue any) any {
	if rop.Classify(input).IsSuccess() {
		return rop.Success(newValue)
	}
	return input
}

func ReplaceLazy(input any, f func(payload any) any) any {
	v := rop.Classify(input)
	if v.IsSuccess() {
		return rop.Success(f(v.Payload()))
	}
	return input
}

func ReplaceErr(input any, newReason any) any {
	if rop.Classify(input).IsFailure() {
		return rop.Failure(newReason)
	}
	return input
}

func ReplaceErrLazy(input any, f func(reason any) any) any {
	v := rop.Classify(input)
	if v.IsFailure() {
		return rop.Failure(f(v.Payload()))
	}
	return input
}

// Flatten returns the inner value of an arity-2 Success whose payload is
// itself a Success or Failure. Any other input is returned unchanged.
func Flatten(input any) any {
	v := rop.Classify(input)
	if !v.IsSuccess() || v.Arity() != 2 {
		return input
	}
	inner := v.Payload()
	switch rop.ShapeOf(inner) {
	case rop.ShapeSuccess, rop.ShapeFailure:
		return inner
	}
	return input
}
