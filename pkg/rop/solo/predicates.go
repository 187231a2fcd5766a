package solo

import (
	"github.com/ib-77/ropshape/pkg/rop"
)

func IsOk(input any) bool {
	return rop.ShapeOf(input) == rop.ShapeSuccess
}

func IsErr(input any) bool {
	return rop.ShapeOf(input) == rop.ShapeFailure
}

// IsSome reports anything that is not Absent.
func IsSome(input any) bool {
	return rop.ShapeOf(input) != rop.ShapeAbsent
}

func IsNone(input any) bool {
	return rop.ShapeOf(input) == rop.ShapeAbsent
}

// Tee calls onSuccess with the payload of a Success and returns input.
func Tee(input any, onSuccess func(payload any)) any {
	v := rop.Classify(input)
	if v.IsSuccess() {
		onSuccess(v.Payload())
	}
	return input
}

// TeeErr calls onFailure with the reason of a Failure and returns input.
func TeeErr(input any, onFailure func(reason any)) any {
	v := rop.Classify(input)
	if v.IsFailure() {
		onFailure(v.Payload())
	}
	return input
}

// Cases holds one handler per shape. A nil handler leaves input unchanged.
type Cases struct {
	OnSuccess func(payload any) any
	OnFailure func(reason any) any
	OnAbsent  func() any
	OnOpaque  func(value any) any
}

// Match folds input through the handler for its shape.
func Match(input any, cases Cases) any {
	v := rop.Classify(input)
	switch v.Shape() {
	case rop.ShapeSuccess:
		if cases.OnSuccess != nil {
			return cases.OnSuccess(v.Payload())
		}
	case rop.ShapeFailure:
		if cases.OnFailure != nil {
			return cases.OnFailure(v.Payload())
		}
	case rop.ShapeAbsent:
		if cases.OnAbsent != nil {
			return cases.OnAbsent()
		}
	case rop.ShapeOpaque:
		if cases.OnOpaque != nil {
			return cases.OnOpaque(v.Payload())
		}
	}
	return input
}
