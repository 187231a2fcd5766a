package solo

import (
	"github.com/ib-77/ropshape/pkg/rop"
)

// Expect returns the payload of a Success and panics with a
// *rop.UnexpectedShapeError carrying descriptor for any other shape. Use it
// only where the caller has asserted that anything else is a bug.
func Expect(input any, descriptor any) any {
	p, err := TryExpect(input, descriptor)
	if err != nil {
		panic(err)
	}
	return p
}

// ExpectErr is Expect for the Failure side.
func ExpectErr(input any, descriptor any) any {
	p, err := TryExpectErr(input, descriptor)
	if err != nil {
		panic(err)
	}
	return p
}

// TryExpect is Expect returning the error instead of panicking.
func TryExpect(input any, descriptor any) (any, error) {
	return expectShape(input, rop.ShapeSuccess, descriptor)
}

// TryExpectErr is ExpectErr returning the error instead of panicking.
func TryExpectErr(input any, descriptor any) (any, error) {
	return expectShape(input, rop.ShapeFailure, descriptor)
}

func expectShape(input any, want rop.Shape, descriptor any) (any, error) {
	v := rop.Classify(input)
	if v.Shape() != want {
		return nil, &rop.UnexpectedShapeError{Descriptor: descriptor, Want: want, Got: v.Shape()}
	}
	return v.Payload(), nil
}
