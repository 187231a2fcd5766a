package message

import (
	"errors"

	"github.com/ib-77/ropshape/pkg/rop"
)

// GenericError is a structured failure reason: where it came from and why.
type GenericError struct {
	Origin string
	Reason any
}

func (e *GenericError) Error() string {
	return Default.Format(e.Origin, e.Reason)
}

// Unwrap exposes Reason when it is an error.
func (e *GenericError) Unwrap() error {
	err, _ := e.Reason.(error)
	return err
}

// Wrap builds Failure(&GenericError{origin, reason}).
func Wrap(origin string, reason any) rop.Value {
	return rop.Failure(&GenericError{Origin: origin, Reason: reason})
}

// OriginOf returns the origin of the first *GenericError in err's chain.
func OriginOf(err error) (string, bool) {
	var ge *GenericError
	if errors.As(err, &ge) {
		return ge.Origin, true
	}
	return "", false
}
