package solo

import (
	"github.com/ib-77/ropshape/pkg/rop"
)

// FromError turns a Go (value, error) pair into Success(value) or
// Failure(err).
func FromError(value any, err error) rop.Value {
	if err != nil {
		return rop.Failure(err)
	}
	return rop.Success(value)
}

// ToError goes the other way:
//   - Success: payload, nil
//   - Failure: nil and the reason if it is an error, otherwise a
//     *rop.FailureError carrying the reason
//   - Absent: nil, rop.ErrAbsent
//   - Opaque: the value, nil
func ToError(input any) (any, error) {
	v := rop.Classify(input)
	switch v.Shape() {
	case rop.ShapeFailure:
		reason := v.Payload()
		if err, ok := reason.(error); ok {
			return nil, err
		}
		return nil, &rop.FailureError{Reason: reason}
	case rop.ShapeAbsent:
		return nil, rop.ErrAbsent
	}
	return v.Payload(), nil
}
