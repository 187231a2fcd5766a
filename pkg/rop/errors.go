package rop

import (
	"errors"
	"fmt"
)

// ErrAbsent is returned where an Absent value has to become a Go error.
var ErrAbsent = errors.New("rop: absent value")

// UnexpectedShapeError is raised when a caller asserted a shape that the value
// does not have. Descriptor is whatever the caller handed in.
type UnexpectedShapeError struct {
	Descriptor any
	Want       Shape
	Got        Shape
}

func (e *UnexpectedShapeError) Error() string {
	if e.Descriptor == nil {
		return fmt.Sprintf("rop: expected %s, got %s", e.Want, e.Got)
	}
	return fmt.Sprintf("rop: expected %s, got %s: %v", e.Want, e.Got, e.Descriptor)
}

// Unwrap exposes the descriptor when it is itself an error.
func (e *UnexpectedShapeError) Unwrap() error {
	err, _ := e.Descriptor.(error)
	return err
}

// FailureError carries a Failure payload that is not an error.
type FailureError struct {
	Reason any
}

func (e *FailureError) Error() string {
	return fmt.Sprintf("rop: failure: %v", e.Reason)
}
