package rop

import (
	"reflect"
	"time"

	"github.com/google/uuid"
)

// Result is a typed success-or-error value for code that has static types at
// hand. It classifies as Success(result) or Failure(err).
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	result    T
	err       error
	isSuccess bool
}

var _ WithError[int] = Result[int]{}

func Ok[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		isSuccess: true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Fail builds a failed Result. A nil err yields a Result with no outcome that
// classifies as Absent, the same as the zero Result.
func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       err,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Try converts a Go (value, error) pair.
func Try[T any](r T, err error) Result[T] {
	if err != nil {
		return Fail[T](err)
	}
	return Ok(r)
}

// ResultFrom narrows a classified value back to a Result[T]. It reports false
// when x is not a Success or Failure, or when the payload does not fit.
// A Failure whose payload is not an error is wrapped in a *FailureError.
func ResultFrom[T any](x any) (Result[T], bool) {
	v := Classify(x)
	switch v.Shape() {
	case ShapeSuccess:
		p := v.Payload()
		if p == nil {
			if !nilable(reflect.TypeFor[T]()) {
				return Result[T]{}, false
			}
			var zero T
			return Ok(zero), true
		}
		r, ok := p.(T)
		if !ok {
			return Result[T]{}, false
		}
		return Ok(r), true
	case ShapeFailure:
		if err, ok := v.Payload().(error); ok {
			return Fail[T](err), true
		}
		return Fail[T](&FailureError{Reason: v.Payload()}), true
	}
	return Result[T]{}, false
}

func nilable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Interface, reflect.Pointer, reflect.Slice, reflect.Map,
		reflect.Func, reflect.Chan:
		return true
	}
	return false
}

func (r Result[T]) Result() T {
	return r.result
}

func (r Result[T]) Err() error {
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && r.err != nil
}

// IsEmpty reports the zero Result, which classifies as Absent.
func (r Result[T]) IsEmpty() bool {
	return r.err == nil && !r.isSuccess
}

func (r Result[T]) CreatedAt() time.Time {
	return r.createdAt
}

func (r Result[T]) Id() uuid.UUID {
	return r.id
}

// Tuple implements Tupler. The zero Result yields nil and classifies as Absent.
func (r Result[T]) Tuple() Tuple {
	switch {
	case r.isSuccess:
		return Tuple{OK, r.result}
	case r.err != nil:
		return Tuple{Err, r.err}
	}
	return nil
}

// Unwrap returns the Go (value, error) pair.
func (r Result[T]) Unwrap() (T, error) {
	return r.result, r.err
}
