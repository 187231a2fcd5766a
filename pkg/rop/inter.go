package rop

import "time"

// Tupler is implemented by types that know their own marker-first form.
// Classify consults it before any structural inspection.
type Tupler interface {
	Tuple() Tuple
}

type ResultProvider[T any] interface {
	// Result returns the successful result value
	Result() T
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// WithError defines an interface for types that can return a result or an error
type WithError[T any] interface {
	ResultProvider[T]
	Tupler
	// Err returns the error if operation failed
	Err() error
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
}
