package message

import (
	"fmt"
	"sync"

	"github.com/ib-77/ropshape/pkg/rop"
)

// Formatter renders a failure reason.
type Formatter func(reason any) string

// Generic renders reason with its natural string form.
func Generic(reason any) string {
	return fmt.Sprintf("generic error: %v", reason)
}

type Registry struct {
	mu         sync.RWMutex
	formatters map[string]Formatter
}

func NewRegistry() *Registry {
	return &Registry{formatters: make(map[string]Formatter)}
}

// Default is the registry used by GenericError and Message.
var Default = NewRegistry()

// Register installs f for origin, replacing any previous formatter. A nil f
// removes the registration.
func (r *Registry) Register(origin string, f Formatter) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if f == nil {
		delete(r.formatters, origin)
		return
	}
	r.formatters[origin] = f
}

func (r *Registry) Lookup(origin string) (Formatter, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.formatters[origin]
	return f, ok
}

func (r *Registry) Format(origin string, reason any) string {
	if origin != "" {
		if f, ok := r.Lookup(origin); ok {
			return f(reason)
		}
	}
	return Generic(reason)
}

// Message formats the reason of a Failure-shaped value with r. A
// *GenericError reason is formatted by its origin; any other reason goes
// through Generic. Values that are not Failures yield "".
func (r *Registry) Message(input any) string {
	v := rop.Classify(input)
	if !v.IsFailure() {
		return ""
	}
	reason := v.Payload()
	if ge, ok := reason.(*GenericError); ok {
		return r.Format(ge.Origin, ge.Reason)
	}
	return Generic(reason)
}

func Register(origin string, f Formatter) {
	Default.Register(origin, f)
}

func Format(origin string, reason any) string {
	return Default.Format(origin, reason)
}

func Message(input any) string {
	return Default.Message(input)
}
