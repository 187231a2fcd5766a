package chain

import (
	"github.com/ib-77/ropshape/pkg/rop"
	"github.com/ib-77/ropshape/pkg/rop/solo"
)

// Chain carries one value through a sequence of combinators. It is immutable;
// every step returns a new Chain.
type Chain struct {
	value any
}

// Start creates a new chain from any value
func Start(value any) Chain {
	return Chain{value: value}
}

// Of creates a new chain from a Success payload
func Of(payload any) Chain {
	return Chain{value: rop.Success(payload)}
}

// Value returns the current value
func (c Chain) Value() any {
	return c.value
}

// Shape classifies the current value
func (c Chain) Shape() rop.Shape {
	return rop.ShapeOf(c.value)
}

func (c Chain) Map(f func(payload any) any) Chain {
	return Chain{value: solo.Map(c.value, f)}
}

func (c Chain) MapErr(f func(reason any) any) Chain {
	return Chain{value: solo.MapErr(c.value, f)}
}

// AndThen hands the payload to f; the chain continues with f's raw return
func (c Chain) AndThen(f func(payload any) any) Chain {
	return Chain{value: solo.AndThen(c.value, f)}
}

func (c Chain) OrElse(alternative any) Chain {
	return Chain{value: solo.OrElse(c.value, alternative)}
}

func (c Chain) OrElseLazy(f func(reason any) any) Chain {
	return Chain{value: solo.OrElseLazy(c.value, f)}
}

func (c Chain) Replace(newValue any) Chain {
	return Chain{value: solo.Replace(c.value, newValue)}
}

func (c Chain) ReplaceLazy(f func(payload any) any) Chain {
	return Chain{value: solo.ReplaceLazy(c.value, f)}
}

func (c Chain) ReplaceErr(newReason any) Chain {
	return Chain{value: solo.ReplaceErr(c.value, newReason)}
}

func (c Chain) ReplaceErrLazy(f func(reason any) any) Chain {
	return Chain{value: solo.ReplaceErrLazy(c.value, f)}
}

func (c Chain) Flatten() Chain {
	return Chain{value: solo.Flatten(c.value)}
}

// Tee performs a side effect on success without changing the value
func (c Chain) Tee(onSuccess func(payload any)) Chain {
	return Chain{value: solo.Tee(c.value, onSuccess)}
}

// TeeErr performs a side effect on failure without changing the value
func (c Chain) TeeErr(onFailure func(reason any)) Chain {
	return Chain{value: solo.TeeErr(c.value, onFailure)}
}

func (c Chain) UnwrapOr(def any) any {
	return solo.UnwrapOr(c.value, def)
}

func (c Chain) UnwrapOrLazy(f func(reason any) any) any {
	return solo.UnwrapOrLazy(c.value, f)
}

// Expect panics with *rop.UnexpectedShapeError unless the value is a Success
func (c Chain) Expect(descriptor any) any {
	return solo.Expect(c.value, descriptor)
}

// ExpectErr panics with *rop.UnexpectedShapeError unless the value is a Failure
func (c Chain) ExpectErr(descriptor any) any {
	return solo.ExpectErr(c.value, descriptor)
}

// Match collapses the chain through the handler for the value's shape
func (c Chain) Match(cases solo.Cases) any {
	return solo.Match(c.value, cases)
}
