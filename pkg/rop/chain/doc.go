// Package chain provides a fluent wrapper around the solo combinators for
// building synchronous pipelines over classified values.
//
// Key operations:
// - Start/Of: begin a chain from any value or from a Success payload
// - Map/MapErr/AndThen/Replace*/Flatten: the solo transforms as methods
// - OrElse/OrElseLazy: recover from Failure and Absent
// - Tee/TeeErr: run side effects without changing the value
// - Value/UnwrapOr/UnwrapOrLazy/Expect/ExpectErr/Match: leave the chain
package chain
