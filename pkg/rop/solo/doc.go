// Package solo contains the single-value combinators. Every function accepts
// any value, classifies it with rop.Classify and applies the rule for its
// shape; none of them mutate their input.
//
// Highlights:
// - Map/MapErr/AndThen: transform the payload of one side
// - Replace/ReplaceLazy/ReplaceErr/ReplaceErrLazy: swap a payload
// - OrElse/OrElseLazy/UnwrapOr/UnwrapOrLazy: fall back on Failure and Absent
// - Expect/ExpectErr: assert a shape, panic with *rop.UnexpectedShapeError
// - Flatten: collapse a Success wrapping a Success or Failure
// - Tee/TeeErr/Match: side effects and folding
// - FromError/ToError: bridge to Go's (value, error) pairs
//
// Values that were not touched are returned exactly as passed in. Values that
// were re-tagged come back as rop.Value. A multi-arity Success or Failure that
// goes through a transform comes back with arity 2.
package solo
