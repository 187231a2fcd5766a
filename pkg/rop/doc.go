// Package rop classifies ordinary Go values into one of four shapes:
// Success, Failure, Absent and Opaque.
//
// A Success or Failure is a Tuple (or Go array) of length >= 2 whose first slot
// is the OK or Err marker. nil is Absent. Everything else is Opaque:
//
//	rop.Classify(rop.Tuple{rop.OK, 5})          // success, payload 5
//	rop.Classify(rop.Tuple{rop.Err, "x", "y"})  // failure, payload []any{"x", "y"}
//	rop.Classify(nil)                           // absent
//	rop.Classify("plain")                       // opaque
//
// Classification happens once, into a Value; the combinators in solo, mass
// and chain are written against Value.
package rop
