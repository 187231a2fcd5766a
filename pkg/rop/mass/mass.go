package mass

import (
	"iter"
	"slices"

	"github.com/ib-77/ropshape/pkg/rop"
)

// All reduces items left to right. The first Failure or Absent element is
// returned unchanged and nothing after it is inspected. Otherwise the result
// is Success([]any{payloads...}); Opaque elements contribute themselves.
// An empty input gives Success([]any{}).
func All(items ...any) any {
	return AllSeq(slices.Values(items))
}

func AllSeq(seq iter.Seq[any]) any {
	acc := make([]any, 0)
	for item := range seq {
		v := rop.Classify(item)
		switch v.Shape() {
		case rop.ShapeFailure, rop.ShapeAbsent:
			return item
		}
		acc = append(acc, v.Payload())
	}
	return rop.Success(acc)
}

// Values keeps the payload of every Success and every Opaque value, dropping
// Failure and Absent. It never short-circuits.
func Values(items ...any) []any {
	return slices.AppendSeq(make([]any, 0, len(items)), ValuesSeq(slices.Values(items)))
}

func ValuesSeq(seq iter.Seq[any]) iter.Seq[any] {
	return func(yield func(any) bool) {
		for item := range seq {
			v := rop.Classify(item)
			switch v.Shape() {
			case rop.ShapeFailure, rop.ShapeAbsent:
				continue
			}
			if !yield(v.Payload()) {
				return
			}
		}
	}
}

// Partition splits items into Success payloads and Failure payloads. Absent
// and Opaque elements are dropped from both.
func Partition(items ...any) (successes, failures []any) {
	return PartitionSeq(slices.Values(items))
}

func PartitionSeq(seq iter.Seq[any]) (successes, failures []any) {
	successes = make([]any, 0)
	failures = make([]any, 0)
	for item := range seq {
		v := rop.Classify(item)
		switch v.Shape() {
		case rop.ShapeSuccess:
			successes = append(successes, v.Payload())
		case rop.ShapeFailure:
			failures = append(failures, v.Payload())
		}
	}
	return successes, failures
}
