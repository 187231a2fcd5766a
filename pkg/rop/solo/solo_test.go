package solo

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ib-77/ropshape/pkg/rop"
)

// mustNotCall fails the test if the combinator calls it.
func mustNotCall(t *testing.T) func(any) any {
	return func(p any) any {
		t.Fatalf("callback must not be called, got %v", p)
		return nil
	}
}

func double(p any) any { return p.(int) * 2 }

func TestMap(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rop.Success(10), Map(rop.Tuple{rop.OK, 5}, double))
	assert.Equal(t, 10, Map(5, double))

	fail := rop.Tuple{rop.Err, "x"}
	assert.Equal(t, fail, Map(fail, mustNotCall(t)))
	assert.Nil(t, Map(nil, mustNotCall(t)))
	assert.Equal(t, rop.None(), Map(rop.None(), mustNotCall(t)))
}

func TestMap_MultiArityCollapses(t *testing.T) {
	t.Parallel()

	out := Map(rop.Tuple{rop.OK, 1, 2, 3}, func(p any) any {
		assert.Equal(t, []any{1, 2, 3}, p)
		return len(p.([]any))
	})

	v := rop.Classify(out)
	assert.Equal(t, 2, v.Arity())
	assert.Equal(t, 3, v.Payload())
}

func TestMapErr(t *testing.T) {
	t.Parallel()

	wrap := func(r any) any { return "wrapped: " + r.(string) }

	assert.Equal(t, rop.Failure("wrapped: x"), MapErr(rop.Tuple{rop.Err, "x"}, wrap))

	ok := rop.Tuple{rop.OK, 1}
	assert.Equal(t, ok, MapErr(ok, mustNotCall(t)))
	assert.Nil(t, MapErr(nil, mustNotCall(t)))
	assert.Equal(t, "v", MapErr("v", mustNotCall(t)))
}

func TestAndThen(t *testing.T) {
	t.Parallel()

	t.Run("raw return is not re-wrapped", func(t *testing.T) {
		assert.Equal(t, 10, AndThen(rop.Success(5), double))
	})

	t.Run("callback picks the shape", func(t *testing.T) {
		out := AndThen(rop.Success(5), func(p any) any { return rop.Failure("too big") })
		assert.Equal(t, rop.Failure("too big"), out)
	})

	t.Run("opaque goes to f", func(t *testing.T) {
		assert.Equal(t, 6, AndThen(3, double))
	})

	t.Run("failure and absent short-circuit", func(t *testing.T) {
		fail := rop.Failure("x")
		assert.Equal(t, fail, AndThen(fail, mustNotCall(t)))
		assert.Nil(t, AndThen(nil, mustNotCall(t)))
	})
}

func TestReplace(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rop.Success("new"), Replace(rop.Success("old", "meta"), "new"))
	assert.Equal(t, rop.Failure("x"), Replace(rop.Failure("x"), "new"))
	assert.Nil(t, Replace(nil, "new"))
	assert.Equal(t, 7, Replace(7, "new"))
}

func TestReplaceLazy(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rop.Success(4), ReplaceLazy(rop.Success(2), double))
	assert.Equal(t, rop.Failure("x"), ReplaceLazy(rop.Failure("x"), mustNotCall(t)))
	assert.Nil(t, ReplaceLazy(nil, mustNotCall(t)))
	assert.Equal(t, 7, ReplaceLazy(7, mustNotCall(t)))
}

func TestReplaceErr(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rop.Failure("new"), ReplaceErr(rop.Tuple{rop.Err, "a", "b"}, "new"))
	assert.Equal(t, rop.Success(1), ReplaceErr(rop.Success(1), "new"))
	assert.Nil(t, ReplaceErr(nil, "new"))
	assert.Equal(t, 7, ReplaceErr(7, "new"))
}

func TestReplaceErrLazy(t *testing.T) {
	t.Parallel()

	assert.Equal(t, rop.Failure(2), ReplaceErrLazy(rop.Failure(1), func(r any) any { return r.(int) + 1 }))
	assert.Equal(t, rop.Success(1), ReplaceErrLazy(rop.Success(1), mustNotCall(t)))
	assert.Nil(t, ReplaceErrLazy(nil, mustNotCall(t)))
	assert.Equal(t, 7, ReplaceErrLazy(7, mustNotCall(t)))
}

func TestFlatten(t *testing.T) {
	t.Parallel()

	t.Run("nested success", func(t *testing.T) {
		assert.Equal(t, rop.Success(1), Flatten(rop.Success(rop.Success(1))))
		assert.Equal(t, rop.Tuple{rop.OK, 1}, Flatten(rop.Tuple{rop.OK, rop.Tuple{rop.OK, 1}}))
	})

	t.Run("nested failure", func(t *testing.T) {
		assert.Equal(t, rop.Failure("x"), Flatten(rop.Success(rop.Failure("x"))))
	})

	t.Run("idempotent on flat success", func(t *testing.T) {
		s := rop.Success(1)
		assert.Equal(t, s, Flatten(s))
		assert.Equal(t, s, Flatten(Flatten(rop.Success(s))))
	})

	t.Run("multi arity is left alone", func(t *testing.T) {
		s := rop.Success(rop.Success(1), "meta")
		assert.Equal(t, s, Flatten(s))
	})

	t.Run("other shapes unchanged", func(t *testing.T) {
		f := rop.Failure(rop.Success(1))
		assert.Equal(t, f, Flatten(f))
		assert.Nil(t, Flatten(nil))
		assert.Equal(t, 3, Flatten(3))
	})

	t.Run("absent payload is not flattened", func(t *testing.T) {
		s := rop.Success(nil)
		assert.Equal(t, s, Flatten(s))
	})
}

func TestShortCircuit(t *testing.T) {
	t.Parallel()

	explode := func(any) any { panic("must not be called") }

	for _, in := range []any{rop.Failure("x"), rop.Tuple{rop.Err, 1, 2}, nil, rop.None()} {
		assert.NotPanics(t, func() {
			Map(in, explode)
			AndThen(in, explode)
			Replace(in, 1)
			ReplaceLazy(in, explode)
		})
	}
}

func TestPredicates(t *testing.T) {
	t.Parallel()

	assert.True(t, IsOk(rop.Success(1)))
	assert.False(t, IsOk(rop.Failure(1)))
	assert.True(t, IsErr(rop.Tuple{rop.Err, 1}))
	assert.False(t, IsErr(1))
	assert.True(t, IsNone(nil))
	assert.False(t, IsNone(0))
	assert.True(t, IsSome(0))
	assert.True(t, IsSome(rop.Failure(1)))
	assert.False(t, IsSome(rop.None()))
}

func TestTee(t *testing.T) {
	t.Parallel()

	var seen []any
	record := func(p any) { seen = append(seen, p) }

	s := rop.Success(1)
	assert.Equal(t, s, Tee(s, record))
	f := rop.Failure("x")
	assert.Equal(t, f, Tee(f, record))
	assert.Equal(t, f, TeeErr(f, record))
	assert.Equal(t, s, TeeErr(s, record))

	assert.Equal(t, []any{1, "x"}, seen)
}

func TestMatch(t *testing.T) {
	t.Parallel()

	cases := Cases{
		OnSuccess: func(p any) any { return "ok" },
		OnFailure: func(r any) any { return "err" },
		OnAbsent:  func() any { return "none" },
		OnOpaque:  func(v any) any { return "opaque" },
	}

	assert.Equal(t, "ok", Match(rop.Success(1), cases))
	assert.Equal(t, "err", Match(rop.Failure(1), cases))
	assert.Equal(t, "none", Match(nil, cases))
	assert.Equal(t, "opaque", Match(1, cases))

	assert.Equal(t, 1, Match(1, Cases{}))
}
