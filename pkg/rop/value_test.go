package rop

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValue_Arity(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 2, Success(1).Arity())
	assert.Equal(t, 4, Failure(1, 2, 3).Arity())
	assert.Equal(t, 0, None().Arity())
	assert.Equal(t, 0, Classify("x").Arity())
}

func TestValue_SlotsAreCopies(t *testing.T) {
	t.Parallel()

	v := Success(1, 2)
	s := v.Slots()
	s[0] = 99

	assert.Equal(t, []any{1, 2}, v.Slots())

	p := v.Payload().([]any)
	p[0] = 99
	assert.Equal(t, []any{1, 2}, v.Payload())
}

func TestValue_Unbox(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Tuple{OK, 1}, Success(1).Unbox())
	assert.Equal(t, Tuple{Err, "a", "b"}, Failure("a", "b").Unbox())
	assert.Nil(t, None().Unbox())
	assert.Equal(t, 7, Classify(7).Unbox())
	assert.Nil(t, None().Tuple())
}

func TestValue_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "success[1]", Success(1).String())
	assert.Equal(t, "failure[a b]", Failure("a", "b").String())
	assert.Equal(t, "absent", None().String())
	assert.Equal(t, "opaque(7)", Classify(7).String())
}

func TestShape_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "absent", ShapeAbsent.String())
	assert.Equal(t, "success", ShapeSuccess.String())
	assert.Equal(t, "failure", ShapeFailure.String())
	assert.Equal(t, "opaque", ShapeOpaque.String())
	assert.Equal(t, "unknown", Shape(42).String())
}
