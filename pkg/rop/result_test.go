package rop

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestSuccess(t *testing.T) {
	t.Parallel()

	r := Success("Abcdef1")

	assert.True(t, r.IsSuccess())
	assert.False(t, r.IsFailure())
	assert.Equal(t, "Abcdef1", r.Result())
	assert.NoError(t, r.Err())
	assert.NotEqual(t, uuid.Nil, r.Id())
	assert.False(t, r.CreatedAt().IsZero())
}

func TestFail(t *testing.T) {
	t.Parallel()

	err := errors.New("at least one number")
	r := Fail[string](err)

	assert.False(t, r.IsSuccess())
	assert.True(t, r.IsFailure())
	assert.ErrorIs(t, r.Err(), err)
	assert.Empty(t, r.Result())
}

func TestFail_NilErrorKeepsReason(t *testing.T) {
	t.Parallel()

	r := Fail[int](nil)

	assert.True(t, r.IsFailure())
	assert.ErrorIs(t, r.Err(), ErrUnknownFailure)
}

func TestFailFrom_KeepsIdentity(t *testing.T) {
	t.Parallel()

	in := Fail[string](errors.New("bad"))
	out := FailFrom[string, int](in)

	assert.True(t, out.IsFailure())
	assert.Equal(t, in.Id(), out.Id())
	assert.Equal(t, in.CreatedAt(), out.CreatedAt())
	assert.EqualError(t, out.Err(), "bad")
}

func TestGetErrors(t *testing.T) {
	t.Parallel()

	a, b := errors.New("a"), errors.New("b")

	assert.Empty(t, GetErrors(nil))
	assert.Equal(t, []error{a}, GetErrors(a))
	assert.Equal(t, []error{a, b}, GetErrors(errors.Join(a, b)))
}

func TestIsNil(t *testing.T) {
	t.Parallel()

	var p *int
	assert.True(t, IsNil(nil))
	assert.True(t, IsNil(p))
	assert.False(t, IsNil(1))
}
