package check

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSet(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	set := NewSet("password", passwordChecks...)
	assert.Equal(t, "password", set.Name())
	assert.Equal(t, 3, set.Len())

	ff := set.FailFast(ctx, "abcdef")
	require.True(t, ff.IsFailure())
	assert.EqualError(t, ff.Err(), "at least one capital letter")

	for _, s := range []*Set[string]{set, set.WithParallel(true)} {
		acc := s.Accumulating(ctx, "abcdef")
		require.True(t, acc.IsFailure())
		assert.Equal(t, []string{"at least one capital letter", "at least one number"}, Reasons(acc.Err()))
	}
}

func TestSet_ChecksIsCopy(t *testing.T) {
	t.Parallel()

	set := NewSet("password", passwordChecks...)
	checks := set.Checks()
	checks[0] = always[string]()

	res := set.FailFast(context.Background(), "ab")
	assert.EqualError(t, res.Err(), "at least 6 characters")
}

func TestSet_Run(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	set := NewSet("password", passwordChecks...)

	ff, err := set.Run(ctx, ModeFailFast, "ab")
	require.NoError(t, err)
	assert.Equal(t, []string{"at least 6 characters"}, Reasons(ff.Err()))

	acc, err := set.Run(ctx, ModeAccumulating, "ab")
	require.NoError(t, err)
	assert.Len(t, Reasons(acc.Err()), 3)

	_, err = set.Run(ctx, Mode("sometimes"), "ab")
	assert.Error(t, err)
}

func TestModeDecode(t *testing.T) {
	t.Parallel()

	var m Mode
	require.NoError(t, m.Decode("Fail-Fast"))
	assert.Equal(t, ModeFailFast, m)
	require.NoError(t, m.Decode("accumulating"))
	assert.Equal(t, ModeAccumulating, m)
	assert.Error(t, m.Decode("both"))
}
