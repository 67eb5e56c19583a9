package check

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/ib-77/ropcheck/pkg/rop"
)

var (
	minLength = FromPredicate("at least 6 characters", func(s string) bool {
		return len(s) >= 6
	})
	oneCapital = FromPredicate("at least one capital letter", func(s string) bool {
		return strings.ContainsFunc(s, func(r rune) bool { return r >= 'A' && r <= 'Z' })
	})
	oneNumber = FromPredicate("at least one number", func(s string) bool {
		return strings.ContainsFunc(s, func(r rune) bool { return r >= '0' && r <= '9' })
	})

	passwordChecks = []Check[string]{minLength, oneCapital, oneNumber}
)

// counting wraps c and counts how many times it runs.
func counting[T any](c Check[T], calls *atomic.Int32) Check[T] {
	return func(ctx context.Context, in T) rop.Result[T] {
		calls.Add(1)
		return c(ctx, in)
	}
}

// trimming is a value-transforming check.
func trimming(ctx context.Context, s string) rop.Result[string] {
	return rop.Success(strings.TrimSpace(s))
}

func always[T any]() Check[T] {
	return func(ctx context.Context, in T) rop.Result[T] { return rop.Success(in) }
}

func never[T any](reason string) Check[T] {
	return func(ctx context.Context, in T) rop.Result[T] { return rop.Fail[T](NewFailure(reason)) }
}
