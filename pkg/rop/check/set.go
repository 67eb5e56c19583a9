package check

import (
	"context"
	"fmt"
	"strings"

	"github.com/ib-77/ropcheck/pkg/rop"
)

// Mode selects how a Set composes its checks.
type Mode string

const (
	ModeFailFast     Mode = "failfast"
	ModeAccumulating Mode = "accumulate"
)

func (m *Mode) Decode(value string) error {
	switch strings.ToLower(value) {
	case "failfast", "fail-fast":
		*m = ModeFailFast
	case "accumulate", "accumulating":
		*m = ModeAccumulating
	default:
		return fmt.Errorf("invalid mode: %s", value)
	}
	return nil
}

// Set is a named, ordered list of checks for one kind of value.
type Set[T any] struct {
	name     string
	checks   []Check[T]
	parallel bool
}

func NewSet[T any](name string, checks ...Check[T]) *Set[T] {
	return &Set[T]{name: name, checks: checks}
}

// WithParallel returns a copy of the set whose accumulating run evaluates
// checks concurrently.
func (s *Set[T]) WithParallel(parallel bool) *Set[T] {
	return &Set[T]{name: s.name, checks: s.checks, parallel: parallel}
}

func (s *Set[T]) Name() string {
	return s.name
}

func (s *Set[T]) Len() int {
	return len(s.checks)
}

// Checks returns a copy of the checks in declared order.
func (s *Set[T]) Checks() []Check[T] {
	return append([]Check[T](nil), s.checks...)
}

func (s *Set[T]) FailFast(ctx context.Context, value T) rop.Result[T] {
	return RunFailFast(ctx, value, s.checks...)
}

func (s *Set[T]) Accumulating(ctx context.Context, value T) rop.Result[T] {
	if s.parallel {
		return RunAccumulatingParallel(ctx, value, s.checks...)
	}
	return RunAccumulating(ctx, value, s.checks...)
}

// Run dispatches to FailFast or Accumulating.
func (s *Set[T]) Run(ctx context.Context, mode Mode, value T) (rop.Result[T], error) {
	switch mode {
	case ModeFailFast:
		return s.FailFast(ctx, value), nil
	case ModeAccumulating:
		return s.Accumulating(ctx, value), nil
	default:
		return rop.Result[T]{}, fmt.Errorf("set %s: invalid mode: %q", s.name, mode)
	}
}
