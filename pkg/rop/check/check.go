package check

import (
	"context"

	"github.com/ib-77/ropcheck/pkg/rop"
	"github.com/ib-77/ropcheck/pkg/rop/solo"
)

// Check validates a value. On success it returns the value, on failure a
// *Failure with one reason. Checks must be free of side effects.
type Check[T any] func(ctx context.Context, in T) rop.Result[T]

// Lifted is a Check whose failure payload is a *Failures.
type Lifted[T any] func(ctx context.Context, in T) rop.Result[T]

// FromPredicate builds a check that accepts the values pred reports true for
// and rejects the rest with reason.
func FromPredicate[T any](reason string, pred func(in T) bool) Check[T] {
	return func(ctx context.Context, in T) rop.Result[T] {
		if pred(in) {
			return rop.Success(in)
		}
		return rop.Fail[T](NewFailure(reason))
	}
}

// FromValidate builds a check from a (valid, errMsg) validation function.
func FromValidate[T any](validate func(ctx context.Context, in T) (valid bool, errMsg string)) Check[T] {
	return func(ctx context.Context, in T) rop.Result[T] {
		return solo.Validate(ctx, in, validate, toFailure)
	}
}

func toFailure(reason string) error {
	return NewFailure(reason)
}

// Lift converts c into a Lifted check. Success is returned untouched; a
// failure error is wrapped as a one-element *Failures. Lifting an already
// lifted check wraps its payload again but accepts the same values.
func Lift[T any](c Check[T]) Lifted[T] {
	return func(ctx context.Context, in T) rop.Result[T] {
		res := c(ctx, in)
		if res.IsSuccess() {
			return res
		}
		return rop.Fail[T](NewFailures(res.Err()))
	}
}

// LiftAll lifts every check, keeping their order.
func LiftAll[T any](checks ...Check[T]) []Lifted[T] {
	lifted := make([]Lifted[T], len(checks))
	for i, c := range checks {
		lifted[i] = Lift(c)
	}
	return lifted
}
