// Package check composes independent checks over a single value.
//
// A Check[T] returns the value on success or a *Failure carrying one reason.
// Two composers run a list of checks in declared order:
//
//   - RunFailFast stops at the first failure and returns that single reason.
//   - RunAccumulating runs every check against the original value and returns
//     all reasons, in check order, as a *Failures holding a non-empty sequence.
//
// Lift adapts a Check into the Lifted shape the accumulating composer folds
// over; Combine is the pairwise rule it folds with. Both composers return the
// input unchanged for an empty check list.
//
//	checks := []check.Check[string]{minLength, oneCapital, oneNumber}
//
//	res := check.RunAccumulating(ctx, "ab", checks...)
//	check.Reasons(res.Err())
//	// [at least 6 characters at least one capital letter at least one number]
package check
