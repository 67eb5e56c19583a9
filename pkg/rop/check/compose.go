package check

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/ropcheck/pkg/logger"
	"github.com/ib-77/ropcheck/pkg/rop"
	"github.com/ib-77/ropcheck/pkg/rop/core"
	"github.com/ib-77/ropcheck/pkg/rop/solo"
)

// RunFailFast applies checks in order and returns the first failure without
// running the remaining checks. Each check receives the value returned by the
// previous one. With no checks it returns value unchanged.
func RunFailFast[T any](ctx context.Context, value T, checks ...Check[T]) rop.Result[T] {
	steps := make([]func(ctx context.Context, in rop.Result[T]) rop.Result[T], len(checks))
	for i, c := range checks {
		steps[i] = func(ctx context.Context, in rop.Result[T]) rop.Result[T] {
			return solo.Switch(ctx, in, func(ctx context.Context, v T) rop.Result[T] { return c(ctx, v) })
		}
	}

	res := solo.Join(ctx, rop.Success(value), true, keepNext[T], steps...)
	if res.IsFailure() {
		logger.FromContext(ctx).Debug("fail-fast check rejected value",
			logger.Int("checks", len(checks)), logger.Error(res.Err()))
	}
	return res
}

// RunAccumulating lifts every check and runs them with Accumulate.
func RunAccumulating[T any](ctx context.Context, value T, checks ...Check[T]) rop.Result[T] {
	return Accumulate(ctx, value, LiftAll(checks...)...)
}

// Accumulate runs every check against the original value and merges all
// failures with Combine in declared order. On success it returns value
// unchanged; transformed values returned by checks are discarded.
func Accumulate[T any](ctx context.Context, value T, checks ...Lifted[T]) rop.Result[T] {
	steps := make([]func(ctx context.Context, in rop.Result[T]) rop.Result[T], len(checks))
	for i, c := range checks {
		steps[i] = func(ctx context.Context, _ rop.Result[T]) rop.Result[T] {
			return c(ctx, value)
		}
	}
	return accumulate(ctx, value, steps)
}

// AccumulateParallel behaves like Accumulate but evaluates the checks
// concurrently. The worker limit comes from core.WithWorkerOptions and
// defaults to GOMAXPROCS. Failures are still merged in declared order.
func AccumulateParallel[T any](ctx context.Context, value T, checks ...Lifted[T]) rop.Result[T] {
	results := make([]rop.Result[T], len(checks))

	g := new(errgroup.Group)
	g.SetLimit(core.GetWorkerMaxCount(ctx, runtime.GOMAXPROCS(0)))
	for i, c := range checks {
		g.Go(func() error {
			results[i] = c(ctx, value)
			return nil
		})
	}
	_ = g.Wait()

	steps := make([]func(ctx context.Context, in rop.Result[T]) rop.Result[T], len(results))
	for i, res := range results {
		steps[i] = func(context.Context, rop.Result[T]) rop.Result[T] { return res }
	}
	return accumulate(ctx, value, steps)
}

// RunAccumulatingParallel lifts every check and runs them with
// AccumulateParallel.
func RunAccumulatingParallel[T any](ctx context.Context, value T, checks ...Check[T]) rop.Result[T] {
	return AccumulateParallel(ctx, value, LiftAll(checks...)...)
}

// Combine merges two outcomes of checks run on the same value. Two successes
// keep the left one, a single failure wins, and two failures concatenate
// their errors left then right.
func Combine[T any](left, right rop.Result[T]) rop.Result[T] {
	switch {
	case left.IsSuccess() && right.IsSuccess():
		return left
	case left.IsSuccess():
		return right
	case right.IsSuccess():
		return left
	default:
		return rop.Fail[T](concat(asFailures(left.Err()), asFailures(right.Err())))
	}
}

func combineStep[T any](_ context.Context, acc, next rop.Result[T]) rop.Result[T] {
	return Combine(acc, next)
}

func keepNext[T any](_ context.Context, _, next rop.Result[T]) rop.Result[T] {
	return next
}

func accumulate[T any](ctx context.Context, value T,
	steps []func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	res := solo.Join(ctx, rop.Success(value), false, combineStep[T], steps...)
	if res.IsFailure() {
		fs := asFailures(res.Err())
		logger.FromContext(ctx).Debug("accumulating checks rejected value",
			logger.Int("checks", len(steps)), logger.Int("failed", fs.Errors().Len()),
			logger.Strings("reasons", fs.Reasons().Slice()))
	}
	return res
}
