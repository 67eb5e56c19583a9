package chain

import (
	"context"

	"github.com/ib-77/ropcheck/pkg/rop"
	"github.com/ib-77/ropcheck/pkg/rop/check"
	"github.com/ib-77/ropcheck/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, rop.Success(value))
}

// Result returns the underlying rop.Result
func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

// Then applies a check to the current value. A failed chain skips it.
func (c *Chain[T]) Then(next check.Check[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    c.ctx,
		result: solo.Switch(c.ctx, c.result, func(ctx context.Context, v T) rop.Result[T] { return next(ctx, v) }),
	}
}

// ThenAll applies checks in order, stopping at the first failure.
func (c *Chain[T]) ThenAll(checks ...check.Check[T]) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		result: solo.Switch(c.ctx, c.result, func(ctx context.Context, v T) rop.Result[T] {
			return check.RunFailFast(ctx, v, checks...)
		}),
	}
}

// Validate applies pred and fails with reason when it reports false.
func (c *Chain[T]) Validate(reason string, pred func(T) bool) *Chain[T] {
	return c.Then(check.FromPredicate(reason, pred))
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Map(c.ctx, c.result, onSuccess),
	}
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return &Chain[T]{
		ctx: c.ctx,
		result: solo.Tee(c.ctx, c.result,
			func(ctx context.Context, result rop.Result[T]) {
				onSuccess(ctx, result.Result())
			}),
	}
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure)
}
