package solo

import (
	"context"
	"errors"

	"github.com/ib-77/ropcheck/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Success(input)
}

func Validate[T any](ctx context.Context, input T,
	validate func(ctx context.Context, in T) (isValid bool, errMsg string),
	toErr ...func(errMsg string) error) rop.Result[T] {
	return AndValidate(ctx, Succeed(input), validate, toErr...)
}

// AndValidate applies validate to a successful input. toErr builds the
// failure from errMsg; errors.New is used when it is nil.
func AndValidate[T any](ctx context.Context, input rop.Result[T],
	validate func(ctx context.Context, in T) (valid bool, errMsg string),
	toErr ...func(errMsg string) error) rop.Result[T] {

	if input.IsFailure() {
		return input
	}

	if isValid, errMsg := validate(ctx, input.Result()); !isValid {
		if len(toErr) > 0 && toErr[0] != nil {
			return rop.Fail[T](toErr[0](errMsg))
		}
		return rop.Fail[T](errors.New(errMsg))
	}
	return input
}

func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return rop.FailFrom[In, Out](input)
}

func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Success(onSuccess(ctx, input.Result()))
	}
	return rop.FailFrom[In, Out](input)
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onError func(ctx context.Context, err error) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Result())
	}
	return onError(ctx, input.Err())
}

// Join folds steps over input. Each step receives the accumulated result and
// concat merges it with what the step returned. With breakOnError the fold
// stops at the first failed accumulation and the remaining steps never run.
func Join[T any](ctx context.Context,
	input rop.Result[T],
	breakOnError bool, // exit on first error
	concat func(ctx context.Context, acc, next rop.Result[T]) rop.Result[T],
	inputsF ...func(ctx context.Context, in rop.Result[T]) rop.Result[T]) rop.Result[T] {

	if len(inputsF) == 0 || concat == nil {
		return input
	}

	finalResult := input
	for _, in := range inputsF {
		finalResult = concat(ctx, finalResult, in(ctx, finalResult))
		if finalResult.IsFailure() && breakOnError {
			return finalResult
		}
	}
	return finalResult
}
