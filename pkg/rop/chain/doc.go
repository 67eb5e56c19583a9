// Package chain provides a fluent wrapper around Result[T] for building
// fail-fast validation chains from checks and solo primitives.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then: apply a check; the first failure short-circuits the rest
// - Validate: apply an inline predicate with a rejection reason
// - Map: transform the successful value (T -> U)
// - Ensure: run side effects on success without changing the result
// - Finally: collapse the chain into a final value via handlers
package chain
