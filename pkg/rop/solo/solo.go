package solo

import (
	"errors"

	"github.com/ib-77/ropdomain/pkg/rop"
	"github.com/ib-77/ropdomain/pkg/rop/guard"
)

// Validate runs checks against value in order and returns the first failure,
// or value as a success.
func Validate[T any](value T, checks ...func(in T) *rop.Error) rop.Result[T] {
	return Ensure(rop.Success(value), checks...)
}

// Ensure runs checks against the payload of a success. Failures pass through
// without running any check.
func Ensure[T any](input rop.Result[T], checks ...func(in T) *rop.Error) rop.Result[T] {
	if !input.IsSuccess() {
		return input
	}

	for _, check := range checks {
		if err := check(input.Value()); err != nil {
			return rop.Failure[T](err)
		}
	}
	return input
}

// Check turns guard outcomes into a UnitResult holding the first failure.
func Check(errs ...*rop.Error) rop.UnitResult {
	if err := guard.Combine(errs...); err != nil {
		return rop.UnitFailure(err)
	}
	return rop.UnitSuccess()
}

// Try calls onTryExecute with the payload of a success. A returned error that
// already is a *rop.Error is kept as is; any other error goes through onError.
// A nil *rop.Error returned as an error, as a passing guard check does, counts
// as no error.
func Try[In, Out any](input rop.Result[In],
	onTryExecute func(in In) (Out, error),
	onError func(err error) *rop.Error) rop.Result[Out] {

	if !input.IsSuccess() {
		return rop.FailureFrom[In, Out](input)
	}

	out, err := onTryExecute(input.Value())
	var domainErr *rop.Error
	switch {
	case err == nil:
	case errors.As(err, &domainErr):
		if domainErr != nil {
			return rop.Failure[Out](domainErr)
		}
	default:
		return rop.Failure[Out](onError(err))
	}

	return rop.Success(out)
}

// MergeAll merges results left to right and stops at the first failure.
func MergeAll(results ...rop.UnitResult) rop.UnitResult {
	merged := rop.UnitSuccess()
	for _, r := range results {
		merged = merged.Merge(r)
		if merged.IsFailure() {
			return merged
		}
	}
	return merged
}
