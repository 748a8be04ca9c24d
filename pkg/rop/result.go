package rop

import "fmt"

// Unit is the payload of a Result that carries no value.
type Unit struct{}

// Result is the outcome of an operation that yields a T on success or an
// *Error on failure. It is immutable; combinators always return a new Result.
// The zero value is empty: neither a success nor a failure.
type Result[T any] struct {
	value     T
	err       *Error
	isSuccess bool
}

// Success panics with ErrInvalidArgument when value is nil; an operation
// without a payload returns SuccessUnit or a UnitResult instead.
func Success[T any](value T) Result[T] {
	if IsNil(value) {
		panic(invalidArgument("success value must not be nil"))
	}
	return Result[T]{
		value:     value,
		isSuccess: true,
	}
}

func SuccessUnit() Result[Unit] {
	return Result[Unit]{isSuccess: true}
}

// Failure panics with ErrInvalidArgument when err is nil.
func Failure[T any](err *Error) Result[T] {
	if err == nil {
		panic(invalidArgument("failure error must not be nil"))
	}
	return Result[T]{
		err:       err,
		isSuccess: false,
	}
}

// FailureFrom re-types a result that is not a success, keeping its error.
func FailureFrom[In, Out any](from Result[In]) Result[Out] {
	if from.isSuccess {
		panic(invalidState("cannot re-type a success as a failure"))
	}
	return Result[Out]{
		err:       from.err,
		isSuccess: false,
	}
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess && r.err != nil
}

func (r Result[T]) IsEmpty() bool {
	return !r.isSuccess && r.err == nil
}

// Value returns the payload. It panics with ErrInvalidState on a failure.
func (r Result[T]) Value() T {
	if !r.isSuccess {
		panic(invalidState("cannot get value from failure"))
	}
	return r.value
}

// Err returns the failure. It panics with ErrInvalidState on a success.
func (r Result[T]) Err() *Error {
	if r.isSuccess {
		panic(invalidState("cannot get error from success"))
	}
	if r.err == nil {
		panic(invalidState("cannot get error from empty result"))
	}
	return r.err
}

func (r Result[T]) OnSuccess(handler func(value T)) Result[T] {
	if r.isSuccess {
		handler(r.value)
	}
	return r
}

func (r Result[T]) OnFailure(handler func(err *Error)) Result[T] {
	if r.IsFailure() {
		handler(r.err)
	}
	return r
}

// MapError translates the failure into another error, typically from a
// different layer's vocabulary. Successes pass through untouched.
func (r Result[T]) MapError(mapper func(err *Error) *Error) Result[T] {
	if !r.IsFailure() {
		return r
	}
	return Failure[T](mapper(r.err))
}

// MustValue returns the payload or panics with a *DomainInvariantError.
//
// Call it only where a failure is impossible by contract: it turns a
// recoverable domain error into a process-level fault.
func (r Result[T]) MustValue() T {
	if r.isSuccess {
		return r.value
	}
	panic(NewDomainInvariantError(r.Err()))
}

func (r Result[T]) String() string {
	switch {
	case r.isSuccess:
		return fmt.Sprintf("Success(%v)", r.value)
	case r.err != nil:
		return fmt.Sprintf("Failure(%v)", r.err)
	default:
		return "Empty"
	}
}

// Map applies f to the payload of a success. Failures pass through with
// their error unchanged.
func Map[T, U any](r Result[T], f func(value T) U) Result[U] {
	if r.isSuccess {
		return Success(f(r.value))
	}
	return FailureFrom[T, U](r)
}

// FlatMap sequences an operation that can itself fail. The chain stops at
// the first failure.
func FlatMap[T, U any](r Result[T], f func(value T) Result[U]) Result[U] {
	if r.isSuccess {
		return f(r.value)
	}
	return FailureFrom[T, U](r)
}

// Fold eliminates r by calling exactly one of the two functions.
func Fold[T, U any](r Result[T], onSuccess func(value T) U, onFailure func(err *Error) U) U {
	if r.isSuccess {
		return onSuccess(r.value)
	}
	return onFailure(r.Err())
}
