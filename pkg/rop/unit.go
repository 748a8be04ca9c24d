package rop

import "fmt"

// UnitResult is the outcome of an operation that has nothing to return on
// success. The zero value is empty: neither a success nor a failure.
type UnitResult struct {
	err       *Error
	isSuccess bool
}

func UnitSuccess() UnitResult {
	return UnitResult{isSuccess: true}
}

// UnitFailure panics with ErrInvalidArgument when err is nil.
func UnitFailure(err *Error) UnitResult {
	if err == nil {
		panic(invalidArgument("failure error must not be nil"))
	}
	return UnitResult{err: err}
}

// UnitFrom drops the Unit payload of r.
func UnitFrom(r Result[Unit]) UnitResult {
	switch {
	case r.IsSuccess():
		return UnitSuccess()
	case r.IsFailure():
		return UnitFailure(r.Err())
	default:
		return UnitResult{}
	}
}

func (r UnitResult) IsSuccess() bool {
	return r.isSuccess
}

func (r UnitResult) IsFailure() bool {
	return !r.isSuccess && r.err != nil
}

func (r UnitResult) IsEmpty() bool {
	return !r.isSuccess && r.err == nil
}

// Err returns the failure. It panics with ErrInvalidState on a success.
func (r UnitResult) Err() *Error {
	if r.isSuccess {
		panic(invalidState("cannot get error from success"))
	}
	if r.err == nil {
		panic(invalidState("cannot get error from empty result"))
	}
	return r.err
}

func (r UnitResult) OnSuccess(handler func()) UnitResult {
	if r.isSuccess {
		handler()
	}
	return r
}

func (r UnitResult) OnFailure(handler func(err *Error)) UnitResult {
	if r.IsFailure() {
		handler(r.err)
	}
	return r
}

// Merge keeps the first failure: r if it failed, else other if it failed,
// else a success.
func (r UnitResult) Merge(other UnitResult) UnitResult {
	if r.IsFailure() {
		return r
	}
	if other.IsFailure() {
		return other
	}
	return UnitSuccess()
}

func (r UnitResult) ToResult() Result[Unit] {
	switch {
	case r.isSuccess:
		return SuccessUnit()
	case r.err != nil:
		return Failure[Unit](r.err)
	default:
		return Result[Unit]{}
	}
}

// MustWith panics with the error built by mapper when r is a failure. When
// mapper returns nil it panics with a *DomainInvariantError instead.
func (r UnitResult) MustWith(mapper func(err *Error) error) {
	if r.isSuccess {
		return
	}
	if mapped := mapper(r.Err()); mapped != nil {
		panic(mapped)
	}
	panic(NewDomainInvariantError(r.err))
}

// Must panics with a *DomainInvariantError when r is a failure.
//
// Call it only where a failure is impossible by contract.
func (r UnitResult) Must() {
	if r.isSuccess {
		return
	}
	panic(NewDomainInvariantError(r.Err()))
}

func (r UnitResult) String() string {
	switch {
	case r.isSuccess:
		return "Success"
	case r.err != nil:
		return fmt.Sprintf("Failure(%v)", r.err)
	default:
		return "Empty"
	}
}

// FoldUnit eliminates r by calling exactly one of the two functions.
func FoldUnit[U any](r UnitResult, onSuccess func() U, onFailure func(err *Error) U) U {
	if r.isSuccess {
		return onSuccess()
	}
	return onFailure(r.Err())
}
