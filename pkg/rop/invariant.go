package rop

import "log/slog"

const invariantPrefix = "Domain invariant violated: "

// DomainInvariantError is the fatal counterpart of Error. It is raised (as a
// panic) only by the fail-fast accessors, when a failure the caller declared
// impossible did happen. It is not meant to be recovered into a result.
type DomainInvariantError struct {
	cause *Error
}

func NewDomainInvariantError(err *Error) *DomainInvariantError {
	if err == nil {
		panic(invalidArgument("error must not be nil"))
	}
	return &DomainInvariantError{cause: err}
}

func (e *DomainInvariantError) Error() string {
	return invariantPrefix + e.cause.Message()
}

func (e *DomainInvariantError) Unwrap() error {
	return e.cause
}

// Cause returns the domain error that violated the invariant.
func (e *DomainInvariantError) Cause() *Error {
	return e.cause
}

func (e *DomainInvariantError) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("violation", e.Error()),
		slog.Any("cause", e.cause),
	)
}

// PanicIf raises a DomainInvariantError when err is not nil. Use it with guard
// outcomes that cannot fail by contract.
func PanicIf(err *Error) {
	if err != nil {
		panic(NewDomainInvariantError(err))
	}
}
