package rop

// Outcome is implemented by Result[T] and UnitResult.
type Outcome interface {
	// IsSuccess returns true if the operation was successful
	IsSuccess() bool
	// IsFailure returns true if the operation failed
	IsFailure() bool
	// Err returns the failure; it panics on success
	Err() *Error
}

// ValueProvider is an Outcome that carries a payload on success.
type ValueProvider[T any] interface {
	Outcome
	// Value returns the successful value; it panics on failure
	Value() T
}

var (
	_ Outcome            = UnitResult{}
	_ ValueProvider[int] = Result[int]{}
)

// FirstFailure returns the error of the first failed outcome, or nil.
func FirstFailure(outcomes ...Outcome) *Error {
	for _, o := range outcomes {
		if o != nil && o.IsFailure() {
			return o.Err()
		}
	}
	return nil
}
