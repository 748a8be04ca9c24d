// Package rop is a railway-oriented error algebra for domain code. Operations
// that can fail return a Result[T] or a UnitResult instead of panicking, and
// failures are structured *Error values with a stable code.
//
// Highlights:
// - Of: build an *Error from a code and a message
// - Success/SuccessUnit/Failure: construct Result[T]
// - UnitSuccess/UnitFailure/UnitFrom: construct UnitResult
// - Map/FlatMap/Fold: compose and eliminate results
// - Merge: combine UnitResults, first failure wins
// - MustValue/Must/MustWith: fail-fast escapes for failures impossible by contract
//
// Two kinds of panics exist besides. Contract faults wrap ErrInvalidArgument or
// ErrInvalidState and point at a bug in the caller. A *DomainInvariantError is
// raised by the fail-fast escapes and is not meant to be recovered.
//
// Canonical errors live in package general, precondition checks in package
// guard.
package rop
