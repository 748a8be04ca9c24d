// Package solo contains single-value, synchronous helpers that connect guard
// checks and ordinary Go functions to Result[T] and UnitResult.
//
// Highlights:
// - Validate/Ensure: run guard checks against a value, first failure wins
// - Check: lift guard outcomes into a UnitResult
// - Try: call a function (Out, error) and convert its error to a failure
// - MergeAll: combine UnitResults left to right, first failure wins
package solo
