// Package guard turns preconditions into optional errors. Each check returns
// nil when the precondition holds and a canonical *rop.Error from package
// general otherwise. Combine keeps the first failure of several checks.
//
// Ordering checks come in two forms: one over cmp.Ordered values and a Func
// variant taking a comparison, for types like time.Time or *big.Int. A nil
// value passed to a Func variant is absent and always fails.
//
// The failure reported by a check describes the direction the value has to
// move in, which is not always the comparison that was performed:
//
//	AgainstGreaterThan     value > max    -> ValueMustBeLessThan
//	AgainstGreaterOrEqual  value >= max   -> ValueMustBeLessOrEqual
//	AgainstLessThan        value < min    -> ValueMustBeLessThan
//	AgainstLessOrEqual     value <= min   -> ValueMustBeGreaterOrEqual
//	AgainstOutOfRange      outside range  -> ValueIsOutOfRange
package guard
