package guard

import (
	"github.com/ib-77/ropdomain/pkg/rop"
	"github.com/ib-77/ropdomain/pkg/rop/general"
)

// The Func variants take a comparison following the cmp.Compare convention:
// negative when a < b, zero when equal, positive when a > b.

func AgainstGreaterThanFunc[T any](value, max T, cmp func(a, b T) int, name string) *rop.Error {
	if rop.IsNil(value) || cmp(value, max) > 0 {
		return general.ValueMustBeLessThan(name, value, max)
	}
	return nil
}

func AgainstGreaterOrEqualFunc[T any](value, max T, cmp func(a, b T) int, name string) *rop.Error {
	if rop.IsNil(value) || cmp(value, max) >= 0 {
		return general.ValueMustBeLessOrEqual(name, value, max)
	}
	return nil
}

func AgainstLessThanFunc[T any](value, min T, cmp func(a, b T) int, name string) *rop.Error {
	if rop.IsNil(value) || cmp(value, min) < 0 {
		return general.ValueMustBeLessThan(name, value, min)
	}
	return nil
}

func AgainstLessOrEqualFunc[T any](value, min T, cmp func(a, b T) int, name string) *rop.Error {
	if rop.IsNil(value) || cmp(value, min) <= 0 {
		return general.ValueMustBeGreaterOrEqual(name, value, min)
	}
	return nil
}

func AgainstOutOfRangeFunc[T any](value, min, max T, cmp func(a, b T) int, name string) *rop.Error {
	if rop.IsNil(value) || cmp(value, min) < 0 || cmp(value, max) > 0 {
		return general.ValueIsOutOfRange(name, value, min, max)
	}
	return nil
}
