package guard

import (
	"cmp"
	"strings"

	"github.com/google/uuid"

	"github.com/ib-77/ropdomain/pkg/rop"
	"github.com/ib-77/ropdomain/pkg/rop/general"
)

// Combine returns the first non-nil error in argument order.
func Combine(errs ...*rop.Error) *rop.Error {
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// AgainstNullOrEmpty fails on empty or whitespace-only text.
func AgainstNullOrEmpty(value, name string) *rop.Error {
	if strings.TrimSpace(value) == "" {
		return general.ValueIsRequired(name)
	}
	return nil
}

func AgainstNullOrEmptySlice[S ~[]E, E any](s S, name string) *rop.Error {
	if len(s) == 0 {
		return general.ValueIsRequired(name)
	}
	return nil
}

func AgainstNullOrEmptyMap[M ~map[K]V, K comparable, V any](m M, name string) *rop.Error {
	if len(m) == 0 {
		return general.ValueIsRequired(name)
	}
	return nil
}

// AgainstNullOrEmptyUUID fails on the all-zero uuid.Nil sentinel.
func AgainstNullOrEmptyUUID(id uuid.UUID, name string) *rop.Error {
	if id == uuid.Nil {
		return general.ValueIsRequired(name)
	}
	return nil
}

// AgainstNilOrEmptyUUID fails on an absent id as well as on uuid.Nil.
func AgainstNilOrEmptyUUID(id *uuid.UUID, name string) *rop.Error {
	if id == nil {
		return general.ValueIsRequired(name)
	}
	return AgainstNullOrEmptyUUID(*id, name)
}

func AgainstGreaterThan[T cmp.Ordered](value, max T, name string) *rop.Error {
	return AgainstGreaterThanFunc(value, max, cmp.Compare[T], name)
}

func AgainstGreaterOrEqual[T cmp.Ordered](value, max T, name string) *rop.Error {
	return AgainstGreaterOrEqualFunc(value, max, cmp.Compare[T], name)
}

func AgainstLessThan[T cmp.Ordered](value, min T, name string) *rop.Error {
	return AgainstLessThanFunc(value, min, cmp.Compare[T], name)
}

func AgainstLessOrEqual[T cmp.Ordered](value, min T, name string) *rop.Error {
	return AgainstLessOrEqualFunc(value, min, cmp.Compare[T], name)
}

// AgainstOutOfRange fails unless min <= value <= max.
func AgainstOutOfRange[T cmp.Ordered](value, min, max T, name string) *rop.Error {
	return AgainstOutOfRangeFunc(value, min, max, cmp.Compare[T], name)
}
