package general

import (
	"fmt"
	"strings"

	"github.com/ib-77/ropdomain/pkg/rop"
)

func NotFound[ID any](name string, id ID) *rop.Error {
	requireName(name)
	return rop.Of(CodeRecordNotFound,
		fmt.Sprintf("Record not found. Name: %s, id: %v", name, id))
}

func ValueIsInvalid[V any](name string, value V) *rop.Error {
	requireName(name)
	return rop.Of(CodeValueIsInvalid,
		fmt.Sprintf("Value '%v' is invalid for %s", value, name))
}

func ValueIsRequired(name string) *rop.Error {
	requireName(name)
	return rop.Of(CodeValueIsRequired, "Value is required for "+name)
}

func InvalidLength(name string) *rop.Error {
	requireName(name)
	return rop.Of(CodeInvalidLength, "Invalid "+name+" length")
}

// CollectionIsTooSmall reports a collection holding fewer than min items.
func CollectionIsTooSmall(min, current int) *rop.Error {
	return rop.Of(CodeCollectionIsTooSmall,
		fmt.Sprintf("The collection must contain %d items or more. It contains %d items.", min, current))
}

// CollectionIsTooLarge reports a collection holding more than max items.
func CollectionIsTooLarge(max, current int) *rop.Error {
	return rop.Of(CodeCollectionIsTooLarge,
		fmt.Sprintf("The collection must contain %d items or fewer. It contains %d items.", max, current))
}

func ValueIsOutOfRange[T any](name string, value, min, max T) *rop.Error {
	requireName(name)
	return rop.Of(CodeValueIsOutOfRange,
		fmt.Sprintf("Value %v for %s is out of range. Min value is %v, max value is %v.", value, name, min, max))
}

func ValueMustBeGreaterThan[T any](name string, value, min T) *rop.Error {
	requireName(name)
	return rop.Of(CodeValueMustBeGreaterThan,
		fmt.Sprintf("The value of %s (%v) must be greater than %v.", name, value, min))
}

func ValueMustBeGreaterOrEqual[T any](name string, value, min T) *rop.Error {
	requireName(name)
	return rop.Of(CodeValueMustBeGreaterOrEqual,
		fmt.Sprintf("The value of %s (%v) must be greater than or equal to %v.", name, value, min))
}

func ValueMustBeLessThan[T any](name string, value, max T) *rop.Error {
	requireName(name)
	return rop.Of(CodeValueMustBeLessThan,
		fmt.Sprintf("The value of %s (%v) must be less than %v.", name, value, max))
}

func ValueMustBeLessOrEqual[T any](name string, value, max T) *rop.Error {
	requireName(name)
	return rop.Of(CodeValueMustBeLessOrEqual,
		fmt.Sprintf("The value of %s (%v) must be less than or equal to %v.", name, value, max))
}

func requireName(name string) {
	if strings.TrimSpace(name) == "" {
		panic(fmt.Errorf("%w: name must not be null or empty", rop.ErrInvalidArgument))
	}
}
