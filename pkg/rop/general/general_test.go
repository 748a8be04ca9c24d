package general

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/ib-77/ropdomain/pkg/rop"
)

func TestConstructors(t *testing.T) {
	t.Parallel()
	id := uuid.MustParse("6f1c7a3e-0d2b-4f7e-9a51-3c8d2e4b1a90")
	day := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		got  *rop.Error
		code string
		msg  string
	}{
		{"not found", NotFound("order", id), CodeRecordNotFound,
			"Record not found. Name: order, id: 6f1c7a3e-0d2b-4f7e-9a51-3c8d2e4b1a90"},
		{"invalid", ValueIsInvalid("email", "a@"), CodeValueIsInvalid,
			"Value 'a@' is invalid for email"},
		{"required", ValueIsRequired("name"), CodeValueIsRequired,
			"Value is required for name"},
		{"length", InvalidLength("street"), CodeInvalidLength,
			"Invalid street length"},
		{"too small", CollectionIsTooSmall(2, 0), CodeCollectionIsTooSmall,
			"The collection must contain 2 items or more. It contains 0 items."},
		{"too large", CollectionIsTooLarge(5, 9), CodeCollectionIsTooLarge,
			"The collection must contain 5 items or fewer. It contains 9 items."},
		{"out of range", ValueIsOutOfRange("quantity", 0, 1, 100), CodeValueIsOutOfRange,
			"Value 0 for quantity is out of range. Min value is 1, max value is 100."},
		{"greater than", ValueMustBeGreaterThan("age", 3, 18), CodeValueMustBeGreaterThan,
			"The value of age (3) must be greater than 18."},
		{"greater or equal", ValueMustBeGreaterOrEqual("weight", 0.5, 1.0), CodeValueMustBeGreaterOrEqual,
			"The value of weight (0.5) must be greater than or equal to 1."},
		{"less than", ValueMustBeLessThan("x", 11, 10), CodeValueMustBeLessThan,
			"The value of x (11) must be less than 10."},
		{"less or equal", ValueMustBeLessOrEqual("due", "b", "a"), CodeValueMustBeLessOrEqual,
			"The value of due (b) must be less than or equal to a."},
		{"time bound", ValueMustBeLessThan("day", day, day), CodeValueMustBeLessThan,
			"The value of day (2024-03-01 00:00:00 +0000 UTC) must be less than 2024-03-01 00:00:00 +0000 UTC."},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.code, tt.got.Code())
			assert.Equal(t, tt.msg, tt.got.Message())
		})
	}
}

func TestConstructors_SameInputSameError(t *testing.T) {
	t.Parallel()
	assert.Equal(t, ValueIsRequired("name"), ValueIsRequired("name"))
	assert.True(t, ValueIsOutOfRange("q", 0, 1, 9).Equal(ValueIsOutOfRange("q", 0, 1, 9)))
}

func TestConstructors_BlankName(t *testing.T) {
	t.Parallel()
	const msg = "invalid argument: name must not be null or empty"

	constructors := map[string]func(name string){
		"NotFound":                  func(n string) { NotFound(n, 1) },
		"ValueIsInvalid":            func(n string) { ValueIsInvalid(n, 1) },
		"ValueIsRequired":           func(n string) { ValueIsRequired(n) },
		"InvalidLength":             func(n string) { InvalidLength(n) },
		"ValueIsOutOfRange":         func(n string) { ValueIsOutOfRange(n, 1, 2, 3) },
		"ValueMustBeGreaterThan":    func(n string) { ValueMustBeGreaterThan(n, 1, 2) },
		"ValueMustBeGreaterOrEqual": func(n string) { ValueMustBeGreaterOrEqual(n, 1, 2) },
		"ValueMustBeLessThan":       func(n string) { ValueMustBeLessThan(n, 1, 2) },
		"ValueMustBeLessOrEqual":    func(n string) { ValueMustBeLessOrEqual(n, 1, 2) },
	}

	for name, construct := range constructors {
		for _, blank := range []string{"", " ", "\t\n"} {
			assert.PanicsWithError(t, msg, func() { construct(blank) }, "%s(%q)", name, blank)
		}
		assert.NotPanics(t, func() { construct("field") }, name)
	}
}

func TestCollectionErrors_NoName(t *testing.T) {
	t.Parallel()
	assert.NotPanics(t, func() {
		CollectionIsTooSmall(1, 0)
		CollectionIsTooLarge(1, 2)
	})
}
