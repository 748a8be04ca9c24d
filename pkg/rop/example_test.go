package rop_test

import (
	"fmt"
	"strconv"

	"github.com/ib-77/ropdomain/pkg/rop"
	"github.com/ib-77/ropdomain/pkg/rop/general"
	"github.com/ib-77/ropdomain/pkg/rop/guard"
)

func ExampleFlatMap() {
	parse := func(s string) rop.Result[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return rop.Failure[int](general.ValueIsInvalid("quantity", s))
		}
		return rop.Success(n)
	}
	positive := func(n int) rop.Result[int] {
		if err := guard.AgainstLessOrEqual(n, 0, "quantity"); err != nil {
			return rop.Failure[int](err)
		}
		return rop.Success(n)
	}

	for _, in := range []string{"3", "x", "0"} {
		fmt.Println(rop.FlatMap(parse(in), positive))
	}
	// Output:
	// Success(3)
	// Failure(value.is.invalid: Value 'x' is invalid for quantity)
	// Failure(value.must.be.greater.or.equal: The value of quantity (0) must be greater than or equal to 0.)
}

func ExampleUnitResult_Merge() {
	name := guard.AgainstNullOrEmpty("", "name")
	volume := guard.AgainstLessThan(0, 1, "volume")

	merged := rop.UnitSuccess().
		Merge(rop.UnitFailure(name)).
		Merge(rop.UnitFailure(volume))

	fmt.Println(merged.Err().Code())
	// Output: value.is.required
}

func ExampleFold() {
	status := rop.Fold(rop.Failure[string](general.NotFound("courier", 42)),
		func(string) int { return 200 },
		func(err *rop.Error) int {
			if err.Code() == general.CodeRecordNotFound {
				return 404
			}
			return 400
		})

	fmt.Println(status)
	// Output: 404
}
