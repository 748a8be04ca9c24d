package kernel

import (
	"github.com/ib-77/ropdomain/pkg/rop"
	"github.com/ib-77/ropdomain/pkg/rop/guard"
)

const MinVolume = 1

type Volume struct {
	value int
}

func NewVolume(value int) rop.Result[Volume] {
	if err := guard.AgainstLessThan(value, MinVolume, "value"); err != nil {
		return rop.Failure[Volume](err)
	}
	return rop.Success(Volume{value: value})
}

func (v Volume) Value() int {
	return v.value
}
