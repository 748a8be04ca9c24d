package rop

import (
	"errors"
	"fmt"
)

// Contract faults. They signal a bug at the call site and are raised as
// panics whose value wraps one of these sentinels.
var (
	ErrInvalidArgument = errors.New("invalid argument")
	ErrInvalidState    = errors.New("invalid state")
)

func invalidArgument(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, msg)
}

func invalidState(msg string) error {
	return fmt.Errorf("%w: %s", ErrInvalidState, msg)
}
