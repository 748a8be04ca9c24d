// Package kernel holds the value objects shared by the delivery domain.
package kernel

import (
	"fmt"

	"github.com/ib-77/ropdomain/pkg/rop"
	"github.com/ib-77/ropdomain/pkg/rop/guard"
)

const (
	MinCoordinate = 1
	MaxCoordinate = 10
)

// Location is a cell on the delivery grid.
type Location struct {
	x int
	y int
}

func NewLocation(x, y int) rop.Result[Location] {
	if err := guard.Combine(
		guard.AgainstOutOfRange(x, MinCoordinate, MaxCoordinate, "x"),
		guard.AgainstOutOfRange(y, MinCoordinate, MaxCoordinate, "y"),
	); err != nil {
		return rop.Failure[Location](err)
	}
	return rop.Success(Location{x: x, y: y})
}

func MinLocation() Location {
	return NewLocation(MinCoordinate, MinCoordinate).MustValue()
}

func MaxLocation() Location {
	return NewLocation(MaxCoordinate, MaxCoordinate).MustValue()
}

func (l Location) X() int {
	return l.x
}

func (l Location) Y() int {
	return l.y
}

// DistanceTo returns the number of grid steps between the two locations.
func (l Location) DistanceTo(other Location) int {
	return abs(l.x-other.x) + abs(l.y-other.y)
}

func (l Location) String() string {
	return fmt.Sprintf("Location(x=%d, y=%d)", l.x, l.y)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
