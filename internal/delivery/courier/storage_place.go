// Package courier models what a courier carries.
package courier

import (
	"github.com/google/uuid"

	"github.com/ib-77/ropdomain/internal/delivery/kernel"
	"github.com/ib-77/ropdomain/pkg/rop"
	"github.com/ib-77/ropdomain/pkg/rop/guard"
	"github.com/ib-77/ropdomain/pkg/rop/solo"
)

var (
	ErrAlreadyOccupied = rop.Of("already.contains.another.order",
		"The storage location already contains another order")
	ErrOrderMismatch = rop.Of("order.id.does.not.match",
		"The order ID does not match the one stored in the storage place")
)

// StoragePlace is a compartment of a courier's transport that holds at most
// one order at a time.
type StoragePlace struct {
	id          uuid.UUID
	name        string
	totalVolume kernel.Volume
	orderID     *uuid.UUID
}

func NewStoragePlace(name string, totalVolume int) rop.Result[*StoragePlace] {
	if err := guard.Combine(
		guard.AgainstNullOrEmpty(name, "name"),
		guard.AgainstLessThan(totalVolume, kernel.MinVolume, "totalVolume"),
	); err != nil {
		return rop.Failure[*StoragePlace](err)
	}

	return rop.Map(kernel.NewVolume(totalVolume), func(volume kernel.Volume) *StoragePlace {
		return &StoragePlace{
			id:          uuid.New(),
			name:        name,
			totalVolume: volume,
		}
	})
}

func (s *StoragePlace) ID() uuid.UUID {
	return s.id
}

func (s *StoragePlace) Name() string {
	return s.name
}

func (s *StoragePlace) TotalVolume() int {
	return s.totalVolume.Value()
}

// OrderID returns the stored order, if any.
func (s *StoragePlace) OrderID() (uuid.UUID, bool) {
	if s.orderID == nil {
		return uuid.Nil, false
	}
	return *s.orderID, true
}

func (s *StoragePlace) IsOccupied() bool {
	return s.orderID != nil
}

func (s *StoragePlace) CanStore(volume int) bool {
	return !s.IsOccupied() && volume <= s.totalVolume.Value()
}

func (s *StoragePlace) Store(orderID uuid.UUID, volume int) rop.UnitResult {
	if s.IsOccupied() {
		return rop.UnitFailure(ErrAlreadyOccupied)
	}

	return solo.Check(
		guard.AgainstNullOrEmptyUUID(orderID, "orderID"),
		guard.AgainstOutOfRange(volume, kernel.MinVolume, s.totalVolume.Value(), "volume"),
	).OnSuccess(func() {
		s.orderID = &orderID
	})
}

func (s *StoragePlace) Clear(orderID uuid.UUID) rop.UnitResult {
	if err := guard.AgainstNullOrEmptyUUID(orderID, "orderID"); err != nil {
		return rop.UnitFailure(err)
	}
	if s.orderID == nil || *s.orderID != orderID {
		return rop.UnitFailure(ErrOrderMismatch)
	}

	s.orderID = nil
	return rop.UnitSuccess()
}
