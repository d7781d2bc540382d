package services

import "loadbook/internal/core/domain/model/load"

// ActiveBookings counts the bookings that keep a load Booked.
type ActiveBookings struct {
	Pending  int64
	Accepted int64
}

// IsEmpty reports whether no pending or accepted booking remains.
func (c ActiveBookings) IsEmpty() bool {
	return c.Pending == 0 && c.Accepted == 0
}

// ReversionPolicy decides when a Booked load goes back on the market: once its
// last active booking was rejected or deleted.
type ReversionPolicy struct{}

func NewReversionPolicy() ReversionPolicy {
	return ReversionPolicy{}
}

// ShouldRevert reports whether l must move from Booked to Posted given the
// bookings still active on it. Loads in any other status are never reverted.
func (p ReversionPolicy) ShouldRevert(l *load.Load, active ActiveBookings) bool {
	if l.Validate() != nil {
		return false
	}
	return active.IsEmpty() && l.Status() == load.Booked
}
