package services_test

import (
	"testing"

	"loadbook/internal/core/domain/model/load"
	"loadbook/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
)

func TestReversionPolicy_ShouldRevert(t *testing.T) {
	policy := services.NewReversionPolicy()

	tests := []struct {
		name   string
		status load.Status
		active services.ActiveBookings
		want   bool
	}{
		{"booked load without active bookings reverts", load.Booked, services.ActiveBookings{}, true},
		{"booked load with accepted booking stays", load.Booked, services.ActiveBookings{Accepted: 1}, false},
		{"booked load with pending booking stays", load.Booked, services.ActiveBookings{Pending: 2}, false},
		{"posted load is never reverted", load.Posted, services.ActiveBookings{}, false},
		{"cancelled load is never reverted", load.Cancelled, services.ActiveBookings{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l := newLoad(t, tt.status)

			assert.Equal(t, tt.want, policy.ShouldRevert(l, tt.active))
			assert.Equal(t, tt.status, l.Status(), "policy never mutates the load")
		})
	}

	t.Run("unconstructed load", func(t *testing.T) {
		assert.False(t, policy.ShouldRevert(&load.Load{}, services.ActiveBookings{}))
	})
}
