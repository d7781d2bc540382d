package commands_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"loadbook/internal/core/application/usecases/commands"
	"loadbook/internal/core/domain/model/booking"
	"loadbook/internal/core/domain/model/kernel"
	"loadbook/internal/core/domain/model/load"
	"loadbook/internal/core/ports"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockLoadRepository struct{ mock.Mock }

func (m *MockLoadRepository) Add(ctx context.Context, l *load.Load) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLoadRepository) Update(ctx context.Context, l *load.Load) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}

func (m *MockLoadRepository) Get(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*load.Load), args.Error(1)
}

func (m *MockLoadRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*load.Load, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*load.Load), args.Error(1)
}

func (m *MockLoadRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockBookingRepository struct{ mock.Mock }

func (m *MockBookingRepository) Add(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Update(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) Get(ctx context.Context, id kernel.UUID) (*booking.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBookingRepository) ExistsForTransporter(ctx context.Context, loadID kernel.UUID, transporterID string) (bool, error) {
	args := m.Called(ctx, loadID, transporterID)
	return args.Bool(0), args.Error(1)
}

func (m *MockBookingRepository) ListByLoad(
	ctx context.Context,
	loadID kernel.UUID,
	statuses ...booking.Status,
) ([]*booking.Booking, error) {
	args := m.Called(ctx, loadID, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*booking.Booking), args.Error(1)
}

func (m *MockBookingRepository) CountByStatus(ctx context.Context, loadID kernel.UUID) (map[booking.Status]int64, error) {
	args := m.Called(ctx, loadID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[booking.Status]int64), args.Error(1)
}

func (m *MockBookingRepository) Accept(ctx context.Context, b *booking.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBookingRepository) RejectPending(ctx context.Context, loadID kernel.UUID, except kernel.UUID) (int64, error) {
	args := m.Called(ctx, loadID, except)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW serves both the load-only and the booking unit of work.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) LoadRepository() ports.LoadRepository {
	args := m.Called()
	return args.Get(0).(ports.LoadRepository)
}

func (m *MockUoW) BookingRepository() ports.BookingRepository {
	args := m.Called()
	return args.Get(0).(ports.BookingRepository)
}

type MockLoadUoWFactory struct{ mock.Mock }

func (m *MockLoadUoWFactory) Create() commands.LoadUoW {
	args := m.Called()
	return args.Get(0).(commands.LoadUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// newTx wires a unit of work that begins and rolls back successfully and
// hands out the given repositories.
func newTx(ctx context.Context, loads *MockLoadRepository, bookings *MockBookingRepository) *MockUoW {
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("Rollback", ctx).Return(nil)
	if loads != nil {
		uow.On("LoadRepository").Return(loads)
	}
	if bookings != nil {
		uow.On("BookingRepository").Return(bookings)
	}
	return uow
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

var (
	pickup  = time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)
	dropoff = pickup.Add(36 * time.Hour)
)

func sampleDetails() load.Details {
	return load.Details{
		ShipperID:   "shipper-1",
		ProductType: "Electronics",
		TruckType:   "Container",
		TruckCount:  2,
		Weight:      1500,
		Comment:     "fragile",
	}
}

func sampleFacility() commands.FacilityInput {
	return commands.FacilityInput{
		LoadingPoint:   "Mumbai",
		UnloadingPoint: "Delhi",
		LoadingTime:    pickup,
		UnloadingTime:  dropoff,
	}
}

// loadIn returns a load reached through legal transitions from Posted.
func loadIn(t *testing.T, status load.Status) *load.Load {
	t.Helper()

	facility, err := load.NewFacility("Mumbai", "Delhi", pickup, dropoff)
	require.NoError(t, err)
	l, err := load.NewLoad(kernel.NewUUID(), sampleDetails(), facility)
	require.NoError(t, err)

	if status != load.Posted {
		require.NoError(t, l.TransitionTo(status))
	}
	return l
}

func bookingIn(t *testing.T, loadID kernel.UUID, transporterID string, status booking.Status) *booking.Booking {
	t.Helper()

	b, err := booking.NewBooking(kernel.NewUUID(), loadID, transporterID, 25000, "")
	require.NoError(t, err)

	switch status {
	case booking.Accepted:
		require.NoError(t, b.Accept())
	case booking.Rejected:
		require.NoError(t, b.Reject())
	}
	return b
}

func withStatus(status load.Status) any {
	return mock.MatchedBy(func(l *load.Load) bool {
		return l.Status() == status
	})
}
