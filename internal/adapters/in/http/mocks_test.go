package http_test

import (
	"context"

	"loadbook/internal/core/application/usecases/commands"
	"loadbook/internal/core/application/usecases/queries"
	"loadbook/internal/core/domain/model/booking"
	"loadbook/internal/core/domain/model/load"

	"github.com/stretchr/testify/mock"
)

type MockCreateLoad struct{ mock.Mock }

func (m *MockCreateLoad) Handle(ctx context.Context, cmd commands.CreateLoadCommand) (*load.Load, error) {
	args := m.Called(ctx, cmd)
	l, _ := args.Get(0).(*load.Load)
	return l, args.Error(1)
}

type MockUpdateLoad struct{ mock.Mock }

func (m *MockUpdateLoad) Handle(ctx context.Context, cmd commands.UpdateLoadCommand) (*load.Load, error) {
	args := m.Called(ctx, cmd)
	l, _ := args.Get(0).(*load.Load)
	return l, args.Error(1)
}

type MockDeleteLoad struct{ mock.Mock }

func (m *MockDeleteLoad) Handle(ctx context.Context, cmd commands.DeleteLoadCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockChangeLoadStatus struct{ mock.Mock }

func (m *MockChangeLoadStatus) Handle(ctx context.Context, cmd commands.ChangeLoadStatusCommand) (*load.Load, error) {
	args := m.Called(ctx, cmd)
	l, _ := args.Get(0).(*load.Load)
	return l, args.Error(1)
}

type MockGetLoad struct{ mock.Mock }

func (m *MockGetLoad) Handle(ctx context.Context, query queries.GetLoadQuery) (queries.LoadView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.LoadView), args.Error(1)
}

type MockListLoads struct{ mock.Mock }

func (m *MockListLoads) Handle(ctx context.Context, query queries.ListLoadsQuery) (queries.Paged[queries.LoadView], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.Paged[queries.LoadView]), args.Error(1)
}

type MockCreateBooking struct{ mock.Mock }

func (m *MockCreateBooking) Handle(ctx context.Context, cmd commands.CreateBookingCommand) (*booking.Booking, error) {
	args := m.Called(ctx, cmd)
	b, _ := args.Get(0).(*booking.Booking)
	return b, args.Error(1)
}

type MockUpdateBooking struct{ mock.Mock }

func (m *MockUpdateBooking) Handle(ctx context.Context, cmd commands.UpdateBookingCommand) (*booking.Booking, error) {
	args := m.Called(ctx, cmd)
	b, _ := args.Get(0).(*booking.Booking)
	return b, args.Error(1)
}

type MockAcceptBooking struct{ mock.Mock }

func (m *MockAcceptBooking) Handle(ctx context.Context, cmd commands.AcceptBookingCommand) (*booking.Booking, error) {
	args := m.Called(ctx, cmd)
	b, _ := args.Get(0).(*booking.Booking)
	return b, args.Error(1)
}

type MockRejectBooking struct{ mock.Mock }

func (m *MockRejectBooking) Handle(ctx context.Context, cmd commands.RejectBookingCommand) (*booking.Booking, error) {
	args := m.Called(ctx, cmd)
	b, _ := args.Get(0).(*booking.Booking)
	return b, args.Error(1)
}

type MockDeleteBooking struct{ mock.Mock }

func (m *MockDeleteBooking) Handle(ctx context.Context, cmd commands.DeleteBookingCommand) error {
	return m.Called(ctx, cmd).Error(0)
}

type MockGetBooking struct{ mock.Mock }

func (m *MockGetBooking) Handle(ctx context.Context, query queries.GetBookingQuery) (queries.BookingView, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.BookingView), args.Error(1)
}

type MockListBookings struct{ mock.Mock }

func (m *MockListBookings) Handle(ctx context.Context, query queries.ListBookingsQuery) (queries.Paged[queries.BookingView], error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.Paged[queries.BookingView]), args.Error(1)
}

type mocks struct {
	createLoad       *MockCreateLoad
	updateLoad       *MockUpdateLoad
	deleteLoad       *MockDeleteLoad
	changeLoadStatus *MockChangeLoadStatus
	getLoad          *MockGetLoad
	listLoads        *MockListLoads
	createBooking    *MockCreateBooking
	updateBooking    *MockUpdateBooking
	acceptBooking    *MockAcceptBooking
	rejectBooking    *MockRejectBooking
	deleteBooking    *MockDeleteBooking
	getBooking       *MockGetBooking
	listBookings     *MockListBookings
}

func newMocks() *mocks {
	return &mocks{
		createLoad:       &MockCreateLoad{},
		updateLoad:       &MockUpdateLoad{},
		deleteLoad:       &MockDeleteLoad{},
		changeLoadStatus: &MockChangeLoadStatus{},
		getLoad:          &MockGetLoad{},
		listLoads:        &MockListLoads{},
		createBooking:    &MockCreateBooking{},
		updateBooking:    &MockUpdateBooking{},
		acceptBooking:    &MockAcceptBooking{},
		rejectBooking:    &MockRejectBooking{},
		deleteBooking:    &MockDeleteBooking{},
		getBooking:       &MockGetBooking{},
		listBookings:     &MockListBookings{},
	}
}
