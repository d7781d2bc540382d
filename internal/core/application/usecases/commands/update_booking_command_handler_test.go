package commands_test

import (
	"testing"

	"loadbook/internal/core/application/usecases/commands"
	"loadbook/internal/core/domain/model/booking"
	"loadbook/internal/core/domain/model/kernel"
	"loadbook/internal/core/domain/model/load"
	"loadbook/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewUpdateBookingCommand_InvalidID(t *testing.T) {
	_, err := commands.NewUpdateBookingCommand(kernel.UUID{}, booking.Patch{})
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestUpdateBookingCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	l := loadIn(t, load.Posted)
	b := bookingIn(t, l.ID(), "transporter-1", booking.Pending)
	cmd, err := commands.NewUpdateBookingCommand(b.ID(), booking.Patch{ProposedRate: ptr(31000.0)})
	require.NoError(t, err)

	loads := new(MockLoadRepository)
	bookings := new(MockBookingRepository)
	mock.InOrder(
		bookings.On("Get", ctx, b.ID()).Return(b, nil).Once(),
		loads.On("GetForUpdate", ctx, l.ID()).Return(l, nil).Once(),
		bookings.On("Get", ctx, b.ID()).Return(b, nil).Once(),
		bookings.On("Update", ctx, b).Return(nil).Once(),
	)
	uow := newTx(ctx, loads, bookings)
	uow.On("Commit", ctx).Return(nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateBookingCommandHandler(factory, discardLogger())
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	assert.InDelta(t, 31000.0, updated.ProposedRate(), 0.001)
	bookings.AssertExpectations(t)
	loads.AssertExpectations(t)
}

func TestUpdateBookingCommandHandler_Handle_DecidedBooking(t *testing.T) {
	for _, status := range []booking.Status{booking.Accepted, booking.Rejected} {
		t.Run(status.String(), func(t *testing.T) {
			ctx := t.Context()
			l := loadIn(t, load.Booked)
			b := bookingIn(t, l.ID(), "transporter-1", status)
			cmd, _ := commands.NewUpdateBookingCommand(b.ID(), booking.Patch{Comment: ptr("late")})

			loads := new(MockLoadRepository)
			bookings := new(MockBookingRepository)
			bookings.On("Get", ctx, b.ID()).Return(b, nil).Twice()
			loads.On("GetForUpdate", ctx, l.ID()).Return(l, nil).Once()

			factory := new(MockUoWFactory)
			factory.On("Create").Return(newTx(ctx, loads, bookings)).Once()

			h := commands.NewUpdateBookingCommandHandler(factory, discardLogger())
			_, err := h.Handle(ctx, cmd)
			assert.ErrorIs(t, err, errs.ErrIllegalMutation)
			bookings.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateBookingCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, _ := commands.NewUpdateBookingCommand(id, booking.Patch{})

	bookings := new(MockBookingRepository)
	bookings.On("Get", ctx, id).Return(nil, errs.NewObjectNotFoundError("booking", id)).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(newTx(ctx, new(MockLoadRepository), bookings)).Once()

	h := commands.NewUpdateBookingCommandHandler(factory, discardLogger())
	_, err := h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}
