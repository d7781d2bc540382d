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

func TestNewCreateBookingCommand_InvalidIDs(t *testing.T) {
	_, err := commands.NewCreateBookingCommand(kernel.UUID{}, kernel.UUID{}, "transporter-1", 100, "")
	assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
}

func TestCreateBookingCommandHandler_Handle_Success(t *testing.T) {
	for _, status := range []load.Status{load.Posted, load.Booked} {
		t.Run(status.String(), func(t *testing.T) {
			ctx := t.Context()
			l := loadIn(t, status)
			cmd, err := commands.NewCreateBookingCommand(kernel.NewUUID(), l.ID(), "transporter-1", 25000, "ready on monday")
			require.NoError(t, err)

			loads := new(MockLoadRepository)
			bookings := new(MockBookingRepository)
			loads.On("GetForUpdate", ctx, l.ID()).Return(l, nil).Once()
			bookings.On("ExistsForTransporter", ctx, l.ID(), "transporter-1").Return(false, nil).Once()
			bookings.On("Add", ctx, mock.AnythingOfType("*booking.Booking")).Return(nil).Once()
			uow := newTx(ctx, loads, bookings)
			uow.On("Commit", ctx).Return(nil).Once()

			factory := new(MockUoWFactory)
			factory.On("Create").Return(uow).Once()

			h := commands.NewCreateBookingCommandHandler(factory, discardLogger())
			created, err := h.Handle(ctx, cmd)
			require.NoError(t, err)
			assert.Equal(t, cmd.BookingID(), created.ID())
			assert.Equal(t, booking.Pending, created.Status())
			assert.Equal(t, status, l.Status())
			loads.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
			bookings.AssertExpectations(t)
			uow.AssertExpectations(t)
		})
	}
}

func TestCreateBookingCommandHandler_Handle_CancelledLoad(t *testing.T) {
	ctx := t.Context()
	l := loadIn(t, load.Cancelled)
	cmd, _ := commands.NewCreateBookingCommand(kernel.NewUUID(), l.ID(), "transporter-1", 25000, "")

	loads := new(MockLoadRepository)
	bookings := new(MockBookingRepository)
	loads.On("GetForUpdate", ctx, l.ID()).Return(l, nil).Once()
	bookings.On("ExistsForTransporter", ctx, l.ID(), "transporter-1").Return(false, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(newTx(ctx, loads, bookings)).Once()

	h := commands.NewCreateBookingCommandHandler(factory, discardLogger())
	_, err := h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, errs.ErrLoadCancelled)
	bookings.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateBookingCommandHandler_Handle_DuplicateTransporter(t *testing.T) {
	ctx := t.Context()
	l := loadIn(t, load.Posted)
	cmd, _ := commands.NewCreateBookingCommand(kernel.NewUUID(), l.ID(), "transporter-1", 25000, "")

	loads := new(MockLoadRepository)
	bookings := new(MockBookingRepository)
	loads.On("GetForUpdate", ctx, l.ID()).Return(l, nil).Once()
	bookings.On("ExistsForTransporter", ctx, l.ID(), "transporter-1").Return(true, nil).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(newTx(ctx, loads, bookings)).Once()

	h := commands.NewCreateBookingCommandHandler(factory, discardLogger())
	_, err := h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, errs.ErrDuplicateBooking)
	bookings.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCreateBookingCommandHandler_Handle_UnknownLoad(t *testing.T) {
	ctx := t.Context()
	loadID := kernel.NewUUID()
	cmd, _ := commands.NewCreateBookingCommand(kernel.NewUUID(), loadID, "transporter-1", 25000, "")

	loads := new(MockLoadRepository)
	loads.On("GetForUpdate", ctx, loadID).Return(nil, errs.NewObjectNotFoundError("load", loadID)).Once()

	factory := new(MockUoWFactory)
	factory.On("Create").Return(newTx(ctx, loads, new(MockBookingRepository))).Once()

	h := commands.NewCreateBookingCommandHandler(factory, discardLogger())
	_, err := h.Handle(ctx, cmd)
	assert.ErrorIs(t, err, errs.ErrObjectNotFound)
}

func TestCreateBookingCommandHandler_Handle_InvalidRate(t *testing.T) {
	cmd, _ := commands.NewCreateBookingCommand(kernel.NewUUID(), kernel.NewUUID(), "transporter-1", -5, "")

	factory := new(MockUoWFactory)
	h := commands.NewCreateBookingCommandHandler(factory, discardLogger())
	_, err := h.Handle(t.Context(), cmd)
	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}
