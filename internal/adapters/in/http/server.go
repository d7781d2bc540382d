package http

import (
	"context"
	"net/http"

	"loadbook/internal/core/application/usecases/commands"
	"loadbook/internal/core/application/usecases/queries"
	"loadbook/internal/core/domain/model/booking"
	"loadbook/internal/core/domain/model/kernel"
	"loadbook/internal/core/domain/model/load"
	"loadbook/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

type (
	CreateLoadHandler interface {
		Handle(ctx context.Context, cmd commands.CreateLoadCommand) (*load.Load, error)
	}
	UpdateLoadHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateLoadCommand) (*load.Load, error)
	}
	DeleteLoadHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteLoadCommand) error
	}
	ChangeLoadStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeLoadStatusCommand) (*load.Load, error)
	}
	CreateBookingHandler interface {
		Handle(ctx context.Context, cmd commands.CreateBookingCommand) (*booking.Booking, error)
	}
	UpdateBookingHandler interface {
		Handle(ctx context.Context, cmd commands.UpdateBookingCommand) (*booking.Booking, error)
	}
	AcceptBookingHandler interface {
		Handle(ctx context.Context, cmd commands.AcceptBookingCommand) (*booking.Booking, error)
	}
	RejectBookingHandler interface {
		Handle(ctx context.Context, cmd commands.RejectBookingCommand) (*booking.Booking, error)
	}
	DeleteBookingHandler interface {
		Handle(ctx context.Context, cmd commands.DeleteBookingCommand) error
	}
	GetLoadHandler interface {
		Handle(ctx context.Context, query queries.GetLoadQuery) (queries.LoadView, error)
	}
	ListLoadsHandler interface {
		Handle(ctx context.Context, query queries.ListLoadsQuery) (queries.Paged[queries.LoadView], error)
	}
	GetBookingHandler interface {
		Handle(ctx context.Context, query queries.GetBookingQuery) (queries.BookingView, error)
	}
	ListBookingsHandler interface {
		Handle(ctx context.Context, query queries.ListBookingsQuery) (queries.Paged[queries.BookingView], error)
	}
)

// Handlers groups the use cases the HTTP surface dispatches to.
type Handlers struct {
	CreateLoad       CreateLoadHandler
	UpdateLoad       UpdateLoadHandler
	DeleteLoad       DeleteLoadHandler
	ChangeLoadStatus ChangeLoadStatusHandler
	GetLoad          GetLoadHandler
	ListLoads        ListLoadsHandler

	CreateBooking CreateBookingHandler
	UpdateBooking UpdateBookingHandler
	AcceptBooking AcceptBookingHandler
	RejectBooking RejectBookingHandler
	DeleteBooking DeleteBookingHandler
	GetBooking    GetBookingHandler
	ListBookings  ListBookingsHandler
}

// Server implements ServerInterface on top of the application use cases.
// Handlers return errors untouched; NewErrorHandler renders them.
type Server struct {
	h Handlers
}

var _ ServerInterface = (*Server)(nil)

func NewServer(handlers Handlers) *Server {
	return &Server{h: handlers}
}

func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// CreateLoad handles POST /api/v1/load.
func (s *Server) CreateLoad(ctx echo.Context) error {
	var req CreateLoadRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewCreateLoadCommand(kernel.NewUUID(), load.Details{
		ShipperID:   req.ShipperId,
		ProductType: req.ProductType,
		TruckType:   req.TruckType,
		TruckCount:  req.NoOfTrucks,
		Weight:      req.Weight,
		Comment:     deref(req.Comment),
	}, commands.FacilityInput{
		LoadingPoint:   req.Facility.LoadingPoint,
		UnloadingPoint: req.Facility.UnloadingPoint,
		LoadingTime:    req.Facility.LoadingDate,
		UnloadingTime:  req.Facility.UnloadingDate,
	})
	if err != nil {
		return err
	}

	created, err := s.h.CreateLoad.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, loadResponse(created))
}

// ListLoads handles GET /api/v1/load.
func (s *Server) ListLoads(ctx echo.Context, params ListLoadsParams) error {
	filter := queries.LoadFilter{
		ShipperID: deref(params.ShipperId),
		TruckType: deref(params.TruckType),
	}
	if params.Status != nil {
		status, err := load.ParseStatus(*params.Status)
		if err != nil {
			return err
		}
		filter.Status = &status
	}

	page, err := pageOf(params.Page, params.Size)
	if err != nil {
		return err
	}
	query, err := queries.NewListLoadsQuery(filter, page)
	if err != nil {
		return err
	}

	result, err := s.h.ListLoads.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, pagedResponse(result, loadViewResponse))
}

// GetLoad handles GET /api/v1/load/{loadId}.
func (s *Server) GetLoad(ctx echo.Context, loadId openapi_types.UUID) error {
	id, err := toKernelUUID(loadId)
	if err != nil {
		return err
	}
	query, err := queries.NewGetLoadQuery(id)
	if err != nil {
		return err
	}

	view, err := s.h.GetLoad.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, loadViewResponse(view))
}

// UpdateLoad handles PUT /api/v1/load/{loadId}. Absent fields are kept.
func (s *Server) UpdateLoad(ctx echo.Context, loadId openapi_types.UUID) error {
	id, err := toKernelUUID(loadId)
	if err != nil {
		return err
	}
	var req UpdateLoadRequest
	if err = ctx.Bind(&req); err != nil {
		return err
	}

	patch := load.Patch{
		ProductType: req.ProductType,
		TruckType:   req.TruckType,
		TruckCount:  req.NoOfTrucks,
		Weight:      req.Weight,
		Comment:     req.Comment,
	}
	if req.Facility != nil {
		patch.Facility = load.FacilityPatch{
			LoadingPoint:   req.Facility.LoadingPoint,
			UnloadingPoint: req.Facility.UnloadingPoint,
			LoadingTime:    req.Facility.LoadingDate,
			UnloadingTime:  req.Facility.UnloadingDate,
		}
	}

	cmd, err := commands.NewUpdateLoadCommand(id, patch)
	if err != nil {
		return err
	}
	updated, err := s.h.UpdateLoad.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, loadResponse(updated))
}

// DeleteLoad handles DELETE /api/v1/load/{loadId}.
func (s *Server) DeleteLoad(ctx echo.Context, loadId openapi_types.UUID) error {
	id, err := toKernelUUID(loadId)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteLoadCommand(id)
	if err != nil {
		return err
	}
	if err = s.h.DeleteLoad.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// ChangeLoadStatus handles PATCH /api/v1/load/{loadId}/status.
func (s *Server) ChangeLoadStatus(ctx echo.Context, loadId openapi_types.UUID) error {
	id, err := toKernelUUID(loadId)
	if err != nil {
		return err
	}
	var req ChangeLoadStatusRequest
	if err = ctx.Bind(&req); err != nil {
		return err
	}
	target, err := load.ParseStatus(req.Status)
	if err != nil {
		return err
	}

	cmd, err := commands.NewChangeLoadStatusCommand(id, target)
	if err != nil {
		return err
	}
	changed, err := s.h.ChangeLoadStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, loadResponse(changed))
}

// CreateBooking handles POST /api/v1/booking.
func (s *Server) CreateBooking(ctx echo.Context) error {
	var req CreateBookingRequest
	if err := ctx.Bind(&req); err != nil {
		return err
	}
	loadID, err := toKernelUUID(req.LoadId)
	if err != nil {
		return err
	}

	cmd, err := commands.NewCreateBookingCommand(kernel.NewUUID(), loadID, req.TransporterId, req.ProposedRate, deref(req.Comment))
	if err != nil {
		return err
	}
	created, err := s.h.CreateBooking.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusCreated, bookingResponse(created))
}

// ListBookings handles GET /api/v1/booking.
func (s *Server) ListBookings(ctx echo.Context, params ListBookingsParams) error {
	filter := queries.BookingFilter{
		TransporterID: deref(params.TransporterId),
	}
	if params.LoadId != nil {
		loadID, err := toKernelUUID(*params.LoadId)
		if err != nil {
			return err
		}
		filter.LoadID = &loadID
	}
	if params.Status != nil {
		status, err := booking.ParseStatus(*params.Status)
		if err != nil {
			return err
		}
		filter.Status = &status
	}

	page, err := pageOf(params.Page, params.Size)
	if err != nil {
		return err
	}
	query, err := queries.NewListBookingsQuery(filter, page)
	if err != nil {
		return err
	}

	result, err := s.h.ListBookings.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, pagedResponse(result, bookingViewResponse))
}

// GetBooking handles GET /api/v1/booking/{bookingId}.
func (s *Server) GetBooking(ctx echo.Context, bookingId openapi_types.UUID) error {
	id, err := toKernelUUID(bookingId)
	if err != nil {
		return err
	}
	query, err := queries.NewGetBookingQuery(id)
	if err != nil {
		return err
	}

	view, err := s.h.GetBooking.Handle(ctx.Request().Context(), query)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, bookingViewResponse(view))
}

// UpdateBooking handles PUT /api/v1/booking/{bookingId}.
func (s *Server) UpdateBooking(ctx echo.Context, bookingId openapi_types.UUID) error {
	id, err := toKernelUUID(bookingId)
	if err != nil {
		return err
	}
	var req UpdateBookingRequest
	if err = ctx.Bind(&req); err != nil {
		return err
	}

	cmd, err := commands.NewUpdateBookingCommand(id, booking.Patch{
		ProposedRate: req.ProposedRate,
		Comment:      req.Comment,
	})
	if err != nil {
		return err
	}
	updated, err := s.h.UpdateBooking.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, bookingResponse(updated))
}

// DeleteBooking handles DELETE /api/v1/booking/{bookingId}.
func (s *Server) DeleteBooking(ctx echo.Context, bookingId openapi_types.UUID) error {
	id, err := toKernelUUID(bookingId)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeleteBookingCommand(id)
	if err != nil {
		return err
	}
	if err = s.h.DeleteBooking.Handle(ctx.Request().Context(), cmd); err != nil {
		return err
	}
	return ctx.NoContent(http.StatusNoContent)
}

// AcceptBooking handles PATCH /api/v1/booking/{bookingId}/accept.
func (s *Server) AcceptBooking(ctx echo.Context, bookingId openapi_types.UUID) error {
	id, err := toKernelUUID(bookingId)
	if err != nil {
		return err
	}
	cmd, err := commands.NewAcceptBookingCommand(id)
	if err != nil {
		return err
	}
	accepted, err := s.h.AcceptBooking.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, bookingResponse(accepted))
}

// RejectBooking handles PATCH /api/v1/booking/{bookingId}/reject.
func (s *Server) RejectBooking(ctx echo.Context, bookingId openapi_types.UUID) error {
	id, err := toKernelUUID(bookingId)
	if err != nil {
		return err
	}
	cmd, err := commands.NewRejectBookingCommand(id)
	if err != nil {
		return err
	}
	rejected, err := s.h.RejectBooking.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, bookingResponse(rejected))
}

func toKernelUUID(id openapi_types.UUID) (kernel.UUID, error) {
	converted, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsInvalidErrorWithCause("id", err)
	}
	return converted, nil
}

func pageOf(number *int, size *int) (queries.Page, error) {
	n, sz := 0, queries.DefaultPageSize
	if number != nil {
		n = *number
	}
	if size != nil {
		sz = *size
	}
	return queries.NewPage(n, sz)
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}
