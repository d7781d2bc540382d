package http

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ListLoadsParams defines parameters for ListLoads.
type ListLoadsParams struct {
	ShipperId *string `form:"shipperId,omitempty" json:"shipperId,omitempty"`
	TruckType *string `form:"truckType,omitempty" json:"truckType,omitempty"`
	Status    *string `form:"status,omitempty" json:"status,omitempty"`
	Page      *int    `form:"page,omitempty" json:"page,omitempty"`
	Size      *int    `form:"size,omitempty" json:"size,omitempty"`
}

// ListBookingsParams defines parameters for ListBookings.
type ListBookingsParams struct {
	LoadId        *openapi_types.UUID `form:"loadId,omitempty" json:"loadId,omitempty"`
	TransporterId *string             `form:"transporterId,omitempty" json:"transporterId,omitempty"`
	Status        *string             `form:"status,omitempty" json:"status,omitempty"`
	Page          *int                `form:"page,omitempty" json:"page,omitempty"`
	Size          *int                `form:"size,omitempty" json:"size,omitempty"`
}

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// (GET /health)
	Health(ctx echo.Context) error

	// (POST /api/v1/load)
	CreateLoad(ctx echo.Context) error
	// (GET /api/v1/load)
	ListLoads(ctx echo.Context, params ListLoadsParams) error
	// (GET /api/v1/load/{loadId})
	GetLoad(ctx echo.Context, loadId openapi_types.UUID) error
	// (PUT /api/v1/load/{loadId})
	UpdateLoad(ctx echo.Context, loadId openapi_types.UUID) error
	// (DELETE /api/v1/load/{loadId})
	DeleteLoad(ctx echo.Context, loadId openapi_types.UUID) error
	// (PATCH /api/v1/load/{loadId}/status)
	ChangeLoadStatus(ctx echo.Context, loadId openapi_types.UUID) error

	// (POST /api/v1/booking)
	CreateBooking(ctx echo.Context) error
	// (GET /api/v1/booking)
	ListBookings(ctx echo.Context, params ListBookingsParams) error
	// (GET /api/v1/booking/{bookingId})
	GetBooking(ctx echo.Context, bookingId openapi_types.UUID) error
	// (PUT /api/v1/booking/{bookingId})
	UpdateBooking(ctx echo.Context, bookingId openapi_types.UUID) error
	// (DELETE /api/v1/booking/{bookingId})
	DeleteBooking(ctx echo.Context, bookingId openapi_types.UUID) error
	// (PATCH /api/v1/booking/{bookingId}/accept)
	AcceptBooking(ctx echo.Context, bookingId openapi_types.UUID) error
	// (PATCH /api/v1/booking/{bookingId}/reject)
	RejectBooking(ctx echo.Context, bookingId openapi_types.UUID) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

func (w *ServerInterfaceWrapper) Health(ctx echo.Context) error {
	return w.Handler.Health(ctx)
}

func (w *ServerInterfaceWrapper) CreateLoad(ctx echo.Context) error {
	return w.Handler.CreateLoad(ctx)
}

func (w *ServerInterfaceWrapper) ListLoads(ctx echo.Context) error {
	var params ListLoadsParams

	if err := bindQuery(ctx, "shipperId", &params.ShipperId); err != nil {
		return err
	}
	if err := bindQuery(ctx, "truckType", &params.TruckType); err != nil {
		return err
	}
	if err := bindQuery(ctx, "status", &params.Status); err != nil {
		return err
	}
	if err := bindQuery(ctx, "page", &params.Page); err != nil {
		return err
	}
	if err := bindQuery(ctx, "size", &params.Size); err != nil {
		return err
	}

	return w.Handler.ListLoads(ctx, params)
}

func (w *ServerInterfaceWrapper) GetLoad(ctx echo.Context) error {
	loadId, err := bindPathUUID(ctx, "loadId")
	if err != nil {
		return err
	}
	return w.Handler.GetLoad(ctx, loadId)
}

func (w *ServerInterfaceWrapper) UpdateLoad(ctx echo.Context) error {
	loadId, err := bindPathUUID(ctx, "loadId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateLoad(ctx, loadId)
}

func (w *ServerInterfaceWrapper) DeleteLoad(ctx echo.Context) error {
	loadId, err := bindPathUUID(ctx, "loadId")
	if err != nil {
		return err
	}
	return w.Handler.DeleteLoad(ctx, loadId)
}

func (w *ServerInterfaceWrapper) ChangeLoadStatus(ctx echo.Context) error {
	loadId, err := bindPathUUID(ctx, "loadId")
	if err != nil {
		return err
	}
	return w.Handler.ChangeLoadStatus(ctx, loadId)
}

func (w *ServerInterfaceWrapper) CreateBooking(ctx echo.Context) error {
	return w.Handler.CreateBooking(ctx)
}

func (w *ServerInterfaceWrapper) ListBookings(ctx echo.Context) error {
	var params ListBookingsParams

	if err := bindQuery(ctx, "loadId", &params.LoadId); err != nil {
		return err
	}
	if err := bindQuery(ctx, "transporterId", &params.TransporterId); err != nil {
		return err
	}
	if err := bindQuery(ctx, "status", &params.Status); err != nil {
		return err
	}
	if err := bindQuery(ctx, "page", &params.Page); err != nil {
		return err
	}
	if err := bindQuery(ctx, "size", &params.Size); err != nil {
		return err
	}

	return w.Handler.ListBookings(ctx, params)
}

func (w *ServerInterfaceWrapper) GetBooking(ctx echo.Context) error {
	bookingId, err := bindPathUUID(ctx, "bookingId")
	if err != nil {
		return err
	}
	return w.Handler.GetBooking(ctx, bookingId)
}

func (w *ServerInterfaceWrapper) UpdateBooking(ctx echo.Context) error {
	bookingId, err := bindPathUUID(ctx, "bookingId")
	if err != nil {
		return err
	}
	return w.Handler.UpdateBooking(ctx, bookingId)
}

func (w *ServerInterfaceWrapper) DeleteBooking(ctx echo.Context) error {
	bookingId, err := bindPathUUID(ctx, "bookingId")
	if err != nil {
		return err
	}
	return w.Handler.DeleteBooking(ctx, bookingId)
}

func (w *ServerInterfaceWrapper) AcceptBooking(ctx echo.Context) error {
	bookingId, err := bindPathUUID(ctx, "bookingId")
	if err != nil {
		return err
	}
	return w.Handler.AcceptBooking(ctx, bookingId)
}

func (w *ServerInterfaceWrapper) RejectBooking(ctx echo.Context) error {
	bookingId, err := bindPathUUID(ctx, "bookingId")
	if err != nil {
		return err
	}
	return w.Handler.RejectBooking(ctx, bookingId)
}

func bindPathUUID(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID
	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return id, nil
}

func bindQuery(ctx echo.Context, name string, dest any) error {
	err := runtime.BindQueryParameter("form", true, false, name, ctx.QueryParams(), dest)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}
	return nil
}

// EchoRouter is satisfied by both *echo.Echo and *echo.Group.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers the routes under a common prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/health", wrapper.Health)

	router.POST(baseURL+"/api/v1/load", wrapper.CreateLoad)
	router.GET(baseURL+"/api/v1/load", wrapper.ListLoads)
	router.GET(baseURL+"/api/v1/load/:loadId", wrapper.GetLoad)
	router.PUT(baseURL+"/api/v1/load/:loadId", wrapper.UpdateLoad)
	router.DELETE(baseURL+"/api/v1/load/:loadId", wrapper.DeleteLoad)
	router.PATCH(baseURL+"/api/v1/load/:loadId/status", wrapper.ChangeLoadStatus)

	router.POST(baseURL+"/api/v1/booking", wrapper.CreateBooking)
	router.GET(baseURL+"/api/v1/booking", wrapper.ListBookings)
	router.GET(baseURL+"/api/v1/booking/:bookingId", wrapper.GetBooking)
	router.PUT(baseURL+"/api/v1/booking/:bookingId", wrapper.UpdateBooking)
	router.DELETE(baseURL+"/api/v1/booking/:bookingId", wrapper.DeleteBooking)
	router.PATCH(baseURL+"/api/v1/booking/:bookingId/accept", wrapper.AcceptBooking)
	router.PATCH(baseURL+"/api/v1/booking/:bookingId/reject", wrapper.RejectBooking)
}
