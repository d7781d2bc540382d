package http

import (
	"time"

	"loadbook/internal/core/application/usecases/queries"
	"loadbook/internal/core/domain/model/booking"
	"loadbook/internal/core/domain/model/load"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

type Facility struct {
	LoadingPoint   string    `json:"loadingPoint"`
	UnloadingPoint string    `json:"unloadingPoint"`
	LoadingDate    time.Time `json:"loadingDate"`
	UnloadingDate  time.Time `json:"unloadingDate"`
}

type FacilityPatch struct {
	LoadingPoint   *string    `json:"loadingPoint,omitempty"`
	UnloadingPoint *string    `json:"unloadingPoint,omitempty"`
	LoadingDate    *time.Time `json:"loadingDate,omitempty"`
	UnloadingDate  *time.Time `json:"unloadingDate,omitempty"`
}

type CreateLoadRequest struct {
	ShipperId   string   `json:"shipperId"`
	Facility    Facility `json:"facility"`
	ProductType string   `json:"productType"`
	TruckType   string   `json:"truckType"`
	NoOfTrucks  int      `json:"noOfTrucks"`
	Weight      float64  `json:"weight"`
	Comment     *string  `json:"comment,omitempty"`
}

type UpdateLoadRequest struct {
	Facility    *FacilityPatch `json:"facility,omitempty"`
	ProductType *string        `json:"productType,omitempty"`
	TruckType   *string        `json:"truckType,omitempty"`
	NoOfTrucks  *int           `json:"noOfTrucks,omitempty"`
	Weight      *float64       `json:"weight,omitempty"`
	Comment     *string        `json:"comment,omitempty"`
}

type ChangeLoadStatusRequest struct {
	Status string `json:"status"`
}

type LoadResponse struct {
	Id          openapi_types.UUID `json:"id"`
	ShipperId   string             `json:"shipperId"`
	Facility    Facility           `json:"facility"`
	ProductType string             `json:"productType"`
	TruckType   string             `json:"truckType"`
	NoOfTrucks  int                `json:"noOfTrucks"`
	Weight      float64            `json:"weight"`
	Comment     string             `json:"comment"`
	Status      string             `json:"status"`
	DatePosted  time.Time          `json:"datePosted"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

type CreateBookingRequest struct {
	LoadId        openapi_types.UUID `json:"loadId"`
	TransporterId string             `json:"transporterId"`
	ProposedRate  float64            `json:"proposedRate"`
	Comment       *string            `json:"comment,omitempty"`
}

type UpdateBookingRequest struct {
	ProposedRate *float64 `json:"proposedRate,omitempty"`
	Comment      *string  `json:"comment,omitempty"`
}

type BookingResponse struct {
	Id            openapi_types.UUID `json:"id"`
	LoadId        openapi_types.UUID `json:"loadId"`
	TransporterId string             `json:"transporterId"`
	ProposedRate  float64            `json:"proposedRate"`
	Comment       string             `json:"comment"`
	Status        string             `json:"status"`
	RequestedAt   time.Time          `json:"requestedAt"`
	UpdatedAt     time.Time          `json:"updatedAt"`
}

// PagedResponse is the envelope of every listing endpoint.
type PagedResponse[T any] struct {
	Content       []T   `json:"content"`
	Page          int   `json:"page"`
	Size          int   `json:"size"`
	TotalElements int64 `json:"totalElements"`
	TotalPages    int   `json:"totalPages"`
	First         bool  `json:"first"`
	Last          bool  `json:"last"`
	HasNext       bool  `json:"hasNext"`
	HasPrevious   bool  `json:"hasPrevious"`
}

type ErrorResponse struct {
	Message   string    `json:"message"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Path      string    `json:"path"`
	Timestamp time.Time `json:"timestamp"`
}

func loadResponse(l *load.Load) LoadResponse {
	f := l.Facility()
	return LoadResponse{
		Id:        l.ID().Bytes(),
		ShipperId: l.ShipperID(),
		Facility: Facility{
			LoadingPoint:   f.LoadingPoint(),
			UnloadingPoint: f.UnloadingPoint(),
			LoadingDate:    f.LoadingTime(),
			UnloadingDate:  f.UnloadingTime(),
		},
		ProductType: l.ProductType(),
		TruckType:   l.TruckType(),
		NoOfTrucks:  l.TruckCount(),
		Weight:      l.Weight(),
		Comment:     l.Comment(),
		Status:      l.Status().String(),
		DatePosted:  l.DatePosted(),
		UpdatedAt:   l.UpdatedAt(),
	}
}

func loadViewResponse(v queries.LoadView) LoadResponse {
	return LoadResponse{
		Id:        v.ID.Bytes(),
		ShipperId: v.ShipperID,
		Facility: Facility{
			LoadingPoint:   v.Facility.LoadingPoint,
			UnloadingPoint: v.Facility.UnloadingPoint,
			LoadingDate:    v.Facility.LoadingDate,
			UnloadingDate:  v.Facility.UnloadingDate,
		},
		ProductType: v.ProductType,
		TruckType:   v.TruckType,
		NoOfTrucks:  v.NoOfTrucks,
		Weight:      v.Weight,
		Comment:     v.Comment,
		Status:      v.Status.String(),
		DatePosted:  v.DatePosted,
		UpdatedAt:   v.UpdatedAt,
	}
}

func bookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		Id:            b.ID().Bytes(),
		LoadId:        b.LoadID().Bytes(),
		TransporterId: b.TransporterID(),
		ProposedRate:  b.ProposedRate(),
		Comment:       b.Comment(),
		Status:        b.Status().String(),
		RequestedAt:   b.RequestedAt(),
		UpdatedAt:     b.UpdatedAt(),
	}
}

func bookingViewResponse(v queries.BookingView) BookingResponse {
	return BookingResponse{
		Id:            v.ID.Bytes(),
		LoadId:        v.LoadID.Bytes(),
		TransporterId: v.TransporterID,
		ProposedRate:  v.ProposedRate,
		Comment:       v.Comment,
		Status:        v.Status.String(),
		RequestedAt:   v.RequestedAt,
		UpdatedAt:     v.UpdatedAt,
	}
}

func pagedResponse[V any, R any](page queries.Paged[V], convert func(V) R) PagedResponse[R] {
	content := make([]R, 0, len(page.Content))
	for _, v := range page.Content {
		content = append(content, convert(v))
	}
	return PagedResponse[R]{
		Content:       content,
		Page:          page.Page,
		Size:          page.Size,
		TotalElements: page.TotalElements,
		TotalPages:    page.TotalPages,
		First:         page.First,
		Last:          page.Last,
		HasNext:       page.HasNext,
		HasPrevious:   page.HasPrevious,
	}
}
