package queries

import (
	"time"

	"loadbook/internal/core/domain/model/booking"
	"loadbook/internal/core/domain/model/kernel"
	"loadbook/internal/core/domain/model/load"

	"github.com/google/uuid"
)

// LoadView is the read model of a load.
type LoadView struct {
	ID          kernel.UUID
	ShipperID   string
	Facility    FacilityView
	ProductType string
	TruckType   string
	NoOfTrucks  int
	Weight      float64
	Comment     string
	Status      load.Status
	DatePosted  time.Time
	UpdatedAt   time.Time
}

type FacilityView struct {
	LoadingPoint   string
	UnloadingPoint string
	LoadingDate    time.Time
	UnloadingDate  time.Time
}

// BookingView is the read model of a booking.
type BookingView struct {
	ID            kernel.UUID
	LoadID        kernel.UUID
	TransporterID string
	ProposedRate  float64
	Comment       string
	Status        booking.Status
	RequestedAt   time.Time
	UpdatedAt     time.Time
}

const (
	loadColumns = `id, shipper_id, facility_loading_point, facility_unloading_point,
		facility_loading_date, facility_unloading_date, product_type, truck_type,
		no_of_trucks, weight, comment, status, date_posted, updated_at`
	bookingColumns = `id, load_id, transporter_id, proposed_rate, comment, status,
		requested_at, updated_at`
)

type loadRow struct {
	ID                     uuid.UUID
	ShipperID              string
	FacilityLoadingPoint   string
	FacilityUnloadingPoint string
	FacilityLoadingDate    time.Time
	FacilityUnloadingDate  time.Time
	ProductType            string
	TruckType              string
	NoOfTrucks             int
	Weight                 float64
	Comment                string
	Status                 int
	DatePosted             time.Time
	UpdatedAt              time.Time
}

func (r loadRow) view() (LoadView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return LoadView{}, err
	}

	status := load.Status(r.Status)
	if err = status.Validate(); err != nil {
		return LoadView{}, err
	}

	return LoadView{
		ID:        id,
		ShipperID: r.ShipperID,
		Facility: FacilityView{
			LoadingPoint:   r.FacilityLoadingPoint,
			UnloadingPoint: r.FacilityUnloadingPoint,
			LoadingDate:    r.FacilityLoadingDate,
			UnloadingDate:  r.FacilityUnloadingDate,
		},
		ProductType: r.ProductType,
		TruckType:   r.TruckType,
		NoOfTrucks:  r.NoOfTrucks,
		Weight:      r.Weight,
		Comment:     r.Comment,
		Status:      status,
		DatePosted:  r.DatePosted,
		UpdatedAt:   r.UpdatedAt,
	}, nil
}

type bookingRow struct {
	ID            uuid.UUID
	LoadID        uuid.UUID
	TransporterID string
	ProposedRate  float64
	Comment       string
	Status        int
	RequestedAt   time.Time
	UpdatedAt     time.Time
}

func (r bookingRow) view() (BookingView, error) {
	id, err := kernel.UUIDFromBytes(r.ID[:])
	if err != nil {
		return BookingView{}, err
	}

	loadID, err := kernel.UUIDFromBytes(r.LoadID[:])
	if err != nil {
		return BookingView{}, err
	}

	status := booking.Status(r.Status)
	if err = status.Validate(); err != nil {
		return BookingView{}, err
	}

	return BookingView{
		ID:            id,
		LoadID:        loadID,
		TransporterID: r.TransporterID,
		ProposedRate:  r.ProposedRate,
		Comment:       r.Comment,
		Status:        status,
		RequestedAt:   r.RequestedAt,
		UpdatedAt:     r.UpdatedAt,
	}, nil
}
