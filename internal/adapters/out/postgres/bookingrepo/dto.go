// Package bookingrepo persists booking aggregates with gorm.
package bookingrepo

import (
	"time"

	"loadbook/internal/adapters/out/postgres/loadrepo"
	"loadbook/internal/core/domain/model/booking"
	"loadbook/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// BookingDTO is the row of the bookings table.
//
// Two unique indexes back the booking invariants at storage level:
//   - idx_bookings_load_transporter: one booking per (load, transporter)
//   - idx_bookings_single_accepted: partial index on load_id over rows with
//     status 2 (booking.Accepted), at most one accepted booking per load
//
// Deleting a load cascades to its bookings through the Load foreign key.
type BookingDTO struct {
	ID            uuid.UUID         `gorm:"type:uuid;primaryKey"`
	LoadID        uuid.UUID         `gorm:"type:uuid;not null;uniqueIndex:idx_bookings_load_transporter,priority:1;uniqueIndex:idx_bookings_single_accepted,where:status = 2"`
	Load          *loadrepo.LoadDTO `gorm:"foreignKey:LoadID;references:ID;constraint:OnDelete:CASCADE"`
	TransporterID string            `gorm:"not null;uniqueIndex:idx_bookings_load_transporter,priority:2;index"`
	ProposedRate  float64           `gorm:"not null"`
	Comment       string            `gorm:"size:1000"`
	Status        int               `gorm:"not null;index"`
	RequestedAt   time.Time         `gorm:"autoCreateTime;index"`
	UpdatedAt     time.Time         `gorm:"autoUpdateTime"`
}

func (BookingDTO) TableName() string {
	return "bookings"
}

func fromDomain(aggregate *booking.Booking) BookingDTO {
	return BookingDTO{
		ID:            aggregate.ID().Bytes(),
		LoadID:        aggregate.LoadID().Bytes(),
		TransporterID: aggregate.TransporterID(),
		ProposedRate:  aggregate.ProposedRate(),
		Comment:       aggregate.Comment(),
		Status:        int(aggregate.Status()),
		RequestedAt:   aggregate.RequestedAt(),
		UpdatedAt:     aggregate.UpdatedAt(),
	}
}

// ToDomain rebuilds a booking from its row. It is shared with the query side.
func ToDomain(dto BookingDTO) (*booking.Booking, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	loadID, err := kernel.UUIDFromBytes(dto.LoadID[:])
	if err != nil {
		return nil, err
	}

	status := booking.Status(dto.Status)
	if err = status.Validate(); err != nil {
		return nil, err
	}

	return booking.RestoreBooking(
		id,
		loadID,
		dto.TransporterID,
		dto.ProposedRate,
		dto.Comment,
		status,
		dto.RequestedAt,
		dto.UpdatedAt,
	), nil
}
