// Package loadrepo persists load aggregates with gorm.
package loadrepo

import (
	"time"

	"loadbook/internal/core/domain/model/kernel"
	"loadbook/internal/core/domain/model/load"

	"github.com/google/uuid"
)

// LoadDTO is the row of the loads table. DatePosted and UpdatedAt are stamped
// by gorm on write.
type LoadDTO struct {
	ID          uuid.UUID   `gorm:"type:uuid;primaryKey"`
	ShipperID   string      `gorm:"not null;index"`
	Facility    FacilityDTO `gorm:"embedded;embeddedPrefix:facility_"`
	ProductType string      `gorm:"not null"`
	TruckType   string      `gorm:"not null;index"`
	NoOfTrucks  int         `gorm:"not null"`
	Weight      float64     `gorm:"not null"`
	Comment     string      `gorm:"size:1000"`
	Status      int         `gorm:"not null;index"`
	DatePosted  time.Time   `gorm:"autoCreateTime;index"`
	UpdatedAt   time.Time   `gorm:"autoUpdateTime"`
}

func (LoadDTO) TableName() string {
	return "loads"
}

// FacilityDTO is embedded into the loads table with the facility_ prefix.
type FacilityDTO struct {
	LoadingPoint   string    `gorm:"not null"`
	UnloadingPoint string    `gorm:"not null"`
	LoadingDate    time.Time `gorm:"not null"`
	UnloadingDate  time.Time `gorm:"not null"`
}

func fromDomain(aggregate *load.Load) LoadDTO {
	facility := aggregate.Facility()
	return LoadDTO{
		ID:        aggregate.ID().Bytes(),
		ShipperID: aggregate.ShipperID(),
		Facility: FacilityDTO{
			LoadingPoint:   facility.LoadingPoint(),
			UnloadingPoint: facility.UnloadingPoint(),
			LoadingDate:    facility.LoadingTime(),
			UnloadingDate:  facility.UnloadingTime(),
		},
		ProductType: aggregate.ProductType(),
		TruckType:   aggregate.TruckType(),
		NoOfTrucks:  aggregate.TruckCount(),
		Weight:      aggregate.Weight(),
		Comment:     aggregate.Comment(),
		Status:      int(aggregate.Status()),
		DatePosted:  aggregate.DatePosted(),
		UpdatedAt:   aggregate.UpdatedAt(),
	}
}

// ToDomain rebuilds a load from its row. It is shared with the query side.
func ToDomain(dto LoadDTO) (*load.Load, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	status := load.Status(dto.Status)
	if err = status.Validate(); err != nil {
		return nil, err
	}

	facility, err := load.NewFacility(
		dto.Facility.LoadingPoint,
		dto.Facility.UnloadingPoint,
		dto.Facility.LoadingDate,
		dto.Facility.UnloadingDate,
	)
	if err != nil {
		return nil, err
	}

	return load.RestoreLoad(id, load.Details{
		ShipperID:   dto.ShipperID,
		ProductType: dto.ProductType,
		TruckType:   dto.TruckType,
		TruckCount:  dto.NoOfTrucks,
		Weight:      dto.Weight,
		Comment:     dto.Comment,
	}, facility, status, dto.DatePosted, dto.UpdatedAt), nil
}
