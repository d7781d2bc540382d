// Package seed fills an empty database with a small demo data set. It goes
// through the regular command handlers, so every sample load and booking
// obeys the same lifecycle rules as API traffic.
package seed

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"loadbook/internal/core/application/usecases/commands"
	"loadbook/internal/core/application/usecases/queries"
	"loadbook/internal/core/domain/model/booking"
	"loadbook/internal/core/domain/model/kernel"
	"loadbook/internal/core/domain/model/load"
)

type (
	createLoadHandler interface {
		Handle(ctx context.Context, cmd commands.CreateLoadCommand) (*load.Load, error)
	}
	changeLoadStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeLoadStatusCommand) (*load.Load, error)
	}
	createBookingHandler interface {
		Handle(ctx context.Context, cmd commands.CreateBookingCommand) (*booking.Booking, error)
	}
	acceptBookingHandler interface {
		Handle(ctx context.Context, cmd commands.AcceptBookingCommand) (*booking.Booking, error)
	}
	listLoadsHandler interface {
		Handle(ctx context.Context, query queries.ListLoadsQuery) (queries.Paged[queries.LoadView], error)
	}
)

// Handlers are the use cases the seeder drives.
type Handlers struct {
	CreateLoad       createLoadHandler
	ChangeLoadStatus changeLoadStatusHandler
	CreateBooking    createBookingHandler
	AcceptBooking    acceptBookingHandler
	ListLoads        listLoadsHandler
}

type sampleBooking struct {
	transporterID string
	rate          float64
	comment       string
	accept        bool
}

type sampleLoad struct {
	details   load.Details
	from, to  string
	loadIn    time.Duration
	unloadIn  time.Duration
	cancelled bool
	bookings  []sampleBooking
}

const day = 24 * time.Hour

var samples = []sampleLoad{
	{
		details: load.Details{ShipperID: "SHIPPER_001", ProductType: "Electronics", TruckType: "Container",
			TruckCount: 2, Weight: 15.5, Comment: "Fragile items - handle with care"},
		from: "Mumbai Port", to: "Delhi Warehouse", loadIn: 2 * day, unloadIn: 5 * day,
		bookings: []sampleBooking{
			{transporterID: "TRANSPORTER_001", rate: 25000, comment: "Can deliver on time"},
			{transporterID: "TRANSPORTER_002", rate: 23500, comment: "Experienced with electronics"},
		},
	},
	{
		details: load.Details{ShipperID: "SHIPPER_002", ProductType: "Textiles", TruckType: "Open Truck",
			TruckCount: 1, Weight: 8, Comment: "Standard textile shipment"},
		from: "Chennai Port", to: "Bangalore Warehouse", loadIn: day, unloadIn: 3 * day,
		bookings: []sampleBooking{
			{transporterID: "TRANSPORTER_003", rate: 18000, comment: "Regular textile transporter", accept: true},
		},
	},
	{
		details: load.Details{ShipperID: "SHIPPER_003", ProductType: "Machinery", TruckType: "Flatbed",
			TruckCount: 3, Weight: 25, Comment: "Heavy machinery - special handling required"},
		from: "Kolkata Port", to: "Hyderabad Industrial Area", loadIn: 7 * day, unloadIn: 10 * day,
	},
	{
		details: load.Details{ShipperID: "SHIPPER_001", ProductType: "Food Products", TruckType: "Refrigerated",
			TruckCount: 1, Weight: 5.5, Comment: "Temperature controlled shipment"},
		from: "Pune Distribution Center", to: "Ahmedabad Market", loadIn: 12 * time.Hour, unloadIn: day,
	},
	{
		details: load.Details{ShipperID: "SHIPPER_004", ProductType: "Chemicals", TruckType: "Tanker",
			TruckCount: 1, Weight: 12, Comment: "Chemical products - hazardous"},
		from: "Goa Port", to: "Mangalore Warehouse", loadIn: 3 * day, unloadIn: 6 * day,
		cancelled: true,
	},
}

// Seeder creates the sample data set.
type Seeder struct {
	h      Handlers
	now    func() time.Time
	logger *slog.Logger
}

func NewSeeder(handlers Handlers, logger *slog.Logger) *Seeder {
	return &Seeder{
		h:      handlers,
		now:    time.Now,
		logger: logger.With("component", "seed"),
	}
}

// Run inserts the samples unless at least one load already exists. It
// reports whether anything was written.
func (s *Seeder) Run(ctx context.Context) (bool, error) {
	query, err := queries.NewListLoadsQuery(queries.LoadFilter{}, queries.FirstPage())
	if err != nil {
		return false, err
	}
	existing, err := s.h.ListLoads.Handle(ctx, query)
	if err != nil {
		return false, fmt.Errorf("count loads: %w", err)
	}
	if existing.TotalElements > 0 {
		s.logger.InfoContext(ctx, "data already exists, skipping seed", "loads", existing.TotalElements)
		return false, nil
	}

	now := s.now().UTC().Truncate(time.Second)
	var loads, bookings int
	for _, sample := range samples {
		n, err := s.seedLoad(ctx, sample, now)
		if err != nil {
			return false, fmt.Errorf("seed load of %s: %w", sample.details.ShipperID, err)
		}
		loads++
		bookings += n
	}

	s.logger.InfoContext(ctx, "sample data created", "loads", loads, "bookings", bookings)
	return true, nil
}

func (s *Seeder) seedLoad(ctx context.Context, sample sampleLoad, now time.Time) (int, error) {
	createCmd, err := commands.NewCreateLoadCommand(kernel.NewUUID(), sample.details, commands.FacilityInput{
		LoadingPoint:   sample.from,
		UnloadingPoint: sample.to,
		LoadingTime:    now.Add(sample.loadIn),
		UnloadingTime:  now.Add(sample.unloadIn),
	})
	if err != nil {
		return 0, err
	}
	created, err := s.h.CreateLoad.Handle(ctx, createCmd)
	if err != nil {
		return 0, err
	}

	for _, b := range sample.bookings {
		bookCmd, err := commands.NewCreateBookingCommand(kernel.NewUUID(), created.ID(), b.transporterID, b.rate, b.comment)
		if err != nil {
			return 0, err
		}
		proposal, err := s.h.CreateBooking.Handle(ctx, bookCmd)
		if err != nil {
			return 0, err
		}
		if !b.accept {
			continue
		}
		acceptCmd, err := commands.NewAcceptBookingCommand(proposal.ID())
		if err != nil {
			return 0, err
		}
		if _, err = s.h.AcceptBooking.Handle(ctx, acceptCmd); err != nil {
			return 0, err
		}
	}

	if sample.cancelled {
		cancelCmd, err := commands.NewChangeLoadStatusCommand(created.ID(), load.Cancelled)
		if err != nil {
			return 0, err
		}
		if _, err = s.h.ChangeLoadStatus.Handle(ctx, cancelCmd); err != nil {
			return 0, err
		}
	}
	return len(sample.bookings), nil
}
