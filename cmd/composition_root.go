package cmd

import (
	"log/slog"

	httpin "loadbook/internal/adapters/in/http"
	"loadbook/internal/adapters/out/postgres"
	"loadbook/internal/core/application/usecases/commands"
	"loadbook/internal/core/application/usecases/queries"
	"loadbook/internal/jobs"
	"loadbook/internal/seed"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

func (c *CompositionRoot) loadUoWFactory() commands.LoadUoWFactory {
	return FuncLoadUoWFactory(func() commands.LoadUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) bookingUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateCreateLoadCommandHandler() commands.CreateLoadCommandHandler {
	return commands.NewCreateLoadCommandHandler(c.loadUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateUpdateLoadCommandHandler() commands.UpdateLoadCommandHandler {
	return commands.NewUpdateLoadCommandHandler(c.loadUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateDeleteLoadCommandHandler() commands.DeleteLoadCommandHandler {
	return commands.NewDeleteLoadCommandHandler(c.loadUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateChangeLoadStatusCommandHandler() commands.ChangeLoadStatusCommandHandler {
	return commands.NewChangeLoadStatusCommandHandler(c.loadUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateCreateBookingCommandHandler() commands.CreateBookingCommandHandler {
	return commands.NewCreateBookingCommandHandler(c.bookingUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateUpdateBookingCommandHandler() commands.UpdateBookingCommandHandler {
	return commands.NewUpdateBookingCommandHandler(c.bookingUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateAcceptBookingCommandHandler() commands.AcceptBookingCommandHandler {
	return commands.NewAcceptBookingCommandHandler(c.bookingUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateRejectBookingCommandHandler() commands.RejectBookingCommandHandler {
	return commands.NewRejectBookingCommandHandler(c.bookingUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateDeleteBookingCommandHandler() commands.DeleteBookingCommandHandler {
	return commands.NewDeleteBookingCommandHandler(c.bookingUoWFactory(), c.logger)
}

func (c *CompositionRoot) CreateGetLoadQueryHandler() queries.GetLoadQueryHandler {
	return queries.NewGetLoadQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListLoadsQueryHandler() queries.ListLoadsQueryHandler {
	return queries.NewListLoadsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetBookingQueryHandler() queries.GetBookingQueryHandler {
	return queries.NewGetBookingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListBookingsQueryHandler() queries.ListBookingsQueryHandler {
	return queries.NewListBookingsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateFindInconsistentLoadsQueryHandler() queries.FindInconsistentLoadsQueryHandler {
	return queries.NewFindInconsistentLoadsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		CreateLoad:       c.CreateCreateLoadCommandHandler(),
		UpdateLoad:       c.CreateUpdateLoadCommandHandler(),
		DeleteLoad:       c.CreateDeleteLoadCommandHandler(),
		ChangeLoadStatus: c.CreateChangeLoadStatusCommandHandler(),
		GetLoad:          c.CreateGetLoadQueryHandler(),
		ListLoads:        c.CreateListLoadsQueryHandler(),
		CreateBooking:    c.CreateCreateBookingCommandHandler(),
		UpdateBooking:    c.CreateUpdateBookingCommandHandler(),
		AcceptBooking:    c.CreateAcceptBookingCommandHandler(),
		RejectBooking:    c.CreateRejectBookingCommandHandler(),
		DeleteBooking:    c.CreateDeleteBookingCommandHandler(),
		GetBooking:       c.CreateGetBookingQueryHandler(),
		ListBookings:     c.CreateListBookingsQueryHandler(),
	})
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateFindInconsistentLoadsQueryHandler(), c.config.AuditSchedule, c.logger)
}

func (c *CompositionRoot) CreateSeeder() *seed.Seeder {
	return seed.NewSeeder(seed.Handlers{
		CreateLoad:       c.CreateCreateLoadCommandHandler(),
		ChangeLoadStatus: c.CreateChangeLoadStatusCommandHandler(),
		CreateBooking:    c.CreateCreateBookingCommandHandler(),
		AcceptBooking:    c.CreateAcceptBookingCommandHandler(),
		ListLoads:        c.CreateListLoadsQueryHandler(),
	}, c.logger)
}

type FuncLoadUoWFactory func() commands.LoadUoW

func (f FuncLoadUoWFactory) Create() commands.LoadUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
