package queries_test

import (
	"context"
	"testing"
	"time"

	storage "loadbook/internal/adapters/out/postgres"
	"loadbook/internal/core/application/usecases/queries"
	"loadbook/internal/core/domain/model/booking"
	"loadbook/internal/core/domain/model/kernel"
	"loadbook/internal/core/domain/model/load"
	"loadbook/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type QueriesIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	uowFactory *storage.GormUnitOfWorkFactory
}

func (suite *QueriesIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(storage.Migrate(db))
	suite.Require().NoError(storage.RegisterErrorTranslation(db))
	suite.uowFactory = storage.NewGormUnitOfWorkFactory(db)
}

func (suite *QueriesIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueriesIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE loads CASCADE").Error)
}

func TestQueriesIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueriesIntegrationTestSuite))
}

func (suite *QueriesIntegrationTestSuite) TestGetLoad_ReturnsStoredLoad() {
	ctx := context.Background()
	l := suite.saveLoad("shipper-1", "Container", load.Posted, time.Now())

	query, err := queries.NewGetLoadQuery(l.ID())
	suite.Require().NoError(err)

	view, err := queries.NewGetLoadQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Equal(l.ID(), view.ID)
	suite.Equal("shipper-1", view.ShipperID)
	suite.Equal("Mumbai", view.Facility.LoadingPoint)
	suite.Equal(2, view.NoOfTrucks)
	suite.Equal(load.Posted, view.Status)
	suite.False(view.DatePosted.IsZero())
}

func (suite *QueriesIntegrationTestSuite) TestGetLoad_NotFound() {
	query, _ := queries.NewGetLoadQuery(kernel.NewUUID())

	_, err := queries.NewGetLoadQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestGetLoad_NotConstructed() {
	_, err := queries.NewGetLoadQueryHandler(suite.db).Handle(context.Background(), queries.GetLoadQuery{})
	suite.Require().ErrorIs(err, queries.ErrGetLoadQueryIsNotConstructed)
}

func (suite *QueriesIntegrationTestSuite) TestListLoads_FiltersAndOrdersNewestFirst() {
	now := time.Now().UTC()
	older := suite.saveLoad("shipper-1", "Container", load.Posted, now.Add(-2*time.Hour))
	newer := suite.saveLoad("shipper-1", "Container", load.Posted, now.Add(-time.Hour))
	suite.saveLoad("shipper-1", "Flatbed", load.Posted, now)
	suite.saveLoad("shipper-2", "Container", load.Posted, now)
	suite.saveLoad("shipper-1", "Container", load.Cancelled, now)

	posted := load.Posted
	query, err := queries.NewListLoadsQuery(queries.LoadFilter{
		ShipperID: "shipper-1",
		TruckType: "Container",
		Status:    &posted,
	}, queries.FirstPage())
	suite.Require().NoError(err)

	result, err := queries.NewListLoadsQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.EqualValues(2, result.TotalElements)
	suite.Require().Len(result.Content, 2)
	suite.Equal(newer.ID(), result.Content[0].ID)
	suite.Equal(older.ID(), result.Content[1].ID)
	suite.True(result.First)
	suite.True(result.Last)
}

func (suite *QueriesIntegrationTestSuite) TestListLoads_Pagination() {
	now := time.Now().UTC()
	for i := range 5 {
		suite.saveLoad("shipper-1", "Container", load.Posted, now.Add(time.Duration(-i)*time.Minute))
	}

	page, err := queries.NewPage(1, 2)
	suite.Require().NoError(err)
	query, _ := queries.NewListLoadsQuery(queries.LoadFilter{}, page)

	result, err := queries.NewListLoadsQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.EqualValues(5, result.TotalElements)
	suite.Equal(3, result.TotalPages)
	suite.Len(result.Content, 2)
	suite.True(result.HasNext)
	suite.True(result.HasPrevious)
}

func (suite *QueriesIntegrationTestSuite) TestListBookings_Filters() {
	ctx := context.Background()
	first := suite.saveLoad("shipper-1", "Container", load.Posted, time.Now())
	second := suite.saveLoad("shipper-1", "Container", load.Posted, time.Now())

	suite.saveBooking(first.ID(), "transporter-1")
	wanted := suite.saveBooking(first.ID(), "transporter-2")
	suite.saveBooking(second.ID(), "transporter-2")

	loadID := first.ID()
	pending := booking.Pending
	query, err := queries.NewListBookingsQuery(queries.BookingFilter{
		LoadID:        &loadID,
		TransporterID: "transporter-2",
		Status:        &pending,
	}, queries.FirstPage())
	suite.Require().NoError(err)

	result, err := queries.NewListBookingsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(result.Content, 1)
	suite.Equal(wanted.ID(), result.Content[0].ID)
	suite.Equal(first.ID(), result.Content[0].LoadID)
	suite.Equal(booking.Pending, result.Content[0].Status)
}

func (suite *QueriesIntegrationTestSuite) TestListBookings_NewestRequestFirst() {
	l := suite.saveLoad("shipper-1", "Container", load.Posted, time.Now())
	older := suite.saveBooking(l.ID(), "transporter-1")
	newer := suite.saveBooking(l.ID(), "transporter-2")
	suite.Require().NoError(suite.db.Exec(
		"UPDATE bookings SET requested_at = requested_at - interval '1 hour' WHERE id = ?", older.ID().Bytes(),
	).Error)

	query, _ := queries.NewListBookingsQuery(queries.BookingFilter{}, queries.FirstPage())
	result, err := queries.NewListBookingsQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result.Content, 2)
	suite.Equal(newer.ID(), result.Content[0].ID)
	suite.Equal(older.ID(), result.Content[1].ID)
}

func (suite *QueriesIntegrationTestSuite) TestGetBooking() {
	l := suite.saveLoad("shipper-1", "Container", load.Posted, time.Now())
	b := suite.saveBooking(l.ID(), "transporter-1")

	query, _ := queries.NewGetBookingQuery(b.ID())
	view, err := queries.NewGetBookingQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Equal(b.ID(), view.ID)
	suite.Equal("transporter-1", view.TransporterID)
	suite.InDelta(25000.0, view.ProposedRate, 0.001)

	missing, _ := queries.NewGetBookingQuery(kernel.NewUUID())
	_, err = queries.NewGetBookingQueryHandler(suite.db).Handle(context.Background(), missing)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueriesIntegrationTestSuite) TestFindInconsistentLoads() {
	healthy := suite.saveLoad("shipper-1", "Container", load.Posted, time.Now())
	suite.saveBooking(healthy.ID(), "transporter-1")

	orphaned := suite.saveLoad("shipper-1", "Container", load.Booked, time.Now())
	suite.saveBooking(orphaned.ID(), "transporter-1")

	query := queries.NewFindInconsistentLoadsQuery()
	findings, err := queries.NewFindInconsistentLoadsQueryHandler(suite.db).Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(findings, 1)
	suite.Equal(orphaned.ID(), findings[0].LoadID)
	suite.Equal(load.Booked, findings[0].Status)
	suite.EqualValues(1, findings[0].Pending)
	suite.EqualValues(0, findings[0].Accepted)
}

func (suite *QueriesIntegrationTestSuite) TestListLoads_CancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	query, _ := queries.NewListLoadsQuery(queries.LoadFilter{}, queries.FirstPage())
	_, err := queries.NewListLoadsQueryHandler(suite.db).Handle(ctx, query)
	suite.Require().Error(err)
}

func (suite *QueriesIntegrationTestSuite) saveLoad(shipperID string, truckType string, status load.Status, posted time.Time) *load.Load {
	ctx := context.Background()
	pickup := time.Date(2026, time.March, 2, 8, 0, 0, 0, time.UTC)

	facility, err := load.NewFacility("Mumbai", "Delhi", pickup, pickup.Add(36*time.Hour))
	suite.Require().NoError(err)
	l, err := load.NewLoad(kernel.NewUUID(), load.Details{
		ShipperID:   shipperID,
		ProductType: "Electronics",
		TruckType:   truckType,
		TruckCount:  2,
		Weight:      1500,
	}, facility)
	suite.Require().NoError(err)
	if status != load.Posted {
		suite.Require().NoError(l.TransitionTo(status))
	}

	suite.Require().NoError(suite.uowFactory.Create().LoadRepository().Add(ctx, l))
	suite.Require().NoError(suite.db.Exec(
		"UPDATE loads SET date_posted = ? WHERE id = ?", posted, l.ID().Bytes(),
	).Error)
	return l
}

func (suite *QueriesIntegrationTestSuite) saveBooking(loadID kernel.UUID, transporterID string) *booking.Booking {
	b, err := booking.NewBooking(kernel.NewUUID(), loadID, transporterID, 25000, "")
	suite.Require().NoError(err)
	suite.Require().NoError(suite.uowFactory.Create().BookingRepository().Add(context.Background(), b))
	return b
}
