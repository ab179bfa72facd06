package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "github.com/Emagjby/LogiPack/internal/adapters/out/postgres"
	"github.com/Emagjby/LogiPack/internal/adapters/out/postgres/eventstore"
	"github.com/Emagjby/LogiPack/internal/adapters/out/postgres/shipmentrepo"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/kernel"
	"github.com/Emagjby/LogiPack/internal/core/domain/model/shipment"
	"github.com/Emagjby/LogiPack/internal/core/ports"
	"github.com/Emagjby/LogiPack/internal/pkg/strata"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies the GORM unit of work against a
// real PostgreSQL database, in particular that the event package, history row
// and snapshot of one operation commit or roll back together.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(
		&eventstore.StreamDTO{},
		&eventstore.PackageDTO{},
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.HistoryDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE streams, packages, shipments, shipment_status_history").Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// writeRegistration performs the full set of writes of a shipment
// registration inside the given unit of work without committing.
func (suite *UnitOfWorkIntegrationTestSuite) writeRegistration(ctx context.Context, uow ports.UnitOfWork) *shipment.Shipment {
	officeID := kernel.NewUUID()
	aggregate, err := shipment.NewShipment(kernel.NewUUID(), kernel.NewUUID(), &officeID)
	suite.Require().NoError(err)

	suite.Require().NoError(uow.ShipmentRepository().AddSnapshot(ctx, aggregate))

	suite.Require().NoError(uow.ShipmentRepository().AddHistory(ctx, ports.HistoryRecord{
		ID:         kernel.NewUUID(),
		ShipmentID: aggregate.ID(),
		ToStatus:   aggregate.Status(),
		ActorID:    kernel.NewUUID(),
		OfficeID:   aggregate.CurrentOfficeID(),
		OccurredAt: time.Now().UTC(),
	}))

	store := uow.EventStore()
	suite.Require().NoError(store.EnsureStream(ctx, aggregate.ID(), shipment.StreamKind))
	_, err = store.Append(ctx, aggregate.ID(), shipment.StreamKind, strata.Map())
	suite.Require().NoError(err)
	_, err = store.Append(ctx, aggregate.ID(), shipment.EventTypeShipmentCreated, strata.Map(
		strata.Entry("event_type", strata.String(shipment.EventTypeShipmentCreated)),
		strata.Entry("shipment_id", strata.String(aggregate.ID().String())),
	))
	suite.Require().NoError(err)

	return aggregate
}

func (suite *UnitOfWorkIntegrationTestSuite) countRows() (streams, packages, shipments, history int64) {
	suite.Require().NoError(suite.db.Model(&eventstore.StreamDTO{}).Count(&streams).Error)
	suite.Require().NoError(suite.db.Model(&eventstore.PackageDTO{}).Count(&packages).Error)
	suite.Require().NoError(suite.db.Model(&shipmentrepo.ShipmentDTO{}).Count(&shipments).Error)
	suite.Require().NoError(suite.db.Model(&shipmentrepo.HistoryDTO{}).Count(&history).Error)
	return
}

// TestUnitOfWorkFactory_Create verifies the factory creates independent
// instances that all expose their repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.EventStore())
	suite.NotNil(uow1.ShipmentRepository())
	suite.NotNil(uow1.ClientRepository())
	suite.NotNil(uow2.OfficeRepository())
	suite.NotNil(uow2.EmployeeRepository())
}

// TestTransactionLifecycle verifies begin, commit and rollback behavior,
// including the calls that are documented as safe no-ops.
func (suite *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Repeated begin should be a no-op")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Rollback after commit should be a no-op")

	err = uow.Commit(ctx)
	suite.Require().Error(err, "Commit without an active transaction should fail")
}

// TestCommit_MakesAllWritesVisible verifies that the snapshot, history row,
// stream and packages of one operation all land together on commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_MakesAllWritesVisible() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	aggregate := suite.writeRegistration(ctx, uow)

	// Nothing is visible outside the transaction before commit.
	streams, packages, shipments, history := suite.countRows()
	suite.Equal(int64(0), streams)
	suite.Equal(int64(0), packages)
	suite.Equal(int64(0), shipments)
	suite.Equal(int64(0), history)

	suite.Require().NoError(uow.Commit(ctx))

	streams, packages, shipments, history = suite.countRows()
	suite.Equal(int64(1), streams)
	suite.Equal(int64(2), packages)
	suite.Equal(int64(1), shipments)
	suite.Equal(int64(1), history)

	loaded, err := suite.factory.Create().ShipmentRepository().GetSnapshot(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(shipment.New, loaded.Status())
}

// TestRollback_DiscardsAllWrites verifies that rolling back after the full
// set of writes leaves no trace in any table.
func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllWrites() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.writeRegistration(ctx, uow)
	suite.Require().NoError(uow.Rollback(ctx))

	streams, packages, shipments, history := suite.countRows()
	suite.Equal(int64(0), streams)
	suite.Equal(int64(0), packages)
	suite.Equal(int64(0), shipments)
	suite.Equal(int64(0), history)
}

// TestRepositoriesShareTransaction verifies a write made through one
// repository is readable through another repository of the same instance
// before commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoriesShareTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	aggregate := suite.writeRegistration(ctx, uow)

	loaded, err := uow.ShipmentRepository().GetSnapshot(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(aggregate.ID(), loaded.ID())

	packages, err := uow.EventStore().ReadOrdered(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Len(packages, 2)
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
