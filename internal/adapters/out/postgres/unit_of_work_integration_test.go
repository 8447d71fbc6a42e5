package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "courier/internal/adapters/out/postgres"
	"courier/internal/adapters/out/postgres/agentrepo"
	"courier/internal/adapters/out/postgres/configrepo"
	"courier/internal/adapters/out/postgres/paymentrepo"
	"courier/internal/adapters/out/postgres/pricingrepo"
	"courier/internal/adapters/out/postgres/shipmentrepo"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/notification"
	"courier/internal/core/domain/model/payment"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/ports"
	"courier/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes the PostgreSQL container and database connection
// and runs the schema migrations once for all tests.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	// Connect to database
	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	// Run migrations
	err = db.AutoMigrate(
		&shipmentrepo.ShipmentDTO{},
		&shipmentrepo.TrackingEventDTO{},
		&paymentrepo.PaymentDTO{},
		&agentrepo.AgentDTO{},
		&pricingrepo.RuleDTO{},
		&configrepo.ConfigDTO{},
	)
	suite.Require().NoError(err)

	// Create factory
	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE shipments, tracking_events, payments, agents, pricing_rules, notification_configs",
	).Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up the PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies the factory hands out isolated
// instances that each expose the full repository set.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.ShipmentRepository())
	suite.NotNil(uow1.PaymentRepository())
	suite.NotNil(uow1.AgentRepository())
	suite.NotNil(uow2.PricingRepository())
	suite.NotNil(uow2.NotificationConfigRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit and rollback
// behavior including repeated begin calls on the same instance.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies commit and rollback fail
// without an active transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

// TestUnitOfWork_ShipmentAndPaymentCommitAtomically verifies a shipment
// and its payment written in one transaction both become visible after
// commit.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ShipmentAndPaymentCommitAtomically() {
	ctx := context.Background()

	testShipment := suite.createTestShipment(time.Now())
	testPayment, err := payment.NewPayment(
		kernel.NewUUID(), testShipment.ID(), testShipment.OwnerID(),
		decimal.RequireFromString("82.00"), time.Now())
	suite.Require().NoError(err)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, testShipment))
	suite.Require().NoError(uow.PaymentRepository().Add(ctx, testPayment))

	suite.Require().NoError(uow.Commit(ctx))

	// Read through a fresh unit of work outside any transaction.
	reader := suite.factory.Create()
	storedShipment, err := reader.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(testShipment.BillNo(), storedShipment.BillNo())

	storedPayment, err := reader.PaymentRepository().GetByShipmentID(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.True(storedPayment.Amount().Equal(decimal.RequireFromString("82.00")))
	suite.Equal(payment.StatusPending, storedPayment.Status())
}

// TestUnitOfWork_RollbackDiscardsChanges verifies nothing written in a
// rolled back transaction is visible afterwards.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsChanges() {
	ctx := context.Background()

	testShipment := suite.createTestShipment(time.Now())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, testShipment))
	suite.Require().NoError(uow.Rollback(ctx))

	reader := suite.factory.Create()
	_, err := reader.ShipmentRepository().Get(ctx, testShipment.ID())

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

// TestUnitOfWork_WithoutTransaction verifies repositories fall back to
// the base connection when no transaction was started.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()

	testShipment := suite.createTestShipment(time.Now())

	uow := suite.factory.Create()
	suite.Require().NoError(uow.ShipmentRepository().Add(ctx, testShipment))

	reader := suite.factory.Create()
	stored, err := reader.ShipmentRepository().Get(ctx, testShipment.ID())
	suite.Require().NoError(err)
	suite.Equal(testShipment.ID(), stored.ID())
}

// TestUnitOfWork_GetForUpdateSerializesTransitions verifies the row lock
// taken by GetForUpdate makes a concurrent transition wait until the
// first transaction finishes.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_GetForUpdateSerializesTransitions() {
	ctx := context.Background()

	testShipment := suite.createTestShipment(time.Now())
	writer := suite.factory.Create()
	suite.Require().NoError(writer.ShipmentRepository().Add(ctx, testShipment))

	first := suite.factory.Create()
	suite.Require().NoError(first.Begin(ctx))
	_, err := first.ShipmentRepository().GetForUpdate(ctx, testShipment.ID())
	suite.Require().NoError(err)

	acquired := make(chan struct{})
	go func() {
		second := suite.factory.Create()
		if err := second.Begin(ctx); err != nil {
			close(acquired)
			return
		}
		defer func() { _ = second.Rollback(ctx) }()

		_, _ = second.ShipmentRepository().GetForUpdate(ctx, testShipment.ID())
		close(acquired)
	}()

	// The second transaction must queue behind the row lock.
	select {
	case <-acquired:
		suite.Fail("concurrent GetForUpdate acquired the lock while it was held")
	case <-time.After(300 * time.Millisecond):
	}

	suite.Require().NoError(first.Commit(ctx))

	select {
	case <-acquired:
	case <-time.After(5 * time.Second):
		suite.Fail("concurrent GetForUpdate never acquired the released lock")
	}
}

// TestUnitOfWork_NotificationConfigRoundTrip verifies the single config
// row upserts and reads back within a unit of work.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_NotificationConfigRoundTrip() {
	ctx := context.Background()

	uow := suite.factory.Create()

	stored, err := uow.NotificationConfigRepository().Get(ctx)
	suite.Require().NoError(err)
	suite.Nil(stored, "No config row should exist yet")

	useTLS := true
	cfg := &notification.Config{
		SMTPHost:   "smtp.example.com",
		SMTPPort:   587,
		SMTPUseTLS: &useTLS,
	}
	suite.Require().NoError(uow.NotificationConfigRepository().Save(ctx, cfg))

	// Saving again must update the same row, not add a second one.
	cfg.SMTPHost = "smtp2.example.com"
	suite.Require().NoError(uow.NotificationConfigRepository().Save(ctx, cfg))

	stored, err = uow.NotificationConfigRepository().Get(ctx)
	suite.Require().NoError(err)
	suite.Require().NotNil(stored)
	suite.Equal("smtp2.example.com", stored.SMTPHost)
	suite.Equal(587, stored.SMTPPort)
	suite.Require().NotNil(stored.SMTPUseTLS)
	suite.True(*stored.SMTPUseTLS)

	var count int64
	suite.Require().NoError(suite.db.Model(&configrepo.ConfigDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
}

// createTestShipment creates a basic shipment with default values.
func (suite *UnitOfWorkIntegrationTestSuite) createTestShipment(now time.Time) *shipment.Shipment {
	sender, err := shipment.NewParty("Asha Rao", "asha@example.com", "+911112223334", "Park Street 12")
	suite.Require().NoError(err)
	receiver, err := shipment.NewParty("Vikram Shah", "vikram@example.com", "+919998887776", "MG Road 4")
	suite.Require().NoError(err)
	weight, err := kernel.WeightFromFloat(2.5)
	suite.Require().NoError(err)

	testShipment, err := shipment.NewShipment(
		kernel.NewUUID(), kernel.NewUUID(),
		sender, receiver, weight,
		shipment.Domestic, "India", 1, now)
	suite.Require().NoError(err)
	return testShipment
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
