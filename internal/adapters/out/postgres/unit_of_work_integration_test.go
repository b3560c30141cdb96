package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "pizzeria/internal/adapters/out/postgres"
	"pizzeria/internal/adapters/out/postgres/placedorderrepo"
	"pizzeria/internal/core/domain/model/kernel"
	"pizzeria/internal/core/domain/model/order"
	"pizzeria/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite runs the GORM unit of work against a real
// PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&placedorderrepo.PlacedOrderDTO{}, &placedorderrepo.PlacedOrderLineDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE placed_orders, placed_order_lines").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.PlacedOrderRepository())
	suite.NotNil(uow2.PlacedOrderRepository())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Begin(ctx), "Multiple begin calls should be safe")
	suite.Require().NoError(uow.Commit(ctx))

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.Rollback(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	suite.Require().ErrorIs(uow.Commit(ctx), gorm.ErrInvalidTransaction)
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackAfterCommitIsHarmless() {
	ctx := context.Background()
	uow := suite.factory.Create()
	placed := createPlacedOrder(suite, 1)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.PlacedOrderRepository().Add(ctx, placed))
	suite.Require().NoError(uow.Commit(ctx))
	suite.Require().ErrorIs(uow.Rollback(ctx), gorm.ErrInvalidTransaction)

	_, err := suite.factory.Create().PlacedOrderRepository().Get(ctx, placed.ID())
	suite.Require().NoError(err, "Rollback after commit must not undo the commit")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CommitPersists() {
	ctx := context.Background()
	uow := suite.factory.Create()
	placed := createPlacedOrder(suite, 7)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.PlacedOrderRepository().Add(ctx, placed))

	inTx, err := uow.PlacedOrderRepository().Get(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.Equal(7, inTx.Number())

	suite.Require().NoError(uow.Commit(ctx))

	stored, err := suite.factory.Create().PlacedOrderRepository().Get(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.True(placed.ID().IsEqual(stored.ID()))
	suite.Len(stored.Lines(), 2)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscards() {
	ctx := context.Background()
	uow := suite.factory.Create()
	first, second := createPlacedOrder(suite, 1), createPlacedOrder(suite, 2)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.PlacedOrderRepository().Add(ctx, first))
	suite.Require().NoError(uow.PlacedOrderRepository().Add(ctx, second))
	suite.Require().NoError(uow.Rollback(ctx))

	repo := suite.factory.Create().PlacedOrderRepository()
	_, err := repo.Get(ctx, first.ID())
	suite.Require().Error(err, "First order should not exist after rollback")
	_, err = repo.Get(ctx, second.ID())
	suite.Require().Error(err, "Second order should not exist after rollback")

	all, err := repo.List(ctx)
	suite.Require().NoError(err)
	suite.Empty(all)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_Isolation() {
	ctx := context.Background()
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()
	first, second := createPlacedOrder(suite, 1), createPlacedOrder(suite, 2)

	suite.Require().NoError(uow1.Begin(ctx))
	suite.Require().NoError(uow2.Begin(ctx))

	suite.Require().NoError(uow1.PlacedOrderRepository().Add(ctx, first))
	suite.Require().NoError(uow2.PlacedOrderRepository().Add(ctx, second))

	_, err := uow1.PlacedOrderRepository().Get(ctx, second.ID())
	suite.Require().Error(err, "UOW1 should not see uncommitted work of UOW2")
	_, err = uow2.PlacedOrderRepository().Get(ctx, first.ID())
	suite.Require().Error(err, "UOW2 should not see uncommitted work of UOW1")

	suite.Require().NoError(uow1.Commit(ctx))
	suite.Require().NoError(uow2.Rollback(ctx))

	repo := suite.factory.Create().PlacedOrderRepository()
	_, err = repo.Get(ctx, first.ID())
	suite.Require().NoError(err)
	_, err = repo.Get(ctx, second.ID())
	suite.Require().Error(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DuplicateRollsBackEverything() {
	ctx := context.Background()
	existing := createPlacedOrder(suite, 1)
	suite.Require().NoError(suite.factory.Create().PlacedOrderRepository().Add(ctx, existing))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	fresh := createPlacedOrder(suite, 2)
	suite.Require().NoError(uow.PlacedOrderRepository().Add(ctx, fresh))

	duplicate, err := order.RestorePlacedOrder(existing.ID(), 3, existing.Lines(), existing.PlacedAt())
	suite.Require().NoError(err)
	suite.Require().Error(uow.PlacedOrderRepository().Add(ctx, duplicate), "Adding a duplicate ID should fail")

	suite.Require().NoError(uow.Rollback(ctx))

	repo := suite.factory.Create().PlacedOrderRepository()
	_, err = repo.Get(ctx, existing.ID())
	suite.Require().NoError(err, "Existing order should still exist")
	_, err = repo.Get(ctx, fresh.ID())
	suite.Require().Error(err, "Fresh order should not exist after rollback")
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AggregateTracking() {
	ctx := context.Background()
	uow := suite.factory.Create()
	first, second := createPlacedOrder(suite, 1), createPlacedOrder(suite, 2)

	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.PlacedOrderRepository().Add(ctx, first))
	suite.Require().NoError(uow.PlacedOrderRepository().Add(ctx, second))
	suite.Require().NoError(uow.Commit(ctx))

	gormUoW, ok := uow.(*postgres_adapter.GormUnitOfWork)
	suite.Require().True(ok)
	suite.Equal([]kernel.UUID{first.ID(), second.ID()}, gormUoW.TrackedAggregates())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()
	placed := createPlacedOrder(suite, 4)

	suite.Require().NoError(uow.PlacedOrderRepository().Add(ctx, placed))

	stored, err := suite.factory.Create().PlacedOrderRepository().Get(ctx, placed.ID())
	suite.Require().NoError(err)
	suite.Equal(4, stored.Number())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OutboxSkipsLockedOrders() {
	ctx := context.Background()
	first, second := createPlacedOrder(suite, 1), createPlacedOrder(suite, 2)
	for _, p := range []*order.PlacedOrder{first, second} {
		suite.Require().NoError(suite.factory.Create().PlacedOrderRepository().Add(ctx, p))
	}

	relayA := suite.factory.Create()
	suite.Require().NoError(relayA.Begin(ctx))
	defer func() { _ = relayA.Rollback(ctx) }()
	claimedA, err := relayA.PlacedOrderOutbox().Unpublished(ctx, 1)
	suite.Require().NoError(err)
	suite.Require().Len(claimedA, 1)
	suite.True(first.ID().IsEqual(claimedA[0].ID()))

	relayB := suite.factory.Create()
	suite.Require().NoError(relayB.Begin(ctx))
	defer func() { _ = relayB.Rollback(ctx) }()
	claimedB, err := relayB.PlacedOrderOutbox().Unpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(claimedB, 1)
	suite.True(second.ID().IsEqual(claimedB[0].ID()))
}

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OutboxMarkRolledBack() {
	ctx := context.Background()
	placed := createPlacedOrder(suite, 1)
	suite.Require().NoError(suite.factory.Create().PlacedOrderRepository().Add(ctx, placed))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.PlacedOrderOutbox().MarkPublished(ctx, placed.ID(), time.Now()))
	suite.Require().NoError(uow.Rollback(ctx))

	pending, err := suite.factory.Create().PlacedOrderOutbox().Unpublished(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(pending, 1)
	suite.True(placed.ID().IsEqual(pending[0].ID()))
}

func createPlacedOrder(suite *UnitOfWorkIntegrationTestSuite, number int) *order.PlacedOrder {
	o := order.NewOrder()
	o.SetNumber(number)
	for _, spec := range []struct{ name, price string }{{"Deluxe", "10.00"}, {"Hawaiian", "5.50"}} {
		item, err := order.NewItem(spec.name, decimal.RequireFromString(spec.price))
		suite.Require().NoError(err)
		o.Add(item)
	}

	placed, err := order.Place(kernel.NewUUID(), o, time.Now())
	suite.Require().NoError(err)
	return placed
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
