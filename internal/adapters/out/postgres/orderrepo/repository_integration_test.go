package orderrepo_test

import (
	"context"
	"testing"
	"time"

	"repairshop/internal/adapters/out/postgres/orderrepo"
	"repairshop/internal/core/domain/model/kernel"
	"repairshop/internal/core/domain/model/order"
	"repairshop/internal/core/domain/model/sector"
	"repairshop/internal/core/domain/model/status"
	"repairshop/internal/core/ports"
	"repairshop/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// OrderRepositoryIntegrationTestSuite provides integration tests for OrderRepository
// using PostgreSQL containers to verify database persistence behavior.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
	tracker    *MockAggregateTracker
	catalog    *sector.Catalog
	vocab      *status.Vocabulary
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}))

	suite.catalog = sector.DefaultCatalog()
	suite.vocab = status.NewVocabulary()
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, suite.tracker)
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_PersistsAggregate() {
	ctx := context.Background()
	testOrder := suite.createTestOrder()
	suite.tracker.On("TrackAggregate", testOrder.ID(), testOrder).Return()

	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal(testOrder.ID(), retrieved.ID())
	suite.Equal(testOrder.Code(), retrieved.Code())
	suite.Equal(testOrder.CustomerID(), retrieved.CustomerID())
	suite.Equal(testOrder.CustomerName(), retrieved.CustomerName())
	suite.Equal(testOrder.SneakerModel(), retrieved.SneakerModel())
	suite.Equal(testOrder.Services(), retrieved.Services())
	suite.Equal(testOrder.Priority(), retrieved.Priority())
	suite.Equal(testOrder.Status(), retrieved.Status())
	suite.Equal(testOrder.SectorFlow(), retrieved.SectorFlow())
	suite.Equal(testOrder.CreatedBy(), retrieved.CreatedBy())
	suite.Equal(1, retrieved.Version())

	// The seeded initial status entry must survive the JSONB round trip
	history := retrieved.StatusHistory()
	suite.Require().Len(history, 1)
	suite.Equal(testOrder.Status(), history[0].Status)

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAdd_DuplicateCodeFails() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()

	first := suite.createTestOrder()
	err := suite.repository.Add(ctx, first)
	suite.Require().NoError(err)

	// Same display code, different ID
	id := kernel.NewUUID()
	duplicate, err := order.NewOrder(
		id,
		first.Code(),
		"cust-2",
		"Outro Cliente",
		"Adidas Superstar",
		[]order.Service{{ID: "svc-2", Name: "Pintura completa", Price: 150}},
		order.PriorityHigh,
		"",
		"",
		"",
		[]string{sector.EntryID, "pintura", sector.ExitID},
		order.Actor{ID: "u-2", Email: "u2@workshop.test"},
		time.Now().UTC(),
	)
	suite.Require().NoError(err)

	err = suite.repository.Add(ctx, duplicate)
	suite.Require().Error(err, "Display codes are unique")
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsMovementAndBumpsVersion() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()

	testOrder := suite.createTestOrder()
	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	target, ok := suite.catalog.Get("lavagem")
	suite.Require().True(ok)

	actor := order.Actor{ID: "u-9", Email: "maria@workshop.test", Name: "Maria", Role: "lavagem"}
	moved, err := testOrder.MoveToSector(target, suite.vocab, actor, "Maria", "couro delicado", time.Now().UTC())
	suite.Require().NoError(err)
	suite.True(moved)

	err = suite.repository.Update(ctx, testOrder)
	suite.Require().NoError(err)

	retrieved, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	suite.Equal("lavagem", retrieved.CurrentSector())
	suite.Equal(status.LavagemEmAndamento, retrieved.Status())
	suite.Equal("Maria", retrieved.CurrentStaffName())
	suite.Equal(2, retrieved.Version())

	// Both the open interval and its note must survive the round trip
	interval, open := retrieved.OpenInterval()
	suite.Require().True(open)
	suite.Equal("lavagem", interval.SectorID)
	suite.Equal("couro delicado", interval.Notes)

	suite.Len(retrieved.StatusHistory(), 2)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_StaleVersionRejected() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()

	testOrder := suite.createTestOrder()
	err := suite.repository.Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Two copies loaded at the same version
	copy1, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	copy2, err := suite.repository.Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	actor := order.Actor{ID: "u-9", Email: "admin@workshop.test", Role: "admin"}
	target, ok := suite.catalog.Get("lavagem")
	suite.Require().True(ok)

	_, err = copy1.MoveToSector(target, suite.vocab, actor, "", "", time.Now().UTC())
	suite.Require().NoError(err)
	suite.Require().NoError(suite.repository.Update(ctx, copy1))

	_, err = copy2.MoveToSector(target, suite.vocab, actor, "", "", time.Now().UTC())
	suite.Require().NoError(err)
	err = suite.repository.Update(ctx, copy2)
	suite.Require().ErrorIs(err, ports.ErrVersionConflict)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_NotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetAll_OrdersByUrgency() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()

	base := time.Date(2026, 1, 15, 10, 0, 0, 0, time.UTC)
	low := suite.createTestOrderWithPriority(order.PriorityLow, base)
	high := suite.createTestOrderWithPriority(order.PriorityHigh, base.Add(time.Minute))
	defaultOld := suite.createTestOrderWithPriority(order.PriorityDefault, base.Add(2*time.Minute))
	defaultNew := suite.createTestOrderWithPriority(order.PriorityDefault, base.Add(3*time.Minute))

	for _, o := range []*order.Order{low, high, defaultOld, defaultNew} {
		suite.Require().NoError(suite.repository.Add(ctx, o))
	}

	all, err := suite.repository.GetAll(ctx)
	suite.Require().NoError(err)
	suite.Require().Len(all, 4)

	// Priority ascending, newest first within the same priority
	suite.Equal(high.ID(), all[0].ID())
	suite.Equal(defaultNew.ID(), all[1].ID())
	suite.Equal(defaultOld.ID(), all[2].ID())
	suite.Equal(low.ID(), all[3].ID())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesOrder() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Return()

	testOrder := suite.createTestOrder()
	suite.Require().NoError(suite.repository.Add(ctx, testOrder))

	err := suite.repository.Delete(ctx, testOrder.ID())
	suite.Require().NoError(err)

	_, err = suite.repository.Get(ctx, testOrder.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_NotFound() {
	ctx := context.Background()

	err := suite.repository.Delete(ctx, kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// createTestOrder creates a valid default-priority order for testing purposes.
func (suite *OrderRepositoryIntegrationTestSuite) createTestOrder() *order.Order {
	return suite.createTestOrderWithPriority(order.PriorityDefault, time.Now().UTC())
}

func (suite *OrderRepositoryIntegrationTestSuite) createTestOrderWithPriority(priority int, createdAt time.Time) *order.Order {
	id := kernel.NewUUID()
	actor := order.Actor{ID: "u-1", Email: "atendente@workshop.test", Name: "Atendente", Role: "atendimento"}
	services := []order.Service{{ID: "svc-1", Name: "Limpeza profunda", Price: 80}}
	flow := []string{sector.EntryID, "lavagem", sector.ExitID}

	testOrder, err := order.NewOrder(
		id,
		"TST-"+id.String()[:8],
		"cust-1",
		"Cliente Teste",
		"Nike Air Max 90",
		services,
		priority,
		"2026-01-20",
		"",
		"",
		flow,
		actor,
		createdAt,
	)
	suite.Require().NoError(err)
	return testOrder
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
