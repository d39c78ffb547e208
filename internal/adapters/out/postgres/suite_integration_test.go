package postgres_test

import (
	"context"
	"sync"
	"time"

	postgres_adapter "dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/core/domain/model/wallet"
	"dispatch/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// postgresSuite starts one PostgreSQL container per suite and migrates the schema.
type postgresSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
}

func (s *postgresSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(30*time.Second)),
	)
	s.Require().NoError(err)
	s.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	s.Require().NoError(err)

	db, err := postgres_adapter.Open(dsn, postgres_adapter.DefaultPoolConfig)
	s.Require().NoError(err)
	s.db = db

	s.Require().NoError(postgres_adapter.Migrate(db))
}

func (s *postgresSuite) SetupTest() {
	err := s.db.Exec("TRUNCATE TABLE orders, partners, wallets, transactions, order_status_logs").Error
	s.Require().NoError(err)
}

func (s *postgresSuite) TearDownSuite() {
	if s.container != nil {
		s.Require().NoError(s.container.Terminate(context.Background()))
	}
}

func (s *postgresSuite) location(lat, lng float64) kernel.Location {
	loc, err := kernel.NewLocation(lat, lng)
	s.Require().NoError(err)
	return loc
}

// newOrder builds a placed delivery order worth 100 with a 15% commission.
func (s *postgresSuite) newOrder(pickup kernel.Location) *order.Order {
	calculator, err := services.NewFeeCalculator(services.DefaultFeePolicy())
	s.Require().NoError(err)

	id := kernel.NewUUID()
	fees, err := calculator.Calculate(decimal.NewFromInt(100), decimal.NewFromInt(15), order.TypeDelivery)
	s.Require().NoError(err)
	o, err := order.NewOrder(id, "ORD-"+id.String()[:8], kernel.NewUUID(), kernel.NewUUID(),
		order.TypeDelivery, order.PaymentCOD, fees, &pickup, time.Now().UTC())
	s.Require().NoError(err)
	return o
}

// acceptedOrder persists an order that has moved to accepted and awaits a partner.
func (s *postgresSuite) acceptedOrder(factory *postgres_adapter.GormUnitOfWorkFactory, pickup kernel.Location) *order.Order {
	ctx := context.Background()
	o := s.newOrder(pickup)
	s.Require().NoError(o.ChangeStatus(order.Accepted, time.Now().UTC()))

	uow := factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.OrderRepository().Add(ctx, o))
	s.Require().NoError(uow.Commit(ctx))
	return o
}

// onlinePartner persists an online partner at loc together with its empty wallet.
func (s *postgresSuite) onlinePartner(factory *postgres_adapter.GormUnitOfWorkFactory, loc kernel.Location) *partner.Partner {
	ctx := context.Background()
	p, err := partner.NewPartner(kernel.NewUUID(), "Partner", "+910000000000", partner.VehicleBike)
	s.Require().NoError(err)
	s.Require().NoError(p.GoOnline(loc))

	w, err := wallet.NewWallet(kernel.NewUUID(), p.ID())
	s.Require().NoError(err)

	uow := factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.PartnerRepository().Add(ctx, p))
	s.Require().NoError(uow.WalletRepository().Add(ctx, w))
	s.Require().NoError(uow.Commit(ctx))
	return p
}

// recordingPublisher keeps every published event in memory.
type recordingPublisher struct {
	mu     sync.Mutex
	events []kernel.DomainEvent
	err    error
}

func (p *recordingPublisher) Publish(_ context.Context, events ...kernel.DomainEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

func (p *recordingPublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	names := make([]string, 0, len(p.events))
	for _, e := range p.events {
		names = append(names, e.EventName())
	}
	return names
}
