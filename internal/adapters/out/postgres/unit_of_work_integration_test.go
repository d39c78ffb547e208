package postgres_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	postgres_adapter "dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
)

type UnitOfWorkIntegrationTestSuite struct {
	postgresSuite
	publisher *recordingPublisher
	factory   *postgres_adapter.GormUnitOfWorkFactory
}

func (s *UnitOfWorkIntegrationTestSuite) SetupTest() {
	s.postgresSuite.SetupTest()
	s.publisher = &recordingPublisher{}
	s.factory = postgres_adapter.NewGormUnitOfWorkFactory(s.db, s.publisher, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *UnitOfWorkIntegrationTestSuite) TestCreate_ReturnsSeparateInstances() {
	uow1 := s.factory.Create()
	uow2 := s.factory.Create()

	s.NotSame(uow1, uow2)
	s.NotNil(uow1.OrderRepository())
	s.NotNil(uow1.PartnerRepository())
	s.NotNil(uow1.WalletRepository())
	s.NotNil(uow1.StatusLogRepository())
}

func (s *UnitOfWorkIntegrationTestSuite) TestTransactionLifecycle() {
	ctx := context.Background()
	uow := s.factory.Create()

	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.Begin(ctx), "second Begin is a no-op")
	s.Require().NoError(uow.Commit(ctx))

	s.Require().NoError(uow.Rollback(ctx), "Rollback after Commit is a no-op")
	s.Require().Error(uow.Commit(ctx), "Commit without Begin fails")
}

func (s *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAndPublishesEvents() {
	ctx := context.Background()
	o := s.newOrder(s.location(12.97, 77.59))
	s.Require().NoError(o.ChangeStatus(order.Accepted, time.Now().UTC()))

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.OrderRepository().Add(ctx, o))
	s.Empty(s.publisher.names(), "nothing is published before commit")
	s.Require().NoError(uow.Commit(ctx))

	s.Equal([]string{"order.status_changed"}, s.publisher.names())
	s.Empty(o.DomainEvents())

	loaded, err := s.factory.Create().OrderRepository().Get(ctx, o.ID())
	s.Require().NoError(err)
	s.Equal(order.Accepted, loaded.Status())
	s.True(o.Fees().TotalAmount.Equal(loaded.Fees().TotalAmount))
	s.Require().NotNil(loaded.AcceptedAt())
}

func (s *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsChangesAndEvents() {
	ctx := context.Background()
	o := s.newOrder(s.location(12.97, 77.59))
	s.Require().NoError(o.ChangeStatus(order.Accepted, time.Now().UTC()))

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.OrderRepository().Add(ctx, o))
	s.Require().NoError(uow.Rollback(ctx))

	_, err := s.factory.Create().OrderRepository().Get(ctx, o.ID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
	s.Empty(s.publisher.names())
}

func (s *UnitOfWorkIntegrationTestSuite) TestCommit_PublishFailureDoesNotFailCommit() {
	ctx := context.Background()
	s.publisher.err = errors.New("broker down")

	o := s.newOrder(s.location(12.97, 77.59))
	s.Require().NoError(o.ChangeStatus(order.Accepted, time.Now().UTC()))

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(uow.OrderRepository().Add(ctx, o))
	s.Require().NoError(uow.Commit(ctx))

	_, err := s.factory.Create().OrderRepository().Get(ctx, o.ID())
	s.Require().NoError(err)
}

func (s *UnitOfWorkIntegrationTestSuite) TestSingleActiveOrderPerPartnerIsEnforced() {
	ctx := context.Background()
	shop := s.location(12.97, 77.59)
	p := s.onlinePartner(s.factory, shop)

	first := s.acceptedOrder(s.factory, shop)
	second := s.acceptedOrder(s.factory, shop)
	now := time.Now().UTC()

	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	s.Require().NoError(first.AssignPartner(p.ID(), 0, now))
	s.Require().NoError(uow.OrderRepository().Update(ctx, first))
	s.Require().NoError(uow.Commit(ctx))

	uow = s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()
	s.Require().NoError(second.AssignPartner(p.ID(), 0, now))

	err := uow.OrderRepository().Update(ctx, second)
	s.Require().ErrorIs(err, errs.ErrTransient, "unique violation on %s is retryable", postgres_adapter.ActivePartnerIndex)
}

func (s *UnitOfWorkIntegrationTestSuite) TestGetForUpdate_UnknownOrder() {
	ctx := context.Background()
	uow := s.factory.Create()
	s.Require().NoError(uow.Begin(ctx))
	defer func() { _ = uow.Rollback(ctx) }()

	_, err := uow.OrderRepository().GetForUpdate(ctx, kernel.NewUUID())
	s.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestUnitOfWorkIntegration(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
