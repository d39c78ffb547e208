package commands_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/core/domain/model/wallet"
	"dispatch/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

type MockPartnerRepository struct{ mock.Mock }

func (m *MockPartnerRepository) Add(ctx context.Context, p *partner.Partner) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPartnerRepository) Update(ctx context.Context, p *partner.Partner) error {
	return m.Called(ctx, p).Error(0)
}

func (m *MockPartnerRepository) Get(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) ListAvailable(ctx context.Context) ([]*partner.Partner, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*partner.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Partner), args.Error(1)
}

func (m *MockPartnerRepository) IsOccupied(ctx context.Context, id kernel.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

func (m *MockPartnerRepository) IncrementDeliveries(ctx context.Context, id kernel.UUID) error {
	return m.Called(ctx, id).Error(0)
}

type MockWalletRepository struct{ mock.Mock }

func (m *MockWalletRepository) Add(ctx context.Context, w *wallet.Wallet) error {
	return m.Called(ctx, w).Error(0)
}

func (m *MockWalletRepository) Update(ctx context.Context, w *wallet.Wallet) error {
	return m.Called(ctx, w).Error(0)
}

func (m *MockWalletRepository) GetByPartner(ctx context.Context, partnerID kernel.UUID) (*wallet.Wallet, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wallet.Wallet), args.Error(1)
}

func (m *MockWalletRepository) GetByPartnerForUpdate(ctx context.Context, partnerID kernel.UUID) (*wallet.Wallet, error) {
	args := m.Called(ctx, partnerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*wallet.Wallet), args.Error(1)
}

func (m *MockWalletRepository) FindCredit(ctx context.Context, walletID, orderID kernel.UUID) (wallet.Transaction, error) {
	args := m.Called(ctx, walletID, orderID)
	return args.Get(0).(wallet.Transaction), args.Error(1)
}

func (m *MockWalletRepository) AddTransaction(ctx context.Context, txn wallet.Transaction) error {
	return m.Called(ctx, txn).Error(0)
}

func (m *MockWalletRepository) ListTransactions(ctx context.Context, walletID kernel.UUID) ([]wallet.Transaction, error) {
	args := m.Called(ctx, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]wallet.Transaction), args.Error(1)
}

type MockStatusLogRepository struct{ mock.Mock }

func (m *MockStatusLogRepository) Append(ctx context.Context, entry order.StatusLogEntry) error {
	return m.Called(ctx, entry).Error(0)
}

func (m *MockStatusLogRepository) List(ctx context.Context, orderID kernel.UUID) ([]order.StatusLogEntry, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]order.StatusLogEntry), args.Error(1)
}

// MockUoW satisfies every narrowed unit of work interface.
type MockUoW struct {
	mock.Mock
	orders    *MockOrderRepository
	partners  *MockPartnerRepository
	wallets   *MockWalletRepository
	statusLog *MockStatusLogRepository
}

func newMockUoW() *MockUoW {
	uow := &MockUoW{
		orders:    new(MockOrderRepository),
		partners:  new(MockPartnerRepository),
		wallets:   new(MockWalletRepository),
		statusLog: new(MockStatusLogRepository),
	}
	uow.On("Rollback", mock.Anything).Return(nil).Maybe()
	return uow
}

func (m *MockUoW) Begin(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository { return m.orders }
func (m *MockUoW) PartnerRepository() ports.PartnerRepository { return m.partners }
func (m *MockUoW) WalletRepository() ports.WalletRepository { return m.wallets }
func (m *MockUoW) StatusLogRepository() ports.StatusLogRepository { return m.statusLog }

func (m *MockUoW) assertExpectations(t mock.TestingT) {
	m.AssertExpectations(t)
	m.orders.AssertExpectations(t)
	m.partners.AssertExpectations(t)
	m.wallets.AssertExpectations(t)
	m.statusLog.AssertExpectations(t)
}

type assignFactory struct{ uow *MockUoW }

func (f assignFactory) Create() commands.AssignUoW { return f.uow }

type settleFactory struct{ uow *MockUoW }

func (f settleFactory) Create() commands.SettleUoW { return f.uow }

type orderFactory struct{ uow *MockUoW }

func (f orderFactory) Create() commands.OrderUoW { return f.uow }

type partnerFactory struct{ uow *MockUoW }

func (f partnerFactory) Create() commands.PartnerUoW { return f.uow }

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func deliveryFees(payout int64) order.Fees {
	p := decimal.NewFromInt(payout)
	return order.Fees{
		Subtotal:         decimal.NewFromInt(100),
		DeliveryFee:      decimal.NewFromInt(25),
		PlatformFee:      decimal.NewFromInt(5),
		TotalAmount:      decimal.NewFromInt(130),
		CommissionAmount: decimal.NewFromInt(15),
		PartnerPayout:    p,
		PlatformEarnings: decimal.NewFromInt(15 + 25 + 5).Sub(p),
	}
}

func restoreOrder(t *testing.T, status order.Status, orderType order.Type, partnerID *kernel.UUID) *order.Order {
	t.Helper()
	now := time.Now()
	o, err := order.RestoreOrder(order.State{
		ID:            kernel.NewUUID(),
		Number:        "ORD-T",
		ShopID:        kernel.NewUUID(),
		CustomerID:    kernel.NewUUID(),
		PartnerID:     partnerID,
		Status:        status,
		Type:          orderType,
		PaymentMethod: order.PaymentCOD,
		PaymentStatus: order.PaymentPending,
		Fees:          deliveryFees(20),
		CreatedAt:     now,
		UpdatedAt:     now,
	})
	require.NoError(t, err)
	return o
}

func onlinePartner(t *testing.T, lat, lng float64) *partner.Partner {
	t.Helper()
	loc, err := kernel.NewLocation(lat, lng)
	require.NoError(t, err)
	p, err := partner.RestorePartner(partner.State{
		ID: kernel.NewUUID(), Name: "P", Online: true, Location: &loc, Active: true,
	})
	require.NoError(t, err)
	return p
}
