package commands_test

import (
	"context"
	"testing"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestChangeOrderStatusCommandHandler_Handle(t *testing.T) {
	t.Run("delivered cash order is marked paid", func(t *testing.T) {
		partnerID := kernel.NewUUID()
		o := restoreOrder(t, order.PickedUp, order.TypeDelivery, &partnerID)
		uow := newMockUoW()
		uow.On("Begin", mock.Anything).Return(nil).Once()
		uow.orders.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once()
		uow.orders.On("Update", mock.Anything, o).Return(nil).Once()
		uow.statusLog.On("Append", mock.Anything, mock.MatchedBy(func(e order.StatusLogEntry) bool {
			return e.Status == "delivered" && e.Message == "Order delivered"
		})).Return(nil).Once()
		uow.On("Commit", mock.Anything).Return(nil).Once()

		cmd, err := commands.NewChangeOrderStatusCommand(o.ID(), order.Delivered)
		require.NoError(t, err)

		got, err := commands.NewChangeOrderStatusCommandHandler(orderFactory{uow: uow}, time.Second).Handle(context.Background(), cmd)

		require.NoError(t, err)
		assert.Equal(t, order.Delivered, got)
		assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
		assert.NotNil(t, o.DeliveredAt())
		uow.assertExpectations(t)
	})

	t.Run("illegal transition writes nothing", func(t *testing.T) {
		o := restoreOrder(t, order.Placed, order.TypeDelivery, nil)
		uow := newMockUoW()
		uow.On("Begin", mock.Anything).Return(nil).Once()
		uow.orders.On("GetForUpdate", mock.Anything, o.ID()).Return(o, nil).Once()

		cmd, err := commands.NewChangeOrderStatusCommand(o.ID(), order.Delivered)
		require.NoError(t, err)

		_, err = commands.NewChangeOrderStatusCommandHandler(orderFactory{uow: uow}, time.Second).Handle(context.Background(), cmd)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		uow.orders.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})

	t.Run("unknown status is rejected by the command", func(t *testing.T) {
		_, err := commands.NewChangeOrderStatusCommand(kernel.NewUUID(), order.Unknown)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
