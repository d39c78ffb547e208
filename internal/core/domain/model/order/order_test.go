package order_test

import (
	"testing"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

func validFees() order.Fees {
	return order.Fees{
		Subtotal:         decimal.NewFromInt(400),
		DeliveryFee:      decimal.Zero,
		PlatformFee:      decimal.NewFromInt(5),
		TotalAmount:      decimal.NewFromInt(405),
		CommissionAmount: decimal.NewFromInt(60),
		PartnerPayout:    decimal.NewFromInt(20),
		PlatformEarnings: decimal.NewFromInt(45),
	}
}

func createOrder(t *testing.T, orderType order.Type) *order.Order {
	t.Helper()
	shop, err := kernel.NewLocation(19.076, 72.8777)
	require.NoError(t, err)

	o, err := order.NewOrder(kernel.NewUUID(), "ORD-TEST01", kernel.NewUUID(), kernel.NewUUID(),
		orderType, order.PaymentCOD, validFees(), &shop, testNow)
	require.NoError(t, err)
	return o
}

func moveTo(t *testing.T, o *order.Order, statuses ...order.Status) {
	t.Helper()
	for _, s := range statuses {
		require.NoError(t, o.ChangeStatus(s, testNow))
	}
}

func TestNewOrder(t *testing.T) {
	t.Run("should place order with pending payment", func(t *testing.T) {
		o := createOrder(t, order.TypeDelivery)

		require.NoError(t, o.Validate())
		assert.Equal(t, order.Placed, o.Status())
		assert.Equal(t, order.PaymentPending, o.PaymentStatus())
		assert.Nil(t, o.Partner())
		assert.Equal(t, "ORD-TEST01", o.Number())
		assert.True(t, o.Fees().PartnerPayout.Equal(decimal.NewFromInt(20)))
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("should report every invalid argument", func(t *testing.T) {
		o, err := order.NewOrder(kernel.UUID{}, " ", kernel.UUID{}, kernel.NewUUID(),
			order.Type("drone"), order.PaymentCOD, validFees(), nil, testNow)

		require.Error(t, err)
		assert.Nil(t, o)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "number")
		assert.Contains(t, err.Error(), "shopId")
	})

	t.Run("should reject inconsistent fees", func(t *testing.T) {
		fees := validFees()
		fees.TotalAmount = decimal.NewFromInt(500)

		_, err := order.NewOrder(kernel.NewUUID(), "ORD-1", kernel.NewUUID(), kernel.NewUUID(),
			order.TypeDelivery, order.PaymentUPI, fees, nil, testNow)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Contains(t, err.Error(), "totalAmount")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		var o order.Order
		require.ErrorIs(t, o.Validate(), order.ErrOrderIsNotConstructed)
	})
}

func TestOrder_ChangeStatus(t *testing.T) {
	t.Run("should stamp lifecycle timestamps and record events", func(t *testing.T) {
		o := createOrder(t, order.TypeDelivery)
		moveTo(t, o, order.Accepted, order.Preparing, order.Ready)
		require.NoError(t, o.AssignPartner(kernel.NewUUID(), 1.2, testNow))
		moveTo(t, o, order.PickedUp, order.Delivered)

		assert.NotNil(t, o.AcceptedAt())
		assert.NotNil(t, o.PickedUpAt())
		assert.NotNil(t, o.DeliveredAt())
		assert.Equal(t, order.Delivered, o.Status())
		assert.Len(t, o.DomainEvents(), 6)

		last, ok := o.DomainEvents()[5].(order.StatusChanged)
		require.True(t, ok)
		assert.Equal(t, order.PickedUp, last.From)
		assert.Equal(t, order.Delivered, last.To)
		assert.Equal(t, "order.status_changed", last.EventName())
	})

	t.Run("should refuse pickup without partner for delivery orders", func(t *testing.T) {
		o := createOrder(t, order.TypeDelivery)
		moveTo(t, o, order.Accepted, order.Preparing, order.Ready)

		err := o.ChangeStatus(order.PickedUp, testNow)

		require.ErrorIs(t, err, order.ErrPartnerNotAssigned)
		assert.Equal(t, order.Ready, o.Status())
	})

	t.Run("pickup orders complete without partner", func(t *testing.T) {
		o := createOrder(t, order.TypePickup)
		moveTo(t, o, order.Accepted, order.Preparing, order.Ready, order.PickedUp, order.Delivered)
		assert.Nil(t, o.Partner())
	})

	t.Run("cancel keeps partner reference", func(t *testing.T) {
		o := createOrder(t, order.TypeDelivery)
		moveTo(t, o, order.Accepted)
		partnerID := kernel.NewUUID()
		require.NoError(t, o.AssignPartner(partnerID, 0.5, testNow))

		moveTo(t, o, order.Cancelled)

		assert.True(t, o.IsAssignedTo(partnerID))
		assert.False(t, o.Status().IsActive())
	})

	t.Run("invalid transition leaves order untouched", func(t *testing.T) {
		o := createOrder(t, order.TypeDelivery)

		err := o.ChangeStatus(order.Delivered, testNow)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.Equal(t, order.Placed, o.Status())
		assert.Empty(t, o.DomainEvents())
	})
}

func TestOrder_AssignPartner(t *testing.T) {
	t.Run("should attach partner and record event", func(t *testing.T) {
		o := createOrder(t, order.TypeDelivery)
		moveTo(t, o, order.Accepted)
		o.ClearDomainEvents()
		partnerID := kernel.NewUUID()

		require.NoError(t, o.AssignPartner(partnerID, 2.345, testNow))

		require.NotNil(t, o.Partner())
		assert.True(t, o.Partner().IsEqual(partnerID))
		require.Len(t, o.DomainEvents(), 1)
		ev, ok := o.DomainEvents()[0].(order.PartnerAssigned)
		require.True(t, ok)
		assert.InDelta(t, 2.345, ev.DistanceKm, 1e-9)
		assert.True(t, ev.AggregateID().IsEqual(o.ID()))
	})

	t.Run("should never replace an existing partner", func(t *testing.T) {
		o := createOrder(t, order.TypeDelivery)
		moveTo(t, o, order.Accepted)
		first := kernel.NewUUID()
		require.NoError(t, o.AssignPartner(first, 1, testNow))

		err := o.AssignPartner(kernel.NewUUID(), 0.1, testNow)

		require.ErrorIs(t, err, order.ErrPartnerAlreadyAssigned)
		assert.True(t, o.IsAssignedTo(first))
	})

	t.Run("should refuse placed and final orders", func(t *testing.T) {
		placed := createOrder(t, order.TypeDelivery)
		require.ErrorIs(t, placed.AssignPartner(kernel.NewUUID(), 1, testNow), errs.ErrValueIsInvalid)

		cancelled := createOrder(t, order.TypeDelivery)
		moveTo(t, cancelled, order.Cancelled)
		require.ErrorIs(t, cancelled.AssignPartner(kernel.NewUUID(), 1, testNow), errs.ErrValueIsInvalid)
	})

	t.Run("should refuse pickup orders", func(t *testing.T) {
		o := createOrder(t, order.TypePickup)
		moveTo(t, o, order.Accepted)

		require.ErrorIs(t, o.AssignPartner(kernel.NewUUID(), 1, testNow), order.ErrNotDeliveryOrder)
	})
}

func TestOrder_ValidateSettle(t *testing.T) {
	partnerID := kernel.NewUUID()
	o := createOrder(t, order.TypeDelivery)
	moveTo(t, o, order.Accepted)
	require.NoError(t, o.AssignPartner(partnerID, 1, testNow))

	require.ErrorIs(t, o.ValidateSettle(partnerID), order.ErrOrderNotDelivered)

	moveTo(t, o, order.Preparing, order.Ready, order.PickedUp, order.Delivered)

	require.NoError(t, o.ValidateSettle(partnerID))
	require.ErrorIs(t, o.ValidateSettle(kernel.NewUUID()), order.ErrOrderAssignedToOtherPartner)
}

func TestRestoreOrder(t *testing.T) {
	partnerID := kernel.NewUUID()

	t.Run("should rebuild aggregate without events", func(t *testing.T) {
		o, err := order.RestoreOrder(order.State{
			ID:        kernel.NewUUID(),
			Number:    "ORD-R",
			PartnerID: &partnerID,
			Status:    order.Ready,
			Type:      order.TypeDelivery,
			Fees:      validFees(),
			CreatedAt: testNow,
			UpdatedAt: testNow,
		})

		require.NoError(t, err)
		require.NoError(t, o.Validate())
		assert.True(t, o.IsAssignedTo(partnerID))
		assert.Empty(t, o.DomainEvents())
	})

	t.Run("pickup order with partner is an integrity violation", func(t *testing.T) {
		_, err := order.RestoreOrder(order.State{
			ID:        kernel.NewUUID(),
			PartnerID: &partnerID,
			Status:    order.Ready,
			Type:      order.TypePickup,
		})

		require.ErrorIs(t, err, errs.ErrIntegrityViolation)
	})
}

func TestOrder_MarkPaid(t *testing.T) {
	o := createOrder(t, order.TypeDelivery)

	require.NoError(t, o.MarkPaid(testNow))
	assert.Equal(t, order.PaymentPaid, o.PaymentStatus())
	require.ErrorIs(t, o.MarkPaid(testNow), errs.ErrValueIsInvalid)
}

func TestAssignedMessage(t *testing.T) {
	assert.Equal(t, "Delivery partner assigned (2.3 km away)", order.AssignedMessage(2.345))
	assert.Equal(t, "Order ready", order.StatusMessage(order.Ready))
}
