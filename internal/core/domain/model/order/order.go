package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created via NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	ErrPartnerAlreadyAssigned = errs.NewValueIsInvalidErrorWithCause(
		"partnerId", errors.New("order already has a delivery partner"))
	ErrPartnerNotAssigned = errs.NewValueIsInvalidErrorWithCause(
		"partnerId", errors.New("order has no delivery partner"))
	ErrNotDeliveryOrder = errs.NewValueIsInvalidErrorWithCause(
		"type", errors.New("only delivery orders take a delivery partner"))
	ErrOrderNotDelivered = errs.NewValueIsInvalidErrorWithCause(
		"status", errors.New("order is not delivered"))
	ErrOrderAssignedToOtherPartner = errs.NewValueIsInvalidErrorWithCause(
		"partnerId", errors.New("order is assigned to another partner"))
)

// Order is the aggregate root of the order lifecycle.
//
// Invariants:
//   - a partner is attached only while the order is a delivery order in an active status
//   - once attached the partner is never replaced; the reference outlives delivery
//   - the fee breakdown is fixed at creation
//
// Order records PartnerAssigned and StatusChanged events; the unit of work
// publishes them after commit.
type Order struct {
	id            kernel.UUID
	number        string
	shopID        kernel.UUID
	customerID    kernel.UUID
	partnerID     *kernel.UUID
	status        Status
	orderType     Type
	paymentMethod PaymentMethod
	paymentStatus PaymentStatus
	fees          Fees

	// pickupLocation is where the partner collects the order. Kept so that
	// a deferred assignment can be retried without the caller.
	pickupLocation *kernel.Location

	acceptedAt  *time.Time
	pickedUpAt  *time.Time
	deliveredAt *time.Time
	createdAt   time.Time
	updatedAt   time.Time

	guard guard.ConstructorGuard
	kernel.EventRecorder
}

// NewOrder places an order. The order starts in Placed with payment pending.
//
// Example:
//
//	fees, _ := calculator.Calculate(decimal.NewFromInt(400), decimal.NewFromInt(15), order.TypeDelivery)
//	o, err := order.NewOrder(kernel.NewUUID(), "ORD-1A2B3C", shopID, customerID,
//	    order.TypeDelivery, order.PaymentCOD, fees, &shopLocation, time.Now())
func NewOrder(
	id kernel.UUID,
	number string,
	shopID, customerID kernel.UUID,
	orderType Type,
	paymentMethod PaymentMethod,
	fees Fees,
	pickupLocation *kernel.Location,
	at time.Time,
) (*Order, error) {
	o := &Order{
		status:        Placed,
		paymentMethod: paymentMethod,
		paymentStatus: PaymentPending,
		createdAt:     at,
		updatedAt:     at,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setShopID(shopID),
		o.setCustomerID(customerID),
		o.setType(orderType),
		o.setFees(fees),
		o.setPickupLocation(pickupLocation),
	); err != nil {
		return nil, err
	}
	if _, err := ParsePaymentMethod(string(paymentMethod)); err != nil {
		return nil, err
	}

	return o, nil
}

// State is the persisted form of an Order, used by repositories to rebuild the aggregate.
type State struct {
	ID             kernel.UUID
	Number         string
	ShopID         kernel.UUID
	CustomerID     kernel.UUID
	PartnerID      *kernel.UUID
	Status         Status
	Type           Type
	PaymentMethod  PaymentMethod
	PaymentStatus  PaymentStatus
	Fees           Fees
	PickupLocation *kernel.Location
	AcceptedAt     *time.Time
	PickedUpAt     *time.Time
	DeliveredAt    *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// RestoreOrder rebuilds an order from storage. A stored row that breaks an aggregate
// invariant is reported as an integrity violation rather than a validation error.
func RestoreOrder(s State) (*Order, error) {
	o := &Order{
		id:             s.ID,
		number:         s.Number,
		shopID:         s.ShopID,
		customerID:     s.CustomerID,
		partnerID:      s.PartnerID,
		status:         s.Status,
		orderType:      s.Type,
		paymentMethod:  s.PaymentMethod,
		paymentStatus:  s.PaymentStatus,
		fees:           s.Fees,
		pickupLocation: s.PickupLocation,
		acceptedAt:     s.AcceptedAt,
		pickedUpAt:     s.PickedUpAt,
		deliveredAt:    s.DeliveredAt,
		createdAt:      s.CreatedAt,
		updatedAt:      s.UpdatedAt,
		guard:          guard.NewConstructorGuard(),
	}

	var errList []error
	errList = append(errList, s.ID.Validate(), s.Status.Validate(), s.Type.Validate())
	if s.PartnerID != nil && s.Type == TypePickup {
		errList = append(errList, ErrNotDeliveryOrder)
	}
	if err := errors.Join(errList...); err != nil {
		return nil, errs.NewIntegrityViolationErrorWithCause(fmt.Sprintf("order %s", s.ID), err)
	}

	return o, nil
}

// Validate ensures the Order was built by a constructor.
func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) ID() kernel.UUID { return o.id }
func (o *Order) Number() string { return o.number }
func (o *Order) ShopID() kernel.UUID { return o.shopID }
func (o *Order) CustomerID() kernel.UUID { return o.customerID }
func (o *Order) Status() Status { return o.status }
func (o *Order) Type() Type { return o.orderType }
func (o *Order) PaymentMethod() PaymentMethod { return o.paymentMethod }
func (o *Order) PaymentStatus() PaymentStatus { return o.paymentStatus }
func (o *Order) Fees() Fees { return o.fees }
func (o *Order) PickupLocation() *kernel.Location { return o.pickupLocation }
func (o *Order) AcceptedAt() *time.Time { return o.acceptedAt }
func (o *Order) PickedUpAt() *time.Time { return o.pickedUpAt }
func (o *Order) DeliveredAt() *time.Time { return o.deliveredAt }
func (o *Order) CreatedAt() time.Time { return o.createdAt }
func (o *Order) UpdatedAt() time.Time { return o.updatedAt }

// Partner returns the assigned partner's ID, or nil for an unassigned order.
func (o *Order) Partner() *kernel.UUID {
	return o.partnerID
}

// IsAssignedTo reports whether partnerID is the order's partner.
func (o *Order) IsAssignedTo(partnerID kernel.UUID) bool {
	return o.partnerID != nil && o.partnerID.IsEqual(partnerID)
}

// ChangeStatus moves the order along the lifecycle and stamps the matching timestamp.
//
// A delivery order cannot be picked up before a partner is attached. Moving to
// Cancelled keeps the partner reference; the partner becomes free because
// occupancy only counts active orders.
func (o *Order) ChangeStatus(next Status, at time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	newStatus, err := o.status.TransitionTo(next)
	if err != nil {
		return err
	}
	if newStatus == PickedUp && o.orderType == TypeDelivery && o.partnerID == nil {
		return ErrPartnerNotAssigned
	}

	switch newStatus { //nolint:exhaustive // only stamped statuses
	case Accepted:
		o.acceptedAt = &at
	case PickedUp:
		o.pickedUpAt = &at
	case Delivered:
		o.deliveredAt = &at
	}

	from := o.status
	o.status = newStatus
	o.updatedAt = at
	o.Record(StatusChanged{OrderID: o.id, From: from, To: newStatus, At: at})

	return nil
}

// ValidateAssign checks that the order can take a partner at all: a delivery order
// in an active status. It does not look at the current partner.
func (o *Order) ValidateAssign() error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.orderType != TypeDelivery {
		return ErrNotDeliveryOrder
	}
	if !o.status.IsActive() {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("order in status %s cannot take a delivery partner", o.status))
	}
	return nil
}

// AssignPartner attaches partnerID to the order. distanceKm is the shop-to-partner
// distance and is carried on the recorded event.
func (o *Order) AssignPartner(partnerID kernel.UUID, distanceKm float64, at time.Time) error {
	if err := o.ValidateAssign(); err != nil {
		return err
	}
	if err := partnerID.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("partnerId", err)
	}
	if o.partnerID != nil {
		return ErrPartnerAlreadyAssigned
	}

	o.partnerID = &partnerID
	o.updatedAt = at
	o.Record(PartnerAssigned{OrderID: o.id, PartnerID: partnerID, DistanceKm: distanceKm, At: at})

	return nil
}

// ValidateSettle checks that partnerID may be paid for this order.
func (o *Order) ValidateSettle(partnerID kernel.UUID) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if o.status != Delivered {
		return ErrOrderNotDelivered
	}
	if o.partnerID == nil {
		return ErrPartnerNotAssigned
	}
	if !o.partnerID.IsEqual(partnerID) {
		return ErrOrderAssignedToOtherPartner
	}
	return nil
}

// MarkPaid records customer payment, e.g. cash collected on delivery.
func (o *Order) MarkPaid(at time.Time) error {
	if o.paymentStatus != PaymentPending {
		return errs.NewValueIsInvalidErrorWithCause("paymentStatus",
			fmt.Errorf("cannot mark %s payment as paid", o.paymentStatus))
	}
	o.paymentStatus = PaymentPaid
	o.updatedAt = at
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("id", err)
	}
	o.id = id
	return nil
}

func (o *Order) setNumber(number string) error {
	number = strings.TrimSpace(number)
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	o.number = number
	return nil
}

func (o *Order) setShopID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("shopId", err)
	}
	o.shopID = id
	return nil
}

func (o *Order) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setType(t Type) error {
	if err := t.Validate(); err != nil {
		return err
	}
	o.orderType = t
	return nil
}

func (o *Order) setFees(fees Fees) error {
	if err := fees.Validate(); err != nil {
		return err
	}
	o.fees = fees
	return nil
}

func (o *Order) setPickupLocation(loc *kernel.Location) error {
	if loc == nil {
		return nil
	}
	if err := loc.Validate(); err != nil {
		return err
	}
	o.pickupLocation = loc
	return nil
}
