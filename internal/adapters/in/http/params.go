package http

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// domainID converts a bound identifier. The nil UUID is rejected.
func domainID(name string, id openapi_types.UUID) (kernel.UUID, error) {
	parsed, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return kernel.UUID{}, errs.NewValueIsRequiredErrorWithCause(name, err)
	}
	return parsed, nil
}

// optionalLocation builds a location when both coordinates are given, nil when
// neither is, and fails when only one is.
func optionalLocation(name string, lat, lng *float64) (*kernel.Location, error) {
	if lat == nil && lng == nil {
		return nil, nil
	}
	if lat == nil || lng == nil {
		return nil, errs.NewValueIsRequiredError(name)
	}
	loc, err := kernel.NewLocation(*lat, *lng)
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

func orderTypeOf(t *servers.OrderType) (order.Type, error) {
	if t == nil {
		return order.TypeDelivery, nil
	}
	return order.ParseType(string(*t))
}

func feesOf(f order.Fees) servers.FeeBreakdown {
	return servers.FeeBreakdown{
		Subtotal:         f.Subtotal,
		DeliveryFee:      f.DeliveryFee,
		PlatformFee:      f.PlatformFee,
		TotalAmount:      f.TotalAmount,
		CommissionAmount: f.CommissionAmount,
		PartnerPayout:    f.PartnerPayout,
		PlatformEarnings: f.PlatformEarnings,
	}
}

func flag(v bool) *bool {
	if !v {
		return nil
	}
	return &v
}
