package services_test

import (
	"testing"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v string) decimal.Decimal {
	return decimal.RequireFromString(v)
}

func TestFeeCalculator_Calculate(t *testing.T) {
	calc, err := services.NewFeeCalculator(services.DefaultFeePolicy())
	require.NoError(t, err)

	tests := []struct {
		name      string
		subtotal  string
		pct       string
		orderType order.Type
		want      order.Fees
	}{
		{
			name: "free delivery above threshold", subtotal: "400", pct: "15", orderType: order.TypeDelivery,
			want: order.Fees{
				Subtotal: d("400"), DeliveryFee: d("0"), PlatformFee: d("5"), TotalAmount: d("405"),
				CommissionAmount: d("60"), PartnerPayout: d("20"), PlatformEarnings: d("45"),
			},
		},
		{
			name: "paid delivery below threshold", subtotal: "100", pct: "15", orderType: order.TypeDelivery,
			want: order.Fees{
				Subtotal: d("100"), DeliveryFee: d("25"), PlatformFee: d("5"), TotalAmount: d("130"),
				CommissionAmount: d("15"), PartnerPayout: d("20"), PlatformEarnings: d("25"),
			},
		},
		{
			name: "pickup", subtotal: "100", pct: "15", orderType: order.TypePickup,
			want: order.Fees{
				Subtotal: d("100"), DeliveryFee: d("0"), PlatformFee: d("5"), TotalAmount: d("105"),
				CommissionAmount: d("15"), PartnerPayout: d("0"), PlatformEarnings: d("20"),
			},
		},
		{
			name: "threshold itself is free", subtotal: "399", pct: "0", orderType: order.TypeDelivery,
			want: order.Fees{
				Subtotal: d("399"), DeliveryFee: d("0"), PlatformFee: d("5"), TotalAmount: d("404"),
				CommissionAmount: d("0"), PartnerPayout: d("20"), PlatformEarnings: d("-15"),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := calc.Calculate(d(tt.subtotal), d(tt.pct), tt.orderType)
			require.NoError(t, err)

			assert.True(t, tt.want.Subtotal.Equal(got.Subtotal), "subtotal %s", got.Subtotal)
			assert.True(t, tt.want.DeliveryFee.Equal(got.DeliveryFee), "delivery fee %s", got.DeliveryFee)
			assert.True(t, tt.want.PlatformFee.Equal(got.PlatformFee), "platform fee %s", got.PlatformFee)
			assert.True(t, tt.want.TotalAmount.Equal(got.TotalAmount), "total %s", got.TotalAmount)
			assert.True(t, tt.want.CommissionAmount.Equal(got.CommissionAmount), "commission %s", got.CommissionAmount)
			assert.True(t, tt.want.PartnerPayout.Equal(got.PartnerPayout), "payout %s", got.PartnerPayout)
			assert.True(t, tt.want.PlatformEarnings.Equal(got.PlatformEarnings), "earnings %s", got.PlatformEarnings)
			require.NoError(t, got.Validate())
		})
	}
}

func TestRoundHalfUp(t *testing.T) {
	tests := map[string]string{
		"0.5":   "1",
		"16.5":  "17",
		"15.45": "15",
		"15.49": "15",
		"14.5":  "15",
		"0":     "0",
		"59.99": "60",
	}
	for in, want := range tests {
		assert.True(t, d(want).Equal(services.RoundHalfUp(d(in))), "%s -> %s", in, services.RoundHalfUp(d(in)))
	}
}

func TestFeeCalculator_CommissionRounding(t *testing.T) {
	calc, err := services.NewFeeCalculator(services.DefaultFeePolicy())
	require.NoError(t, err)

	for _, tc := range []struct{ subtotal, pct, want string }{
		{"10", "5", "1"},
		{"110", "15", "17"},
		{"103", "15", "15"},
	} {
		fees, err := calc.Calculate(d(tc.subtotal), d(tc.pct), order.TypePickup)
		require.NoError(t, err)
		assert.True(t, d(tc.want).Equal(fees.CommissionAmount), "%s at %s%%", tc.subtotal, tc.pct)
	}
}

func TestFeeCalculator_RejectsUnknownType(t *testing.T) {
	calc, err := services.NewFeeCalculator(services.DefaultFeePolicy())
	require.NoError(t, err)

	for _, typ := range []order.Type{"express", ""} {
		_, err = calc.Calculate(d("100"), d("15"), typ)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid, "type %q", typ)
	}
}

func TestFeePolicy_Validate(t *testing.T) {
	policy := services.DefaultFeePolicy()
	policy.DeliveryFee = d("-1")
	policy.DefaultCommissionPercent = d("101")

	_, err := services.NewFeeCalculator(policy)

	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	assert.Contains(t, err.Error(), "deliveryFee")
	assert.Contains(t, err.Error(), "commissionPercent")
}
