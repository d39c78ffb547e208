package order_test

import (
	"encoding/json"
	"testing"

	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_TransitionTo(t *testing.T) {
	tests := []struct {
		from    order.Status
		to      order.Status
		allowed bool
	}{
		{order.Placed, order.Accepted, true},
		{order.Placed, order.Rejected, true},
		{order.Placed, order.Cancelled, true},
		{order.Placed, order.Preparing, false},
		{order.Accepted, order.Preparing, true},
		{order.Accepted, order.Rejected, false},
		{order.Preparing, order.Ready, true},
		{order.Ready, order.PickedUp, true},
		{order.Ready, order.Delivered, false},
		{order.PickedUp, order.Delivered, true},
		{order.PickedUp, order.Cancelled, true},
		{order.Delivered, order.Cancelled, false},
		{order.Cancelled, order.Accepted, false},
		{order.Rejected, order.Placed, false},
		{order.Unknown, order.Placed, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			got, err := tt.from.TransitionTo(tt.to)
			if !tt.allowed {
				require.Error(t, err)
				assert.Equal(t, order.Unknown, got)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.to, got)
		})
	}
}

func TestStatus_ActiveAndFinal(t *testing.T) {
	for _, s := range []order.Status{order.Accepted, order.Preparing, order.Ready, order.PickedUp} {
		assert.True(t, s.IsActive(), s.String())
		assert.False(t, s.IsFinal(), s.String())
	}
	for _, s := range []order.Status{order.Delivered, order.Cancelled, order.Rejected} {
		assert.False(t, s.IsActive(), s.String())
		assert.True(t, s.IsFinal(), s.String())
	}
	assert.False(t, order.Placed.IsActive())
	assert.Equal(t, []string{"accepted", "preparing", "ready", "picked_up"}, order.ActiveStatusNames())
}

func TestParseStatus(t *testing.T) {
	s, err := order.ParseStatus("picked_up")
	require.NoError(t, err)
	assert.Equal(t, order.PickedUp, s)

	_, err = order.ParseStatus("lost")
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	assert.Equal(t, "unknown", order.Status(42).String())
}

func TestStatus_MarshalText(t *testing.T) {
	b, err := json.Marshal(map[string]order.Status{"status": order.PickedUp})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"picked_up"}`, string(b))
}
