package http

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/generated/servers"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mockAssign struct{ mock.Mock }

func (m *mockAssign) Handle(ctx context.Context, cmd commands.AssignPartnerCommand) (commands.AssignPartnerResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.AssignPartnerResult), args.Error(1)
}

type mockSettle struct{ mock.Mock }

func (m *mockSettle) Handle(ctx context.Context, cmd commands.SettleOrderCommand) (commands.SettleOrderResult, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(commands.SettleOrderResult), args.Error(1)
}

type mockChangeStatus struct{ mock.Mock }

func (m *mockChangeStatus) Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (order.Status, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(order.Status), args.Error(1)
}

type mockAvailable struct{ mock.Mock }

func (m *mockAvailable) Handle(
	ctx context.Context,
	q queries.GetAvailablePartnersQuery,
) ([]queries.GetAvailablePartnersQueryResponse, error) {
	args := m.Called(ctx, q)
	return args.Get(0).([]queries.GetAvailablePartnersQueryResponse), args.Error(1)
}

type testServer struct {
	e         *echo.Echo
	assign    *mockAssign
	settle    *mockSettle
	status    *mockChangeStatus
	available *mockAvailable
}

func newTestServer(t *testing.T) testServer {
	t.Helper()
	calculator, err := services.NewFeeCalculator(services.DefaultFeePolicy())
	require.NoError(t, err)

	ts := testServer{
		e:         echo.New(),
		assign:    &mockAssign{},
		settle:    &mockSettle{},
		status:    &mockChangeStatus{},
		available: &mockAvailable{},
	}
	err = NewServer(Handlers{
		AssignPartner:        ts.assign,
		SettleOrder:          ts.settle,
		ChangeOrderStatus:    ts.status,
		GetAvailablePartners: ts.available,
		FeeCalculator:        calculator,
	}, slog.New(slog.NewTextHandler(io.Discard, nil))).RegisterRoutes(ts.e)
	require.NoError(t, err)

	t.Cleanup(func() {
		ts.assign.AssertExpectations(t)
		ts.settle.AssertExpectations(t)
		ts.status.AssertExpectations(t)
		ts.available.AssertExpectations(t)
	})
	return ts
}

func (ts testServer) do(method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	ts.e.ServeHTTP(rec, req)
	return rec
}

func TestAssign_ReturnsPartner(t *testing.T) {
	ts := newTestServer(t)
	orderID, partnerID := kernel.NewUUID(), kernel.NewUUID()

	ts.assign.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AssignPartnerCommand) bool {
		return cmd.OrderID().IsEqual(orderID) && cmd.Shop().Latitude() == 12.97
	})).Return(commands.AssignPartnerResult{PartnerID: &partnerID, Assigned: true, DistanceKm: 1.2}, nil)

	rec := ts.do(http.MethodPost, "/api/v1/orders/assign",
		`{"orderId":"`+orderID.String()+`","shopLat":12.97,"shopLng":77.59}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp servers.AssignResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Assigned)
	require.NotNil(t, resp.PartnerId)
	assert.Equal(t, partnerID.String(), resp.PartnerId.String())
	require.NotNil(t, resp.DistanceKm)
	assert.InDelta(t, 1.2, *resp.DistanceKm, 1e-9)
}

func TestAssign_NoPartnerIsNotAnError(t *testing.T) {
	ts := newTestServer(t)
	ts.assign.On("Handle", mock.Anything, mock.Anything).Return(commands.AssignPartnerResult{}, nil)

	rec := ts.do(http.MethodPost, "/api/v1/orders/assign",
		`{"orderId":"`+kernel.NewUUID().String()+`","shopLat":12.97,"shopLng":77.59}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"partnerId":null,"assigned":false}`, rec.Body.String())
}

func TestAssign_MissingShopLocationIsBadRequest(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/v1/orders/assign", `{"orderId":"`+kernel.NewUUID().String()+`","shopLat":12.97}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "shopLng")
}

func TestAssign_ShopOutOfRangeIsRejectedBeforeHandler(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/v1/orders/assign",
		`{"orderId":"`+kernel.NewUUID().String()+`","shopLat":95,"shopLng":77.59}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	ts.assign.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestAssign_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"not found", errs.NewObjectNotFoundError("order", "x"), http.StatusNotFound},
		{"validation", order.ErrNotDeliveryOrder, http.StatusBadRequest},
		{"transient", errs.NewTransientError("assign partner", context.DeadlineExceeded), http.StatusServiceUnavailable},
		{"integrity", errs.NewIntegrityViolationError("order"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts := newTestServer(t)
			ts.assign.On("Handle", mock.Anything, mock.Anything).Return(commands.AssignPartnerResult{}, tt.err)

			rec := ts.do(http.MethodPost, "/api/v1/orders/assign",
				`{"orderId":"`+kernel.NewUUID().String()+`","shopLat":12.97,"shopLng":77.59}`)

			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestSettle_CompleteAliasAndDuplicate(t *testing.T) {
	ts := newTestServer(t)
	orderID, partnerID := kernel.NewUUID(), kernel.NewUUID()
	ts.settle.On("Handle", mock.Anything, mock.Anything).
		Return(commands.SettleOrderResult{AlreadySettled: true, Amount: decimal.NewFromInt(20)}, nil)

	rec := ts.do(http.MethodPost, "/api/v1/orders/complete",
		`{"orderId":"`+orderID.String()+`","partnerId":"`+partnerID.String()+`"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp servers.SettleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	require.NotNil(t, resp.AlreadySettled)
	assert.True(t, *resp.AlreadySettled)
	assert.True(t, decimal.NewFromInt(20).Equal(resp.Amount))
}

func TestSettle_InvalidPartnerID(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/v1/orders/settle", `{"orderId":"`+kernel.NewUUID().String()+`","partnerId":"nope"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestChangeOrderStatus(t *testing.T) {
	ts := newTestServer(t)
	orderID := kernel.NewUUID()
	ts.status.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.ChangeOrderStatusCommand) bool {
		return cmd.Status() == order.PickedUp
	})).Return(order.PickedUp, nil)

	rec := ts.do(http.MethodPost, "/api/v1/orders/"+orderID.String()+"/status", `{"status":"picked_up"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"picked_up"}`, rec.Body.String())
}

func TestChangeOrderStatus_UnknownStatus(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/status", `{"status":"lost"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuoteFees(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/v1/fees/quote", `{"subtotal":"400","commissionPercent":"15","orderType":"delivery"}`)

	require.Equal(t, http.StatusOK, rec.Code)
	var fees servers.FeeBreakdown
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fees))
	assert.True(t, decimal.Zero.Equal(fees.DeliveryFee))
	assert.True(t, decimal.NewFromInt(405).Equal(fees.TotalAmount))
	assert.True(t, decimal.NewFromInt(60).Equal(fees.CommissionAmount))
	assert.True(t, decimal.NewFromInt(20).Equal(fees.PartnerPayout))
	assert.True(t, decimal.NewFromInt(45).Equal(fees.PlatformEarnings))
}

func TestQuoteFees_CommissionOutOfRange(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/v1/fees/quote", `{"subtotal":"100","commissionPercent":"120"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAvailablePartners_Near(t *testing.T) {
	ts := newTestServer(t)
	loc, err := kernel.NewLocation(12.97, 77.59)
	require.NoError(t, err)
	km := 0.4

	ts.available.On("Handle", mock.Anything, mock.Anything).Return([]queries.GetAvailablePartnersQueryResponse{
		{ID: kernel.NewUUID(), Name: "Ravi", VehicleType: "bike", Location: loc, DistanceKm: &km},
	}, nil)

	rec := ts.do(http.MethodGet, "/api/v1/partners/available?lat=12.97&lng=77.59", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var resp []servers.AvailablePartner
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	assert.Equal(t, "Ravi", resp[0].Name)
	require.NotNil(t, resp[0].DistanceKm)
	assert.InDelta(t, 0.4, *resp[0].DistanceKm, 1e-9)
}

func TestGetAvailablePartners_HalfALocation(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/v1/partners/available?lat=12.97", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestQuoteFees_NumericMoneyViolatesContract(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/v1/fees/quote", `{"subtotal":400}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAvailablePartners_NonNumericCoordinate(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/v1/partners/available?lat=north&lng=77.59", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	ts.available.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestChangeOrderStatus_MalformedPathID(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodPost, "/api/v1/orders/not-a-uuid/status", `{"status":"ready"}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	ts.status.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestGetWalletStatement_LimitAboveMaximum(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/api/v1/partners/"+kernel.NewUUID().String()+"/wallet?limit=501", "")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSwaggerDocument(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/swagger/doc.json", "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"/api/v1/orders/assign"`)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(http.MethodGet, "/health", "")

	assert.Equal(t, http.StatusOK, rec.Code)
}
