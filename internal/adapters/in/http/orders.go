package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// AssignPartner handles POST /api/v1/orders/assign.
// "No partner available" is a successful response with assigned=false.
func (s *Server) AssignPartner(c echo.Context) error {
	var req servers.AssignPartnerJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	orderID, err := domainID("orderId", req.OrderId)
	if err != nil {
		return s.fail(c, "assign partner", err)
	}
	shop, err := kernel.NewLocation(req.ShopLat, req.ShopLng)
	if err != nil {
		return s.fail(c, "assign partner", err)
	}

	cmd, err := commands.NewAssignPartnerCommand(orderID, shop)
	if err != nil {
		return s.fail(c, "assign partner", err)
	}

	res, err := s.h.AssignPartner.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, "assign partner", err)
	}

	resp := servers.AssignResponse{Assigned: res.Assigned, AlreadyAssigned: flag(res.AlreadyAssigned)}
	if res.PartnerID != nil {
		id := res.PartnerID.Bytes()
		resp.PartnerId = &id
	}
	if res.Assigned && !res.AlreadyAssigned {
		km := res.DistanceKm
		resp.DistanceKm = &km
	}
	return c.JSON(http.StatusOK, resp)
}

// SettleOrder handles POST /api/v1/orders/settle.
// A repeated settlement answers success=false with the amount credited the first time.
func (s *Server) SettleOrder(c echo.Context) error {
	var req servers.SettleOrderJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	orderID, err := domainID("orderId", req.OrderId)
	if err != nil {
		return s.fail(c, "settle order", err)
	}
	partnerID, err := domainID("partnerId", req.PartnerId)
	if err != nil {
		return s.fail(c, "settle order", err)
	}

	cmd, err := commands.NewSettleOrderCommand(orderID, partnerID)
	if err != nil {
		return s.fail(c, "settle order", err)
	}

	res, err := s.h.SettleOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, "settle order", err)
	}

	return c.JSON(http.StatusOK, servers.SettleResponse{
		Success:        res.Success,
		AlreadySettled: flag(res.AlreadySettled),
		Amount:         res.Amount,
	})
}

// CompleteOrder handles POST /api/v1/orders/complete, the path the order
// dashboards call on delivery.
func (s *Server) CompleteOrder(c echo.Context) error {
	return s.SettleOrder(c)
}

// CreateOrder handles POST /api/v1/orders.
func (s *Server) CreateOrder(c echo.Context) error {
	var req servers.CreateOrderJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	shopID, err := domainID("shopId", req.ShopId)
	if err != nil {
		return s.fail(c, "create order", err)
	}
	customerID, err := domainID("customerId", req.CustomerId)
	if err != nil {
		return s.fail(c, "create order", err)
	}
	orderType, err := orderTypeOf(req.OrderType)
	if err != nil {
		return s.fail(c, "create order", err)
	}
	paymentMethod, err := order.ParsePaymentMethod(string(req.PaymentMethod))
	if err != nil {
		return s.fail(c, "create order", err)
	}
	var pickup *kernel.Location
	if req.PickupLocation != nil {
		if pickup, err = optionalLocation("pickupLocation", &req.PickupLocation.Lat, &req.PickupLocation.Lng); err != nil {
			return s.fail(c, "create order", err)
		}
	}

	cmd, err := commands.NewCreateOrderCommand(shopID, customerID, orderType, paymentMethod,
		req.Subtotal, req.CommissionPercent, pickup)
	if err != nil {
		return s.fail(c, "create order", err)
	}

	res, err := s.h.CreateOrder.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, "create order", err)
	}

	return c.JSON(http.StatusCreated, servers.CreateOrderResponse{
		OrderId:     res.OrderID.Bytes(),
		OrderNumber: res.Number,
		Fees:        feesOf(res.Fees),
	})
}

// ChangeOrderStatus handles POST /api/v1/orders/{id}/status.
func (s *Server) ChangeOrderStatus(c echo.Context, id servers.ID) error {
	var req servers.ChangeOrderStatusJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	orderID, err := domainID("id", id)
	if err != nil {
		return s.fail(c, "change order status", err)
	}
	status, err := order.ParseStatus(string(req.Status))
	if err != nil {
		return s.fail(c, "change order status", err)
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, status)
	if err != nil {
		return s.fail(c, "change order status", err)
	}

	current, err := s.h.ChangeOrderStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, "change order status", err)
	}

	return c.JSON(http.StatusOK, servers.ChangeStatusResponse{Status: servers.OrderStatus(current.String())})
}

// QuoteFees handles POST /api/v1/fees/quote. It touches no storage.
func (s *Server) QuoteFees(c echo.Context) error {
	var req servers.QuoteFeesJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	orderType, err := orderTypeOf(req.OrderType)
	if err != nil {
		return s.fail(c, "quote fees", err)
	}

	pct := s.h.FeeCalculator.Policy().DefaultCommissionPercent
	if req.CommissionPercent != nil {
		pct = *req.CommissionPercent
	}
	if err = services.ValidateCommissionPercent(pct); err != nil {
		return s.fail(c, "quote fees", err)
	}
	if req.Subtotal.IsNegative() {
		return badRequest(c, "subtotal must not be negative")
	}

	fees, err := s.h.FeeCalculator.Calculate(req.Subtotal, pct, orderType)
	if err != nil {
		return s.fail(c, "quote fees", err)
	}
	return c.JSON(http.StatusOK, feesOf(fees))
}
