package http

import (
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/partner"
	"dispatch/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// RegisterPartner handles POST /api/v1/partners.
func (s *Server) RegisterPartner(c echo.Context) error {
	var req servers.RegisterPartnerJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	var vehicle partner.VehicleType
	if req.VehicleType != nil {
		vehicle = partner.VehicleType(*req.VehicleType)
	}

	cmd, err := commands.NewRegisterPartnerCommand(req.Name, req.Phone, vehicle)
	if err != nil {
		return s.fail(c, "register partner", err)
	}

	res, err := s.h.RegisterPartner.Handle(c.Request().Context(), cmd)
	if err != nil {
		return s.fail(c, "register partner", err)
	}

	return c.JSON(http.StatusCreated, servers.RegisterPartnerResponse{
		PartnerId: res.PartnerID.Bytes(),
		WalletId:  res.WalletID.Bytes(),
	})
}

// UpdatePartnerPresence handles PUT /api/v1/partners/{id}/presence.
func (s *Server) UpdatePartnerPresence(c echo.Context, id servers.ID) error {
	var req servers.UpdatePartnerPresenceJSONRequestBody
	if err := c.Bind(&req); err != nil {
		return badRequest(c, "invalid request body")
	}

	partnerID, err := domainID("id", id)
	if err != nil {
		return s.fail(c, "update presence", err)
	}
	loc, err := optionalLocation("location", req.Lat, req.Lng)
	if err != nil {
		return s.fail(c, "update presence", err)
	}

	cmd, err := commands.NewUpdatePartnerPresenceCommand(partnerID, req.Online, loc)
	if err != nil {
		return s.fail(c, "update presence", err)
	}

	if err = s.h.UpdatePartnerPresence.Handle(c.Request().Context(), cmd); err != nil {
		return s.fail(c, "update presence", err)
	}

	return c.NoContent(http.StatusNoContent)
}

// GetAvailablePartners handles GET /api/v1/partners/available[?lat=&lng=].
func (s *Server) GetAvailablePartners(c echo.Context, params servers.GetAvailablePartnersParams) error {
	near, err := optionalLocation("near", params.Lat, params.Lng)
	if err != nil {
		return s.fail(c, "list available partners", err)
	}

	q, err := queries.NewGetAvailablePartnersQuery(near)
	if err != nil {
		return s.fail(c, "list available partners", err)
	}

	partners, err := s.h.GetAvailablePartners.Handle(c.Request().Context(), q)
	if err != nil {
		return s.fail(c, "list available partners", err)
	}

	resp := make([]servers.AvailablePartner, len(partners))
	for i, p := range partners {
		resp[i] = servers.AvailablePartner{
			Id:              p.ID.Bytes(),
			Name:            p.Name,
			VehicleType:     servers.VehicleType(p.VehicleType),
			Location:        servers.Location{Lat: p.Location.Latitude(), Lng: p.Location.Longitude()},
			TotalDeliveries: p.TotalDeliveries,
			DistanceKm:      p.DistanceKm,
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// GetWalletStatement handles GET /api/v1/partners/{id}/wallet[?limit=].
func (s *Server) GetWalletStatement(c echo.Context, id servers.ID, params servers.GetWalletStatementParams) error {
	partnerID, err := domainID("id", id)
	if err != nil {
		return s.fail(c, "wallet statement", err)
	}
	limit := 0
	if params.Limit != nil {
		limit = *params.Limit
	}

	q, err := queries.NewGetWalletStatementQuery(partnerID, limit)
	if err != nil {
		return s.fail(c, "wallet statement", err)
	}

	st, err := s.h.GetWalletStatement.Handle(c.Request().Context(), q)
	if err != nil {
		return s.fail(c, "wallet statement", err)
	}

	txns := make([]servers.WalletTransaction, len(st.Transactions))
	for i, t := range st.Transactions {
		txns[i] = servers.WalletTransaction{
			Id:          t.ID.Bytes(),
			Amount:      t.Amount,
			Kind:        servers.TransactionKind(t.Kind),
			Description: t.Description,
			CreatedAt:   t.CreatedAt,
		}
		if t.OrderID != nil {
			orderID := t.OrderID.Bytes()
			txns[i].OrderId = &orderID
		}
	}

	return c.JSON(http.StatusOK, servers.WalletStatement{
		WalletId:     st.WalletID.Bytes(),
		PartnerId:    st.PartnerID.Bytes(),
		Balance:      st.Balance,
		TotalEarned:  st.TotalEarned,
		Reconciled:   st.Reconciled(),
		Transactions: txns,
	})
}
