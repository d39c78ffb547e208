// Package http exposes the dispatch engine over the JSON API described in
// api/openapi.yml. Routing and parameter binding live in the generated servers
// package; this package maps requests onto commands and queries.
package http

//go:generate go run github.com/oapi-codegen/oapi-codegen/v2/cmd/oapi-codegen@v2.4.1 --config=../../../../api/oapi-codegen.yml ../../../../api/openapi.yml

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/order"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// Use case contracts the server depends on. The handlers in usecases satisfy them.
type (
	AssignPartnerHandler interface {
		Handle(ctx context.Context, cmd commands.AssignPartnerCommand) (commands.AssignPartnerResult, error)
	}

	SettleOrderHandler interface {
		Handle(ctx context.Context, cmd commands.SettleOrderCommand) (commands.SettleOrderResult, error)
	}

	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (commands.CreateOrderResult, error)
	}

	ChangeOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.ChangeOrderStatusCommand) (order.Status, error)
	}

	RegisterPartnerHandler interface {
		Handle(ctx context.Context, cmd commands.RegisterPartnerCommand) (commands.RegisterPartnerResult, error)
	}

	UpdatePartnerPresenceHandler interface {
		Handle(ctx context.Context, cmd commands.UpdatePartnerPresenceCommand) error
	}

	GetAvailablePartnersHandler interface {
		Handle(ctx context.Context, q queries.GetAvailablePartnersQuery) ([]queries.GetAvailablePartnersQueryResponse, error)
	}

	GetWalletStatementHandler interface {
		Handle(ctx context.Context, q queries.GetWalletStatementQuery) (queries.GetWalletStatementQueryResponse, error)
	}
)

// Handlers groups the use cases served over HTTP.
type Handlers struct {
	AssignPartner         AssignPartnerHandler
	SettleOrder           SettleOrderHandler
	CreateOrder           CreateOrderHandler
	ChangeOrderStatus     ChangeOrderStatusHandler
	RegisterPartner       RegisterPartnerHandler
	UpdatePartnerPresence UpdatePartnerPresenceHandler
	GetAvailablePartners  GetAvailablePartnersHandler
	GetWalletStatement    GetWalletStatementHandler
	FeeCalculator         services.FeeCalculator
}

var _ servers.ServerInterface = (*Server)(nil)

// Server implements servers.ServerInterface on top of the application use cases.
type Server struct {
	h      Handlers
	logger *slog.Logger
}

func NewServer(h Handlers, logger *slog.Logger) *Server {
	return &Server{
		h:      h,
		logger: logger.With("component", "http"),
	}
}

// RegisterRoutes mounts the API on e behind the OpenAPI request validator and
// serves the document at /swagger/.
func (s *Server) RegisterRoutes(e *echo.Echo) error {
	doc, err := servers.GetSwagger()
	if err != nil {
		return fmt.Errorf("load openapi document: %w", err)
	}
	// Requests are matched on path only; the listen address is deployment-specific.
	doc.Servers = nil

	validator, err := requestValidator(doc)
	if err != nil {
		return err
	}
	e.Use(validator)

	servers.RegisterHandlers(e, s)
	registerDocs(e, doc)
	return nil
}

// GetHealth handles GET /health.
func (s *Server) GetHealth(c echo.Context) error {
	return c.String(http.StatusOK, "healthy")
}
