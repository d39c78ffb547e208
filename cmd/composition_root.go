package cmd

import (
	"fmt"
	"log/slog"

	httpin "dispatch/internal/adapters/in/http"
	"dispatch/internal/adapters/out/events"
	"dispatch/internal/adapters/out/postgres"
	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/services"
	"dispatch/internal/core/ports"
	"dispatch/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	publisher  ports.EventPublisher
	uowFactory *postgres.GormUnitOfWorkFactory
	calculator services.FeeCalculator
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, publisher ports.EventPublisher, logger *slog.Logger) (*CompositionRoot, error) {
	calculator, err := services.NewFeeCalculator(cfg.FeePolicy)
	if err != nil {
		return nil, fmt.Errorf("fee policy: %w", err)
	}

	return &CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		publisher:  publisher,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB, publisher, logger),
		calculator: calculator,
		logger:     logger,
	}, nil
}

// NewEventPublisher builds the publisher selected by cfg.EventPublisher.
// "none" yields nil: events are dropped after commit.
func NewEventPublisher(cfg Config, logger *slog.Logger) (ports.EventPublisher, error) {
	switch cfg.EventPublisher {
	case PublisherKafka:
		p, err := events.NewKafkaPublisher(cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			return nil, err
		}
		return p, nil
	case PublisherRabbitMQ:
		p, err := events.NewRabbitPublisher(cfg.RabbitURL, cfg.RabbitExchange)
		if err != nil {
			return nil, err
		}
		return p, nil
	case PublisherLog:
		return events.NewLogPublisher(logger), nil
	default:
		return nil, nil
	}
}

func (c *CompositionRoot) CreateAssignPartnerCommandHandler() commands.AssignPartnerCommandHandler {
	var f commands.AssignUoWFactory = FuncAssignUoWFactory(func() commands.AssignUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignPartnerCommandHandler(f, c.cfg.OperationTimeout, c.logger)
}

func (c *CompositionRoot) CreateSettleOrderCommandHandler() commands.SettleOrderCommandHandler {
	var f commands.SettleUoWFactory = FuncSettleUoWFactory(func() commands.SettleUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSettleOrderCommandHandler(f, c.cfg.OperationTimeout, c.logger)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.calculator, c.cfg.OperationTimeout)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewChangeOrderStatusCommandHandler(f, c.cfg.OperationTimeout)
}

func (c *CompositionRoot) CreateRegisterPartnerCommandHandler() commands.RegisterPartnerCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterPartnerCommandHandler(f, c.cfg.OperationTimeout)
}

func (c *CompositionRoot) CreateUpdatePartnerPresenceCommandHandler() commands.UpdatePartnerPresenceCommandHandler {
	var f commands.PartnerUoWFactory = FuncPartnerUoWFactory(func() commands.PartnerUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePartnerPresenceCommandHandler(f, c.cfg.OperationTimeout)
}

func (c *CompositionRoot) CreateGetAvailablePartnersQueryHandler() queries.GetAvailablePartnersQueryHandler {
	return queries.NewGetAvailablePartnersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetWalletStatementQueryHandler() queries.GetWalletStatementQueryHandler {
	return queries.NewGetWalletStatementQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrdersAwaitingPartnerQueryHandler() queries.GetOrdersAwaitingPartnerQueryHandler {
	return queries.NewGetOrdersAwaitingPartnerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnreconciledWalletsQueryHandler() queries.GetUnreconciledWalletsQueryHandler {
	return queries.NewGetUnreconciledWalletsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(httpin.Handlers{
		AssignPartner:         c.CreateAssignPartnerCommandHandler(),
		SettleOrder:           c.CreateSettleOrderCommandHandler(),
		CreateOrder:           c.CreateCreateOrderCommandHandler(),
		ChangeOrderStatus:     c.CreateChangeOrderStatusCommandHandler(),
		RegisterPartner:       c.CreateRegisterPartnerCommandHandler(),
		UpdatePartnerPresence: c.CreateUpdatePartnerPresenceCommandHandler(),
		GetAvailablePartners:  c.CreateGetAvailablePartnersQueryHandler(),
		GetWalletStatement:    c.CreateGetWalletStatementQueryHandler(),
		FeeCalculator:         c.calculator,
	}, c.logger)
}

// CreateJobManager wires the jobs whose schedules are configured.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	var enabled []jobs.Job
	if c.cfg.AssignRetrySchedule != "" {
		enabled = append(enabled, jobs.NewPendingAssignmentJob(
			c.CreateGetOrdersAwaitingPartnerQueryHandler(),
			c.CreateAssignPartnerCommandHandler(),
			c.cfg.AssignRetrySchedule,
			c.logger,
		))
	}
	if c.cfg.ReconcileSchedule != "" {
		enabled = append(enabled, jobs.NewWalletReconciliationJob(
			c.CreateGetUnreconciledWalletsQueryHandler(),
			c.cfg.ReconcileSchedule,
			c.logger,
		))
	}
	return jobs.NewJobManager(enabled...)
}

// Close releases the publisher and the connection pool.
func (c *CompositionRoot) Close() error {
	if c.publisher != nil {
		if err := c.publisher.Close(); err != nil {
			c.logger.Error("failed to close event publisher", "error", err)
		}
	}
	sqlDB, err := c.gormDB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type FuncAssignUoWFactory func() commands.AssignUoW

func (f FuncAssignUoWFactory) Create() commands.AssignUoW {
	return f()
}

type FuncSettleUoWFactory func() commands.SettleUoW

func (f FuncSettleUoWFactory) Create() commands.SettleUoW {
	return f()
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncPartnerUoWFactory func() commands.PartnerUoW

func (f FuncPartnerUoWFactory) Create() commands.PartnerUoW {
	return f()
}
