package cmd

import (
	"log/slog"
	"time"

	"gorm.io/gorm"

	"courier/internal/adapters/out/notify"
	"courier/internal/adapters/out/postgres"
	"courier/internal/adapters/out/postgres/configrepo"
	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/jobs"
	"courier/internal/notifications"
)

// CompositionRoot wires adapters, use cases, and background workers.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	store      *notifications.Store
	dispatcher *notifications.Dispatcher
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph from the configuration and
// an open database handle.
func NewCompositionRoot(config Config, gormDB *gorm.DB, tz *time.Location, logger *slog.Logger) CompositionRoot {
	store := notifications.NewStore(
		config.Notification,
		configrepo.NewGormNotificationConfigRepository(gormDB),
		logger,
	)
	dispatcher := notifications.NewDispatcher(
		store,
		notify.NewSMTPSender(),
		notify.NewRESTSMSSender(nil),
		tz,
		logger,
	)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		store:      store,
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// Dispatcher exposes the notification dispatcher for shutdown flushing
// and the admin test endpoint.
func (c *CompositionRoot) Dispatcher() *notifications.Dispatcher {
	return c.dispatcher
}

// Store exposes the effective notification settings.
func (c *CompositionRoot) Store() *notifications.Store {
	return c.store
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	var f commands.CreateShipmentUoWFactory = FuncCreateShipmentUoWFactory(func() commands.CreateShipmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateShipmentCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateCompletePaymentCommandHandler() commands.CompletePaymentCommandHandler {
	var f commands.PaymentUoWFactory = FuncPaymentUoWFactory(func() commands.PaymentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompletePaymentCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignAgentCommandHandler() commands.AssignAgentCommandHandler {
	var f commands.ShipmentAgentUoWFactory = FuncShipmentAgentUoWFactory(func() commands.ShipmentAgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignAgentCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateUpdateStatusCommandHandler() commands.UpdateStatusCommandHandler {
	var f commands.ShipmentAgentUoWFactory = FuncShipmentAgentUoWFactory(func() commands.ShipmentAgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateStatusCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateMarkDeliveredCommandHandler() commands.MarkDeliveredCommandHandler {
	var f commands.ShipmentAgentUoWFactory = FuncShipmentAgentUoWFactory(func() commands.ShipmentAgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkDeliveredCommandHandler(f, c.dispatcher)
}

func (c *CompositionRoot) CreateRegisterAgentCommandHandler() commands.RegisterAgentCommandHandler {
	var f commands.AgentUoWFactory = FuncAgentUoWFactory(func() commands.AgentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterAgentCommandHandler(f)
}

func (c *CompositionRoot) CreateAddPricingRuleCommandHandler() commands.AddPricingRuleCommandHandler {
	var f commands.PricingUoWFactory = FuncPricingUoWFactory(func() commands.PricingUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddPricingRuleCommandHandler(f)
}

func (c *CompositionRoot) CreateSaveNotificationConfigCommandHandler() commands.SaveNotificationConfigCommandHandler {
	var f commands.ConfigUoWFactory = FuncConfigUoWFactory(func() commands.ConfigUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSaveNotificationConfigCommandHandler(f, c.store)
}

func (c *CompositionRoot) CreateTrackShipmentQueryHandler() queries.TrackShipmentQueryHandler {
	return queries.NewTrackShipmentQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTrackingHistoryQueryHandler() queries.GetTrackingHistoryQueryHandler {
	return queries.NewGetTrackingHistoryQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetShipmentsByOwnerQueryHandler() queries.GetShipmentsByOwnerQueryHandler {
	return queries.NewGetShipmentsByOwnerQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllShipmentsQueryHandler() queries.GetAllShipmentsQueryHandler {
	return queries.NewGetAllShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetUnassignedShipmentsQueryHandler() queries.GetUnassignedShipmentsQueryHandler {
	return queries.NewGetUnassignedShipmentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAllAgentsQueryHandler() queries.GetAllAgentsQueryHandler {
	return queries.NewGetAllAgentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingPaymentsQueryHandler() queries.GetPendingPaymentsQueryHandler {
	return queries.NewGetPendingPaymentsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetNotificationConfigQueryHandler() queries.GetNotificationConfigQueryHandler {
	return queries.NewGetNotificationConfigQueryHandler(c.gormDB)
}

// CreateJobManager wires the scheduled background jobs.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetPendingPaymentsQueryHandler(), c.dispatcher, c.logger)
}

type FuncCreateShipmentUoWFactory func() commands.CreateShipmentUoW

func (f FuncCreateShipmentUoWFactory) Create() commands.CreateShipmentUoW {
	return f()
}

type FuncPaymentUoWFactory func() commands.PaymentUoW

func (f FuncPaymentUoWFactory) Create() commands.PaymentUoW {
	return f()
}

type FuncShipmentAgentUoWFactory func() commands.ShipmentAgentUoW

func (f FuncShipmentAgentUoWFactory) Create() commands.ShipmentAgentUoW {
	return f()
}

type FuncAgentUoWFactory func() commands.AgentUoW

func (f FuncAgentUoWFactory) Create() commands.AgentUoW {
	return f()
}

type FuncPricingUoWFactory func() commands.PricingUoW

func (f FuncPricingUoWFactory) Create() commands.PricingUoW {
	return f()
}

type FuncConfigUoWFactory func() commands.ConfigUoW

func (f FuncConfigUoWFactory) Create() commands.ConfigUoW {
	return f()
}
