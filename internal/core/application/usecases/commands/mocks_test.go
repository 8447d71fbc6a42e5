package commands_test

import (
	"context"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/agent"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/notification"
	"courier/internal/core/domain/model/payment"
	"courier/internal/core/domain/model/pricing"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockShipmentRepository struct{ mock.Mock }

func (m *MockShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

func (m *MockShipmentRepository) GetByBillNo(ctx context.Context, billNo int64) (*shipment.Shipment, error) {
	args := m.Called(ctx, billNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*shipment.Shipment), args.Error(1)
}

type MockPaymentRepository struct{ mock.Mock }

func (m *MockPaymentRepository) Add(ctx context.Context, aggregate *payment.Payment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPaymentRepository) Update(ctx context.Context, aggregate *payment.Payment) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockPaymentRepository) GetByShipmentID(ctx context.Context, shipmentID kernel.UUID) (*payment.Payment, error) {
	args := m.Called(ctx, shipmentID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*payment.Payment), args.Error(1)
}

type MockAgentRepository struct{ mock.Mock }

func (m *MockAgentRepository) Add(ctx context.Context, aggregate *agent.Agent) error {
	args := m.Called(ctx, aggregate)
	return args.Error(0)
}

func (m *MockAgentRepository) Get(ctx context.Context, id kernel.UUID) (*agent.Agent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*agent.Agent), args.Error(1)
}

func (m *MockAgentRepository) GetAll(ctx context.Context) ([]*agent.Agent, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*agent.Agent), args.Error(1)
}

type MockPricingRepository struct{ mock.Mock }

func (m *MockPricingRepository) Add(ctx context.Context, rule *pricing.Rule) error {
	args := m.Called(ctx, rule)
	return args.Error(0)
}

func (m *MockPricingRepository) GetByCourierType(ctx context.Context, courierType shipment.Type) ([]*pricing.Rule, error) {
	args := m.Called(ctx, courierType)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*pricing.Rule), args.Error(1)
}

type MockConfigRepository struct{ mock.Mock }

func (m *MockConfigRepository) Get(ctx context.Context) (*notification.Config, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Config), args.Error(1)
}

func (m *MockConfigRepository) Save(ctx context.Context, config *notification.Config) error {
	args := m.Called(ctx, config)
	return args.Error(0)
}

// MockNotifier records post-commit notification calls.
type MockNotifier struct{ mock.Mock }

func (m *MockNotifier) ShipmentStatusChanged(ctx context.Context, aggregate *shipment.Shipment, assigned *agent.Agent) {
	m.Called(ctx, aggregate, assigned)
}

// MockUoW satisfies every composed unit-of-work interface the command
// handlers consume.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) ShipmentRepository() ports.ShipmentRepository {
	args := m.Called()
	return args.Get(0).(ports.ShipmentRepository)
}

func (m *MockUoW) PaymentRepository() ports.PaymentRepository {
	args := m.Called()
	return args.Get(0).(ports.PaymentRepository)
}

func (m *MockUoW) AgentRepository() ports.AgentRepository {
	args := m.Called()
	return args.Get(0).(ports.AgentRepository)
}

func (m *MockUoW) PricingRepository() ports.PricingRepository {
	args := m.Called()
	return args.Get(0).(ports.PricingRepository)
}

func (m *MockUoW) NotificationConfigRepository() ports.NotificationConfigRepository {
	args := m.Called()
	return args.Get(0).(ports.NotificationConfigRepository)
}

type MockCreateShipmentUoWFactory struct{ mock.Mock }

func (m *MockCreateShipmentUoWFactory) Create() commands.CreateShipmentUoW {
	args := m.Called()
	return args.Get(0).(commands.CreateShipmentUoW)
}

type MockPaymentUoWFactory struct{ mock.Mock }

func (m *MockPaymentUoWFactory) Create() commands.PaymentUoW {
	args := m.Called()
	return args.Get(0).(commands.PaymentUoW)
}

type MockShipmentAgentUoWFactory struct{ mock.Mock }

func (m *MockShipmentAgentUoWFactory) Create() commands.ShipmentAgentUoW {
	args := m.Called()
	return args.Get(0).(commands.ShipmentAgentUoW)
}

type MockAgentUoWFactory struct{ mock.Mock }

func (m *MockAgentUoWFactory) Create() commands.AgentUoW {
	args := m.Called()
	return args.Get(0).(commands.AgentUoW)
}

type MockConfigUoWFactory struct{ mock.Mock }

func (m *MockConfigUoWFactory) Create() commands.ConfigUoW {
	args := m.Called()
	return args.Get(0).(commands.ConfigUoW)
}

type MockInvalidator struct{ mock.Mock }

func (m *MockInvalidator) Invalidate() {
	m.Called()
}
