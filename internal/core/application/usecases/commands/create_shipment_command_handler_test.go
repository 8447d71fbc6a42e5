package commands_test

import (
	"testing"
	"time"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/pricing"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func makeParty(t *testing.T, name string) shipment.Party {
	t.Helper()
	p, err := shipment.NewParty(name, name+"@example.com", "+911234567890", name+" street 1")
	require.NoError(t, err)
	return p
}

func makeWeight(t *testing.T, kg string) kernel.Weight {
	t.Helper()
	w, err := kernel.NewWeight(decimal.RequireFromString(kg))
	require.NoError(t, err)
	return w
}

func makeRule(t *testing.T, id int64) *pricing.Rule {
	t.Helper()
	r, err := pricing.RestoreRule(id, shipment.Domestic,
		decimal.Zero, decimal.NewFromInt(50),
		decimal.NewFromInt(40), decimal.NewFromInt(10))
	require.NoError(t, err)
	return r
}

func makeCreateShipmentCommand(t *testing.T) commands.CreateShipmentCommand {
	t.Helper()
	cmd, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), kernel.NewUUID(),
		makeParty(t, "sender"), makeParty(t, "receiver"),
		makeWeight(t, "2.5"), shipment.Domestic, "India")
	require.NoError(t, err)
	return cmd
}

func TestCreateShipmentCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := makeCreateShipmentCommand(t)

	shipments := new(MockShipmentRepository)
	payments := new(MockPaymentRepository)
	rules := new(MockPricingRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PricingRepository").Return(rules).Once(),
		rules.On("GetByCourierType", mock.Anything, shipment.Domestic).
			Return([]*pricing.Rule{makeRule(t, 1)}, nil).Once(),
		uow.On("ShipmentRepository").Return(shipments).Once(),
		shipments.On("Add", mock.Anything, mock.AnythingOfType("*shipment.Shipment")).Return(nil).Once(),
		uow.On("PaymentRepository").Return(payments).Once(),
		payments.On("Add", mock.Anything, mock.AnythingOfType("*payment.Payment")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	notifier.On("ShipmentStatusChanged", mock.Anything,
		mock.AnythingOfType("*shipment.Shipment"), mock.Anything).Once()

	factory := new(MockCreateShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory, notifier)
	billNo, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	require.Positive(t, billNo)
	shipments.AssertExpectations(t)
	payments.AssertExpectations(t)
	rules.AssertExpectations(t)
	uow.AssertExpectations(t)
	notifier.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateShipmentCommandHandler_Handle_NoPricingRule(t *testing.T) {
	ctx := t.Context()
	cmd := makeCreateShipmentCommand(t)

	rules := new(MockPricingRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("PricingRepository").Return(rules).Once(),
		rules.On("GetByCourierType", mock.Anything, shipment.Domestic).
			Return([]*pricing.Rule{}, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockCreateShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory, notifier)
	_, err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, services.ErrPricingRuleNotFound)
	uow.AssertExpectations(t)
	notifier.AssertNotCalled(t, "ShipmentStatusChanged", mock.Anything, mock.Anything, mock.Anything)
}

func TestCreateShipmentCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateShipmentCommand{} // not constructed properly

	factory := new(MockCreateShipmentUoWFactory)
	notifier := new(MockNotifier)

	h := commands.NewCreateShipmentCommandHandler(factory, notifier)
	_, err := h.Handle(ctx, cmd)

	require.Error(t, err)
	factory.AssertNotCalled(t, "Create")
}

func TestCreateShipmentCommandHandler_Handle_PersistsPaymentFromResolvedPrice(t *testing.T) {
	ctx := t.Context()
	cmd := makeCreateShipmentCommand(t)

	shipments := new(MockShipmentRepository)
	payments := new(MockPaymentRepository)
	rules := new(MockPricingRepository)
	uow := new(MockUoW)
	notifier := new(MockNotifier)

	// The rule's base price; its per-kg rate must not enter the amount.
	expected := decimal.NewFromInt(40)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("PricingRepository").Return(rules).Once()
	rules.On("GetByCourierType", mock.Anything, shipment.Domestic).
		Return([]*pricing.Rule{makeRule(t, 1)}, nil).Once()
	uow.On("ShipmentRepository").Return(shipments).Once()
	shipments.On("Add", mock.Anything, mock.Anything).Return(nil).Once()
	uow.On("PaymentRepository").Return(payments).Once()
	payments.On("Add", mock.Anything, mock.MatchedBy(func(p interface{}) bool {
		pay, ok := p.(interface{ Amount() decimal.Decimal })
		return ok && pay.Amount().Equal(expected)
	})).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	notifier.On("ShipmentStatusChanged", mock.Anything, mock.Anything, mock.Anything).Once()

	factory := new(MockCreateShipmentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateShipmentCommandHandler(factory, notifier)
	_, err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	payments.AssertExpectations(t)
}

func newStoredShipment(t *testing.T, owner kernel.UUID) *shipment.Shipment {
	t.Helper()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	s, err := shipment.NewShipment(
		kernel.NewUUID(), owner,
		makeParty(t, "sender"), makeParty(t, "receiver"),
		makeWeight(t, "2.5"), shipment.Domestic, "India", 1, now)
	require.NoError(t, err)
	return s
}
