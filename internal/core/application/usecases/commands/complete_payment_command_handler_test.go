package commands_test

import (
	"testing"
	"time"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/payment"
	"courier/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func makeCaller(t *testing.T, id kernel.UUID, role kernel.Role) kernel.Caller {
	t.Helper()
	caller, err := kernel.NewCaller(id, role)
	require.NoError(t, err)
	return caller
}

func makePendingPayment(t *testing.T, shipmentID, ownerID kernel.UUID) *payment.Payment {
	t.Helper()
	p, err := payment.NewPayment(kernel.NewUUID(), shipmentID, ownerID,
		decimal.NewFromInt(65), time.Now())
	require.NoError(t, err)
	return p
}

func TestCompletePaymentCommandHandler_Handle_OwnerWithUPI(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	stored := newStoredShipment(t, ownerID)
	pay := makePendingPayment(t, stored.ID(), ownerID)

	cmd, err := commands.NewCompletePaymentCommand(
		stored.ID(), makeCaller(t, ownerID, kernel.RoleUser),
		payment.UPI, "", "", "", "alice@okbank")
	require.NoError(t, err)

	shipments := new(MockShipmentRepository)
	payments := new(MockPaymentRepository)
	uow := new(MockUoW)

	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipments).Once(),
		shipments.On("GetForUpdate", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("PaymentRepository").Return(payments).Once(),
		payments.On("GetByShipmentID", mock.Anything, stored.ID()).Return(pay, nil).Once(),
		uow.On("PaymentRepository").Return(payments).Once(),
		payments.On("Update", mock.Anything, pay).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompletePaymentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	require.Equal(t, payment.StatusCompleted, pay.Status())
	require.NotNil(t, pay.Mode())
	require.Equal(t, payment.UPI, *pay.Mode())
	uow.AssertExpectations(t)
}

func TestCompletePaymentCommandHandler_Handle_StrangerRejected(t *testing.T) {
	ctx := t.Context()
	stored := newStoredShipment(t, kernel.NewUUID())

	cmd, err := commands.NewCompletePaymentCommand(
		stored.ID(), makeCaller(t, kernel.NewUUID(), kernel.RoleUser),
		payment.CashOnDelivery, "", "", "", "")
	require.NoError(t, err)

	shipments := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipments).Once(),
		shipments.On("GetForUpdate", mock.Anything, stored.ID()).Return(stored, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompletePaymentCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrNotAuthorized)
	uow.AssertExpectations(t)
}

func TestCompletePaymentCommandHandler_Handle_AdminMayCompleteForAnyOwner(t *testing.T) {
	ctx := t.Context()
	stored := newStoredShipment(t, kernel.NewUUID())
	pay := makePendingPayment(t, stored.ID(), stored.OwnerID())

	cmd, err := commands.NewCompletePaymentCommand(
		stored.ID(), makeCaller(t, kernel.NewUUID(), kernel.RoleAdmin),
		payment.CashOnDelivery, "", "", "", "")
	require.NoError(t, err)

	shipments := new(MockShipmentRepository)
	payments := new(MockPaymentRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipments).Once()
	shipments.On("GetForUpdate", mock.Anything, stored.ID()).Return(stored, nil).Once()
	uow.On("PaymentRepository").Return(payments).Twice()
	payments.On("GetByShipmentID", mock.Anything, stored.ID()).Return(pay, nil).Once()
	payments.On("Update", mock.Anything, pay).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompletePaymentCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	require.Equal(t, payment.StatusCompleted, pay.Status())
}

func TestCompletePaymentCommandHandler_Handle_ShipmentNotFound(t *testing.T) {
	ctx := t.Context()
	shipmentID := kernel.NewUUID()

	cmd, err := commands.NewCompletePaymentCommand(
		shipmentID, makeCaller(t, kernel.NewUUID(), kernel.RoleUser),
		payment.NetBanking, "", "", "", "")
	require.NoError(t, err)

	shipments := new(MockShipmentRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ShipmentRepository").Return(shipments).Once(),
		shipments.On("GetForUpdate", mock.Anything, shipmentID).
			Return(nil, errs.NewObjectNotFoundError("shipment", shipmentID)).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompletePaymentCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, commands.ErrShipmentNotFound)
}

func TestCompletePaymentCommandHandler_Handle_ExpiredCardFailsBeforeTransaction(t *testing.T) {
	ctx := t.Context()

	cmd, err := commands.NewCompletePaymentCommand(
		kernel.NewUUID(), makeCaller(t, kernel.NewUUID(), kernel.RoleUser),
		payment.CreditCard, "4111111111111111", "01/20", "123", "")
	require.NoError(t, err)

	factory := new(MockPaymentUoWFactory)

	h := commands.NewCompletePaymentCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.Error(t, err)
	require.Contains(t, err.Error(), "expired")
	factory.AssertNotCalled(t, "Create")
}

func TestCompletePaymentCommandHandler_Handle_AlreadySettled(t *testing.T) {
	ctx := t.Context()
	ownerID := kernel.NewUUID()
	stored := newStoredShipment(t, ownerID)
	pay := makePendingPayment(t, stored.ID(), ownerID)
	method, err := payment.NewSimpleMethod(payment.CashOnDelivery)
	require.NoError(t, err)
	require.NoError(t, pay.Complete(method, time.Now()))

	cmd, err := commands.NewCompletePaymentCommand(
		stored.ID(), makeCaller(t, ownerID, kernel.RoleUser),
		payment.NetBanking, "", "", "", "")
	require.NoError(t, err)

	shipments := new(MockShipmentRepository)
	payments := new(MockPaymentRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ShipmentRepository").Return(shipments).Once()
	shipments.On("GetForUpdate", mock.Anything, stored.ID()).Return(stored, nil).Once()
	uow.On("PaymentRepository").Return(payments).Once()
	payments.On("GetByShipmentID", mock.Anything, stored.ID()).Return(pay, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockPaymentUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCompletePaymentCommandHandler(factory)
	err = h.Handle(ctx, cmd)

	require.ErrorIs(t, err, payment.ErrPaymentNotPending)
	payments.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}
