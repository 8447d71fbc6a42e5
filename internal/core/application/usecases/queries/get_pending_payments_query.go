package queries

import (
	"errors"

	"github.com/shopspring/decimal"

	"courier/internal/pkg/guard"
)

var ErrGetPendingPaymentsQueryIsNotConstructed = errors.New(
	"GetPendingPaymentsQuery must be created via NewGetPendingPaymentsQuery constructor",
)

// GetPendingPaymentsQuery retrieves shipments whose payment is still
// pending, together with the sender contact to remind. Feeds the
// payment reminder job.
type GetPendingPaymentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetPendingPaymentsQuery creates a query for outstanding payments.
func NewGetPendingPaymentsQuery() GetPendingPaymentsQuery {
	return GetPendingPaymentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetPendingPaymentsQuery) Validate() error {
	return q.guard.Validate(ErrGetPendingPaymentsQueryIsNotConstructed)
}

// PendingPaymentResponse represents one outstanding payment in the
// read model.
type PendingPaymentResponse struct {
	BillNo      int64
	SenderName  string
	SenderEmail string
	Amount      decimal.Decimal
}
