package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetPendingPaymentsQueryHandler retrieves outstanding payments with
// the sender contact details the reminder email needs.
type GetPendingPaymentsQueryHandler struct {
	db *gorm.DB
}

// NewGetPendingPaymentsQueryHandler creates a handler for outstanding payment queries.
func NewGetPendingPaymentsQueryHandler(db *gorm.DB) GetPendingPaymentsQueryHandler {
	return GetPendingPaymentsQueryHandler{db: db}
}

// Handle executes the query and returns outstanding payments, oldest
// shipment first so the longest-waiting reminders go out first.
func (h GetPendingPaymentsQueryHandler) Handle(
	ctx context.Context,
	query GetPendingPaymentsQuery,
) ([]PendingPaymentResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	pending := make([]PendingPaymentResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			s.bill_no,
			s.sender_name,
			s.sender_email,
			p.amount
		FROM shipments s
		JOIN payments p ON p.shipment_id = s.id
		WHERE p.status = ?
		ORDER BY s.created_at
	`, "Pending").Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var item PendingPaymentResponse

		err = rows.Scan(
			&item.BillNo,
			&item.SenderName,
			&item.SenderEmail,
			&item.Amount,
		)
		if err != nil {
			return nil, err
		}

		pending = append(pending, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return pending, nil
}
