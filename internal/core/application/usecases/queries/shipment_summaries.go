package queries

import (
	"database/sql"

	"github.com/google/uuid"

	"courier/internal/core/domain/model/kernel"
)

// selectShipmentSummaries is the shared projection for the dashboard
// list queries. The correlated subquery derives the current status the
// same way the aggregate does: latest updated_at, ties broken by the
// highest event id.
const selectShipmentSummaries = `
	SELECT
		s.id,
		s.bill_no,
		s.sender_name,
		s.receiver_name,
		s.courier_type,
		s.country,
		s.weight,
		COALESCE((
			SELECT te.status
			FROM tracking_events te
			WHERE te.shipment_id = s.id
			ORDER BY te.updated_at DESC, te.id DESC
			LIMIT 1
		), '') AS status,
		p.status AS payment_status,
		p.amount,
		s.agent_id IS NOT NULL AS agent_assigned,
		s.created_at
	FROM shipments s
	JOIN payments p ON p.shipment_id = s.id
`

// scanShipmentSummaries drains rows produced by selectShipmentSummaries.
func scanShipmentSummaries(rows *sql.Rows) ([]ShipmentSummaryResponse, error) {
	summaries := make([]ShipmentSummaryResponse, 0)

	for rows.Next() {
		var summary ShipmentSummaryResponse
		var id uuid.UUID

		err := rows.Scan(
			&id,
			&summary.BillNo,
			&summary.SenderName,
			&summary.ReceiverName,
			&summary.CourierType,
			&summary.Country,
			&summary.Weight,
			&summary.Status,
			&summary.PaymentStatus,
			&summary.Amount,
			&summary.AgentAssigned,
			&summary.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		summary.ID = shipmentID

		summaries = append(summaries, summary)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
