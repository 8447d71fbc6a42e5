package notifications

import (
	"fmt"
	"strings"
	"time"

	"courier/internal/core/domain/model/agent"
	"courier/internal/core/domain/model/shipment"
)

// timestampLayout matches the format customers see on the tracking page.
const timestampLayout = "2006-01-02 15:04:05 MST"

// buildEmail renders the subject and body of a status update email.
// The agent block is included whenever an agent rides along with the
// notification.
func buildEmail(shp *shipment.Shipment, assigned *agent.Agent, when time.Time) (string, string) {
	status := shp.CurrentStatus().String()
	subject := fmt.Sprintf("Courier Update: %d is now %s", shp.BillNo(), status)

	details := []string{
		fmt.Sprintf("Bill No: %d", shp.BillNo()),
		fmt.Sprintf("Status: %s", status),
		fmt.Sprintf("Time: %s", when.Format(timestampLayout)),
	}
	if location := shp.CurrentLocation(); location != "" {
		details = append(details, fmt.Sprintf("Location: %s", location))
	}

	sender, receiver := shp.Sender(), shp.Receiver()
	details = append(details,
		fmt.Sprintf("Sender: %s <%s> | %s", sender.Name(), sender.Email(), sender.Phone()),
		fmt.Sprintf("Receiver: %s <%s> | %s", receiver.Name(), receiver.Email(), receiver.Phone()),
	)

	if assigned != nil {
		details = append(details,
			"--- Delivery Agent Details ---",
			fmt.Sprintf("Name: %s", assigned.Name()),
			fmt.Sprintf("Email: %s", assigned.Email()),
			fmt.Sprintf("Phone: %s", assigned.Phone()),
		)
	}

	return subject, strings.Join(details, "\n")
}

// buildSMS renders the short-form status update. The agent contact is
// appended only while the shipment is out for delivery.
func buildSMS(shp *shipment.Shipment, assigned *agent.Agent, when time.Time) string {
	status := shp.CurrentStatus()
	msg := fmt.Sprintf("Courier %d: %s at %s.", shp.BillNo(), status, when.Format(timestampLayout))
	if assigned != nil && status == shipment.OutForDelivery {
		msg += fmt.Sprintf(" Agent: %s (%s).", assigned.Name(), assigned.Phone())
	}
	return msg
}
