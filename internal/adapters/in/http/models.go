package http

import "time"

// PartyRequest carries one side's contact record on shipment creation.
type PartyRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// CreateShipmentRequest is the body of POST /api/v1/shipments.
type CreateShipmentRequest struct {
	Sender      PartyRequest `json:"sender"`
	Receiver    PartyRequest `json:"receiver"`
	WeightKg    string       `json:"weight_kg"`
	CourierType string       `json:"courier_type"`
	Country     string       `json:"country"`
}

// CreateShipmentResponse reports the registered shipment's identifiers.
type CreateShipmentResponse struct {
	ShipmentID string `json:"shipment_id"`
	BillNo     int64  `json:"bill_no"`
}

// CompletePaymentRequest is the body of POST /api/v1/shipments/:id/payment.
// Instrument fields irrelevant to the mode may be omitted.
type CompletePaymentRequest struct {
	Mode       string `json:"mode"`
	CardNumber string `json:"card_number,omitempty"`
	CardExpiry string `json:"card_expiry,omitempty"`
	CardCVV    string `json:"card_cvv,omitempty"`
	UPIID      string `json:"upi_id,omitempty"`
}

// AssignAgentRequest is the body of POST /api/v1/shipments/:id/agent.
type AssignAgentRequest struct {
	AgentID string `json:"agent_id"`
}

// UpdateStatusRequest is the body of POST /api/v1/shipments/:id/status.
type UpdateStatusRequest struct {
	Status   string `json:"status"`
	Location string `json:"location,omitempty"`
}

// RegisterAgentRequest is the body of POST /api/v1/agents.
type RegisterAgentRequest struct {
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone,omitempty"`
	AssignedArea string `json:"assigned_area,omitempty"`
}

// RegisterAgentResponse reports the new agent's identifier.
type RegisterAgentResponse struct {
	AgentID string `json:"agent_id"`
}

// AddPricingRuleRequest is the body of POST /api/v1/pricing-rules.
// Weights are kilograms, prices are currency amounts; both travel as
// decimal strings to avoid float rounding.
type AddPricingRuleRequest struct {
	CourierType string `json:"courier_type"`
	MinWeightKg string `json:"min_weight_kg"`
	MaxWeightKg string `json:"max_weight_kg"`
	BasePrice   string `json:"base_price"`
	PricePerKg  string `json:"price_per_kg"`
}

// NotificationConfigRequest is the body of PUT /api/v1/notifications/config.
// Empty fields leave the corresponding environment default in effect.
type NotificationConfigRequest struct {
	SMTPHost     string `json:"smtp_host,omitempty"`
	SMTPPort     int    `json:"smtp_port,omitempty"`
	SMTPUsername string `json:"smtp_username,omitempty"`
	SMTPPassword string `json:"smtp_password,omitempty"`
	SMTPUseTLS   *bool  `json:"smtp_use_tls,omitempty"`

	SMSAccountSID string `json:"sms_account_sid,omitempty"`
	SMSAuthToken  string `json:"sms_auth_token,omitempty"`
	SMSFromNumber string `json:"sms_from_number,omitempty"`
}

// NotificationConfigResponse echoes stored overrides back to the admin
// settings screen. Secrets are reported as set or unset only.
type NotificationConfigResponse struct {
	SMTPHost        string `json:"smtp_host"`
	SMTPPort        int    `json:"smtp_port"`
	SMTPUsername    string `json:"smtp_username"`
	SMTPPasswordSet bool   `json:"smtp_password_set"`
	SMTPUseTLS      *bool  `json:"smtp_use_tls"`

	SMSAccountSID   string `json:"sms_account_sid"`
	SMSAuthTokenSet bool   `json:"sms_auth_token_set"`
	SMSFromNumber   string `json:"sms_from_number"`
}

// NotificationStatusResponse reports which channels are usable with the
// effective, merged configuration.
type NotificationStatusResponse struct {
	EmailConfigured bool `json:"email_configured"`
	SMSConfigured   bool `json:"sms_configured"`
}

// TestNotificationRequest is the body of POST /api/v1/notifications/test.
// Channel is "email" or "sms".
type TestNotificationRequest struct {
	Channel string `json:"channel"`
	To      string `json:"to"`
}

// TrackingEvent represents one tracking log entry, newest first.
type TrackingEvent struct {
	TrackID   int64     `json:"track_id"`
	Status    string    `json:"status"`
	Location  string    `json:"location"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TrackShipmentResponse is the public tracking view for a bill number.
type TrackShipmentResponse struct {
	ShipmentID   string          `json:"shipment_id"`
	BillNo       int64           `json:"bill_no"`
	SenderName   string          `json:"sender_name"`
	ReceiverName string          `json:"receiver_name"`
	CourierType  string          `json:"courier_type"`
	Country      string          `json:"country"`
	Status       string          `json:"status"`
	Events       []TrackingEvent `json:"events"`
}

// ShipmentSummary represents one shipment row in the dashboard views.
type ShipmentSummary struct {
	ID            string    `json:"id"`
	BillNo        int64     `json:"bill_no"`
	SenderName    string    `json:"sender_name"`
	ReceiverName  string    `json:"receiver_name"`
	CourierType   string    `json:"courier_type"`
	Country       string    `json:"country"`
	WeightKg      string    `json:"weight_kg"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	Amount        string    `json:"amount"`
	AgentAssigned bool      `json:"agent_assigned"`
	CreatedAt     time.Time `json:"created_at"`
}

// Agent represents one delivery agent in the admin views.
type Agent struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	AssignedArea string `json:"assigned_area"`
}

// Error is the uniform error body for all failed requests.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
