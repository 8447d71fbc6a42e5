// Package http exposes the shipment lifecycle over a REST surface.
// It coordinates between HTTP handlers and application use cases.
package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"courier/internal/core/application/usecases/commands"
	"courier/internal/core/application/usecases/queries"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/notification"
	"courier/internal/core/domain/model/payment"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/notifications"
)

// CommandHandlers groups the write-side use cases the server fronts.
type CommandHandlers struct {
	CreateShipment         commands.CreateShipmentCommandHandler
	CompletePayment        commands.CompletePaymentCommandHandler
	AssignAgent            commands.AssignAgentCommandHandler
	UpdateStatus           commands.UpdateStatusCommandHandler
	MarkDelivered          commands.MarkDeliveredCommandHandler
	RegisterAgent          commands.RegisterAgentCommandHandler
	AddPricingRule         commands.AddPricingRuleCommandHandler
	SaveNotificationConfig commands.SaveNotificationConfigCommandHandler
}

// QueryHandlers groups the read-side use cases the server fronts.
type QueryHandlers struct {
	TrackShipment       queries.TrackShipmentQueryHandler
	TrackingHistory     queries.GetTrackingHistoryQueryHandler
	ShipmentsByOwner    queries.GetShipmentsByOwnerQueryHandler
	AllShipments        queries.GetAllShipmentsQueryHandler
	UnassignedShipments queries.GetUnassignedShipmentsQueryHandler
	AllAgents           queries.GetAllAgentsQueryHandler
	PendingPayments     queries.GetPendingPaymentsQueryHandler
	NotificationConfig  queries.GetNotificationConfigQueryHandler
}

// Server wires the REST routes to the application layer.
type Server struct {
	cmd        CommandHandlers
	qry        QueryHandlers
	settings   *notifications.Store
	dispatcher *notifications.Dispatcher
}

// NewServer creates a new HTTP server with the required command and
// query handlers.
func NewServer(
	cmd CommandHandlers,
	qry QueryHandlers,
	settings *notifications.Store,
	dispatcher *notifications.Dispatcher,
) *Server {
	return &Server{
		cmd:        cmd,
		qry:        qry,
		settings:   settings,
		dispatcher: dispatcher,
	}
}

// RegisterRoutes mounts all routes under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments", s.GetAllShipments)
	api.GET("/shipments/mine", s.GetMyShipments)
	api.GET("/shipments/unassigned", s.GetUnassignedShipments)
	api.POST("/shipments/:id/payment", s.CompletePayment)
	api.POST("/shipments/:id/agent", s.AssignAgent)
	api.POST("/shipments/:id/status", s.UpdateStatus)
	api.POST("/shipments/:id/delivered", s.MarkDelivered)
	api.GET("/shipments/:id/history", s.GetTrackingHistory)

	api.GET("/track/:billNo", s.TrackShipment)

	api.POST("/agents", s.RegisterAgent)
	api.GET("/agents", s.GetAllAgents)

	api.POST("/pricing-rules", s.AddPricingRule)

	api.GET("/payments/pending", s.GetPendingPayments)

	api.GET("/notifications/config", s.GetNotificationConfig)
	api.PUT("/notifications/config", s.SaveNotificationConfig)
	api.GET("/notifications/status", s.GetNotificationStatus)
	api.POST("/notifications/test", s.SendTestNotification)
}

// CreateShipment handles POST /api/v1/shipments. The caller becomes
// the shipment's owner.
func (s *Server) CreateShipment(ctx echo.Context) error {
	caller, err := callerFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req CreateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	sender, err := shipment.NewParty(req.Sender.Name, req.Sender.Email, req.Sender.Phone, req.Sender.Address)
	if err != nil {
		return writeError(ctx, err)
	}
	receiver, err := shipment.NewParty(req.Receiver.Name, req.Receiver.Email, req.Receiver.Phone, req.Receiver.Address)
	if err != nil {
		return writeError(ctx, err)
	}

	kg, err := decimal.NewFromString(req.WeightKg)
	if err != nil {
		return writeBadRequest(ctx, "weight_kg must be a decimal number")
	}
	weight, err := kernel.NewWeight(kg)
	if err != nil {
		return writeError(ctx, err)
	}

	courierType, err := shipment.TypeFromString(req.CourierType)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(), caller.ID(), sender, receiver, weight, courierType, req.Country)
	if err != nil {
		return writeError(ctx, err)
	}

	billNo, err := s.cmd.CreateShipment.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateShipmentResponse{
		ShipmentID: cmd.ShipmentID().String(),
		BillNo:     billNo,
	})
}

// CompletePayment handles POST /api/v1/shipments/:id/payment.
func (s *Server) CompletePayment(ctx echo.Context) error {
	caller, err := callerFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req CompletePaymentRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	mode, err := payment.ModeFromString(req.Mode)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewCompletePaymentCommand(
		shipmentID, caller, mode, req.CardNumber, req.CardExpiry, req.CardCVV, req.UPIID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.cmd.CompletePayment.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AssignAgent handles POST /api/v1/shipments/:id/agent.
func (s *Server) AssignAgent(ctx echo.Context) error {
	caller, err := callerFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req AssignAgentRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	agentID, err := kernel.UUIDFromString(req.AgentID)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewAssignAgentCommand(shipmentID, agentID, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.cmd.AssignAgent.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// UpdateStatus handles POST /api/v1/shipments/:id/status.
func (s *Server) UpdateStatus(ctx echo.Context) error {
	caller, err := callerFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	var req UpdateStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	target, err := shipment.StatusFromString(req.Status)
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewUpdateStatusCommand(shipmentID, caller, target, req.Location)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.cmd.UpdateStatus.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// MarkDelivered handles POST /api/v1/shipments/:id/delivered.
func (s *Server) MarkDelivered(ctx echo.Context) error {
	caller, err := callerFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	cmd, err := commands.NewMarkDeliveredCommand(shipmentID, caller)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.cmd.MarkDelivered.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetTrackingHistory handles GET /api/v1/shipments/:id/history.
func (s *Server) GetTrackingHistory(ctx echo.Context) error {
	if _, err := callerFromRequest(ctx); err != nil {
		return writeError(ctx, err)
	}

	shipmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetTrackingHistoryQuery(shipmentID)
	if err != nil {
		return writeError(ctx, err)
	}

	events, err := s.qry.TrackingHistory.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, trackingEvents(events))
}

// TrackShipment handles GET /api/v1/track/:billNo. Public: tracking by
// bill number needs no caller identity.
func (s *Server) TrackShipment(ctx echo.Context) error {
	billNo, err := parseBillNo(ctx.Param("billNo"))
	if err != nil {
		return writeBadRequest(ctx, "bill number must be a positive integer")
	}

	query, err := queries.NewTrackShipmentQuery(billNo)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.qry.TrackShipment.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, TrackShipmentResponse{
		ShipmentID:   result.ShipmentID.String(),
		BillNo:       result.BillNo,
		SenderName:   result.SenderName,
		ReceiverName: result.ReceiverName,
		CourierType:  result.CourierType,
		Country:      result.Country,
		Status:       result.Status,
		Events:       trackingEvents(result.Events),
	})
}

// GetMyShipments handles GET /api/v1/shipments/mine.
func (s *Server) GetMyShipments(ctx echo.Context) error {
	caller, err := callerFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	query, err := queries.NewGetShipmentsByOwnerQuery(caller.ID())
	if err != nil {
		return writeError(ctx, err)
	}

	summaries, err := s.qry.ShipmentsByOwner.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentSummaries(summaries))
}

// GetAllShipments handles GET /api/v1/shipments.
func (s *Server) GetAllShipments(ctx echo.Context) error {
	if err := requireAdmin(ctx); err != nil {
		return writeError(ctx, err)
	}

	summaries, err := s.qry.AllShipments.Handle(ctx.Request().Context(), queries.NewGetAllShipmentsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentSummaries(summaries))
}

// GetUnassignedShipments handles GET /api/v1/shipments/unassigned.
func (s *Server) GetUnassignedShipments(ctx echo.Context) error {
	if err := requireAdmin(ctx); err != nil {
		return writeError(ctx, err)
	}

	summaries, err := s.qry.UnassignedShipments.Handle(
		ctx.Request().Context(), queries.NewGetUnassignedShipmentsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentSummaries(summaries))
}

// RegisterAgent handles POST /api/v1/agents.
func (s *Server) RegisterAgent(ctx echo.Context) error {
	caller, err := callerFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req RegisterAgentRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	agentID := kernel.NewUUID()
	cmd, err := commands.NewRegisterAgentCommand(
		agentID, caller, req.Name, req.Email, req.Phone, req.AssignedArea)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.cmd.RegisterAgent.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, RegisterAgentResponse{AgentID: agentID.String()})
}

// GetAllAgents handles GET /api/v1/agents.
func (s *Server) GetAllAgents(ctx echo.Context) error {
	if err := requireAdmin(ctx); err != nil {
		return writeError(ctx, err)
	}

	agents, err := s.qry.AllAgents.Handle(ctx.Request().Context(), queries.NewGetAllAgentsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]Agent, len(agents))
	for i, a := range agents {
		response[i] = Agent{
			ID:           a.ID.String(),
			Name:         a.Name,
			Email:        a.Email,
			Phone:        a.Phone,
			AssignedArea: a.AssignedArea,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// AddPricingRule handles POST /api/v1/pricing-rules.
func (s *Server) AddPricingRule(ctx echo.Context) error {
	caller, err := callerFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req AddPricingRuleRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	courierType, err := shipment.TypeFromString(req.CourierType)
	if err != nil {
		return writeError(ctx, err)
	}

	values, err := parseDecimals(req.MinWeightKg, req.MaxWeightKg, req.BasePrice, req.PricePerKg)
	if err != nil {
		return writeBadRequest(ctx, "weights and prices must be decimal numbers")
	}

	cmd, err := commands.NewAddPricingRuleCommand(
		caller, courierType, values[0], values[1], values[2], values[3])
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.cmd.AddPricingRule.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusCreated)
}

// GetPendingPayments handles GET /api/v1/payments/pending.
func (s *Server) GetPendingPayments(ctx echo.Context) error {
	if err := requireAdmin(ctx); err != nil {
		return writeError(ctx, err)
	}

	pending, err := s.qry.PendingPayments.Handle(
		ctx.Request().Context(), queries.NewGetPendingPaymentsQuery())
	if err != nil {
		return writeError(ctx, err)
	}

	type pendingPayment struct {
		BillNo      int64  `json:"bill_no"`
		SenderName  string `json:"sender_name"`
		SenderEmail string `json:"sender_email"`
		Amount      string `json:"amount"`
	}
	response := make([]pendingPayment, len(pending))
	for i, p := range pending {
		response[i] = pendingPayment{
			BillNo:      p.BillNo,
			SenderName:  p.SenderName,
			SenderEmail: p.SenderEmail,
			Amount:      p.Amount.String(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetNotificationConfig handles GET /api/v1/notifications/config.
func (s *Server) GetNotificationConfig(ctx echo.Context) error {
	if err := requireAdmin(ctx); err != nil {
		return writeError(ctx, err)
	}

	stored, err := s.qry.NotificationConfig.Handle(
		ctx.Request().Context(), queries.NewGetNotificationConfigQuery())
	if err != nil {
		return writeError(ctx, err)
	}
	if stored == nil {
		return ctx.JSON(http.StatusOK, NotificationConfigResponse{})
	}

	return ctx.JSON(http.StatusOK, NotificationConfigResponse{
		SMTPHost:        stored.SMTPHost,
		SMTPPort:        stored.SMTPPort,
		SMTPUsername:    stored.SMTPUsername,
		SMTPPasswordSet: stored.SMTPPasswordSet,
		SMTPUseTLS:      stored.SMTPUseTLS,
		SMSAccountSID:   stored.SMSAccountSID,
		SMSAuthTokenSet: stored.SMSAuthTokenSet,
		SMSFromNumber:   stored.SMSFromNumber,
	})
}

// SaveNotificationConfig handles PUT /api/v1/notifications/config.
func (s *Server) SaveNotificationConfig(ctx echo.Context) error {
	caller, err := callerFromRequest(ctx)
	if err != nil {
		return writeError(ctx, err)
	}

	var req NotificationConfigRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}

	cmd, err := commands.NewSaveNotificationConfigCommand(caller, notification.Config{
		SMTPHost:      req.SMTPHost,
		SMTPPort:      req.SMTPPort,
		SMTPUsername:  req.SMTPUsername,
		SMTPPassword:  req.SMTPPassword,
		SMTPUseTLS:    req.SMTPUseTLS,
		SMSAccountSID: req.SMSAccountSID,
		SMSAuthToken:  req.SMSAuthToken,
		SMSFromNumber: req.SMSFromNumber,
	})
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.cmd.SaveNotificationConfig.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetNotificationStatus handles GET /api/v1/notifications/status. It
// reports channel readiness for the effective, merged configuration
// without exposing any credentials.
func (s *Server) GetNotificationStatus(ctx echo.Context) error {
	if err := requireAdmin(ctx); err != nil {
		return writeError(ctx, err)
	}

	cfg := s.settings.Settings(ctx.Request().Context())

	return ctx.JSON(http.StatusOK, NotificationStatusResponse{
		EmailConfigured: cfg.EmailConfigured(),
		SMSConfigured:   cfg.SMSConfigured(),
	})
}

// SendTestNotification handles POST /api/v1/notifications/test. It
// fires one message through the requested channel so an admin can
// verify credentials end to end.
func (s *Server) SendTestNotification(ctx echo.Context) error {
	if err := requireAdmin(ctx); err != nil {
		return writeError(ctx, err)
	}

	var req TestNotificationRequest
	if err := ctx.Bind(&req); err != nil {
		return writeBadRequest(ctx, "invalid request body")
	}
	if req.To == "" {
		return writeBadRequest(ctx, "to is required")
	}

	var err error
	switch req.Channel {
	case "email":
		err = s.dispatcher.SendDirectEmail(ctx.Request().Context(), req.To,
			"Courier notification test", "This is a test message from the courier service.")
	case "sms":
		err = s.dispatcher.SendDirectSMS(ctx.Request().Context(), req.To,
			"Courier notification test.")
	default:
		return writeBadRequest(ctx, "channel must be email or sms")
	}
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// requireAdmin resolves the caller and rejects non-admin roles.
func requireAdmin(ctx echo.Context) error {
	caller, err := callerFromRequest(ctx)
	if err != nil {
		return err
	}
	if !caller.IsAdmin() {
		return errNotAdmin
	}
	return nil
}

func trackingEvents(events []queries.TrackingEventResponse) []TrackingEvent {
	out := make([]TrackingEvent, len(events))
	for i, e := range events {
		out[i] = TrackingEvent{
			TrackID:   e.TrackID,
			Status:    e.Status,
			Location:  e.Location,
			UpdatedAt: e.UpdatedAt,
		}
	}
	return out
}

func shipmentSummaries(summaries []queries.ShipmentSummaryResponse) []ShipmentSummary {
	out := make([]ShipmentSummary, len(summaries))
	for i, s := range summaries {
		out[i] = ShipmentSummary{
			ID:            s.ID.String(),
			BillNo:        s.BillNo,
			SenderName:    s.SenderName,
			ReceiverName:  s.ReceiverName,
			CourierType:   s.CourierType,
			Country:       s.Country,
			WeightKg:      s.Weight.String(),
			Status:        s.Status,
			PaymentStatus: s.PaymentStatus,
			Amount:        s.Amount.String(),
			AgentAssigned: s.AgentAssigned,
			CreatedAt:     s.CreatedAt,
		}
	}
	return out
}
