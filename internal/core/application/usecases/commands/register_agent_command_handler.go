package commands

import (
	"context"

	"courier/internal/core/domain/model/agent"
	"courier/internal/pkg/errs"
)

// RegisterAgentCommandHandler adds a delivery agent to the roster.
// Admin-only.
type RegisterAgentCommandHandler struct {
	uowFactory AgentUoWFactory
}

// NewRegisterAgentCommandHandler creates a handler for agent registration.
func NewRegisterAgentCommandHandler(uowFactory AgentUoWFactory) RegisterAgentCommandHandler {
	return RegisterAgentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the agent registration command.
func (h RegisterAgentCommandHandler) Handle(ctx context.Context, cmd RegisterAgentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if !cmd.Caller().IsAdmin() {
		return errs.NewNotAuthorizedError("register agent")
	}

	newAgent, err := agent.NewAgent(cmd.AgentID(), cmd.Name(), cmd.Email(), cmd.Phone(), cmd.AssignedArea())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.AgentRepository().Add(ctx, newAgent); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
