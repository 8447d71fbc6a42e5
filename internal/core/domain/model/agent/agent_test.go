package agent_test

import (
	"testing"

	"courier/internal/core/domain/model/agent"
	"courier/internal/core/domain/model/kernel"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAgent(t *testing.T) {
	t.Run("should create agent with contact details", func(t *testing.T) {
		id := kernel.NewUUID()

		a, err := agent.NewAgent(id, "Ravi Kumar", "ravi@example.com", "+917770001112", "South Zone")

		require.NoError(t, err)
		assert.Equal(t, id, a.ID())
		assert.Equal(t, "Ravi Kumar", a.Name())
		assert.Equal(t, "ravi@example.com", a.Email())
		assert.Equal(t, "+917770001112", a.Phone())
		assert.Equal(t, "South Zone", a.AssignedArea())
		assert.NoError(t, a.Validate())
	})

	t.Run("should reject empty name", func(t *testing.T) {
		_, err := agent.NewAgent(kernel.NewUUID(), "", "ravi@example.com", "+917770001112", "South Zone")

		var requiredErr *errs.ValueIsRequiredError
		assert.ErrorAs(t, err, &requiredErr)
	})

	t.Run("should reject empty email", func(t *testing.T) {
		_, err := agent.NewAgent(kernel.NewUUID(), "Ravi Kumar", "", "+917770001112", "South Zone")

		var requiredErr *errs.ValueIsRequiredError
		assert.ErrorAs(t, err, &requiredErr)
	})

	t.Run("should reject invalid id", func(t *testing.T) {
		_, err := agent.NewAgent(kernel.UUID{}, "Ravi Kumar", "ravi@example.com", "+917770001112", "South Zone")

		assert.Error(t, err)
	})
}

func TestAgent_Validate(t *testing.T) {
	t.Run("should fail for zero value agent", func(t *testing.T) {
		var a agent.Agent

		assert.ErrorIs(t, a.Validate(), agent.ErrAgentIsNotConstructed)
	})
}
