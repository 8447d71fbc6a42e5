package shipment_test

import (
	"testing"
	"time"

	"courier/internal/core/domain/model/kernel"
	"courier/internal/core/domain/model/shipment"
	"courier/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testParty(t *testing.T, name string) shipment.Party {
	t.Helper()
	p, err := shipment.NewParty(name, name+"@example.com", "+911234567890", name+" street 1")
	require.NoError(t, err)
	return p
}

func testWeight(t *testing.T) kernel.Weight {
	t.Helper()
	w, err := kernel.WeightFromFloat(2.5)
	require.NoError(t, err)
	return w
}

func newTestShipment(t *testing.T, now time.Time) *shipment.Shipment {
	t.Helper()
	s, err := shipment.NewShipment(
		kernel.NewUUID(), kernel.NewUUID(),
		testParty(t, "sender"), testParty(t, "receiver"),
		testWeight(t), shipment.Domestic, "India", 1, now)
	require.NoError(t, err)
	return s
}

func TestNewShipment(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("should create shipment with a single Pending event at the sender address", func(t *testing.T) {
		sender := testParty(t, "sender")
		s, err := shipment.NewShipment(
			kernel.NewUUID(), kernel.NewUUID(),
			sender, testParty(t, "receiver"),
			testWeight(t), shipment.Domestic, "India", 7, now)

		require.NoError(t, err)
		require.NoError(t, s.Validate())
		assert.Equal(t, shipment.Pending, s.CurrentStatus())
		require.Len(t, s.Events(), 1)
		assert.Equal(t, sender.Address(), s.Events()[0].Location())
		assert.Nil(t, s.AgentID())
		assert.Equal(t, int64(7), s.PriceID())
		assert.Equal(t, now.Unix(), s.BillNo())
	})

	t.Run("should fail with invalid owner", func(t *testing.T) {
		var invalidOwner kernel.UUID

		s, err := shipment.NewShipment(
			kernel.NewUUID(), invalidOwner,
			testParty(t, "sender"), testParty(t, "receiver"),
			testWeight(t), shipment.Domestic, "India", 1, now)

		require.Error(t, err)
		assert.Nil(t, s)
	})

	t.Run("should fail with unconstructed party", func(t *testing.T) {
		var invalidParty shipment.Party

		s, err := shipment.NewShipment(
			kernel.NewUUID(), kernel.NewUUID(),
			invalidParty, testParty(t, "receiver"),
			testWeight(t), shipment.Domestic, "India", 1, now)

		require.Error(t, err)
		assert.Nil(t, s)
	})
}

func TestShipment_CurrentStatus(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("should pick the event with the latest timestamp", func(t *testing.T) {
		e1, err := shipment.RestoreTrackingEvent(1, shipment.Pending, "a", now)
		require.NoError(t, err)
		e2, err := shipment.RestoreTrackingEvent(2, shipment.InTransit, "b", now.Add(time.Hour))
		require.NoError(t, err)

		s := restoreWithEvents(t, []*shipment.TrackingEvent{e2, e1})

		assert.Equal(t, shipment.InTransit, s.CurrentStatus())
	})

	t.Run("should break timestamp ties by the highest event id", func(t *testing.T) {
		e1, err := shipment.RestoreTrackingEvent(1, shipment.InTransit, "a", now)
		require.NoError(t, err)
		e2, err := shipment.RestoreTrackingEvent(2, shipment.Cancelled, "b", now)
		require.NoError(t, err)

		s := restoreWithEvents(t, []*shipment.TrackingEvent{e2, e1})

		assert.Equal(t, shipment.Cancelled, s.CurrentStatus())
	})

	t.Run("should treat an unpersisted event as newer on equal timestamps", func(t *testing.T) {
		persisted, err := shipment.RestoreTrackingEvent(9, shipment.Pending, "a", now)
		require.NoError(t, err)
		appended, err := shipment.NewTrackingEvent(shipment.InTransit, "b", now)
		require.NoError(t, err)

		s := restoreWithEvents(t, []*shipment.TrackingEvent{persisted, appended})

		assert.Equal(t, shipment.InTransit, s.CurrentStatus())
	})
}

func TestShipment_AssignAgent(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("should assign agent and append an out-for-delivery event at the hub", func(t *testing.T) {
		s := newTestShipment(t, now)
		agentID := kernel.NewUUID()

		event, err := s.AssignAgent(agentID, now.Add(time.Hour))

		require.NoError(t, err)
		require.NotNil(t, event)
		assert.Equal(t, shipment.OutForDelivery, event.Status())
		assert.Equal(t, shipment.LocationDeliveryHub, event.Location())
		require.NotNil(t, s.AgentID())
		assert.True(t, s.AgentID().IsEqual(agentID))
		assert.Equal(t, shipment.OutForDelivery, s.CurrentStatus())
	})

	t.Run("should swap agent without a new event when already out for delivery", func(t *testing.T) {
		s := newTestShipment(t, now)
		_, err := s.AssignAgent(kernel.NewUUID(), now.Add(time.Hour))
		require.NoError(t, err)
		eventsBefore := len(s.Events())

		replacement := kernel.NewUUID()
		event, err := s.AssignAgent(replacement, now.Add(2*time.Hour))

		require.NoError(t, err)
		assert.Nil(t, event)
		assert.Len(t, s.Events(), eventsBefore)
		assert.True(t, s.AgentID().IsEqual(replacement))
	})

	t.Run("should reject assignment on a delivered shipment", func(t *testing.T) {
		s := newTestShipment(t, now)
		agentID := kernel.NewUUID()
		_, err := s.AssignAgent(agentID, now.Add(time.Hour))
		require.NoError(t, err)
		_, err = s.MarkDelivered(agentID, now.Add(2*time.Hour))
		require.NoError(t, err)

		_, err = s.AssignAgent(kernel.NewUUID(), now.Add(3*time.Hour))

		assert.ErrorIs(t, err, shipment.ErrAlreadyDelivered)
	})
}

func TestShipment_UpdateStatus(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("should append event for in-transit", func(t *testing.T) {
		s := newTestShipment(t, now)

		event, err := s.UpdateStatus(shipment.InTransit, "Mumbai hub", now.Add(time.Hour))

		require.NoError(t, err)
		assert.Equal(t, shipment.InTransit, event.Status())
		assert.Equal(t, "Mumbai hub", event.Location())
		assert.Equal(t, shipment.InTransit, s.CurrentStatus())
	})

	t.Run("should default the location when none is given", func(t *testing.T) {
		s := newTestShipment(t, now)

		event, err := s.UpdateStatus(shipment.Cancelled, "", now.Add(time.Hour))

		require.NoError(t, err)
		assert.Equal(t, shipment.LocationNotSpecified, event.Location())
	})

	t.Run("should clear the agent when reset to pending", func(t *testing.T) {
		s := newTestShipment(t, now)
		_, err := s.AssignAgent(kernel.NewUUID(), now.Add(time.Hour))
		require.NoError(t, err)
		require.NotNil(t, s.AgentID())

		_, err = s.UpdateStatus(shipment.Pending, "", now.Add(2*time.Hour))

		require.NoError(t, err)
		assert.Nil(t, s.AgentID())
		assert.Equal(t, shipment.Pending, s.CurrentStatus())
	})

	t.Run("should reject out-for-delivery without an assigned agent", func(t *testing.T) {
		s := newTestShipment(t, now)

		_, err := s.UpdateStatus(shipment.OutForDelivery, "", now.Add(time.Hour))

		require.Error(t, err)
		var invalid *errs.ValueIsInvalidError
		assert.ErrorAs(t, err, &invalid)
		assert.Equal(t, shipment.Pending, s.CurrentStatus())
	})

	t.Run("should allow out-for-delivery once an agent is assigned", func(t *testing.T) {
		s := newTestShipment(t, now)
		_, err := s.AssignAgent(kernel.NewUUID(), now.Add(time.Hour))
		require.NoError(t, err)
		_, err = s.UpdateStatus(shipment.InTransit, "", now.Add(2*time.Hour))
		require.NoError(t, err)

		_, err = s.UpdateStatus(shipment.OutForDelivery, "", now.Add(3*time.Hour))

		require.NoError(t, err)
		assert.Equal(t, shipment.OutForDelivery, s.CurrentStatus())
	})

	t.Run("should reject delivered as an admin target", func(t *testing.T) {
		s := newTestShipment(t, now)

		_, err := s.UpdateStatus(shipment.Delivered, "", now.Add(time.Hour))

		require.Error(t, err)
		assert.Contains(t, err.Error(), "not a status an admin may set")
	})

	t.Run("should reject any update on a delivered shipment", func(t *testing.T) {
		s := newTestShipment(t, now)
		agentID := kernel.NewUUID()
		_, err := s.AssignAgent(agentID, now.Add(time.Hour))
		require.NoError(t, err)
		_, err = s.MarkDelivered(agentID, now.Add(2*time.Hour))
		require.NoError(t, err)

		_, err = s.UpdateStatus(shipment.Pending, "", now.Add(3*time.Hour))

		assert.ErrorIs(t, err, shipment.ErrAlreadyDelivered)
	})
}

func TestShipment_MarkDelivered(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("should record delivery by the assigned agent", func(t *testing.T) {
		s := newTestShipment(t, now)
		agentID := kernel.NewUUID()
		_, err := s.AssignAgent(agentID, now.Add(time.Hour))
		require.NoError(t, err)

		event, err := s.MarkDelivered(agentID, now.Add(2*time.Hour))

		require.NoError(t, err)
		assert.Equal(t, shipment.Delivered, event.Status())
		assert.Equal(t, shipment.LocationDeliveryAddress, event.Location())
		assert.Equal(t, shipment.Delivered, s.CurrentStatus())
	})

	t.Run("should reject delivery by an agent who is not assigned", func(t *testing.T) {
		s := newTestShipment(t, now)
		_, err := s.AssignAgent(kernel.NewUUID(), now.Add(time.Hour))
		require.NoError(t, err)
		eventsBefore := len(s.Events())

		_, err = s.MarkDelivered(kernel.NewUUID(), now.Add(2*time.Hour))

		require.Error(t, err)
		var notAuthorized *errs.NotAuthorizedError
		assert.ErrorAs(t, err, &notAuthorized)
		assert.Len(t, s.Events(), eventsBefore)
	})

	t.Run("should reject delivery while no agent is assigned", func(t *testing.T) {
		s := newTestShipment(t, now)

		_, err := s.MarkDelivered(kernel.NewUUID(), now.Add(time.Hour))

		require.Error(t, err)
		var notAuthorized *errs.NotAuthorizedError
		assert.ErrorAs(t, err, &notAuthorized)
	})

	t.Run("should reject a second delivery confirmation", func(t *testing.T) {
		s := newTestShipment(t, now)
		agentID := kernel.NewUUID()
		_, err := s.AssignAgent(agentID, now.Add(time.Hour))
		require.NoError(t, err)
		_, err = s.MarkDelivered(agentID, now.Add(2*time.Hour))
		require.NoError(t, err)

		_, err = s.MarkDelivered(agentID, now.Add(3*time.Hour))

		assert.ErrorIs(t, err, shipment.ErrAlreadyDelivered)
	})
}

func TestRestoreShipment(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	t.Run("should fail without tracking events", func(t *testing.T) {
		s, err := shipment.RestoreShipment(
			kernel.NewUUID(), kernel.NewUUID(), 123,
			testParty(t, "sender"), testParty(t, "receiver"),
			testWeight(t), shipment.Domestic, "India", 1, nil, now, nil)

		require.Error(t, err)
		assert.Nil(t, s)
		assert.Contains(t, err.Error(), "tracking events")
	})
}

func restoreWithEvents(t *testing.T, events []*shipment.TrackingEvent) *shipment.Shipment {
	t.Helper()
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	s, err := shipment.RestoreShipment(
		kernel.NewUUID(), kernel.NewUUID(), 123,
		testParty(t, "sender"), testParty(t, "receiver"),
		testWeight(t), shipment.Domestic, "India", 1, nil, now, events)
	require.NoError(t, err)
	return s
}
