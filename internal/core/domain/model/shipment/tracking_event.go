package shipment

import (
	"time"
)

// Well-known tracking locations written by the lifecycle procedures.
const (
	// LocationDeliveryHub is recorded when an admin assigns an agent.
	LocationDeliveryHub = "Local Delivery Hub"

	// LocationDeliveryAddress is recorded when an agent marks delivery.
	LocationDeliveryAddress = "Delivery Address"

	// LocationNotSpecified is recorded when an admin updates the status
	// without naming a location.
	LocationNotSpecified = "Not specified"
)

// TrackingEvent is one entry of a shipment's append-only tracking log.
// Events are never updated or deleted. The event id is assigned by the
// store on insert; an id of zero marks an event not yet persisted.
//
// The shipment's current status is derived from its events: latest
// updated_at wins, ties broken by the highest id (insertion order).
type TrackingEvent struct {
	id        int64
	status    Status
	location  string
	updatedAt time.Time
}

// NewTrackingEvent creates an event pending persistence (id zero).
func NewTrackingEvent(status Status, location string, at time.Time) (*TrackingEvent, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return &TrackingEvent{
		status:    status,
		location:  location,
		updatedAt: at,
	}, nil
}

// RestoreTrackingEvent reconstructs a persisted event, id included.
func RestoreTrackingEvent(id int64, status Status, location string, at time.Time) (*TrackingEvent, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}
	return &TrackingEvent{
		id:        id,
		status:    status,
		location:  location,
		updatedAt: at,
	}, nil
}

// ID returns the store-assigned event id, zero until persisted.
func (e *TrackingEvent) ID() int64 { return e.id }

// Status returns the status this event recorded.
func (e *TrackingEvent) Status() Status { return e.status }

// Location returns the free-text location, possibly empty.
func (e *TrackingEvent) Location() string { return e.location }

// UpdatedAt returns the event timestamp.
func (e *TrackingEvent) UpdatedAt() time.Time { return e.updatedAt }

// isAfter reports whether this event supersedes other in the derived
// current-status ordering: later updated_at wins, then higher id.
// Unpersisted events (id zero) sort after persisted ones with the same
// timestamp because they are by construction newer appends.
func (e *TrackingEvent) isAfter(other *TrackingEvent) bool {
	if !e.updatedAt.Equal(other.updatedAt) {
		return e.updatedAt.After(other.updatedAt)
	}
	if e.id == 0 {
		return true
	}
	if other.id == 0 {
		return false
	}
	return e.id > other.id
}
