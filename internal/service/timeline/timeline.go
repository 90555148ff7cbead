package timeline

import (
	"context"
	"fmt"
	"time"

	"fastship/internal/entities"
)

// Timeline appends events to a shipment's log and keeps it the single
// source of truth for status: events are immutable, ordered by creation
// time, and nothing may follow a terminal event.
type Timeline struct {
	repository Repository
}

func New(repository Repository) *Timeline {
	return &Timeline{
		repository: repository,
	}
}

// Append records one event for the shipment. Omitted fields carry forward
// from the latest event; an omitted description falls back to the canned
// per-status text. The caller is expected to hold the shipment row inside
// its transaction so concurrent appends serialize.
func (t *Timeline) Append(ctx context.Context, shipment *entities.Shipment, change entities.EventChange) (*entities.ShipmentEvent, error) {
	latest := shipment.LatestEvent()

	if latest != nil && latest.Status.Terminal() {
		return nil, fmt.Errorf("timeline closed by %s: %w", latest.Status, ErrInvalidTransition)
	}

	if (change.Status == nil || change.Location == nil) && latest == nil {
		return nil, ErrEmptyTimeline
	}

	status := change.Status
	if status == nil {
		status = &latest.Status
	}
	if !status.Valid() {
		return nil, ErrInvalidStatus
	}

	location := change.Location
	if location == nil {
		location = &latest.Location
	}

	if latest != nil && !latest.Status.CanTransitionTo(*status) {
		return nil, fmt.Errorf("%s -> %s: %w", latest.Status, *status, ErrInvalidTransition)
	}

	description := change.Description
	if description == nil {
		canned := describe(*status, *location)
		description = &canned
	}

	event := entities.ShipmentEvent{
		ShipmentID:  shipment.ID,
		Location:    *location,
		Status:      *status,
		Description: *description,
		CreatedAt:   time.Now().UTC(),
	}

	persisted, err := t.repository.AppendEvent(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("append event: %w", err)
	}

	return persisted, nil
}

// describe maps a status to its canned event description. A status the
// table does not know is treated as a plain location scan.
func describe(status entities.ShipmentStatus, location int64) string {
	switch status {
	case entities.StatusPlaced:
		return "assigned delivery partner"
	case entities.StatusProcessing:
		return "shipment is being processed"
	case entities.StatusInTransit:
		return "shipment is in transit"
	case entities.StatusOutForDelivery:
		return "shipment out for delivery"
	case entities.StatusDelivered:
		return "successfully delivered"
	case entities.StatusCancelled:
		return "cancelled by seller"
	case entities.StatusReturned:
		return "shipment was returned"
	default:
		return fmt.Sprintf("scanned at %d", location)
	}
}
