package entities

import (
	"time"

	"github.com/google/uuid"
)

const MaxShipmentWeight = 25.0

type ShipmentStatus string

const (
	StatusPlaced         ShipmentStatus = "placed"
	StatusProcessing     ShipmentStatus = "processing"
	StatusInTransit      ShipmentStatus = "in_transit"
	StatusOutForDelivery ShipmentStatus = "out_for_delivery"
	StatusDelivered      ShipmentStatus = "delivered"
	StatusReturned       ShipmentStatus = "returned"
	StatusCancelled      ShipmentStatus = "cancelled"
)

func (s ShipmentStatus) String() string {
	return string(s)
}

func (s ShipmentStatus) Valid() bool {
	switch s {
	case StatusPlaced, StatusProcessing, StatusInTransit,
		StatusOutForDelivery, StatusDelivered, StatusReturned, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether s closes the timeline. Must stay a real
// set-membership test over all three closing statuses.
func (s ShipmentStatus) Terminal() bool {
	return s == StatusDelivered || s == StatusReturned || s == StatusCancelled
}

// progression order of the regular delivery flow.
var statusRank = map[ShipmentStatus]int{
	StatusPlaced:         0,
	StatusProcessing:     1,
	StatusInTransit:      2,
	StatusOutForDelivery: 3,
	StatusDelivered:      4,
}

// CanTransitionTo reports whether an event with status next may be
// appended onto a timeline currently at s. Terminal statuses accept
// nothing, cancellation is reachable from any open status, a return is
// only possible while the parcel is out for delivery, and the regular
// flow never moves backwards. Repeating the current status is a plain
// location scan and is always allowed on an open timeline.
func (s ShipmentStatus) CanTransitionTo(next ShipmentStatus) bool {
	if s.Terminal() {
		return false
	}
	if next == s {
		return true
	}
	if next == StatusCancelled {
		return true
	}
	if next == StatusReturned {
		return s == StatusOutForDelivery
	}

	from, ok := statusRank[s]
	if !ok {
		return false
	}
	to, ok := statusRank[next]
	if !ok {
		return false
	}
	return to > from
}

// ShipmentEvent is one immutable record of a shipment's timeline.
// Seq is the insertion order assigned by storage and breaks CreatedAt ties.
type ShipmentEvent struct {
	ID          uuid.UUID
	ShipmentID  uuid.UUID
	Location    int64
	Status      ShipmentStatus
	Description string
	Seq         int64
	CreatedAt   time.Time
}

type Shipment struct {
	ID                uuid.UUID
	Content           string
	Weight            float64
	Destination       int64
	ClientEmail       *string
	SellerID          uuid.UUID
	DeliveryPartnerID uuid.UUID
	Timeline          []ShipmentEvent
	Tags              []TagName
	EstimatedDelivery *time.Time
	CreatedAt         time.Time
}

// LatestEvent returns the event with the greatest CreatedAt, ties broken
// by the greater Seq. Nil on an empty timeline.
func (s *Shipment) LatestEvent() *ShipmentEvent {
	var latest *ShipmentEvent
	for i := range s.Timeline {
		event := &s.Timeline[i]
		if latest == nil ||
			event.CreatedAt.After(latest.CreatedAt) ||
			(event.CreatedAt.Equal(latest.CreatedAt) && event.Seq > latest.Seq) {
			latest = event
		}
	}
	return latest
}

// Status is derived from the timeline, never stored. Empty string on an
// empty timeline; a persisted shipment always carries its placed event.
func (s *Shipment) Status() ShipmentStatus {
	latest := s.LatestEvent()
	if latest == nil {
		return ""
	}
	return latest.Status
}

func (s *Shipment) HasTag(name TagName) bool {
	for _, tag := range s.Tags {
		if tag == name {
			return true
		}
	}
	return false
}

type ShipmentCreate struct {
	Content     string
	Weight      float64
	Destination int64
	ClientEmail *string
}

type ShipmentUpdate struct {
	Status            *ShipmentStatus
	Location          *int64
	Description       *string
	EstimatedDelivery *time.Time
}

func (u *ShipmentUpdate) Empty() bool {
	return u.Status == nil &&
		u.Location == nil &&
		u.Description == nil &&
		u.EstimatedDelivery == nil
}

// EstimatedDeliveryOnly reports whether the update is pure metadata and
// must not produce a timeline event.
func (u *ShipmentUpdate) EstimatedDeliveryOnly() bool {
	return u.EstimatedDelivery != nil &&
		u.Status == nil &&
		u.Location == nil &&
		u.Description == nil
}

// EventChange is the optional part of a timeline append; omitted fields
// carry forward from the latest event.
type EventChange struct {
	Location    *int64
	Status      *ShipmentStatus
	Description *string
}

// OverdueShipment is the flat projection the overdue-alert task works
// with: enough to address the assigned partner without loading the
// aggregate.
type OverdueShipment struct {
	ShipmentID        uuid.UUID
	Destination       int64
	PartnerName       string
	PartnerEmail      string
	EstimatedDelivery time.Time
}

type Review struct {
	ID         uuid.UUID
	ShipmentID uuid.UUID
	Rating     int
	Comment    *string
	CreatedAt  time.Time
}
