package shipment

import (
	"fastship/internal/entities"
)

func ToDomain(s *ShipmentDB, events []EventDB, tags []string) *entities.Shipment {
	if s == nil {
		return nil
	}

	timeline := make([]entities.ShipmentEvent, 0, len(events))
	for i := range events {
		timeline = append(timeline, *ToEventDomain(&events[i]))
	}

	tagNames := make([]entities.TagName, 0, len(tags))
	for _, tag := range tags {
		tagNames = append(tagNames, entities.TagName(tag))
	}

	return &entities.Shipment{
		ID:                s.ID,
		Content:           s.Content,
		Weight:            s.Weight,
		Destination:       s.Destination,
		ClientEmail:       s.ClientEmail,
		SellerID:          s.SellerID,
		DeliveryPartnerID: s.DeliveryPartnerID,
		Timeline:          timeline,
		Tags:              tagNames,
		EstimatedDelivery: s.EstimatedDelivery,
		CreatedAt:         s.CreatedAt,
	}
}

func ToEventDomain(e *EventDB) *entities.ShipmentEvent {
	if e == nil {
		return nil
	}
	return &entities.ShipmentEvent{
		ID:          e.ID,
		ShipmentID:  e.ShipmentID,
		Location:    e.Location,
		Status:      entities.ShipmentStatus(e.Status),
		Description: e.Description,
		Seq:         e.Seq,
		CreatedAt:   e.CreatedAt,
	}
}
