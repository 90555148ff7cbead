package shipment_cancel_post

import (
	"fastship/internal/entities"
	"fastship/internal/generated/dto"
)

func toShipmentDTO(shipment *entities.Shipment) dto.Shipment {
	timeline := make([]dto.ShipmentEvent, 0, len(shipment.Timeline))
	for _, event := range shipment.Timeline {
		timeline = append(timeline, dto.ShipmentEvent{
			Location:    event.Location,
			Status:      event.Status.String(),
			Description: event.Description,
			CreatedAt:   event.CreatedAt,
		})
	}

	tags := make([]string, 0, len(shipment.Tags))
	for _, tag := range shipment.Tags {
		tags = append(tags, tag.String())
	}

	return dto.Shipment{
		ID:                shipment.ID.String(),
		Content:           shipment.Content,
		Weight:            shipment.Weight,
		Destination:       shipment.Destination,
		Status:            shipment.Status().String(),
		EstimatedDelivery: shipment.EstimatedDelivery,
		Timeline:          timeline,
		Tags:              tags,
		ClientEmail:       shipment.ClientEmail,
		SellerID:          shipment.SellerID.String(),
		DeliveryPartnerID: shipment.DeliveryPartnerID.String(),
	}
}
