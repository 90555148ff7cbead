package shipment

import (
	"time"

	"github.com/google/uuid"
)

type ShipmentDB struct {
	ID                uuid.UUID
	Content           string
	Weight            float64
	Destination       int64
	ClientEmail       *string
	SellerID          uuid.UUID
	DeliveryPartnerID uuid.UUID
	EstimatedDelivery *time.Time
	CreatedAt         time.Time
}

type EventDB struct {
	ID          uuid.UUID
	ShipmentID  uuid.UUID
	Location    int64
	Status      string
	Description string
	Seq         int64
	CreatedAt   time.Time
}
