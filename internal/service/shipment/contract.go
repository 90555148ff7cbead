//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=shipment_test
package shipment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fastship/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, shipment entities.Shipment) (*entities.Shipment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Shipment, error)
	// GetByIDForUpdate locks the shipment row for the ambient transaction
	// so concurrent appends to one timeline serialize.
	GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.Shipment, error)
	SetEstimatedDelivery(ctx context.Context, id uuid.UUID, estimated time.Time) error
	AddTag(ctx context.Context, id uuid.UUID, tag entities.TagName) error
	RemoveTag(ctx context.Context, id uuid.UUID, tag entities.TagName) error
	CreateReview(ctx context.Context, review entities.Review) error
	ListOverdue(ctx context.Context, since, until time.Time) ([]entities.OverdueShipment, error)
}

type AssignmentService interface {
	Assign(ctx context.Context, destinationZip int64) (*entities.DeliveryPartner, error)
}

type TimelineService interface {
	Append(ctx context.Context, shipment *entities.Shipment, change entities.EventChange) (*entities.ShipmentEvent, error)
}

type SellerDirectory interface {
	GetSeller(ctx context.Context, id uuid.UUID) (*entities.Seller, error)
}

// Notifier publishes a deferred outbound effect. Implementations must be
// best effort: a publish failure never fails the operation that produced
// the notification.
type Notifier interface {
	Publish(ctx context.Context, notification entities.Notification) error
}

// LinkTokens signs and verifies the url-safe tokens mailed to clients,
// e.g. single-use review links.
type LinkTokens interface {
	Encode(claims map[string]string, ttl time.Duration) (string, error)
	// Decode returns the claims and the token's unique jti.
	Decode(token string) (map[string]string, string, error)
}

type TokenDenylist interface {
	Revoke(ctx context.Context, jti string, ttl time.Duration) error
	Revoked(ctx context.Context, jti string) (bool, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
