//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=partner_test
package partner

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fastship/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, partner entities.DeliveryPartner) (*entities.DeliveryPartner, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.DeliveryPartner, error)
	GetByEmail(ctx context.Context, email string) (*entities.DeliveryPartner, error)
	Update(ctx context.Context, modify entities.PartnerModify) (*entities.DeliveryPartner, error)
	SetEmailVerified(ctx context.Context, id uuid.UUID) error
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

type AccessTokens interface {
	Issue(actor entities.Actor, name string) (string, error)
}

type LinkTokens interface {
	Encode(claims map[string]string, ttl time.Duration) (string, error)
	Decode(token string) (map[string]string, string, error)
}

type Notifier interface {
	Publish(ctx context.Context, notification entities.Notification) error
}
