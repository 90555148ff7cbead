//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=seller_test
package seller

import (
	"context"
	"time"

	"github.com/google/uuid"

	"fastship/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, seller entities.Seller) (*entities.Seller, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Seller, error)
	GetByEmail(ctx context.Context, email string) (*entities.Seller, error)
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
