package seller

import (
	"time"

	"github.com/google/uuid"
)

type SellerDB struct {
	ID            uuid.UUID
	Name          string
	Email         string
	PasswordHash  string
	EmailVerified bool
	Address       *string
	ZipCode       *int64
	CreatedAt     time.Time
}
