package partner

import (
	"time"

	"github.com/google/uuid"
)

type PartnerDB struct {
	ID                  uuid.UUID
	Name                string
	Email               string
	PasswordHash        string
	EmailVerified       bool
	ServiceableZipCodes []int64
	MaxHandlingCapacity int
	CreatedAt           time.Time
}
