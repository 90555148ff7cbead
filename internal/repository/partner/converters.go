package partner

import (
	"fastship/internal/entities"
)

func ToDomain(p *PartnerDB) *entities.DeliveryPartner {
	if p == nil {
		return nil
	}
	return &entities.DeliveryPartner{
		Credentials: entities.Credentials{
			ID:            p.ID,
			Name:          p.Name,
			Email:         p.Email,
			PasswordHash:  p.PasswordHash,
			EmailVerified: p.EmailVerified,
			CreatedAt:     p.CreatedAt,
		},
		ServiceableZipCodes: p.ServiceableZipCodes,
		MaxHandlingCapacity: p.MaxHandlingCapacity,
	}
}
