package seller

import (
	"fastship/internal/entities"
)

func ToDomain(s *SellerDB) *entities.Seller {
	if s == nil {
		return nil
	}
	return &entities.Seller{
		Credentials: entities.Credentials{
			ID:            s.ID,
			Name:          s.Name,
			Email:         s.Email,
			PasswordHash:  s.PasswordHash,
			EmailVerified: s.EmailVerified,
			CreatedAt:     s.CreatedAt,
		},
		Address: s.Address,
		ZipCode: s.ZipCode,
	}
}
