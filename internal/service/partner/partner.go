package partner

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"fastship/internal/entities"
)

const (
	minPasswordLength = 8
	verifyTokenTTL    = 24 * time.Hour

	claimUserID  = "user_id"
	claimPurpose = "purpose"
	claimRole    = "role"

	purposeVerify = "verify"
)

type Partner struct {
	repository   Repository
	hasher       PasswordHasher
	accessTokens AccessTokens
	linkTokens   LinkTokens
	notifier     Notifier
	domain       string
}

func New(
	repository Repository,
	hasher PasswordHasher,
	accessTokens AccessTokens,
	linkTokens LinkTokens,
	notifier Notifier,
	domain string,
) *Partner {
	return &Partner{
		repository:   repository,
		hasher:       hasher,
		accessTokens: accessTokens,
		linkTokens:   linkTokens,
		notifier:     notifier,
		domain:       domain,
	}
}

// Signup registers a delivery partner with its serviceable zip codes and
// handling ceiling, then mails a verification link.
func (p *Partner) Signup(ctx context.Context, create entities.PartnerCreate) (*entities.DeliveryPartner, error) {
	if create.Name == "" || create.Email == "" || create.Password == "" {
		return nil, ErrMissingRequiredFields
	}
	if !isValidEmail(create.Email) {
		return nil, ErrInvalidEmail
	}
	if len(create.Password) < minPasswordLength {
		return nil, ErrInvalidPassword
	}
	if create.MaxHandlingCapacity < 0 {
		return nil, ErrInvalidCapacity
	}
	if len(create.ServiceableZipCodes) == 0 {
		return nil, ErrNoServiceableZips
	}

	hash, err := p.hasher.Hash(create.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := p.repository.Create(ctx, entities.DeliveryPartner{
		Credentials: entities.Credentials{
			ID:           uuid.New(),
			Name:         create.Name,
			Email:        create.Email,
			PasswordHash: hash,
			CreatedAt:    time.Now().UTC(),
		},
		ServiceableZipCodes: create.ServiceableZipCodes,
		MaxHandlingCapacity: create.MaxHandlingCapacity,
	})
	if err != nil {
		return nil, fmt.Errorf("create partner: %w", err)
	}

	p.publishVerification(ctx, created)

	return created, nil
}

func (p *Partner) Token(ctx context.Context, email, password string) (string, error) {
	partner, err := p.repository.GetByEmail(ctx, email)
	if err != nil {
		return "", ErrBadCredentials
	}

	if !p.hasher.Verify(partner.PasswordHash, password) {
		return "", ErrBadCredentials
	}

	if !partner.EmailVerified {
		return "", ErrNotVerified
	}

	token, err := p.accessTokens.Issue(entities.Actor{
		ID:   partner.ID,
		Role: entities.RolePartner,
	}, partner.Name)
	if err != nil {
		return "", fmt.Errorf("issue access token: %w", err)
	}

	return token, nil
}

func (p *Partner) Verify(ctx context.Context, token string) error {
	claims, _, err := p.linkTokens.Decode(token)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims[claimPurpose] != purposeVerify || claims[claimRole] != entities.RolePartner.String() {
		return ErrInvalidToken
	}

	id, err := uuid.Parse(claims[claimUserID])
	if err != nil {
		return ErrInvalidToken
	}

	if err := p.repository.SetEmailVerified(ctx, id); err != nil {
		return fmt.Errorf("mark verified: %w", err)
	}
	return nil
}

// UpdateProfile changes the partner's serviceable zips or capacity ceiling.
// Only the partner itself may change its profile.
func (p *Partner) UpdateProfile(ctx context.Context, modify entities.PartnerModify, actorID uuid.UUID) (*entities.DeliveryPartner, error) {
	if modify.ServiceableZipCodes == nil && modify.MaxHandlingCapacity == nil {
		return nil, ErrMissingRequiredFields
	}
	if modify.MaxHandlingCapacity != nil && *modify.MaxHandlingCapacity < 0 {
		return nil, ErrInvalidCapacity
	}
	if modify.ServiceableZipCodes != nil && len(*modify.ServiceableZipCodes) == 0 {
		return nil, ErrNoServiceableZips
	}

	modify.ID = &actorID

	partner, err := p.repository.Update(ctx, modify)
	if err != nil {
		return nil, fmt.Errorf("update partner: %w", err)
	}
	return partner, nil
}

func (p *Partner) GetPartner(ctx context.Context, id uuid.UUID) (*entities.DeliveryPartner, error) {
	partner, err := p.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get partner: %w", err)
	}
	return partner, nil
}

func isValidEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && strings.Contains(email[at:], ".")
}

func (p *Partner) publishVerification(ctx context.Context, partner *entities.DeliveryPartner) {
	token, err := p.linkTokens.Encode(map[string]string{
		claimUserID:  partner.ID.String(),
		claimPurpose: purposeVerify,
		claimRole:    entities.RolePartner.String(),
	}, verifyTokenTTL)
	if err != nil {
		return
	}

	_ = p.notifier.Publish(ctx, entities.Notification{
		Kind:      entities.NotificationAccountVerify,
		Recipient: partner.Email,
		Subject:   "Verify your FastShip account",
		Context: map[string]string{
			"name":             partner.Name,
			"verification_url": fmt.Sprintf("http://%s/partner/verify?token=%s", p.domain, token),
		},
	})
}
