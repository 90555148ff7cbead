package seller

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"fastship/internal/entities"
)

const (
	verifyTokenTTL = 24 * time.Hour

	claimUserID  = "user_id"
	claimPurpose = "purpose"
	claimRole    = "role"

	purposeVerify = "verify"
)

type Seller struct {
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
) *Seller {
	return &Seller{
		repository:   repository,
		hasher:       hasher,
		accessTokens: accessTokens,
		linkTokens:   linkTokens,
		notifier:     notifier,
		domain:       domain,
	}
}

// Signup registers a seller and mails a verification link. The mail is
// published after the row exists and never fails the signup.
func (s *Seller) Signup(ctx context.Context, create entities.SellerCreate) (*entities.Seller, error) {
	if create.Name == "" || create.Email == "" || create.Password == "" {
		return nil, ErrMissingRequiredFields
	}
	if !isValidEmail(create.Email) {
		return nil, ErrInvalidEmail
	}
	if !isValidPassword(create.Password) {
		return nil, ErrInvalidPassword
	}

	hash, err := s.hasher.Hash(create.Password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	created, err := s.repository.Create(ctx, entities.Seller{
		Credentials: entities.Credentials{
			ID:           uuid.New(),
			Name:         create.Name,
			Email:        create.Email,
			PasswordHash: hash,
			CreatedAt:    time.Now().UTC(),
		},
		Address: create.Address,
		ZipCode: create.ZipCode,
	})
	if err != nil {
		return nil, fmt.Errorf("create seller: %w", err)
	}

	s.publishVerification(ctx, created)

	return created, nil
}

// Token validates credentials and issues a JWT access token. Unverified
// accounts cannot log in.
func (s *Seller) Token(ctx context.Context, email, password string) (string, error) {
	seller, err := s.repository.GetByEmail(ctx, email)
	if err != nil {
		return "", ErrBadCredentials
	}

	if !s.hasher.Verify(seller.PasswordHash, password) {
		return "", ErrBadCredentials
	}

	if !seller.EmailVerified {
		return "", ErrNotVerified
	}

	token, err := s.accessTokens.Issue(entities.Actor{
		ID:   seller.ID,
		Role: entities.RoleSeller,
	}, seller.Name)
	if err != nil {
		return "", fmt.Errorf("issue access token: %w", err)
	}

	return token, nil
}

// Verify redeems an emailed verification token and marks the account
// verified.
func (s *Seller) Verify(ctx context.Context, token string) error {
	claims, _, err := s.linkTokens.Decode(token)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	if claims[claimPurpose] != purposeVerify || claims[claimRole] != entities.RoleSeller.String() {
		return ErrInvalidToken
	}

	id, err := uuid.Parse(claims[claimUserID])
	if err != nil {
		return ErrInvalidToken
	}

	if err := s.repository.SetEmailVerified(ctx, id); err != nil {
		return fmt.Errorf("mark verified: %w", err)
	}
	return nil
}

// GetSeller resolves a seller by id; the shipment service uses it to
// anchor the initial placed event at the seller's zip.
func (s *Seller) GetSeller(ctx context.Context, id uuid.UUID) (*entities.Seller, error) {
	seller, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get seller: %w", err)
	}
	return seller, nil
}

func (s *Seller) publishVerification(ctx context.Context, seller *entities.Seller) {
	token, err := s.linkTokens.Encode(map[string]string{
		claimUserID:  seller.ID.String(),
		claimPurpose: purposeVerify,
		claimRole:    entities.RoleSeller.String(),
	}, verifyTokenTTL)
	if err != nil {
		return
	}

	_ = s.notifier.Publish(ctx, entities.Notification{
		Kind:      entities.NotificationAccountVerify,
		Recipient: seller.Email,
		Subject:   "Verify your FastShip account",
		Context: map[string]string{
			"name":             seller.Name,
			"verification_url": fmt.Sprintf("http://%s/seller/verify?token=%s", s.domain, token),
		},
	})
}
