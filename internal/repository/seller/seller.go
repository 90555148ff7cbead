package seller

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"fastship/internal/entities"
	"fastship/internal/repository"
	sellerservice "fastship/internal/service/seller"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, seller entities.Seller) (*entities.Seller, error) {
	query := `
		INSERT INTO sellers (id, name, email, password_hash, email_verified, address, zip_code, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, name, email, password_hash, email_verified, address, zip_code, created_at
	`

	var sellerDB SellerDB
	err := r.querier.QueryRow(
		ctx,
		query,
		seller.ID,
		seller.Name,
		seller.Email,
		seller.PasswordHash,
		seller.EmailVerified,
		seller.Address,
		seller.ZipCode,
		seller.CreatedAt,
	).Scan(
		&sellerDB.ID,
		&sellerDB.Name,
		&sellerDB.Email,
		&sellerDB.PasswordHash,
		&sellerDB.EmailVerified,
		&sellerDB.Address,
		&sellerDB.ZipCode,
		&sellerDB.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, sellerservice.ErrEmailTaken
		}
		return nil, fmt.Errorf("unexpected seller repository create error: %w", err)
	}

	return ToDomain(&sellerDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Seller, error) {
	query := `
		SELECT id, name, email, password_hash, email_verified, address, zip_code, created_at
		FROM sellers
		WHERE id = $1
	`
	return r.getOne(ctx, query, id)
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.Seller, error) {
	query := `
		SELECT id, name, email, password_hash, email_verified, address, zip_code, created_at
		FROM sellers
		WHERE email = $1
	`
	return r.getOne(ctx, query, email)
}

func (r *Repository) getOne(ctx context.Context, query string, arg interface{}) (*entities.Seller, error) {
	var sellerDB SellerDB
	err := r.querier.QueryRow(ctx, query, arg).Scan(
		&sellerDB.ID,
		&sellerDB.Name,
		&sellerDB.Email,
		&sellerDB.PasswordHash,
		&sellerDB.EmailVerified,
		&sellerDB.Address,
		&sellerDB.ZipCode,
		&sellerDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, sellerservice.ErrSellerNotFound
		}
		return nil, fmt.Errorf("unexpected seller repository get error: %w", err)
	}

	return ToDomain(&sellerDB), nil
}

func (r *Repository) SetEmailVerified(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE sellers SET email_verified = TRUE WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected seller repository verify error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return sellerservice.ErrSellerNotFound
	}

	return nil
}
