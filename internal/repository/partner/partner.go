package partner

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"fastship/internal/entities"
	"fastship/internal/repository"
	partnerservice "fastship/internal/service/partner"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, partner entities.DeliveryPartner) (*entities.DeliveryPartner, error) {
	query := `
		INSERT INTO delivery_partners (id, name, email, password_hash, email_verified, serviceable_zip_codes, max_handling_capacity, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id, name, email, password_hash, email_verified, serviceable_zip_codes, max_handling_capacity, created_at
	`

	var partnerDB PartnerDB
	err := r.querier.QueryRow(
		ctx,
		query,
		partner.ID,
		partner.Name,
		partner.Email,
		partner.PasswordHash,
		partner.EmailVerified,
		partner.ServiceableZipCodes,
		partner.MaxHandlingCapacity,
		partner.CreatedAt,
	).Scan(
		&partnerDB.ID,
		&partnerDB.Name,
		&partnerDB.Email,
		&partnerDB.PasswordHash,
		&partnerDB.EmailVerified,
		&partnerDB.ServiceableZipCodes,
		&partnerDB.MaxHandlingCapacity,
		&partnerDB.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, partnerservice.ErrEmailTaken
		}
		return nil, fmt.Errorf("unexpected partner repository create error: %w", err)
	}

	return ToDomain(&partnerDB), nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.DeliveryPartner, error) {
	query := `
		SELECT id, name, email, password_hash, email_verified, serviceable_zip_codes, max_handling_capacity, created_at
		FROM delivery_partners
		WHERE id = $1
	`
	return r.getOne(ctx, query, id)
}

func (r *Repository) GetByEmail(ctx context.Context, email string) (*entities.DeliveryPartner, error) {
	query := `
		SELECT id, name, email, password_hash, email_verified, serviceable_zip_codes, max_handling_capacity, created_at
		FROM delivery_partners
		WHERE email = $1
	`
	return r.getOne(ctx, query, email)
}

func (r *Repository) getOne(ctx context.Context, query string, arg interface{}) (*entities.DeliveryPartner, error) {
	var partnerDB PartnerDB
	err := r.querier.QueryRow(ctx, query, arg).Scan(
		&partnerDB.ID,
		&partnerDB.Name,
		&partnerDB.Email,
		&partnerDB.PasswordHash,
		&partnerDB.EmailVerified,
		&partnerDB.ServiceableZipCodes,
		&partnerDB.MaxHandlingCapacity,
		&partnerDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, partnerservice.ErrPartnerNotFound
		}
		return nil, fmt.Errorf("unexpected partner repository get error: %w", err)
	}

	return ToDomain(&partnerDB), nil
}

func (r *Repository) Update(ctx context.Context, modify entities.PartnerModify) (*entities.DeliveryPartner, error) {
	builder := qb.
		Update("delivery_partners")

	if modify.ServiceableZipCodes != nil {
		builder = builder.Set("serviceable_zip_codes", *modify.ServiceableZipCodes)
	}
	if modify.MaxHandlingCapacity != nil {
		builder = builder.Set("max_handling_capacity", *modify.MaxHandlingCapacity)
	}

	builder = builder.
		Where(sq.Eq{"id": modify.ID}).
		Suffix("RETURNING id, name, email, password_hash, email_verified, serviceable_zip_codes, max_handling_capacity, created_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected partner repository update error: %w", err)
	}

	var partnerDB PartnerDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&partnerDB.ID,
		&partnerDB.Name,
		&partnerDB.Email,
		&partnerDB.PasswordHash,
		&partnerDB.EmailVerified,
		&partnerDB.ServiceableZipCodes,
		&partnerDB.MaxHandlingCapacity,
		&partnerDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, partnerservice.ErrPartnerNotFound
		}
		return nil, fmt.Errorf("unexpected partner repository update error: %w", err)
	}

	return ToDomain(&partnerDB), nil
}

func (r *Repository) SetEmailVerified(ctx context.Context, id uuid.UUID) error {
	query := `
		UPDATE delivery_partners SET email_verified = TRUE WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected partner repository verify error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return partnerservice.ErrPartnerNotFound
	}

	return nil
}

// CandidatesByZip locks the eligible partner rows for the ambient
// transaction and counts each partner's shipments whose latest event is
// still an open status. FOR UPDATE cannot sit next to an aggregate, so
// the lock happens in the CTE and the count in a correlated subquery.
func (r *Repository) CandidatesByZip(ctx context.Context, zip int64) ([]entities.PartnerCandidate, error) {
	query := `
		WITH eligible AS (
			SELECT id, name, email, password_hash, email_verified, serviceable_zip_codes, max_handling_capacity, created_at
			FROM delivery_partners
			WHERE $1 = ANY (serviceable_zip_codes)
			ORDER BY created_at, id
			FOR UPDATE
		)
		SELECT
			e.id, e.name, e.email, e.password_hash, e.email_verified, e.serviceable_zip_codes, e.max_handling_capacity, e.created_at,
			(
				SELECT COUNT(*)
				FROM shipments s
				WHERE s.delivery_partner_id = e.id
				  AND (
					SELECT ev.status
					FROM shipment_events ev
					WHERE ev.shipment_id = s.id
					ORDER BY ev.created_at DESC, ev.seq DESC
					LIMIT 1
				  ) NOT IN ('delivered', 'returned', 'cancelled')
			) AS active_shipments
		FROM eligible e
		ORDER BY e.created_at, e.id
	`

	rows, err := r.querier.Query(ctx, query, zip)
	if err != nil {
		return nil, fmt.Errorf("unexpected partner repository candidates error: %w", err)
	}
	defer rows.Close()

	candidates := make([]entities.PartnerCandidate, 0, 8)
	for rows.Next() {
		var partnerDB PartnerDB
		var active int
		err := rows.Scan(
			&partnerDB.ID,
			&partnerDB.Name,
			&partnerDB.Email,
			&partnerDB.PasswordHash,
			&partnerDB.EmailVerified,
			&partnerDB.ServiceableZipCodes,
			&partnerDB.MaxHandlingCapacity,
			&partnerDB.CreatedAt,
			&active,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected partner repository candidates error: %w", err)
		}
		candidates = append(candidates, entities.PartnerCandidate{
			Partner:         *ToDomain(&partnerDB),
			ActiveShipments: active,
		})
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected partner repository candidates error: %w", err)
	}

	return candidates, nil
}
