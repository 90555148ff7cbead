package shipment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"fastship/internal/entities"
	shipmentservice "fastship/internal/service/shipment"
)

// Repository persists the shipment aggregate: the row itself, its
// append-only event log, its tag set and reviews. The timeline service
// shares this repository for event appends so the whole aggregate commits
// in one transaction.
type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, shipment entities.Shipment) (*entities.Shipment, error) {
	query := `
		INSERT INTO shipments (id, content, weight, destination, client_email, seller_id, delivery_partner_id, estimated_delivery, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id, content, weight, destination, client_email, seller_id, delivery_partner_id, estimated_delivery, created_at
	`

	var shipmentDB ShipmentDB
	err := r.querier.QueryRow(
		ctx,
		query,
		shipment.ID,
		shipment.Content,
		shipment.Weight,
		shipment.Destination,
		shipment.ClientEmail,
		shipment.SellerID,
		shipment.DeliveryPartnerID,
		shipment.EstimatedDelivery,
		shipment.CreatedAt,
	).Scan(
		&shipmentDB.ID,
		&shipmentDB.Content,
		&shipmentDB.Weight,
		&shipmentDB.Destination,
		&shipmentDB.ClientEmail,
		&shipmentDB.SellerID,
		&shipmentDB.DeliveryPartnerID,
		&shipmentDB.EstimatedDelivery,
		&shipmentDB.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository create error: %w", err)
	}

	return ToDomain(&shipmentDB, nil, nil), nil
}

func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Shipment, error) {
	return r.getByID(ctx, id, false)
}

func (r *Repository) GetByIDForUpdate(ctx context.Context, id uuid.UUID) (*entities.Shipment, error) {
	return r.getByID(ctx, id, true)
}

func (r *Repository) getByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*entities.Shipment, error) {
	query := `
		SELECT id, content, weight, destination, client_email, seller_id, delivery_partner_id, estimated_delivery, created_at
		FROM shipments
		WHERE id = $1
	`
	if forUpdate {
		query += " FOR UPDATE"
	}

	var shipmentDB ShipmentDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&shipmentDB.ID,
		&shipmentDB.Content,
		&shipmentDB.Weight,
		&shipmentDB.Destination,
		&shipmentDB.ClientEmail,
		&shipmentDB.SellerID,
		&shipmentDB.DeliveryPartnerID,
		&shipmentDB.EstimatedDelivery,
		&shipmentDB.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, shipmentservice.ErrShipmentNotFound
		}
		return nil, fmt.Errorf("unexpected shipment repository get error: %w", err)
	}

	events, err := r.eventsByShipmentID(ctx, id)
	if err != nil {
		return nil, err
	}

	tags, err := r.tagsByShipmentID(ctx, id)
	if err != nil {
		return nil, err
	}

	return ToDomain(&shipmentDB, events, tags), nil
}

// AppendEvent inserts one immutable timeline record. The sequence number
// is assigned by storage and breaks created_at ties in append order.
func (r *Repository) AppendEvent(ctx context.Context, event entities.ShipmentEvent) (*entities.ShipmentEvent, error) {
	query := `
		INSERT INTO shipment_events (shipment_id, location, status, description, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, shipment_id, location, status, description, seq, created_at
	`

	var eventDB EventDB
	err := r.querier.QueryRow(
		ctx,
		query,
		event.ShipmentID,
		event.Location,
		event.Status.String(),
		event.Description,
		event.CreatedAt,
	).Scan(
		&eventDB.ID,
		&eventDB.ShipmentID,
		&eventDB.Location,
		&eventDB.Status,
		&eventDB.Description,
		&eventDB.Seq,
		&eventDB.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository append event error: %w", err)
	}

	return ToEventDomain(&eventDB), nil
}

func (r *Repository) SetEstimatedDelivery(ctx context.Context, id uuid.UUID, estimated time.Time) error {
	query := `
		UPDATE shipments SET estimated_delivery = $2 WHERE id = $1
	`

	result, err := r.querier.Exec(ctx, query, id, estimated)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository set estimated delivery error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return shipmentservice.ErrShipmentNotFound
	}

	return nil
}

func (r *Repository) AddTag(ctx context.Context, id uuid.UUID, tag entities.TagName) error {
	query := `
		INSERT INTO shipment_tags (shipment_id, tag)
		VALUES ($1, $2)
		ON CONFLICT (shipment_id, tag) DO NOTHING
	`

	_, err := r.querier.Exec(ctx, query, id, tag.String())
	if err != nil {
		return fmt.Errorf("unexpected shipment repository add tag error: %w", err)
	}
	return nil
}

func (r *Repository) RemoveTag(ctx context.Context, id uuid.UUID, tag entities.TagName) error {
	query := `
		DELETE FROM shipment_tags WHERE shipment_id = $1 AND tag = $2
	`

	result, err := r.querier.Exec(ctx, query, id, tag.String())
	if err != nil {
		return fmt.Errorf("unexpected shipment repository remove tag error: %w", err)
	}
	if result.RowsAffected() == 0 {
		return shipmentservice.ErrTagNotFound
	}

	return nil
}

func (r *Repository) CreateReview(ctx context.Context, review entities.Review) error {
	query := `
		INSERT INTO reviews (id, shipment_id, rating, comment, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.querier.Exec(
		ctx,
		query,
		review.ID,
		review.ShipmentID,
		review.Rating,
		review.Comment,
		review.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("unexpected shipment repository create review error: %w", err)
	}
	return nil
}

// ListOverdue returns shipments whose derived status is out_for_delivery
// and whose estimate expired inside [since, until).
func (r *Repository) ListOverdue(ctx context.Context, since, until time.Time) ([]entities.OverdueShipment, error) {
	query := `
		SELECT s.id, s.destination, p.name, p.email, s.estimated_delivery
		FROM shipments s
		JOIN delivery_partners p ON p.id = s.delivery_partner_id
		WHERE s.estimated_delivery >= $1
		  AND s.estimated_delivery < $2
		  AND (
			SELECT e.status
			FROM shipment_events e
			WHERE e.shipment_id = s.id
			ORDER BY e.created_at DESC, e.seq DESC
			LIMIT 1
		  ) = 'out_for_delivery'
		ORDER BY s.estimated_delivery
	`

	rows, err := r.querier.Query(ctx, query, since, until)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list overdue error: %w", err)
	}
	defer rows.Close()

	overdue := make([]entities.OverdueShipment, 0, 8)
	for rows.Next() {
		var item entities.OverdueShipment
		err := rows.Scan(
			&item.ShipmentID,
			&item.Destination,
			&item.PartnerName,
			&item.PartnerEmail,
			&item.EstimatedDelivery,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment repository list overdue error: %w", err)
		}
		overdue = append(overdue, item)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository list overdue error: %w", err)
	}

	return overdue, nil
}

func (r *Repository) eventsByShipmentID(ctx context.Context, id uuid.UUID) ([]EventDB, error) {
	query := `
		SELECT id, shipment_id, location, status, description, seq, created_at
		FROM shipment_events
		WHERE shipment_id = $1
		ORDER BY created_at, seq
	`

	rows, err := r.querier.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository events error: %w", err)
	}
	defer rows.Close()

	events := make([]EventDB, 0, 8)
	for rows.Next() {
		var eventDB EventDB
		err := rows.Scan(
			&eventDB.ID,
			&eventDB.ShipmentID,
			&eventDB.Location,
			&eventDB.Status,
			&eventDB.Description,
			&eventDB.Seq,
			&eventDB.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected shipment repository events error: %w", err)
		}
		events = append(events, eventDB)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository events error: %w", err)
	}

	return events, nil
}

func (r *Repository) tagsByShipmentID(ctx context.Context, id uuid.UUID) ([]string, error) {
	query := `
		SELECT tag FROM shipment_tags WHERE shipment_id = $1 ORDER BY tag
	`

	rows, err := r.querier.Query(ctx, query, id)
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository tags error: %w", err)
	}
	defer rows.Close()

	tags := make([]string, 0, 4)
	for rows.Next() {
		var tag string
		if err := rows.Scan(&tag); err != nil {
			return nil, fmt.Errorf("unexpected shipment repository tags error: %w", err)
		}
		tags = append(tags, tag)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("unexpected shipment repository tags error: %w", err)
	}

	return tags, nil
}
