package shipment

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"

	"fastship/internal/entities"
)

const (
	// default estimate attached at creation, partner may revise it later
	defaultDeliveryEstimate = 72 * time.Hour

	reviewTokenTTL = 7 * 24 * time.Hour

	claimShipmentID = "shipment_id"
	claimPurpose    = "purpose"
	purposeReview   = "review"
)

// Shipment drives the shipment lifecycle: creation with partner
// assignment, partner-side updates, seller-side cancellation, review
// submission and tagging. All persistence for one call happens inside a
// single serializable transaction; notifications are published only after
// that transaction committed.
type Shipment struct {
	repository Repository
	assignment AssignmentService
	timeline   TimelineService
	sellers    SellerDirectory
	notifier   Notifier
	linkTokens LinkTokens
	denylist   TokenDenylist
	txManager  TxManager
	domain     string
}

func New(
	repository Repository,
	assignment AssignmentService,
	timeline TimelineService,
	sellers SellerDirectory,
	notifier Notifier,
	linkTokens LinkTokens,
	denylist TokenDenylist,
	txManager TxManager,
	domain string,
) *Shipment {
	return &Shipment{
		repository: repository,
		assignment: assignment,
		timeline:   timeline,
		sellers:    sellers,
		notifier:   notifier,
		linkTokens: linkTokens,
		denylist:   denylist,
		txManager:  txManager,
		domain:     domain,
	}
}

func (s *Shipment) Get(ctx context.Context, id uuid.UUID) (*entities.Shipment, error) {
	shipment, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get shipment: %w", err)
	}
	return shipment, nil
}

// CurrentStatus derives the status from the timeline; empty string for a
// shipment that has no events yet.
func (s *Shipment) CurrentStatus(shipment *entities.Shipment) entities.ShipmentStatus {
	return shipment.Status()
}

// Create assigns a delivery partner and persists the shipment together
// with its initial placed event. Candidate locking, the capacity check and
// both writes share one serializable transaction, so two concurrent
// creations can never overbook a partner.
func (s *Shipment) Create(ctx context.Context, create entities.ShipmentCreate, sellerID uuid.UUID) (*entities.Shipment, error) {
	if !isValidContent(create.Content) {
		return nil, ErrInvalidContent
	}
	if !isValidWeight(create.Weight) {
		return nil, ErrInvalidWeight
	}
	if !isValidZip(create.Destination) {
		return nil, ErrInvalidZip
	}

	seller, err := s.sellers.GetSeller(ctx, sellerID)
	if err != nil {
		return nil, fmt.Errorf("resolve seller: %w", err)
	}

	var created *entities.Shipment
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		partner, err := s.assignment.Assign(ctx, create.Destination)
		if err != nil {
			return fmt.Errorf("assign partner: %w", err)
		}

		now := time.Now().UTC()
		estimated := now.Add(defaultDeliveryEstimate)

		persisted, err := s.repository.Create(ctx, entities.Shipment{
			ID:                uuid.New(),
			Content:           create.Content,
			Weight:            create.Weight,
			Destination:       create.Destination,
			ClientEmail:       create.ClientEmail,
			SellerID:          seller.ID,
			DeliveryPartnerID: partner.ID,
			EstimatedDelivery: &estimated,
			CreatedAt:         now,
		})
		if err != nil {
			return fmt.Errorf("create shipment: %w", err)
		}

		// The placed event originates at the seller when we know where
		// that is, otherwise at the destination.
		location := create.Destination
		if seller.ZipCode != nil {
			location = *seller.ZipCode
		}
		placed := entities.StatusPlaced
		description := fmt.Sprintf("assigned to %s", partner.Name)

		event, err := s.timeline.Append(ctx, persisted, entities.EventChange{
			Location:    &location,
			Status:      &placed,
			Description: &description,
		})
		if err != nil {
			return fmt.Errorf("placed event: %w", err)
		}

		persisted.Timeline = append(persisted.Timeline, *event)
		created = persisted
		return nil
	})
	if err != nil {
		return nil, err
	}

	if created.ClientEmail != nil {
		// Deferred effect, after commit. Best effort by contract.
		_ = s.notifier.Publish(ctx, entities.Notification{
			Kind:      entities.NotificationShipmentPlaced,
			Recipient: *created.ClientEmail,
			Subject:   "Your shipment is on its way",
			Context: map[string]string{
				"shipment_id":        created.ID.String(),
				"content":            created.Content,
				"destination":        strconv.FormatInt(created.Destination, 10),
				"estimated_delivery": created.EstimatedDelivery.Format(time.RFC3339),
			},
		})
	}

	return created, nil
}

// Update applies a partner-side change. An update touching only the
// estimated delivery is metadata and appends no event; anything else
// appends exactly one event with carry-forward defaults. Delivery also
// mails the client a single-use review link.
func (s *Shipment) Update(ctx context.Context, id uuid.UUID, update entities.ShipmentUpdate, partnerID uuid.UUID) (*entities.Shipment, error) {
	if update.Empty() {
		return nil, ErrNothingToUpdate
	}

	var (
		updated    *entities.Shipment
		reviewNote *entities.Notification
	)
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		shipment, err := s.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}

		if shipment.DeliveryPartnerID != partnerID {
			return ErrNotAuthorized
		}

		if update.EstimatedDelivery != nil {
			err = s.repository.SetEstimatedDelivery(ctx, shipment.ID, *update.EstimatedDelivery)
			if err != nil {
				return fmt.Errorf("set estimated delivery: %w", err)
			}
			shipment.EstimatedDelivery = update.EstimatedDelivery
		}

		if !update.EstimatedDeliveryOnly() {
			event, err := s.timeline.Append(ctx, shipment, entities.EventChange{
				Location:    update.Location,
				Status:      update.Status,
				Description: update.Description,
			})
			if err != nil {
				return err
			}
			shipment.Timeline = append(shipment.Timeline, *event)

			if event.Status == entities.StatusDelivered && shipment.ClientEmail != nil {
				reviewNote, err = s.reviewRequest(shipment)
				if err != nil {
					return fmt.Errorf("review request: %w", err)
				}
			}
		}

		updated = shipment
		return nil
	})
	if err != nil {
		return nil, err
	}

	if reviewNote != nil {
		_ = s.notifier.Publish(ctx, *reviewNote)
	}

	return updated, nil
}

// Cancel appends a cancelled event on behalf of the owning seller. The
// timeline rejects it once the shipment reached a terminal status.
func (s *Shipment) Cancel(ctx context.Context, id uuid.UUID, sellerID uuid.UUID) (*entities.Shipment, error) {
	var cancelled *entities.Shipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		shipment, err := s.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}

		if shipment.SellerID != sellerID {
			return ErrNotAuthorized
		}

		status := entities.StatusCancelled
		event, err := s.timeline.Append(ctx, shipment, entities.EventChange{
			Status: &status,
		})
		if err != nil {
			return err
		}

		shipment.Timeline = append(shipment.Timeline, *event)
		cancelled = shipment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return cancelled, nil
}

// Rate stores a review authorized by a mailed single-use token rather
// than a logged-in actor. The token's jti is revoked on success.
func (s *Shipment) Rate(ctx context.Context, token string, rating int, comment *string) error {
	claims, jti, err := s.linkTokens.Decode(token)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrNotAuthorized, err)
	}
	if claims[claimPurpose] != purposeReview {
		return ErrNotAuthorized
	}

	revoked, err := s.denylist.Revoked(ctx, jti)
	if err != nil {
		return fmt.Errorf("denylist lookup: %w", err)
	}
	if revoked {
		return ErrNotAuthorized
	}

	shipmentID, err := uuid.Parse(claims[claimShipmentID])
	if err != nil {
		return ErrNotAuthorized
	}

	if !isValidRating(rating) {
		return ErrInvalidRating
	}

	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		shipment, err := s.repository.GetByID(ctx, shipmentID)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}

		return s.repository.CreateReview(ctx, entities.Review{
			ID:         uuid.New(),
			ShipmentID: shipment.ID,
			Rating:     rating,
			Comment:    comment,
			CreatedAt:  time.Now().UTC(),
		})
	})
	if err != nil {
		return err
	}

	if err := s.denylist.Revoke(ctx, jti, reviewTokenTTL); err != nil {
		return fmt.Errorf("revoke review token: %w", err)
	}
	return nil
}

// AddTag attaches a tag with set semantics: attaching a present tag is a
// no-op, never a duplicate.
func (s *Shipment) AddTag(ctx context.Context, id uuid.UUID, tag entities.TagName) (*entities.Shipment, error) {
	if !tag.Valid() {
		return nil, ErrInvalidTag
	}

	var tagged *entities.Shipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		shipment, err := s.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}

		if !shipment.HasTag(tag) {
			if err := s.repository.AddTag(ctx, shipment.ID, tag); err != nil {
				return fmt.Errorf("add tag: %w", err)
			}
			shipment.Tags = append(shipment.Tags, tag)
		}

		tagged = shipment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tagged, nil
}

// RemoveTag detaches a tag. Removing a tag the shipment does not carry is
// an error, not a no-op: the caller asked to undo something that never
// happened, and silently succeeding would hide typos.
func (s *Shipment) RemoveTag(ctx context.Context, id uuid.UUID, tag entities.TagName) (*entities.Shipment, error) {
	if !tag.Valid() {
		return nil, ErrInvalidTag
	}

	var untagged *entities.Shipment
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		shipment, err := s.repository.GetByIDForUpdate(ctx, id)
		if err != nil {
			return fmt.Errorf("get shipment: %w", err)
		}

		if !shipment.HasTag(tag) {
			return ErrTagNotFound
		}

		if err := s.repository.RemoveTag(ctx, shipment.ID, tag); err != nil {
			return fmt.Errorf("remove tag: %w", err)
		}

		kept := shipment.Tags[:0]
		for _, t := range shipment.Tags {
			if t != tag {
				kept = append(kept, t)
			}
		}
		shipment.Tags = kept

		untagged = shipment
		return nil
	})
	if err != nil {
		return nil, err
	}
	return untagged, nil
}

// DispatchOverdueAlerts mails partners about shipments still out for
// delivery past their estimate. The window is bounded so each run only
// picks up estimates that expired since the previous one.
func (s *Shipment) DispatchOverdueAlerts(ctx context.Context, window time.Duration) (int64, error) {
	now := time.Now().UTC()

	overdue, err := s.repository.ListOverdue(ctx, now.Add(-window), now)
	if err != nil {
		return 0, fmt.Errorf("list overdue: %w", err)
	}

	var dispatched int64
	for _, item := range overdue {
		err := s.notifier.Publish(ctx, entities.Notification{
			Kind:      entities.NotificationOverdueAlert,
			Recipient: item.PartnerEmail,
			Subject:   "Shipment past its estimated delivery",
			Context: map[string]string{
				"shipment_id":        item.ShipmentID.String(),
				"partner_name":       item.PartnerName,
				"destination":        strconv.FormatInt(item.Destination, 10),
				"estimated_delivery": item.EstimatedDelivery.Format(time.RFC3339),
			},
		})
		if err != nil {
			continue
		}
		dispatched++
	}

	return dispatched, nil
}

func (s *Shipment) reviewRequest(shipment *entities.Shipment) (*entities.Notification, error) {
	token, err := s.linkTokens.Encode(map[string]string{
		claimShipmentID: shipment.ID.String(),
		claimPurpose:    purposeReview,
	}, reviewTokenTTL)
	if err != nil {
		return nil, err
	}

	return &entities.Notification{
		Kind:      entities.NotificationReviewRequest,
		Recipient: *shipment.ClientEmail,
		Subject:   "How was your delivery?",
		Context: map[string]string{
			"shipment_id": shipment.ID.String(),
			"content":     shipment.Content,
			"review_url":  fmt.Sprintf("http://%s/shipment/rate?token=%s", s.domain, token),
		},
	}, nil
}
