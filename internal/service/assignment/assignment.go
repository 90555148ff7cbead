package assignment

import (
	"context"
	"fmt"

	"fastship/internal/entities"
)

// Assignment picks a delivery partner for a destination zip: first
// zip-eligible candidate with remaining capacity, in the repository's
// enumeration order. Greedy first-fit; the hard constraint is capacity,
// not load distribution.
type Assignment struct {
	repository Repository
}

func New(repository Repository) *Assignment {
	return &Assignment{
		repository: repository,
	}
}

// Assign selects a partner but reserves nothing by itself; capacity is
// recomputed from live shipment counts, so the caller must create the
// shipment in the same transaction that produced these locked candidates.
func (a *Assignment) Assign(ctx context.Context, destinationZip int64) (*entities.DeliveryPartner, error) {
	if !isValidZip(destinationZip) {
		return nil, ErrInvalidZip
	}

	candidates, err := a.repository.CandidatesByZip(ctx, destinationZip)
	if err != nil {
		return nil, fmt.Errorf("candidates by zip: %w", err)
	}

	for i := range candidates {
		if candidates[i].Remaining() > 0 {
			return &candidates[i].Partner, nil
		}
	}

	return nil, ErrPartnerNotAvailable
}

func isValidZip(zip int64) bool {
	return zip > 0
}
