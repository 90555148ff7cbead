//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=assignment_test
package assignment

import (
	"context"

	"fastship/internal/entities"
)

type Repository interface {
	// CandidatesByZip returns partners serving the zip together with their
	// live shipment counts, in enumeration order, with the partner rows
	// locked for the duration of the ambient transaction.
	CandidatesByZip(ctx context.Context, zip int64) ([]entities.PartnerCandidate, error)
}
