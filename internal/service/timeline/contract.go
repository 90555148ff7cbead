//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=timeline_test
package timeline

import (
	"context"

	"fastship/internal/entities"
)

type Repository interface {
	AppendEvent(ctx context.Context, event entities.ShipmentEvent) (*entities.ShipmentEvent, error)
}
