package timeline

import "errors"

var (
	ErrInvalidStatus     = errors.New("invalid shipment status")
	ErrInvalidTransition = errors.New("shipment status transition not allowed")
	ErrEmptyTimeline     = errors.New("timeline has no events to carry fields from")
)
