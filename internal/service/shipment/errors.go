package shipment

import "errors"

var (
	ErrInvalidContent = errors.New("invalid shipment content")
	ErrInvalidWeight  = errors.New("invalid shipment weight")
	ErrInvalidZip     = errors.New("invalid destination zip")
	ErrInvalidRating  = errors.New("rating must be between 1 and 5")
	ErrInvalidTag     = errors.New("unknown tag name")

	ErrShipmentNotFound = errors.New("shipment not found")
	ErrTagNotFound      = errors.New("tag not set on shipment")
	ErrNotAuthorized    = errors.New("client not authorized for this shipment")
	ErrNothingToUpdate  = errors.New("nothing to update")
)
