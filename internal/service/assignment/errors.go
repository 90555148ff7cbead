package assignment

import "errors"

var (
	ErrInvalidZip          = errors.New("invalid destination zip")
	ErrPartnerNotAvailable = errors.New("no delivery partner available")
)
