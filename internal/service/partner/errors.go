package partner

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidPassword       = errors.New("password too short")
	ErrInvalidCapacity       = errors.New("max handling capacity must not be negative")
	ErrNoServiceableZips     = errors.New("at least one serviceable zip code is required")

	ErrPartnerNotFound = errors.New("delivery partner not found")
	ErrEmailTaken      = errors.New("email already registered")
	ErrBadCredentials  = errors.New("email or password is incorrect")
	ErrNotVerified     = errors.New("email not verified")
	ErrInvalidToken    = errors.New("verification token invalid or expired")
)
