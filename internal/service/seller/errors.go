package seller

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidEmail          = errors.New("invalid email")
	ErrInvalidPassword       = errors.New("password too short")

	ErrSellerNotFound = errors.New("seller not found")
	ErrEmailTaken     = errors.New("email already registered")
	ErrBadCredentials = errors.New("email or password is incorrect")
	ErrNotVerified    = errors.New("email not verified")
	ErrInvalidToken   = errors.New("verification token invalid or expired")
)
