package family

import "errors"

var (
	ErrInvalidQR       = errors.New("qr code does not carry a private key")
	ErrUserNotFound    = errors.New("no account for private key")
	ErrEmptyEmail      = errors.New("relative email is required")
	ErrAlreadyLinked   = errors.New("accounts are already linked")
	ErrInvalidMemberID = errors.New("invalid family member id")
	ErrMemberNotFound  = errors.New("family member not found")
)
