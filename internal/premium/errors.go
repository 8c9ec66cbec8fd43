package premium

import "errors"

var (
	ErrEmptyEmail     = errors.New("email is required")
	ErrNoSubscription = errors.New("no subscription for account")
)
