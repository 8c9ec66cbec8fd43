package repository

import (
	"context"
	"errors"

	"viegrand-care/internal/model"
)

var (
	ErrNotFound = errors.New("subscription not found")
	ErrUpstream = errors.New("premium backend unavailable")
)

// Repository reads subscriptions from the VieGrand backend.
type Repository interface {
	GetSubscription(ctx context.Context, email string) (model.Subscription, error)
}
