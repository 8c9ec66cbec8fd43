package viegrand

import (
	"context"
	"errors"
	"fmt"

	"viegrand-care/internal/model"
	"viegrand-care/internal/premium/repository"
	"viegrand-care/pkg/datemath"
	"viegrand-care/pkg/viegrand"
)

// Client is the subset of the backend client used by this repository.
type Client interface {
	GetPremiumStatus(ctx context.Context, email string) (*viegrand.PremiumStatus, error)
}

type implRepository struct {
	client Client
	parser *datemath.Parser
}

// New creates a subscription repository backed by the VieGrand REST API.
func New(client Client, parser *datemath.Parser) repository.Repository {
	return &implRepository{client: client, parser: parser}
}

func (r *implRepository) GetSubscription(ctx context.Context, email string) (model.Subscription, error) {
	s, err := r.client.GetPremiumStatus(ctx, email)
	if err != nil {
		if errors.Is(err, viegrand.ErrNotFound) {
			return model.Subscription{}, repository.ErrNotFound
		}
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return model.Subscription{}, err
		}
		return model.Subscription{}, fmt.Errorf("%w: %v", repository.ErrUpstream, err)
	}

	sub := model.Subscription{
		Email:  s.Email,
		Plan:   s.Plan,
		Status: s.Status,
	}
	if sub.Email == "" {
		sub.Email = email
	}

	// A missing start date is tolerated, a missing end date is not.
	if s.StartDate != "" {
		if sub.StartDate, err = r.parser.ParseBackendDate(s.StartDate); err != nil {
			return model.Subscription{}, fmt.Errorf("%w: start_date: %v", repository.ErrUpstream, err)
		}
	}
	if sub.EndDate, err = r.parser.ParseBackendDate(s.EndDate); err != nil {
		return model.Subscription{}, fmt.Errorf("%w: end_date: %v", repository.ErrUpstream, err)
	}
	return sub, nil
}
