package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"viegrand-care/internal/model"
	"viegrand-care/internal/premium"
	"viegrand-care/internal/premium/repository"
)

// Status reports the subscription of an account and how many days it has left.
func (uc *implUseCase) Status(ctx context.Context, sc model.Scope, input premium.StatusInput) (premium.StatusOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		email = sc.Email
	}
	if email == "" {
		return premium.StatusOutput{}, premium.ErrEmptyEmail
	}

	sub, err := uc.repo.GetSubscription(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return premium.StatusOutput{}, premium.ErrNoSubscription
		}
		uc.l.Errorf(ctx, "premium.Status: repo.GetSubscription: %v", err)
		return premium.StatusOutput{}, fmt.Errorf("failed to get subscription: %w", err)
	}

	days := uc.dateMath.DaysRemaining(sub.EndDate, uc.now())

	return premium.StatusOutput{
		Subscription:  sub,
		DaysRemaining: days,
		Active:        days > 0 && strings.EqualFold(sub.Status, premium.StatusActive),
	}, nil
}
