package usecase

import (
	"context"
	"errors"
	"fmt"

	"viegrand-care/internal/family"
	"viegrand-care/internal/family/repository"
	"viegrand-care/internal/model"
	"viegrand-care/pkg/qrkey"
)

func (uc *implUseCase) ResolveQR(ctx context.Context, sc model.Scope, input family.ResolveQRInput) (family.ResolveQROutput, error) {
	key, err := extractKey(input.Data)
	if err != nil {
		return family.ResolveQROutput{}, err
	}

	u, err := uc.lookup(ctx, key)
	if err != nil {
		return family.ResolveQROutput{}, err
	}

	uc.l.Infof(ctx, "family.ResolveQR: user=%s resolved account %d", sc.UserID, u.ID)
	return family.ResolveQROutput{PrivateKey: key, User: u}, nil
}

func extractKey(data string) (string, error) {
	key, err := qrkey.Extract(data)
	if err != nil {
		return "", fmt.Errorf("%w: %v", family.ErrInvalidQR, err)
	}
	return key, nil
}

// lookup returns the account owning key. Only successful lookups are cached.
func (uc *implUseCase) lookup(ctx context.Context, key string) (model.ElderlyUser, error) {
	if u, ok := uc.users.Get(key); ok {
		return u, nil
	}

	u, err := uc.repo.FindByPrivateKey(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return model.ElderlyUser{}, family.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "family.lookup: repo.FindByPrivateKey: %v", err)
		return model.ElderlyUser{}, fmt.Errorf("failed to resolve qr: %w", err)
	}

	uc.users.Add(key, u)
	return u, nil
}
