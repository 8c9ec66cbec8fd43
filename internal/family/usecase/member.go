package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"viegrand-care/internal/family"
	"viegrand-care/internal/family/repository"
	"viegrand-care/internal/model"
)

// AddMember resolves the QR payload first so an unknown key is reported
// before anything is written on the backend.
func (uc *implUseCase) AddMember(ctx context.Context, sc model.Scope, input family.AddMemberInput) (family.AddMemberOutput, error) {
	email := strings.TrimSpace(input.RelativeEmail)
	if email == "" {
		email = sc.Email
	}
	if email == "" {
		return family.AddMemberOutput{}, family.ErrEmptyEmail
	}

	key, err := extractKey(input.Data)
	if err != nil {
		return family.AddMemberOutput{}, err
	}

	u, err := uc.lookup(ctx, key)
	if err != nil {
		return family.AddMemberOutput{}, err
	}

	m, err := uc.repo.AddMember(ctx, repository.AddMemberOptions{RelativeEmail: email, PrivateKey: key})
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrConflict):
			return family.AddMemberOutput{}, family.ErrAlreadyLinked
		case errors.Is(err, repository.ErrNotFound):
			uc.users.Remove(key)
			return family.AddMemberOutput{}, family.ErrUserNotFound
		}
		uc.l.Errorf(ctx, "family.AddMember: repo.AddMember: %v", err)
		return family.AddMemberOutput{}, fmt.Errorf("failed to add family member: %w", err)
	}
	if m.User.ID == 0 {
		m.User = u
	}

	uc.l.Infof(ctx, "family.AddMember: user=%s linked %s to account %d (member %d)", sc.UserID, email, m.User.ID, m.ID)
	return family.AddMemberOutput{Member: m}, nil
}

func (uc *implUseCase) RemoveMember(ctx context.Context, sc model.Scope, id int64) error {
	if id <= 0 {
		return family.ErrInvalidMemberID
	}

	if err := uc.repo.RemoveMember(ctx, id); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return family.ErrMemberNotFound
		}
		uc.l.Errorf(ctx, "family.RemoveMember: user=%s id=%d: %v", sc.UserID, id, err)
		return fmt.Errorf("failed to remove family member: %w", err)
	}

	uc.l.Infof(ctx, "family.RemoveMember: user=%s id=%d", sc.UserID, id)
	return nil
}
