package repository

import (
	"context"
	"errors"

	"viegrand-care/internal/model"
)

var (
	ErrNotFound = errors.New("user not found")
	ErrConflict = errors.New("accounts already linked")
	ErrUpstream = errors.New("user backend unavailable")
)

// Repository looks up accounts and manages family links on the VieGrand backend.
type Repository interface {
	FindByPrivateKey(ctx context.Context, privateKey string) (model.ElderlyUser, error)
	AddMember(ctx context.Context, opt AddMemberOptions) (model.FamilyMember, error)
	RemoveMember(ctx context.Context, id int64) error
}
