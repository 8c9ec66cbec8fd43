package viegrand

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"viegrand-care/internal/family/repository"
	"viegrand-care/internal/model"
	"viegrand-care/pkg/viegrand"
)

// Client is the subset of the backend client used by this repository.
type Client interface {
	FindUserByPrivateKey(ctx context.Context, privateKey string) (*viegrand.User, error)
	AddFamilyMember(ctx context.Context, req viegrand.AddFamilyMemberRequest) (*viegrand.FamilyMember, error)
	RemoveFamilyMember(ctx context.Context, id int64) error
}

type implRepository struct {
	client Client
}

// New creates a user repository backed by the VieGrand REST API.
func New(client Client) repository.Repository {
	return &implRepository{client: client}
}

func (r *implRepository) FindByPrivateKey(ctx context.Context, privateKey string) (model.ElderlyUser, error) {
	u, err := r.client.FindUserByPrivateKey(ctx, privateKey)
	if err != nil {
		return model.ElderlyUser{}, mapClientError(err)
	}

	user := toUser(*u)
	user.PrivateKey = privateKey
	return user, nil
}

func (r *implRepository) AddMember(ctx context.Context, opt repository.AddMemberOptions) (model.FamilyMember, error) {
	m, err := r.client.AddFamilyMember(ctx, viegrand.AddFamilyMemberRequest{
		Email:      opt.RelativeEmail,
		PrivateKey: opt.PrivateKey,
	})
	if err != nil {
		return model.FamilyMember{}, mapClientError(err)
	}

	member := model.FamilyMember{
		ID:            m.ID,
		RelativeEmail: m.RelativeEmail,
		User:          toUser(m.User),
	}
	if member.RelativeEmail == "" {
		member.RelativeEmail = opt.RelativeEmail
	}
	if member.User.PrivateKey == "" {
		member.User.PrivateKey = opt.PrivateKey
	}
	return member, nil
}

func (r *implRepository) RemoveMember(ctx context.Context, id int64) error {
	if err := r.client.RemoveFamilyMember(ctx, id); err != nil {
		return mapClientError(err)
	}
	return nil
}

func toUser(u viegrand.User) model.ElderlyUser {
	return model.ElderlyUser{
		ID:         u.ID,
		Email:      u.Email,
		FullName:   u.FullName,
		Phone:      u.Phone,
		PrivateKey: u.PrivateKey,
	}
}

func mapClientError(err error) error {
	if errors.Is(err, viegrand.ErrNotFound) {
		return repository.ErrNotFound
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}
	var apiErr *viegrand.APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusConflict {
		return repository.ErrConflict
	}
	return fmt.Errorf("%w: %v", repository.ErrUpstream, err)
}
