package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viegrand-care/internal/family"
	"viegrand-care/internal/family/repository"
	"viegrand-care/internal/family/usecase"
	"viegrand-care/internal/model"
	"viegrand-care/pkg/log"
)

type mockRepo struct {
	calls int
	keys  []string
	err   error

	addErr    error
	added     []repository.AddMemberOptions
	removeErr error
	removed   []int64
}

func (m *mockRepo) FindByPrivateKey(ctx context.Context, key string) (model.ElderlyUser, error) {
	m.calls++
	m.keys = append(m.keys, key)
	if m.err != nil {
		return model.ElderlyUser{}, m.err
	}
	return model.ElderlyUser{ID: 3, Email: "ba@example.com", PrivateKey: key}, nil
}

func (m *mockRepo) AddMember(ctx context.Context, opt repository.AddMemberOptions) (model.FamilyMember, error) {
	if m.addErr != nil {
		return model.FamilyMember{}, m.addErr
	}
	m.added = append(m.added, opt)
	return model.FamilyMember{ID: 11, RelativeEmail: opt.RelativeEmail}, nil
}

func (m *mockRepo) RemoveMember(ctx context.Context, id int64) error {
	if m.removeErr != nil {
		return m.removeErr
	}
	m.removed = append(m.removed, id)
	return nil
}

func TestResolveQR(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	t.Run("Extracts key and caches lookup", func(t *testing.T) {
		repo := &mockRepo{}
		uc := usecase.New(log.NewNop(), repo)

		out, err := uc.ResolveQR(context.Background(), sc, family.ResolveQRInput{Data: `{"private_key":"abc123XYZ"}`})
		require.NoError(t, err)
		assert.Equal(t, "abc123XYZ", out.PrivateKey)
		assert.Equal(t, int64(3), out.User.ID)

		_, err = uc.ResolveQR(context.Background(), sc, family.ResolveQRInput{Data: "viegrand:abc123XYZ"})
		require.NoError(t, err)
		assert.Equal(t, 1, repo.calls)
	})

	t.Run("Invalid payload", func(t *testing.T) {
		repo := &mockRepo{}
		uc := usecase.New(log.NewNop(), repo)

		_, err := uc.ResolveQR(context.Background(), sc, family.ResolveQRInput{Data: "  "})
		assert.ErrorIs(t, err, family.ErrInvalidQR)
		assert.Zero(t, repo.calls)
	})

	t.Run("Unknown key", func(t *testing.T) {
		uc := usecase.New(log.NewNop(), &mockRepo{err: repository.ErrNotFound})

		_, err := uc.ResolveQR(context.Background(), sc, family.ResolveQRInput{Data: "abc123XYZ"})
		assert.ErrorIs(t, err, family.ErrUserNotFound)
	})

	t.Run("Failures are not cached", func(t *testing.T) {
		repo := &mockRepo{err: repository.ErrUpstream}
		uc := usecase.New(log.NewNop(), repo)

		_, err := uc.ResolveQR(context.Background(), sc, family.ResolveQRInput{Data: "abc123XYZ"})
		assert.ErrorIs(t, err, repository.ErrUpstream)

		repo.err = nil
		_, err = uc.ResolveQR(context.Background(), sc, family.ResolveQRInput{Data: "abc123XYZ"})
		require.NoError(t, err)
		assert.Equal(t, 2, repo.calls)
	})
}
