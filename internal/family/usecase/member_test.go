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

func TestAddMember(t *testing.T) {
	sc := model.Scope{UserID: "u1", Email: "con@example.com"}

	t.Run("Links caller to resolved account", func(t *testing.T) {
		repo := &mockRepo{}
		uc := usecase.New(log.NewNop(), repo)

		out, err := uc.AddMember(context.Background(), sc, family.AddMemberInput{Data: "viegrand:abc123XYZ"})
		require.NoError(t, err)
		assert.Equal(t, int64(11), out.Member.ID)
		assert.Equal(t, int64(3), out.Member.User.ID)
		require.Len(t, repo.added, 1)
		assert.Equal(t, repository.AddMemberOptions{RelativeEmail: "con@example.com", PrivateKey: "abc123XYZ"}, repo.added[0])
	})

	t.Run("Reuses cached lookup", func(t *testing.T) {
		repo := &mockRepo{}
		uc := usecase.New(log.NewNop(), repo)

		_, err := uc.ResolveQR(context.Background(), sc, family.ResolveQRInput{Data: "abc123XYZ"})
		require.NoError(t, err)
		_, err = uc.AddMember(context.Background(), sc, family.AddMemberInput{Data: `{"key":"abc123XYZ"}`})
		require.NoError(t, err)
		assert.Equal(t, 1, repo.calls)
	})

	t.Run("Explicit relative email", func(t *testing.T) {
		repo := &mockRepo{}
		uc := usecase.New(log.NewNop(), repo)

		_, err := uc.AddMember(context.Background(), model.Scope{}, family.AddMemberInput{Data: "abc123XYZ", RelativeEmail: " chau@example.com "})
		require.NoError(t, err)
		assert.Equal(t, "chau@example.com", repo.added[0].RelativeEmail)
	})

	t.Run("Missing email", func(t *testing.T) {
		repo := &mockRepo{}
		uc := usecase.New(log.NewNop(), repo)

		_, err := uc.AddMember(context.Background(), model.Scope{}, family.AddMemberInput{Data: "abc123XYZ"})
		assert.ErrorIs(t, err, family.ErrEmptyEmail)
		assert.Zero(t, repo.calls)
	})

	t.Run("Invalid QR", func(t *testing.T) {
		repo := &mockRepo{}
		uc := usecase.New(log.NewNop(), repo)

		_, err := uc.AddMember(context.Background(), sc, family.AddMemberInput{Data: "!!"})
		assert.ErrorIs(t, err, family.ErrInvalidQR)
		assert.Empty(t, repo.added)
	})

	t.Run("Unknown key writes nothing", func(t *testing.T) {
		repo := &mockRepo{err: repository.ErrNotFound}
		uc := usecase.New(log.NewNop(), repo)

		_, err := uc.AddMember(context.Background(), sc, family.AddMemberInput{Data: "abc123XYZ"})
		assert.ErrorIs(t, err, family.ErrUserNotFound)
		assert.Empty(t, repo.added)
	})

	t.Run("Already linked", func(t *testing.T) {
		uc := usecase.New(log.NewNop(), &mockRepo{addErr: repository.ErrConflict})

		_, err := uc.AddMember(context.Background(), sc, family.AddMemberInput{Data: "abc123XYZ"})
		assert.ErrorIs(t, err, family.ErrAlreadyLinked)
	})

	t.Run("Upstream failure", func(t *testing.T) {
		uc := usecase.New(log.NewNop(), &mockRepo{addErr: repository.ErrUpstream})

		_, err := uc.AddMember(context.Background(), sc, family.AddMemberInput{Data: "abc123XYZ"})
		assert.ErrorIs(t, err, repository.ErrUpstream)
	})
}

func TestRemoveMember(t *testing.T) {
	sc := model.Scope{UserID: "u1"}

	repo := &mockRepo{}
	uc := usecase.New(log.NewNop(), repo)

	assert.ErrorIs(t, uc.RemoveMember(context.Background(), sc, 0), family.ErrInvalidMemberID)
	require.NoError(t, uc.RemoveMember(context.Background(), sc, 11))
	assert.Equal(t, []int64{11}, repo.removed)

	repo.removeErr = repository.ErrNotFound
	assert.ErrorIs(t, uc.RemoveMember(context.Background(), sc, 12), family.ErrMemberNotFound)

	repo.removeErr = repository.ErrUpstream
	assert.ErrorIs(t, uc.RemoveMember(context.Background(), sc, 12), repository.ErrUpstream)
}
