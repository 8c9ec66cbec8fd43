package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viegrand-care/internal/model"
	"viegrand-care/internal/premium"
	"viegrand-care/internal/premium/repository"
	"viegrand-care/internal/premium/usecase"
	"viegrand-care/pkg/datemath"
	"viegrand-care/pkg/log"
)

type mockRepo struct {
	sub   model.Subscription
	err   error
	email string
}

func (m *mockRepo) GetSubscription(ctx context.Context, email string) (model.Subscription, error) {
	m.email = email
	return m.sub, m.err
}

func TestStatus(t *testing.T) {
	parser, err := datemath.NewParser("Asia/Ho_Chi_Minh")
	require.NoError(t, err)
	loc := parser.Location()
	now := func() time.Time { return time.Date(2025, 3, 1, 22, 0, 0, 0, loc) }

	tests := []struct {
		name       string
		end        time.Time
		status     string
		wantDays   int
		wantActive bool
	}{
		{"Ten days left", time.Date(2025, 3, 11, 0, 0, 0, 0, loc), "active", 10, true},
		{"Ends tomorrow morning", time.Date(2025, 3, 2, 6, 0, 0, 0, loc), "active", 1, true},
		{"Ends today", time.Date(2025, 3, 1, 23, 0, 0, 0, loc), "active", 0, false},
		{"Expired", time.Date(2025, 2, 1, 0, 0, 0, 0, loc), "active", 0, false},
		{"Cancelled", time.Date(2025, 4, 1, 0, 0, 0, 0, loc), "cancelled", 31, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockRepo{sub: model.Subscription{Status: tt.status, EndDate: tt.end}}
			uc := usecase.New(log.NewNop(), repo, parser, now)

			out, err := uc.Status(context.Background(), model.Scope{Email: "con@example.com"}, premium.StatusInput{})
			require.NoError(t, err)
			assert.Equal(t, "con@example.com", repo.email)
			assert.Equal(t, tt.wantDays, out.DaysRemaining)
			assert.Equal(t, tt.wantActive, out.Active)
		})
	}

	t.Run("Missing email", func(t *testing.T) {
		uc := usecase.New(log.NewNop(), &mockRepo{}, parser, now)
		_, err := uc.Status(context.Background(), model.Scope{}, premium.StatusInput{})
		assert.ErrorIs(t, err, premium.ErrEmptyEmail)
	})

	t.Run("No subscription", func(t *testing.T) {
		uc := usecase.New(log.NewNop(), &mockRepo{err: repository.ErrNotFound}, parser, now)
		_, err := uc.Status(context.Background(), model.Scope{}, premium.StatusInput{Email: "ba@example.com"})
		assert.ErrorIs(t, err, premium.ErrNoSubscription)
	})

	t.Run("Upstream failure", func(t *testing.T) {
		uc := usecase.New(log.NewNop(), &mockRepo{err: repository.ErrUpstream}, parser, now)
		_, err := uc.Status(context.Background(), model.Scope{}, premium.StatusInput{Email: "ba@example.com"})
		assert.ErrorIs(t, err, repository.ErrUpstream)
	})
}
