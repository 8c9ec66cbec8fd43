package viegrand

import (
	"context"

	"viegrand-care/internal/reminder/repository"
	"viegrand-care/pkg/datemath"
	"viegrand-care/pkg/viegrand"
)

// Client is the subset of the backend client used by this repository.
type Client interface {
	CreateReminder(ctx context.Context, idempotencyKey string, req viegrand.CreateReminderRequest) (*viegrand.Reminder, error)
	ListReminders(ctx context.Context, email string) ([]viegrand.Reminder, error)
	DeleteReminder(ctx context.Context, id int64) error
}

type implRepository struct {
	client Client
	parser *datemath.Parser
}

// New creates a reminder repository backed by the VieGrand REST API.
func New(client Client, parser *datemath.Parser) repository.Repository {
	return &implRepository{
		client: client,
		parser: parser,
	}
}
