package reminder

import (
	"context"

	"viegrand-care/internal/model"
)

// UseCase defines the business logic interface for the reminder domain.
type UseCase interface {
	// Preview masks raw date/time keystrokes and reports their validity.
	Preview(ctx context.Context, input PreviewInput) PreviewOutput

	// Create validates the form, sends the reminder to the backend and
	// optionally mirrors it to Google Calendar.
	Create(ctx context.Context, sc model.Scope, input CreateInput) (CreateOutput, error)

	List(ctx context.Context, sc model.Scope, input ListInput) (ListOutput, error)
	Delete(ctx context.Context, sc model.Scope, id int64) error
}
