package repository

import (
	"context"

	"viegrand-care/internal/model"
)

// Repository is the interface for reminder persistence on the VieGrand backend.
type Repository interface {
	CreateReminder(ctx context.Context, opt CreateReminderOptions) (model.Reminder, error)
	ListReminders(ctx context.Context, opt ListRemindersOptions) ([]model.Reminder, error)
	DeleteReminder(ctx context.Context, id int64) error
}
