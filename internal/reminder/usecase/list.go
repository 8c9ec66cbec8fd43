package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"viegrand-care/internal/model"
	"viegrand-care/internal/reminder"
	"viegrand-care/internal/reminder/repository"
)

// List returns the reminders of the given email, or of the caller when the
// input email is empty, ordered by time.
func (uc *implUseCase) List(ctx context.Context, sc model.Scope, input reminder.ListInput) (reminder.ListOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		email = sc.Email
	}
	if email == "" {
		return reminder.ListOutput{}, reminder.ErrEmptyEmail
	}

	items, err := uc.repo.ListReminders(ctx, repository.ListRemindersOptions{Email: email})
	if err != nil {
		uc.l.Errorf(ctx, "reminder.List: repo.ListReminders: %v", err)
		return reminder.ListOutput{}, fmt.Errorf("failed to list reminders: %w", err)
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].At.Before(items[j].At)
	})

	return reminder.ListOutput{Reminders: items, Count: len(items)}, nil
}

func (uc *implUseCase) Delete(ctx context.Context, sc model.Scope, id int64) error {
	if id <= 0 {
		return reminder.ErrInvalidID
	}

	if err := uc.repo.DeleteReminder(ctx, id); err != nil {
		uc.l.Errorf(ctx, "reminder.Delete: user=%s id=%d: %v", sc.UserID, id, err)
		return fmt.Errorf("failed to delete reminder: %w", err)
	}

	uc.l.Infof(ctx, "reminder.Delete: user=%s id=%d", sc.UserID, id)
	uc.tryDeleteCalendarEvent(ctx, id)
	return nil
}

func (uc *implUseCase) tryDeleteCalendarEvent(ctx context.Context, id int64) {
	if uc.calendar == nil {
		return
	}
	if err := uc.calendar.DeleteEvent(ctx, uc.cfg.CalendarID, calendarEventID(id)); err != nil {
		uc.l.Warnf(ctx, "reminder.Delete: calendar event removal failed for reminder %d (non-fatal): %v", id, err)
	}
}
