package viegrand

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/google/uuid"

	"viegrand-care/internal/model"
	"viegrand-care/internal/reminder/repository"
	"viegrand-care/pkg/viegrand"
)

func (r *implRepository) CreateReminder(ctx context.Context, opt repository.CreateReminderOptions) (model.Reminder, error) {
	key := opt.IdempotencyKey
	if key == "" {
		key = uuid.NewString()
	}

	created, err := r.client.CreateReminder(ctx, key, viegrand.CreateReminderRequest{
		RecipientEmail: opt.RecipientEmail,
		RecipientName:  opt.RecipientName,
		Content:        opt.Content,
		RecipientKey:   opt.RecipientKey,
		NgayGio:        opt.DateTime.NgayGio,
		ThoiGian:       opt.DateTime.ThoiGian,
	})
	if err != nil {
		return model.Reminder{}, mapClientError("create", err)
	}

	return r.toModel(*created), nil
}

func (r *implRepository) ListReminders(ctx context.Context, opt repository.ListRemindersOptions) ([]model.Reminder, error) {
	items, err := r.client.ListReminders(ctx, opt.Email)
	if err != nil {
		return nil, mapClientError("list", err)
	}

	reminders := make([]model.Reminder, 0, len(items))
	for _, item := range items {
		reminders = append(reminders, r.toModel(item))
	}
	return reminders, nil
}

func (r *implRepository) DeleteReminder(ctx context.Context, id int64) error {
	if err := r.client.DeleteReminder(ctx, id); err != nil {
		return mapClientError("delete", err)
	}
	return nil
}

// toModel converts a backend reminder. An unparseable ngay_gio leaves At zero.
func (r *implRepository) toModel(item viegrand.Reminder) model.Reminder {
	rem := model.Reminder{
		ID:             item.ID,
		RecipientEmail: item.RecipientEmail,
		RecipientName:  item.RecipientName,
		Content:        item.Content,
		NgayGio:        item.NgayGio,
		ThoiGian:       item.ThoiGian,
		Status:         item.Status,
	}
	if r.parser != nil {
		if at, err := r.parser.ParseBackendDate(item.NgayGio); err == nil {
			rem.At = at
		}
	}
	return rem
}

func mapClientError(op string, err error) error {
	if errors.Is(err, viegrand.ErrNotFound) {
		return repository.ErrNotFound
	}

	var apiErr *viegrand.APIError
	if errors.As(err, &apiErr) && !apiErr.Temporary() && apiErr.StatusCode != http.StatusUnauthorized && apiErr.Message != "" {
		return &repository.RejectedError{Message: apiErr.Message}
	}

	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return err
	}

	return fmt.Errorf("%w: %s reminder: %v", repository.ErrUpstream, op, err)
}
