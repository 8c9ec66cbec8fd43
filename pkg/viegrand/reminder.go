package viegrand

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// CreateReminder creates a reminder via POST /reminders. idempotencyKey is
// sent so that a retried request does not create a duplicate.
func (c *Client) CreateReminder(ctx context.Context, idempotencyKey string, req CreateReminderRequest) (*Reminder, error) {
	var r Reminder
	err := c.do(ctx, request{
		method:  http.MethodPost,
		path:    "/reminders",
		body:    req,
		headers: map[string]string{headerIdempotencyKey: idempotencyKey},
	}, &r)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// ListReminders lists reminders addressed to or created for email.
func (c *Client) ListReminders(ctx context.Context, email string) ([]Reminder, error) {
	var rs []Reminder
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/reminders",
		query:  url.Values{"email": {email}},
	}, &rs)
	if err != nil {
		return nil, err
	}
	return rs, nil
}

// DeleteReminder deletes a reminder by id.
func (c *Client) DeleteReminder(ctx context.Context, id int64) error {
	return c.do(ctx, request{
		method: http.MethodDelete,
		path:   fmt.Sprintf("/reminders/%d", id),
	}, nil)
}
