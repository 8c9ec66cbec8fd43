package repository

import "viegrand-care/pkg/datemath"

// CreateReminderOptions holds the parameters for creating a reminder.
type CreateReminderOptions struct {
	RecipientEmail string
	RecipientName  string
	RecipientKey   string
	Content        string
	DateTime       datemath.APIDateTime
	IdempotencyKey string // Generated when empty
}

// ListRemindersOptions holds the parameters for listing reminders.
type ListRemindersOptions struct {
	Email string
}
