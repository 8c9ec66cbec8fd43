package reminder

import (
	"viegrand-care/internal/model"
	"viegrand-care/pkg/datemath"
)

// CreatePayload is a fully validated reminder ready to be sent to the backend.
type CreatePayload struct {
	RecipientEmail string
	RecipientName  string
	RecipientKey   string
	Content        string
	DateTime       datemath.APIDateTime
}

// PreviewInput holds raw, possibly partial, date and time keystrokes.
type PreviewInput struct {
	Date string
	Time string
}

// PreviewOutput reports the masked strings and whether each is complete and valid.
type PreviewOutput struct {
	Date      string
	Time      string
	DateValid bool
	TimeValid bool
	Payload   *datemath.APIDateTime // Set only when both fields are valid
}

// CreateInput is the submitted reminder form.
type CreateInput struct {
	Date           string // dd/mm/yyyy
	Time           string // HH:MM
	Content        string
	RecipientEmail string
	RecipientName  string
	RecipientKey   string
}

// CreateOutput is the result of reminder creation.
type CreateOutput struct {
	Reminder model.Reminder
}

// ListInput filters reminders by recipient email. Empty means the caller's email.
type ListInput struct {
	Email string
}

// ListOutput is the result of List.
type ListOutput struct {
	Reminders []model.Reminder
	Count     int
}
