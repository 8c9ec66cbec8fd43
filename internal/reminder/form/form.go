// Package form models the reminder creation form as an immutable value.
// Keystrokes produce a new Form through Apply; validation only runs on Submit.
package form

import (
	"errors"
	"strings"

	"viegrand-care/internal/reminder"
	"viegrand-care/pkg/datemath"
)

// Field names a form input.
type Field string

const (
	FieldDate           Field = "date"
	FieldTime           Field = "time"
	FieldContent        Field = "content"
	FieldRecipientEmail Field = "recipient_email"
	FieldRecipientName  Field = "recipient_name"
	FieldRecipientKey   Field = "recipient_key"
)

var (
	ErrEmptyContent = errors.New("reminder content is empty")
	ErrNoRecipient  = errors.New("reminder recipient is missing")
)

// Form is the state of the reminder creation form.
type Form struct {
	Date           string
	Time           string
	Content        string
	RecipientEmail string
	RecipientName  string
	RecipientKey   string
}

// Edit replaces the value of one field.
type Edit struct {
	Field Field
	Value string
}

// Apply returns f with e applied. Date and time values are masked as they
// are typed; unknown fields leave the form unchanged.
func Apply(f Form, e Edit) Form {
	switch e.Field {
	case FieldDate:
		f.Date = datemath.FormatDateInput(e.Value)
	case FieldTime:
		f.Time = datemath.FormatTimeInput(e.Value)
	case FieldContent:
		f.Content = strings.TrimLeft(e.Value, " \t")
	case FieldRecipientEmail:
		f.RecipientEmail = strings.TrimSpace(e.Value)
	case FieldRecipientName:
		f.RecipientName = strings.TrimLeft(e.Value, " \t")
	case FieldRecipientKey:
		f.RecipientKey = strings.TrimSpace(e.Value)
	}
	return f
}

// ApplyAll folds edits over f in order.
func ApplyAll(f Form, edits ...Edit) Form {
	for _, e := range edits {
		f = Apply(f, e)
	}
	return f
}

// FromInput builds a form from a submitted request, masking date and time
// the same way keystrokes would.
func FromInput(in reminder.CreateInput) Form {
	return ApplyAll(Form{},
		Edit{FieldDate, in.Date},
		Edit{FieldTime, in.Time},
		Edit{FieldContent, in.Content},
		Edit{FieldRecipientEmail, in.RecipientEmail},
		Edit{FieldRecipientName, in.RecipientName},
		Edit{FieldRecipientKey, in.RecipientKey},
	)
}

// Validate checks f field by field and returns the first failure as a
// *ValidationError.
func Validate(f Form) error {
	if f.RecipientEmail == "" && f.RecipientKey == "" {
		return newValidationError(FieldRecipientEmail, MsgNoRecipient, ErrNoRecipient)
	}
	if strings.TrimSpace(f.Content) == "" {
		return newValidationError(FieldContent, MsgEmptyContent, ErrEmptyContent)
	}
	if !datemath.IsValidDateInput(f.Date) {
		return newValidationError(FieldDate, MsgInvalidDate, datemath.ErrInvalidDate)
	}
	if !datemath.IsValidTimeInput(f.Time) {
		return newValidationError(FieldTime, MsgInvalidTime, datemath.ErrInvalidTime)
	}
	return nil
}

// Submit validates f and converts it into the backend payload.
func Submit(f Form) (reminder.CreatePayload, error) {
	if err := Validate(f); err != nil {
		return reminder.CreatePayload{}, err
	}

	dt, err := datemath.BuildDateTimeForAPI(f.Date, f.Time)
	if err != nil {
		return reminder.CreatePayload{}, err
	}

	return reminder.CreatePayload{
		RecipientEmail: f.RecipientEmail,
		RecipientName:  strings.TrimSpace(f.RecipientName),
		RecipientKey:   f.RecipientKey,
		Content:        strings.TrimSpace(f.Content),
		DateTime:       dt,
	}, nil
}
