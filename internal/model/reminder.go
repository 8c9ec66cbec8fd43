package model

import "time"

// Reminder is a scheduled notification created by a relative for an elderly user.
type Reminder struct {
	ID             int64
	RecipientEmail string
	RecipientName  string
	Content        string
	At             time.Time // Wall clock in the configured timezone
	NgayGio        string    // Backend "YYYY-MM-DD HH:MM:SS"
	ThoiGian       string    // Backend "HH:MM:SS"
	Status         string
	CalendarLink   string // Google Calendar mirror, may be empty
}
