package gcalendar

import "time"

// Config locates the credentials used by NewClient.
type Config struct {
	CredentialsPath string // Service account or installed-app JSON
	TokenPath       string // OAuth token for installed-app credentials, default "token.json"
}

// CreateEventRequest is the input for creating a Google Calendar event.
type CreateEventRequest struct {
	CalendarID   string // Default "primary"
	EventID      string // Optional client-chosen id, base32hex [a-v0-9], 5-1024 chars
	Summary      string
	Description  string
	StartTime    time.Time
	EndTime      time.Time
	Timezone     string // e.g. "Asia/Ho_Chi_Minh"
	PopupMinutes int    // Popup notification lead time; 0 keeps calendar defaults
}

// Event is a simplified representation of a Google Calendar event.
type Event struct {
	ID        string
	Summary   string
	HtmlLink  string
	StartTime time.Time
	EndTime   time.Time
}
