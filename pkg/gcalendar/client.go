package gcalendar

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
	"google.golang.org/api/option"
)

const defaultTokenPath = "token.json"

// Client wraps the Google Calendar API service.
type Client struct {
	service *calendar.Service
}

// NewClient creates a Calendar client from the files named in cfg.
func NewClient(ctx context.Context, cfg Config) (*Client, error) {
	data, err := os.ReadFile(cfg.CredentialsPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials file: %w", err)
	}
	tokenPath := cfg.TokenPath
	if tokenPath == "" {
		tokenPath = defaultTokenPath
	}
	return NewClientFromCredentialsJSON(ctx, data, tokenPath)
}

// NewClientFromCredentialsJSON creates a Calendar client from raw credentials.
// Service account JSON is tried first, then installed-app JSON together with
// the token stored at tokenPath.
func NewClientFromCredentialsJSON(ctx context.Context, credentialsJSON []byte, tokenPath string) (*Client, error) {
	jwtConfig, err := google.JWTConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if err == nil {
		svc, svcErr := calendar.NewService(ctx, option.WithTokenSource(jwtConfig.TokenSource(ctx)))
		if svcErr != nil {
			return nil, fmt.Errorf("failed to create calendar service: %w", svcErr)
		}
		return &Client{service: svc}, nil
	}

	oauthConfig, cfgErr := google.ConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if cfgErr != nil {
		return nil, fmt.Errorf("unsupported credentials format: %w", err)
	}

	tok, err := LoadToken(tokenPath)
	if err != nil {
		return nil, err
	}

	svc, err := calendar.NewService(ctx, option.WithTokenSource(oauthConfig.TokenSource(ctx, tok)))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service from OAuth token: %w", err)
	}
	return &Client{service: svc}, nil
}

// NewClientFromHTTP creates a Calendar client from a pre-configured HTTP client.
func NewClientFromHTTP(ctx context.Context, httpClient *http.Client) (*Client, error) {
	svc, err := calendar.NewService(ctx, option.WithHTTPClient(httpClient))
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar service: %w", err)
	}
	return &Client{service: svc}, nil
}

// LoadToken reads an OAuth token written by SaveToken.
func LoadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("installed-app credentials need a token at %s (run viegrandctl calendar auth): %w", path, err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return nil, fmt.Errorf("failed to parse token %s: %w", path, err)
	}
	return &tok, nil
}

// SaveToken writes tok to path with owner-only permissions.
func SaveToken(path string, tok *oauth2.Token) error {
	data, err := json.MarshalIndent(tok, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode token: %w", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return fmt.Errorf("failed to write token %s: %w", path, err)
	}
	return nil
}

// CreateEvent creates a new Google Calendar event.
func (c *Client) CreateEvent(ctx context.Context, req CreateEventRequest) (*Event, error) {
	event := &calendar.Event{
		Id:          req.EventID,
		Summary:     req.Summary,
		Description: req.Description,
		Start: &calendar.EventDateTime{
			DateTime: req.StartTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
		End: &calendar.EventDateTime{
			DateTime: req.EndTime.Format(time.RFC3339),
			TimeZone: req.Timezone,
		},
	}
	if req.PopupMinutes > 0 {
		event.Reminders = &calendar.EventReminders{
			UseDefault: false,
			Overrides: []*calendar.EventReminder{
				{Method: "popup", Minutes: int64(req.PopupMinutes)},
			},
			ForceSendFields: []string{"UseDefault"},
		}
	}

	created, err := c.service.Events.Insert(calendarIDOrPrimary(req.CalendarID), event).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("failed to create calendar event: %w", err)
	}

	return &Event{
		ID:        created.Id,
		Summary:   created.Summary,
		HtmlLink:  created.HtmlLink,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	}, nil
}

// DeleteEvent removes an event from the calendar.
func (c *Client) DeleteEvent(ctx context.Context, calendarID, eventID string) error {
	if err := c.service.Events.Delete(calendarIDOrPrimary(calendarID), eventID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("failed to delete calendar event %s: %w", eventID, err)
	}
	return nil
}

func calendarIDOrPrimary(id string) string {
	if id == "" {
		return "primary"
	}
	return id
}

// InstalledAppConfig parses installed-app credentials for the interactive
// consent flow.
func InstalledAppConfig(credentialsJSON []byte) (*oauth2.Config, error) {
	cfg, err := google.ConfigFromJSON(credentialsJSON, calendar.CalendarEventsScope)
	if err != nil {
		return nil, fmt.Errorf("credentials are not an OAuth installed-app file: %w", err)
	}
	return cfg, nil
}
