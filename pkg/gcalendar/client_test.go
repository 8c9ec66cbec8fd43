package gcalendar_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"golang.org/x/oauth2"

	"viegrand-care/pkg/gcalendar"
)

type rewriteTransport struct {
	Transport http.RoundTripper
	Host      string
}

func (t *rewriteTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.URL.Scheme = "http"
	req.URL.Host = t.Host
	return t.Transport.RoundTrip(req)
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *gcalendar.Client {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	tsClient := ts.Client()
	tsClient.Transport = &rewriteTransport{
		Transport: tsClient.Transport,
		Host:      strings.TrimPrefix(ts.URL, "http://"),
	}

	client, err := gcalendar.NewClientFromHTTP(context.Background(), tsClient)
	if err != nil {
		t.Fatalf("unexpected error creating client: %v", err)
	}
	return client
}

const installedCreds = `{
	"installed": {
		"client_id": "test-client-id.apps.googleusercontent.com",
		"project_id": "test-project",
		"auth_uri": "https://accounts.google.com/o/oauth2/auth",
		"token_uri": "https://oauth2.googleapis.com/token",
		"client_secret": "test-secret",
		"redirect_uris": ["http://localhost"]
	}
}`

func TestNewClient(t *testing.T) {
	dir := t.TempDir()
	tokenPath := filepath.Join(dir, "token.json")

	t.Run("Broken credentials", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(`{"broken":true}`), tokenPath)
		if err == nil {
			t.Errorf("expected decoding failure")
		}
	})

	t.Run("Installed app without token", func(t *testing.T) {
		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(installedCreds), filepath.Join(dir, "missing.json"))
		if err == nil {
			t.Errorf("expected missing token error")
		}
	})

	t.Run("Installed app with saved token", func(t *testing.T) {
		tok := &oauth2.Token{AccessToken: "dummy", TokenType: "Bearer", Expiry: time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)}
		if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
			t.Fatalf("save token: %v", err)
		}

		loaded, err := gcalendar.LoadToken(tokenPath)
		if err != nil {
			t.Fatalf("load token: %v", err)
		}
		if loaded.AccessToken != "dummy" {
			t.Errorf("unexpected token: %+v", loaded)
		}

		credsPath := filepath.Join(dir, "creds.json")
		os.WriteFile(credsPath, []byte(installedCreds), 0o600)

		if _, err := gcalendar.NewClient(context.Background(), gcalendar.Config{CredentialsPath: credsPath, TokenPath: tokenPath}); err != nil {
			t.Fatalf("expected client: %v", err)
		}
	})

	t.Run("Bad token file", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		os.WriteFile(bad, []byte(`{"broken": true`), 0o600)

		_, err := gcalendar.NewClientFromCredentialsJSON(context.Background(), []byte(installedCreds), bad)
		if err == nil {
			t.Fatalf("expected parsing to fail on bad token")
		}
	})

	t.Run("Missing credentials file", func(t *testing.T) {
		_, err := gcalendar.NewClient(context.Background(), gcalendar.Config{CredentialsPath: filepath.Join(dir, "nope.json")})
		if err == nil {
			t.Errorf("expected reading file error")
		}
	})
}

func TestCreateEvent(t *testing.T) {
	t.Run("Sends popup reminder", func(t *testing.T) {
		var got map[string]any
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/calendar/v3/calendars/family/events" && r.Method == http.MethodPost {
				json.NewDecoder(r.Body).Decode(&got)
				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{"id": "event-123", "summary": "Uống thuốc", "htmlLink": "https://calendar.google.com/event-uri"}`))
				return
			}
			w.WriteHeader(http.StatusNotFound)
		})

		start := time.Date(2025, 3, 5, 8, 30, 0, 0, time.UTC)
		event, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{
			CalendarID:   "family",
			EventID:      "vgr00007",
			Summary:      "Uống thuốc",
			StartTime:    start,
			EndTime:      start.Add(15 * time.Minute),
			Timezone:     "Asia/Ho_Chi_Minh",
			PopupMinutes: 10,
		})
		if err != nil {
			t.Fatalf("failed to create event: %v", err)
		}
		if event.ID != "event-123" || event.HtmlLink != "https://calendar.google.com/event-uri" {
			t.Errorf("unexpected event: %+v", event)
		}

		if got["id"] != "vgr00007" {
			t.Errorf("expected client-chosen id in body, got %v", got["id"])
		}

		reminders, ok := got["reminders"].(map[string]any)
		if !ok {
			t.Fatalf("expected reminders in body, got %v", got)
		}
		if reminders["useDefault"] != false {
			t.Errorf("expected useDefault=false, got %v", reminders["useDefault"])
		}
	})

	t.Run("Defaults to primary calendar", func(t *testing.T) {
		var path string
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			path = r.URL.Path
			w.Write([]byte(`{"id": "e"}`))
		})

		if _, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{Summary: "x"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if path != "/calendar/v3/calendars/primary/events" {
			t.Errorf("unexpected path %s", path)
		}
	})

	t.Run("API error", func(t *testing.T) {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadRequest)
		})

		if _, err := client.CreateEvent(context.Background(), gcalendar.CreateEventRequest{CalendarID: "primary"}); err == nil {
			t.Fatalf("expected create event error")
		}
	})
}

func TestDeleteEvent(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodDelete && r.URL.Path == "/calendar/v3/calendars/primary/events/event-123" {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		w.WriteHeader(http.StatusNotFound)
	})

	if err := client.DeleteEvent(context.Background(), "", "event-123"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := client.DeleteEvent(context.Background(), "", "missing"); err == nil {
		t.Fatalf("expected not found error")
	}
}
