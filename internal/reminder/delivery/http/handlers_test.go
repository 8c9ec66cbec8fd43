package http_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"viegrand-care/internal/middleware"
	"viegrand-care/internal/model"
	"viegrand-care/internal/reminder"
	reminderHTTP "viegrand-care/internal/reminder/delivery/http"
	"viegrand-care/internal/reminder/form"
	"viegrand-care/internal/reminder/repository"
	"viegrand-care/internal/reminder/usecase"
	"viegrand-care/pkg/log"
	"viegrand-care/pkg/response"
)

type mockUseCase struct {
	createErr error
	deleteErr error
	lastScope model.Scope
	lastID    int64
}

func (m *mockUseCase) Preview(ctx context.Context, in reminder.PreviewInput) reminder.PreviewOutput {
	return usecase.New(log.NewNop(), nil, nil, nil, usecase.Config{}).Preview(ctx, in)
}

func (m *mockUseCase) Create(ctx context.Context, sc model.Scope, in reminder.CreateInput) (reminder.CreateOutput, error) {
	m.lastScope = sc
	if m.createErr != nil {
		return reminder.CreateOutput{}, m.createErr
	}
	payload, err := form.Submit(form.FromInput(in))
	if err != nil {
		return reminder.CreateOutput{}, err
	}
	return reminder.CreateOutput{Reminder: model.Reminder{
		ID:             9,
		RecipientEmail: payload.RecipientEmail,
		Content:        payload.Content,
		NgayGio:        payload.DateTime.NgayGio,
		ThoiGian:       payload.DateTime.ThoiGian,
		At:             time.Date(2025, 3, 5, 8, 30, 0, 0, time.UTC),
	}}, nil
}

func (m *mockUseCase) List(ctx context.Context, sc model.Scope, in reminder.ListInput) (reminder.ListOutput, error) {
	if in.Email == "" && sc.Email == "" {
		return reminder.ListOutput{}, reminder.ErrEmptyEmail
	}
	return reminder.ListOutput{Reminders: []model.Reminder{{ID: 1, NgayGio: "2025-03-05 08:30:00"}}, Count: 1}, nil
}

func (m *mockUseCase) Delete(ctx context.Context, sc model.Scope, id int64) error {
	m.lastID = id
	return m.deleteErr
}

func setup(uc reminder.UseCase) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	mw := middleware.New(log.NewNop(), middleware.Config{})
	reminderHTTP.RegisterRoutes(r.Group("/api/v1"), reminderHTTP.New(log.NewNop(), uc), mw)
	return r
}

func do(r *gin.Engine, method, path, body string, headers map[string]string) (*httptest.ResponseRecorder, response.Resp) {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestPreview(t *testing.T) {
	r := setup(&mockUseCase{})

	w, resp := do(r, http.MethodPost, "/api/v1/reminders/preview", `{"date":"05032025","time":"0830"}`, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	data := resp.Data.(map[string]any)
	if data["date"] != "05/03/2025" || data["time"] != "08:30" {
		t.Errorf("unexpected masks: %v", data)
	}
	payload := data["payload"].(map[string]any)
	if payload["ngay_gio"] != "2025-03-05 08:30:00" || payload["thoi_gian"] != "08:30:00" {
		t.Errorf("unexpected payload: %v", payload)
	}

	w, _ = do(r, http.MethodPost, "/api/v1/reminders/preview", `{bad`, nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 on bad body, got %d", w.Code)
	}
}

func TestCreate(t *testing.T) {
	body := `{"date":"05/03/2025","time":"08:30","content":"Uống thuốc","recipient_email":"ba@example.com"}`

	t.Run("Success", func(t *testing.T) {
		uc := &mockUseCase{}
		r := setup(uc)

		w, resp := do(r, http.MethodPost, "/api/v1/reminders", body, map[string]string{middleware.HeaderUserEmail: "con@example.com"})
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		rem := resp.Data.(map[string]any)["reminder"].(map[string]any)
		if rem["ngay_gio"] != "2025-03-05 08:30:00" || rem["at"] != "2025-03-05 08:30:00" {
			t.Errorf("unexpected reminder: %v", rem)
		}
		if uc.lastScope.Email != "con@example.com" {
			t.Errorf("scope not propagated: %+v", uc.lastScope)
		}
	})

	errCases := []struct {
		name    string
		body    string
		err     error
		code    int
		message string
	}{
		{"Invalid date", strings.Replace(body, "05/03/2025", "31/02/2024", 1), nil, http.StatusBadRequest, form.MsgInvalidDate},
		{"Invalid time", strings.Replace(body, "08:30", "24:00", 1), nil, http.StatusBadRequest, form.MsgInvalidTime},
		{"Empty content", strings.Replace(body, "Uống thuốc", " ", 1), nil, http.StatusBadRequest, form.MsgEmptyContent},
		{"Past", body, reminder.ErrReminderInPast, http.StatusBadRequest, "Thời gian nhắc nhở đã qua"},
		{"Rejected", body, &repository.RejectedError{Message: "Email không tồn tại"}, http.StatusBadRequest, "Email không tồn tại"},
		{"Upstream", body, fmt.Errorf("wrap: %w", repository.ErrUpstream), http.StatusBadGateway, "upstream service unavailable"},
		{"Unknown", body, fmt.Errorf("boom"), http.StatusInternalServerError, "internal server error"},
	}
	for _, tc := range errCases {
		t.Run(tc.name, func(t *testing.T) {
			r := setup(&mockUseCase{createErr: tc.err})

			w, resp := do(r, http.MethodPost, "/api/v1/reminders", tc.body, nil)
			if w.Code != tc.code {
				t.Fatalf("expected %d, got %d", tc.code, w.Code)
			}
			if resp.Message != tc.message {
				t.Errorf("expected message %q, got %q", tc.message, resp.Message)
			}
		})
	}
}

func TestListAndDelete(t *testing.T) {
	uc := &mockUseCase{}
	r := setup(uc)

	w, resp := do(r, http.MethodGet, "/api/v1/reminders?email=ba@example.com", "", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	if resp.Data.(map[string]any)["count"] != float64(1) {
		t.Errorf("unexpected list: %v", resp.Data)
	}

	w, resp = do(r, http.MethodGet, "/api/v1/reminders", "", nil)
	if w.Code != http.StatusBadRequest || resp.Message != "Vui lòng nhập email" {
		t.Errorf("expected 400 for missing email, got %d %q", w.Code, resp.Message)
	}

	w, _ = do(r, http.MethodDelete, "/api/v1/reminders/12", "", nil)
	if w.Code != http.StatusOK || uc.lastID != 12 {
		t.Errorf("expected delete of 12, got %d id=%d", w.Code, uc.lastID)
	}

	w, _ = do(r, http.MethodDelete, "/api/v1/reminders/abc", "", nil)
	if w.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for bad id, got %d", w.Code)
	}

	uc.deleteErr = repository.ErrNotFound
	w, _ = do(r, http.MethodDelete, "/api/v1/reminders/12", "", nil)
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404, got %d", w.Code)
	}
}
