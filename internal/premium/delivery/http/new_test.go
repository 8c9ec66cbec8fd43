package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"viegrand-care/internal/middleware"
	"viegrand-care/internal/model"
	"viegrand-care/internal/premium"
	premiumHTTP "viegrand-care/internal/premium/delivery/http"
	"viegrand-care/pkg/log"
	"viegrand-care/pkg/response"
)

type mockUseCase struct {
	out premium.StatusOutput
	err error
}

func (m *mockUseCase) Status(ctx context.Context, sc model.Scope, in premium.StatusInput) (premium.StatusOutput, error) {
	return m.out, m.err
}

func serve(uc premium.UseCase, target string) (*httptest.ResponseRecorder, response.Resp) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	premiumHTTP.RegisterRoutes(r.Group("/api/v1"), premiumHTTP.New(log.NewNop(), uc), middleware.New(log.NewNop(), middleware.Config{}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, target, nil))

	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestStatus(t *testing.T) {
	uc := &mockUseCase{out: premium.StatusOutput{
		Subscription: model.Subscription{
			Email:   "ba@example.com",
			Plan:    "family",
			Status:  "active",
			EndDate: time.Date(2025, 3, 11, 0, 0, 0, 0, time.UTC),
		},
		DaysRemaining: 10,
		Active:        true,
	}}

	w, resp := serve(uc, "/api/v1/premium/status?email=ba@example.com")
	require.Equal(t, http.StatusOK, w.Code)

	data := resp.Data.(map[string]any)
	assert.Equal(t, "2025-03-11", data["end_date"])
	assert.Equal(t, float64(10), data["days_remaining"])
	assert.Equal(t, true, data["active"])
	assert.NotContains(t, data, "start_date")
}

func TestStatusErrors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"Missing email", premium.ErrEmptyEmail, http.StatusBadRequest},
		{"No subscription", premium.ErrNoSubscription, http.StatusNotFound},
		{"Unknown", context.DeadlineExceeded, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, _ := serve(&mockUseCase{err: tt.err}, "/api/v1/premium/status")
			assert.Equal(t, tt.code, w.Code)
		})
	}
}
