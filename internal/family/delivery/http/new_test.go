package http_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	familyHTTP "viegrand-care/internal/family/delivery/http"
	"viegrand-care/internal/family/repository"
	"viegrand-care/internal/family/usecase"
	"viegrand-care/internal/middleware"
	"viegrand-care/internal/model"
	"viegrand-care/pkg/log"
	"viegrand-care/pkg/response"
)

type mockRepo struct {
	err       error
	addErr    error
	removeErr error
}

func (m *mockRepo) FindByPrivateKey(ctx context.Context, key string) (model.ElderlyUser, error) {
	if m.err != nil {
		return model.ElderlyUser{}, m.err
	}
	return model.ElderlyUser{ID: 3, Email: "ba@example.com", FullName: "Bà Tư", PrivateKey: key}, nil
}

func (m *mockRepo) AddMember(ctx context.Context, opt repository.AddMemberOptions) (model.FamilyMember, error) {
	if m.addErr != nil {
		return model.FamilyMember{}, m.addErr
	}
	return model.FamilyMember{ID: 11, RelativeEmail: opt.RelativeEmail}, nil
}

func (m *mockRepo) RemoveMember(ctx context.Context, id int64) error {
	return m.removeErr
}

func post(repo *mockRepo, body string) (*httptest.ResponseRecorder, response.Resp) {
	return do(repo, http.MethodPost, "/api/v1/family/qr/resolve", body)
}

func do(repo *mockRepo, method, path, body string) (*httptest.ResponseRecorder, response.Resp) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := familyHTTP.New(log.NewNop(), usecase.New(log.NewNop(), repo))
	familyHTTP.RegisterRoutes(r.Group("/api/v1"), h, middleware.New(log.NewNop(), middleware.Config{}))

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(middleware.HeaderUserEmail, "con@example.com")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp response.Resp
	json.Unmarshal(w.Body.Bytes(), &resp)
	return w, resp
}

func TestResolveQR(t *testing.T) {
	w, resp := post(&mockRepo{}, `{"data":"https://viegrand.app/link?private_key=abc123XYZ"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	data := resp.Data.(map[string]any)
	assert.Equal(t, "abc123XYZ", data["private_key"])
	assert.Equal(t, "Bà Tư", data["user"].(map[string]any)["full_name"])

	w, resp = post(&mockRepo{}, `{"data":"!!"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Mã QR không hợp lệ", resp.Message)

	w, _ = post(&mockRepo{}, `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, _ = post(&mockRepo{err: repository.ErrNotFound}, `{"data":"abc123XYZ"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w, _ = post(&mockRepo{err: repository.ErrUpstream}, `{"data":"abc123XYZ"}`)
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestAddMember(t *testing.T) {
	w, resp := do(&mockRepo{}, http.MethodPost, "/api/v1/family/members", `{"data":"viegrand:abc123XYZ"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	data := resp.Data.(map[string]any)
	assert.Equal(t, float64(11), data["id"])
	assert.Equal(t, "con@example.com", data["relative_email"])
	assert.Equal(t, "Bà Tư", data["user"].(map[string]any)["full_name"])

	w, resp = do(&mockRepo{addErr: repository.ErrConflict}, http.MethodPost, "/api/v1/family/members", `{"data":"abc123XYZ"}`)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Tài khoản đã được liên kết", resp.Message)

	w, resp = do(&mockRepo{}, http.MethodPost, "/api/v1/family/members", `{"data":"!!"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Mã QR không hợp lệ", resp.Message)

	w, _ = do(&mockRepo{err: repository.ErrNotFound}, http.MethodPost, "/api/v1/family/members", `{"data":"abc123XYZ"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestRemoveMember(t *testing.T) {
	w, _ := do(&mockRepo{}, http.MethodDelete, "/api/v1/family/members/11", "")
	assert.Equal(t, http.StatusOK, w.Code)

	w, resp := do(&mockRepo{}, http.MethodDelete, "/api/v1/family/members/abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Mã thành viên không hợp lệ", resp.Message)

	w, _ = do(&mockRepo{}, http.MethodDelete, "/api/v1/family/members/0", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w, resp = do(&mockRepo{removeErr: repository.ErrNotFound}, http.MethodDelete, "/api/v1/family/members/12", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Không tìm thấy thành viên", resp.Message)

	w, _ = do(&mockRepo{removeErr: repository.ErrUpstream}, http.MethodDelete, "/api/v1/family/members/12", "")
	assert.Equal(t, http.StatusBadGateway, w.Code)
}
