package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"viegrand-care/internal/middleware"
	"viegrand-care/internal/premium"
	"viegrand-care/internal/premium/repository"
	pkgErrors "viegrand-care/pkg/errors"
	"viegrand-care/pkg/log"
	"viegrand-care/pkg/response"
)

type handler struct {
	l  log.Logger
	uc premium.UseCase
}

// New creates a new HTTP handler for the premium domain.
func New(l log.Logger, uc premium.UseCase) *handler {
	return &handler{l: l, uc: uc}
}

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	rg.GET("/premium/status", mw.Scope(), h.Status)
}

type statusReq struct {
	Email string `form:"email"`
}

type statusResp struct {
	Email         string         `json:"email"`
	Plan          string         `json:"plan"`
	Status        string         `json:"status"`
	StartDate     *response.Date `json:"start_date,omitempty"`
	EndDate       response.Date  `json:"end_date"`
	DaysRemaining int            `json:"days_remaining"`
	Active        bool           `json:"active"`
}

func newStatusResp(out premium.StatusOutput) statusResp {
	resp := statusResp{
		Email:         out.Subscription.Email,
		Plan:          out.Subscription.Plan,
		Status:        out.Subscription.Status,
		EndDate:       response.Date(out.Subscription.EndDate),
		DaysRemaining: out.DaysRemaining,
		Active:        out.Active,
	}
	if !out.Subscription.StartDate.IsZero() {
		start := response.Date(out.Subscription.StartDate)
		resp.StartDate = &start
	}
	return resp
}

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, premium.ErrEmptyEmail):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Vui lòng nhập email")
	case errors.Is(err, premium.ErrNoSubscription):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Tài khoản chưa đăng ký gói Premium")
	case errors.Is(err, repository.ErrUpstream):
		return pkgErrors.ErrBadGateway
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// Status godoc
// @Summary     Premium subscription status
// @Description Returns the subscription of an account with the days remaining until it ends.
// @Tags        Premium
// @Produce     json
// @Param       email query string false "Account email, defaults to the caller"
// @Success     200 {object} statusResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "No subscription"
// @Failure     502 {object} response.Resp "Backend unavailable"
// @Router      /api/v1/premium/status [GET]
func (h *handler) Status(c *gin.Context) {
	ctx := c.Request.Context()

	var req statusReq
	if err := c.ShouldBindQuery(&req); err != nil {
		response.Error(c, pkgErrors.ErrBadRequest, nil)
		return
	}

	out, err := h.uc.Status(ctx, middleware.GetScope(c), premium.StatusInput{Email: req.Email})
	if err != nil {
		h.l.Warnf(ctx, "uc.Status: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newStatusResp(out))
}
