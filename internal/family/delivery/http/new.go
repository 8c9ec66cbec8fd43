package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"viegrand-care/internal/family"
	"viegrand-care/internal/family/repository"
	"viegrand-care/internal/middleware"
	"viegrand-care/internal/model"
	pkgErrors "viegrand-care/pkg/errors"
	"viegrand-care/pkg/log"
	"viegrand-care/pkg/response"
)

type handler struct {
	l  log.Logger
	uc family.UseCase
}

// New creates a new HTTP handler for the family domain.
func New(l log.Logger, uc family.UseCase) *handler {
	return &handler{l: l, uc: uc}
}

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	g := rg.Group("/family", mw.Scope())
	g.POST("/qr/resolve", h.ResolveQR)
	g.POST("/members", h.AddMember)
	g.DELETE("/members/:id", h.RemoveMember)
}

type resolveQRReq struct {
	Data string `json:"data" binding:"required"`
}

type userResp struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone,omitempty"`
}

type resolveQRResp struct {
	PrivateKey string   `json:"private_key"`
	User       userResp `json:"user"`
}

type addMemberReq struct {
	Data  string `json:"data" binding:"required"`
	Email string `json:"email"`
}

type memberResp struct {
	ID            int64    `json:"id"`
	RelativeEmail string   `json:"relative_email"`
	User          userResp `json:"user"`
}

func newUserResp(u model.ElderlyUser) userResp {
	return userResp{
		ID:       u.ID,
		Email:    u.Email,
		FullName: u.FullName,
		Phone:    u.Phone,
	}
}

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, family.ErrInvalidQR):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Mã QR không hợp lệ")
	case errors.Is(err, family.ErrUserNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Không tìm thấy người dùng")
	case errors.Is(err, family.ErrEmptyEmail):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Vui lòng nhập email")
	case errors.Is(err, family.ErrAlreadyLinked):
		return pkgErrors.NewHTTPError(http.StatusConflict, "Tài khoản đã được liên kết")
	case errors.Is(err, family.ErrInvalidMemberID):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Mã thành viên không hợp lệ")
	case errors.Is(err, family.ErrMemberNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Không tìm thấy thành viên")
	case errors.Is(err, repository.ErrUpstream):
		return pkgErrors.ErrBadGateway
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// ResolveQR godoc
// @Summary     Resolve a family QR code
// @Description Extracts the private key from a scanned QR payload and returns the elderly account it belongs to.
// @Tags        Family
// @Accept      json
// @Produce     json
// @Param       body body resolveQRReq true "Scanned QR text"
// @Success     200 {object} resolveQRResp
// @Failure     400 {object} response.Resp "Invalid QR"
// @Failure     404 {object} response.Resp "Unknown key"
// @Router      /api/v1/family/qr/resolve [POST]
func (h *handler) ResolveQR(c *gin.Context) {
	ctx := c.Request.Context()

	var req resolveQRReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "Mã QR không hợp lệ"), nil)
		return
	}

	out, err := h.uc.ResolveQR(ctx, middleware.GetScope(c), family.ResolveQRInput{Data: req.Data})
	if err != nil {
		h.l.Warnf(ctx, "uc.ResolveQR: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, resolveQRResp{
		PrivateKey: out.PrivateKey,
		User:       newUserResp(out.User),
	})
}

// AddMember godoc
// @Summary     Link a family member
// @Description Links the caller (or the given email) to the elderly account a scanned QR payload points to.
// @Tags        Family
// @Accept      json
// @Produce     json
// @Param       body body addMemberReq true "Scanned QR text and optional relative email"
// @Success     200 {object} memberResp
// @Failure     400 {object} response.Resp "Invalid QR or missing email"
// @Failure     404 {object} response.Resp "Unknown key"
// @Failure     409 {object} response.Resp "Already linked"
// @Router      /api/v1/family/members [POST]
func (h *handler) AddMember(c *gin.Context) {
	ctx := c.Request.Context()

	var req addMemberReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.NewHTTPError(http.StatusBadRequest, "Mã QR không hợp lệ"), nil)
		return
	}

	out, err := h.uc.AddMember(ctx, middleware.GetScope(c), family.AddMemberInput{Data: req.Data, RelativeEmail: req.Email})
	if err != nil {
		h.l.Warnf(ctx, "uc.AddMember: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, memberResp{
		ID:            out.Member.ID,
		RelativeEmail: out.Member.RelativeEmail,
		User:          newUserResp(out.Member.User),
	})
}

// RemoveMember godoc
// @Summary     Unlink a family member
// @Tags        Family
// @Produce     json
// @Param       id path int true "Family member id"
// @Success     200 {object} response.Resp
// @Failure     400 {object} response.Resp "Invalid id"
// @Failure     404 {object} response.Resp "Unknown member"
// @Router      /api/v1/family/members/{id} [DELETE]
func (h *handler) RemoveMember(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, h.mapError(family.ErrInvalidMemberID), nil)
		return
	}

	if err := h.uc.RemoveMember(ctx, middleware.GetScope(c), id); err != nil {
		h.l.Warnf(ctx, "uc.RemoveMember: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
