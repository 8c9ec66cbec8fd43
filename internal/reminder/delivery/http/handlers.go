package http

import (
	"github.com/gin-gonic/gin"

	"viegrand-care/internal/middleware"
	"viegrand-care/pkg/response"
)

// Preview godoc
// @Summary     Preview reminder date and time
// @Description Masks raw date/time keystrokes and reports whether each is valid. When both are valid the backend payload is included.
// @Tags        Reminder
// @Accept      json
// @Produce     json
// @Param       body body previewReq true "Raw input"
// @Success     200  {object} previewResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Router      /api/v1/reminders/preview [POST]
func (h *handler) Preview(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processPreviewReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	response.OK(c, h.newPreviewResp(h.uc.Preview(ctx, req.toInput())))
}

// Create godoc
// @Summary     Create a reminder
// @Description Validates the reminder form and sends it to the VieGrand backend.
// @Tags        Reminder
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Reminder form"
// @Success     200  {object} createResp
// @Failure     400  {object} response.Resp "Validation error, message is user-facing"
// @Failure     502  {object} response.Resp "Backend unavailable"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/reminders [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Warnf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List reminders
// @Description Lists reminders of a recipient. Defaults to the caller's email.
// @Tags        Reminder
// @Produce     json
// @Param       email query string false "Recipient email"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     502 {object} response.Resp "Backend unavailable"
// @Router      /api/v1/reminders [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, middleware.GetScope(c), req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Delete godoc
// @Summary     Delete a reminder
// @Tags        Reminder
// @Produce     json
// @Param       id path int true "Reminder ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/reminders/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processDeleteReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	if err := h.uc.Delete(ctx, middleware.GetScope(c), id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
