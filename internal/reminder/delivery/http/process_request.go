package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

func (h *handler) processPreviewReq(c *gin.Context) (previewReq, error) {
	var req previewReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, nil
}

func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, errInvalidBody
	}
	return req, nil
}

func (h *handler) processListReq(c *gin.Context) (listReq, error) {
	var req listReq
	if err := c.ShouldBindQuery(&req); err != nil {
		return req, errInvalidBody
	}
	return req, nil
}

func (h *handler) processDeleteReq(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
