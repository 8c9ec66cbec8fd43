package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"viegrand-care/internal/vitals"
	"viegrand-care/pkg/bmi"
	pkgErrors "viegrand-care/pkg/errors"
	"viegrand-care/pkg/log"
	"viegrand-care/pkg/response"
)

type handler struct {
	l  log.Logger
	uc vitals.UseCase
}

// New creates a new HTTP handler for the vitals domain.
func New(l log.Logger, uc vitals.UseCase) *handler {
	return &handler{l: l, uc: uc}
}

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rg.POST("/vitals/bmi", h.BMI)
}

type bmiReq struct {
	HeightCM float64 `json:"height_cm"`
	WeightKG float64 `json:"weight_kg"`
}

type bmiResp struct {
	BMI      float64 `json:"bmi"`
	Category string  `json:"category"`
	Label    string  `json:"label"`
}

func (h *handler) mapError(err error) error {
	switch {
	case errors.Is(err, bmi.ErrInvalidHeight):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Chiều cao không hợp lệ")
	case errors.Is(err, bmi.ErrInvalidWeight):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Cân nặng không hợp lệ")
	default:
		return pkgErrors.ErrInternalServerError
	}
}

// BMI godoc
// @Summary     Calculate BMI
// @Tags        Vitals
// @Accept      json
// @Produce     json
// @Param       body body bmiReq true "Height (cm) and weight (kg)"
// @Success     200 {object} bmiResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/vitals/bmi [POST]
func (h *handler) BMI(c *gin.Context) {
	ctx := c.Request.Context()

	var req bmiReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, pkgErrors.ErrBadRequest, nil)
		return
	}

	out, err := h.uc.BMI(ctx, vitals.BMIInput{HeightCM: req.HeightCM, WeightKG: req.WeightKG})
	if err != nil {
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, bmiResp{BMI: out.BMI, Category: string(out.Category), Label: out.Label})
}
