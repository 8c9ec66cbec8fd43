package http

import (
	"errors"
	"net/http"

	"viegrand-care/internal/reminder"
	"viegrand-care/internal/reminder/form"
	"viegrand-care/internal/reminder/repository"
	pkgErrors "viegrand-care/pkg/errors"
)

var (
	errInvalidBody = pkgErrors.NewHTTPError(http.StatusBadRequest, "Dữ liệu gửi lên không hợp lệ")
	errInvalidID   = pkgErrors.NewHTTPError(http.StatusBadRequest, "Mã nhắc nhở không hợp lệ")
)

// mapError translates use-case errors into HTTP errors from pkg/errors.
// Unknown errors surface as 500 without leaking details.
func (h *handler) mapError(err error) error {
	var vErr *form.ValidationError
	if errors.As(err, &vErr) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, vErr.Message)
	}

	var rejected *repository.RejectedError
	if errors.As(err, &rejected) {
		return pkgErrors.NewHTTPError(http.StatusBadRequest, rejected.Message)
	}

	switch {
	case errors.Is(err, reminder.ErrReminderInPast):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Thời gian nhắc nhở đã qua")
	case errors.Is(err, reminder.ErrEmptyEmail):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "Vui lòng nhập email")
	case errors.Is(err, reminder.ErrInvalidID):
		return errInvalidID
	case errors.Is(err, repository.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, "Không tìm thấy nhắc nhở")
	case errors.Is(err, repository.ErrUpstream):
		return pkgErrors.ErrBadGateway
	default:
		return pkgErrors.ErrInternalServerError
	}
}
