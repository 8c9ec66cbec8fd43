package datemath

import "errors"

var (
	ErrInvalidDate = errors.New("invalid date input")
	ErrInvalidTime = errors.New("invalid time input")
)

// Display and wire layouts.
const (
	DisplayDateLayout = "02/01/2006"
	DisplayTimeLayout = "15:04"
	APIDateTimeLayout = "2006-01-02 15:04:05"
	APITimeLayout     = "15:04:05"
	APIDateLayout     = "2006-01-02"
)

// Accepted calendar range for date inputs.
const (
	MinYear = 1900
	MaxYear = 2100
)

const (
	maxDateDigits = 8
	maxTimeDigits = 4
)

// APIDateTime is the pair of strings the backend expects on reminder creation.
type APIDateTime struct {
	NgayGio  string `json:"ngay_gio"`  // YYYY-MM-DD HH:MM:SS
	ThoiGian string `json:"thoi_gian"` // HH:MM:SS
}
