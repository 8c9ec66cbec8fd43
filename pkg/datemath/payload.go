package datemath

import "fmt"

// BuildDateTimeForAPI converts validated display strings (dd/mm/yyyy, HH:MM)
// into the backend's ngay_gio / thoi_gian fields. Seconds are always 00 and
// no timezone conversion happens. Invalid input is rejected with
// ErrInvalidDate or ErrInvalidTime.
func BuildDateTimeForAPI(date, clock string) (APIDateTime, error) {
	day, month, year, ok := splitDate(date)
	if !ok {
		return APIDateTime{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	hour, minute, ok := splitTime(clock)
	if !ok {
		return APIDateTime{}, fmt.Errorf("%w: %q", ErrInvalidTime, clock)
	}

	thoiGian := fmt.Sprintf("%02d:%02d:00", hour, minute)
	return APIDateTime{
		NgayGio:  fmt.Sprintf("%04d-%02d-%02d %s", year, month, day, thoiGian),
		ThoiGian: thoiGian,
	}, nil
}
