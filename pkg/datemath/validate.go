package datemath

import (
	"regexp"
	"strconv"
	"time"
)

var (
	datePattern = regexp.MustCompile(`^(\d{2})/(\d{2})/(\d{4})$`)
	timePattern = regexp.MustCompile(`^(\d{2}):(\d{2})$`)
)

// IsValidDateInput reports whether s is a complete dd/mm/yyyy string naming
// a real calendar day between MinYear and MaxYear.
func IsValidDateInput(s string) bool {
	_, _, _, ok := splitDate(s)
	return ok
}

// IsValidTimeInput reports whether s is a complete HH:MM time of day.
func IsValidTimeInput(s string) bool {
	_, _, ok := splitTime(s)
	return ok
}

func splitDate(s string) (day, month, year int, ok bool) {
	m := datePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, 0, false
	}
	day, _ = strconv.Atoi(m[1])
	month, _ = strconv.Atoi(m[2])
	year, _ = strconv.Atoi(m[3])

	if year < MinYear || year > MaxYear || month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, 0, 0, false
	}

	// time.Date normalizes overflow (31/02 becomes 02/03), so a mismatch
	// after the round trip means the day does not exist.
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return 0, 0, 0, false
	}
	return day, month, year, true
}

func splitTime(s string) (hour, minute int, ok bool) {
	m := timePattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, false
	}
	hour, _ = strconv.Atoi(m[1])
	minute, _ = strconv.Atoi(m[2])
	if hour > 23 || minute > 59 {
		return 0, 0, false
	}
	return hour, minute, true
}
