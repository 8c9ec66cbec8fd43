package datemath

import "strings"

// FormatDateInput masks free-typed input into dd/mm/yyyy as the user types.
// Non-digits are dropped, at most 8 digits are kept, and a separator is only
// written once a digit follows it.
func FormatDateInput(s string) string {
	d := digitsOnly(s, maxDateDigits)

	switch {
	case len(d) <= 2:
		return d
	case len(d) <= 4:
		return d[:2] + "/" + d[2:]
	default:
		return d[:2] + "/" + d[2:4] + "/" + d[4:]
	}
}

// FormatTimeInput masks free-typed input into HH:MM as the user types.
func FormatTimeInput(s string) string {
	d := digitsOnly(s, maxTimeDigits)
	if len(d) <= 2 {
		return d
	}
	return d[:2] + ":" + d[2:]
}

// digitsOnly keeps ASCII digits of s, truncated to limit.
func digitsOnly(s string, limit int) string {
	var sb strings.Builder
	sb.Grow(limit)
	for i := 0; i < len(s) && sb.Len() < limit; i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			sb.WriteByte(c)
		}
	}
	return sb.String()
}
