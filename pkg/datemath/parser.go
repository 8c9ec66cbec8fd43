package datemath

import (
	"fmt"
	"strings"
	"time"
)

// DefaultTimezone is the zone reminders and subscriptions are interpreted in.
const DefaultTimezone = "Asia/Ho_Chi_Minh"

// Parser turns display and backend date strings into time.Time values in a
// fixed location.
type Parser struct {
	location *time.Location
}

// NewParser creates a new date parser for the given IANA timezone string.
// An empty timezone means DefaultTimezone.
func NewParser(timezone string) (*Parser, error) {
	if timezone == "" {
		timezone = DefaultTimezone
	}
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Parser{location: loc}, nil
}

// Location returns the parser's location.
func (p *Parser) Location() *time.Location {
	return p.location
}

// DisplayToTime combines a dd/mm/yyyy date and an HH:MM time into a wall
// clock instant in the parser's location.
func (p *Parser) DisplayToTime(date, clock string) (time.Time, error) {
	day, month, year, ok := splitDate(date)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}
	hour, minute, ok := splitTime(clock)
	if !ok {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidTime, clock)
	}
	return time.Date(year, time.Month(month), day, hour, minute, 0, 0, p.location), nil
}

// ParseBackendDate parses the date formats the backend returns:
// "YYYY-MM-DD", "YYYY-MM-DD HH:MM:SS" and RFC3339.
func (p *Parser) ParseBackendDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrInvalidDate)
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.In(p.location), nil
	}
	for _, layout := range []string{APIDateTimeLayout, APIDateLayout} {
		if t, err := time.ParseInLocation(layout, s, p.location); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

// DaysRemaining returns the number of calendar days from now's day to end's
// day in the parser's location, never negative.
func (p *Parser) DaysRemaining(end, now time.Time) int {
	days := int(utcDate(p.StartOfDay(end)).Sub(utcDate(p.StartOfDay(now))).Hours() / 24)
	if days < 0 {
		return 0
	}
	return days
}

// StartOfDay returns midnight at the start of the given day in the parser's timezone.
func (p *Parser) StartOfDay(t time.Time) time.Time {
	t = t.In(p.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, p.location)
}

// utcDate moves a date onto UTC midnight so DST shifts never produce
// fractional days.
func utcDate(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
