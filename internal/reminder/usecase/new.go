package usecase

import (
	"context"
	"fmt"
	"time"

	"viegrand-care/internal/reminder"
	"viegrand-care/internal/reminder/repository"
	"viegrand-care/pkg/datemath"
	"viegrand-care/pkg/gcalendar"
	pkgLog "viegrand-care/pkg/log"
)

// Calendar mirrors reminders to an external calendar.
type Calendar interface {
	CreateEvent(ctx context.Context, req gcalendar.CreateEventRequest) (*gcalendar.Event, error)
	DeleteEvent(ctx context.Context, calendarID, eventID string) error
}

// calendarEventID derives the mirrored event id from the reminder id so the
// event can be removed without storing the id anywhere.
func calendarEventID(reminderID int64) string {
	return fmt.Sprintf("vgr%05d", reminderID)
}

// Config holds reminder behaviour toggles.
type Config struct {
	RejectPast      bool
	CalendarID      string
	EventDuration   time.Duration // Calendar event length, default 15 minutes
	PopupBeforeMins int           // Calendar popup lead time, default 10
}

type implUseCase struct {
	l        pkgLog.Logger
	repo     repository.Repository
	calendar Calendar
	dateMath *datemath.Parser
	cfg      Config
	now      func() time.Time
}

// New creates a new reminder UseCase. calendar may be nil.
func New(
	l pkgLog.Logger,
	repo repository.Repository,
	calendar Calendar,
	dateMath *datemath.Parser,
	cfg Config,
) reminder.UseCase {
	if cfg.EventDuration <= 0 {
		cfg.EventDuration = 15 * time.Minute
	}
	if cfg.PopupBeforeMins <= 0 {
		cfg.PopupBeforeMins = 10
	}
	return &implUseCase{
		l:        l,
		repo:     repo,
		calendar: calendar,
		dateMath: dateMath,
		cfg:      cfg,
		now:      time.Now,
	}
}

// NewWithClock is New with an injectable clock.
func NewWithClock(
	l pkgLog.Logger,
	repo repository.Repository,
	calendar Calendar,
	dateMath *datemath.Parser,
	cfg Config,
	now func() time.Time,
) reminder.UseCase {
	uc := New(l, repo, calendar, dateMath, cfg).(*implUseCase)
	if now != nil {
		uc.now = now
	}
	return uc
}
