package usecase

import (
	"context"
	"fmt"

	"viegrand-care/internal/model"
	"viegrand-care/internal/reminder"
	"viegrand-care/internal/reminder/form"
	"viegrand-care/internal/reminder/repository"
	"viegrand-care/pkg/gcalendar"
)

// Create validates the submitted form, sends it to the backend and mirrors
// the reminder to the calendar when one is configured.
func (uc *implUseCase) Create(ctx context.Context, sc model.Scope, input reminder.CreateInput) (reminder.CreateOutput, error) {
	f := form.FromInput(input)

	payload, err := form.Submit(f)
	if err != nil {
		return reminder.CreateOutput{}, err
	}

	at, err := uc.dateMath.DisplayToTime(f.Date, f.Time)
	if err != nil {
		return reminder.CreateOutput{}, err
	}
	if uc.cfg.RejectPast && at.Before(uc.now()) {
		return reminder.CreateOutput{}, reminder.ErrReminderInPast
	}

	uc.l.Infof(ctx, "reminder.Create: user=%s recipient=%s at=%s", sc.UserID, payload.RecipientEmail, payload.DateTime.NgayGio)

	rem, err := uc.repo.CreateReminder(ctx, repository.CreateReminderOptions{
		RecipientEmail: payload.RecipientEmail,
		RecipientName:  payload.RecipientName,
		RecipientKey:   payload.RecipientKey,
		Content:        payload.Content,
		DateTime:       payload.DateTime,
	})
	if err != nil {
		uc.l.Errorf(ctx, "reminder.Create: repo.CreateReminder: %v", err)
		return reminder.CreateOutput{}, fmt.Errorf("failed to create reminder: %w", err)
	}
	if rem.At.IsZero() {
		rem.At = at
	}

	rem.CalendarLink = uc.tryCreateCalendarEvent(ctx, rem)

	return reminder.CreateOutput{Reminder: rem}, nil
}

// tryCreateCalendarEvent returns the event link, or "" when the calendar is
// not configured or the call fails.
func (uc *implUseCase) tryCreateCalendarEvent(ctx context.Context, rem model.Reminder) string {
	if uc.calendar == nil {
		return ""
	}

	summary := rem.Content
	if rem.RecipientName != "" {
		summary = fmt.Sprintf("%s (%s)", rem.Content, rem.RecipientName)
	}

	event, err := uc.calendar.CreateEvent(ctx, gcalendar.CreateEventRequest{
		CalendarID:   uc.cfg.CalendarID,
		EventID:      calendarEventID(rem.ID),
		Summary:      summary,
		Description:  fmt.Sprintf("Nhắc nhở VieGrand cho %s", rem.RecipientEmail),
		StartTime:    rem.At,
		EndTime:      rem.At.Add(uc.cfg.EventDuration),
		Timezone:     uc.dateMath.Location().String(),
		PopupMinutes: uc.cfg.PopupBeforeMins,
	})
	if err != nil {
		uc.l.Warnf(ctx, "reminder.Create: calendar event creation failed for reminder %d (non-fatal): %v", rem.ID, err)
		return ""
	}
	return event.HtmlLink
}
