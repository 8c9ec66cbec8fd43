package usecase

import (
	"context"

	"viegrand-care/internal/reminder"
	"viegrand-care/pkg/datemath"
)

// Preview masks raw keystrokes and, when both fields are complete and valid,
// includes the payload that would be sent to the backend.
func (uc *implUseCase) Preview(ctx context.Context, input reminder.PreviewInput) reminder.PreviewOutput {
	out := reminder.PreviewOutput{
		Date: datemath.FormatDateInput(input.Date),
		Time: datemath.FormatTimeInput(input.Time),
	}
	out.DateValid = datemath.IsValidDateInput(out.Date)
	out.TimeValid = datemath.IsValidTimeInput(out.Time)

	if out.DateValid && out.TimeValid {
		if dt, err := datemath.BuildDateTimeForAPI(out.Date, out.Time); err == nil {
			out.Payload = &dt
		}
	}
	return out
}
