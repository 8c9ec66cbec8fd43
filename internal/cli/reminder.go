package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"viegrand-care/internal/model"
	"viegrand-care/internal/reminder"
	"viegrand-care/internal/reminder/form"
	reminderRepo "viegrand-care/internal/reminder/repository/viegrand"
	reminderUC "viegrand-care/internal/reminder/usecase"
	"viegrand-care/pkg/datemath"
)

func newReminderCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reminder",
		Short: "Create, list and delete reminders",
	}
	cmd.AddCommand(newReminderCreateCmd(app))
	cmd.AddCommand(newReminderListCmd(app))
	cmd.AddCommand(newReminderDeleteCmd(app))
	return cmd
}

func (app *App) reminderUseCase(rejectPast bool) (reminder.UseCase, error) {
	client, err := app.backend()
	if err != nil {
		return nil, err
	}
	parser, err := app.parser()
	if err != nil {
		return nil, err
	}
	return reminderUC.New(app.log(), reminderRepo.New(client, parser), nil, parser, reminderUC.Config{RejectPast: rejectPast}), nil
}

func newReminderCreateCmd(app *App) *cobra.Command {
	var (
		in          reminder.CreateInput
		interactive bool
		allowPast   bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a reminder for an elderly user",
		Example: strings.TrimSpace(`
  viegrandctl reminder create --to ba@example.com --date 05/03/2025 --time 08:30 --content "Uống thuốc huyết áp"
  viegrandctl reminder create --interactive
`),
		RunE: func(cmd *cobra.Command, args []string) error {
			if interactive {
				if err := reminderForm(&in).RunWithContext(commandContext(cmd)); err != nil {
					return err
				}
			}

			uc, err := app.reminderUseCase(!allowPast)
			if err != nil {
				return err
			}

			out, err := uc.Create(commandContext(cmd), model.Scope{UserID: "cli"}, in)
			if err != nil {
				var vErr *form.ValidationError
				if errors.As(err, &vErr) {
					return errors.New(vErr.Message)
				}
				return err
			}
			return writeOut(cmd, app, reminderJSON(out.Reminder))
		},
	}

	cmd.Flags().StringVar(&in.RecipientEmail, "to", "", "Recipient email")
	cmd.Flags().StringVar(&in.RecipientName, "name", "", "Recipient display name")
	cmd.Flags().StringVar(&in.RecipientKey, "key", "", "Recipient private key")
	cmd.Flags().StringVar(&in.Date, "date", "", "Date, dd/mm/yyyy (digits only also accepted)")
	cmd.Flags().StringVar(&in.Time, "time", "", "Time, HH:MM (digits only also accepted)")
	cmd.Flags().StringVar(&in.Content, "content", "", "Reminder text")
	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Fill the form interactively")
	cmd.Flags().BoolVar(&allowPast, "allow-past", false, "Allow a date and time in the past")
	return cmd
}

// reminderForm shows every field, prefilled with whatever flags set. Date and
// time are checked after masking, the same way the reminder form does.
func reminderForm(in *reminder.CreateInput) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Email người nhận").
				Value(&in.RecipientEmail).
				Validate(recipientRequired(in)),
			huh.NewInput().
				Title("Tên người nhận").
				Value(&in.RecipientName),
			huh.NewText().
				Title("Nội dung").
				Value(&in.Content).
				Validate(required(form.MsgEmptyContent)),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Ngày (dd/mm/yyyy)").
				Placeholder("05/03/2025").
				Value(&in.Date).
				Validate(validateDate),
			huh.NewInput().
				Title("Giờ (HH:MM)").
				Placeholder("08:30").
				Value(&in.Time).
				Validate(validateTime),
		),
	).WithShowHelp(false)
}

func required(msg string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return errors.New(msg)
		}
		return nil
	}
}

// recipientRequired accepts an empty email when a private key was given.
func recipientRequired(in *reminder.CreateInput) func(string) error {
	return func(email string) error {
		if strings.TrimSpace(email) == "" && strings.TrimSpace(in.RecipientKey) == "" {
			return errors.New(form.MsgNoRecipient)
		}
		return nil
	}
}

func validateDate(s string) error {
	if !datemath.IsValidDateInput(datemath.FormatDateInput(s)) {
		return errors.New(form.MsgInvalidDate)
	}
	return nil
}

func validateTime(s string) error {
	if !datemath.IsValidTimeInput(datemath.FormatTimeInput(s)) {
		return errors.New(form.MsgInvalidTime)
	}
	return nil
}

func newReminderListCmd(app *App) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List reminders of a recipient",
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := app.reminderUseCase(false)
			if err != nil {
				return err
			}
			out, err := uc.List(commandContext(cmd), model.Scope{UserID: "cli"}, reminder.ListInput{Email: email})
			if err != nil {
				return err
			}
			items := make([]map[string]any, 0, len(out.Reminders))
			for _, r := range out.Reminders {
				items = append(items, reminderJSON(r))
			}
			return writeOut(cmd, app, map[string]any{"reminders": items, "count": out.Count})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Recipient email")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func reminderJSON(r model.Reminder) map[string]any {
	m := map[string]any{
		"id":        r.ID,
		"email":     r.RecipientEmail,
		"name":      r.RecipientName,
		"content":   r.Content,
		"ngay_gio":  r.NgayGio,
		"thoi_gian": r.ThoiGian,
		"status":    r.Status,
	}
	if r.CalendarLink != "" {
		m["calendar_link"] = r.CalendarLink
	}
	return m
}

func newReminderDeleteCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>...",
		Short: "Delete reminders by id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := app.reminderUseCase(false)
			if err != nil {
				return err
			}

			var failed int
			deleted := make([]int64, 0, len(args))
			for _, arg := range args {
				id, err := strconv.ParseInt(arg, 10, 64)
				if err == nil {
					err = uc.Delete(commandContext(cmd), model.Scope{UserID: "cli"}, id)
				}
				if err != nil {
					failed++
					printErr(cmd, "delete %s: %v", arg, err)
					continue
				}
				deleted = append(deleted, id)
			}

			if err := writeOut(cmd, app, map[string]any{"deleted": deleted}); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d deletes failed", failed, len(args))
			}
			return nil
		},
	}
}
