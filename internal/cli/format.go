package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"viegrand-care/pkg/datemath"
)

func newFormatCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "format",
		Short: "Apply the date/time input masks",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "date <input>",
		Short: "Mask input as dd/mm/yyyy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), datemath.FormatDateInput(args[0]))
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "time <input>",
		Short: "Mask input as HH:MM",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), datemath.FormatTimeInput(args[0]))
			return err
		},
	})

	return cmd
}

func newValidateCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <date> <time>",
		Short: "Validate a date and time and show the backend payload",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			date := datemath.FormatDateInput(args[0])
			clock := datemath.FormatTimeInput(args[1])

			out := map[string]any{
				"date":       date,
				"time":       clock,
				"date_valid": datemath.IsValidDateInput(date),
				"time_valid": datemath.IsValidTimeInput(clock),
			}
			if payload, err := datemath.BuildDateTimeForAPI(date, clock); err == nil {
				out["payload"] = payload
			}
			return writeOut(cmd, app, out)
		},
	}
}
