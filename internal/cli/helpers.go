package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"viegrand-care/internal/family"
	"viegrand-care/internal/model"
	"viegrand-care/internal/premium"
	premiumRepo "viegrand-care/internal/premium/repository/viegrand"
	premiumUC "viegrand-care/internal/premium/usecase"
	"viegrand-care/pkg/bmi"
	"viegrand-care/pkg/qrkey"
)

func newBMICmd(app *App) *cobra.Command {
	var height, weight float64

	cmd := &cobra.Command{
		Use:   "bmi",
		Short: "Calculate BMI from height (cm) and weight (kg)",
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := bmi.Calculate(height, weight)
			if err != nil {
				return err
			}
			category := bmi.Classify(value)
			return writeOut(cmd, app, map[string]any{
				"bmi":      value,
				"category": category,
				"label":    category.Label(),
			})
		},
	}

	cmd.Flags().Float64Var(&height, "height", 0, "Height in centimetres")
	cmd.Flags().Float64Var(&weight, "weight", 0, "Weight in kilograms")
	_ = cmd.MarkFlagRequired("height")
	_ = cmd.MarkFlagRequired("weight")
	return cmd
}

func newQRCmd(app *App) *cobra.Command {
	var resolve bool

	cmd := &cobra.Command{
		Use:   "qr <data>",
		Short: "Extract the private key from a scanned QR payload",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !resolve {
				key, err := qrkey.Extract(args[0])
				if err != nil {
					return err
				}
				return writeOut(cmd, app, map[string]any{"private_key": key})
			}

			uc, err := app.familyUseCase()
			if err != nil {
				return err
			}
			out, err := uc.ResolveQR(commandContext(cmd), model.Scope{UserID: "cli"}, family.ResolveQRInput{Data: args[0]})
			if err != nil {
				return err
			}
			return writeOut(cmd, app, map[string]any{
				"private_key": out.PrivateKey,
				"user":        userJSON(out.User),
			})
		},
	}

	cmd.Flags().BoolVar(&resolve, "resolve", false, "Look the key up on the backend")
	return cmd
}

func newPremiumCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "premium <email>",
		Short: "Show premium status and days remaining",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := app.backend()
			if err != nil {
				return err
			}
			parser, err := app.parser()
			if err != nil {
				return err
			}

			uc := premiumUC.New(app.log(), premiumRepo.New(client, parser), parser, nil)
			out, err := uc.Status(commandContext(cmd), model.Scope{UserID: "cli"}, premium.StatusInput{Email: args[0]})
			if err != nil {
				return err
			}
			return writeOut(cmd, app, map[string]any{
				"email":          out.Subscription.Email,
				"plan":           out.Subscription.Plan,
				"status":         out.Subscription.Status,
				"end_date":       out.Subscription.EndDate.Format("2006-01-02"),
				"days_remaining": out.DaysRemaining,
				"active":         out.Active,
			})
		},
	}
}

// printErr is used by commands that keep going after a failure.
func printErr(cmd *cobra.Command, format string, args ...any) {
	fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
}
