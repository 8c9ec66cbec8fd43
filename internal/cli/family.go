package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"viegrand-care/internal/family"
	familyRepo "viegrand-care/internal/family/repository/viegrand"
	familyUC "viegrand-care/internal/family/usecase"
	"viegrand-care/internal/model"
)

func (app *App) familyUseCase() (family.UseCase, error) {
	client, err := app.backend()
	if err != nil {
		return nil, err
	}
	return familyUC.New(app.log(), familyRepo.New(client)), nil
}

func userJSON(u model.ElderlyUser) map[string]any {
	return map[string]any{
		"id":        u.ID,
		"email":     u.Email,
		"full_name": u.FullName,
	}
}

func newFamilyCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "family",
		Short: "Link and unlink relatives and elderly accounts",
	}
	cmd.AddCommand(newFamilyAddCmd(app))
	cmd.AddCommand(newFamilyRemoveCmd(app))
	return cmd
}

func newFamilyAddCmd(app *App) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "add <qr-data>",
		Short: "Link a relative to the elderly account a QR payload points to",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := app.familyUseCase()
			if err != nil {
				return err
			}
			out, err := uc.AddMember(commandContext(cmd), model.Scope{UserID: "cli"}, family.AddMemberInput{
				Data:          args[0],
				RelativeEmail: email,
			})
			if err != nil {
				return err
			}
			return writeOut(cmd, app, map[string]any{
				"id":             out.Member.ID,
				"relative_email": out.Member.RelativeEmail,
				"user":           userJSON(out.Member.User),
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Relative's account email")
	_ = cmd.MarkFlagRequired("email")
	return cmd
}

func newFamilyRemoveCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "remove <id>...",
		Short: "Remove family links by id",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			uc, err := app.familyUseCase()
			if err != nil {
				return err
			}

			var failed int
			removed := make([]int64, 0, len(args))
			for _, arg := range args {
				id, err := strconv.ParseInt(arg, 10, 64)
				if err == nil {
					err = uc.RemoveMember(commandContext(cmd), model.Scope{UserID: "cli"}, id)
				}
				if err != nil {
					failed++
					printErr(cmd, "remove %s: %v", arg, err)
					continue
				}
				removed = append(removed, id)
			}

			if err := writeOut(cmd, app, map[string]any{"removed": removed}); err != nil {
				return err
			}
			if failed > 0 {
				return fmt.Errorf("%d of %d removals failed", failed, len(args))
			}
			return nil
		},
	}
}
