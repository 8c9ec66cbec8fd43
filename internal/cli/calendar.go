package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/oauth2"

	"viegrand-care/pkg/gcalendar"
)

func newCalendarCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Google Calendar mirror setup",
	}
	cmd.AddCommand(newCalendarAuthCmd(app))
	return cmd
}

// newCalendarAuthCmd runs the installed-app consent flow once and stores the
// token the API server reads at startup.
func newCalendarAuthCmd(app *App) *cobra.Command {
	var credentialsPath, tokenPath string

	cmd := &cobra.Command{
		Use:   "auth",
		Short: "Authorize Google Calendar access and save a token",
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(credentialsPath)
			if err != nil {
				return fmt.Errorf("failed to read credentials file %q: %w", credentialsPath, err)
			}

			oauthConfig, err := gcalendar.InstalledAppConfig(data)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "BƯỚC 1: Mở URL sau trong trình duyệt và đăng nhập Google Account:")
			fmt.Fprintln(out)
			fmt.Fprintln(out, oauthConfig.AuthCodeURL("viegrand", oauth2.AccessTypeOffline))
			fmt.Fprintln(out)
			fmt.Fprint(out, "BƯỚC 2: Dán authorization code vào đây rồi Enter: ")

			code, err := bufio.NewReader(cmd.InOrStdin()).ReadString('\n')
			if err != nil && strings.TrimSpace(code) == "" {
				return fmt.Errorf("failed to read authorization code: %w", err)
			}

			tok, err := oauthConfig.Exchange(commandContext(cmd), strings.TrimSpace(code))
			if err != nil {
				return fmt.Errorf("failed to exchange authorization code: %w", err)
			}
			if err := gcalendar.SaveToken(tokenPath, tok); err != nil {
				return err
			}

			fmt.Fprintf(out, "\nĐã lưu token tại: %s\n", tokenPath)
			return nil
		},
	}

	cmd.Flags().StringVar(&credentialsPath, "credentials", "google-credentials.json", "OAuth installed-app credentials file")
	cmd.Flags().StringVar(&tokenPath, "token-file", "token.json", "Where to write the token")
	return cmd
}
