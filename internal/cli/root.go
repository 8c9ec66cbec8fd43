package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"viegrand-care/config"
	"viegrand-care/pkg/datemath"
	"viegrand-care/pkg/log"
	"viegrand-care/pkg/viegrand"
)

type App struct {
	ConfigPath string
	BaseURL    string
	Token      string
	Timezone   string
	Verbose    bool
	PrettyJSON bool

	logger log.Logger
}

func NewRootCmd() *cobra.Command {
	app := &App{}

	cmd := &cobra.Command{
		Use:          "viegrandctl",
		Short:        "VieGrand operator CLI",
		SilenceUsage: true,
		Example: strings.TrimSpace(`
  # Mask and validate what a user typed
  viegrandctl format date 05032025
  viegrandctl validate 05/03/2025 08:30

  # Create a reminder interactively
  viegrandctl reminder create --interactive

  # Helpers
  viegrandctl bmi --height 160 --weight 55
  viegrandctl qr 'viegrand:abc123XYZ'

  # Link a relative to an elderly account
  viegrandctl family add --email con@example.com 'viegrand:abc123XYZ'
`),
	}

	cmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		level := "warn"
		if app.Verbose {
			level = "debug"
		}
		app.logger = log.Init(log.ZapConfig{
			Level:        level,
			Mode:         log.ModeDevelopment,
			Encoding:     log.EncodingConsole,
			ColorEnabled: true,
			Stderr:       true,
		})
		return nil
	}

	cmd.PersistentFlags().StringVar(&app.ConfigPath, "config", envOr("VIEGRAND_CONFIG", ""), "Path to config.yaml (default: search ./config, ., /etc/app/)")
	cmd.PersistentFlags().StringVar(&app.BaseURL, "base-url", envOr("VIEGRAND_BASE_URL", ""), "VieGrand backend URL (overrides config)")
	cmd.PersistentFlags().StringVar(&app.Token, "token", envOr("VIEGRAND_ACCESS_TOKEN", ""), "Backend access token (overrides config)")
	cmd.PersistentFlags().StringVar(&app.Timezone, "timezone", envOr("VIEGRAND_TIMEZONE", datemath.DefaultTimezone), "IANA timezone reminders are interpreted in")
	cmd.PersistentFlags().BoolVarP(&app.Verbose, "verbose", "v", false, "Debug logging on stderr")
	cmd.PersistentFlags().BoolVar(&app.PrettyJSON, "pretty", false, "Pretty-print JSON output")

	cmd.AddCommand(newFormatCmd(app))
	cmd.AddCommand(newValidateCmd(app))
	cmd.AddCommand(newReminderCmd(app))
	cmd.AddCommand(newBMICmd(app))
	cmd.AddCommand(newQRCmd(app))
	cmd.AddCommand(newFamilyCmd(app))
	cmd.AddCommand(newPremiumCmd(app))
	cmd.AddCommand(newCalendarCmd(app))

	return cmd
}

func envOr(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func writeOut(cmd *cobra.Command, app *App, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetEscapeHTML(false)
	if app.PrettyJSON {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(v)
}

func (app *App) log() log.Logger {
	if app.logger == nil {
		return log.NewNop()
	}
	return app.logger
}

func (app *App) parser() (*datemath.Parser, error) {
	return datemath.NewParser(app.Timezone)
}

// backend builds a client from flags, falling back to the config file for
// anything the flags leave empty.
func (app *App) backend() (*viegrand.Client, error) {
	cfg := viegrand.Config{BaseURL: app.BaseURL, AccessToken: app.Token}

	if cfg.BaseURL == "" || cfg.AccessToken == "" {
		loaded, err := app.loadConfig()
		if err != nil && cfg.BaseURL == "" {
			return nil, fmt.Errorf("backend URL not set (use --base-url or VIEGRAND_BASE_URL): %w", err)
		}
		if loaded != nil {
			if cfg.BaseURL == "" {
				cfg.BaseURL = loaded.Viegrand.BaseURL
			}
			if cfg.AccessToken == "" {
				cfg.AccessToken = loaded.Viegrand.AccessToken
			}
			cfg.Timeout = loaded.Viegrand.Timeout
			cfg.RetryAttempts = loaded.Viegrand.RetryAttempts
			cfg.RetryDelay = loaded.Viegrand.RetryDelay
		}
	}

	return viegrand.NewClient(cfg)
}

func (app *App) loadConfig() (*config.Config, error) {
	if app.ConfigPath != "" {
		return config.LoadFile(app.ConfigPath)
	}
	return config.Load()
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
