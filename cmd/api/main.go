package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"viegrand-care/config"
	_ "viegrand-care/docs" // Swagger docs
	familyRepo "viegrand-care/internal/family/repository/viegrand"
	familyUC "viegrand-care/internal/family/usecase"
	"viegrand-care/internal/httpserver"
	premiumRepo "viegrand-care/internal/premium/repository/viegrand"
	premiumUC "viegrand-care/internal/premium/usecase"
	reminderRepo "viegrand-care/internal/reminder/repository/viegrand"
	reminderUC "viegrand-care/internal/reminder/usecase"
	vitalsUC "viegrand-care/internal/vitals/usecase"
	"viegrand-care/pkg/datemath"
	"viegrand-care/pkg/gcalendar"
	"viegrand-care/pkg/log"
	"viegrand-care/pkg/viegrand"
)

// @title       VieGrand Care API
// @description Reminder, premium, family linking and vitals endpoints for the VieGrand app.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
		FilePath:     cfg.Logger.File.Path,
		MaxSizeMB:    cfg.Logger.File.MaxSizeMB,
		MaxBackups:   cfg.Logger.File.MaxBackups,
		MaxAgeDays:   cfg.Logger.File.MaxAgeDays,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting VieGrand Care API...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "VieGrand backend: %s", cfg.Viegrand.BaseURL)

	// 3. Shared clients
	dateMath, err := datemath.NewParser(cfg.Reminder.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to %s: %v", cfg.Reminder.Timezone, datemath.DefaultTimezone, err)
		dateMath, _ = datemath.NewParser(datemath.DefaultTimezone)
	}

	backend, err := viegrand.NewClient(viegrand.Config{
		BaseURL:       cfg.Viegrand.BaseURL,
		AccessToken:   cfg.Viegrand.AccessToken,
		Timeout:       cfg.Viegrand.Timeout,
		RetryAttempts: cfg.Viegrand.RetryAttempts,
		RetryDelay:    cfg.Viegrand.RetryDelay,
	})
	if err != nil {
		logger.Error(ctx, "Failed to create VieGrand client: ", err)
		os.Exit(1)
	}

	// Google Calendar mirror (optional)
	var calendar reminderUC.Calendar
	if cfg.GoogleCalendar.CredentialsPath != "" {
		calendarClient, calErr := gcalendar.NewClient(ctx, gcalendar.Config{
			CredentialsPath: cfg.GoogleCalendar.CredentialsPath,
			TokenPath:       cfg.GoogleCalendar.TokenPath,
		})
		if calErr != nil {
			logger.Warnf(ctx, "Google Calendar not available (optional): %v", calErr)
			logger.Warn(ctx, "Run `viegrandctl calendar auth` to generate a token")
		} else {
			calendar = calendarClient
			logger.Info(ctx, "Google Calendar initialized")
		}
	}

	// 4. Domains
	reminders := reminderUC.New(logger, reminderRepo.New(backend, dateMath), calendar, dateMath, reminderUC.Config{
		RejectPast: cfg.Reminder.RejectPast,
		CalendarID: cfg.GoogleCalendar.CalendarID,
	})
	premiums := premiumUC.New(logger, premiumRepo.New(backend, dateMath), dateMath, nil)
	families := familyUC.New(logger, familyRepo.New(backend))
	vitals := vitalsUC.New(logger)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		RateLimitPerMin: cfg.RateLimit.PerMin,
		ReminderUC:      reminders,
		PremiumUC:       premiums,
		FamilyUC:        families,
		VitalsUC:        vitals,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
