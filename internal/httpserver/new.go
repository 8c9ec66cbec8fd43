package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"viegrand-care/internal/family"
	"viegrand-care/internal/middleware"
	"viegrand-care/internal/premium"
	"viegrand-care/internal/reminder"
	"viegrand-care/internal/vitals"
	"viegrand-care/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string
	mw          middleware.Middleware

	// Domains
	reminderUC reminder.UseCase
	premiumUC  premium.UseCase
	familyUC   family.UseCase
	vitalsUC   vitals.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	RateLimitPerMin int

	ReminderUC reminder.UseCase
	PremiumUC  premium.UseCase
	FamilyUC   family.UseCase
	VitalsUC   vitals.UseCase
}

// New creates a new HTTPServer instance and registers its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		reminderUC:  cfg.ReminderUC,
		premiumUC:   cfg.PremiumUC,
		familyUC:    cfg.FamilyUC,
		vitalsUC:    cfg.VitalsUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	srv.mw = middleware.New(logger, middleware.Config{RateLimitPerMin: cfg.RateLimitPerMin})
	srv.mapHandlers()

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.reminderUC == nil {
		return errors.New("reminder use case is required")
	}
	return nil
}
