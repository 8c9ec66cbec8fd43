package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig
	RateLimit  RateLimitConfig

	// VieGrand specifics
	Viegrand       ViegrandConfig
	Reminder       ReminderConfig
	GoogleCalendar GoogleCalendarConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
	File         LogFileConfig
}

// LogFileConfig enables a rotated JSON log file when Path is set.
type LogFileConfig struct {
	Path       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

type RateLimitConfig struct {
	PerMin int
}

type ViegrandConfig struct {
	BaseURL       string
	AccessToken   string
	Timeout       time.Duration
	RetryAttempts int
	RetryDelay    time.Duration
}

type ReminderConfig struct {
	Timezone   string
	RejectPast bool
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	TokenPath       string
	CalendarID      string
}

var ErrMissingBaseURL = errors.New("viegrand.base_url is required")

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("./config")
	v.AddConfigPath(".")
	v.AddConfigPath("/etc/app/")
	return load(v)
}

// LoadFile loads configuration from an explicit file path.
func LoadFile(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	return load(v)
}

func load(v *viper.Viper) (*Config, error) {
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = v.GetString("environment.name")
	cfg.HTTPServer.Port = v.GetInt("http_server.port")
	cfg.HTTPServer.Mode = v.GetString("http_server.mode")
	cfg.Logger.Level = v.GetString("logger.level")
	cfg.Logger.Mode = v.GetString("logger.mode")
	cfg.Logger.Encoding = v.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = v.GetBool("logger.color_enabled")
	cfg.Logger.File.Path = v.GetString("logger.file.path")
	cfg.Logger.File.MaxSizeMB = v.GetInt("logger.file.max_size_mb")
	cfg.Logger.File.MaxBackups = v.GetInt("logger.file.max_backups")
	cfg.Logger.File.MaxAgeDays = v.GetInt("logger.file.max_age_days")
	cfg.RateLimit.PerMin = v.GetInt("rate_limit.per_min")

	// VieGrand backend
	cfg.Viegrand.BaseURL = strings.TrimRight(v.GetString("viegrand.base_url"), "/")
	cfg.Viegrand.AccessToken = v.GetString("viegrand.access_token")
	cfg.Viegrand.Timeout = v.GetDuration("viegrand.timeout")
	cfg.Viegrand.RetryAttempts = v.GetInt("viegrand.retry_attempts")
	cfg.Viegrand.RetryDelay = v.GetDuration("viegrand.retry_delay")

	cfg.Reminder.Timezone = v.GetString("reminder.timezone")
	cfg.Reminder.RejectPast = v.GetBool("reminder.reject_past")

	cfg.GoogleCalendar.CredentialsPath = v.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.TokenPath = v.GetString("google_calendar.token_path")
	cfg.GoogleCalendar.CalendarID = v.GetString("google_calendar.calendar_id")

	if cfg.Viegrand.BaseURL == "" {
		return nil, ErrMissingBaseURL
	}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment.name", "development")
	v.SetDefault("http_server.port", 8080)
	v.SetDefault("http_server.mode", "debug")
	v.SetDefault("logger.level", "debug")
	v.SetDefault("logger.mode", "debug")
	v.SetDefault("logger.encoding", "console")
	v.SetDefault("logger.color_enabled", true)
	v.SetDefault("logger.file.path", "")
	v.SetDefault("logger.file.max_size_mb", 50)
	v.SetDefault("logger.file.max_backups", 5)
	v.SetDefault("logger.file.max_age_days", 14)
	v.SetDefault("rate_limit.per_min", 120)

	// Registered so AutomaticEnv can override keys absent from the file.
	v.SetDefault("viegrand.base_url", "")
	v.SetDefault("viegrand.access_token", "")
	v.SetDefault("viegrand.timeout", "15s")
	v.SetDefault("viegrand.retry_attempts", 3)
	v.SetDefault("viegrand.retry_delay", "500ms")

	v.SetDefault("reminder.timezone", "Asia/Ho_Chi_Minh")
	v.SetDefault("reminder.reject_past", true)

	v.SetDefault("google_calendar.credentials_path", "")
	v.SetDefault("google_calendar.token_path", "token.json")
	v.SetDefault("google_calendar.calendar_id", "primary")
}
