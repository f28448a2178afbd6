package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Weekly agenda specifics
	Scheduler      SchedulerConfig
	GoogleCalendar GoogleCalendarConfig
	Things         ThingsConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Host string
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// SchedulerConfig tunes parsing and week projection.
type SchedulerConfig struct {
	Timezone               string
	DefaultDurationMinutes int
	WeekCacheSize          int
}

type GoogleCalendarConfig struct {
	CredentialsPath   string
	CalendarID        string
	RequestsPerSecond float64
}

// ThingsConfig controls the task-list mirror. Disabled by default: osascript
// only exists on macOS.
type ThingsConfig struct {
	Enabled        bool
	ListName       string
	TimeoutSeconds int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Host = viper.GetString("http_server.host")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Scheduler
	cfg.Scheduler.Timezone = viper.GetString("scheduler.timezone")
	cfg.Scheduler.DefaultDurationMinutes = viper.GetInt("scheduler.default_duration_minutes")
	cfg.Scheduler.WeekCacheSize = viper.GetInt("scheduler.week_cache_size")

	// Google Calendar
	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	cfg.GoogleCalendar.RequestsPerSecond = viper.GetFloat64("google_calendar.requests_per_second")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Things
	cfg.Things.Enabled = viper.GetBool("things.enabled")
	cfg.Things.ListName = viper.GetString("things.list_name")
	cfg.Things.TimeoutSeconds = viper.GetInt("things.timeout_seconds")

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")

	viper.SetDefault("http_server.host", "127.0.0.1")
	viper.SetDefault("http_server.port", 8745)
	viper.SetDefault("http_server.mode", "release")

	viper.SetDefault("logger.level", "info")
	viper.SetDefault("logger.mode", "production")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)

	viper.SetDefault("scheduler.timezone", "Local")
	viper.SetDefault("scheduler.default_duration_minutes", 30)
	viper.SetDefault("scheduler.week_cache_size", 8)

	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("google_calendar.requests_per_second", 5.0)

	viper.SetDefault("things.enabled", false)
	viper.SetDefault("things.list_name", "Today")
	viper.SetDefault("things.timeout_seconds", 5)
}

func validate(cfg *Config) error {
	if cfg.Scheduler.DefaultDurationMinutes <= 0 {
		return fmt.Errorf("scheduler.default_duration_minutes must be positive, got %d", cfg.Scheduler.DefaultDurationMinutes)
	}
	if cfg.GoogleCalendar.RequestsPerSecond <= 0 {
		return fmt.Errorf("google_calendar.requests_per_second must be positive, got %v", cfg.GoogleCalendar.RequestsPerSecond)
	}
	return nil
}
