package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"weekly-agenda/config"
	_ "weekly-agenda/docs" // Swagger docs
	"weekly-agenda/internal/httpserver"
	"weekly-agenda/internal/schedule/repository"
	gcalRepo "weekly-agenda/internal/schedule/repository/gcal"
	thingsRepo "weekly-agenda/internal/schedule/repository/things"
	"weekly-agenda/internal/schedule/usecase"
	"weekly-agenda/pkg/clock"
	"weekly-agenda/pkg/gcalendar"
	"weekly-agenda/pkg/log"
	"weekly-agenda/pkg/things"
	"weekly-agenda/pkg/timeparse"
)

// @title       Weekly Agenda API
// @description Local scheduling core: natural-language time parsing, week projection, Google Calendar persistence, Things mirror.
// @version     1
// @host        localhost:8745
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Weekly Agenda...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Reference clock
	clk, err := clock.New(cfg.Scheduler.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Scheduler.Timezone, err)
		clk, _ = clock.New("UTC")
	}

	// 4. Google Calendar event store
	if cfg.GoogleCalendar.CredentialsPath == "" {
		logger.Error(ctx, "google_calendar.credentials_path is required")
		return
	}
	calendarClient, err := gcalendar.NewClientFromCredentialsFile(ctx, cfg.GoogleCalendar.CredentialsPath)
	if err != nil {
		logger.Errorf(ctx, "Google Calendar init failed: %v", err)
		return
	}
	logger.Info(ctx, "Google Calendar initialized")

	store := gcalRepo.New(
		calendarClient,
		cfg.GoogleCalendar.CalendarID,
		cfg.Scheduler.Timezone,
		cfg.GoogleCalendar.RequestsPerSecond,
		logger,
	)

	// 5. Things task mirror (optional)
	var taskList repository.TaskList
	if cfg.Things.Enabled {
		thingsClient := things.NewClient(
			cfg.Things.ListName,
			time.Duration(cfg.Things.TimeoutSeconds)*time.Second,
		)
		taskList = thingsRepo.New(thingsClient, logger)
		logger.Infof(ctx, "Things mirror enabled, list %q", cfg.Things.ListName)
	} else {
		logger.Info(ctx, "Things mirror disabled")
	}

	// 6. Schedule UseCase
	parser := timeparse.NewParser(time.Duration(cfg.Scheduler.DefaultDurationMinutes) * time.Minute)
	scheduleUC := usecase.New(logger, parser, store, taskList, clk, cfg.Scheduler.WeekCacheSize)

	// 7. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Host:        cfg.HTTPServer.Host,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		ScheduleUC:  scheduleUC,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 8. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
