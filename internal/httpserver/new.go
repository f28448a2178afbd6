package httpserver

import (
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"

	"weekly-agenda/internal/schedule"
	"weekly-agenda/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           log.Logger
	host        string
	port        int
	mode        string
	environment string

	scheduleUC schedule.UseCase
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Host        string
	Port        int
	Mode        string
	Environment string

	ScheduleUC schedule.UseCase
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	host := cfg.Host
	if host == "" {
		// Local utility: never bind a routable interface by default.
		host = "127.0.0.1"
	}

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.New(),
		host:        host,
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		scheduleUC:  cfg.ScheduleUC,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

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
	if srv.scheduleUC == nil {
		return errors.New("schedule usecase is required")
	}
	return nil
}

// Run maps all handlers and serves until the listener fails or the process
// is stopped.
func (srv *HTTPServer) Run() error {
	if err := srv.mapHandlers(); err != nil {
		return err
	}
	return srv.gin.Run(fmt.Sprintf("%s:%d", srv.host, srv.port))
}
