package httpserver

import (
	"errors"
	"time"

	"github.com/gin-gonic/gin"

	analysisHTTP "vendor-message-analysis/internal/analysis/delivery/http"
	"vendor-message-analysis/internal/middleware"
	"vendor-message-analysis/pkg/log"
)

const (
	EnvironmentProduction = "production"

	defaultShutdownTimeout = 10 * time.Second
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin             *gin.Engine
	l               log.Logger
	port            int
	mode            string
	environment     string
	shutdownTimeout time.Duration

	// Analysis domain
	analysisHandler analysisHTTP.Handler
	mw              middleware.Middleware
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger          log.Logger
	Port            int
	Mode            string
	Environment     string
	ShutdownTimeout time.Duration

	AnalysisHandler analysisHTTP.Handler
	Middleware      middleware.Middleware
}

// New creates a new HTTPServer instance and registers its routes.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		shutdownTimeout: cfg.ShutdownTimeout,
		analysisHandler: cfg.AnalysisHandler,
		mw:              cfg.Middleware,
	}
	if srv.shutdownTimeout <= 0 {
		srv.shutdownTimeout = defaultShutdownTimeout
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

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
	if srv.analysisHandler == nil {
		return errors.New("analysis handler is required")
	}
	return nil
}
