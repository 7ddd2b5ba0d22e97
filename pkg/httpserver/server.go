package httpserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Option func(*Options)

type Options struct {
	port          int
	logger        *zap.Logger
	mode          string
	middleware    []gin.HandlerFunc
	enableLogging bool
}

func WithPort(port int) Option {
	return func(o *Options) {
		o.port = port
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(o *Options) {
		o.logger = logger
	}
}

// WithMode sets the gin mode (gin.DebugMode, gin.ReleaseMode, gin.TestMode).
func WithMode(mode string) Option {
	return func(o *Options) {
		o.mode = mode
	}
}

func WithMiddleware(middleware ...gin.HandlerFunc) Option {
	return func(o *Options) {
		o.middleware = append(o.middleware, middleware...)
	}
}

func WithLogging(enabled bool) Option {
	return func(o *Options) {
		o.enableLogging = enabled
	}
}

type Server struct {
	engine *gin.Engine
	server *http.Server
	lis    net.Listener
	logger *zap.Logger
}

// New creates a new HTTP server using the builder options.
func New(opts ...Option) (*Server, error) {
	options := &Options{
		port:   8080,
		logger: zap.NewNop(),
		mode:   gin.ReleaseMode,
	}

	for _, opt := range opts {
		opt(options)
	}

	if options.port < 1 || options.port > 65535 {
		return nil, fmt.Errorf("invalid port %d: must be between 1 and 65535", options.port)
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", options.port))
	if err != nil {
		return nil, fmt.Errorf("failed to listen on port %d: %w", options.port, err)
	}

	logger := options.logger
	if logger == nil {
		logger = zap.NewNop()
	}

	gin.SetMode(options.mode)
	engine := gin.New()
	engine.Use(gin.Recovery())
	if options.enableLogging {
		engine.Use(RequestLogger(logger))
	}
	engine.Use(options.middleware...)

	server := &http.Server{
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	return &Server{
		engine: engine,
		server: server,
		lis:    lis,
		logger: logger.Named("http-server"),
	}, nil
}

// Engine exposes the router so the application can register its routes.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Start runs the server in a goroutine and returns immediately.
func (s *Server) Start() {
	s.logger.Info("HTTP server starting", zap.String("addr", s.lis.Addr().String()))

	go func() {
		if err := s.server.Serve(s.lis); err != nil && err != http.ErrServerClosed {
			s.logger.Error("HTTP server failed", zap.Error(err))
		}
	}()
}

// Shutdown gracefully shuts down the server, honoring the context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("HTTP server shutting down")

	if err := s.server.Shutdown(ctx); err != nil {
		s.logger.Warn("forced shutdown", zap.Error(err))
		return err
	}

	s.logger.Info("HTTP server stopped")
	return nil
}

// Addr returns the server's listening address.
func (s *Server) Addr() net.Addr {
	return s.lis.Addr()
}
