package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/piresc/admin-gateway/internal/pkg/logger"
)

const defaultShutdownTimeout = 30 * time.Second

// GracefulServer wraps Echo server with graceful shutdown capabilities
type GracefulServer struct {
	echo            *echo.Echo
	logger          *logger.ZapLogger
	addr            string
	shutdownTimeout time.Duration
	components      *ShutdownManager
}

// NewGracefulServer creates a new server with graceful shutdown. components
// may be nil.
func NewGracefulServer(e *echo.Echo, zapLogger *logger.ZapLogger, host string, port int, shutdownTimeout time.Duration, components *ShutdownManager) *GracefulServer {
	if shutdownTimeout <= 0 {
		shutdownTimeout = defaultShutdownTimeout
	}
	return &GracefulServer{
		echo:            e,
		logger:          zapLogger,
		addr:            fmt.Sprintf("%s:%d", host, port),
		shutdownTimeout: shutdownTimeout,
		components:      components,
	}
}

// Start serves until SIGINT or SIGTERM, then shuts down gracefully
func (s *GracefulServer) Start() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return s.Run(ctx)
}

// Run serves until ctx is done or the listener fails
func (s *GracefulServer) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("Starting HTTP server", logger.String("address", s.addr))
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			s.logger.Error("HTTP server failed", logger.Err(err))
			s.shutdownComponents()
			return err
		}
		return nil
	case <-ctx.Done():
		s.logger.Info("Received shutdown signal")
	}

	return s.Shutdown()
}

// Shutdown stops accepting requests, drains in-flight ones and then closes
// the registered components
func (s *GracefulServer) Shutdown() error {
	s.logger.Info("Shutting down server gracefully...")

	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	err := s.echo.Shutdown(ctx)
	if err != nil {
		s.logger.Error("Server forced to shutdown", logger.Err(err))
	}

	if s.components != nil {
		if cerr := s.components.Shutdown(ctx); cerr != nil {
			err = errors.Join(err, cerr)
		}
	}

	s.logger.Info("Server shutdown completed")
	return err
}

func (s *GracefulServer) shutdownComponents() {
	if s.components == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()
	_ = s.components.Shutdown(ctx)
}

// ShutdownManager closes registered components in reverse registration order
type ShutdownManager struct {
	mu        sync.Mutex
	logger    *logger.ZapLogger
	functions []namedShutdown
}

type namedShutdown struct {
	name string
	fn   func(context.Context) error
}

// NewShutdownManager creates a new shutdown manager
func NewShutdownManager(zapLogger *logger.ZapLogger) *ShutdownManager {
	return &ShutdownManager{logger: zapLogger}
}

// Register adds a cleanup function to be called during shutdown
func (sm *ShutdownManager) Register(name string, fn func(context.Context) error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.functions = append(sm.functions, namedShutdown{name: name, fn: fn})
}

// Shutdown runs every registered function once, even when some fail
func (sm *ShutdownManager) Shutdown(ctx context.Context) error {
	sm.mu.Lock()
	functions := sm.functions
	sm.functions = nil
	sm.mu.Unlock()

	sm.logger.Info("Starting graceful shutdown of components", logger.Int("components", len(functions)))

	var errs []error
	for i := len(functions) - 1; i >= 0; i-- {
		c := functions[i]
		if err := c.fn(ctx); err != nil {
			sm.logger.Error("Error during component shutdown",
				logger.String("component", c.name),
				logger.Err(err))
			errs = append(errs, fmt.Errorf("%s: %w", c.name, err))
		}
	}

	sm.logger.Info("All components shutdown completed")
	return errors.Join(errs...)
}
