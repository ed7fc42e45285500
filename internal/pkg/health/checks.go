package health

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/piresc/admin-gateway/internal/pkg/logger"
)

const (
	StatusHealthy   = "healthy"
	StatusUnhealthy = "unhealthy"

	defaultCheckTimeout = 3 * time.Second
)

// HealthChecker defines the interface for health checking dependencies
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// CheckerFunc adapts a function to HealthChecker
type CheckerFunc func(ctx context.Context) error

func (f CheckerFunc) CheckHealth(ctx context.Context) error {
	return f(ctx)
}

// Pinger is satisfied by the postgres and redis clients
type Pinger interface {
	Ping(ctx context.Context) error
}

// PingChecker checks a dependency by pinging it. A nil client is skipped.
func PingChecker(p Pinger) HealthChecker {
	return CheckerFunc(func(ctx context.Context) error {
		if p == nil {
			return nil
		}
		return p.Ping(ctx)
	})
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service"`
	Version      string                    `json:"version,omitempty"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Status  string `json:"status"`
	Latency string `json:"latency"`
	Error   string `json:"error,omitempty"`
}

// HealthService manages health checks for multiple dependencies
type HealthService struct {
	mu       sync.RWMutex
	checkers map[string]HealthChecker
	timeout  time.Duration
	logger   *logger.ZapLogger
}

// NewHealthService creates a new health service
func NewHealthService(zapLogger *logger.ZapLogger, timeout time.Duration) *HealthService {
	if timeout <= 0 {
		timeout = defaultCheckTimeout
	}
	return &HealthService{
		checkers: make(map[string]HealthChecker),
		timeout:  timeout,
		logger:   zapLogger,
	}
}

// AddChecker registers a health checker for a dependency
func (h *HealthService) AddChecker(name string, checker HealthChecker) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.checkers[name] = checker
}

// CheckAllHealth runs every checker concurrently under one deadline
func (h *HealthService) CheckAllHealth(ctx context.Context) HealthResponse {
	ctx, cancel := context.WithTimeout(ctx, h.timeout)
	defer cancel()

	h.mu.RLock()
	names := make([]string, 0, len(h.checkers))
	for name := range h.checkers {
		names = append(names, name)
	}
	h.mu.RUnlock()
	sort.Strings(names)

	results := make([]DependencyInfo, len(names))
	var wg sync.WaitGroup
	for i, name := range names {
		h.mu.RLock()
		checker := h.checkers[name]
		h.mu.RUnlock()

		wg.Add(1)
		go func(i int, name string, checker HealthChecker) {
			defer wg.Done()
			start := time.Now()
			err := checker.CheckHealth(ctx)
			info := DependencyInfo{Status: StatusHealthy, Latency: time.Since(start).String()}
			if err != nil {
				info.Status = StatusUnhealthy
				info.Error = err.Error()
				if h.logger != nil {
					h.logger.Error("Health check failed",
						logger.String("dependency", name),
						logger.Err(err))
				}
			}
			results[i] = info
		}(i, name, checker)
	}
	wg.Wait()

	response := HealthResponse{
		Status:       StatusHealthy,
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo, len(names)),
	}
	for i, name := range names {
		response.Dependencies[name] = results[i]
		if results[i].Status == StatusUnhealthy {
			response.Status = StatusUnhealthy
		}
	}
	return response
}
