package newrelic

import (
	"context"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/integrations/nrecho-v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// Middleware starts a transaction per request, or is a no-op when app is nil
func Middleware(app *newrelic.Application) echo.MiddlewareFunc {
	if app == nil {
		return func(next echo.HandlerFunc) echo.HandlerFunc { return next }
	}
	return nrecho.Middleware(app)
}

// FromContext extracts New Relic transaction from standard context
func FromContext(ctx context.Context) *newrelic.Transaction {
	return newrelic.FromContext(ctx)
}

// WithSegment executes fn within a segment when ctx carries a transaction
func WithSegment(ctx context.Context, segmentName string, fn func() error) error {
	if txn := FromContext(ctx); txn != nil {
		defer txn.StartSegment(segmentName).End()
	}
	return fn()
}
