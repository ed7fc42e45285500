package logger

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"
)

// ZapEchoMiddleware logs every request once it has been handled
func ZapEchoMiddleware(logger *ZapLogger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			txn := newrelic.FromContext(c.Request().Context())

			start := time.Now()
			path := c.Request().URL.Path
			if raw := c.Request().URL.RawQuery; raw != "" {
				path = path + "?" + raw
			}

			err := next(c)
			if err != nil {
				// let echo render the error so the logged status is the real one
				c.Error(err)
			}

			latency := time.Since(start)

			adminID := "anonymous"
			if id := c.Get("user_id"); id != nil {
				adminID = fmt.Sprintf("%v", id)
			}
			requestID := c.Response().Header().Get(echo.HeaderXRequestID)

			if txn != nil {
				txn.AddAttribute("admin_id", adminID)
				txn.AddAttribute("request_id", requestID)
				if err != nil {
					txn.NoticeError(err)
				}
			}

			logger.LogHTTPRequest(txn, c.Request().Method, path, c.RealIP(), adminID, requestID, c.Response().Status, latency, err)

			return nil
		}
	}
}
