package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/piresc/admin-gateway/internal/pkg/constants"
)

// HeaderRequestID carries the request id in both directions
const HeaderRequestID = "X-Request-ID"

// RequestIDMiddleware adds a unique request ID to each request
func RequestIDMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			requestID := c.Request().Header.Get(HeaderRequestID)
			if requestID == "" || len(requestID) > 128 {
				requestID = uuid.NewString()
			}

			c.Response().Header().Set(HeaderRequestID, requestID)
			c.Set(constants.ContextKeyRequestID, requestID)

			return next(c)
		}
	}
}

// GetRequestID returns the id assigned by RequestIDMiddleware
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(constants.ContextKeyRequestID).(string); ok {
		return id
	}
	return c.Response().Header().Get(HeaderRequestID)
}
