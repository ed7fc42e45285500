package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/labstack/echo/v4"
	"github.com/newrelic/go-agent/v3/newrelic"

	"github.com/piresc/admin-gateway/internal/pkg/logger"
	"github.com/piresc/admin-gateway/internal/utils"
)

// PanicRecoveryMiddleware turns a panic in a handler into a logged 500.
// The panic value is recorded on the New Relic transaction when one exists.
func PanicRecoveryMiddleware(zapLogger *logger.ZapLogger) echo.MiddlewareFunc {
	if zapLogger == nil {
		panic("PanicRecoveryMiddleware requires a logger")
	}

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = handlePanic(c, r, zapLogger)
				}
			}()

			return next(c)
		}
	}
}

func handlePanic(c echo.Context, r interface{}, zapLogger *logger.ZapLogger) error {
	req := c.Request()
	requestID := GetRequestID(c)

	log := zapLogger.Logger
	if txn := newrelic.FromContext(req.Context()); txn != nil {
		txn.NoticeError(newrelic.Error{
			Message: fmt.Sprintf("Panic: %v", r),
			Class:   "PanicError",
			Attributes: map[string]interface{}{
				"panic.type":  fmt.Sprintf("%T", r),
				"http.method": req.Method,
				"http.path":   req.URL.Path,
				"request_id":  requestID,
			},
		})
		log = zapLogger.WithNewRelicContext(txn)
	}

	log.Error("Panic recovered during request processing",
		logger.Any("panic_value", r),
		logger.String("panic_type", fmt.Sprintf("%T", r)),
		logger.String("stack_trace", string(debug.Stack())),
		logger.String("method", req.Method),
		logger.String("path", req.URL.Path),
		logger.String("client_ip", c.RealIP()),
		logger.String("request_id", requestID),
	)

	if c.Response().Committed {
		return nil
	}
	return utils.ErrorResponseHandler(c, http.StatusInternalServerError, "Internal server error")
}
