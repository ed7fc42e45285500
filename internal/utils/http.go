package utils

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/piresc/admin-gateway/internal/pkg/apperror"
	"github.com/piresc/admin-gateway/internal/pkg/logger"
)

// Response represents a standard API response
type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
	Code    int    `json:"code,omitempty"`
}

// SuccessResponse sends a success response with data
func SuccessResponse(c echo.Context, statusCode int, message string, data interface{}) error {
	return c.JSON(statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

// ErrorResponseHandler sends an error response
func ErrorResponseHandler(c echo.Context, statusCode int, errorMessage string) error {
	return c.JSON(statusCode, ErrorResponse{
		Success: false,
		Error:   errorMessage,
		Code:    statusCode,
	})
}

// ErrorFromApp renders err using its apperror kind. The wrapped cause is
// logged and never sent to the client.
func ErrorFromApp(c echo.Context, err error) error {
	status := apperror.HTTPStatus(err)
	message := apperror.PublicMessage(err)

	fields := []logger.Field{
		logger.String("method", c.Request().Method),
		logger.String("path", c.Path()),
		logger.Int("status", status),
		logger.ErrorField(err),
	}
	if status >= http.StatusInternalServerError {
		logger.ErrorCtx(c.Request().Context(), message, fields...)
	} else {
		logger.WarnCtx(c.Request().Context(), message, fields...)
	}

	return ErrorResponseHandler(c, status, message)
}

// BadRequestResponse sends a 400 Bad Request response
func BadRequestResponse(c echo.Context, errorMessage string) error {
	return ErrorResponseHandler(c, http.StatusBadRequest, errorMessage)
}

// UnauthorizedResponse sends a 401 Unauthorized response
func UnauthorizedResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Unauthorized"
	}
	return ErrorResponseHandler(c, http.StatusUnauthorized, errorMessage)
}

// TooManyRequestsResponse sends a 429 Too Many Requests response
func TooManyRequestsResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Too many requests"
	}
	return ErrorResponseHandler(c, http.StatusTooManyRequests, errorMessage)
}

// InternalServerErrorResponse sends a 500 Internal Server Error response
func InternalServerErrorResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Internal server error"
	}
	return ErrorResponseHandler(c, http.StatusInternalServerError, errorMessage)
}

// ServiceUnavailableResponse sends a 503 Service Unavailable response
func ServiceUnavailableResponse(c echo.Context, errorMessage string) error {
	if errorMessage == "" {
		errorMessage = "Service unavailable"
	}
	return ErrorResponseHandler(c, http.StatusServiceUnavailable, errorMessage)
}
