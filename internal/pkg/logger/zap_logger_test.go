package logger

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newObservedLogger() (*ZapLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewFromZap(zap.New(core), "admin-service"), logs
}

func TestNewZapLogger_WithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "admin.log")

	l, err := NewZapLogger(ZapConfig{Service: "admin-service", Level: "debug", FilePath: path}, nil)
	require.NoError(t, err)
	l.Info("hello")
	assert.NoError(t, l.Close())
	assert.FileExists(t, path)
}

func TestNewZapLogger_InvalidLevelFallsBackToInfo(t *testing.T) {
	l, err := NewZapLogger(ZapConfig{Service: "admin-service", Level: "loud"}, nil)
	require.NoError(t, err)
	assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
}

func TestLogHTTPRequest_Levels(t *testing.T) {
	tests := []struct {
		status int
		level  zapcore.Level
		msg    string
	}{
		{http.StatusOK, zapcore.InfoLevel, "Request processed"},
		{http.StatusUnauthorized, zapcore.WarnLevel, "Client error"},
		{http.StatusInternalServerError, zapcore.ErrorLevel, "Server error"},
	}

	for _, tt := range tests {
		l, logs := newObservedLogger()
		l.LogHTTPRequest(nil, http.MethodPost, "/admin/login", "127.0.0.1", "anonymous", "req-1", tt.status, 3*time.Millisecond, nil)

		require.Equal(t, 1, logs.Len())
		entry := logs.All()[0]
		assert.Equal(t, tt.level, entry.Level)
		assert.Equal(t, tt.msg, entry.Message)
		assert.Equal(t, "/admin/login", entry.ContextMap()["path"])
	}
}

func TestZapEchoMiddleware_LogsRenderedStatus(t *testing.T) {
	l, logs := newObservedLogger()

	e := echo.New()
	handler := ZapEchoMiddleware(l)(func(c echo.Context) error {
		c.Set("user_id", "admin-1")
		return echo.NewHTTPError(http.StatusForbidden, "nope")
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/profile", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	assert.NoError(t, handler(c))
	assert.Equal(t, http.StatusForbidden, rec.Code)

	require.Equal(t, 1, logs.Len())
	fields := logs.All()[0].ContextMap()
	assert.Equal(t, int64(http.StatusForbidden), fields["status"])
	assert.Equal(t, "admin-1", fields["admin_id"])
}

func TestGlobalLogger(t *testing.T) {
	l, logs := newObservedLogger()
	SetGlobalLogger(l)
	defer SetGlobalLogger(nil)

	Info("info", String("k", "v"))
	Warn("warn")
	Error("error", Err(errors.New("boom")))

	assert.Equal(t, 3, logs.Len())
	assert.Equal(t, "v", logs.All()[0].ContextMap()["k"])
}
