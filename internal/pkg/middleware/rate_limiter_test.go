package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// failStandaloneExpire rejects EXPIRE sent outside a pipeline
type failStandaloneExpire struct{}

func (failStandaloneExpire) BeforeProcess(ctx context.Context, cmd redis.Cmder) (context.Context, error) {
	if cmd.Name() == "expire" {
		return ctx, errors.New("connection reset by peer")
	}
	return ctx, nil
}

func (failStandaloneExpire) AfterProcess(context.Context, redis.Cmder) error { return nil }

func (failStandaloneExpire) BeforeProcessPipeline(ctx context.Context, _ []redis.Cmder) (context.Context, error) {
	return ctx, nil
}

func (failStandaloneExpire) AfterProcessPipeline(context.Context, []redis.Cmder) error { return nil }

func setupRateLimiterTest(t *testing.T, limit int, period time.Duration, hooks ...redis.Hook) (*miniredis.Miniredis, echo.HandlerFunc) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	for _, hook := range hooks {
		client.AddHook(hook)
	}
	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	handler := IPRateLimiter("login", limit, period, client)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})
	return mr, handler
}

func doLimitedRequest(t *testing.T, handler echo.HandlerFunc, ip string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodPost, "/admin/login", nil)
	req.Header.Set(echo.HeaderXRealIP, ip)
	rec := httptest.NewRecorder()
	require.NoError(t, handler(e.NewContext(req, rec)))
	return rec
}

func TestRateLimiter_BlocksAfterLimit(t *testing.T) {
	mr, handler := setupRateLimiterTest(t, 3, time.Minute)

	for i := 0; i < 3; i++ {
		rec := doLimitedRequest(t, handler, "10.0.0.1")
		assert.Equal(t, http.StatusOK, rec.Code)
	}

	rec := doLimitedRequest(t, handler, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "0", rec.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "Rate limit exceeded")

	assert.True(t, mr.Exists("rate:limit:login:10.0.0.1"))
	assert.Greater(t, mr.TTL("rate:limit:login:10.0.0.1"), time.Duration(0))
}

func TestRateLimiter_PerClient(t *testing.T) {
	_, handler := setupRateLimiterTest(t, 1, time.Minute)

	assert.Equal(t, http.StatusOK, doLimitedRequest(t, handler, "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, doLimitedRequest(t, handler, "10.0.0.1").Code)
	assert.Equal(t, http.StatusOK, doLimitedRequest(t, handler, "10.0.0.2").Code)
}

func TestRateLimiter_WindowResets(t *testing.T) {
	mr, handler := setupRateLimiterTest(t, 1, time.Minute)

	assert.Equal(t, http.StatusOK, doLimitedRequest(t, handler, "10.0.0.1").Code)
	assert.Equal(t, http.StatusTooManyRequests, doLimitedRequest(t, handler, "10.0.0.1").Code)

	mr.FastForward(61 * time.Second)

	assert.Equal(t, http.StatusOK, doLimitedRequest(t, handler, "10.0.0.1").Code)
}

func TestRateLimiter_FailsOpenWhenRedisDown(t *testing.T) {
	mr, handler := setupRateLimiterTest(t, 1, time.Minute)
	mr.Close()

	rec := doLimitedRequest(t, handler, "10.0.0.1")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimiter_WindowOpensWithFirstIncrement(t *testing.T) {
	mr, handler := setupRateLimiterTest(t, 1, time.Minute, failStandaloneExpire{})

	assert.Equal(t, http.StatusOK, doLimitedRequest(t, handler, "10.0.0.1").Code)
	assert.Equal(t, time.Minute, mr.TTL("rate:limit:login:10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, doLimitedRequest(t, handler, "10.0.0.1").Code)

	mr.FastForward(61 * time.Second)

	assert.Equal(t, http.StatusOK, doLimitedRequest(t, handler, "10.0.0.1").Code)
}

func TestRateLimiter_RepairsCounterWithoutExpiry(t *testing.T) {
	mr, handler := setupRateLimiterTest(t, 3, time.Minute)
	require.NoError(t, mr.Set("rate:limit:login:10.0.0.1", "7"))

	rec := doLimitedRequest(t, handler, "10.0.0.1")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "60", rec.Header().Get("Retry-After"))
	assert.Equal(t, time.Minute, mr.TTL("rate:limit:login:10.0.0.1"))

	mr.FastForward(61 * time.Second)

	assert.Equal(t, http.StatusOK, doLimitedRequest(t, handler, "10.0.0.1").Code)
}
