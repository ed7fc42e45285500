package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnvHelpers(t *testing.T) {
	t.Run("string falls back to default", func(t *testing.T) {
		t.Setenv("ADMIN_TEST_STRING", "")
		assert.Equal(t, "fallback", GetEnv("ADMIN_TEST_STRING", "fallback"))
	})

	t.Run("int parses and falls back on garbage", func(t *testing.T) {
		t.Setenv("ADMIN_TEST_INT", "42")
		assert.Equal(t, 42, GetEnvAsInt("ADMIN_TEST_INT", 1))

		t.Setenv("ADMIN_TEST_INT", "forty-two")
		assert.Equal(t, 1, GetEnvAsInt("ADMIN_TEST_INT", 1))
	})

	t.Run("bool parses and falls back on garbage", func(t *testing.T) {
		t.Setenv("ADMIN_TEST_BOOL", "true")
		assert.True(t, GetEnvAsBool("ADMIN_TEST_BOOL", false))

		t.Setenv("ADMIN_TEST_BOOL", "maybe")
		assert.False(t, GetEnvAsBool("ADMIN_TEST_BOOL", false))
	})

	t.Run("duration accepts seconds and duration strings", func(t *testing.T) {
		t.Setenv("ADMIN_TEST_DURATION", "90")
		assert.Equal(t, 90*time.Second, GetEnvAsDuration("ADMIN_TEST_DURATION", time.Second))

		t.Setenv("ADMIN_TEST_DURATION", "15m")
		assert.Equal(t, 15*time.Minute, GetEnvAsDuration("ADMIN_TEST_DURATION", time.Second))

		t.Setenv("ADMIN_TEST_DURATION", "soon")
		assert.Equal(t, time.Second, GetEnvAsDuration("ADMIN_TEST_DURATION", time.Second))
	})
}

func TestInitConfig_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "test")

	cfg := InitConfig("")

	assert.Equal(t, "admin-service", cfg.App.Name)
	assert.Equal(t, 10*time.Minute, cfg.OTP.TTL)
	assert.Equal(t, 6, cfg.OTP.Length)
	assert.Equal(t, 15*time.Minute, cfg.ResetToken.TTL)
	assert.Equal(t, "android", cfg.Password.DefaultDeviceID)
	assert.Equal(t, 8, cfg.Password.MinLength)
	assert.False(t, cfg.Password.RevokeSessionsOnPasswordChange)
	assert.Equal(t, "remote", cfg.AccessToken.VerifyMode)
	assert.Equal(t, 5*time.Second, cfg.Identity.RPCTimeout)
	assert.Equal(t, "proto", cfg.Identity.Codec)
}

func TestInitConfig_LoadsEnvFileLocally(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "admin.env")
	require.NoError(t, os.WriteFile(path, []byte("RESET_TOKEN_SECRET=from-file\nOTP_TTL=5m\n"), 0o600))

	t.Setenv("APP_ENV", "local")
	// godotenv never overrides variables that are already set, so make sure
	// these are unset and restore them afterwards.
	t.Setenv("RESET_TOKEN_SECRET", "")
	t.Setenv("OTP_TTL", "")
	os.Unsetenv("RESET_TOKEN_SECRET")
	os.Unsetenv("OTP_TTL")

	cfg := InitConfig(path)

	assert.Equal(t, "from-file", cfg.ResetToken.Secret)
	assert.Equal(t, 5*time.Minute, cfg.OTP.TTL)
}
