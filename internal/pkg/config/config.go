package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/piresc/admin-gateway/internal/pkg/constants"
	"github.com/piresc/admin-gateway/internal/pkg/models"
)

func InitConfig(configPath string) *models.Config {
	local := GetEnv("APP_ENV", "local")
	if local == "local" {
		// Load config from file
		err := godotenv.Load(configPath)
		if err != nil {
			log.Println("error loading config from file", err)
		}
	}
	// Create config from environment variables
	return loadConfigFromEnv()
}

func loadConfigFromEnv() *models.Config {
	configs := &models.Config{}

	// App config
	configs.App.Name = GetEnv("APP_NAME", "admin-service")
	configs.App.Environment = GetEnv("APP_ENV", "")
	configs.App.Debug = GetEnvAsBool("APP_DEBUG", false)
	configs.App.Version = GetEnv("APP_VERSION", "")

	// Server config
	configs.Server.Host = GetEnv("SERVER_HOST", "")
	configs.Server.Port = GetEnvAsInt("SERVER_PORT", 3000)
	configs.Server.ReadTimeout = GetEnvAsInt("SERVER_READ_TIMEOUT", 10)
	configs.Server.WriteTimeout = GetEnvAsInt("SERVER_WRITE_TIMEOUT", 10)
	configs.Server.ShutdownTimeout = GetEnvAsInt("SERVER_SHUTDOWN_TIMEOUT", 30)

	// Database config
	configs.Database.Driver = GetEnv("DB_DRIVER", "pgx")
	configs.Database.Host = GetEnv("DB_HOST", "localhost")
	configs.Database.Port = GetEnvAsInt("DB_PORT", 5432)
	configs.Database.Username = GetEnv("DB_USERNAME", "")
	configs.Database.Password = GetEnv("DB_PASSWORD", "")
	configs.Database.Database = GetEnv("DB_DATABASE", "")
	configs.Database.SSLMode = GetEnv("DB_SSL_MODE", "disable")
	configs.Database.MaxConns = GetEnvAsInt("DB_MAX_CONNS", 10)
	configs.Database.IdleConns = GetEnvAsInt("DB_IDLE_CONNS", 2)

	// Redis config
	configs.Redis.Host = GetEnv("REDIS_HOST", "localhost")
	configs.Redis.Port = GetEnvAsInt("REDIS_PORT", 6379)
	configs.Redis.Password = GetEnv("REDIS_PASSWORD", "")
	configs.Redis.DB = GetEnvAsInt("REDIS_DB", 0)
	configs.Redis.PoolSize = GetEnvAsInt("REDIS_POOL_SIZE", 10)

	// Identity service config
	configs.Identity.Address = GetEnv("IDENTITY_GRPC_ADDRESS", "localhost:50051")
	configs.Identity.RPCTimeout = GetEnvAsDuration("IDENTITY_RPC_TIMEOUT", 5*time.Second)
	configs.Identity.Insecure = GetEnvAsBool("IDENTITY_GRPC_INSECURE", true)
	configs.Identity.Codec = GetEnv("IDENTITY_GRPC_CODEC", "proto")

	// Access token config
	configs.AccessToken.VerifyMode = GetEnv("AUTH_VERIFY_MODE", constants.VerifyModeRemote)
	configs.AccessToken.Secret = GetEnv("ACCESS_TOKEN_SECRET", "")
	configs.AccessToken.Issuer = GetEnv("ACCESS_TOKEN_ISSUER", "")

	// Reset token config
	configs.ResetToken.Secret = GetEnv("RESET_TOKEN_SECRET", "")
	configs.ResetToken.TTL = GetEnvAsDuration("RESET_TOKEN_TTL", 15*time.Minute)
	configs.ResetToken.Issuer = GetEnv("RESET_TOKEN_ISSUER", "admin-service")

	// OTP config
	configs.OTP.TTL = GetEnvAsDuration("OTP_TTL", 10*time.Minute)
	configs.OTP.Length = GetEnvAsInt("OTP_LENGTH", 6)

	// Password config
	configs.Password.BcryptCost = GetEnvAsInt("PASSWORD_BCRYPT_COST", 12)
	configs.Password.MinLength = GetEnvAsInt("PASSWORD_MIN_LENGTH", 8)
	configs.Password.DefaultDeviceID = GetEnv("DEFAULT_DEVICE_ID", "android")
	configs.Password.RevokeSessionsOnPasswordChange = GetEnvAsBool("REVOKE_SESSIONS_ON_PASSWORD_CHANGE", false)

	// SMTP config
	configs.SMTP.Host = GetEnv("SMTP_HOST", "")
	configs.SMTP.Port = GetEnvAsInt("SMTP_PORT", 587)
	configs.SMTP.Username = GetEnv("SMTP_USER", "")
	configs.SMTP.Password = GetEnv("SMTP_PASS", "")
	configs.SMTP.From = GetEnv("SMTP_FROM", configs.SMTP.Username)

	// Rate limit config
	configs.RateLimit.Enabled = GetEnvAsBool("RATE_LIMIT_ENABLED", true)
	configs.RateLimit.Limit = GetEnvAsInt("RATE_LIMIT_LIMIT", 10)
	configs.RateLimit.Period = GetEnvAsDuration("RATE_LIMIT_PERIOD", time.Minute)

	// NewRelic config
	configs.NewRelic.LicenseKey = GetEnv("NEW_RELIC_LICENSE_KEY", "")
	configs.NewRelic.AppName = GetEnv("NEW_RELIC_APP_NAME", "")
	configs.NewRelic.Enabled = GetEnvAsBool("NEW_RELIC_ENABLED", false)
	configs.NewRelic.LogsEnabled = GetEnvAsBool("NEW_RELIC_LOGS_ENABLED", false)
	configs.NewRelic.ForwardLogs = GetEnvAsBool("NEW_RELIC_FORWARD_LOGS", false)

	// Logger config
	configs.Logger.Level = GetEnv("LOG_LEVEL", "info")
	configs.Logger.FilePath = GetEnv("LOG_FILE_PATH", "")

	return configs
}

// Helper functions to get environment variables with different types
func GetEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func GetEnvAsInt(key string, defaultValue int) int {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid integer value for %s, using default: %d", key, defaultValue)
		return defaultValue
	}

	return value
}

func GetEnvAsBool(key string, defaultValue bool) bool {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid boolean value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}

// GetEnvAsDuration accepts Go duration strings ("15m") or a bare number of seconds
func GetEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := GetEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}

	if seconds, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(seconds) * time.Second
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		log.Printf("Warning: Invalid duration value for %s, using default: %v", key, defaultValue)
		return defaultValue
	}

	return value
}
