package models

import "time"

// Config represents application configuration
type Config struct {
	App         AppConfig
	Server      ServerConfig
	Database    DatabaseConfig
	Redis       RedisConfig
	Identity    IdentityConfig
	AccessToken AccessTokenConfig
	ResetToken  ResetTokenConfig
	OTP         OTPConfig
	Password    PasswordConfig
	SMTP        SMTPConfig
	RateLimit   RateLimitConfig
	NewRelic    NewRelicConfig
	Logger      LoggerConfig
}

// AppConfig contains application-specific configuration
type AppConfig struct {
	Name        string
	Environment string
	Debug       bool
	Version     string
}

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Host            string
	Port            int
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

// DatabaseConfig contains database connection configuration
type DatabaseConfig struct {
	Driver    string
	Host      string
	Port      int
	Username  string
	Password  string
	Database  string
	SSLMode   string
	MaxConns  int
	IdleConns int
}

// RedisConfig contains Redis connection configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
	PoolSize int
}

// IdentityConfig points at the external token service
type IdentityConfig struct {
	Address    string
	RPCTimeout time.Duration
	Insecure   bool
	Codec      string // gRPC content-subtype, "proto" or "json"
}

// AccessTokenConfig controls how bearer tokens are verified on guarded routes
type AccessTokenConfig struct {
	VerifyMode string // "local" or "remote"
	Secret     string // shared HS256 secret, local mode only
	Issuer     string
}

// ResetTokenConfig contains the password-reset token settings
type ResetTokenConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// OTPConfig contains one-time password settings
type OTPConfig struct {
	TTL    time.Duration
	Length int
}

// PasswordConfig contains credential policy settings
type PasswordConfig struct {
	BcryptCost                     int
	MinLength                      int
	DefaultDeviceID                string
	RevokeSessionsOnPasswordChange bool
}

// SMTPConfig contains the mail relay settings
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// RateLimitConfig contains per-IP limits for the unauthenticated entry points
type RateLimitConfig struct {
	Enabled bool
	Limit   int
	Period  time.Duration
}

// NewRelicConfig contains New Relic settings
type NewRelicConfig struct {
	LicenseKey  string
	AppName     string
	Enabled     bool
	LogsEnabled bool
	ForwardLogs bool
}

// LoggerConfig contains logger settings
type LoggerConfig struct {
	Level    string
	FilePath string
}
