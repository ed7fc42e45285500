package constants

// Redis key formats
const (
	KeyAdminOTP  = "admin:otp:%s"     // Format: admin:otp:{email}
	KeyRateLimit = "rate:limit:%s:%s" // Format: rate:limit:{route}:{ip}
)
