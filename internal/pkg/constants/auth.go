package constants

// Roles
const (
	RoleAdmin = "admin"
)

// Access-token verification modes
const (
	VerifyModeLocal  = "local"
	VerifyModeRemote = "remote"
)

const (
	// ResetTokenPurpose marks a JWT as usable only for password reset
	ResetTokenPurpose = "password_reset"

	// AdvisoryLockAdminCreate serialises concurrent admin creation
	AdvisoryLockAdminCreate int64 = 7_300_421

	// Postgres constraint names on the admins table
	ConstraintAdminsEmail     = "admins_email_key"
	ConstraintAdminsSingleton = "admins_singleton_key"
)

// Echo context keys
const (
	ContextKeyClaims    = "claims"
	ContextKeyUserID    = "user_id"
	ContextKeyRole      = "role"
	ContextKeyRequestID = "request_id"
)
