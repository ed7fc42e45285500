package models

// SignupRequest represents a request to create the admin account
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	DeviceID string `json:"deviceId"`
}

// SignupResponse represents the created admin
type SignupResponse struct {
	Admin AdminSummary `json:"admin"`
}

// LoginRequest represents a request to login with email and password
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	DeviceID string `json:"deviceId"`
}

// SessionTokenPair is issued by the identity service
type SessionTokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

// LoginResponse represents the response after successful authentication
type LoginResponse struct {
	Admin  AdminSummary     `json:"admin"`
	Tokens SessionTokenPair `json:"tokens"`
}

// ChangePasswordRequest represents a request to rotate the password of the caller
type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

// MessageResponse carries a single human readable outcome
type MessageResponse struct {
	Message string `json:"message"`
}

// LogoutResponse reports whether the identity service revoked the token
type LogoutResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// RefreshTokenRequest carries the refresh token to exchange
type RefreshTokenRequest struct {
	RefreshToken string `json:"refreshToken"`
}

// RefreshTokenResponse carries the newly issued access token
type RefreshTokenResponse struct {
	AccessToken string `json:"accessToken"`
}

// ValidateTokenRequest carries the access token to check
type ValidateTokenRequest struct {
	AccessToken string `json:"accessToken"`
}

// TokenValidation is the identity service verdict on an access token
type TokenValidation struct {
	IsValid  bool   `json:"isValid"`
	EntityID string `json:"admin"`
}

// ValidateTokenResponse is returned to clients of validate-token
type ValidateTokenResponse struct {
	IsValid bool   `json:"isValid"`
	Admin   string `json:"admin,omitempty"`
}

// AuthorizationClaims are the verified facts about the caller of a guarded route
type AuthorizationClaims struct {
	Subject     string   `json:"sub,omitempty"`
	Email       string   `json:"email"`
	DeviceID    string   `json:"deviceId"`
	Role        string   `json:"role,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	AccessToken string   `json:"-"`
}
