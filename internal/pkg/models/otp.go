package models

import (
	"time"
)

// OTP represents a one-time password issued for password recovery
type OTP struct {
	Email     string    `json:"email"`
	Code      string    `json:"code"`
	CreatedAt time.Time `json:"created_at"`
}

// ForgotPasswordRequest starts the recovery flow
type ForgotPasswordRequest struct {
	Email string `json:"email"`
}

// ForgotPasswordResponse is returned whether or not the email is registered
type ForgotPasswordResponse struct {
	Message    string `json:"message"`
	ResetToken string `json:"resetToken"`
}

// ResetPasswordRequest completes the recovery flow
type ResetPasswordRequest struct {
	Token       string `json:"token"`
	OTP         string `json:"otp"`
	NewPassword string `json:"newPassword"`
}
