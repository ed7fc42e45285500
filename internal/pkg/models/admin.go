package models

import (
	"time"
)

// Admin is the single administrator credential record
type Admin struct {
	ID           string    `json:"entityId" db:"id"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt    time.Time `json:"updatedAt" db:"updated_at"`
}

// AdminSummary is the identity view returned to clients
type AdminSummary struct {
	EntityID string `json:"entityId"`
	Email    string `json:"email"`
	DeviceID string `json:"deviceId,omitempty"`
	Role     string `json:"role"`
}

// Summary builds the client view of the admin for the given device
func (a *Admin) Summary(deviceID string) AdminSummary {
	return AdminSummary{
		EntityID: a.ID,
		Email:    a.Email,
		DeviceID: deviceID,
		Role:     a.Role,
	}
}
