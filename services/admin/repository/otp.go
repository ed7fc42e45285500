package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/piresc/admin-gateway/internal/pkg/constants"
	"github.com/piresc/admin-gateway/internal/pkg/models"
)

// SetOTP stores code for email, replacing any pending one and restarting its TTL
func (r *OTPRepo) SetOTP(ctx context.Context, email, code string, ttl time.Duration) error {
	otp := models.OTP{
		Email:     email,
		Code:      code,
		CreatedAt: models.Now(),
	}

	payload, err := json.Marshal(otp)
	if err != nil {
		return fmt.Errorf("failed to marshal OTP: %w", err)
	}

	key := fmt.Sprintf(constants.KeyAdminOTP, email)
	if err := r.redisClient.Set(ctx, key, payload, ttl); err != nil {
		return fmt.Errorf("failed to store OTP: %w", err)
	}
	return nil
}

// GetOTP returns the pending code for email, or "" when none is live
func (r *OTPRepo) GetOTP(ctx context.Context, email string) (string, error) {
	key := fmt.Sprintf(constants.KeyAdminOTP, email)

	val, err := r.redisClient.Get(ctx, key)
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", fmt.Errorf("failed to get OTP: %w", err)
	}

	var otp models.OTP
	if err := json.Unmarshal([]byte(val), &otp); err != nil {
		return "", fmt.Errorf("failed to unmarshal OTP: %w", err)
	}
	return otp.Code, nil
}

// DeleteOTP removes the pending code for email
func (r *OTPRepo) DeleteOTP(ctx context.Context, email string) error {
	key := fmt.Sprintf(constants.KeyAdminOTP, email)
	if err := r.redisClient.Delete(ctx, key); err != nil {
		return fmt.Errorf("failed to delete OTP: %w", err)
	}
	return nil
}
