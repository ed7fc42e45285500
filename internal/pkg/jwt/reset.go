package jwt

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/piresc/admin-gateway/internal/pkg/constants"
	"github.com/piresc/admin-gateway/internal/pkg/models"
)

var (
	// ErrResetTokenExpired is returned for a well-formed token past its expiry
	ErrResetTokenExpired = errors.New("reset token expired")
	// ErrResetTokenInvalid covers bad signatures, wrong algorithms and malformed claims
	ErrResetTokenInvalid = errors.New("reset token invalid")
)

// ResetClaims binds a reset token to one email address
type ResetClaims struct {
	Email   string `json:"email"`
	Purpose string `json:"purpose"`
	jwt.RegisteredClaims
}

// ResetTokenSigner issues and verifies short-lived password reset tokens.
// Its secret is never shared with session tokens.
type ResetTokenSigner struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewResetTokenSigner creates a signer from config
func NewResetTokenSigner(cfg models.ResetTokenConfig) (*ResetTokenSigner, error) {
	if cfg.Secret == "" {
		return nil, errors.New("reset token secret is required")
	}
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = 15 * time.Minute
	}
	return &ResetTokenSigner{
		secret: []byte(cfg.Secret),
		ttl:    ttl,
		issuer: cfg.Issuer,
		now:    time.Now,
	}, nil
}

// Issue signs a reset token for email and returns it with its expiry
func (s *ResetTokenSigner) Issue(email string) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := ResetClaims{
		Email:   email,
		Purpose: constants.ResetTokenPurpose,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign reset token: %w", err)
	}
	return signed, expiresAt, nil
}

// Verify checks signature, algorithm, expiry and purpose and returns the bound email
func (s *ResetTokenSigner) Verify(tokenString string) (string, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	claims := &ResetClaims{}
	_, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", ErrResetTokenExpired
		}
		return "", fmt.Errorf("%w: %v", ErrResetTokenInvalid, err)
	}

	if claims.Purpose != constants.ResetTokenPurpose || claims.Email == "" {
		return "", ErrResetTokenInvalid
	}
	return claims.Email, nil
}
