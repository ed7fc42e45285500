package jwt

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v4"
	"github.com/piresc/admin-gateway/internal/pkg/models"
)

// ErrAccessTokenInvalid is returned when an access token cannot be trusted
var ErrAccessTokenInvalid = errors.New("access token invalid")

// AccessClaims is the payload of a session access token minted by the identity service
type AccessClaims struct {
	EntityID    string   `json:"entityId,omitempty"`
	Email       string   `json:"email"`
	DeviceID    string   `json:"deviceId"`
	Role        string   `json:"role,omitempty"`
	Permissions []string `json:"permissions,omitempty"`
	jwt.RegisteredClaims
}

// ToAuthorization converts token claims to the request-scoped claims view
func (c *AccessClaims) ToAuthorization(rawToken string) models.AuthorizationClaims {
	subject := c.Subject
	if subject == "" {
		subject = c.EntityID
	}
	return models.AuthorizationClaims{
		Subject:     subject,
		Email:       c.Email,
		DeviceID:    c.DeviceID,
		Role:        c.Role,
		Permissions: append([]string(nil), c.Permissions...),
		AccessToken: rawToken,
	}
}

// ParseAccessToken verifies an HS256 access token with the shared secret
func ParseAccessToken(tokenString, secret, issuer string) (*AccessClaims, error) {
	parser := jwt.NewParser(jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))

	claims := &AccessClaims{}
	_, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAccessTokenInvalid, err)
	}
	if issuer != "" && !claims.VerifyIssuer(issuer, true) {
		return nil, fmt.Errorf("%w: unexpected issuer", ErrAccessTokenInvalid)
	}
	return claims, nil
}

// DecodeAccessToken reads claims without checking the signature. Only use it on
// tokens another party has already vouched for.
func DecodeAccessToken(tokenString string) (*AccessClaims, error) {
	claims := &AccessClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(tokenString, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrAccessTokenInvalid, err)
	}
	return claims, nil
}
