package middleware

import (
	"github.com/labstack/echo/v4"

	"github.com/piresc/admin-gateway/internal/pkg/constants"
	"github.com/piresc/admin-gateway/internal/pkg/guard"
	"github.com/piresc/admin-gateway/internal/pkg/models"
	"github.com/piresc/admin-gateway/internal/utils"
)

// GuardOption adds a requirement to a guarded route
type GuardOption func(*guard.Requirements)

// RequireRoles allows only callers holding one of roles
func RequireRoles(roles ...string) GuardOption {
	return func(r *guard.Requirements) {
		r.Roles = append(r.Roles, roles...)
	}
}

// RequirePermissions requires the caller to hold every permission listed
func RequirePermissions(permissions ...string) GuardOption {
	return func(r *guard.Requirements) {
		r.Permissions = append(r.Permissions, permissions...)
	}
}

// Guard authenticates the bearer token and enforces the route requirements.
// Verified claims are stored on the echo context and the request context.
func Guard(verifier guard.ClaimsVerifier, opts ...GuardOption) echo.MiddlewareFunc {
	var requirements guard.Requirements
	for _, opt := range opts {
		opt(&requirements)
	}
	pipeline := guard.Chain(guard.Authenticate(verifier), guard.Authorize())

	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			header := c.Request().Header.Get(echo.HeaderAuthorization)

			out, err := pipeline(ctx, guard.NewRequest(header, requirements))
			if err != nil {
				return utils.ErrorFromApp(c, err)
			}

			claims, _ := out.Claims()
			c.Set(constants.ContextKeyClaims, claims)
			c.Set(constants.ContextKeyUserID, claims.Subject)
			c.Set(constants.ContextKeyRole, claims.Role)
			c.SetRequest(c.Request().WithContext(guard.ContextWithClaims(ctx, claims)))

			return next(c)
		}
	}
}

// ClaimsFromEcho returns the claims set by Guard
func ClaimsFromEcho(c echo.Context) (models.AuthorizationClaims, bool) {
	claims, ok := c.Get(constants.ContextKeyClaims).(models.AuthorizationClaims)
	return claims, ok
}
