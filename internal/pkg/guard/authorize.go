package guard

import (
	"context"
	"fmt"
	"strings"

	"github.com/piresc/admin-gateway/internal/pkg/apperror"
)

// Authorize enforces the declared role allow-list and required permissions.
// Routes declaring nothing pass; everything else fails closed.
func Authorize() Stage {
	return func(ctx context.Context, req Request) (Request, error) {
		requirements := req.Requirements()
		if requirements.Empty() {
			return req, nil
		}

		claims, ok := req.Claims()
		if !ok {
			return Request{}, apperror.Unauthorized("Authorization header is required")
		}

		if len(requirements.Roles) > 0 {
			if claims.Role == "" {
				return Request{}, apperror.Forbidden("User role not found")
			}
			if !contains(requirements.Roles, claims.Role) {
				return Request{}, apperror.Forbidden(fmt.Sprintf("User role '%s' is not authorized", claims.Role))
			}
		}

		if len(requirements.Permissions) > 0 {
			if len(claims.Permissions) == 0 {
				return Request{}, apperror.Forbidden("User permissions not found or invalid")
			}

			var missing []string
			for _, permission := range requirements.Permissions {
				if !contains(claims.Permissions, permission) {
					missing = append(missing, permission)
				}
			}
			if len(missing) > 0 {
				return Request{}, apperror.Forbidden("User lacks required permissions: " + strings.Join(missing, ", "))
			}
		}

		return req, nil
	}
}

func contains(values []string, want string) bool {
	for _, v := range values {
		if v == want {
			return true
		}
	}
	return false
}
