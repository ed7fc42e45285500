// Package guard runs the request authorization pipeline. Each stage takes an
// immutable Request and returns an enriched copy or a typed error; nothing is
// written back onto a shared request object.
package guard

import (
	"context"

	"github.com/piresc/admin-gateway/internal/pkg/models"
)

// Requirements are the role and permission labels a route declares
type Requirements struct {
	Roles       []string
	Permissions []string
}

// Empty reports whether the route declares nothing to enforce
func (r Requirements) Empty() bool {
	return len(r.Roles) == 0 && len(r.Permissions) == 0
}

// Request is the value passed between stages
type Request struct {
	authorization string
	requirements  Requirements
	claims        *models.AuthorizationClaims
}

// NewRequest builds the pipeline input for one inbound call
func NewRequest(authorization string, requirements Requirements) Request {
	return Request{
		authorization: authorization,
		requirements: Requirements{
			Roles:       append([]string(nil), requirements.Roles...),
			Permissions: append([]string(nil), requirements.Permissions...),
		},
	}
}

// Authorization returns the raw Authorization header
func (r Request) Authorization() string { return r.authorization }

// Requirements returns the declared route requirements
func (r Request) Requirements() Requirements { return r.requirements }

// Claims returns the verified caller claims once authentication has run
func (r Request) Claims() (models.AuthorizationClaims, bool) {
	if r.claims == nil {
		return models.AuthorizationClaims{}, false
	}
	return *r.claims, true
}

// WithClaims returns a copy of r carrying claims
func (r Request) WithClaims(claims models.AuthorizationClaims) Request {
	claims.Permissions = append([]string(nil), claims.Permissions...)
	r.claims = &claims
	return r
}

// Stage is one step of the pipeline
type Stage func(ctx context.Context, req Request) (Request, error)

// Chain runs stages in order and stops at the first error
func Chain(stages ...Stage) Stage {
	return func(ctx context.Context, req Request) (Request, error) {
		var err error
		for _, stage := range stages {
			req, err = stage(ctx, req)
			if err != nil {
				return Request{}, err
			}
		}
		return req, nil
	}
}

type claimsKey struct{}

// ContextWithClaims attaches verified claims to ctx
func ContextWithClaims(ctx context.Context, claims models.AuthorizationClaims) context.Context {
	return context.WithValue(ctx, claimsKey{}, claims)
}

// ClaimsFromContext returns the claims attached by ContextWithClaims
func ClaimsFromContext(ctx context.Context) (models.AuthorizationClaims, bool) {
	claims, ok := ctx.Value(claimsKey{}).(models.AuthorizationClaims)
	return claims, ok
}
