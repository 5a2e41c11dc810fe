// Package authz decides whether a verified caller may perform an admin-gated
// mutation. Every gated route goes through the same check; there are no
// per-route variations of the role comparison.
package authz

import (
	"context"
	"errors"
	"net/http"

	"storefront/internal/api"
)

// RoleAdmin is the only role value that grants elevated privileges.
const RoleAdmin = "admin"

var (
	ErrNoIdentity = errors.New("no verified identity")
	ErrNotAdmin   = errors.New("caller is not an admin")
)

// RoleFinder reports the stored role for an email, or "" when the user is
// unknown or has no role set.
type RoleFinder interface {
	RoleByEmail(ctx context.Context, email string) (string, error)
}

type Authorizer struct {
	Roles RoleFinder
}

// RequireAdmin permits the operation only for callers whose stored role is
// exactly RoleAdmin. An anonymous caller, an unknown user, or any other role
// value is rejected. Store failures propagate unchanged.
func (a Authorizer) RequireAdmin(ctx context.Context, caller *api.Caller) error {
	if caller == nil {
		return ErrNoIdentity
	}
	role, err := a.Roles.RoleByEmail(ctx, caller.Email)
	if err != nil {
		return err
	}
	if role != RoleAdmin {
		return ErrNotAdmin
	}
	return nil
}

// WriteDenied translates a RequireAdmin error to the response the route owes
// the caller. Handlers must return immediately after calling it.
func WriteDenied(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNoIdentity):
		api.WriteError(w, http.StatusUnauthorized, "UNAUTHORIZED", "you are not logged in")
	case errors.Is(err, ErrNotAdmin):
		api.WriteError(w, http.StatusForbidden, "FORBIDDEN", "you are not authorized")
	default:
		api.WriteError(w, http.StatusInternalServerError, "INTERNAL", "internal error")
	}
}
