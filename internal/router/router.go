// Package router decides, for a requested view path and the current session,
// whether the view may render or where to redirect instead. Role is the sole
// authorization dimension; there are no nested permission levels.
package router

import (
	"ridehub/internal/domain/models"
)

const SignInPath = "/login"

// Decision is the router's verdict for one requested path.
type Decision struct {
	Allow      bool   `json:"allow"`
	RedirectTo string `json:"redirect_to,omitempty"`
}

// HomePath maps each role to its canonical landing view. The switch is
// exhaustive over the role enumeration; adding a role without extending it
// falls through to the sign-in path, which tests guard against.
func HomePath(role models.Role) string {
	switch role {
	case models.RoleCustomer:
		return "/customer"
	case models.RoleDriver:
		return "/dashboard"
	case models.RoleOwner:
		return "/fleet"
	case models.RoleAdmin:
		return "/admin"
	}
	return SignInPath
}

// guardedPaths mirrors the dashboard routing table: each guarded view and the
// roles allowed to render it.
var guardedPaths = map[string][]models.Role{
	"/customer":        {models.RoleCustomer},
	"/book":            {models.RoleCustomer},
	"/plan-trip":       {models.RoleCustomer},
	"/trips":           {models.RoleCustomer},
	"/payments":        {models.RoleCustomer},
	"/driver":          {models.RoleDriver},
	"/dashboard":       {models.RoleDriver},
	"/driver/earnings": {models.RoleDriver},
	"/driver/work":     {models.RoleDriver},
	"/owner":           {models.RoleOwner},
	"/owner/dashboard": {models.RoleOwner},
	"/fleet":           {models.RoleOwner},
	"/admin":           {models.RoleAdmin},
	"/admin/dashboard": {models.RoleAdmin},
}

var publicPaths = map[string]bool{
	"/":       true,
	"/login":  true,
	"/signup": true,
}

// Guarded reports whether the path requires an authorized role.
func Guarded(path string) bool {
	_, ok := guardedPaths[path]
	return ok
}

// Resolve is a pure function of (path, session role). Unauthenticated access
// to a guarded path redirects to sign-in; an authenticated session lacking
// the required role is sent to its own home, never rendered. Unknown paths
// are left to the caller's not-found handling.
func Resolve(path string, user *models.Identity) Decision {
	if publicPaths[path] {
		return Decision{Allow: true}
	}

	roles, guarded := guardedPaths[path]
	if !guarded {
		return Decision{Allow: true}
	}

	if user == nil {
		return Decision{RedirectTo: SignInPath}
	}

	for _, r := range roles {
		if user.Role == r {
			return Decision{Allow: true}
		}
	}
	return Decision{RedirectTo: HomePath(user.Role)}
}
