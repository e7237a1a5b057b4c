package auth

import (
	"log/slog"
	"net/http"
)

// IsAuthenticated reports whether a usable session exists. A nil context or
// an invalidated session both count as unauthenticated.
func IsAuthenticated(ctx *AuthContext) bool {
	return ctx != nil && ctx.SessionValid
}

// HasPermission reports whether the flattened permission set contains an
// exact (resource, action) match. Matching is case-sensitive; there is no
// wildcard or hierarchy semantics.
func (c *AuthContext) HasPermission(resource, action string) bool {
	if c == nil {
		return false
	}
	for _, p := range c.Permissions {
		if p.Resource == resource && p.Action == action {
			return true
		}
	}
	return false
}

// HasRole reports whether the resolved role name equals roleName exactly.
func (c *AuthContext) HasRole(roleName string) bool {
	return c != nil && c.Role != nil && c.Role.Name == roleName
}

// RouteMeta is the declarative authorization metadata a route carries.
// RequiresAuth nil means the fail-closed default: authentication required.
type RouteMeta struct {
	Path               string
	RequiresAuth       *bool
	RequiredPermission *Permission
}

func (m RouteMeta) requiresAuth() bool {
	if m.RequiresAuth == nil {
		return true
	}
	return *m.RequiresAuth
}

// Decision is the outcome of a navigation check: either allow, or redirect
// to the given path.
type Decision struct {
	Allow      bool
	RedirectTo string
}

// Guard evaluates route access for a resolved authorization context. It
// holds no per-request state and is safe for concurrent use.
type Guard struct {
	LoginPath   string
	DefaultPath string
}

func NewGuard(loginPath, defaultPath string) *Guard {
	return &Guard{LoginPath: loginPath, DefaultPath: defaultPath}
}

// AuthorizeNavigation applies the access decision table in fixed order,
// first match wins:
//
//  1. route requires auth and no valid session: redirect to login
//  2. login route while authenticated: redirect to the default landing
//  3. route requires a permission the context lacks: redirect to the
//     default landing
//  4. otherwise allow
//
// Authentication is checked before permission so an unauthenticated caller
// never learns which routes are permission-gated. Missing data always
// resolves to the least-privileged outcome; this function never panics.
func (g *Guard) AuthorizeNavigation(route RouteMeta, ctx *AuthContext) Decision {
	authenticated := IsAuthenticated(ctx)

	if route.requiresAuth() && !authenticated {
		return Decision{RedirectTo: g.LoginPath}
	}

	if route.Path == g.LoginPath && authenticated {
		return Decision{RedirectTo: g.DefaultPath}
	}

	if p := route.RequiredPermission; p != nil && !ctx.HasPermission(p.Resource, p.Action) {
		return Decision{RedirectTo: g.DefaultPath}
	}

	return Decision{Allow: true}
}

// NavigationMiddleware applies the decision table to incoming requests,
// translating a redirect decision into a 303 response.
func (g *Guard) NavigationMiddleware(route RouteMeta) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			decision := g.AuthorizeNavigation(route, ContextFrom(r.Context()))
			if !decision.Allow {
				http.Redirect(w, r, decision.RedirectTo, http.StatusSeeOther)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// RequirePermission is the API-style permission gate: 401 without a valid
// session, 403 without the exact (resource, action) grant.
func RequirePermission(resource, action string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ContextFrom(r.Context())
			if !IsAuthenticated(ctx) {
				logger.Warn("permission check failed: no authenticated context",
					"resource", resource, "action", action)
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if !ctx.HasPermission(resource, action) {
				logger.Warn("access denied: insufficient permissions",
					"user_id", ctx.UserID,
					"resource", resource,
					"action", action)
				http.Error(w, "Forbidden: insufficient permissions", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// RequireRole gates a route on an exact role name.
func RequireRole(roleName string, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := ContextFrom(r.Context())
			if !IsAuthenticated(ctx) {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			if !ctx.HasRole(roleName) {
				logger.Warn("access denied: role required",
					"user_id", ctx.UserID,
					"required_role", roleName)
				http.Error(w, "Forbidden: insufficient permissions", http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
