package auth_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nominahr/payroll-management/internal/auth"
)

func TestAuth(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Auth Suite")
}

func boolPtr(b bool) *bool { return &b }

var _ = Describe("Guard", func() {
	var guard *auth.Guard

	BeforeEach(func() {
		guard = auth.NewGuard("/login", "/dashboard")
	})

	authenticatedCtx := func(perms ...auth.Permission) *auth.AuthContext {
		return &auth.AuthContext{
			UserID:       "u-1",
			Email:        "admin@example.com",
			Role:         &auth.RoleInfo{ID: "r-1", Name: "Admin"},
			Permissions:  perms,
			SessionValid: true,
		}
	}

	Describe("IsAuthenticated", func() {
		It("is false for a nil context", func() {
			Expect(auth.IsAuthenticated(nil)).To(BeFalse())
		})

		It("is false when the session is no longer valid", func() {
			ctx := authenticatedCtx()
			ctx.SessionValid = false
			Expect(auth.IsAuthenticated(ctx)).To(BeFalse())
		})

		It("is true for a valid session", func() {
			Expect(auth.IsAuthenticated(authenticatedCtx())).To(BeTrue())
		})
	})

	Describe("HasPermission", func() {
		It("matches resource and action exactly", func() {
			ctx := authenticatedCtx(auth.Permission{Resource: "users", Action: "edit"})

			Expect(ctx.HasPermission("users", "edit")).To(BeTrue())
			Expect(ctx.HasPermission("users", "view")).To(BeFalse())
			Expect(ctx.HasPermission("Users", "edit")).To(BeFalse())
		})

		It("is false on a nil context", func() {
			var ctx *auth.AuthContext
			Expect(ctx.HasPermission("users", "view")).To(BeFalse())
		})

		It("is false with no permissions", func() {
			Expect(authenticatedCtx().HasPermission("users", "view")).To(BeFalse())
		})
	})

	Describe("HasRole", func() {
		It("matches the single role name exactly", func() {
			ctx := authenticatedCtx()
			Expect(ctx.HasRole("Admin")).To(BeTrue())
			Expect(ctx.HasRole("admin")).To(BeFalse())
		})

		It("is false without a role", func() {
			ctx := authenticatedCtx()
			ctx.Role = nil
			Expect(ctx.HasRole("Admin")).To(BeFalse())
		})
	})

	Describe("AuthorizeNavigation", func() {
		It("redirects a nil context to login on a protected route", func() {
			decision := guard.AuthorizeNavigation(auth.RouteMeta{Path: "/nominas"}, nil)

			Expect(decision.Allow).To(BeFalse())
			Expect(decision.RedirectTo).To(Equal("/login"))
		})

		It("treats an unannotated route as requiring authentication", func() {
			decision := guard.AuthorizeNavigation(auth.RouteMeta{Path: "/personas"}, nil)

			Expect(decision.RedirectTo).To(Equal("/login"))
		})

		It("allows an exempt route without a session", func() {
			route := auth.RouteMeta{Path: "/login", RequiresAuth: boolPtr(false)}

			decision := guard.AuthorizeNavigation(route, nil)

			Expect(decision.Allow).To(BeTrue())
		})

		It("redirects an authenticated user away from the login route", func() {
			route := auth.RouteMeta{Path: "/login", RequiresAuth: boolPtr(false)}

			decision := guard.AuthorizeNavigation(route, authenticatedCtx())

			Expect(decision.Allow).To(BeFalse())
			Expect(decision.RedirectTo).To(Equal("/dashboard"))
		})

		It("redirects to the landing page when a required permission is missing", func() {
			route := auth.RouteMeta{
				Path:               "/admin/users",
				RequiredPermission: &auth.Permission{Resource: "users", Action: "view"},
			}

			decision := guard.AuthorizeNavigation(route, authenticatedCtx())

			Expect(decision.Allow).To(BeFalse())
			Expect(decision.RedirectTo).To(Equal("/dashboard"))
		})

		It("checks authentication before permission", func() {
			route := auth.RouteMeta{
				Path:               "/admin/users",
				RequiredPermission: &auth.Permission{Resource: "users", Action: "view"},
			}

			decision := guard.AuthorizeNavigation(route, nil)

			Expect(decision.RedirectTo).To(Equal("/login"))
		})

		It("allows when authentication and permission both hold", func() {
			route := auth.RouteMeta{
				Path:               "/admin/users",
				RequiredPermission: &auth.Permission{Resource: "users", Action: "view"},
			}
			ctx := authenticatedCtx(auth.Permission{Resource: "users", Action: "view"})

			decision := guard.AuthorizeNavigation(route, ctx)

			Expect(decision.Allow).To(BeTrue())
		})
	})

	Describe("NavigationMiddleware", func() {
		It("issues a 303 redirect for a denied navigation", func() {
			handler := guard.NavigationMiddleware(auth.RouteMeta{Path: "/nominas"})(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusOK)
				}))

			req := httptest.NewRequest(http.MethodGet, "/nominas", nil)
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusSeeOther))
			Expect(w.Header().Get("Location")).To(Equal("/login"))
		})

		It("passes an allowed navigation through", func() {
			handler := guard.NavigationMiddleware(auth.RouteMeta{Path: "/nominas"})(
				http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusOK)
				}))

			ctx := &auth.AuthContext{UserID: "u-1", SessionValid: true}
			req := httptest.NewRequest(http.MethodGet, "/nominas", nil)
			req = req.WithContext(auth.WithContext(req.Context(), ctx))
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			Expect(w.Code).To(Equal(http.StatusOK))
		})
	})
})
