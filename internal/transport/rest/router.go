package rest

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi"
	chiMiddleware "github.com/go-chi/chi/middleware"

	"github.com/nominahr/payroll-management/internal/auth"
	"github.com/nominahr/payroll-management/internal/banco"
	"github.com/nominahr/payroll-management/internal/departamento"
	"github.com/nominahr/payroll-management/internal/direccion"
	"github.com/nominahr/payroll-management/internal/empleado"
	"github.com/nominahr/payroll-management/internal/nomina"
	"github.com/nominahr/payroll-management/internal/novedad"
	"github.com/nominahr/payroll-management/internal/parametro"
	"github.com/nominahr/payroll-management/internal/persona"
	"github.com/nominahr/payroll-management/internal/provision"
	"github.com/nominahr/payroll-management/internal/rbac"
	"github.com/nominahr/payroll-management/internal/transport/middleware"
	"github.com/nominahr/payroll-management/internal/transport/swagger"
	"github.com/nominahr/payroll-management/internal/user"
	"github.com/nominahr/payroll-management/internal/workspace"
)

// Handlers bundles every mounted handler so route registration stays in
// one place.
type Handlers struct {
	Auth         *auth.Handler
	Persona      *persona.Handler
	Direccion    *direccion.Handler
	Departamento *departamento.Handler
	Banco        *banco.Handler
	Empleado     *empleado.Handler
	Parametro    *parametro.Handler
	Novedad      *novedad.Handler
	Provision    *provision.Handler
	Nomina       *nomina.Handler
	Workspace    *workspace.Handler
	RBAC         *rbac.Handler
	User         *user.Handler
}

// RegisterAllRoutes mounts the API under /api/v1. Every resource group
// sits behind the auth middleware and a per-resource permission check;
// only login, refresh, health, and the API docs are exempt.
func RegisterAllRoutes(router *chi.Mux, db *sql.DB, h Handlers, logger *slog.Logger) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS)
	router.Use(chiMiddleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Get("/openapi.yml", func(w http.ResponseWriter, r *http.Request) {
		http.ServeFile(w, r, "./api/openapi.yml")
	})
	router.Handle("/swagger/*", swagger.Handler())

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Route("/auth", func(sr chi.Router) {
			sr.Post("/login", h.Auth.Login)
			sr.Post("/refresh", h.Auth.RefreshToken)
			sr.Post("/logout", h.Auth.Logout)
		})

		r.Group(func(pr chi.Router) {
			pr.Use(h.Auth.AuthMiddleware)

			pr.Get("/auth/me", h.Auth.Me)

			crud(pr, "/personas", "personas", logger, crudHandlers{
				list: h.Persona.List, get: h.Persona.Get,
				create: h.Persona.Create, update: h.Persona.Update, delete: h.Persona.Delete,
			})
			crud(pr, "/direcciones", "direcciones", logger, crudHandlers{
				list: h.Direccion.List, get: h.Direccion.Get,
				create: h.Direccion.Create, update: h.Direccion.Update, delete: h.Direccion.Delete,
			})
			crud(pr, "/departamentos", "departamentos", logger, crudHandlers{
				list: h.Departamento.List, get: h.Departamento.Get,
				create: h.Departamento.Create, update: h.Departamento.Update, delete: h.Departamento.Delete,
			})
			crud(pr, "/bancos", "bancos", logger, crudHandlers{
				list: h.Banco.List, get: h.Banco.Get,
				create: h.Banco.Create, update: h.Banco.Update, delete: h.Banco.Delete,
			})
			crud(pr, "/empleados", "empleados", logger, crudHandlers{
				list: h.Empleado.List, get: h.Empleado.Get,
				create: h.Empleado.Create, update: h.Empleado.Update, delete: h.Empleado.Delete,
			})
			crud(pr, "/parametros", "parametros", logger, crudHandlers{
				list: h.Parametro.List, get: h.Parametro.Get,
				create: h.Parametro.Create, update: h.Parametro.Update, delete: h.Parametro.Delete,
			})
			crud(pr, "/novedades", "novedades", logger, crudHandlers{
				list: h.Novedad.List, get: h.Novedad.Get,
				create: h.Novedad.Create, update: h.Novedad.Update, delete: h.Novedad.Delete,
			})
			crud(pr, "/provisiones", "provisiones", logger, crudHandlers{
				list: h.Provision.List, get: h.Provision.Get,
				create: h.Provision.Create, update: h.Provision.Update, delete: h.Provision.Delete,
			})
			crud(pr, "/nominas", "nominas", logger, crudHandlers{
				list: h.Nomina.List, get: h.Nomina.Get,
				create: h.Nomina.Create, update: h.Nomina.Update, delete: h.Nomina.Delete,
			})

			pr.Route("/workspaces", func(wr chi.Router) {
				wr.Group(func(vr chi.Router) {
					vr.Use(auth.RequirePermission("workspaces", "view", logger))
					vr.Get("/", h.Workspace.List)
					vr.Get("/{id}", h.Workspace.Get)
				})
				wr.Group(func(er chi.Router) {
					er.Use(auth.RequirePermission("workspaces", "edit", logger))
					er.Post("/", h.Workspace.Create)
					er.Post("/{id}/close", h.Workspace.Close)
					er.Delete("/{id}", h.Workspace.Delete)
				})
			})

			// Role and permission administration plus user management
			// stay behind the users/manage grant.
			pr.Group(func(ar chi.Router) {
				ar.Use(auth.RequirePermission("users", "manage", logger))

				ar.Route("/roles", func(rr chi.Router) {
					rr.Get("/", h.RBAC.ListRoles)
					rr.Post("/", h.RBAC.CreateRole)
					rr.Put("/{id}", h.RBAC.UpdateRole)
					rr.Delete("/{id}", h.RBAC.DeleteRole)
					rr.Get("/{id}/permissions", h.RBAC.ListRolePermissions)
					rr.Post("/{id}/permissions/{permissionID}", h.RBAC.AssignPermission)
					rr.Delete("/{id}/permissions/{permissionID}", h.RBAC.RemovePermission)
				})

				ar.Route("/permissions", func(pmr chi.Router) {
					pmr.Get("/", h.RBAC.ListPermissions)
					pmr.Post("/", h.RBAC.CreatePermission)
					pmr.Put("/{id}", h.RBAC.UpdatePermission)
					pmr.Delete("/{id}", h.RBAC.DeletePermission)
				})

				ar.Route("/users", func(ur chi.Router) {
					ur.Get("/", h.User.List)
					ur.Get("/{id}", h.User.Get)
					ur.Post("/", h.User.Create)
					ur.Put("/{id}", h.User.Update)
					ur.Delete("/{id}", h.User.Deactivate)
				})
			})
		})
	})
}

type crudHandlers struct {
	list, get, create, update, delete http.HandlerFunc
}

// crud mounts the standard resource routes with view access for reads
// and edit access for writes.
func crud(r chi.Router, pattern, resource string, logger *slog.Logger, h crudHandlers) {
	r.Route(pattern, func(rr chi.Router) {
		rr.Group(func(vr chi.Router) {
			vr.Use(auth.RequirePermission(resource, "view", logger))
			vr.Get("/", h.list)
			vr.Get("/{id}", h.get)
		})
		rr.Group(func(er chi.Router) {
			er.Use(auth.RequirePermission(resource, "edit", logger))
			er.Post("/", h.create)
			er.Put("/{id}", h.update)
			er.Delete("/{id}", h.delete)
		})
	})
}
