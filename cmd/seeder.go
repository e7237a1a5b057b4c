package cmd

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Seed the database with roles, permissions, and an admin user",
	Long:  `Seed the database with the role/permission catalog and a default admin account for development and testing purposes.`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(".")
		if err != nil {
			log.Fatalf("failed to load config: %v", err)
		}

		pool, err := initDB(cfg.Database)
		if err != nil {
			log.Fatalf("failed to init db: %v", err)
		}
		db, err := gorm.Open(gormpostgres.New(gormpostgres.Config{Conn: pool.DB}), &gorm.Config{})
		if err != nil {
			log.Fatalf("failed to bind gorm: %v", err)
		}

		if clearData {
			for _, table := range []string{"user_roles", "role_permissions", "permissions", "roles"} {
				if err := db.Exec("DELETE FROM " + table).Error; err != nil {
					log.Fatalf("failed to clear %s: %v", table, err)
				}
			}
			fmt.Println("Cleared existing role and permission data")
		}

		roles := map[string]string{
			"Admin":   "Full administrative access",
			"Manager": "Edits payroll data, no user administration",
			"Viewer":  "Read-only access",
		}
		roleIDs := map[string]string{}
		for name, desc := range roles {
			var id string
			row := db.Raw("SELECT id FROM roles WHERE name = ?", name).Row()
			if err := row.Scan(&id); err != nil {
				id = uuid.NewString()
				if err := db.Exec("INSERT INTO roles (id, name, description, created_at, updated_at) VALUES (?, ?, ?, now(), now())", id, name, desc).Error; err != nil {
					log.Fatalf("failed to insert role %s: %v", name, err)
				}
				fmt.Println("Seeded role:", name)
			}
			roleIDs[name] = id
		}

		resources := []string{
			"personas", "direcciones", "departamentos", "bancos", "empleados",
			"parametros", "novedades", "provisiones", "nominas", "workspaces",
		}
		permIDs := map[string]string{}
		seedPermission := func(resource, action, desc string) {
			key := resource + ":" + action
			var id string
			row := db.Raw("SELECT id FROM permissions WHERE resource = ? AND action = ?", resource, action).Row()
			if err := row.Scan(&id); err != nil {
				id = uuid.NewString()
				if err := db.Exec("INSERT INTO permissions (id, resource, action, description, created_at) VALUES (?, ?, ?, ?, now())", id, resource, action, desc).Error; err != nil {
					log.Fatalf("failed to insert permission %s: %v", key, err)
				}
			}
			permIDs[key] = id
		}
		for _, resource := range resources {
			seedPermission(resource, "view", "Can view "+resource)
			seedPermission(resource, "edit", "Can edit "+resource)
		}
		seedPermission("users", "manage", "Can administer users, roles, and permissions")

		grant := func(roleID, permID string) {
			var exists int
			if err := db.Raw("SELECT 1 FROM role_permissions WHERE role_id = ? AND permission_id = ?", roleID, permID).Row().Scan(&exists); err == nil {
				return
			}
			if err := db.Exec("INSERT INTO role_permissions (role_id, permission_id, created_at) VALUES (?, ?, now())", roleID, permID).Error; err != nil {
				log.Fatalf("failed to grant permission: %v", err)
			}
		}
		for key, permID := range permIDs {
			grant(roleIDs["Admin"], permID)
			if key != "users:manage" {
				grant(roleIDs["Manager"], permID)
			}
		}
		for _, resource := range resources {
			grant(roleIDs["Viewer"], permIDs[resource+":view"])
		}
		fmt.Println("Seeded permission grants for Admin, Manager, Viewer")

		adminEmail := "admin@nominahr.local"
		hash, _ := bcrypt.GenerateFromPassword([]byte("password"), cfg.Security.BCryptCost)

		var adminID string
		row := db.Raw("SELECT id FROM users WHERE email = ?", adminEmail).Row()
		if err := row.Scan(&adminID); err != nil {
			adminID = uuid.NewString()
			if err := db.Exec("INSERT INTO users (id, email, nombre, password_hash, is_active, created_at, updated_at) VALUES (?, ?, ?, ?, true, now(), now())", adminID, adminEmail, "Administrador", string(hash)).Error; err != nil {
				log.Fatalf("failed to insert admin user: %v", err)
			}
			fmt.Println("Seeded admin user:", adminEmail)
		} else {
			fmt.Println("admin user already exists; will ensure role")
		}

		var exists int
		if err := db.Raw("SELECT 1 FROM user_roles WHERE user_id = ?", adminID).Row().Scan(&exists); err != nil {
			if err := db.Exec("INSERT INTO user_roles (user_id, role_id, created_at) VALUES (?, ?, now())", adminID, roleIDs["Admin"]).Error; err != nil {
				log.Fatalf("failed to assign admin role: %v", err)
			}
		}

		fmt.Println("Assigned Admin role to:", adminEmail)
	},
}
