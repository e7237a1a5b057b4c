package rbac

import (
	"strings"
	"time"

	internal "github.com/nominahr/payroll-management/internal"
)

// Role is a named permission bundle assignable to users.
type Role struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	Name        string    `json:"name" gorm:"uniqueIndex;not null"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (Role) TableName() string {
	return "roles"
}

// Permission is an atomic (resource, action) capability grant.
type Permission struct {
	ID          string    `json:"id" gorm:"primaryKey;type:uuid"`
	Resource    string    `json:"resource" gorm:"not null;uniqueIndex:idx_resource_action"`
	Action      string    `json:"action" gorm:"not null;uniqueIndex:idx_resource_action"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at" gorm:"column:created_at"`
}

func (Permission) TableName() string {
	return "permissions"
}

type RolePermission struct {
	RoleID       string    `json:"role_id" gorm:"primaryKey;type:uuid;column:role_id"`
	PermissionID string    `json:"permission_id" gorm:"primaryKey;type:uuid;column:permission_id"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
}

func (RolePermission) TableName() string {
	return "role_permissions"
}

// UserRole binds a user to its single role. user_id is unique: one role
// per user.
type UserRole struct {
	UserID    string    `json:"user_id" gorm:"primaryKey;type:uuid;column:user_id"`
	RoleID    string    `json:"role_id" gorm:"type:uuid;column:role_id;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"column:created_at"`
}

func (UserRole) TableName() string {
	return "user_roles"
}

type RoleDTO struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

func (dto *RoleDTO) Validate() error {
	dto.Name = strings.TrimSpace(dto.Name)
	dto.Description = strings.TrimSpace(dto.Description)
	if dto.Name == "" {
		return internal.NewValidationFieldError("name", "name is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

type PermissionDTO struct {
	Resource    string `json:"resource"`
	Action      string `json:"action"`
	Description string `json:"description"`
}

func (dto *PermissionDTO) Validate() error {
	dto.Resource = strings.TrimSpace(dto.Resource)
	dto.Action = strings.TrimSpace(dto.Action)
	dto.Description = strings.TrimSpace(dto.Description)
	if dto.Resource == "" {
		return internal.NewValidationFieldError("resource", "resource is required", internal.ErrCodeValidationFailed)
	}
	if dto.Action == "" {
		return internal.NewValidationFieldError("action", "action is required", internal.ErrCodeValidationFailed)
	}
	return nil
}

var (
	ErrRoleNotFound       = internal.NewNotFoundError("Role not found", internal.ErrCodeRoleNotFound)
	ErrPermissionNotFound = internal.NewNotFoundError("Permission not found", internal.ErrCodePermissionNotFound)
)
