package user

import (
	"strings"
	"time"

	internal "github.com/nominahr/payroll-management/internal"
)

// User is an operator account for the administration console. Access
// rights come from the single role attached through the rbac module.
type User struct {
	ID           string    `json:"id" gorm:"primaryKey;type:uuid"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null"`
	Nombre       string    `json:"nombre" gorm:"column:nombre"`
	PasswordHash string    `json:"-" gorm:"column:password_hash;not null"`
	IsActive     bool      `json:"is_active" gorm:"column:is_active;default:true"`
	CreatedAt    time.Time `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    time.Time `json:"updated_at" gorm:"column:updated_at"`
}

func (User) TableName() string {
	return "users"
}

// UserWithRole is the listing shape: the account plus the name of its
// assigned role, if any.
type UserWithRole struct {
	User
	RoleID   string `json:"role_id,omitempty"`
	RoleName string `json:"role_name,omitempty"`
}

type CreateUserDTO struct {
	Email    string `json:"email"`
	Nombre   string `json:"nombre"`
	Password string `json:"password"`
	RoleID   string `json:"role_id"`
}

func (dto *CreateUserDTO) Validate() error {
	dto.Email = strings.TrimSpace(strings.ToLower(dto.Email))
	dto.Nombre = strings.TrimSpace(dto.Nombre)
	dto.RoleID = strings.TrimSpace(dto.RoleID)

	if dto.Email == "" || !strings.Contains(dto.Email, "@") {
		return internal.NewValidationFieldError("email", "a valid email is required", internal.ErrCodeValidationFailed)
	}
	if len(dto.Password) < 8 {
		return internal.NewValidationFieldError("password", "password must be at least 8 characters", internal.ErrCodeValidationFailed)
	}
	return nil
}

type UpdateUserDTO struct {
	Nombre   *string `json:"nombre,omitempty"`
	IsActive *bool   `json:"is_active,omitempty"`
	RoleID   *string `json:"role_id,omitempty"`
	Password *string `json:"password,omitempty"`
}

func (dto *UpdateUserDTO) Validate() error {
	if dto.Nombre != nil {
		trimmed := strings.TrimSpace(*dto.Nombre)
		dto.Nombre = &trimmed
	}
	if dto.Password != nil && len(*dto.Password) < 8 {
		return internal.NewValidationFieldError("password", "password must be at least 8 characters", internal.ErrCodeValidationFailed)
	}
	return nil
}

var (
	ErrUserNotFound   = internal.NewNotFoundError("User not found", internal.ErrCodeUserNotFound)
	ErrDuplicateEmail = internal.NewConflictError("Email already registered", internal.ErrCodeDuplicateEmail)
)
