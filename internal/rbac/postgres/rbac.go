package postgres

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/nominahr/payroll-management/internal/auth"
	"github.com/nominahr/payroll-management/internal/rbac"
)

type Repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) GetAllRoles() ([]*rbac.Role, error) {
	var roles []*rbac.Role
	err := r.db.Order("name ASC").Find(&roles).Error
	return roles, err
}

func (r *Repository) GetRoleByID(id string) (*rbac.Role, error) {
	var role rbac.Role
	if err := r.db.Where("id = ?", id).First(&role).Error; err != nil {
		return nil, err
	}
	return &role, nil
}

func (r *Repository) CreateRole(role *rbac.Role) error {
	if role.ID == "" {
		role.ID = uuid.NewString()
	}
	return r.db.Create(role).Error
}

func (r *Repository) UpdateRole(role *rbac.Role) error {
	return r.db.Save(role).Error
}

func (r *Repository) DeleteRole(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("role_id = ?", id).Delete(&rbac.RolePermission{}).Error; err != nil {
			return err
		}
		if err := tx.Where("role_id = ?", id).Delete(&rbac.UserRole{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&rbac.Role{}).Error
	})
}

func (r *Repository) GetAllPermissions() ([]*rbac.Permission, error) {
	var permissions []*rbac.Permission
	err := r.db.Order("resource ASC, action ASC").Find(&permissions).Error
	return permissions, err
}

func (r *Repository) GetPermissionByID(id string) (*rbac.Permission, error) {
	var permission rbac.Permission
	if err := r.db.Where("id = ?", id).First(&permission).Error; err != nil {
		return nil, err
	}
	return &permission, nil
}

func (r *Repository) CreatePermission(permission *rbac.Permission) error {
	if permission.ID == "" {
		permission.ID = uuid.NewString()
	}
	return r.db.Create(permission).Error
}

func (r *Repository) UpdatePermission(permission *rbac.Permission) error {
	return r.db.Save(permission).Error
}

func (r *Repository) DeletePermission(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("permission_id = ?", id).Delete(&rbac.RolePermission{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&rbac.Permission{}).Error
	})
}

func (r *Repository) GetPermissionsForRole(roleID string) ([]*rbac.Permission, error) {
	var permissions []*rbac.Permission
	err := r.db.
		Joins("JOIN role_permissions ON role_permissions.permission_id = permissions.id").
		Where("role_permissions.role_id = ?", roleID).
		Order("permissions.resource ASC, permissions.action ASC").
		Find(&permissions).Error
	return permissions, err
}

func (r *Repository) AssignPermission(roleID, permissionID string) error {
	rp := rbac.RolePermission{RoleID: roleID, PermissionID: permissionID}
	return r.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&rp).Error
}

func (r *Repository) RemovePermission(roleID, permissionID string) error {
	return r.db.
		Where("role_id = ? AND permission_id = ?", roleID, permissionID).
		Delete(&rbac.RolePermission{}).Error
}

func (r *Repository) GetRoleForUser(userID string) (*rbac.Role, error) {
	var role rbac.Role
	err := r.db.
		Joins("JOIN user_roles ON user_roles.role_id = roles.id").
		Where("user_roles.user_id = ?", userID).
		First(&role).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &role, nil
}

func (r *Repository) SetUserRole(userID, roleID string) error {
	ur := rbac.UserRole{UserID: userID, RoleID: roleID}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role_id"}),
	}).Create(&ur).Error
}

func (r *Repository) RemoveUserRole(userID string) error {
	return r.db.Where("user_id = ?", userID).Delete(&rbac.UserRole{}).Error
}

// AuthAdapter exposes the role store through the narrower view the
// session layer needs when rebuilding an authorization context.
type AuthAdapter struct {
	repo *Repository
}

func NewAuthAdapter(repo *Repository) *AuthAdapter {
	return &AuthAdapter{repo: repo}
}

func (a *AuthAdapter) GetRoleForUser(userID string) (*auth.RoleInfo, error) {
	role, err := a.repo.GetRoleForUser(userID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return nil, nil
	}
	return &auth.RoleInfo{ID: role.ID, Name: role.Name}, nil
}

func (a *AuthAdapter) GetPermissionsForRole(roleID string) ([]auth.Permission, error) {
	permissions, err := a.repo.GetPermissionsForRole(roleID)
	if err != nil {
		return nil, err
	}
	out := make([]auth.Permission, 0, len(permissions))
	for _, p := range permissions {
		out = append(out, auth.Permission{Resource: p.Resource, Action: p.Action})
	}
	return out, nil
}
