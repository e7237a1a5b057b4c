package rbac

import (
	"log/slog"
)

type RepositoryAPI interface {
	GetAllRoles() ([]*Role, error)
	GetRoleByID(id string) (*Role, error)
	CreateRole(role *Role) error
	UpdateRole(role *Role) error
	DeleteRole(id string) error

	GetAllPermissions() ([]*Permission, error)
	GetPermissionByID(id string) (*Permission, error)
	CreatePermission(permission *Permission) error
	UpdatePermission(permission *Permission) error
	DeletePermission(id string) error

	GetPermissionsForRole(roleID string) ([]*Permission, error)
	AssignPermission(roleID, permissionID string) error
	RemovePermission(roleID, permissionID string) error

	GetRoleForUser(userID string) (*Role, error)
	SetUserRole(userID, roleID string) error
	RemoveUserRole(userID string) error
}

type Service struct {
	repo   RepositoryAPI
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

func (s *Service) GetAllRoles() ([]*Role, error) {
	roles, err := s.repo.GetAllRoles()
	if err != nil {
		s.logger.Error("failed to list roles", "error", err)
		return nil, err
	}
	return roles, nil
}

func (s *Service) CreateRole(dto RoleDTO) (*Role, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	role := &Role{
		Name:        dto.Name,
		Description: dto.Description,
	}
	if err := s.repo.CreateRole(role); err != nil {
		s.logger.Error("failed to create role", "error", err, "name", dto.Name)
		return nil, err
	}

	s.logger.Info("role created", "role_id", role.ID, "name", role.Name)
	return role, nil
}

func (s *Service) UpdateRole(id string, dto RoleDTO) (*Role, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	role, err := s.repo.GetRoleByID(id)
	if err != nil {
		return nil, ErrRoleNotFound
	}

	role.Name = dto.Name
	role.Description = dto.Description
	if err := s.repo.UpdateRole(role); err != nil {
		s.logger.Error("failed to update role", "error", err, "role_id", id)
		return nil, err
	}

	return role, nil
}

func (s *Service) DeleteRole(id string) error {
	if _, err := s.repo.GetRoleByID(id); err != nil {
		return ErrRoleNotFound
	}
	if err := s.repo.DeleteRole(id); err != nil {
		s.logger.Error("failed to delete role", "error", err, "role_id", id)
		return err
	}

	s.logger.Info("role deleted", "role_id", id)
	return nil
}

func (s *Service) GetAllPermissions() ([]*Permission, error) {
	permissions, err := s.repo.GetAllPermissions()
	if err != nil {
		s.logger.Error("failed to list permissions", "error", err)
		return nil, err
	}
	return permissions, nil
}

func (s *Service) CreatePermission(dto PermissionDTO) (*Permission, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	permission := &Permission{
		Resource:    dto.Resource,
		Action:      dto.Action,
		Description: dto.Description,
	}
	if err := s.repo.CreatePermission(permission); err != nil {
		s.logger.Error("failed to create permission", "error", err,
			"resource", dto.Resource, "action", dto.Action)
		return nil, err
	}

	return permission, nil
}

func (s *Service) UpdatePermission(id string, dto PermissionDTO) (*Permission, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	permission, err := s.repo.GetPermissionByID(id)
	if err != nil {
		return nil, ErrPermissionNotFound
	}

	permission.Resource = dto.Resource
	permission.Action = dto.Action
	permission.Description = dto.Description
	if err := s.repo.UpdatePermission(permission); err != nil {
		s.logger.Error("failed to update permission", "error", err, "permission_id", id)
		return nil, err
	}

	return permission, nil
}

func (s *Service) DeletePermission(id string) error {
	if _, err := s.repo.GetPermissionByID(id); err != nil {
		return ErrPermissionNotFound
	}
	return s.repo.DeletePermission(id)
}

func (s *Service) GetRolePermissions(roleID string) ([]*Permission, error) {
	if _, err := s.repo.GetRoleByID(roleID); err != nil {
		return nil, ErrRoleNotFound
	}
	return s.repo.GetPermissionsForRole(roleID)
}

func (s *Service) AssignPermission(roleID, permissionID string) error {
	if _, err := s.repo.GetRoleByID(roleID); err != nil {
		return ErrRoleNotFound
	}
	if _, err := s.repo.GetPermissionByID(permissionID); err != nil {
		return ErrPermissionNotFound
	}
	if err := s.repo.AssignPermission(roleID, permissionID); err != nil {
		s.logger.Error("failed to assign permission", "error", err,
			"role_id", roleID, "permission_id", permissionID)
		return err
	}

	s.logger.Info("permission assigned to role", "role_id", roleID, "permission_id", permissionID)
	return nil
}

func (s *Service) RemovePermission(roleID, permissionID string) error {
	if err := s.repo.RemovePermission(roleID, permissionID); err != nil {
		s.logger.Error("failed to remove permission", "error", err,
			"role_id", roleID, "permission_id", permissionID)
		return err
	}
	return nil
}

// GetUserRole returns the user's single role, or nil when none is assigned.
func (s *Service) GetUserRole(userID string) (*Role, error) {
	return s.repo.GetRoleForUser(userID)
}

// GetUserPermissions flattens the permission set reachable through the
// user's role. A user without a role has no permissions.
func (s *Service) GetUserPermissions(userID string) ([]*Permission, error) {
	role, err := s.repo.GetRoleForUser(userID)
	if err != nil {
		return nil, err
	}
	if role == nil {
		return []*Permission{}, nil
	}
	return s.repo.GetPermissionsForRole(role.ID)
}

func (s *Service) SetUserRole(userID, roleID string) error {
	if _, err := s.repo.GetRoleByID(roleID); err != nil {
		return ErrRoleNotFound
	}
	return s.repo.SetUserRole(userID, roleID)
}
