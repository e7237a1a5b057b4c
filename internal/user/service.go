package user

import (
	"log/slog"

	"github.com/nominahr/payroll-management/internal/rbac"
)

type RepositoryAPI interface {
	GetAll() ([]*User, error)
	GetByID(id string) (*User, error)
	GetByEmail(email string) (*User, error)
	Create(u *User) error
	Update(u *User) error
}

// PasswordHasher abstracts credential hashing so the admin service
// shares the cost configuration of the session layer.
type PasswordHasher interface {
	HashPassword(password string) (string, error)
}

type RoleAssigner interface {
	GetUserRole(userID string) (*rbac.Role, error)
	SetUserRole(userID, roleID string) error
}

type Service struct {
	repo   RepositoryAPI
	hasher PasswordHasher
	roles  RoleAssigner
	logger *slog.Logger
}

func NewService(repo RepositoryAPI, hasher PasswordHasher, roles RoleAssigner, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		hasher: hasher,
		roles:  roles,
		logger: logger,
	}
}

func (s *Service) GetAllUsers() ([]*UserWithRole, error) {
	users, err := s.repo.GetAll()
	if err != nil {
		s.logger.Error("failed to list users", "error", err)
		return nil, err
	}

	out := make([]*UserWithRole, 0, len(users))
	for _, u := range users {
		entry := &UserWithRole{User: *u}
		role, err := s.roles.GetUserRole(u.ID)
		if err != nil {
			s.logger.Error("failed to resolve user role", "error", err, "user_id", u.ID)
			return nil, err
		}
		if role != nil {
			entry.RoleID = role.ID
			entry.RoleName = role.Name
		}
		out = append(out, entry)
	}
	return out, nil
}

func (s *Service) GetUser(id string) (*UserWithRole, error) {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	entry := &UserWithRole{User: *u}
	role, err := s.roles.GetUserRole(u.ID)
	if err != nil {
		return nil, err
	}
	if role != nil {
		entry.RoleID = role.ID
		entry.RoleName = role.Name
	}
	return entry, nil
}

func (s *Service) CreateUser(dto CreateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	if existing, err := s.repo.GetByEmail(dto.Email); err == nil && existing != nil {
		return nil, ErrDuplicateEmail
	}

	hash, err := s.hasher.HashPassword(dto.Password)
	if err != nil {
		s.logger.Error("failed to hash password", "error", err)
		return nil, err
	}

	u := &User{
		Email:        dto.Email,
		Nombre:       dto.Nombre,
		PasswordHash: hash,
		IsActive:     true,
	}
	if err := s.repo.Create(u); err != nil {
		s.logger.Error("failed to create user", "error", err, "email", dto.Email)
		return nil, err
	}

	if dto.RoleID != "" {
		if err := s.roles.SetUserRole(u.ID, dto.RoleID); err != nil {
			s.logger.Error("failed to assign role to new user", "error", err,
				"user_id", u.ID, "role_id", dto.RoleID)
			return nil, err
		}
	}

	s.logger.Info("user created", "user_id", u.ID, "email", u.Email)
	return u, nil
}

func (s *Service) UpdateUser(id string, dto UpdateUserDTO) (*User, error) {
	if err := dto.Validate(); err != nil {
		return nil, err
	}

	u, err := s.repo.GetByID(id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if dto.Nombre != nil {
		u.Nombre = *dto.Nombre
	}
	if dto.IsActive != nil {
		u.IsActive = *dto.IsActive
	}
	if dto.Password != nil {
		hash, err := s.hasher.HashPassword(*dto.Password)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = hash
	}

	if err := s.repo.Update(u); err != nil {
		s.logger.Error("failed to update user", "error", err, "user_id", id)
		return nil, err
	}

	if dto.RoleID != nil && *dto.RoleID != "" {
		if err := s.roles.SetUserRole(u.ID, *dto.RoleID); err != nil {
			s.logger.Error("failed to change user role", "error", err,
				"user_id", u.ID, "role_id", *dto.RoleID)
			return nil, err
		}
	}

	return u, nil
}

// DeactivateUser disables the account instead of deleting it, so audit
// references to the operator stay resolvable.
func (s *Service) DeactivateUser(id string) error {
	u, err := s.repo.GetByID(id)
	if err != nil {
		return ErrUserNotFound
	}

	u.IsActive = false
	if err := s.repo.Update(u); err != nil {
		s.logger.Error("failed to deactivate user", "error", err, "user_id", id)
		return err
	}

	s.logger.Info("user deactivated", "user_id", id)
	return nil
}
