package rbac_test

import (
	"errors"
	"log/slog"
	"testing"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/nominahr/payroll-management/internal/rbac"
)

func TestRBAC(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "RBAC Suite")
}

type mockRepo struct {
	roles       map[string]*rbac.Role
	permissions map[string]*rbac.Permission
	rolePerms   map[string][]string
	userRoles   map[string]string
	failAll     bool
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		roles:       map[string]*rbac.Role{},
		permissions: map[string]*rbac.Permission{},
		rolePerms:   map[string][]string{},
		userRoles:   map[string]string{},
	}
}

var errStore = errors.New("store unavailable")

func (m *mockRepo) GetAllRoles() ([]*rbac.Role, error) {
	if m.failAll {
		return nil, errStore
	}
	out := make([]*rbac.Role, 0, len(m.roles))
	for _, r := range m.roles {
		out = append(out, r)
	}
	return out, nil
}

func (m *mockRepo) GetRoleByID(id string) (*rbac.Role, error) {
	if r, ok := m.roles[id]; ok {
		return r, nil
	}
	return nil, errors.New("record not found")
}

func (m *mockRepo) CreateRole(role *rbac.Role) error {
	if m.failAll {
		return errStore
	}
	if role.ID == "" {
		role.ID = "role-" + role.Name
	}
	m.roles[role.ID] = role
	return nil
}

func (m *mockRepo) UpdateRole(role *rbac.Role) error {
	m.roles[role.ID] = role
	return nil
}

func (m *mockRepo) DeleteRole(id string) error {
	delete(m.roles, id)
	return nil
}

func (m *mockRepo) GetAllPermissions() ([]*rbac.Permission, error) {
	out := make([]*rbac.Permission, 0, len(m.permissions))
	for _, p := range m.permissions {
		out = append(out, p)
	}
	return out, nil
}

func (m *mockRepo) GetPermissionByID(id string) (*rbac.Permission, error) {
	if p, ok := m.permissions[id]; ok {
		return p, nil
	}
	return nil, errors.New("record not found")
}

func (m *mockRepo) CreatePermission(p *rbac.Permission) error {
	if p.ID == "" {
		p.ID = "perm-" + p.Resource + "-" + p.Action
	}
	m.permissions[p.ID] = p
	return nil
}

func (m *mockRepo) UpdatePermission(p *rbac.Permission) error {
	m.permissions[p.ID] = p
	return nil
}

func (m *mockRepo) DeletePermission(id string) error {
	delete(m.permissions, id)
	return nil
}

func (m *mockRepo) GetPermissionsForRole(roleID string) ([]*rbac.Permission, error) {
	out := []*rbac.Permission{}
	for _, pid := range m.rolePerms[roleID] {
		if p, ok := m.permissions[pid]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockRepo) AssignPermission(roleID, permissionID string) error {
	m.rolePerms[roleID] = append(m.rolePerms[roleID], permissionID)
	return nil
}

func (m *mockRepo) RemovePermission(roleID, permissionID string) error {
	kept := m.rolePerms[roleID][:0]
	for _, pid := range m.rolePerms[roleID] {
		if pid != permissionID {
			kept = append(kept, pid)
		}
	}
	m.rolePerms[roleID] = kept
	return nil
}

func (m *mockRepo) GetRoleForUser(userID string) (*rbac.Role, error) {
	if m.failAll {
		return nil, errStore
	}
	roleID, ok := m.userRoles[userID]
	if !ok {
		return nil, nil
	}
	return m.roles[roleID], nil
}

func (m *mockRepo) SetUserRole(userID, roleID string) error {
	m.userRoles[userID] = roleID
	return nil
}

func (m *mockRepo) RemoveUserRole(userID string) error {
	delete(m.userRoles, userID)
	return nil
}

var _ = Describe("RBAC Service", func() {
	var (
		repo    *mockRepo
		service *rbac.Service
	)

	BeforeEach(func() {
		repo = newMockRepo()
		service = rbac.NewService(repo, slog.Default())
	})

	Describe("CreateRole", func() {
		It("creates a role with a trimmed name", func() {
			role, err := service.CreateRole(rbac.RoleDTO{Name: "  Manager  "})
			Expect(err).NotTo(HaveOccurred())
			Expect(role.Name).To(Equal("Manager"))
			Expect(role.ID).NotTo(BeEmpty())
		})

		It("rejects an empty name", func() {
			_, err := service.CreateRole(rbac.RoleDTO{Name: "   "})
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("UpdateRole", func() {
		It("returns not found for an unknown role", func() {
			_, err := service.UpdateRole("missing", rbac.RoleDTO{Name: "Admin"})
			Expect(err).To(Equal(rbac.ErrRoleNotFound))
		})

		It("applies the new name and description", func() {
			role, err := service.CreateRole(rbac.RoleDTO{Name: "Viewer"})
			Expect(err).NotTo(HaveOccurred())

			updated, err := service.UpdateRole(role.ID, rbac.RoleDTO{Name: "Auditor", Description: "read only"})
			Expect(err).NotTo(HaveOccurred())
			Expect(updated.Name).To(Equal("Auditor"))
			Expect(updated.Description).To(Equal("read only"))
		})
	})

	Describe("CreatePermission", func() {
		It("requires both resource and action", func() {
			_, err := service.CreatePermission(rbac.PermissionDTO{Resource: "usuarios"})
			Expect(err).To(HaveOccurred())

			_, err = service.CreatePermission(rbac.PermissionDTO{Action: "ver"})
			Expect(err).To(HaveOccurred())
		})

		It("stores the pair as given", func() {
			p, err := service.CreatePermission(rbac.PermissionDTO{Resource: "nominas", Action: "editar"})
			Expect(err).NotTo(HaveOccurred())
			Expect(p.Resource).To(Equal("nominas"))
			Expect(p.Action).To(Equal("editar"))
		})
	})

	Describe("AssignPermission", func() {
		It("rejects assignment to an unknown role", func() {
			p, _ := service.CreatePermission(rbac.PermissionDTO{Resource: "nominas", Action: "ver"})
			err := service.AssignPermission("missing", p.ID)
			Expect(err).To(Equal(rbac.ErrRoleNotFound))
		})

		It("rejects an unknown permission", func() {
			role, _ := service.CreateRole(rbac.RoleDTO{Name: "Manager"})
			err := service.AssignPermission(role.ID, "missing")
			Expect(err).To(Equal(rbac.ErrPermissionNotFound))
		})

		It("makes the permission visible on the role", func() {
			role, _ := service.CreateRole(rbac.RoleDTO{Name: "Manager"})
			p, _ := service.CreatePermission(rbac.PermissionDTO{Resource: "nominas", Action: "ver"})

			Expect(service.AssignPermission(role.ID, p.ID)).To(Succeed())

			perms, err := service.GetRolePermissions(role.ID)
			Expect(err).NotTo(HaveOccurred())
			Expect(perms).To(HaveLen(1))
			Expect(perms[0].Resource).To(Equal("nominas"))
		})
	})

	Describe("GetUserPermissions", func() {
		It("returns an empty set for a user without a role", func() {
			perms, err := service.GetUserPermissions("user-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(perms).To(BeEmpty())
		})

		It("flattens permissions through the user's role", func() {
			role, _ := service.CreateRole(rbac.RoleDTO{Name: "Manager"})
			p1, _ := service.CreatePermission(rbac.PermissionDTO{Resource: "nominas", Action: "ver"})
			p2, _ := service.CreatePermission(rbac.PermissionDTO{Resource: "nominas", Action: "editar"})
			Expect(service.AssignPermission(role.ID, p1.ID)).To(Succeed())
			Expect(service.AssignPermission(role.ID, p2.ID)).To(Succeed())
			Expect(service.SetUserRole("user-1", role.ID)).To(Succeed())

			perms, err := service.GetUserPermissions("user-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(perms).To(HaveLen(2))
		})

		It("propagates store failures", func() {
			repo.failAll = true
			_, err := service.GetUserPermissions("user-1")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("SetUserRole", func() {
		It("rejects an unknown role", func() {
			err := service.SetUserRole("user-1", "missing")
			Expect(err).To(Equal(rbac.ErrRoleNotFound))
		})

		It("replaces the previous role", func() {
			r1, _ := service.CreateRole(rbac.RoleDTO{Name: "Viewer"})
			r2, _ := service.CreateRole(rbac.RoleDTO{Name: "Admin"})
			Expect(service.SetUserRole("user-1", r1.ID)).To(Succeed())
			Expect(service.SetUserRole("user-1", r2.ID)).To(Succeed())

			role, err := service.GetUserRole("user-1")
			Expect(err).NotTo(HaveOccurred())
			Expect(role.Name).To(Equal("Admin"))
		})
	})
})
