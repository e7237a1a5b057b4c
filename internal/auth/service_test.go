package auth_test

import (
	"errors"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"golang.org/x/crypto/bcrypt"

	internal "github.com/nominahr/payroll-management/internal"
	"github.com/nominahr/payroll-management/internal/auth"
)

type mockUserRepo struct {
	passwordHash string
	userID       string
	isActive     bool
	err          error
}

func (m *mockUserRepo) GetPasswordForEmail(email string) (string, string, bool, error) {
	if m.err != nil {
		return "", "", false, m.err
	}
	return m.passwordHash, m.userID, m.isActive, nil
}

type mockRoleRepo struct {
	role        *auth.RoleInfo
	permissions []auth.Permission
	roleErr     error
	permErr     error
}

func (m *mockRoleRepo) GetRoleForUser(userID string) (*auth.RoleInfo, error) {
	return m.role, m.roleErr
}

func (m *mockRoleRepo) GetPermissionsForRole(roleID string) ([]auth.Permission, error) {
	return m.permissions, m.permErr
}

var _ = Describe("Auth Service", func() {
	var (
		userRepo *mockUserRepo
		roleRepo *mockRoleRepo
		tokenGen *auth.JWTTokenGenerator
		service  *auth.Service
	)

	const password = "s3cret-password"

	BeforeEach(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
		Expect(err).NotTo(HaveOccurred())

		userRepo = &mockUserRepo{
			passwordHash: string(hash),
			userID:       "u-1",
			isActive:     true,
		}
		roleRepo = &mockRoleRepo{}
		tokenGen = auth.NewJWTTokenGenerator(
			"access-secret-access-secret-access-secret",
			"refresh-secret-refresh-secret-refresh",
			15*time.Minute,
			7*24*time.Hour,
		)
		service = auth.NewService(userRepo, roleRepo, tokenGen, bcrypt.MinCost)
	})

	Describe("Authenticate", func() {
		It("returns tokens for valid credentials", func() {
			tokens, err := service.Authenticate(auth.LoginDTO{Email: "admin@example.com", Password: password})

			Expect(err).NotTo(HaveOccurred())
			Expect(tokens.AccessToken).NotTo(BeEmpty())
			Expect(tokens.RefreshToken).NotTo(BeEmpty())
		})

		It("rejects a wrong password", func() {
			_, err := service.Authenticate(auth.LoginDTO{Email: "admin@example.com", Password: "wrong"})

			Expect(err).To(MatchError(internal.ErrInvalidCredentials))
		})

		It("rejects an unknown user without leaking the reason", func() {
			userRepo.err = errors.New("user not found")

			_, err := service.Authenticate(auth.LoginDTO{Email: "nobody@example.com", Password: password})

			Expect(err).To(MatchError(internal.ErrInvalidCredentials))
		})

		It("rejects an inactive account", func() {
			userRepo.isActive = false

			_, err := service.Authenticate(auth.LoginDTO{Email: "admin@example.com", Password: password})

			Expect(err).To(MatchError(internal.ErrUserInactive))
		})

		It("rejects an empty email before touching the repository", func() {
			_, err := service.Authenticate(auth.LoginDTO{Password: password})

			var validationErr auth.ValidationError
			Expect(errors.As(err, &validationErr)).To(BeTrue())
		})
	})

	Describe("ValidateAccessToken", func() {
		It("round-trips claims through a generated token", func() {
			token, err := tokenGen.GenerateAccessToken("u-1", "admin@example.com")
			Expect(err).NotTo(HaveOccurred())

			claims, err := service.ValidateAccessToken(token)
			Expect(err).NotTo(HaveOccurred())
			Expect(claims.UserID).To(Equal("u-1"))
			Expect(claims.Email).To(Equal("admin@example.com"))
		})

		It("rejects garbage tokens", func() {
			_, err := service.ValidateAccessToken("not-a-token")
			Expect(err).To(MatchError(internal.ErrInvalidToken))
		})
	})

	Describe("ResolveContext", func() {
		It("materializes role and flattened permissions", func() {
			roleRepo.role = &auth.RoleInfo{ID: "r-1", Name: "Admin"}
			roleRepo.permissions = []auth.Permission{
				{Resource: "users", Action: "view"},
				{Resource: "users", Action: "manage"},
			}

			ctx, err := service.ResolveContext("u-1")

			Expect(err).NotTo(HaveOccurred())
			Expect(ctx.Role.Name).To(Equal("Admin"))
			Expect(ctx.Permissions).To(HaveLen(2))
			Expect(ctx.SessionValid).To(BeTrue())
		})

		It("returns an empty context for a user without a role", func() {
			ctx, err := service.ResolveContext("u-2")

			Expect(err).NotTo(HaveOccurred())
			Expect(ctx.Role).To(BeNil())
			Expect(ctx.Permissions).To(BeEmpty())
			Expect(ctx.HasPermission("users", "view")).To(BeFalse())
		})

		It("propagates repository failures", func() {
			roleRepo.roleErr = errors.New("db down")

			_, err := service.ResolveContext("u-1")

			Expect(err).To(HaveOccurred())
		})
	})
})
