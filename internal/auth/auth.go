package auth

import (
	"context"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

type ServiceAPI interface {
	Authenticate(dto LoginDTO) (AuthTokens, error)
	RefreshTokens(refreshToken string) (AuthTokens, error)
	ValidateAccessToken(tokenString string) (*Claims, error)
	ResolveContext(userID string) (*AuthContext, error)
	HashPassword(password string) (string, error)
}

// UserRepository supplies credential and account state lookups.
type UserRepository interface {
	GetPasswordForEmail(email string) (passwordHash string, userID string, isActive bool, err error)
}

// RoleRepository materializes the role and flattened permission set for a
// user. A user has at most one role.
type RoleRepository interface {
	GetRoleForUser(userID string) (*RoleInfo, error)
	GetPermissionsForRole(roleID string) ([]Permission, error)
}

type TokenGeneratorAPI interface {
	GenerateAccessToken(userID, email string) (string, error)
	GenerateRefreshToken(userID, email string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// Permission is an atomic (resource, action) capability grant.
type Permission struct {
	Resource string `json:"resource"`
	Action   string `json:"action"`
}

type RoleInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// AuthContext is the resolved identity, role and flattened permissions for
// the current session. It is rebuilt wholesale on every authentication
// state change, never mutated in place.
type AuthContext struct {
	UserID       string       `json:"user_id"`
	Email        string       `json:"email"`
	Role         *RoleInfo    `json:"role,omitempty"`
	Permissions  []Permission `json:"permissions,omitempty"`
	SessionValid bool         `json:"-"`
}

type AuthTokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type Claims struct {
	UserID string `json:"user_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (dto LoginDTO) Validate() error {
	if strings.TrimSpace(dto.Email) == "" {
		return ValidationError{Message: "email is required"}
	}
	if dto.Password == "" {
		return ValidationError{Message: "password is required"}
	}
	return nil
}

type RefreshTokenDTO struct {
	RefreshToken string `json:"refresh_token"`
}

func (dto RefreshTokenDTO) Validate() error {
	if dto.RefreshToken == "" {
		return ValidationError{Message: "refresh_token is required"}
	}
	return nil
}

type ValidationError struct {
	Message string
}

func (e ValidationError) Error() string {
	return e.Message
}

type JWTTokenGenerator struct {
	AccessTokenSecret  []byte
	RefreshTokenSecret []byte
	AccessTokenTTL     time.Duration
	RefreshTokenTTL    time.Duration
}

type ctxKey string

const ContextUserKey ctxKey = "authContext"

// ContextFrom returns the AuthContext materialized by the auth middleware,
// or nil when the request is unauthenticated.
func ContextFrom(ctx context.Context) *AuthContext {
	if c, ok := ctx.Value(ContextUserKey).(*AuthContext); ok {
		return c
	}
	return nil
}

func WithContext(ctx context.Context, ac *AuthContext) context.Context {
	return context.WithValue(ctx, ContextUserKey, ac)
}
