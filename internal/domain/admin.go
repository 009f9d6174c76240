package domain

import (
	"context"
	"time"
)

// Admin represents a moderator credential. PasswordHash is never serialized.
// swagger:model Admin
type Admin struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
}

// NewAdmin returns a new Admin with the given fields. ID is set by the
// repository on create.
func NewAdmin(name, email, passwordHash string) *Admin {
	return &Admin{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
	}
}

// LoginResult is the outcome of a login attempt. A failed login is a normal
// result with a nil ID and Message "Invalid credentials", not an error; the
// boundary maps a nil ID to an unauthorized response.
// swagger:model LoginResult
type LoginResult struct {
	ID      *int64 `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Token   string `json:"token,omitempty"`
	Message string `json:"message"`
}

// PasswordHasher hashes and verifies credentials. Implementations may use
// bcrypt, argon2, etc.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer issues tokens (e.g. JWT) for an authenticated admin.
type TokenIssuer interface {
	Issue(adminID int64, email string, expiry time.Duration) (string, error)
}

// TokenVerifier verifies a token and returns the authenticated admin ID.
type TokenVerifier interface {
	Verify(token string) (adminID int64, err error)
}

// AdminRepository defines the interface for admin storage.
type AdminRepository interface {
	Create(ctx context.Context, admin *Admin) error
	GetByID(ctx context.Context, id int64) (*Admin, error)
	GetByEmail(ctx context.Context, email string) (*Admin, error)
}

// AdminService defines moderator registration and authentication.
type AdminService interface {
	Register(ctx context.Context, name, email, password string) (*Admin, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	GetByID(ctx context.Context, id int64) (*Admin, error)
}
