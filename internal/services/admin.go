package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"studentevents/internal/domain"
)

const minPasswordLen = 8

var emailRegexp = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

type adminService struct {
	adminRepo      domain.AdminRepository
	hasher         domain.PasswordHasher
	tokens         domain.TokenIssuer
	tokenExpiry    time.Duration
	contextTimeout time.Duration
}

// NewAdminService creates the moderator registration/authentication service.
func NewAdminService(adminRepo domain.AdminRepository,
	hasher domain.PasswordHasher,
	tokens domain.TokenIssuer,
	tokenExpiry time.Duration,
	timeout time.Duration,
) domain.AdminService {
	return &adminService{
		adminRepo:      adminRepo,
		hasher:         hasher,
		tokens:         tokens,
		tokenExpiry:    tokenExpiry,
		contextTimeout: timeout,
	}
}

// Register stores a new moderator credential. The password is hashed before it
// reaches the store; the plain text is never persisted.
func (s *adminService) Register(ctx context.Context, name, email, password string) (*domain.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	email = strings.TrimSpace(strings.ToLower(email))
	if !emailRegexp.MatchString(email) {
		return nil, fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput)
	}
	if len(password) < minPasswordLen {
		return nil, fmt.Errorf("%w: password must be at least %d characters", domain.ErrInvalidInput, minPasswordLen)
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	admin := domain.NewAdmin(strings.TrimSpace(name), email, hash)
	if err := s.adminRepo.Create(ctx, admin); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return admin, nil
}

// Login checks the credential pair. A failed login is a normal result with a
// nil ID and the "Invalid credentials" sentinel, never an error; the boundary
// maps it to an unauthorized status. On success a session token is issued.
func (s *adminService) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	invalid := &domain.LoginResult{Message: "Invalid credentials"}

	admin, err := s.adminRepo.GetByEmail(ctx, strings.TrimSpace(strings.ToLower(email)))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return invalid, nil
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	if err := s.hasher.Compare(admin.PasswordHash, password); err != nil {
		return invalid, nil
	}

	token, err := s.tokens.Issue(admin.ID, admin.Email, s.tokenExpiry)
	if err != nil {
		return nil, fmt.Errorf("issue token: %w", err)
	}

	id := admin.ID
	return &domain.LoginResult{
		ID:      &id,
		Name:    admin.Name,
		Email:   admin.Email,
		Token:   token,
		Message: "Login successful",
	}, nil
}

func (s *adminService) GetByID(ctx context.Context, id int64) (*domain.Admin, error) {
	ctx, cancel := context.WithTimeout(ctx, s.contextTimeout)
	defer cancel()

	admin, err := s.adminRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get admin: %w", err)
	}
	return admin, nil
}
