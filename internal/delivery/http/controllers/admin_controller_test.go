package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"studentevents/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAdminService struct {
	registered  *domain.Admin
	registerErr error
	loginResult *domain.LoginResult
	loginErr    error
	admin       *domain.Admin
	getErr      error
}

func (f *fakeAdminService) Register(ctx context.Context, name, email, password string) (*domain.Admin, error) {
	return f.registered, f.registerErr
}

func (f *fakeAdminService) Login(ctx context.Context, email, password string) (*domain.LoginResult, error) {
	return f.loginResult, f.loginErr
}

func (f *fakeAdminService) GetByID(ctx context.Context, id int64) (*domain.Admin, error) {
	return f.admin, f.getErr
}

func TestAdminController_Login(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		id := int64(1)
		ctrl := NewAdminController(testLogger, &fakeAdminService{
			loginResult: &domain.LoginResult{
				ID:      &id,
				Name:    "Sam",
				Email:   "sam@campus.edu",
				Token:   "jwt-token",
				Message: "Login successful",
			},
		})

		body := `{"email":"sam@campus.edu","password":"correct horse"}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		ctrl.Login(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		env := decodeEnvelope(t, rec)
		require.Nil(t, env.Error)

		var result domain.LoginResult
		require.NoError(t, json.Unmarshal(env.Data, &result))
		require.NotNil(t, result.ID)
		assert.Equal(t, "jwt-token", result.Token)
		assert.Equal(t, "Login successful", result.Message)
	})

	t.Run("invalid credentials", func(t *testing.T) {
		ctrl := NewAdminController(testLogger, &fakeAdminService{
			loginResult: &domain.LoginResult{Message: "Invalid credentials"},
		})

		body := `{"email":"sam@campus.edu","password":"wrong"}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		ctrl.Login(rec, req)

		// The sentinel result rides in data, not in error.
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		env := decodeEnvelope(t, rec)
		require.Nil(t, env.Error)

		var result domain.LoginResult
		require.NoError(t, json.Unmarshal(env.Data, &result))
		assert.Nil(t, result.ID)
		assert.Equal(t, "Invalid credentials", result.Message)
	})

	t.Run("missing fields", func(t *testing.T) {
		ctrl := NewAdminController(testLogger, &fakeAdminService{})

		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(`{"email":"sam@campus.edu"}`))
		rec := httptest.NewRecorder()
		ctrl.Login(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("service error", func(t *testing.T) {
		ctrl := NewAdminController(testLogger, &fakeAdminService{loginErr: errors.New("db down")})

		body := `{"email":"sam@campus.edu","password":"correct horse"}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		ctrl.Login(rec, req)

		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestAdminController_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := NewAdminController(testLogger, &fakeAdminService{
			registered: &domain.Admin{ID: 1, Name: "Sam", Email: "sam@campus.edu", PasswordHash: "$2a$10$secret"},
		})

		body := `{"name":"Sam","email":"sam@campus.edu","password":"correct horse"}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/register", strings.NewReader(body))
		rec := httptest.NewRecorder()
		ctrl.Register(rec, req)

		require.Equal(t, http.StatusCreated, rec.Code)
		// The hash must never leak into the response body.
		assert.NotContains(t, rec.Body.String(), "secret")
	})

	t.Run("invalid input from service", func(t *testing.T) {
		ctrl := NewAdminController(testLogger, &fakeAdminService{
			registerErr: fmt.Errorf("%w: invalid email format", domain.ErrInvalidInput),
		})

		body := `{"name":"Sam","email":"nope","password":"correct horse"}`
		req := httptest.NewRequest(http.MethodPost, "/api/admin/register", strings.NewReader(body))
		rec := httptest.NewRecorder()
		ctrl.Register(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
		env := decodeEnvelope(t, rec)
		require.NotNil(t, env.Error)
		assert.Equal(t, "bad_request", env.Error.Code)
	})

	t.Run("missing password", func(t *testing.T) {
		ctrl := NewAdminController(testLogger, &fakeAdminService{})

		req := httptest.NewRequest(http.MethodPost, "/api/admin/register", strings.NewReader(`{"email":"sam@campus.edu"}`))
		rec := httptest.NewRecorder()
		ctrl.Register(rec, req)

		require.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestAdminController_GetAdmin(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctrl := NewAdminController(testLogger, &fakeAdminService{
			admin: &domain.Admin{ID: 1, Name: "Sam", Email: "sam@campus.edu"},
		})

		req := httptest.NewRequest(http.MethodGet, "/api/admin/1", nil)
		req.SetPathValue("id", "1")
		rec := httptest.NewRecorder()
		ctrl.GetAdmin(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := NewAdminController(testLogger, &fakeAdminService{getErr: domain.ErrNotFound})

		req := httptest.NewRequest(http.MethodGet, "/api/admin/99", nil)
		req.SetPathValue("id", "99")
		rec := httptest.NewRecorder()
		ctrl.GetAdmin(rec, req)

		require.Equal(t, http.StatusNotFound, rec.Code)
	})
}
