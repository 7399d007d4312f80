package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"go-healthcare-records/config"
	"go-healthcare-records/internal/delivery/dto"
	"go-healthcare-records/internal/usecase"
	"go-healthcare-records/pkg/jwt"
	"go-healthcare-records/pkg/validator"

	"github.com/google/uuid"
)

type mockAuthUsecase struct {
	registerFn func(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	loginFn    func(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error)
	logoutFn   func(ctx context.Context, accessTokenID, refreshTokenID string) error
	refreshFn  func(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error)
	currentFn  func(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error)
}

func (m *mockAuthUsecase) Register(ctx context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	return m.registerFn(ctx, req)
}

func (m *mockAuthUsecase) Login(ctx context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	return m.loginFn(ctx, req)
}

func (m *mockAuthUsecase) Logout(ctx context.Context, accessTokenID, refreshTokenID string) error {
	return m.logoutFn(ctx, accessTokenID, refreshTokenID)
}

func (m *mockAuthUsecase) RefreshToken(ctx context.Context, req *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
	return m.refreshFn(ctx, req)
}

func (m *mockAuthUsecase) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*dto.UserResponse, error) {
	return m.currentFn(ctx, userID)
}

func newTestAuthHandler(mock *mockAuthUsecase) *AuthHandler {
	jwtService := jwt.NewJWTService(config.JWTConfig{
		Secret:        "test-secret",
		AccessExpiry:  15 * time.Minute,
		RefreshExpiry: 7 * 24 * time.Hour,
	})
	return NewAuthHandler(mock, validator.NewValidator(), jwtService)
}

func validRegisterBody() string {
	return `{
		"email": "alice@x.com",
		"name": "Alice",
		"consent": true,
		"password": "secret1",
		"password_confirmation": "secret1"
	}`
}

func TestRegisterSuccess(t *testing.T) {
	h := newTestAuthHandler(&mockAuthUsecase{
		registerFn: func(_ context.Context, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
			return &dto.AuthResponse{
				User:   &dto.UserResponse{ID: uuid.New(), Email: req.Email, Name: req.Name, Consent: req.Consent},
				Tokens: &dto.TokenResponse{AccessToken: "a", RefreshToken: "r", ExpiresIn: 900},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(validRegisterBody()))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("status = %d, want 201", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if !resp.Success {
		t.Error("Success = false")
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	h := newTestAuthHandler(&mockAuthUsecase{
		registerFn: func(_ context.Context, _ *dto.RegisterRequest) (*dto.AuthResponse, error) {
			return nil, usecase.ErrEmailAlreadyExists
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(validRegisterBody()))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	if rec.Code != http.StatusConflict {
		t.Fatalf("status = %d, want 409", rec.Code)
	}
}

func TestRegisterConsentRequired(t *testing.T) {
	h := newTestAuthHandler(&mockAuthUsecase{})

	body := strings.Replace(validRegisterBody(), `"consent": true`, `"consent": false`, 1)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestRegisterPasswordMismatch(t *testing.T) {
	h := newTestAuthHandler(&mockAuthUsecase{})

	body := strings.Replace(validRegisterBody(), `"password_confirmation": "secret1"`, `"password_confirmation": "secret2"`, 1)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Register(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rec.Code)
	}
}

func TestLoginInvalidCredentials(t *testing.T) {
	h := newTestAuthHandler(&mockAuthUsecase{
		loginFn: func(_ context.Context, _ *dto.LoginRequest) (*dto.AuthResponse, error) {
			return nil, usecase.ErrInvalidCredentials
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"alice@x.com","password":"wrong"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
	resp := decodeEnvelope(t, rec)
	if resp.Success {
		t.Error("Success = true")
	}
}

func TestLoginDisabledAccount(t *testing.T) {
	h := newTestAuthHandler(&mockAuthUsecase{
		loginFn: func(_ context.Context, _ *dto.LoginRequest) (*dto.AuthResponse, error) {
			return nil, usecase.ErrAccountDisabled
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"alice@x.com","password":"secret1"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestLoginSuccess(t *testing.T) {
	h := newTestAuthHandler(&mockAuthUsecase{
		loginFn: func(_ context.Context, req *dto.LoginRequest) (*dto.AuthResponse, error) {
			return &dto.AuthResponse{
				User:   &dto.UserResponse{ID: uuid.New(), Email: req.Email},
				Tokens: &dto.TokenResponse{AccessToken: "a", RefreshToken: "r", ExpiresIn: 900},
			}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login",
		strings.NewReader(`{"email":"alice@x.com","password":"secret1"}`))
	rec := httptest.NewRecorder()
	h.Login(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestRefreshTokenRevoked(t *testing.T) {
	h := newTestAuthHandler(&mockAuthUsecase{
		refreshFn: func(_ context.Context, _ *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
			return nil, usecase.ErrTokenRevoked
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh-token",
		strings.NewReader(`{"refresh_token":"some-token"}`))
	rec := httptest.NewRecorder()
	h.RefreshToken(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}

func TestRefreshTokenSuccess(t *testing.T) {
	h := newTestAuthHandler(&mockAuthUsecase{
		refreshFn: func(_ context.Context, _ *dto.RefreshTokenRequest) (*dto.TokenResponse, error) {
			return &dto.TokenResponse{AccessToken: "new-a", RefreshToken: "new-r", ExpiresIn: 900}, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/refresh-token",
		strings.NewReader(`{"refresh_token":"some-token"}`))
	rec := httptest.NewRecorder()
	h.RefreshToken(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
}

func TestGetCurrentUserWithoutIdentity(t *testing.T) {
	h := newTestAuthHandler(&mockAuthUsecase{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil)
	rec := httptest.NewRecorder()
	h.GetCurrentUser(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
