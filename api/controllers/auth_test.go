package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	"github.com/rolodexhq/rolodex-backend/internal/auth"
	"github.com/rolodexhq/rolodex-backend/internal/users"
	pkgerrors "github.com/rolodexhq/rolodex-backend/pkg/errors"
)

type stubAuthService struct {
	resp    *auth.AuthResponse
	profile *users.UserDTO
	err     error
}

func (s stubAuthService) Register(ctx context.Context, req auth.RegisterRequest) (*auth.AuthResponse, error) {
	return s.resp, s.err
}

func (s stubAuthService) Login(ctx context.Context, req auth.LoginRequest) (*auth.AuthResponse, error) {
	return s.resp, s.err
}

func (s stubAuthService) Profile(ctx context.Context, userID uuid.UUID) (*users.UserDTO, error) {
	return s.profile, s.err
}

func (s stubAuthService) UpdateProfile(ctx context.Context, userID uuid.UUID, req auth.UpdateProfileRequest) (*users.UserDTO, error) {
	return s.profile, s.err
}

func TestAuthRegisterSuccess(t *testing.T) {
	user := &users.UserDTO{ID: uuid.New(), Username: "homer", Email: "homer@example.com"}
	handler := AuthRegister(stubAuthService{resp: &auth.AuthResponse{Token: "token", User: user}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/users/register", bytes.NewReader([]byte(`{"username":"homer","email":"homer@example.com","password":"secret1"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}

	var envelope struct {
		Data struct {
			Token string         `json:"token"`
			User  *users.UserDTO `json:"user"`
		} `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Token != "token" {
		t.Fatalf("expected token in payload got %q", envelope.Data.Token)
	}
	if envelope.Data.User == nil || envelope.Data.User.Email != user.Email {
		t.Fatalf("expected user in payload got %+v", envelope.Data.User)
	}
}

func TestAuthRegisterInvalidPayload(t *testing.T) {
	handler := AuthRegister(stubAuthService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/users/register", bytes.NewReader([]byte(`{"username":"homer"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAuthRegisterAcceptsSingleCharUsername(t *testing.T) {
	user := &users.UserDTO{ID: uuid.New(), Username: "j", Email: "j@example.com"}
	handler := AuthRegister(stubAuthService{resp: &auth.AuthResponse{Token: "token", User: user}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/users/register", bytes.NewReader([]byte(`{"username":"j","email":"j@example.com","password":"secret1"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestAuthRegisterShortPassword(t *testing.T) {
	handler := AuthRegister(stubAuthService{}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/users/register", bytes.NewReader([]byte(`{"username":"homer","email":"homer@example.com","password":"short"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAuthRegisterDuplicateEmail(t *testing.T) {
	handler := AuthRegister(stubAuthService{err: pkgerrors.New(pkgerrors.CodeConflict, "email already registered")}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/users/register", bytes.NewReader([]byte(`{"username":"homer","email":"homer@example.com","password":"secret1"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}

	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Error.Message != "email already registered" {
		t.Fatalf("unexpected message %q", envelope.Error.Message)
	}
}

func TestAuthLoginInvalidCredentialsIs400(t *testing.T) {
	handler := AuthLogin(stubAuthService{err: pkgerrors.New(pkgerrors.CodeInvalidCredentials, "invalid credentials")}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/users/login", bytes.NewReader([]byte(`{"email":"homer@example.com","password":"wrong"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestAuthLoginSuccess(t *testing.T) {
	user := &users.UserDTO{ID: uuid.New(), Username: "homer", Email: "homer@example.com"}
	handler := AuthLogin(stubAuthService{resp: &auth.AuthResponse{Token: "token", User: user}}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/users/login", bytes.NewReader([]byte(`{"email":"homer@example.com","password":"secret1"}`)))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()

	handler.ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}
