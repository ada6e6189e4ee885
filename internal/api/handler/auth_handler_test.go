package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/saasdash/dashboard-api/internal/core/domain"
	"github.com/saasdash/dashboard-api/internal/core/ports"
)

type stubAuthService struct {
	signupFn  func(ctx context.Context, email, password, role string) (*domain.PublicUser, error)
	loginFn   func(ctx context.Context, email, password string) (*ports.LoginResult, error)
	refreshFn func(ctx context.Context, refreshToken string) (string, error)
}

func (s *stubAuthService) Signup(ctx context.Context, email, password, role string) (*domain.PublicUser, error) {
	return s.signupFn(ctx, email, password, role)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*ports.LoginResult, error) {
	return s.loginFn(ctx, email, password)
}

func (s *stubAuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	return s.refreshFn(ctx, refreshToken)
}

func newEcho() *echo.Echo {
	e := echo.New()
	e.Validator = NewValidator()
	return e
}

func TestAuthHandler_Signup_Success(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		signupFn: func(ctx context.Context, email, password, role string) (*domain.PublicUser, error) {
			if email != "a@x.com" || password != "pw" || role != "USER" {
				t.Fatalf("unexpected args: %s %s %s", email, password, role)
			}
			return &domain.PublicUser{ID: "u1", Email: email, Role: role}, nil
		},
	}
	h := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"a@x.com","password":"pw","role":"USER"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/signup", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["email"] != "a@x.com" || resp["role"] != "USER" {
		t.Fatalf("unexpected body: %+v", resp)
	}
	if _, leaked := resp["password"]; leaked {
		t.Fatalf("password leaked in response")
	}
}

func TestAuthHandler_Signup_MissingFields(t *testing.T) {
	e := newEcho()
	h := NewAuthHandler(&stubAuthService{
		signupFn: func(ctx context.Context, email, password, role string) (*domain.PublicUser, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	})

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(`{"email":"a@x.com"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Signup(c)
	if err == nil {
		t.Fatalf("expected validation error")
	}
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Login_SetsRefreshCookie(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*ports.LoginResult, error) {
			return &ports.LoginResult{
				AccessToken:  "access-xyz",
				RefreshToken: "refresh-xyz",
				User:         &domain.PublicUser{ID: "u1", Email: email, Role: domain.RoleUser},
			}, nil
		},
	}
	h := NewAuthHandler(stub)

	body := strings.NewReader(`{"email":"a@x.com","password":"pw"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/login", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Login(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["accessToken"] != "access-xyz" {
		t.Fatalf("access token missing from body: %+v", resp)
	}
	if _, inBody := resp["refreshToken"]; inBody {
		t.Fatalf("refresh token must not appear in the body")
	}

	found := false
	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == refreshCookieName {
			found = true
			if cookie.Value != "refresh-xyz" {
				t.Fatalf("unexpected cookie value: %q", cookie.Value)
			}
			if !cookie.HttpOnly {
				t.Fatalf("refresh cookie must be http-only")
			}
		}
	}
	if !found {
		t.Fatalf("refresh cookie not set")
	}
}

func TestAuthHandler_Refresh_FromCookie(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		refreshFn: func(ctx context.Context, refreshToken string) (string, error) {
			if refreshToken != "refresh-xyz" {
				t.Fatalf("unexpected token: %q", refreshToken)
			}
			return "new-access", nil
		},
	}
	h := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	req.AddCookie(&http.Cookie{Name: refreshCookieName, Value: "refresh-xyz"})
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Refresh(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["accessToken"] != "new-access" {
		t.Fatalf("unexpected body: %+v", resp)
	}
}

func TestAuthHandler_Refresh_FromBody(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		refreshFn: func(ctx context.Context, refreshToken string) (string, error) {
			if refreshToken != "refresh-body" {
				t.Fatalf("unexpected token: %q", refreshToken)
			}
			return "new-access", nil
		},
	}
	h := NewAuthHandler(stub)

	body := strings.NewReader(`{"refreshToken":"refresh-body"}`)
	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	if err := h.Refresh(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthHandler_Refresh_Invalid(t *testing.T) {
	e := newEcho()
	stub := &stubAuthService{
		refreshFn: func(ctx context.Context, refreshToken string) (string, error) {
			return "", domain.ErrInvalidToken
		},
	}
	h := NewAuthHandler(stub)

	req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.Refresh(c)
	if err != domain.ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken to propagate, got %v", err)
	}
}
