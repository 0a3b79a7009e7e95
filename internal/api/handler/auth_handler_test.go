package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/taskdeck/todo-system/internal/api/middleware"
	"github.com/taskdeck/todo-system/internal/core/domain"
)

type stubAuthService struct {
	registerFn func(ctx context.Context, email, password string) (*domain.User, string, error)
	loginFn    func(ctx context.Context, email, password string) (*domain.User, string, error)
}

func (s *stubAuthService) Register(ctx context.Context, email, password string) (*domain.User, string, error) {
	return s.registerFn(ctx, email, password)
}

func (s *stubAuthService) Login(ctx context.Context, email, password string) (*domain.User, string, error) {
	return s.loginFn(ctx, email, password)
}

func newAuthContext(t *testing.T, method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestAuthHandler_Register_Success(t *testing.T) {
	userID := uuid.New()
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password string) (*domain.User, string, error) {
			if email != "alice@example.com" || password != "password1" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &domain.User{ID: userID, Email: email, CreatedAt: time.Now().UTC()}, "token123", nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/register",
		`{"email":"alice@example.com","password":"password1"}`)

	if err := h.Register(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["token"] != "token123" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
	user, ok := resp["user"].(map[string]any)
	if !ok {
		t.Fatalf("expected user in response")
	}
	if user["email"] != "alice@example.com" || user["id"] != userID.String() {
		t.Fatalf("unexpected user payload: %+v", user)
	}
	if _, leaked := user["password_hash"]; leaked {
		t.Fatalf("password hash must never be serialized")
	}
}

func TestAuthHandler_Register_ShortPassword(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password string) (*domain.User, string, error) {
			t.Fatalf("should not be called")
			return nil, "", nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newAuthContext(t, http.MethodPost, "/auth/register",
		`{"email":"alice@example.com","password":"short"}`)

	err := h.Register(c)
	var he *echo.HTTPError
	if !asHTTPError(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %v", err)
	}
}

func TestAuthHandler_Register_EmailTaken(t *testing.T) {
	stub := &stubAuthService{
		registerFn: func(ctx context.Context, email, password string) (*domain.User, string, error) {
			return nil, "", domain.ErrEmailTaken
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newAuthContext(t, http.MethodPost, "/auth/register",
		`{"email":"bob@example.com","password":"password1"}`)

	if err := h.Register(c); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_Success(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, string, error) {
			return &domain.User{ID: uuid.New(), Email: email}, "token456", nil
		},
	}
	h := NewAuthHandler(stub)

	c, rec := newAuthContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"password1"}`)

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
	if resp["token"] != "token456" {
		t.Fatalf("expected token, got %v", resp["token"])
	}
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, string, error) {
			return nil, "", domain.ErrInvalidCredentials
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newAuthContext(t, http.MethodPost, "/auth/login",
		`{"email":"alice@example.com","password":"wrongpass"}`)

	if err := h.Login(c); err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials to propagate, got %v", err)
	}
}

func TestAuthHandler_Login_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		loginFn: func(ctx context.Context, email, password string) (*domain.User, string, error) {
			t.Fatalf("should not be called")
			return nil, "", nil
		},
	}
	h := NewAuthHandler(stub)

	c, _ := newAuthContext(t, http.MethodPost, "/auth/login", "{")

	err := h.Login(c)
	var he *echo.HTTPError
	if !asHTTPError(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %v", err)
	}
}

func TestAuthHandler_Me(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	user := &domain.User{ID: uuid.New(), Email: "alice@example.com", CreatedAt: time.Now().UTC()}

	c, rec := newAuthContext(t, http.MethodGet, "/auth/me", "")
	c.Set(middleware.UserContextKey, user)

	if err := h.Me(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["email"] != "alice@example.com" || resp["id"] != user.ID.String() {
		t.Fatalf("unexpected payload: %+v", resp)
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{})
	user := &domain.User{ID: uuid.New(), Email: "alice@example.com"}

	c, rec := newAuthContext(t, http.MethodPost, "/auth/logout", "")
	c.Set(middleware.UserContextKey, user)

	if err := h.Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "Successfully logged out") {
		t.Fatalf("unexpected body: %s", rec.Body.String())
	}
}
