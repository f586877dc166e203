package handler

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/99minutos/diary/internal/api/middleware"
	"github.com/99minutos/diary/internal/core/domain"
	"github.com/99minutos/diary/internal/core/ports"
)

func TestAuthHandler_Signup_Success(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(_ context.Context, email, password string) (*domain.User, string, error) {
			if email != "alice@example.com" || password != "secret1" {
				t.Fatalf("unexpected args: %s %s", email, password)
			}
			return &domain.User{ID: "u1", Email: email}, "code-1", nil
		},
	}
	c, rec := newJSONContext(http.MethodPost, "/auth/signup", `{"email":"alice@example.com","password":"secret1"}`)

	if err := NewAuthHandler(stub, false).Signup(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	resp := decode(t, rec)
	if resp["confirmation"] != "/auth/callback?code=code-1" {
		t.Fatalf("unexpected confirmation link: %v", resp["confirmation"])
	}
	user := resp["user"].(map[string]any)
	if _, leaked := user["password_hash"]; leaked {
		t.Fatal("password hash must not be serialised")
	}
}

func TestAuthHandler_Signup_InvalidPayload(t *testing.T) {
	stub := &stubAuthService{
		signupFn: func(context.Context, string, string) (*domain.User, string, error) {
			t.Fatal("service must not be called")
			return nil, "", nil
		},
	}
	c, _ := newJSONContext(http.MethodPost, "/auth/signup", `{"email":"not-an-email","password":"123"}`)

	err := NewAuthHandler(stub, false).Signup(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 HTTPError, got %v", err)
	}
}

func TestAuthHandler_Login(t *testing.T) {
	t.Run("success goes through the callback", func(t *testing.T) {
		stub := &stubAuthService{
			loginFn: func(context.Context, string, string) (string, error) { return "abc", nil },
		}
		c, rec := newJSONContext(http.MethodPost, "/auth/login", `{"email":"alice@example.com","password":"secret1"}`)

		if err := NewAuthHandler(stub, false).Login(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		assertRedirect(t, rec, "/auth/callback?code=abc")
	})

	t.Run("bad credentials propagate", func(t *testing.T) {
		stub := &stubAuthService{
			loginFn: func(context.Context, string, string) (string, error) { return "", domain.ErrInvalidCredentials },
		}
		c, _ := newJSONContext(http.MethodPost, "/auth/login", `{"email":"alice@example.com","password":"wrong12"}`)

		if err := NewAuthHandler(stub, false).Login(c); !errors.Is(err, domain.ErrInvalidCredentials) {
			t.Fatalf("expected ErrInvalidCredentials, got %v", err)
		}
	})
}

func TestAuthHandler_Callback(t *testing.T) {
	expires := time.Now().Add(time.Hour)
	stub := &stubAuthService{
		exchangeFn: func(_ context.Context, code string) (*domain.Session, error) {
			if code != "good" {
				return nil, domain.ErrInvalidAuthCode
			}
			return &domain.Session{Token: "tok", TokenID: "jti", Principal: alice, ExpiresAt: expires}, nil
		},
	}

	t.Run("missing code", func(t *testing.T) {
		c, rec := newJSONContext(http.MethodGet, "/auth/callback", "")
		if err := NewAuthHandler(stub, false).Callback(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		assertRedirect(t, rec, PathLogin)
	})

	t.Run("failed exchange", func(t *testing.T) {
		c, rec := newJSONContext(http.MethodGet, "/auth/callback?code=bad", "")
		if err := NewAuthHandler(stub, false).Callback(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		assertRedirect(t, rec, "/login?error=authentication+failed")
	})

	t.Run("success sets the session cookie", func(t *testing.T) {
		c, rec := newJSONContext(http.MethodGet, "/auth/callback?code=good", "")
		if err := NewAuthHandler(stub, true).Callback(c); err != nil {
			t.Fatalf("handler error: %v", err)
		}
		assertRedirect(t, rec, PathDashboard)

		cookies := rec.Result().Cookies()
		if len(cookies) != 1 {
			t.Fatalf("expected one cookie, got %d", len(cookies))
		}
		ck := cookies[0]
		if ck.Name != middleware.SessionCookieName || ck.Value != "tok" || !ck.HttpOnly || !ck.Secure {
			t.Fatalf("unexpected cookie: %+v", ck)
		}
	})
}

func TestAuthHandler_Logout(t *testing.T) {
	var revoked string
	stub := &stubAuthService{
		signOutFn: func(_ context.Context, token string) error {
			revoked = token
			return nil
		},
	}

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	req = req.WithContext(ports.WithSessionToken(req.Context(), "tok"))
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(req, rec)

	if err := NewAuthHandler(stub, false).Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertRedirect(t, rec, PathHome)
	if revoked != "tok" {
		t.Fatalf("expected token to be revoked, got %q", revoked)
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].MaxAge >= 0 {
		t.Fatalf("expected the session cookie to be cleared, got %+v", cookies)
	}
}

func TestAuthHandler_Logout_WithoutSession(t *testing.T) {
	stub := &stubAuthService{
		signOutFn: func(context.Context, string) error {
			t.Fatal("nothing to revoke")
			return nil
		},
	}
	c, rec := newJSONContext(http.MethodPost, "/auth/logout", "")

	if err := NewAuthHandler(stub, false).Logout(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	assertRedirect(t, rec, PathHome)
}
