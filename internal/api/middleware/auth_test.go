package middleware

import (
	"net/http"
	"net/http/httptest"
	"reflect"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/platformkit/auth-service/internal/core/domain"
	"github.com/platformkit/auth-service/internal/core/service"
)

func issueToken(t *testing.T, issuer *service.TokenIssuer) string {
	t.Helper()
	token, err := issuer.Issue(domain.ClaimSet{
		{Key: domain.ClaimName, Value: "alice"},
		{Key: domain.ClaimNameIdentifier, Value: "user-1"},
		{Key: domain.ClaimTokenID, Value: "jti-1"},
		{Key: domain.ClaimRole, Value: domain.RoleUser},
		{Key: domain.ClaimRole, Value: domain.RoleAdmin},
	})
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	issuer := service.NewTokenIssuer("secret", "auth-service", "clients", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, issuer))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(issuer)
	handler := mw(func(c echo.Context) error {
		called = true
		if c.Get("username") != "alice" {
			t.Fatalf("username not set")
		}
		if c.Get("user_id") != "user-1" {
			t.Fatalf("user_id not set")
		}
		roles, _ := c.Get("roles").([]string)
		if !reflect.DeepEqual(roles, []string{domain.RoleUser, domain.RoleAdmin}) {
			t.Fatalf("roles not set in order: %v", roles)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	issuer := service.NewTokenIssuer("secret", "auth-service", "clients", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(issuer)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_InvalidHeaderFormat(t *testing.T) {
	e := echo.New()
	issuer := service.NewTokenIssuer("secret", "auth-service", "clients", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(issuer)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestAuthMiddleware_ForeignToken(t *testing.T) {
	e := echo.New()
	issuer := service.NewTokenIssuer("secret", "auth-service", "clients", time.Hour)
	foreign := service.NewTokenIssuer("other-secret", "auth-service", "clients", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+issueToken(t, foreign))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(issuer)
	handler := mw(func(c echo.Context) error {
		t.Fatalf("should not reach next")
		return nil
	})

	if err := handler(c); err != nil {
		e.HTTPErrorHandler(err, c)
	}

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
