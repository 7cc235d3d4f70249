package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/hms/hms/internal/access"
)

var testKey = []byte("test-signing-key")

func issueTestToken(t *testing.T, role string) string {
	t.Helper()
	token, err := IssueToken(testKey, "USR001", role, "Test User", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken() error: %v", err)
	}
	return token
}

func TestJWTMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	req.Header.Set("Authorization", "Bearer "+issueTestToken(t, "physician"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		ctx := c.Request().Context()
		if got := UserIDFromContext(ctx); got != "USR001" {
			t.Errorf("expected user id USR001, got %s", got)
		}
		if got := RoleFromContext(ctx); got != "physician" {
			t.Errorf("expected role physician, got %s", got)
		}
		return c.String(http.StatusOK, "ok")
	}

	mw := JWTMiddleware(JWTConfig{SigningKey: testKey})
	if err := mw(handler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestJWTMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}

	mw := JWTMiddleware(JWTConfig{SigningKey: testKey})
	if err := mw(handler)(c); err != nil {
		t.Fatalf("rejection must be written as a response, got error %v", err)
	}
	assertErrorEnvelope(t, rec, http.StatusUnauthorized)
}

func TestJWTMiddleware_BadToken(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}

	mw := JWTMiddleware(JWTConfig{SigningKey: testKey})
	if err := mw(handler)(c); err != nil {
		t.Fatalf("rejection must be written as a response, got error %v", err)
	}
	assertErrorEnvelope(t, rec, http.StatusUnauthorized)
}

func TestJWTMiddleware_WrongKey(t *testing.T) {
	e := echo.New()
	token, err := IssueToken([]byte("other-key"), "USR001", "physician", "Test", time.Hour)
	if err != nil {
		t.Fatalf("IssueToken() error: %v", err)
	}
	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}

	mw := JWTMiddleware(JWTConfig{SigningKey: testKey})
	if err := mw(handler)(c); err != nil {
		t.Fatalf("rejection must be written as a response, got error %v", err)
	}
	assertErrorEnvelope(t, rec, http.StatusUnauthorized)
}

func TestJWTMiddleware_UnknownRole(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	req.Header.Set("Authorization", "Bearer "+issueTestToken(t, "superuser"))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	}

	mw := JWTMiddleware(JWTConfig{SigningKey: testKey})
	if err := mw(handler)(c); err != nil {
		t.Fatalf("rejection must be written as a response, got error %v", err)
	}
	assertErrorEnvelope(t, rec, http.StatusUnauthorized)
}

func TestDevAuthMiddleware_DefaultsToAdministrator(t *testing.T) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := func(c echo.Context) error {
		ctx := c.Request().Context()
		if got := RoleFromContext(ctx); got != string(access.RoleAdministrator) {
			t.Errorf("expected administrator, got %s", got)
		}
		return c.String(http.StatusOK, "ok")
	}

	mw := DevAuthMiddleware()
	if err := mw(handler)(c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
