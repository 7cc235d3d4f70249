package auth

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
)

func postLogin(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	e.POST("/api/login", LoginHandler(testKey, DefaultUsers()))
	req := httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestLoginHandler_Success(t *testing.T) {
	rec := postLogin(t, `{"username":"admin","password":"Admin@2024"}`)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body["success"] != true {
		t.Error("expected success true")
	}
	token, _ := body["token"].(string)
	if token == "" {
		t.Fatal("expected a token")
	}

	user, _ := body["user"].(map[string]interface{})
	if user["Role"] != "administrator" {
		t.Errorf("expected administrator role, got %v", user["Role"])
	}
	if _, ok := user["Password"]; ok {
		t.Error("password must not appear in the login response")
	}
}

func TestLoginHandler_WrongPassword(t *testing.T) {
	rec := postLogin(t, `{"username":"admin","password":"wrong"}`)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if body["error"] == nil {
		t.Error("expected error field")
	}
}

func TestLoginHandler_UnknownUser(t *testing.T) {
	rec := postLogin(t, `{"username":"nobody","password":"x"}`)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}

func TestLoginHandler_TokenIsVerifiable(t *testing.T) {
	rec := postLogin(t, `{"username":"dwilson","password":"Cardio#1234"}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	token, _ := body["token"].(string)

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/patients", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	c := e.NewContext(req, httptest.NewRecorder())

	handler := func(c echo.Context) error {
		if got := RoleFromContext(c.Request().Context()); got != "physician" {
			t.Errorf("expected physician role from token, got %s", got)
		}
		return c.String(http.StatusOK, "ok")
	}

	mw := JWTMiddleware(JWTConfig{SigningKey: testKey})
	if err := mw(handler)(c); err != nil {
		t.Fatalf("issued token failed verification: %v", err)
	}
}
