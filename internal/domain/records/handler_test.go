package records

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/hms/hms/internal/access"
	"github.com/hms/hms/internal/platform/auth"
)

func withRole(role access.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := context.WithValue(c.Request().Context(), auth.UserRoleKey, string(role))
			c.SetRequest(c.Request().WithContext(ctx))
			return next(c)
		}
	}
}

func newTestRouter(role access.Role) (*echo.Echo, *mockRecordRepo) {
	repo := newMockRecordRepo()
	e := echo.New()
	api := e.Group("/api", withRole(role))
	NewHandler(NewService(repo)).RegisterRoutes(api)
	return e, repo
}

func doJSON(e *echo.Echo, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestCreateRecord_Envelope(t *testing.T) {
	e, _ := newTestRouter(access.RolePhysician)
	rec := doJSON(e, http.MethodPost, "/api/records",
		`{"PatientID":1,"VisitDate":"2024-11-28","Treatment":"ECG and blood panel","FollowUpDate":"2024-12-12"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	var body map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if id, _ := body["RecordID"].(float64); id != 1 {
		t.Errorf("expected RecordID 1, got %v", body["RecordID"])
	}
}

func TestCreateRecord_ViewerForbidden(t *testing.T) {
	e, _ := newTestRouter(access.RoleViewer)
	rec := doJSON(e, http.MethodPost, "/api/records",
		`{"PatientID":1,"VisitDate":"2024-11-28","Treatment":"X"}`)
	if rec.Code != http.StatusForbidden {
		t.Errorf("expected 403 for viewer, got %d", rec.Code)
	}
}

func TestListRecords_NullFollowUpSerialized(t *testing.T) {
	e, repo := newTestRouter(access.RoleViewer)
	repo.records[1] = &PatientRecord{RecordID: 1, PatientID: 1, VisitDate: "2024-11-28", Treatment: "X"}

	rec := doJSON(e, http.MethodGet, "/api/records", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), `"FollowUpDate":null`) {
		t.Errorf("expected null FollowUpDate on the wire, got %s", rec.Body.String())
	}
}
