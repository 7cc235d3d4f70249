package gateway

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/client/record"
)

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func TestProbe(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodHead || r.URL.Path != "/api/patients" {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := New(srv.URL, testLogger())
	if !c.Probe(context.Background()) {
		t.Error("expected probe to succeed")
	}

	c2 := New("http://127.0.0.1:1", testLogger())
	if c2.Probe(context.Background()) {
		t.Error("expected probe against unreachable host to fail")
	}
}

func TestList(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/patients":
			w.Write([]byte(`[{"PatientID":1,"FirstName":"John","LastName":"Smith","DOB":"1980-05-15"}]`))
		case "/api/rooms":
			w.WriteHeader(http.StatusInternalServerError)
		case "/api/beds":
			w.Write([]byte(`not json`))
		}
	}))
	defer srv.Close()

	c := New(srv.URL, testLogger())

	patients := List[record.Patient](context.Background(), c, "patients")
	if len(patients) != 1 || patients[0].FirstName != "John" {
		t.Errorf("unexpected patients: %+v", patients)
	}

	if rooms := List[record.Room](context.Background(), c, "rooms"); rooms != nil {
		t.Errorf("expected nil on server error, got %+v", rooms)
	}
	if beds := List[record.Bed](context.Background(), c, "beds"); beds != nil {
		t.Errorf("expected nil on malformed body, got %+v", beds)
	}
}

func TestCreate_ReturnsAssignedID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/patients" {
			t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"success":true,"PatientID":6,"message":"Patient added successfully"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, testLogger())
	res := c.Create(context.Background(), "patients", map[string]any{"FirstName": "New"})

	if !res.OK() {
		t.Fatalf("expected success, got error %q", res.Err)
	}
	id, ok := res.IntField("PatientID")
	if !ok || id != 6 {
		t.Errorf("expected PatientID 6, got %d (ok=%t)", id, ok)
	}
	if res.Message() != "Patient added successfully" {
		t.Errorf("unexpected message %q", res.Message())
	}
}

func TestUpdate_ErrorEnvelope(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"error":"not found"}`))
	}))
	defer srv.Close()

	c := New(srv.URL, testLogger())
	res := c.Update(context.Background(), "patients", 99, map[string]any{})

	if res.OK() {
		t.Fatal("expected failure")
	}
	if res.Err != "not found" {
		t.Errorf("expected server error message, got %q", res.Err)
	}
}

func TestDelete_TransportFailure(t *testing.T) {
	c := New("http://127.0.0.1:1", testLogger())
	res := c.Delete(context.Background(), "patients", 1)
	if res.OK() {
		t.Fatal("expected failure against unreachable host")
	}
}

func TestLogin_AttachesToken(t *testing.T) {
	var sawAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/api/login":
			w.Write([]byte(`{"success":true,"token":"abc123","user":{"Username":"admin"}}`))
		case "/api/patients":
			sawAuth = r.Header.Get("Authorization")
			w.Write([]byte(`[]`))
		}
	}))
	defer srv.Close()

	c := New(srv.URL, testLogger())
	res := c.Login(context.Background(), "admin", "Admin@2024")
	if !res.OK() {
		t.Fatalf("expected login success, got %q", res.Err)
	}

	List[record.Patient](context.Background(), c, "patients")
	if sawAuth != "Bearer abc123" {
		t.Errorf("expected bearer token on subsequent request, got %q", sawAuth)
	}
}
