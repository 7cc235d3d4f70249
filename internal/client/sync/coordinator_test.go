package sync

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rs/zerolog"

	"github.com/hms/hms/internal/client/gateway"
	"github.com/hms/hms/internal/client/record"
	"github.com/hms/hms/internal/client/store"
)

func newOffline(t *testing.T) (*Coordinator, *int32) {
	t.Helper()
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	t.Cleanup(srv.Close)

	gw := gateway.New(srv.URL, zerolog.Nop())
	c := New(store.New(), gw, zerolog.Nop())
	report := c.Connect(context.Background())
	if report.Connected {
		t.Fatal("expected offline session")
	}
	atomic.StoreInt32(&calls, 0)
	return c, &calls
}

func TestOfflineCreate_AssignsLocalID(t *testing.T) {
	c, calls := newOffline(t)
	c.Store().Patients.Replace([]record.Patient{{PatientID: 5}})

	res := c.SavePatient(context.Background(), record.Patient{FirstName: "New", LastName: "Patient"}, false)

	if res.Outcome != LocalOnly {
		t.Errorf("expected LocalOnly, got %v", res.Outcome)
	}
	if res.ID != 6 {
		t.Errorf("expected local id 6, got %d", res.ID)
	}
	if res.Reason != "server not connected" {
		t.Errorf("unexpected reason %q", res.Reason)
	}
	if got := atomic.LoadInt32(calls); got != 0 {
		t.Errorf("offline mutation made %d network calls", got)
	}
	if _, ok := c.Store().Patients.Get(6); !ok {
		t.Error("record not in local store")
	}
}

func TestOfflineDelete_RemovesLocally(t *testing.T) {
	c, calls := newOffline(t)
	c.Store().Patients.Replace([]record.Patient{{PatientID: 1}})

	res := c.DeletePatient(context.Background(), 1)

	if res.Outcome != LocalOnly {
		t.Errorf("expected LocalOnly, got %v", res.Outcome)
	}
	if _, ok := c.Store().Patients.Get(1); ok {
		t.Error("record still in local store")
	}
	if got := atomic.LoadInt32(calls); got != 0 {
		t.Errorf("offline delete made %d network calls", got)
	}
}

func TestConnect_PartialBulkLoad(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodHead && r.URL.Path == "/api/patients":
			w.WriteHeader(http.StatusOK)
		case r.URL.Path == "/api/patients":
			w.Write([]byte(`[{"PatientID":1,"FirstName":"John","DOB":"1980-05-15T00:00:00.000Z"}]`))
		case r.URL.Path == "/api/rooms":
			w.WriteHeader(http.StatusInternalServerError)
		default:
			w.Write([]byte(`[]`))
		}
	}))
	defer srv.Close()

	st := store.New()
	st.Rooms.Replace([]record.Room{{RoomID: 1, RoomType: "Fallback Ward"}})

	c := New(st, gateway.New(srv.URL, zerolog.Nop()), zerolog.Nop())
	report := c.Connect(context.Background())

	if !report.Connected {
		t.Fatal("expected connected session")
	}
	if len(report.Failed) != 1 || report.Failed[0] != record.EntityRooms {
		t.Errorf("expected rooms to be the only failed load, got %v", report.Failed)
	}

	// Failed collection keeps its prior contents.
	if room, ok := st.Rooms.Get(1); !ok || room.RoomType != "Fallback Ward" {
		t.Errorf("rooms fallback lost: %+v", room)
	}

	// Timestamped dates are normalized on the way in.
	p, ok := st.Patients.Get(1)
	if !ok {
		t.Fatal("patient not loaded")
	}
	if p.DOB != "1980-05-15" {
		t.Errorf("expected normalized date, got %q", p.DOB)
	}
}

func TestOnlineCreate_AdoptsServerID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodHead:
			w.WriteHeader(http.StatusOK)
		case r.Method == http.MethodPost && r.URL.Path == "/api/patients":
			w.WriteHeader(http.StatusCreated)
			w.Write([]byte(`{"success":true,"PatientID":42,"message":"Patient added successfully"}`))
		default:
			w.Write([]byte(`[]`))
		}
	}))
	defer srv.Close()

	c := New(store.New(), gateway.New(srv.URL, zerolog.Nop()), zerolog.Nop())
	c.Connect(context.Background())

	res := c.SavePatient(context.Background(), record.Patient{FirstName: "New"}, false)

	if res.Outcome != Persisted {
		t.Fatalf("expected Persisted, got %v (%s)", res.Outcome, res.Reason)
	}
	if res.ID != 42 {
		t.Errorf("expected server-assigned id 42, got %d", res.ID)
	}
	if _, ok := c.Store().Patients.Get(42); !ok {
		t.Error("record not stored under server id")
	}
}

func TestOnlineUpdate_RejectedFallsBackToLocal(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodHead:
			w.WriteHeader(http.StatusOK)
		case r.Method == http.MethodPut:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"not found"}`))
		default:
			w.Write([]byte(`[]`))
		}
	}))
	defer srv.Close()

	c := New(store.New(), gateway.New(srv.URL, zerolog.Nop()), zerolog.Nop())
	c.Connect(context.Background())

	res := c.SavePatient(context.Background(), record.Patient{PatientID: 7, FirstName: "Edited"}, true)

	if res.Outcome != LocalOnly {
		t.Errorf("expected LocalOnly after rejection, got %v", res.Outcome)
	}
	if res.Reason != "not found" {
		t.Errorf("expected server reason, got %q", res.Reason)
	}
	// User intent is kept locally despite the rejection.
	if p, ok := c.Store().Patients.Get(7); !ok || p.FirstName != "Edited" {
		t.Errorf("local store does not reflect the edit: %+v", p)
	}
}

func TestOnlineDelete_LocalFirst(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch {
		case r.Method == http.MethodHead:
			w.WriteHeader(http.StatusOK)
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"not found"}`))
		default:
			w.Write([]byte(`[]`))
		}
	}))
	defer srv.Close()

	c := New(store.New(), gateway.New(srv.URL, zerolog.Nop()), zerolog.Nop())
	c.Connect(context.Background())
	c.Store().Appointments.Upsert(record.Appointment{AppointmentID: 3})

	res := c.DeleteAppointment(context.Background(), 3)

	if res.Outcome != LocalOnly {
		t.Errorf("expected LocalOnly after remote rejection, got %v", res.Outcome)
	}
	// The record stays deleted locally regardless of the remote outcome.
	if _, ok := c.Store().Appointments.Get(3); ok {
		t.Error("record re-appeared after failed remote delete")
	}
}
