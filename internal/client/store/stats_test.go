package store

import (
	"testing"

	"github.com/hms/hms/internal/client/record"
)

func TestDashboard(t *testing.T) {
	s := New()
	s.Patients.Replace([]record.Patient{{PatientID: 1}, {PatientID: 2}})
	s.Physicians.Replace([]record.Physician{{PhysicianID: 1}})
	s.Appointments.Replace([]record.Appointment{{AppointmentID: 1}, {AppointmentID: 2}, {AppointmentID: 3}})
	s.Rooms.Replace([]record.Room{
		{RoomID: 1, RoomType: "General Ward", Capacity: 4, Occupancy: 2, RoomsAvailable: 2},
		{RoomID: 2, RoomType: "ICU", Capacity: 2, Occupancy: 1, RoomsAvailable: 1},
	})
	s.Billing.Replace([]record.Invoice{
		{BillingID: 1, TotalAmount: 100, PaymentStatus: "Pending"},
		{BillingID: 2, TotalAmount: 250, PaymentStatus: "Paid"},
		{BillingID: 3, TotalAmount: 50, PaymentStatus: "Overdue"},
	})

	stats := s.Dashboard()

	if stats.TotalPatients != 2 || stats.TotalPhysicians != 1 || stats.TotalAppointments != 3 {
		t.Errorf("unexpected counts: %+v", stats)
	}
	if stats.AvailableRooms != 3 {
		t.Errorf("expected 3 available rooms, got %d", stats.AvailableRooms)
	}
	if stats.TotalOutstanding != 100 {
		t.Errorf("expected outstanding 100 (overdue excluded), got %.2f", stats.TotalOutstanding)
	}
	if stats.TotalPaid != 250 {
		t.Errorf("expected paid 250, got %.2f", stats.TotalPaid)
	}
	if stats.PendingInvoices != 1 {
		t.Errorf("expected 1 pending invoice, got %d", stats.PendingInvoices)
	}
	if len(stats.Rooms) != 2 {
		t.Fatalf("expected 2 room bars, got %d", len(stats.Rooms))
	}
	if stats.Rooms[0].Percent != 50 {
		t.Errorf("expected 50%% occupancy, got %.1f", stats.Rooms[0].Percent)
	}
}

func TestNameLookups(t *testing.T) {
	s := New()
	s.Patients.Upsert(record.Patient{PatientID: 1, FirstName: "John", LastName: "Smith"})
	s.Physicians.Upsert(record.Physician{PhysicianID: 2, FirstName: "Sarah", LastName: "Brown"})

	if got := s.PatientName(1); got != "John Smith" {
		t.Errorf("PatientName(1) = %q", got)
	}
	if got := s.PatientName(99); got != "" {
		t.Errorf("expected empty name for unknown patient, got %q", got)
	}
	if got := s.PhysicianName(2); got != "Sarah Brown" {
		t.Errorf("PhysicianName(2) = %q", got)
	}
}

func TestRecentAppointments(t *testing.T) {
	s := New()
	for i := 1; i <= 7; i++ {
		s.Appointments.Upsert(record.Appointment{AppointmentID: i})
	}
	recent := s.RecentAppointments(5)
	if len(recent) != 5 {
		t.Fatalf("expected 5 appointments, got %d", len(recent))
	}
	if recent[0].AppointmentID != 1 || recent[4].AppointmentID != 5 {
		t.Errorf("expected insertion order, got %v", recent)
	}
}
