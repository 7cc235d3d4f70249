package fixture

import (
	"testing"
	"time"
)

func TestUsers_CoverAllRoles(t *testing.T) {
	roles := map[string]bool{}
	seen := map[string]bool{}
	for _, u := range Users() {
		if seen[u.Username] {
			t.Errorf("duplicate username %q", u.Username)
		}
		seen[u.Username] = true
		roles[string(u.Role)] = true
	}
	for _, want := range []string{"administrator", "physician", "viewer", "patient"} {
		if !roles[want] {
			t.Errorf("no demo user with role %s", want)
		}
	}
}

func TestNewStore_ReferentialIntegrity(t *testing.T) {
	s := NewStore()

	for _, p := range s.Patients.List() {
		if p.InsuranceID == nil {
			continue
		}
		if _, ok := s.Insurance.Get(*p.InsuranceID); !ok {
			t.Errorf("patient %d references missing insurance %d", p.PatientID, *p.InsuranceID)
		}
	}
	for _, a := range s.Appointments.List() {
		if _, ok := s.Patients.Get(a.PatientID); !ok {
			t.Errorf("appointment %d references missing patient %d", a.AppointmentID, a.PatientID)
		}
		if _, ok := s.Physicians.Get(a.PhysicianID); !ok {
			t.Errorf("appointment %d references missing physician %d", a.AppointmentID, a.PhysicianID)
		}
	}
	for _, ad := range s.Admissions.List() {
		if _, ok := s.Rooms.Get(ad.RoomID); !ok {
			t.Errorf("admission %d references missing room %d", ad.AdmissionID, ad.RoomID)
		}
	}
	for _, b := range s.Beds.List() {
		if _, ok := s.Rooms.Get(b.RoomID); !ok {
			t.Errorf("bed %d references missing room %d", b.BedID, b.RoomID)
		}
		if b.PatientID != nil {
			if _, ok := s.Patients.Get(*b.PatientID); !ok {
				t.Errorf("bed %d references missing patient %d", b.BedID, *b.PatientID)
			}
		}
	}
	for _, cl := range s.Claims.List() {
		if _, ok := s.Insurance.Get(cl.InsuranceID); !ok {
			t.Errorf("claim %d references missing insurance %d", cl.InsuranceClaimID, cl.InsuranceID)
		}
	}
	for _, inv := range s.Billing.List() {
		if inv.InsuranceClaimID == nil {
			continue
		}
		if _, ok := s.Claims.Get(*inv.InsuranceClaimID); !ok {
			t.Errorf("invoice %d references missing claim %d", inv.BillingID, *inv.InsuranceClaimID)
		}
	}
}

func TestNewStore_DatesAreCalendarDates(t *testing.T) {
	s := NewStore()
	check := func(what string, id int, date string) {
		if date == "" {
			return
		}
		if _, err := time.Parse("2006-01-02", date); err != nil {
			t.Errorf("%s %d: bad date %q", what, id, date)
		}
	}
	for _, p := range s.Patients.List() {
		check("patient", p.PatientID, p.DOB)
	}
	for _, a := range s.Appointments.List() {
		check("appointment", a.AppointmentID, a.Date)
	}
	for _, r := range s.Records.List() {
		check("record", r.RecordID, r.VisitDate)
		if r.FollowUpDate != nil {
			check("record follow-up", r.RecordID, *r.FollowUpDate)
		}
	}
	for _, i := range s.Billing.List() {
		check("invoice", i.BillingID, i.InvoiceDate)
		check("invoice due", i.BillingID, i.DueDate)
	}
}

func TestNewStore_RoomAvailabilityConsistent(t *testing.T) {
	s := NewStore()
	for _, r := range s.Rooms.List() {
		if r.Occupancy > r.Capacity {
			t.Errorf("room %d: occupancy %d exceeds capacity %d", r.RoomID, r.Occupancy, r.Capacity)
		}
	}
}
