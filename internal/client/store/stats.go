package store

import "github.com/hms/hms/internal/client/record"

// RoomOccupancy is one bar of the room-status chart.
type RoomOccupancy struct {
	RoomID    int
	RoomType  string
	Occupancy int
	Capacity  int
	Percent   float64
}

// DashboardStats are the derived aggregates shown on the dashboard. All are
// computed from the in-memory collections; nothing here touches the network.
type DashboardStats struct {
	TotalPatients     int
	TotalPhysicians   int
	TotalAppointments int
	AvailableRooms    int
	Rooms             []RoomOccupancy
	TotalOutstanding  float64
	TotalPaid         float64
	PendingInvoices   int
}

// Dashboard computes the dashboard aggregates from the current collections.
func (s *Store) Dashboard() DashboardStats {
	stats := DashboardStats{
		TotalPatients:     s.Patients.Len(),
		TotalPhysicians:   s.Physicians.Len(),
		TotalAppointments: s.Appointments.Len(),
	}
	for _, room := range s.Rooms.List() {
		stats.AvailableRooms += room.RoomsAvailable
		occ := RoomOccupancy{
			RoomID:    room.RoomID,
			RoomType:  room.RoomType,
			Occupancy: room.Occupancy,
			Capacity:  room.Capacity,
		}
		if room.Capacity > 0 {
			occ.Percent = float64(room.Occupancy) / float64(room.Capacity) * 100
		}
		stats.Rooms = append(stats.Rooms, occ)
	}
	for _, inv := range s.Billing.List() {
		switch inv.PaymentStatus {
		case "Pending":
			stats.TotalOutstanding += inv.TotalAmount
			stats.PendingInvoices++
		case "Paid":
			stats.TotalPaid += inv.TotalAmount
		}
	}
	return stats
}

// PatientName returns "First Last" for the given patient id, or "" when the
// patient is not in the mirror.
func (s *Store) PatientName(id int) string {
	p, ok := s.Patients.Get(id)
	if !ok {
		return ""
	}
	return p.FirstName + " " + p.LastName
}

// PhysicianName returns "First Last" for the given physician id, or "".
func (s *Store) PhysicianName(id int) string {
	p, ok := s.Physicians.Get(id)
	if !ok {
		return ""
	}
	return p.FirstName + " " + p.LastName
}

// RecentAppointments returns up to n appointments in insertion order.
func (s *Store) RecentAppointments(n int) []record.Appointment {
	appts := s.Appointments.List()
	if len(appts) > n {
		appts = appts[:n]
	}
	return appts
}
