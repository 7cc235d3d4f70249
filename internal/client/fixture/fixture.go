// Package fixture bundles the demo dataset the dashboard falls back to when
// the backend is unreachable. Values here are fixture data, not logic; the
// same rows are seeded into the database by migrations/002_demo_data.sql.
package fixture

import (
	"github.com/hms/hms/internal/client/record"
	"github.com/hms/hms/internal/client/session"
	"github.com/hms/hms/internal/client/store"
)

func intPtr(i int) *int { return &i }

func strPtr(s string) *string { return &s }

// Users is the demo login registry.
func Users() []session.User {
	return []session.User{
		{UserID: "ADM001", Username: "admin", Password: "Admin@2024", Role: session.RoleAdministrator, Name: "System Administrator", Email: "admin@lrch.ca"},
		{UserID: "PHY001", Username: "dwilson", Password: "Cardio#1234", Role: session.RolePhysician, Name: "Dr. David Wilson", Email: "david.wilson@lrch.ca", PhysicianID: intPtr(1)},
		{UserID: "PHY002", Username: "sbrown", Password: "Peds@5678", Role: session.RolePhysician, Name: "Dr. Sarah Brown", Email: "sarah.brown@lrch.ca", PhysicianID: intPtr(2)},
		{UserID: "VWR001", Username: "jreceptionist", Password: "View@1234", Role: session.RoleViewer, Name: "Jane Receptionist", Email: "jane.r@lrch.ca"},
		{UserID: "PAT001", Username: "jsmith", Password: "Patient#123", Role: session.RolePatient, Name: "John Smith", Email: "john.smith@email.com", PatientID: intPtr(1)},
	}
}

// NewStore returns a Store pre-populated with the demo dataset.
func NewStore() *store.Store {
	s := store.New()

	s.Insurance.Replace([]record.Insurance{
		{InsuranceID: 1, ProviderName: "Ontario Health Insurance", Province: "Ontario", City: "Toronto", PostalCode: "M1M 1M1", PhoneNumber: "416-555-0101", Email: "contact@ohi.ca"},
		{InsuranceID: 2, ProviderName: "Sun Life", Province: "Ontario", City: "Ottawa", PostalCode: "K1P 1J1", PhoneNumber: "613-555-0202", Email: "info@sunlife.ca"},
		{InsuranceID: 3, ProviderName: "Manulife", Province: "Ontario", City: "Waterloo", PostalCode: "N2L 2R7", PhoneNumber: "519-555-0303", Email: "support@manulife.ca"},
		{InsuranceID: 4, ProviderName: "Great-West Life", Province: "Ontario", City: "London", PostalCode: "N6A 4K3", PhoneNumber: "519-555-0404", Email: "info@gwl.ca"},
		{InsuranceID: 5, ProviderName: "Blue Cross", Province: "Ontario", City: "Toronto", PostalCode: "M5H 2N2", PhoneNumber: "416-555-0505", Email: "service@bluecross.ca"},
	})

	s.Patients.Replace([]record.Patient{
		{PatientID: 1, LastName: "Smith", FirstName: "John", DOB: "1980-05-15", Address: "123 Main St, Toronto", Gender: "M", InsuranceID: intPtr(1)},
		{PatientID: 2, LastName: "Johnson", FirstName: "Mary", DOB: "1992-08-22", Address: "456 Oak Ave, Ottawa", Gender: "F", InsuranceID: intPtr(2)},
		{PatientID: 3, LastName: "Williams", FirstName: "David", DOB: "1975-03-10", Address: "789 Pine Rd, Kingston", Gender: "M", InsuranceID: intPtr(3)},
		{PatientID: 4, LastName: "Brown", FirstName: "Sarah", DOB: "1988-11-30", Address: "321 Elm St, Hamilton", Gender: "F", InsuranceID: intPtr(4)},
		{PatientID: 5, LastName: "Davis", FirstName: "Michael", DOB: "1965-07-25", Address: "654 Maple Dr, London", Gender: "M", InsuranceID: intPtr(5)},
	})

	s.Physicians.Replace([]record.Physician{
		{PhysicianID: 1, FirstName: "David", LastName: "Wilson", Specialization: "Cardiology", Email: "david.wilson@lrch.ca"},
		{PhysicianID: 2, FirstName: "Sarah", LastName: "Brown", Specialization: "Pediatrics", Email: "sarah.brown@lrch.ca"},
		{PhysicianID: 3, FirstName: "James", LastName: "Taylor", Specialization: "Orthopedics", Email: "james.taylor@lrch.ca"},
		{PhysicianID: 4, FirstName: "Emily", LastName: "Anderson", Specialization: "Neurology", Email: "emily.anderson@lrch.ca"},
		{PhysicianID: 5, FirstName: "Robert", LastName: "Martinez", Specialization: "General Surgery", Email: "robert.martinez@lrch.ca"},
	})

	s.Appointments.Replace([]record.Appointment{
		{AppointmentID: 1, PatientID: 1, PhysicianID: 1, Date: "2024-12-02", Time: "09:00", Status: "Scheduled", ReasonForVisit: "Chest pain follow-up"},
		{AppointmentID: 2, PatientID: 2, PhysicianID: 2, Date: "2024-12-02", Time: "10:30", Status: "Scheduled", ReasonForVisit: "Annual checkup"},
		{AppointmentID: 3, PatientID: 3, PhysicianID: 3, Date: "2024-12-03", Time: "14:00", Status: "Completed", ReasonForVisit: "Knee pain"},
		{AppointmentID: 4, PatientID: 4, PhysicianID: 4, Date: "2024-12-04", Time: "11:15", Status: "Cancelled", ReasonForVisit: "Migraine consult"},
		{AppointmentID: 5, PatientID: 5, PhysicianID: 5, Date: "2024-12-05", Time: "08:45", Status: "Scheduled", ReasonForVisit: "Pre-surgery assessment"},
	})

	s.Rooms.Replace([]record.Room{
		{RoomID: 1, RoomType: "General Ward", Capacity: 4, Occupancy: 2, RoomsAvailable: 2},
		{RoomID: 2, RoomType: "Private", Capacity: 1, Occupancy: 0, RoomsAvailable: 1},
		{RoomID: 3, RoomType: "ICU", Capacity: 2, Occupancy: 1, RoomsAvailable: 1},
		{RoomID: 4, RoomType: "Semi-Private", Capacity: 3, Occupancy: 1, RoomsAvailable: 2},
	})

	s.Admissions.Replace([]record.Admission{
		{AdmissionID: 1, PatientID: 1, RoomID: 1, AdmissionDate: "2024-11-28", InsuranceVerified: true, TreatmentPlan: "Cardiac monitoring"},
		{AdmissionID: 2, PatientID: 2, RoomID: 3, AdmissionDate: "2024-11-29", InsuranceVerified: true, TreatmentPlan: "Post-operative observation"},
		{AdmissionID: 3, PatientID: 3, RoomID: 4, AdmissionDate: "2024-11-30", InsuranceVerified: false, TreatmentPlan: "Physiotherapy"},
		{AdmissionID: 4, PatientID: 4, RoomID: 1, AdmissionDate: "2024-12-01", InsuranceVerified: true, TreatmentPlan: "Neurological assessment"},
	})

	s.Beds.Replace([]record.Bed{
		{BedID: 1, RoomID: 1, BedNumber: 1, PatientID: intPtr(1)},
		{BedID: 2, RoomID: 1, BedNumber: 2, PatientID: intPtr(4)},
		{BedID: 3, RoomID: 2, BedNumber: 1},
		{BedID: 4, RoomID: 3, BedNumber: 1, PatientID: intPtr(2)},
		{BedID: 5, RoomID: 3, BedNumber: 2},
		{BedID: 6, RoomID: 4, BedNumber: 1, PatientID: intPtr(3)},
		{BedID: 7, RoomID: 4, BedNumber: 2},
		{BedID: 8, RoomID: 4, BedNumber: 3},
	})

	s.Billing.Replace([]record.Invoice{
		{BillingID: 1, PatientID: 1, TotalAmount: 1250.00, InvoiceDate: "2024-11-28", DueDate: "2024-12-28", PaymentStatus: "Pending", InsuranceClaimID: intPtr(1)},
		{BillingID: 2, PatientID: 2, TotalAmount: 3400.50, InvoiceDate: "2024-11-29", DueDate: "2024-12-29", PaymentStatus: "Paid", InsuranceClaimID: intPtr(2)},
		{BillingID: 3, PatientID: 3, TotalAmount: 780.25, InvoiceDate: "2024-11-30", DueDate: "2024-12-30", PaymentStatus: "Pending", InsuranceClaimID: intPtr(3)},
		{BillingID: 4, PatientID: 4, TotalAmount: 2100.00, InvoiceDate: "2024-12-01", DueDate: "2024-12-31", PaymentStatus: "Overdue", InsuranceClaimID: intPtr(4)},
		{BillingID: 5, PatientID: 5, TotalAmount: 560.00, InvoiceDate: "2024-12-01", DueDate: "2025-01-01", PaymentStatus: "Paid"},
	})

	s.Records.Replace([]record.PatientRecord{
		{RecordID: 1, PatientID: 1, VisitDate: "2024-11-28", Treatment: "ECG and blood panel", FollowUpDate: strPtr("2024-12-12")},
		{RecordID: 2, PatientID: 2, VisitDate: "2024-11-29", Treatment: "Appendectomy", FollowUpDate: strPtr("2024-12-13")},
		{RecordID: 3, PatientID: 3, VisitDate: "2024-11-30", Treatment: "Knee arthroscopy", FollowUpDate: nil},
		{RecordID: 4, PatientID: 4, VisitDate: "2024-12-01", Treatment: "MRI scan", FollowUpDate: strPtr("2024-12-15")},
		{RecordID: 5, PatientID: 5, VisitDate: "2024-12-01", Treatment: "Pre-operative bloodwork", FollowUpDate: nil},
	})

	s.Claims.Replace([]record.InsuranceClaim{
		{InsuranceClaimID: 1, PatientID: 1, InsuranceID: 1, ClaimAmount: 1250.00, ClaimDate: "2024-11-29", ApprovalDate: strPtr("2024-12-01")},
		{InsuranceClaimID: 2, PatientID: 2, InsuranceID: 2, ClaimAmount: 3400.50, ClaimDate: "2024-11-30", ApprovalDate: nil},
		{InsuranceClaimID: 3, PatientID: 3, InsuranceID: 3, ClaimAmount: 780.25, ClaimDate: "2024-12-01", ApprovalDate: nil},
		{InsuranceClaimID: 4, PatientID: 4, InsuranceID: 4, ClaimAmount: 2100.00, ClaimDate: "2024-12-01", ApprovalDate: strPtr("2024-12-02")},
	})

	return s
}
