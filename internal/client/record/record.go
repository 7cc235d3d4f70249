// Package record defines the ten entity types as the client-side mirror sees
// them: flat structs keyed by an integer surrogate id, with calendar-date
// strings (YYYY-MM-DD) for all date fields. The JSON field names match the
// backend's column names, which the REST API passes through verbatim.
package record

import "strings"

// Entity collection names as they appear in the REST paths (/api/<entity>).
const (
	EntityPatients     = "patients"
	EntityPhysicians   = "physicians"
	EntityAppointments = "appointments"
	EntityAdmissions   = "admissions"
	EntityRooms        = "rooms"
	EntityBilling      = "billing"
	EntityInsurance    = "insurance"
	EntityRecords      = "records"
	EntityClaims       = "claims"
	EntityBeds         = "beds"
)

// Entities lists every collection in bulk-load order.
var Entities = []string{
	EntityPatients, EntityPhysicians, EntityAppointments, EntityAdmissions,
	EntityRooms, EntityBilling, EntityInsurance, EntityRecords, EntityClaims,
	EntityBeds,
}

// DateOnly truncates a timestamped date string ("2024-12-01T00:00:00.000Z")
// to its calendar-date portion. Plain dates and empty strings pass through.
func DateOnly(s string) string {
	if i := strings.IndexByte(s, 'T'); i >= 0 {
		return s[:i]
	}
	return s
}

func dateOnlyPtr(s *string) *string {
	if s == nil {
		return nil
	}
	d := DateOnly(*s)
	return &d
}

type Patient struct {
	PatientID   int    `json:"PatientID"`
	FirstName   string `json:"FirstName"`
	LastName    string `json:"LastName"`
	DOB         string `json:"DOB"`
	Address     string `json:"Address"`
	Gender      string `json:"Gender"`
	InsuranceID *int   `json:"InsuranceID"`
}

func (p Patient) Key() int { return p.PatientID }

// Normalize truncates timestamped dates returned by the backend.
func (p *Patient) Normalize() { p.DOB = DateOnly(p.DOB) }

// Payload is the field set sent on create/update; the id never travels in the
// body (create) or travels in the path (update).
func (p Patient) Payload() map[string]any {
	return map[string]any{
		"LastName":    p.LastName,
		"FirstName":   p.FirstName,
		"DOB":         p.DOB,
		"Address":     p.Address,
		"Gender":      p.Gender,
		"InsuranceID": p.InsuranceID,
	}
}

type Physician struct {
	PhysicianID    int    `json:"PhysicianID"`
	FirstName      string `json:"FirstName"`
	LastName       string `json:"LastName"`
	Specialization string `json:"Specialization"`
	Email          string `json:"Email"`
}

func (p Physician) Key() int { return p.PhysicianID }

func (p Physician) Payload() map[string]any {
	return map[string]any{
		"FirstName":      p.FirstName,
		"LastName":       p.LastName,
		"Specialization": p.Specialization,
		"Email":          p.Email,
	}
}

type Appointment struct {
	AppointmentID  int    `json:"AppointmentID"`
	PatientID      int    `json:"PatientID"`
	PhysicianID    int    `json:"PhysicianID"`
	Date           string `json:"Date"`
	Time           string `json:"Time"`
	Status         string `json:"Status"`
	ReasonForVisit string `json:"ReasonForVisit"`
}

func (a Appointment) Key() int { return a.AppointmentID }

func (a *Appointment) Normalize() { a.Date = DateOnly(a.Date) }

func (a Appointment) Payload() map[string]any {
	return map[string]any{
		"PatientID":      a.PatientID,
		"PhysicianID":    a.PhysicianID,
		"Date":           a.Date,
		"Time":           a.Time,
		"Status":         a.Status,
		"ReasonForVisit": a.ReasonForVisit,
	}
}

type Admission struct {
	AdmissionID       int    `json:"AdmissionID"`
	PatientID         int    `json:"PatientID"`
	RoomID            int    `json:"RoomID"`
	AdmissionDate     string `json:"AdmissionDate"`
	InsuranceVerified bool   `json:"InsuranceVerified"`
	TreatmentPlan     string `json:"TreatmentPlan"`
}

func (a Admission) Key() int { return a.AdmissionID }

func (a *Admission) Normalize() { a.AdmissionDate = DateOnly(a.AdmissionDate) }

func (a Admission) Payload() map[string]any {
	return map[string]any{
		"PatientID":         a.PatientID,
		"RoomID":            a.RoomID,
		"AdmissionDate":     a.AdmissionDate,
		"InsuranceVerified": a.InsuranceVerified,
		"TreatmentPlan":     a.TreatmentPlan,
	}
}

// Room carries the denormalized RoomsAvailable column. The backend does not
// recompute it from Capacity and Occupancy on admission changes; callers that
// mutate occupancy are expected to keep it consistent.
type Room struct {
	RoomID         int    `json:"RoomID"`
	RoomType       string `json:"RoomType"`
	Capacity       int    `json:"Capacity"`
	Occupancy      int    `json:"Occupancy"`
	RoomsAvailable int    `json:"RoomsAvailable"`
}

func (r Room) Key() int { return r.RoomID }

func (r Room) Payload() map[string]any {
	return map[string]any{
		"RoomType":       r.RoomType,
		"Capacity":       r.Capacity,
		"Occupancy":      r.Occupancy,
		"RoomsAvailable": r.RoomsAvailable,
	}
}

// Bed is read-only over the API; it has no payload projection.
type Bed struct {
	BedID     int  `json:"BedID"`
	RoomID    int  `json:"RoomID"`
	BedNumber int  `json:"BedNumber"`
	PatientID *int `json:"PatientID"`
}

func (b Bed) Key() int { return b.BedID }

// Invoice carries an optional link to the claim filed against it;
// InsuranceClaimID is nil for unclaimed invoices.
type Invoice struct {
	BillingID        int     `json:"BillingID"`
	PatientID        int     `json:"PatientID"`
	TotalAmount      float64 `json:"TotalAmount"`
	InvoiceDate      string  `json:"InvoiceDate"`
	DueDate          string  `json:"DueDate"`
	PaymentStatus    string  `json:"PaymentStatus"`
	InsuranceClaimID *int    `json:"InsuranceClaimID"`
}

func (i Invoice) Key() int { return i.BillingID }

func (i *Invoice) Normalize() {
	i.InvoiceDate = DateOnly(i.InvoiceDate)
	i.DueDate = DateOnly(i.DueDate)
}

func (i Invoice) Payload() map[string]any {
	return map[string]any{
		"PatientID":        i.PatientID,
		"TotalAmount":      i.TotalAmount,
		"InvoiceDate":      i.InvoiceDate,
		"DueDate":          i.DueDate,
		"PaymentStatus":    i.PaymentStatus,
		"InsuranceClaimID": i.InsuranceClaimID,
	}
}

type Insurance struct {
	InsuranceID  int    `json:"InsuranceID"`
	ProviderName string `json:"ProviderName"`
	Province     string `json:"Province"`
	City         string `json:"City"`
	PostalCode   string `json:"PostalCode"`
	PhoneNumber  string `json:"PhoneNumber"`
	Email        string `json:"Email"`
}

func (i Insurance) Key() int { return i.InsuranceID }

func (i Insurance) Payload() map[string]any {
	return map[string]any{
		"ProviderName": i.ProviderName,
		"Province":     i.Province,
		"City":         i.City,
		"PostalCode":   i.PostalCode,
		"PhoneNumber":  i.PhoneNumber,
		"Email":        i.Email,
	}
}

type PatientRecord struct {
	RecordID     int     `json:"RecordID"`
	PatientID    int     `json:"PatientID"`
	VisitDate    string  `json:"VisitDate"`
	Treatment    string  `json:"Treatment"`
	FollowUpDate *string `json:"FollowUpDate"`
}

func (r PatientRecord) Key() int { return r.RecordID }

func (r *PatientRecord) Normalize() {
	r.VisitDate = DateOnly(r.VisitDate)
	r.FollowUpDate = dateOnlyPtr(r.FollowUpDate)
}

func (r PatientRecord) Payload() map[string]any {
	return map[string]any{
		"PatientID":    r.PatientID,
		"VisitDate":    r.VisitDate,
		"Treatment":    r.Treatment,
		"FollowUpDate": r.FollowUpDate,
	}
}

type InsuranceClaim struct {
	InsuranceClaimID int     `json:"InsuranceClaimID"`
	PatientID        int     `json:"PatientID"`
	InsuranceID      int     `json:"InsuranceID"`
	ClaimAmount      float64 `json:"ClaimAmount"`
	ClaimDate        string  `json:"ClaimDate"`
	ApprovalDate     *string `json:"ApprovalDate"`
}

func (c InsuranceClaim) Key() int { return c.InsuranceClaimID }

func (c *InsuranceClaim) Normalize() {
	c.ClaimDate = DateOnly(c.ClaimDate)
	c.ApprovalDate = dateOnlyPtr(c.ApprovalDate)
}

func (c InsuranceClaim) Payload() map[string]any {
	return map[string]any{
		"PatientID":    c.PatientID,
		"InsuranceID":  c.InsuranceID,
		"ClaimAmount":  c.ClaimAmount,
		"ClaimDate":    c.ClaimDate,
		"ApprovalDate": c.ApprovalDate,
	}
}
