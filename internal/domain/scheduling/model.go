// Package scheduling owns appointment booking between patients and
// physicians.
package scheduling

import "errors"

var ErrNotFound = errors.New("not found")

// Appointment statuses accepted by the API.
const (
	StatusScheduled = "Scheduled"
	StatusCompleted = "Completed"
	StatusCancelled = "Cancelled"
)

// Appointment maps to the appointment table. Date is a calendar date and
// Time a clock time string ("09:00"); the two are kept as separate columns.
type Appointment struct {
	AppointmentID  int    `db:"appointment_id" json:"AppointmentID"`
	PatientID      int    `db:"patient_id" json:"PatientID"`
	PhysicianID    int    `db:"physician_id" json:"PhysicianID"`
	Date           string `db:"date" json:"Date"`
	Time           string `db:"time" json:"Time"`
	Status         string `db:"status" json:"Status"`
	ReasonForVisit string `db:"reason_for_visit" json:"ReasonForVisit"`
}
