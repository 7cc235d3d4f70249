// Package identity owns the people registries: patients and physicians.
package identity

import "errors"

// ErrNotFound is returned when a patient or physician id does not exist.
var ErrNotFound = errors.New("not found")

// Patient maps to the patient table. JSON field names mirror the database
// column names, which the API passes through verbatim.
type Patient struct {
	PatientID   int    `db:"patient_id" json:"PatientID"`
	FirstName   string `db:"first_name" json:"FirstName"`
	LastName    string `db:"last_name" json:"LastName"`
	DOB         string `db:"dob" json:"DOB"`
	Address     string `db:"address" json:"Address"`
	Gender      string `db:"gender" json:"Gender"`
	InsuranceID *int   `db:"insurance_id" json:"InsuranceID"`
}

// Physician maps to the physician table.
type Physician struct {
	PhysicianID    int    `db:"physician_id" json:"PhysicianID"`
	FirstName      string `db:"first_name" json:"FirstName"`
	LastName       string `db:"last_name" json:"LastName"`
	Specialization string `db:"specialization" json:"Specialization"`
	Email          string `db:"email" json:"Email"`
}
