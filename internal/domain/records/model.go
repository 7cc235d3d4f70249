// Package records owns per-visit medical records.
package records

import "errors"

var ErrNotFound = errors.New("not found")

// PatientRecord maps to the medical_record table. FollowUpDate is nil when
// no follow-up is planned.
type PatientRecord struct {
	RecordID     int     `db:"record_id" json:"RecordID"`
	PatientID    int     `db:"patient_id" json:"PatientID"`
	VisitDate    string  `db:"visit_date" json:"VisitDate"`
	Treatment    string  `db:"treatment" json:"Treatment"`
	FollowUpDate *string `db:"follow_up_date" json:"FollowUpDate"`
}
