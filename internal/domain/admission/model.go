// Package admission owns inpatient stays, the room inventory and the bed
// board.
package admission

import "errors"

var ErrNotFound = errors.New("not found")

// Admission maps to the admission table.
type Admission struct {
	AdmissionID       int    `db:"admission_id" json:"AdmissionID"`
	PatientID         int    `db:"patient_id" json:"PatientID"`
	RoomID            int    `db:"room_id" json:"RoomID"`
	AdmissionDate     string `db:"admission_date" json:"AdmissionDate"`
	InsuranceVerified bool   `db:"insurance_verified" json:"InsuranceVerified"`
	TreatmentPlan     string `db:"treatment_plan" json:"TreatmentPlan"`
}

// Room maps to the room table. RoomsAvailable is a stored column, not a
// value derived from Capacity and Occupancy; callers that change occupancy
// are expected to keep it consistent.
type Room struct {
	RoomID         int    `db:"room_id" json:"RoomID"`
	RoomType       string `db:"room_type" json:"RoomType"`
	Capacity       int    `db:"capacity" json:"Capacity"`
	Occupancy      int    `db:"occupancy" json:"Occupancy"`
	RoomsAvailable int    `db:"rooms_available" json:"RoomsAvailable"`
}

// Bed maps to the bed table. Beds are read-only over the API; the bed board
// changes only through migrations and admissions workflows.
type Bed struct {
	BedID     int  `db:"bed_id" json:"BedID"`
	RoomID    int  `db:"room_id" json:"RoomID"`
	BedNumber int  `db:"bed_number" json:"BedNumber"`
	PatientID *int `db:"patient_id" json:"PatientID"`
}
