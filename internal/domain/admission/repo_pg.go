package admission

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type queryable interface {
	Query(ctx context.Context, sql string, args ...interface{}) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...interface{}) pgx.Row
	Exec(ctx context.Context, sql string, args ...interface{}) (pgconn.CommandTag, error)
}

// =========== Admission Repository ===========

type admissionRepoPG struct{ db queryable }

func NewAdmissionRepoPG(pool *pgxpool.Pool) AdmissionRepository { return &admissionRepoPG{db: pool} }

const admissionCols = `admission_id, patient_id, room_id,
	to_char(admission_date, 'YYYY-MM-DD'), insurance_verified, treatment_plan`

func scanAdmission(row pgx.Row) (*Admission, error) {
	var a Admission
	err := row.Scan(&a.AdmissionID, &a.PatientID, &a.RoomID,
		&a.AdmissionDate, &a.InsuranceVerified, &a.TreatmentPlan)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	return &a, err
}

func (r *admissionRepoPG) List(ctx context.Context) ([]*Admission, error) {
	rows, err := r.db.Query(ctx, `SELECT `+admissionCols+` FROM admission ORDER BY admission_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	admissions := []*Admission{}
	for rows.Next() {
		a, err := scanAdmission(rows)
		if err != nil {
			return nil, err
		}
		admissions = append(admissions, a)
	}
	return admissions, rows.Err()
}

func (r *admissionRepoPG) GetByID(ctx context.Context, id int) (*Admission, error) {
	return scanAdmission(r.db.QueryRow(ctx,
		`SELECT `+admissionCols+` FROM admission WHERE admission_id = $1`, id))
}

func (r *admissionRepoPG) Create(ctx context.Context, a *Admission) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO admission (admission_id, patient_id, room_id, admission_date, insurance_verified, treatment_plan)
		VALUES ((SELECT COALESCE(MAX(admission_id), 0) + 1 FROM admission), $1, $2, $3, $4, $5)
		RETURNING admission_id`,
		a.PatientID, a.RoomID, a.AdmissionDate, a.InsuranceVerified, a.TreatmentPlan,
	).Scan(&a.AdmissionID)
}

func (r *admissionRepoPG) Update(ctx context.Context, a *Admission) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE admission SET patient_id=$2, room_id=$3, admission_date=$4, insurance_verified=$5, treatment_plan=$6
		WHERE admission_id = $1`,
		a.AdmissionID, a.PatientID, a.RoomID, a.AdmissionDate, a.InsuranceVerified, a.TreatmentPlan)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *admissionRepoPG) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM admission WHERE admission_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// =========== Room Repository ===========

type roomRepoPG struct{ db queryable }

func NewRoomRepoPG(pool *pgxpool.Pool) RoomRepository { return &roomRepoPG{db: pool} }

const roomCols = `room_id, room_type, capacity, occupancy, rooms_available`

func scanRoom(row pgx.Row) (*Room, error) {
	var rm Room
	err := row.Scan(&rm.RoomID, &rm.RoomType, &rm.Capacity, &rm.Occupancy, &rm.RoomsAvailable)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	return &rm, err
}

func (r *roomRepoPG) List(ctx context.Context) ([]*Room, error) {
	rows, err := r.db.Query(ctx, `SELECT `+roomCols+` FROM room ORDER BY room_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	rooms := []*Room{}
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, rm)
	}
	return rooms, rows.Err()
}

func (r *roomRepoPG) GetByID(ctx context.Context, id int) (*Room, error) {
	return scanRoom(r.db.QueryRow(ctx,
		`SELECT `+roomCols+` FROM room WHERE room_id = $1`, id))
}

func (r *roomRepoPG) Create(ctx context.Context, rm *Room) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO room (room_id, room_type, capacity, occupancy, rooms_available)
		VALUES ((SELECT COALESCE(MAX(room_id), 0) + 1 FROM room), $1, $2, $3, $4)
		RETURNING room_id`,
		rm.RoomType, rm.Capacity, rm.Occupancy, rm.RoomsAvailable,
	).Scan(&rm.RoomID)
}

func (r *roomRepoPG) Update(ctx context.Context, rm *Room) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE room SET room_type=$2, capacity=$3, occupancy=$4, rooms_available=$5
		WHERE room_id = $1`,
		rm.RoomID, rm.RoomType, rm.Capacity, rm.Occupancy, rm.RoomsAvailable)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *roomRepoPG) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM room WHERE room_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// =========== Bed Repository ===========

type bedRepoPG struct{ db queryable }

func NewBedRepoPG(pool *pgxpool.Pool) BedRepository { return &bedRepoPG{db: pool} }

func (r *bedRepoPG) List(ctx context.Context) ([]*Bed, error) {
	rows, err := r.db.Query(ctx,
		`SELECT bed_id, room_id, bed_number, patient_id FROM bed ORDER BY bed_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	beds := []*Bed{}
	for rows.Next() {
		var b Bed
		if err := rows.Scan(&b.BedID, &b.RoomID, &b.BedNumber, &b.PatientID); err != nil {
			return nil, err
		}
		beds = append(beds, &b)
	}
	return beds, rows.Err()
}
