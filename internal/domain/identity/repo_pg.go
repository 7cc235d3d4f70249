package identity

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

// =========== Patient Repository ===========

type patientRepoPG struct{ db queryable }

func NewPatientRepoPG(pool *pgxpool.Pool) PatientRepository { return &patientRepoPG{db: pool} }

// Dates are projected as calendar-date strings so the wire format carries no
// time-of-day component.
const patientCols = `patient_id, first_name, last_name,
	to_char(dob, 'YYYY-MM-DD'), address, gender, insurance_id`

func scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.PatientID, &p.FirstName, &p.LastName,
		&p.DOB, &p.Address, &p.Gender, &p.InsuranceID)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	return &p, err
}

func (r *patientRepoPG) List(ctx context.Context) ([]*Patient, error) {
	rows, err := r.db.Query(ctx, `SELECT `+patientCols+` FROM patient ORDER BY patient_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	patients := []*Patient{}
	for rows.Next() {
		p, err := scanPatient(rows)
		if err != nil {
			return nil, err
		}
		patients = append(patients, p)
	}
	return patients, rows.Err()
}

func (r *patientRepoPG) GetByID(ctx context.Context, id int) (*Patient, error) {
	return scanPatient(r.db.QueryRow(ctx,
		`SELECT `+patientCols+` FROM patient WHERE patient_id = $1`, id))
}

func (r *patientRepoPG) Create(ctx context.Context, p *Patient) error {
	// The table uses application-visible integer ids; the next id is the
	// current maximum plus one, assigned inside the insert.
	return r.db.QueryRow(ctx, `
		INSERT INTO patient (patient_id, first_name, last_name, dob, address, gender, insurance_id)
		VALUES ((SELECT COALESCE(MAX(patient_id), 0) + 1 FROM patient), $1, $2, $3, $4, $5, $6)
		RETURNING patient_id`,
		p.FirstName, p.LastName, p.DOB, p.Address, p.Gender, p.InsuranceID,
	).Scan(&p.PatientID)
}

func (r *patientRepoPG) Update(ctx context.Context, p *Patient) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE patient SET first_name=$2, last_name=$3, dob=$4, address=$5, gender=$6, insurance_id=$7
		WHERE patient_id = $1`,
		p.PatientID, p.FirstName, p.LastName, p.DOB, p.Address, p.Gender, p.InsuranceID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *patientRepoPG) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM patient WHERE patient_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// =========== Physician Repository ===========

type physicianRepoPG struct{ db queryable }

func NewPhysicianRepoPG(pool *pgxpool.Pool) PhysicianRepository { return &physicianRepoPG{db: pool} }

const physicianCols = `physician_id, first_name, last_name, specialization, email`

func scanPhysician(row pgx.Row) (*Physician, error) {
	var p Physician
	err := row.Scan(&p.PhysicianID, &p.FirstName, &p.LastName, &p.Specialization, &p.Email)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	return &p, err
}

func (r *physicianRepoPG) List(ctx context.Context) ([]*Physician, error) {
	rows, err := r.db.Query(ctx, `SELECT `+physicianCols+` FROM physician ORDER BY physician_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	physicians := []*Physician{}
	for rows.Next() {
		p, err := scanPhysician(rows)
		if err != nil {
			return nil, err
		}
		physicians = append(physicians, p)
	}
	return physicians, rows.Err()
}

func (r *physicianRepoPG) GetByID(ctx context.Context, id int) (*Physician, error) {
	return scanPhysician(r.db.QueryRow(ctx,
		`SELECT `+physicianCols+` FROM physician WHERE physician_id = $1`, id))
}

func (r *physicianRepoPG) Create(ctx context.Context, p *Physician) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO physician (physician_id, first_name, last_name, specialization, email)
		VALUES ((SELECT COALESCE(MAX(physician_id), 0) + 1 FROM physician), $1, $2, $3, $4)
		RETURNING physician_id`,
		p.FirstName, p.LastName, p.Specialization, p.Email,
	).Scan(&p.PhysicianID)
}

func (r *physicianRepoPG) Update(ctx context.Context, p *Physician) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE physician SET first_name=$2, last_name=$3, specialization=$4, email=$5
		WHERE physician_id = $1`,
		p.PhysicianID, p.FirstName, p.LastName, p.Specialization, p.Email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *physicianRepoPG) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM physician WHERE physician_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
