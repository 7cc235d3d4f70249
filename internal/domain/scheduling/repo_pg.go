package scheduling

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

type appointmentRepoPG struct{ db queryable }

func NewAppointmentRepoPG(pool *pgxpool.Pool) AppointmentRepository {
	return &appointmentRepoPG{db: pool}
}

const appointmentCols = `appointment_id, patient_id, physician_id,
	to_char(date, 'YYYY-MM-DD'), to_char(time, 'HH24:MI'), status, reason_for_visit`

func scanAppointment(row pgx.Row) (*Appointment, error) {
	var a Appointment
	err := row.Scan(&a.AppointmentID, &a.PatientID, &a.PhysicianID,
		&a.Date, &a.Time, &a.Status, &a.ReasonForVisit)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	return &a, err
}

func (r *appointmentRepoPG) List(ctx context.Context) ([]*Appointment, error) {
	rows, err := r.db.Query(ctx, `SELECT `+appointmentCols+` FROM appointment ORDER BY appointment_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	appointments := []*Appointment{}
	for rows.Next() {
		a, err := scanAppointment(rows)
		if err != nil {
			return nil, err
		}
		appointments = append(appointments, a)
	}
	return appointments, rows.Err()
}

func (r *appointmentRepoPG) GetByID(ctx context.Context, id int) (*Appointment, error) {
	return scanAppointment(r.db.QueryRow(ctx,
		`SELECT `+appointmentCols+` FROM appointment WHERE appointment_id = $1`, id))
}

func (r *appointmentRepoPG) Create(ctx context.Context, a *Appointment) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO appointment (appointment_id, patient_id, physician_id, date, time, status, reason_for_visit)
		VALUES ((SELECT COALESCE(MAX(appointment_id), 0) + 1 FROM appointment), $1, $2, $3, $4, $5, $6)
		RETURNING appointment_id`,
		a.PatientID, a.PhysicianID, a.Date, a.Time, a.Status, a.ReasonForVisit,
	).Scan(&a.AppointmentID)
}

func (r *appointmentRepoPG) Update(ctx context.Context, a *Appointment) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE appointment SET patient_id=$2, physician_id=$3, date=$4, time=$5, status=$6, reason_for_visit=$7
		WHERE appointment_id = $1`,
		a.AppointmentID, a.PatientID, a.PhysicianID, a.Date, a.Time, a.Status, a.ReasonForVisit)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *appointmentRepoPG) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM appointment WHERE appointment_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
