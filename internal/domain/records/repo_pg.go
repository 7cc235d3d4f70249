package records

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

type recordRepoPG struct{ db queryable }

func NewRecordRepoPG(pool *pgxpool.Pool) RecordRepository { return &recordRepoPG{db: pool} }

const recordCols = `record_id, patient_id,
	to_char(visit_date, 'YYYY-MM-DD'), treatment, to_char(follow_up_date, 'YYYY-MM-DD')`

func scanRecord(row pgx.Row) (*PatientRecord, error) {
	var pr PatientRecord
	err := row.Scan(&pr.RecordID, &pr.PatientID, &pr.VisitDate, &pr.Treatment, &pr.FollowUpDate)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	return &pr, err
}

func (r *recordRepoPG) List(ctx context.Context) ([]*PatientRecord, error) {
	rows, err := r.db.Query(ctx, `SELECT `+recordCols+` FROM medical_record ORDER BY record_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []*PatientRecord{}
	for rows.Next() {
		pr, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, pr)
	}
	return out, rows.Err()
}

func (r *recordRepoPG) GetByID(ctx context.Context, id int) (*PatientRecord, error) {
	return scanRecord(r.db.QueryRow(ctx,
		`SELECT `+recordCols+` FROM medical_record WHERE record_id = $1`, id))
}

func (r *recordRepoPG) Create(ctx context.Context, pr *PatientRecord) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO medical_record (record_id, patient_id, visit_date, treatment, follow_up_date)
		VALUES ((SELECT COALESCE(MAX(record_id), 0) + 1 FROM medical_record), $1, $2, $3, $4)
		RETURNING record_id`,
		pr.PatientID, pr.VisitDate, pr.Treatment, pr.FollowUpDate,
	).Scan(&pr.RecordID)
}

func (r *recordRepoPG) Update(ctx context.Context, pr *PatientRecord) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE medical_record SET patient_id=$2, visit_date=$3, treatment=$4, follow_up_date=$5
		WHERE record_id = $1`,
		pr.RecordID, pr.PatientID, pr.VisitDate, pr.Treatment, pr.FollowUpDate)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *recordRepoPG) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM medical_record WHERE record_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
