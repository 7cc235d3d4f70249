package billing

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

// =========== Invoice Repository ===========

type invoiceRepoPG struct{ db queryable }

func NewInvoiceRepoPG(pool *pgxpool.Pool) InvoiceRepository { return &invoiceRepoPG{db: pool} }

const invoiceCols = `billing_id, patient_id, total_amount,
	to_char(invoice_date, 'YYYY-MM-DD'), to_char(due_date, 'YYYY-MM-DD'), payment_status, insurance_claim_id`

func scanInvoice(row pgx.Row) (*Invoice, error) {
	var inv Invoice
	err := row.Scan(&inv.BillingID, &inv.PatientID, &inv.TotalAmount,
		&inv.InvoiceDate, &inv.DueDate, &inv.PaymentStatus, &inv.InsuranceClaimID)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	return &inv, err
}

func (r *invoiceRepoPG) List(ctx context.Context) ([]*Invoice, error) {
	rows, err := r.db.Query(ctx, `SELECT `+invoiceCols+` FROM billing ORDER BY billing_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	invoices := []*Invoice{}
	for rows.Next() {
		inv, err := scanInvoice(rows)
		if err != nil {
			return nil, err
		}
		invoices = append(invoices, inv)
	}
	return invoices, rows.Err()
}

func (r *invoiceRepoPG) GetByID(ctx context.Context, id int) (*Invoice, error) {
	return scanInvoice(r.db.QueryRow(ctx,
		`SELECT `+invoiceCols+` FROM billing WHERE billing_id = $1`, id))
}

func (r *invoiceRepoPG) Create(ctx context.Context, inv *Invoice) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO billing (billing_id, patient_id, total_amount, invoice_date, due_date, payment_status, insurance_claim_id)
		VALUES ((SELECT COALESCE(MAX(billing_id), 0) + 1 FROM billing), $1, $2, $3, $4, $5, $6)
		RETURNING billing_id`,
		inv.PatientID, inv.TotalAmount, inv.InvoiceDate, inv.DueDate, inv.PaymentStatus, inv.InsuranceClaimID,
	).Scan(&inv.BillingID)
}

func (r *invoiceRepoPG) Update(ctx context.Context, inv *Invoice) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE billing SET patient_id=$2, total_amount=$3, invoice_date=$4, due_date=$5, payment_status=$6, insurance_claim_id=$7
		WHERE billing_id = $1`,
		inv.BillingID, inv.PatientID, inv.TotalAmount, inv.InvoiceDate, inv.DueDate, inv.PaymentStatus, inv.InsuranceClaimID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *invoiceRepoPG) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM billing WHERE billing_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// =========== Insurance Repository ===========

type insuranceRepoPG struct{ db queryable }

func NewInsuranceRepoPG(pool *pgxpool.Pool) InsuranceRepository { return &insuranceRepoPG{db: pool} }

const insuranceCols = `insurance_id, provider_name, province, city, postal_code, phone_number, email`

func scanInsurance(row pgx.Row) (*Insurance, error) {
	var ins Insurance
	err := row.Scan(&ins.InsuranceID, &ins.ProviderName, &ins.Province,
		&ins.City, &ins.PostalCode, &ins.PhoneNumber, &ins.Email)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	return &ins, err
}

func (r *insuranceRepoPG) List(ctx context.Context) ([]*Insurance, error) {
	rows, err := r.db.Query(ctx, `SELECT `+insuranceCols+` FROM insurance ORDER BY insurance_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	providers := []*Insurance{}
	for rows.Next() {
		ins, err := scanInsurance(rows)
		if err != nil {
			return nil, err
		}
		providers = append(providers, ins)
	}
	return providers, rows.Err()
}

func (r *insuranceRepoPG) GetByID(ctx context.Context, id int) (*Insurance, error) {
	return scanInsurance(r.db.QueryRow(ctx,
		`SELECT `+insuranceCols+` FROM insurance WHERE insurance_id = $1`, id))
}

func (r *insuranceRepoPG) Create(ctx context.Context, ins *Insurance) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO insurance (insurance_id, provider_name, province, city, postal_code, phone_number, email)
		VALUES ((SELECT COALESCE(MAX(insurance_id), 0) + 1 FROM insurance), $1, $2, $3, $4, $5, $6)
		RETURNING insurance_id`,
		ins.ProviderName, ins.Province, ins.City, ins.PostalCode, ins.PhoneNumber, ins.Email,
	).Scan(&ins.InsuranceID)
}

func (r *insuranceRepoPG) Update(ctx context.Context, ins *Insurance) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE insurance SET provider_name=$2, province=$3, city=$4, postal_code=$5, phone_number=$6, email=$7
		WHERE insurance_id = $1`,
		ins.InsuranceID, ins.ProviderName, ins.Province, ins.City, ins.PostalCode, ins.PhoneNumber, ins.Email)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *insuranceRepoPG) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM insurance WHERE insurance_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// =========== Claim Repository ===========

type claimRepoPG struct{ db queryable }

func NewClaimRepoPG(pool *pgxpool.Pool) ClaimRepository { return &claimRepoPG{db: pool} }

const claimCols = `insurance_claim_id, patient_id, insurance_id, claim_amount,
	to_char(claim_date, 'YYYY-MM-DD'), to_char(approval_date, 'YYYY-MM-DD')`

func scanClaim(row pgx.Row) (*InsuranceClaim, error) {
	var cl InsuranceClaim
	err := row.Scan(&cl.InsuranceClaimID, &cl.PatientID, &cl.InsuranceID,
		&cl.ClaimAmount, &cl.ClaimDate, &cl.ApprovalDate)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	return &cl, err
}

func (r *claimRepoPG) List(ctx context.Context) ([]*InsuranceClaim, error) {
	rows, err := r.db.Query(ctx, `SELECT `+claimCols+` FROM insurance_claim ORDER BY insurance_claim_id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	claims := []*InsuranceClaim{}
	for rows.Next() {
		cl, err := scanClaim(rows)
		if err != nil {
			return nil, err
		}
		claims = append(claims, cl)
	}
	return claims, rows.Err()
}

func (r *claimRepoPG) GetByID(ctx context.Context, id int) (*InsuranceClaim, error) {
	return scanClaim(r.db.QueryRow(ctx,
		`SELECT `+claimCols+` FROM insurance_claim WHERE insurance_claim_id = $1`, id))
}

func (r *claimRepoPG) Create(ctx context.Context, cl *InsuranceClaim) error {
	return r.db.QueryRow(ctx, `
		INSERT INTO insurance_claim (insurance_claim_id, patient_id, insurance_id, claim_amount, claim_date, approval_date)
		VALUES ((SELECT COALESCE(MAX(insurance_claim_id), 0) + 1 FROM insurance_claim), $1, $2, $3, $4, $5)
		RETURNING insurance_claim_id`,
		cl.PatientID, cl.InsuranceID, cl.ClaimAmount, cl.ClaimDate, cl.ApprovalDate,
	).Scan(&cl.InsuranceClaimID)
}

func (r *claimRepoPG) Update(ctx context.Context, cl *InsuranceClaim) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE insurance_claim SET patient_id=$2, insurance_id=$3, claim_amount=$4, claim_date=$5, approval_date=$6
		WHERE insurance_claim_id = $1`,
		cl.InsuranceClaimID, cl.PatientID, cl.InsuranceID, cl.ClaimAmount, cl.ClaimDate, cl.ApprovalDate)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *claimRepoPG) Delete(ctx context.Context, id int) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM insurance_claim WHERE insurance_claim_id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
