// Package billing owns invoices, insurance providers and insurance claims.
package billing

import "errors"

var ErrNotFound = errors.New("not found")

// Invoice payment statuses accepted by the API.
const (
	StatusPending = "Pending"
	StatusPaid    = "Paid"
	StatusOverdue = "Overdue"
)

// Invoice maps to the billing table. InsuranceClaimID is nil for invoices
// with no claim filed against them.
type Invoice struct {
	BillingID        int     `db:"billing_id" json:"BillingID"`
	PatientID        int     `db:"patient_id" json:"PatientID"`
	TotalAmount      float64 `db:"total_amount" json:"TotalAmount"`
	InvoiceDate      string  `db:"invoice_date" json:"InvoiceDate"`
	DueDate          string  `db:"due_date" json:"DueDate"`
	PaymentStatus    string  `db:"payment_status" json:"PaymentStatus"`
	InsuranceClaimID *int    `db:"insurance_claim_id" json:"InsuranceClaimID"`
}

// Insurance maps to the insurance table (one row per provider).
type Insurance struct {
	InsuranceID  int    `db:"insurance_id" json:"InsuranceID"`
	ProviderName string `db:"provider_name" json:"ProviderName"`
	Province     string `db:"province" json:"Province"`
	City         string `db:"city" json:"City"`
	PostalCode   string `db:"postal_code" json:"PostalCode"`
	PhoneNumber  string `db:"phone_number" json:"PhoneNumber"`
	Email        string `db:"email" json:"Email"`
}

// InsuranceClaim maps to the insurance_claim table. ApprovalDate is nil
// while the claim is pending.
type InsuranceClaim struct {
	InsuranceClaimID int     `db:"insurance_claim_id" json:"InsuranceClaimID"`
	PatientID        int     `db:"patient_id" json:"PatientID"`
	InsuranceID      int     `db:"insurance_id" json:"InsuranceID"`
	ClaimAmount      float64 `db:"claim_amount" json:"ClaimAmount"`
	ClaimDate        string  `db:"claim_date" json:"ClaimDate"`
	ApprovalDate     *string `db:"approval_date" json:"ApprovalDate"`
}
