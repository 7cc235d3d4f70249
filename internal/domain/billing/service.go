package billing

import (
	"context"
	"fmt"
	"time"
)

type Service struct {
	invoices  InvoiceRepository
	insurance InsuranceRepository
	claims    ClaimRepository
}

func NewService(invoices InvoiceRepository, insurance InsuranceRepository, claims ClaimRepository) *Service {
	return &Service{invoices: invoices, insurance: insurance, claims: claims}
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// -- Invoice --

var validPaymentStatuses = map[string]bool{
	StatusPending: true, StatusPaid: true, StatusOverdue: true,
}

func (s *Service) validateInvoice(inv *Invoice) error {
	if inv.PatientID <= 0 {
		return fmt.Errorf("PatientID is required")
	}
	if inv.TotalAmount < 0 {
		return fmt.Errorf("total amount must not be negative")
	}
	if !validDate(inv.InvoiceDate) {
		return fmt.Errorf("invalid invoice date: %s", inv.InvoiceDate)
	}
	if !validDate(inv.DueDate) {
		return fmt.Errorf("invalid due date: %s", inv.DueDate)
	}
	if inv.PaymentStatus == "" {
		inv.PaymentStatus = StatusPending
	}
	if !validPaymentStatuses[inv.PaymentStatus] {
		return fmt.Errorf("invalid payment status: %s", inv.PaymentStatus)
	}
	return nil
}

func (s *Service) ListInvoices(ctx context.Context) ([]*Invoice, error) {
	return s.invoices.List(ctx)
}

func (s *Service) GetInvoice(ctx context.Context, id int) (*Invoice, error) {
	return s.invoices.GetByID(ctx, id)
}

func (s *Service) CreateInvoice(ctx context.Context, inv *Invoice) error {
	if err := s.validateInvoice(inv); err != nil {
		return err
	}
	return s.invoices.Create(ctx, inv)
}

func (s *Service) UpdateInvoice(ctx context.Context, inv *Invoice) error {
	if err := s.validateInvoice(inv); err != nil {
		return err
	}
	return s.invoices.Update(ctx, inv)
}

func (s *Service) DeleteInvoice(ctx context.Context, id int) error {
	return s.invoices.Delete(ctx, id)
}

// -- Insurance --

func (s *Service) validateInsurance(ins *Insurance) error {
	if ins.ProviderName == "" {
		return fmt.Errorf("provider name is required")
	}
	return nil
}

func (s *Service) ListInsurance(ctx context.Context) ([]*Insurance, error) {
	return s.insurance.List(ctx)
}

func (s *Service) GetInsurance(ctx context.Context, id int) (*Insurance, error) {
	return s.insurance.GetByID(ctx, id)
}

func (s *Service) CreateInsurance(ctx context.Context, ins *Insurance) error {
	if err := s.validateInsurance(ins); err != nil {
		return err
	}
	return s.insurance.Create(ctx, ins)
}

func (s *Service) UpdateInsurance(ctx context.Context, ins *Insurance) error {
	if err := s.validateInsurance(ins); err != nil {
		return err
	}
	return s.insurance.Update(ctx, ins)
}

func (s *Service) DeleteInsurance(ctx context.Context, id int) error {
	return s.insurance.Delete(ctx, id)
}

// -- Insurance Claim --

func (s *Service) validateClaim(cl *InsuranceClaim) error {
	if cl.PatientID <= 0 {
		return fmt.Errorf("PatientID is required")
	}
	if cl.InsuranceID <= 0 {
		return fmt.Errorf("InsuranceID is required")
	}
	if cl.ClaimAmount <= 0 {
		return fmt.Errorf("claim amount must be positive")
	}
	if !validDate(cl.ClaimDate) {
		return fmt.Errorf("invalid claim date: %s", cl.ClaimDate)
	}
	if cl.ApprovalDate != nil && !validDate(*cl.ApprovalDate) {
		return fmt.Errorf("invalid approval date: %s", *cl.ApprovalDate)
	}
	return nil
}

func (s *Service) ListClaims(ctx context.Context) ([]*InsuranceClaim, error) {
	return s.claims.List(ctx)
}

func (s *Service) GetClaim(ctx context.Context, id int) (*InsuranceClaim, error) {
	return s.claims.GetByID(ctx, id)
}

func (s *Service) CreateClaim(ctx context.Context, cl *InsuranceClaim) error {
	if err := s.validateClaim(cl); err != nil {
		return err
	}
	return s.claims.Create(ctx, cl)
}

func (s *Service) UpdateClaim(ctx context.Context, cl *InsuranceClaim) error {
	if err := s.validateClaim(cl); err != nil {
		return err
	}
	return s.claims.Update(ctx, cl)
}

func (s *Service) DeleteClaim(ctx context.Context, id int) error {
	return s.claims.Delete(ctx, id)
}
