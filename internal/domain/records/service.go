package records

import (
	"context"
	"fmt"
	"time"
)

type Service struct {
	records RecordRepository
}

func NewService(records RecordRepository) *Service {
	return &Service{records: records}
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func (s *Service) validate(r *PatientRecord) error {
	if r.PatientID <= 0 {
		return fmt.Errorf("PatientID is required")
	}
	if !validDate(r.VisitDate) {
		return fmt.Errorf("invalid visit date: %s", r.VisitDate)
	}
	if r.Treatment == "" {
		return fmt.Errorf("treatment is required")
	}
	if r.FollowUpDate != nil && !validDate(*r.FollowUpDate) {
		return fmt.Errorf("invalid follow-up date: %s", *r.FollowUpDate)
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]*PatientRecord, error) {
	return s.records.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (*PatientRecord, error) {
	return s.records.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, r *PatientRecord) error {
	if err := s.validate(r); err != nil {
		return err
	}
	return s.records.Create(ctx, r)
}

func (s *Service) Update(ctx context.Context, r *PatientRecord) error {
	if err := s.validate(r); err != nil {
		return err
	}
	return s.records.Update(ctx, r)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.records.Delete(ctx, id)
}
