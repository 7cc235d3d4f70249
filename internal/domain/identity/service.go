package identity

import (
	"context"
	"fmt"
	"time"
)

type Service struct {
	patients   PatientRepository
	physicians PhysicianRepository
}

func NewService(patients PatientRepository, physicians PhysicianRepository) *Service {
	return &Service{patients: patients, physicians: physicians}
}

func validDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// -- Patient --

func (s *Service) validatePatient(p *Patient) error {
	if p.FirstName == "" || p.LastName == "" {
		return fmt.Errorf("first and last name are required")
	}
	if p.DOB == "" {
		return fmt.Errorf("DOB is required")
	}
	if !validDate(p.DOB) {
		return fmt.Errorf("invalid DOB: %s", p.DOB)
	}
	return nil
}

func (s *Service) ListPatients(ctx context.Context) ([]*Patient, error) {
	return s.patients.List(ctx)
}

func (s *Service) GetPatient(ctx context.Context, id int) (*Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *Service) CreatePatient(ctx context.Context, p *Patient) error {
	if err := s.validatePatient(p); err != nil {
		return err
	}
	return s.patients.Create(ctx, p)
}

func (s *Service) UpdatePatient(ctx context.Context, p *Patient) error {
	if err := s.validatePatient(p); err != nil {
		return err
	}
	return s.patients.Update(ctx, p)
}

func (s *Service) DeletePatient(ctx context.Context, id int) error {
	return s.patients.Delete(ctx, id)
}

// -- Physician --

func (s *Service) validatePhysician(p *Physician) error {
	if p.FirstName == "" || p.LastName == "" {
		return fmt.Errorf("first and last name are required")
	}
	if p.Specialization == "" {
		return fmt.Errorf("specialization is required")
	}
	return nil
}

func (s *Service) ListPhysicians(ctx context.Context) ([]*Physician, error) {
	return s.physicians.List(ctx)
}

func (s *Service) GetPhysician(ctx context.Context, id int) (*Physician, error) {
	return s.physicians.GetByID(ctx, id)
}

func (s *Service) CreatePhysician(ctx context.Context, p *Physician) error {
	if err := s.validatePhysician(p); err != nil {
		return err
	}
	return s.physicians.Create(ctx, p)
}

func (s *Service) UpdatePhysician(ctx context.Context, p *Physician) error {
	if err := s.validatePhysician(p); err != nil {
		return err
	}
	return s.physicians.Update(ctx, p)
}

func (s *Service) DeletePhysician(ctx context.Context, id int) error {
	return s.physicians.Delete(ctx, id)
}
