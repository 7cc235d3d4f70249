package scheduling

import (
	"context"
	"fmt"
	"time"
)

type Service struct {
	appointments AppointmentRepository
}

func NewService(appointments AppointmentRepository) *Service {
	return &Service{appointments: appointments}
}

var validStatuses = map[string]bool{
	StatusScheduled: true, StatusCompleted: true, StatusCancelled: true,
}

func (s *Service) validate(a *Appointment) error {
	if a.PatientID <= 0 {
		return fmt.Errorf("PatientID is required")
	}
	if a.PhysicianID <= 0 {
		return fmt.Errorf("PhysicianID is required")
	}
	if _, err := time.Parse("2006-01-02", a.Date); err != nil {
		return fmt.Errorf("invalid appointment date: %s", a.Date)
	}
	if _, err := time.Parse("15:04", a.Time); err != nil {
		return fmt.Errorf("invalid appointment time: %s", a.Time)
	}
	if a.Status == "" {
		a.Status = StatusScheduled
	}
	if !validStatuses[a.Status] {
		return fmt.Errorf("invalid appointment status: %s", a.Status)
	}
	return nil
}

func (s *Service) List(ctx context.Context) ([]*Appointment, error) {
	return s.appointments.List(ctx)
}

func (s *Service) Get(ctx context.Context, id int) (*Appointment, error) {
	return s.appointments.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, a *Appointment) error {
	if err := s.validate(a); err != nil {
		return err
	}
	return s.appointments.Create(ctx, a)
}

func (s *Service) Update(ctx context.Context, a *Appointment) error {
	if err := s.validate(a); err != nil {
		return err
	}
	return s.appointments.Update(ctx, a)
}

func (s *Service) Delete(ctx context.Context, id int) error {
	return s.appointments.Delete(ctx, id)
}
