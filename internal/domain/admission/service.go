package admission

import (
	"context"
	"fmt"
	"time"
)

type Service struct {
	admissions AdmissionRepository
	rooms      RoomRepository
	beds       BedRepository
}

func NewService(admissions AdmissionRepository, rooms RoomRepository, beds BedRepository) *Service {
	return &Service{admissions: admissions, rooms: rooms, beds: beds}
}

// -- Admission --

func (s *Service) validateAdmission(ctx context.Context, a *Admission) error {
	if a.PatientID <= 0 {
		return fmt.Errorf("PatientID is required")
	}
	if a.RoomID <= 0 {
		return fmt.Errorf("RoomID is required")
	}
	if _, err := time.Parse("2006-01-02", a.AdmissionDate); err != nil {
		return fmt.Errorf("invalid admission date: %s", a.AdmissionDate)
	}
	if _, err := s.rooms.GetByID(ctx, a.RoomID); err != nil {
		return fmt.Errorf("room %d does not exist", a.RoomID)
	}
	return nil
}

func (s *Service) ListAdmissions(ctx context.Context) ([]*Admission, error) {
	return s.admissions.List(ctx)
}

func (s *Service) GetAdmission(ctx context.Context, id int) (*Admission, error) {
	return s.admissions.GetByID(ctx, id)
}

func (s *Service) CreateAdmission(ctx context.Context, a *Admission) error {
	if err := s.validateAdmission(ctx, a); err != nil {
		return err
	}
	return s.admissions.Create(ctx, a)
}

func (s *Service) UpdateAdmission(ctx context.Context, a *Admission) error {
	if err := s.validateAdmission(ctx, a); err != nil {
		return err
	}
	return s.admissions.Update(ctx, a)
}

func (s *Service) DeleteAdmission(ctx context.Context, id int) error {
	return s.admissions.Delete(ctx, id)
}

// -- Room --

func (s *Service) validateRoom(r *Room) error {
	if r.RoomType == "" {
		return fmt.Errorf("RoomType is required")
	}
	if r.Capacity <= 0 {
		return fmt.Errorf("capacity must be positive")
	}
	if r.Occupancy < 0 || r.Occupancy > r.Capacity {
		return fmt.Errorf("occupancy must be between 0 and capacity")
	}
	return nil
}

func (s *Service) ListRooms(ctx context.Context) ([]*Room, error) {
	return s.rooms.List(ctx)
}

func (s *Service) GetRoom(ctx context.Context, id int) (*Room, error) {
	return s.rooms.GetByID(ctx, id)
}

func (s *Service) CreateRoom(ctx context.Context, r *Room) error {
	if err := s.validateRoom(r); err != nil {
		return err
	}
	return s.rooms.Create(ctx, r)
}

func (s *Service) UpdateRoom(ctx context.Context, r *Room) error {
	if err := s.validateRoom(r); err != nil {
		return err
	}
	return s.rooms.Update(ctx, r)
}

func (s *Service) DeleteRoom(ctx context.Context, id int) error {
	return s.rooms.Delete(ctx, id)
}

// -- Bed --

func (s *Service) ListBeds(ctx context.Context) ([]*Bed, error) {
	return s.beds.List(ctx)
}
