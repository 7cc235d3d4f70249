package scheduling

import "context"

type AppointmentRepository interface {
	List(ctx context.Context) ([]*Appointment, error)
	GetByID(ctx context.Context, id int) (*Appointment, error)
	Create(ctx context.Context, a *Appointment) error
	Update(ctx context.Context, a *Appointment) error
	Delete(ctx context.Context, id int) error
}
