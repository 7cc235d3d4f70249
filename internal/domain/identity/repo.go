package identity

import "context"

type PatientRepository interface {
	List(ctx context.Context) ([]*Patient, error)
	GetByID(ctx context.Context, id int) (*Patient, error)
	Create(ctx context.Context, p *Patient) error
	Update(ctx context.Context, p *Patient) error
	Delete(ctx context.Context, id int) error
}

type PhysicianRepository interface {
	List(ctx context.Context) ([]*Physician, error)
	GetByID(ctx context.Context, id int) (*Physician, error)
	Create(ctx context.Context, p *Physician) error
	Update(ctx context.Context, p *Physician) error
	Delete(ctx context.Context, id int) error
}
