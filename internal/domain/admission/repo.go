package admission

import "context"

type AdmissionRepository interface {
	List(ctx context.Context) ([]*Admission, error)
	GetByID(ctx context.Context, id int) (*Admission, error)
	Create(ctx context.Context, a *Admission) error
	Update(ctx context.Context, a *Admission) error
	Delete(ctx context.Context, id int) error
}

type RoomRepository interface {
	List(ctx context.Context) ([]*Room, error)
	GetByID(ctx context.Context, id int) (*Room, error)
	Create(ctx context.Context, r *Room) error
	Update(ctx context.Context, r *Room) error
	Delete(ctx context.Context, id int) error
}

// BedRepository is read-only; the API never mutates beds.
type BedRepository interface {
	List(ctx context.Context) ([]*Bed, error)
}
