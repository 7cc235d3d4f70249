package records

import "context"

type RecordRepository interface {
	List(ctx context.Context) ([]*PatientRecord, error)
	GetByID(ctx context.Context, id int) (*PatientRecord, error)
	Create(ctx context.Context, r *PatientRecord) error
	Update(ctx context.Context, r *PatientRecord) error
	Delete(ctx context.Context, id int) error
}
