package billing

import "context"

type InvoiceRepository interface {
	List(ctx context.Context) ([]*Invoice, error)
	GetByID(ctx context.Context, id int) (*Invoice, error)
	Create(ctx context.Context, inv *Invoice) error
	Update(ctx context.Context, inv *Invoice) error
	Delete(ctx context.Context, id int) error
}

type InsuranceRepository interface {
	List(ctx context.Context) ([]*Insurance, error)
	GetByID(ctx context.Context, id int) (*Insurance, error)
	Create(ctx context.Context, ins *Insurance) error
	Update(ctx context.Context, ins *Insurance) error
	Delete(ctx context.Context, id int) error
}

type ClaimRepository interface {
	List(ctx context.Context) ([]*InsuranceClaim, error)
	GetByID(ctx context.Context, id int) (*InsuranceClaim, error)
	Create(ctx context.Context, cl *InsuranceClaim) error
	Update(ctx context.Context, cl *InsuranceClaim) error
	Delete(ctx context.Context, id int) error
}
