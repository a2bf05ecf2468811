package ports

import (
	"context"

	"envios-registry/internal/features/customers/domain"
)

// CustomerService defines the primary port for customer record management.
type CustomerService interface {
	Register(ctx context.Context, names, surnames, idNumber string, idType domain.IDType, address, landline, mobile, neighborhood string) (*domain.Customer, error)
	Update(ctx context.Context, idNumber string, patch domain.Patch) (*domain.Customer, error)
	Find(ctx context.Context, idNumber string) (*domain.Customer, error)
	List(ctx context.Context) ([]*domain.Customer, error)
}

// CustomerRepository defines the secondary port for customer storage.
// FindCustomer reports a missing record as (nil, nil).
type CustomerRepository interface {
	InsertCustomer(ctx context.Context, customer *domain.Customer) error
	SaveCustomer(ctx context.Context, customer *domain.Customer) error
	FindCustomer(ctx context.Context, idNumber string) (*domain.Customer, error)
	AllCustomers(ctx context.Context) ([]*domain.Customer, error)
}
