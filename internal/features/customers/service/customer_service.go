package service

import (
	"context"
	"errors"
	"fmt"

	"envios-registry/internal/features/customers/domain"
	"envios-registry/internal/features/customers/ports"
)

// ErrDuplicateCustomer is returned when the document number is already registered.
var ErrDuplicateCustomer = errors.New("customer already registered")

// ErrCustomerNotFound is returned when no customer matches the document number.
var ErrCustomerNotFound = errors.New("customer not found")

// CustomerServiceImpl implements ports.CustomerService.
type CustomerServiceImpl struct {
	repo ports.CustomerRepository
}

// NewCustomerService creates a new CustomerServiceImpl.
func NewCustomerService(repo ports.CustomerRepository) *CustomerServiceImpl {
	return &CustomerServiceImpl{
		repo: repo,
	}
}

// Register validates and stores a new customer record. The document
// number must not be registered yet.
func (s *CustomerServiceImpl) Register(ctx context.Context, names, surnames, idNumber string, idType domain.IDType, address, landline, mobile, neighborhood string) (*domain.Customer, error) {
	existing, err := s.repo.FindCustomer(ctx, idNumber)
	if err != nil {
		return nil, fmt.Errorf("service: failed to look up customer: %w", err)
	}
	if existing != nil {
		return nil, ErrDuplicateCustomer
	}

	customer, err := domain.NewCustomer(names, surnames, idNumber, idType, address, landline, mobile, neighborhood)
	if err != nil {
		return nil, err
	}

	if err := s.repo.InsertCustomer(ctx, customer); err != nil {
		return nil, fmt.Errorf("service: failed to insert customer: %w", err)
	}

	return customer, nil
}

// Update applies the non-empty patch fields to an existing customer and
// stores the result. Identity fields are not updatable.
func (s *CustomerServiceImpl) Update(ctx context.Context, idNumber string, patch domain.Patch) (*domain.Customer, error) {
	customer, err := s.repo.FindCustomer(ctx, idNumber)
	if err != nil {
		return nil, fmt.Errorf("service: failed to look up customer: %w", err)
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	customer.Apply(patch)

	if err := s.repo.SaveCustomer(ctx, customer); err != nil {
		return nil, fmt.Errorf("service: failed to save customer: %w", err)
	}

	return customer, nil
}

// Find returns the customer registered under the given document number.
func (s *CustomerServiceImpl) Find(ctx context.Context, idNumber string) (*domain.Customer, error) {
	customer, err := s.repo.FindCustomer(ctx, idNumber)
	if err != nil {
		return nil, fmt.Errorf("service: failed to look up customer: %w", err)
	}
	if customer == nil {
		return nil, ErrCustomerNotFound
	}

	return customer, nil
}

// List returns every registered customer.
func (s *CustomerServiceImpl) List(ctx context.Context) ([]*domain.Customer, error) {
	customers, err := s.repo.AllCustomers(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list customers: %w", err)
	}

	return customers, nil
}
