package services

import (
	"context"
	"log/slog"

	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	"github.com/SscSPs/bank_ledger_app/internal/dto"
)

// RegisterCustomer validates the request and adds a customer with no accounts.
func (s *BankService) RegisterCustomer(ctx context.Context, req dto.RegisterCustomerRequest) (*domain.Customer, error) {
	if err := dto.Validate(req); err != nil {
		s.LogWarn(ctx, err, "Invalid register customer request")
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	customer, err := s.bank.RegisterCustomer(req.Name, req.Email)
	if err != nil {
		s.LogWarn(ctx, err, "Failed to register customer", slog.String("email", req.Email))
		return nil, err
	}

	s.LogInfo(ctx, "Customer registered", slog.String("customer_id", customer.CustomerID))
	return &customer, nil
}

// GetCustomer returns a copy of the customer.
func (s *BankService) GetCustomer(ctx context.Context, customerID string) (*domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	customer, err := s.bank.Customer(customerID)
	if err != nil {
		s.LogDebug(ctx, "Customer lookup failed", slog.String("customer_id", customerID))
		return nil, err
	}
	return &customer, nil
}

// ListCustomers returns every customer in registration order.
func (s *BankService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.bank.Customers(), nil
}

// SearchCustomers matches query against names and emails, ignoring case.
func (s *BankService) SearchCustomers(ctx context.Context, query string) ([]domain.Customer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	found := s.bank.SearchCustomers(query)
	s.LogDebug(ctx, "Customer search", slog.String("query", query), slog.Int("matches", len(found)))
	return found, nil
}
