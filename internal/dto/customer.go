package dto

// RegisterCustomerRequest defines the data needed to register a new customer.
type RegisterCustomerRequest struct {
	Name  string `json:"name" validate:"required,max=100"`
	Email string `json:"email" validate:"required,email,max=254"`
}
