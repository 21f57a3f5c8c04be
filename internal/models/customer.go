package models

import "time"

// Customer is the snapshot record of a registered customer.
type Customer struct {
	CustomerID   string    `json:"customer_id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	AccountIDs   []string  `json:"account_ids"`
	RegisteredAt time.Time `json:"registered_at"`
}
