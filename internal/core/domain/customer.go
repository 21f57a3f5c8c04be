package domain

import (
	"strings"
	"time"
)

// Customer is an identity that owns zero or more accounts.
type Customer struct {
	CustomerID   string    `json:"customerID"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	AccountIDs   []string  `json:"accountIDs"` // Opening order
	RegisteredAt time.Time `json:"registeredAt"`
}

// HasAccounts reports whether the customer owns at least one account.
func (c Customer) HasAccounts() bool {
	return len(c.AccountIDs) > 0
}

// Clone returns a copy that shares no memory with c.
func (c Customer) Clone() Customer {
	cp := c
	cp.AccountIDs = make([]string, len(c.AccountIDs))
	copy(cp.AccountIDs, c.AccountIDs)
	return cp
}

// Matches reports whether query is a case-insensitive substring of the name or email.
func (c Customer) Matches(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	return strings.Contains(strings.ToLower(c.Name), q) ||
		strings.Contains(strings.ToLower(c.Email), q)
}
