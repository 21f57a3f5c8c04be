package domain

import (
	"github.com/shopspring/decimal"
)

// CustomerBalance is a customer's combined balance over all owned accounts.
type CustomerBalance struct {
	CustomerID string          `json:"customerID"`
	Name       string          `json:"name"`
	Balance    decimal.Decimal `json:"balance"`
}

// Statistics is a point-in-time aggregation over the whole bank.
// TotalBalance always equals TotalDeposited minus TotalWithdrawn.
type Statistics struct {
	BankName                 string           `json:"bankName"`
	TotalCustomers           int              `json:"totalCustomers"`
	TotalAccounts            int              `json:"totalAccounts"`
	TotalBalance             decimal.Decimal  `json:"totalBalance"`
	TotalTransactions        int              `json:"totalTransactions"`
	TotalDeposited           decimal.Decimal  `json:"totalDeposited"`
	TotalWithdrawn           decimal.Decimal  `json:"totalWithdrawn"`
	CustomersWithAccounts    int              `json:"customersWithAccounts"`
	CustomersWithoutAccounts int              `json:"customersWithoutAccounts"`
	RichestCustomer          *CustomerBalance `json:"richestCustomer,omitempty"` // Nil when no customer owns an account
}
