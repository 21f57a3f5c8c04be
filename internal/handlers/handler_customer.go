package handlers

import (
	"context"

	"github.com/SscSPs/bank_ledger_app/internal/dto"
	"github.com/SscSPs/bank_ledger_app/internal/utils"
)

func (c *Console) registerCustomer(ctx context.Context) error {
	name, err := c.prompt("Enter customer name: ")
	if err != nil {
		return err
	}
	email, err := c.prompt("Enter customer email: ")
	if err != nil {
		return err
	}

	customer, err := c.services.Customer.RegisterCustomer(ctx, dto.RegisterCustomerRequest{Name: name, Email: email})
	if err != nil {
		return err
	}

	c.printf("\nCustomer registered successfully!\n")
	c.printf("Customer ID: %s\n\n", customer.CustomerID)
	return nil
}

func (c *Console) customerDetails(ctx context.Context) error {
	customerID, err := c.prompt("Enter customer ID: ")
	if err != nil {
		return err
	}

	customer, err := c.services.Customer.GetCustomer(ctx, customerID)
	if err != nil {
		return err
	}
	accounts, err := c.services.Account.ListCustomerAccounts(ctx, customerID)
	if err != nil {
		return err
	}

	c.printf("\nCustomer: %s\n", customer.Name)
	c.printf("Email: %s\n", customer.Email)
	c.printf("Customer ID: %s\n", customer.CustomerID)
	c.printf("Registered: %s\n", customer.RegisteredAt.Format(timestampLayout))

	if len(accounts) == 0 {
		c.printf("\nNo accounts yet.\n\n")
		return nil
	}
	for _, acc := range accounts {
		summary := acc.Summary()
		c.printf("\nAccount %s\n", acc.AccountID)
		c.printf("  Balance: %s\n", utils.FormatAmount(summary.Balance))
		c.printf("  Total Deposits: %s\n", utils.FormatAmount(summary.TotalDeposits))
		c.printf("  Total Withdrawals: %s\n", utils.FormatAmount(summary.TotalWithdrawals))
		c.printf("  Transfers In: %s\n", utils.FormatAmount(summary.TotalTransfersIn))
		c.printf("  Transfers Out: %s\n", utils.FormatAmount(summary.TotalTransfersOut))
		c.printf("  Transaction Count: %d\n", summary.TransactionCount)
	}
	c.println()
	return nil
}

func (c *Console) listCustomers(ctx context.Context) error {
	customers, err := c.services.Customer.ListCustomers(ctx)
	if err != nil {
		return err
	}
	if len(customers) == 0 {
		c.printf("\nNo customers registered yet.\n\n")
		return nil
	}

	c.printf("\nTotal Customers: %d\n", len(customers))
	for _, customer := range customers {
		c.printf("  - %s\n", customerLine(customer))
	}
	c.println()
	return nil
}

func (c *Console) searchCustomers(ctx context.Context) error {
	query, err := c.prompt("Enter search query (name or email): ")
	if err != nil {
		return err
	}

	found, err := c.services.Customer.SearchCustomers(ctx, query)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		c.printf("\nNo customers found matching '%s'\n\n", query)
		return nil
	}

	c.printf("\nFound %d customer(s):\n", len(found))
	for _, customer := range found {
		c.printf("  - %s\n", customerLine(customer))
	}
	c.println()
	return nil
}
