package handlers

import (
	"context"

	"github.com/SscSPs/bank_ledger_app/internal/dto"
	"github.com/SscSPs/bank_ledger_app/internal/utils"
	"github.com/shopspring/decimal"
)

func (c *Console) openAccount(ctx context.Context) error {
	customerID, err := c.prompt("Enter customer ID: ")
	if err != nil {
		return err
	}
	zero := decimal.Zero
	initial, err := c.readAmount("Enter initial deposit amount (blank for 0): ", &zero)
	if err != nil {
		return err
	}

	account, err := c.services.Account.OpenAccount(ctx, dto.OpenAccountRequest{CustomerID: customerID, InitialDeposit: initial})
	if err != nil {
		return err
	}

	c.printf("\nAccount created successfully!\n")
	c.printf("Account ID: %s\n", account.AccountID)
	c.printf("Initial Balance: %s\n\n", utils.FormatAmount(account.Balance))
	return nil
}

func (c *Console) transactionHistory(ctx context.Context) error {
	accountID, err := c.prompt("Enter account ID: ")
	if err != nil {
		return err
	}

	history, err := c.services.Transaction.GetTransactionHistory(ctx, accountID)
	if err != nil {
		return err
	}
	if len(history) == 0 {
		c.printf("\nNo transactions yet.\n\n")
		return nil
	}

	c.printf("\nTransaction History for %s:\n", accountID)
	for i, tx := range history {
		c.printf("%d. %s\n", i+1, describeTransaction(tx))
	}
	c.println()
	return nil
}
