package handlers

import (
	"context"

	"github.com/SscSPs/bank_ledger_app/internal/utils"
)

func (c *Console) bankStatistics(ctx context.Context) error {
	stats, err := c.services.Reporting.GetBankStatistics(ctx)
	if err != nil {
		return err
	}

	c.printf("\n%s\n", bankSummary(stats))
	c.printf("Total Deposited: %s\n", utils.FormatAmount(stats.TotalDeposited))
	c.printf("Total Withdrawn: %s\n", utils.FormatAmount(stats.TotalWithdrawn))
	c.printf("Customers with Accounts: %d\n", stats.CustomersWithAccounts)
	c.printf("Customers without Accounts: %d\n", stats.CustomersWithoutAccounts)
	if stats.RichestCustomer != nil {
		c.printf("Richest Customer: %s (%s)\n", stats.RichestCustomer.Name, utils.FormatAmount(stats.RichestCustomer.Balance))
	}
	c.println()
	return nil
}

func (c *Console) save(ctx context.Context) error {
	if err := c.services.Persistence.Save(ctx); err != nil {
		return err
	}
	c.printf("\nData saved successfully!\n\n")
	return nil
}
