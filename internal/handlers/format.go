package handlers

import (
	"fmt"

	"github.com/SscSPs/bank_ledger_app/internal/apperrors"
	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	"github.com/SscSPs/bank_ledger_app/internal/utils"
	"github.com/shopspring/decimal"
)

const timestampLayout = "2006-01-02 15:04:05"

// readAmount prompts for a decimal amount. An empty answer yields fallback when
// one is given.
func (c *Console) readAmount(question string, fallback *decimal.Decimal) (decimal.Decimal, error) {
	raw, err := c.prompt(question)
	if err != nil {
		return decimal.Zero, err
	}
	if raw == "" && fallback != nil {
		return *fallback, nil
	}
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: '%s' is not a number", apperrors.ErrInvalidAmount, raw)
	}
	if err := domain.CheckAmount(amount); err != nil {
		return decimal.Zero, err
	}
	return amount, nil
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func describeTransaction(tx domain.Transaction) string {
	kind := string(tx.Kind)
	switch tx.Kind {
	case domain.TransferOut:
		kind = fmt.Sprintf("TRANSFER to %s", shortID(tx.CounterpartyAccountID))
	case domain.TransferIn:
		kind = fmt.Sprintf("TRANSFER from %s", shortID(tx.CounterpartyAccountID))
	}
	return fmt.Sprintf("[%s] %s %s - Balance: %s",
		tx.Timestamp.Format(timestampLayout), kind, utils.FormatAmount(tx.Amount), utils.FormatAmount(tx.BalanceAfter))
}

func customerLine(cust domain.Customer) string {
	return fmt.Sprintf("%s <%s> [%s], accounts: %d", cust.Name, cust.Email, cust.CustomerID, len(cust.AccountIDs))
}

func bankSummary(stats *domain.Statistics) string {
	return fmt.Sprintf("Bank: %s, Customers: %d, Accounts: %d, Total Balance: %s, Transactions: %d",
		stats.BankName, stats.TotalCustomers, stats.TotalAccounts, utils.FormatAmount(stats.TotalBalance), stats.TotalTransactions)
}
