package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/bank_ledger_app/internal/adapters/storage/memory"
	"github.com/SscSPs/bank_ledger_app/internal/core/services"
	"github.com/SscSPs/bank_ledger_app/internal/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewServiceContainer_SharesOneBank(t *testing.T) {
	ctx := context.Background()
	container := services.NewServiceContainer(services.NewBankService("Shared", memory.NewSnapshotRepository()))

	c, err := container.Customer.RegisterCustomer(ctx, dto.RegisterCustomerRequest{Name: "Alice", Email: "alice@example.com"})
	require.NoError(t, err)
	acc, err := container.Account.OpenAccount(ctx, dto.OpenAccountRequest{CustomerID: c.CustomerID})
	require.NoError(t, err)

	history, err := container.Transaction.GetTransactionHistory(ctx, acc.AccountID)
	require.NoError(t, err)
	assert.Empty(t, history)

	stats, err := container.Reporting.GetBankStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, stats.TotalAccounts)
	assert.NoError(t, container.Persistence.Save(ctx))
}
