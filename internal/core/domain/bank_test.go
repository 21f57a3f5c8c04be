package domain_test

import (
	"fmt"
	"math/rand"
	"testing"
	"time"

	"github.com/SscSPs/bank_ledger_app/internal/apperrors"
	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestBank() *domain.Bank {
	seq := 0
	return domain.NewBank("Test Bank",
		domain.WithClock(func() time.Time { return fixedNow }),
		domain.WithIDGenerator(func() string {
			seq++
			return fmt.Sprintf("id-%03d", seq)
		}),
	)
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.Truef(t, dec(expected).Equal(actual), "expected %s, got %s %v", expected, actual, msgAndArgs)
}

func TestBank_RegisterCustomer(t *testing.T) {
	bank := newTestBank()

	c, err := bank.RegisterCustomer("  Alice  ", "alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, "Alice", c.Name)
	assert.Equal(t, "alice@example.com", c.Email)
	assert.NotEmpty(t, c.CustomerID)
	assert.Empty(t, c.AccountIDs)
	assert.Equal(t, fixedNow, c.RegisteredAt)

	t.Run("duplicate email ignores case", func(t *testing.T) {
		_, err := bank.RegisterCustomer("Alice Two", "ALICE@example.com")
		assert.ErrorIs(t, err, apperrors.ErrDuplicate)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := bank.RegisterCustomer("   ", "x@example.com")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("empty email", func(t *testing.T) {
		_, err := bank.RegisterCustomer("Xavier", "")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	assert.Len(t, bank.Customers(), 1)
}

func TestBank_OpenAccount(t *testing.T) {
	bank := newTestBank()
	alice, err := bank.RegisterCustomer("Alice", "alice@example.com")
	require.NoError(t, err)

	t.Run("with initial deposit", func(t *testing.T) {
		acc, err := bank.OpenAccount(alice.CustomerID, dec("100"))
		require.NoError(t, err)
		assert.Equal(t, alice.CustomerID, acc.CustomerID)
		assertDecimal(t, "100", acc.Balance)
		require.Len(t, acc.History, 1)
		assert.Equal(t, domain.Deposit, acc.History[0].Kind)
		assertDecimal(t, "100", acc.History[0].BalanceAfter)
		assert.Equal(t, acc.CreatedAt, acc.History[0].Timestamp)
	})

	t.Run("zero initial deposit has empty history", func(t *testing.T) {
		acc, err := bank.OpenAccount(alice.CustomerID, decimal.Zero)
		require.NoError(t, err)
		assert.True(t, acc.Balance.IsZero())
		assert.Empty(t, acc.History)
	})

	t.Run("negative initial deposit", func(t *testing.T) {
		_, err := bank.OpenAccount(alice.CustomerID, dec("-1"))
		assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	})

	t.Run("unknown customer", func(t *testing.T) {
		_, err := bank.OpenAccount("nobody", dec("10"))
		assert.ErrorIs(t, err, apperrors.ErrCustomerNotFound)
		assert.ErrorIs(t, err, apperrors.ErrNotFound)
	})

	c, err := bank.Customer(alice.CustomerID)
	require.NoError(t, err)
	assert.Len(t, c.AccountIDs, 2, "failed opens must not attach accounts")

	accounts, err := bank.CustomerAccounts(alice.CustomerID)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, c.AccountIDs[0], accounts[0].AccountID)
	assert.Equal(t, c.AccountIDs[1], accounts[1].AccountID)
}

func TestBank_DepositAndWithdraw(t *testing.T) {
	bank := newTestBank()
	alice, _ := bank.RegisterCustomer("Alice", "alice@example.com")
	acc, _ := bank.OpenAccount(alice.CustomerID, dec("100"))

	tx, err := bank.Deposit(acc.AccountID, dec("50"))
	require.NoError(t, err)
	assert.Equal(t, domain.Deposit, tx.Kind)
	assertDecimal(t, "150", tx.BalanceAfter)

	_, err = bank.Withdraw(acc.AccountID, dec("200"))
	require.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
	var insufficient *apperrors.InsufficientFundsError
	require.ErrorAs(t, err, &insufficient)
	assertDecimal(t, "150", insufficient.Available)
	assertDecimal(t, "200", insufficient.Requested)

	got, _ := bank.Account(acc.AccountID)
	assertDecimal(t, "150", got.Balance)
	assert.Len(t, got.History, 2, "refused withdrawal must not be recorded")

	tx, err = bank.Withdraw(acc.AccountID, dec("150"))
	require.NoError(t, err)
	assert.True(t, tx.BalanceAfter.IsZero(), "withdrawing the exact balance is allowed")

	tests := []struct {
		name    string
		op      func() error
		wantErr error
	}{
		{"deposit zero", func() error { _, err := bank.Deposit(acc.AccountID, decimal.Zero); return err }, apperrors.ErrInvalidAmount},
		{"deposit negative", func() error { _, err := bank.Deposit(acc.AccountID, dec("-5")); return err }, apperrors.ErrInvalidAmount},
		{"withdraw zero", func() error { _, err := bank.Withdraw(acc.AccountID, decimal.Zero); return err }, apperrors.ErrInvalidAmount},
		{"deposit tiny exponent", func() error { _, err := bank.Deposit(acc.AccountID, dec("1e-5000000")); return err }, apperrors.ErrInvalidAmount},
		{"deposit sub-cent", func() error { _, err := bank.Deposit(acc.AccountID, dec("0.001")); return err }, apperrors.ErrInvalidAmount},
		{"deposit above limit", func() error { _, err := bank.Deposit(acc.AccountID, dec("1000000000000.01")); return err }, apperrors.ErrInvalidAmount},
		{"withdraw huge exponent", func() error { _, err := bank.Withdraw(acc.AccountID, dec("1e2000000000")); return err }, apperrors.ErrInvalidAmount},
		{"transfer sub-cent", func() error { _, _, err := bank.Transfer(acc.AccountID, "missing", dec("1.005")); return err }, apperrors.ErrInvalidAmount},
		{"open account tiny exponent", func() error { _, err := bank.OpenAccount(acc.CustomerID, dec("1e-2000000000")); return err }, apperrors.ErrInvalidAmount},
		{"deposit unknown account", func() error { _, err := bank.Deposit("missing", dec("5")); return err }, apperrors.ErrAccountNotFound},
		{"withdraw unknown account", func() error { _, err := bank.Withdraw("missing", dec("5")); return err }, apperrors.ErrAccountNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.op(), tt.wantErr)
		})
	}

	history, err := bank.History(acc.AccountID)
	require.NoError(t, err)
	assert.Len(t, history, 3)
}

func TestBank_Transfer(t *testing.T) {
	bank := newTestBank()
	alice, _ := bank.RegisterCustomer("Alice", "alice@example.com")
	bob, _ := bank.RegisterCustomer("Bob", "bob@example.com")
	a1, _ := bank.OpenAccount(alice.CustomerID, dec("100"))
	b1, _ := bank.OpenAccount(bob.CustomerID, dec("50"))

	out, in, err := bank.Transfer(a1.AccountID, b1.AccountID, dec("30"))
	require.NoError(t, err)
	assert.Equal(t, domain.TransferOut, out.Kind)
	assert.Equal(t, domain.TransferIn, in.Kind)
	assert.Equal(t, out.TransferID, in.TransferID)
	assert.Equal(t, out.Timestamp, in.Timestamp)
	assert.Equal(t, b1.AccountID, out.CounterpartyAccountID)
	assert.Equal(t, a1.AccountID, in.CounterpartyAccountID)
	assertDecimal(t, "70", out.BalanceAfter)
	assertDecimal(t, "80", in.BalanceAfter)

	t.Run("insufficient funds changes nothing", func(t *testing.T) {
		_, _, err := bank.Transfer(a1.AccountID, b1.AccountID, dec("70.01"))
		assert.ErrorIs(t, err, apperrors.ErrInsufficientFunds)
		assertBalances(t, bank, map[string]string{a1.AccountID: "70", b1.AccountID: "80"})
	})

	t.Run("same account", func(t *testing.T) {
		_, _, err := bank.Transfer(a1.AccountID, a1.AccountID, dec("1"))
		assert.ErrorIs(t, err, apperrors.ErrSameAccountTransfer)
	})

	t.Run("invalid amount is reported before missing accounts", func(t *testing.T) {
		_, _, err := bank.Transfer("missing", "other", decimal.Zero)
		assert.ErrorIs(t, err, apperrors.ErrInvalidAmount)
	})

	t.Run("unknown source", func(t *testing.T) {
		_, _, err := bank.Transfer("missing", b1.AccountID, dec("1"))
		assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)
		assert.Contains(t, err.Error(), "source")
	})

	t.Run("unknown destination leaves source untouched", func(t *testing.T) {
		_, _, err := bank.Transfer(a1.AccountID, "missing", dec("1"))
		assert.ErrorIs(t, err, apperrors.ErrAccountNotFound)
		assert.Contains(t, err.Error(), "destination")
		assertBalances(t, bank, map[string]string{a1.AccountID: "70", b1.AccountID: "80"})
	})

	ah, _ := bank.History(a1.AccountID)
	bh, _ := bank.History(b1.AccountID)
	assert.Len(t, ah, 2)
	assert.Len(t, bh, 2)
}

func TestBank_Search(t *testing.T) {
	bank := newTestBank()
	_, _ = bank.RegisterCustomer("Alice Smith", "alice@example.com")
	_, _ = bank.RegisterCustomer("Bob Jones", "bob@smithco.com")
	_, _ = bank.RegisterCustomer("Carol", "carol@example.org")

	tests := []struct {
		query string
		want  []string
	}{
		{"smith", []string{"Alice Smith", "Bob Jones"}},
		{"EXAMPLE", []string{"Alice Smith", "Carol"}},
		{"zed", []string{}},
		{"", []string{"Alice Smith", "Bob Jones", "Carol"}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			names := []string{}
			for _, c := range bank.SearchCustomers(tt.query) {
				names = append(names, c.Name)
			}
			assert.Equal(t, tt.want, names)
		})
	}
}

func TestBank_Statistics(t *testing.T) {
	bank := newTestBank()

	empty := bank.Statistics()
	assert.Equal(t, "Test Bank", empty.BankName)
	assert.Zero(t, empty.TotalCustomers)
	assert.True(t, empty.TotalBalance.IsZero())
	assert.Nil(t, empty.RichestCustomer)

	alice, _ := bank.RegisterCustomer("Alice", "alice@example.com")
	bob, _ := bank.RegisterCustomer("Bob", "bob@example.com")
	_, _ = bank.RegisterCustomer("Carol", "carol@example.com")
	a1, _ := bank.OpenAccount(alice.CustomerID, dec("100"))
	b1, _ := bank.OpenAccount(bob.CustomerID, dec("50"))
	_, err := bank.Withdraw(a1.AccountID, dec("20"))
	require.NoError(t, err)
	_, _, err = bank.Transfer(a1.AccountID, b1.AccountID, dec("5"))
	require.NoError(t, err)

	stats := bank.Statistics()
	assert.Equal(t, 3, stats.TotalCustomers)
	assert.Equal(t, 2, stats.TotalAccounts)
	assert.Equal(t, 5, stats.TotalTransactions)
	assert.Equal(t, 2, stats.CustomersWithAccounts)
	assert.Equal(t, 1, stats.CustomersWithoutAccounts)
	assertDecimal(t, "130", stats.TotalBalance)
	assertDecimal(t, "150", stats.TotalDeposited)
	assertDecimal(t, "20", stats.TotalWithdrawn)
	require.NotNil(t, stats.RichestCustomer)
	assert.Equal(t, alice.CustomerID, stats.RichestCustomer.CustomerID)
	assertDecimal(t, "75", stats.RichestCustomer.Balance)

	t.Run("tie keeps the earliest registered customer", func(t *testing.T) {
		_, err := bank.Deposit(b1.AccountID, dec("20"))
		require.NoError(t, err)
		stats := bank.Statistics()
		require.NotNil(t, stats.RichestCustomer)
		assert.Equal(t, alice.CustomerID, stats.RichestCustomer.CustomerID)
	})
}

func TestAccount_Summary(t *testing.T) {
	bank := newTestBank()
	alice, _ := bank.RegisterCustomer("Alice", "alice@example.com")
	bob, _ := bank.RegisterCustomer("Bob", "bob@example.com")
	a1, _ := bank.OpenAccount(alice.CustomerID, dec("100"))
	b1, _ := bank.OpenAccount(bob.CustomerID, decimal.Zero)
	_, _ = bank.Withdraw(a1.AccountID, dec("10.50"))
	_, _, _ = bank.Transfer(a1.AccountID, b1.AccountID, dec("25"))
	_, _, _ = bank.Transfer(b1.AccountID, a1.AccountID, dec("5"))

	acc, _ := bank.Account(a1.AccountID)
	summary := acc.Summary()
	assert.Equal(t, a1.AccountID, summary.AccountID)
	assert.Equal(t, 4, summary.TransactionCount)
	assertDecimal(t, "69.50", summary.Balance)
	assertDecimal(t, "100", summary.TotalDeposits)
	assertDecimal(t, "10.50", summary.TotalWithdrawals)
	assertDecimal(t, "5", summary.TotalTransfersIn)
	assertDecimal(t, "25", summary.TotalTransfersOut)
}

func TestBank_ReturnedValuesAreCopies(t *testing.T) {
	bank := newTestBank()
	alice, _ := bank.RegisterCustomer("Alice", "alice@example.com")
	acc, _ := bank.OpenAccount(alice.CustomerID, dec("10"))

	got, _ := bank.Account(acc.AccountID)
	got.History[0].Amount = dec("9999")
	got.Balance = dec("9999")

	c, _ := bank.Customer(alice.CustomerID)
	c.AccountIDs[0] = "hijacked"

	fresh, _ := bank.Account(acc.AccountID)
	assertDecimal(t, "10", fresh.Balance)
	assertDecimal(t, "10", fresh.History[0].Amount)
	accounts, err := bank.CustomerAccounts(alice.CustomerID)
	require.NoError(t, err)
	assert.Equal(t, acc.AccountID, accounts[0].AccountID)
}

// TestBank_RandomOperationsConserveMoney drives a random mix of operations and
// checks that balances stay non-negative, each history replays to its balance,
// and the bank total equals deposits minus withdrawals.
func TestBank_RandomOperationsConserveMoney(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	bank := domain.NewBank("Property Bank")

	var accountIDs []string
	for i := 0; i < 4; i++ {
		c, err := bank.RegisterCustomer(fmt.Sprintf("Customer %d", i), fmt.Sprintf("c%d@example.com", i))
		require.NoError(t, err)
		acc, err := bank.OpenAccount(c.CustomerID, decimal.NewFromInt(int64(rng.Intn(200))))
		require.NoError(t, err)
		accountIDs = append(accountIDs, acc.AccountID)
	}

	pick := func() string { return accountIDs[rng.Intn(len(accountIDs))] }
	amount := func() decimal.Decimal { return decimal.New(int64(rng.Intn(20000)), -2) }

	for i := 0; i < 500; i++ {
		switch rng.Intn(3) {
		case 0:
			_, _ = bank.Deposit(pick(), amount())
		case 1:
			_, _ = bank.Withdraw(pick(), amount())
		default:
			_, _, _ = bank.Transfer(pick(), pick(), amount())
		}
	}

	stats := bank.Statistics()
	assert.True(t, stats.TotalDeposited.Sub(stats.TotalWithdrawn).Equal(stats.TotalBalance),
		"deposited %s - withdrawn %s != balance %s", stats.TotalDeposited, stats.TotalWithdrawn, stats.TotalBalance)

	transfersIn, transfersOut := decimal.Zero, decimal.Zero
	for _, id := range accountIDs {
		acc, err := bank.Account(id)
		require.NoError(t, err)
		assert.False(t, acc.Balance.IsNegative())

		running := decimal.Zero
		for _, tx := range acc.History {
			if tx.Kind.IsCredit() {
				running = running.Add(tx.Amount)
			} else {
				running = running.Sub(tx.Amount)
			}
			assert.True(t, running.Equal(tx.BalanceAfter), "tx %s balance after", tx.TransactionID)
		}
		assert.True(t, running.Equal(acc.Balance), "account %s replay", id)

		transfersIn = transfersIn.Add(acc.TotalByKind(domain.TransferIn))
		transfersOut = transfersOut.Add(acc.TotalByKind(domain.TransferOut))
	}
	assert.True(t, transfersIn.Equal(transfersOut))
}

func assertBalances(t *testing.T, bank *domain.Bank, want map[string]string) {
	t.Helper()
	for id, expected := range want {
		acc, err := bank.Account(id)
		require.NoError(t, err)
		assertDecimal(t, expected, acc.Balance, id)
	}
}
