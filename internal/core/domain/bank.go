package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/bank_ledger_app/internal/apperrors"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// BankState is the complete serializable state of a Bank at one instant.
// Customers and Accounts are in registration/opening order.
type BankState struct {
	Name      string     `json:"name"`
	Customers []Customer `json:"customers"`
	Accounts  []Account  `json:"accounts"`
}

// BankOption configures a Bank.
type BankOption func(*Bank)

// WithClock replaces the time source used to stamp new records.
func WithClock(now func() time.Time) BankOption {
	return func(b *Bank) {
		b.now = now
	}
}

// WithIDGenerator replaces the generator used for customer, account and transaction IDs.
func WithIDGenerator(newID func() string) BankOption {
	return func(b *Bank) {
		b.newID = newID
	}
}

// Bank is the aggregate root owning every customer and account.
//
// Bank is not safe for concurrent use; services.BankService serializes access to it.
// Every mutating method validates all of its preconditions before it changes anything,
// so a returned error always means no state was modified.
type Bank struct {
	name          string
	customers     map[string]*Customer
	accounts      map[string]*Account
	customerOrder []string
	accountOrder  []string
	now           func() time.Time
	newID         func() string
}

// NewBank creates an empty bank.
func NewBank(name string, opts ...BankOption) *Bank {
	b := &Bank{
		name:      name,
		customers: make(map[string]*Customer),
		accounts:  make(map[string]*Account),
		now:       func() time.Time { return time.Now().UTC() },
		newID:     uuid.NewString,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Name returns the bank's display name.
func (b *Bank) Name() string {
	return b.name
}

// RegisterCustomer adds a customer with no accounts. Emails are unique, ignoring case.
func (b *Bank) RegisterCustomer(name, email string) (Customer, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" {
		return Customer{}, fmt.Errorf("customer name is required: %w", apperrors.ErrValidation)
	}
	if email == "" {
		return Customer{}, fmt.Errorf("customer email is required: %w", apperrors.ErrValidation)
	}
	for _, existing := range b.customers {
		if strings.EqualFold(existing.Email, email) {
			return Customer{}, fmt.Errorf("customer with email '%s': %w", email, apperrors.ErrDuplicate)
		}
	}

	c := &Customer{
		CustomerID:   b.newID(),
		Name:         name,
		Email:        email,
		AccountIDs:   []string{},
		RegisteredAt: b.now(),
	}
	b.customers[c.CustomerID] = c
	b.customerOrder = append(b.customerOrder, c.CustomerID)
	return c.Clone(), nil
}

// OpenAccount creates an account for an existing customer. A positive initial
// deposit is recorded as the account's first DEPOSIT transaction.
func (b *Bank) OpenAccount(customerID string, initialDeposit decimal.Decimal) (Account, error) {
	if err := CheckAmount(initialDeposit); err != nil {
		return Account{}, fmt.Errorf("initial deposit: %w", err)
	}
	if initialDeposit.IsNegative() {
		return Account{}, fmt.Errorf("%w: initial deposit %s must not be negative", apperrors.ErrInvalidAmount, initialDeposit)
	}
	customer, ok := b.customers[customerID]
	if !ok {
		return Account{}, fmt.Errorf("%w: %s", apperrors.ErrCustomerNotFound, customerID)
	}

	now := b.now()
	acc := &Account{
		AccountID:  b.newID(),
		CustomerID: customer.CustomerID,
		Balance:    decimal.Zero,
		History:    []Transaction{},
		CreatedAt:  now,
	}
	if initialDeposit.IsPositive() {
		acc.apply(Transaction{
			TransactionID: b.newID(),
			Kind:          Deposit,
			Amount:        initialDeposit,
			Timestamp:     now,
		})
	}

	b.accounts[acc.AccountID] = acc
	b.accountOrder = append(b.accountOrder, acc.AccountID)
	customer.AccountIDs = append(customer.AccountIDs, acc.AccountID)
	return acc.Clone(), nil
}

// Deposit credits amount to the account. It cannot fail on balance grounds.
func (b *Bank) Deposit(accountID string, amount decimal.Decimal) (Transaction, error) {
	if err := validateAmount(amount); err != nil {
		return Transaction{}, err
	}
	acc, err := b.account(accountID)
	if err != nil {
		return Transaction{}, err
	}
	return acc.apply(Transaction{
		TransactionID: b.newID(),
		Kind:          Deposit,
		Amount:        amount,
		Timestamp:     b.now(),
	}), nil
}

// Withdraw debits amount from the account if the balance covers it.
func (b *Bank) Withdraw(accountID string, amount decimal.Decimal) (Transaction, error) {
	if err := validateAmount(amount); err != nil {
		return Transaction{}, err
	}
	acc, err := b.account(accountID)
	if err != nil {
		return Transaction{}, err
	}
	if err := acc.checkDebit(amount); err != nil {
		return Transaction{}, err
	}
	return acc.apply(Transaction{
		TransactionID: b.newID(),
		Kind:          Withdrawal,
		Amount:        amount,
		Timestamp:     b.now(),
	}), nil
}

// Transfer moves amount between two distinct accounts. Both legs are checked
// before either is applied; the returned records share TransferID and Timestamp.
func (b *Bank) Transfer(fromAccountID, toAccountID string, amount decimal.Decimal) (Transaction, Transaction, error) {
	if err := validateAmount(amount); err != nil {
		return Transaction{}, Transaction{}, err
	}
	if fromAccountID == toAccountID {
		return Transaction{}, Transaction{}, fmt.Errorf("%w: %s", apperrors.ErrSameAccountTransfer, fromAccountID)
	}
	from, err := b.account(fromAccountID)
	if err != nil {
		return Transaction{}, Transaction{}, fmt.Errorf("source %w", err)
	}
	to, err := b.account(toAccountID)
	if err != nil {
		return Transaction{}, Transaction{}, fmt.Errorf("destination %w", err)
	}
	if err := from.checkDebit(amount); err != nil {
		return Transaction{}, Transaction{}, err
	}

	now := b.now()
	transferID := b.newID()
	out := from.apply(Transaction{
		TransactionID:         b.newID(),
		Kind:                  TransferOut,
		Amount:                amount,
		Timestamp:             now,
		CounterpartyAccountID: to.AccountID,
		TransferID:            transferID,
	})
	in := to.apply(Transaction{
		TransactionID:         b.newID(),
		Kind:                  TransferIn,
		Amount:                amount,
		Timestamp:             now,
		CounterpartyAccountID: from.AccountID,
		TransferID:            transferID,
	})
	return out, in, nil
}

// Customer returns a copy of the customer.
func (b *Bank) Customer(customerID string) (Customer, error) {
	c, ok := b.customers[customerID]
	if !ok {
		return Customer{}, fmt.Errorf("%w: %s", apperrors.ErrCustomerNotFound, customerID)
	}
	return c.Clone(), nil
}

// Customers returns copies of all customers in registration order.
func (b *Bank) Customers() []Customer {
	out := make([]Customer, 0, len(b.customerOrder))
	for _, id := range b.customerOrder {
		out = append(out, b.customers[id].Clone())
	}
	return out
}

// SearchCustomers returns customers whose name or email contains query, ignoring case.
func (b *Bank) SearchCustomers(query string) []Customer {
	out := []Customer{}
	for _, id := range b.customerOrder {
		if c := b.customers[id]; c.Matches(query) {
			out = append(out, c.Clone())
		}
	}
	return out
}

// Account returns a copy of the account including its history.
func (b *Bank) Account(accountID string) (Account, error) {
	acc, err := b.account(accountID)
	if err != nil {
		return Account{}, err
	}
	return acc.Clone(), nil
}

// CustomerAccounts returns copies of the customer's accounts in opening order.
func (b *Bank) CustomerAccounts(customerID string) ([]Account, error) {
	c, ok := b.customers[customerID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrCustomerNotFound, customerID)
	}
	out := make([]Account, 0, len(c.AccountIDs))
	for _, id := range c.AccountIDs {
		out = append(out, b.mustAccount(id).Clone())
	}
	return out, nil
}

// History returns a copy of the account's transactions in commit order.
func (b *Bank) History(accountID string) ([]Transaction, error) {
	acc, err := b.account(accountID)
	if err != nil {
		return nil, err
	}
	out := make([]Transaction, len(acc.History))
	copy(out, acc.History)
	return out, nil
}

// Statistics aggregates the current state.
func (b *Bank) Statistics() Statistics {
	stats := Statistics{
		BankName:       b.name,
		TotalCustomers: len(b.customers),
		TotalAccounts:  len(b.accounts),
		TotalBalance:   decimal.Zero,
		TotalDeposited: decimal.Zero,
		TotalWithdrawn: decimal.Zero,
	}
	for _, id := range b.accountOrder {
		acc := b.accounts[id]
		stats.TotalBalance = stats.TotalBalance.Add(acc.Balance)
		stats.TotalTransactions += len(acc.History)
		stats.TotalDeposited = stats.TotalDeposited.Add(acc.TotalByKind(Deposit))
		stats.TotalWithdrawn = stats.TotalWithdrawn.Add(acc.TotalByKind(Withdrawal))
	}
	for _, id := range b.customerOrder {
		c := b.customers[id]
		if !c.HasAccounts() {
			stats.CustomersWithoutAccounts++
			continue
		}
		stats.CustomersWithAccounts++
		total := decimal.Zero
		for _, accID := range c.AccountIDs {
			total = total.Add(b.mustAccount(accID).Balance)
		}
		if stats.RichestCustomer == nil || total.GreaterThan(stats.RichestCustomer.Balance) {
			stats.RichestCustomer = &CustomerBalance{CustomerID: c.CustomerID, Name: c.Name, Balance: total}
		}
	}
	return stats
}

// State returns a deep copy of the bank suitable for persistence.
func (b *Bank) State() BankState {
	state := BankState{
		Name:      b.name,
		Customers: b.Customers(),
		Accounts:  make([]Account, 0, len(b.accountOrder)),
	}
	for _, id := range b.accountOrder {
		state.Accounts = append(state.Accounts, b.accounts[id].Clone())
	}
	return state
}

func (b *Bank) account(accountID string) (*Account, error) {
	acc, ok := b.accounts[accountID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrAccountNotFound, accountID)
	}
	return acc, nil
}

// mustAccount is for ids reached through a customer; a miss means the aggregate is already broken.
func (b *Bank) mustAccount(accountID string) *Account {
	acc, ok := b.accounts[accountID]
	if !ok {
		panic(fmt.Sprintf("bank invariant violated: account %s is referenced by a customer but does not exist", accountID))
	}
	return acc
}

func validateAmount(amount decimal.Decimal) error {
	if err := CheckAmount(amount); err != nil {
		return err
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%w: %s must be greater than zero", apperrors.ErrInvalidAmount, amount)
	}
	return nil
}
