package apperrors

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrPersistence indicates that the snapshot store could not be read or written.
var ErrPersistence = errors.New("persistence error")

var (
	ErrCustomerNotFound    = newKind("customer not found", ErrNotFound)
	ErrAccountNotFound     = newKind("account not found", ErrNotFound)
	ErrInvalidAmount       = newKind("invalid amount", ErrValidation)
	ErrSameAccountTransfer = newKind("cannot transfer to the same account", ErrValidation)
	ErrCorruptSnapshot     = newKind("corrupt snapshot", ErrPersistence)

	// ErrInsufficientFunds is matched by every InsufficientFundsError.
	ErrInsufficientFunds = errors.New("insufficient funds")
)

// kindError is a sentinel that also satisfies errors.Is for a broader sentinel.
type kindError struct {
	msg    string
	parent error
}

func newKind(msg string, parent error) error {
	return &kindError{msg: msg, parent: parent}
}

func (e *kindError) Error() string { return e.msg }

func (e *kindError) Unwrap() error { return e.parent }

// InsufficientFundsError carries the balance that was available when a debit was refused.
type InsufficientFundsError struct {
	AccountID string
	Available decimal.Decimal
	Requested decimal.Decimal
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds in account %s: available %s, requested %s",
		e.AccountID, e.Available.StringFixed(2), e.Requested.StringFixed(2))
}

// Is lets errors.Is(err, ErrInsufficientFunds) match.
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}
