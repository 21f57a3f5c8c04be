package apperrors_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/SscSPs/bank_ledger_app/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestErrorKinds(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		target error
	}{
		{"customer not found is not found", apperrors.ErrCustomerNotFound, apperrors.ErrNotFound},
		{"account not found is not found", apperrors.ErrAccountNotFound, apperrors.ErrNotFound},
		{"invalid amount is validation", apperrors.ErrInvalidAmount, apperrors.ErrValidation},
		{"same account is validation", apperrors.ErrSameAccountTransfer, apperrors.ErrValidation},
		{"corrupt snapshot is persistence", apperrors.ErrCorruptSnapshot, apperrors.ErrPersistence},
		{"wrapped account not found", fmt.Errorf("%w: abc", apperrors.ErrAccountNotFound), apperrors.ErrNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, tt.target)
		})
	}

	assert.False(t, errors.Is(apperrors.ErrCustomerNotFound, apperrors.ErrAccountNotFound))
	assert.False(t, errors.Is(apperrors.ErrInvalidAmount, apperrors.ErrNotFound))
	assert.Equal(t, "account not found: abc", fmt.Errorf("%w: abc", apperrors.ErrAccountNotFound).Error())
}

func TestInsufficientFundsError(t *testing.T) {
	var err error = &apperrors.InsufficientFundsError{
		AccountID: "acc-1",
		Available: decimal.RequireFromString("150"),
		Requested: decimal.RequireFromString("200"),
	}
	wrapped := fmt.Errorf("withdraw: %w", err)

	assert.ErrorIs(t, wrapped, apperrors.ErrInsufficientFunds)
	assert.NotErrorIs(t, wrapped, apperrors.ErrValidation)

	var target *apperrors.InsufficientFundsError
	if assert.ErrorAs(t, wrapped, &target) {
		assert.True(t, target.Available.Equal(decimal.NewFromInt(150)))
		assert.True(t, target.Requested.Equal(decimal.NewFromInt(200)))
	}
	assert.Equal(t, "insufficient funds in account acc-1: available 150.00, requested 200.00", err.Error())
}
