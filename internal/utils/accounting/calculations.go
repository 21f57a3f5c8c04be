package accounting

import (
	"fmt"

	"github.com/SscSPs/bank_ledger_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CalculateSignedAmount returns the transaction amount with the sign it has on the owning account's balance.
// Credits (DEPOSIT, TRANSFER_IN) are positive, debits (WITHDRAWAL, TRANSFER_OUT) are negative.
func CalculateSignedAmount(txn domain.Transaction) (decimal.Decimal, error) {
	if !txn.Kind.IsValid() {
		return decimal.Zero, fmt.Errorf("unknown transaction kind '%s' encountered for transaction ID %s", txn.Kind, txn.TransactionID)
	}
	if txn.Kind.IsCredit() {
		return txn.Amount, nil
	}
	return txn.Amount.Neg(), nil
}

// ValidateAccountHistory replays the account's history from zero and checks that every
// BalanceAfter matches the running balance and that the final balance matches the account.
func ValidateAccountHistory(acc domain.Account) error {
	running := decimal.Zero

	for _, txn := range acc.History {
		signedAmount, err := CalculateSignedAmount(txn)
		if err != nil {
			return fmt.Errorf("account %s: %w", acc.AccountID, err)
		}

		running = running.Add(signedAmount)
		if running.IsNegative() {
			return fmt.Errorf("account %s: balance goes negative (%s) at transaction %s", acc.AccountID, running.String(), txn.TransactionID)
		}
		if !running.Equal(txn.BalanceAfter) {
			return fmt.Errorf("account %s: transaction %s records balance %s but replay gives %s",
				acc.AccountID, txn.TransactionID, txn.BalanceAfter.String(), running.String())
		}
	}

	if !running.Equal(acc.Balance) {
		return fmt.Errorf("account %s: balance is %s but history sums to %s", acc.AccountID, acc.Balance.String(), running.String())
	}

	return nil
}

// ValidateTransferPairs checks that every transfer leg has exactly one matching opposite leg:
// same TransferID, amount and timestamp, with each side naming the other as counterparty.
func ValidateTransferPairs(accounts []domain.Account) error {
	type leg struct {
		accountID string
		txn       domain.Transaction
	}
	outs := make(map[string]leg)
	ins := make(map[string]leg)

	for _, acc := range accounts {
		for _, txn := range acc.History {
			var target map[string]leg
			switch txn.Kind {
			case domain.TransferOut:
				target = outs
			case domain.TransferIn:
				target = ins
			default:
				continue
			}
			if _, dup := target[txn.TransferID]; dup {
				return fmt.Errorf("transfer %s has more than one %s leg", txn.TransferID, txn.Kind)
			}
			target[txn.TransferID] = leg{accountID: acc.AccountID, txn: txn}
		}
	}

	for transferID, out := range outs {
		in, ok := ins[transferID]
		if !ok {
			return fmt.Errorf("transfer %s has no %s leg", transferID, domain.TransferIn)
		}
		if !out.txn.Amount.Equal(in.txn.Amount) {
			return fmt.Errorf("transfer %s legs disagree on amount: %s vs %s", transferID, out.txn.Amount.String(), in.txn.Amount.String())
		}
		if !out.txn.Timestamp.Equal(in.txn.Timestamp) {
			return fmt.Errorf("transfer %s legs disagree on timestamp", transferID)
		}
		if out.txn.CounterpartyAccountID != in.accountID || in.txn.CounterpartyAccountID != out.accountID {
			return fmt.Errorf("transfer %s legs do not reference each other", transferID)
		}
	}
	for transferID := range ins {
		if _, ok := outs[transferID]; !ok {
			return fmt.Errorf("transfer %s has no %s leg", transferID, domain.TransferOut)
		}
	}

	return nil
}
