package handlers

import (
	"context"

	"github.com/SscSPs/bank_ledger_app/internal/dto"
	"github.com/SscSPs/bank_ledger_app/internal/utils"
)

func (c *Console) deposit(ctx context.Context) error {
	accountID, err := c.prompt("Enter account ID: ")
	if err != nil {
		return err
	}
	amount, err := c.readAmount("Enter amount to deposit: ", nil)
	if err != nil {
		return err
	}

	tx, err := c.services.Transaction.Deposit(ctx, dto.AmountRequest{AccountID: accountID, Amount: amount})
	if err != nil {
		return err
	}

	c.printf("\nDeposit successful!\n")
	c.printf("New Balance: %s\n\n", utils.FormatAmount(tx.BalanceAfter))
	return nil
}

func (c *Console) withdraw(ctx context.Context) error {
	accountID, err := c.prompt("Enter account ID: ")
	if err != nil {
		return err
	}
	amount, err := c.readAmount("Enter amount to withdraw: ", nil)
	if err != nil {
		return err
	}

	tx, err := c.services.Transaction.Withdraw(ctx, dto.AmountRequest{AccountID: accountID, Amount: amount})
	if err != nil {
		return err
	}

	c.printf("\nWithdrawal successful!\n")
	c.printf("New Balance: %s\n\n", utils.FormatAmount(tx.BalanceAfter))
	return nil
}

func (c *Console) transfer(ctx context.Context) error {
	fromID, err := c.prompt("Enter source account ID: ")
	if err != nil {
		return err
	}
	toID, err := c.prompt("Enter destination account ID: ")
	if err != nil {
		return err
	}
	amount, err := c.readAmount("Enter amount to transfer: ", nil)
	if err != nil {
		return err
	}

	out, in, err := c.services.Transaction.Transfer(ctx, dto.TransferRequest{
		FromAccountID: fromID,
		ToAccountID:   toID,
		Amount:        amount,
	})
	if err != nil {
		return err
	}

	c.printf("\nTransfer successful!\n")
	c.printf("%s transferred\n", utils.FormatAmount(out.Amount))
	c.printf("Source balance: %s\n", utils.FormatAmount(out.BalanceAfter))
	c.printf("Destination balance: %s\n\n", utils.FormatAmount(in.BalanceAfter))
	return nil
}
