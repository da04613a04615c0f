package models

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// DefaultCreditLimit applies when an account is opened without an explicit limit.
var DefaultCreditLimit = decimal.NewFromInt(1000)

type Wallet struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	Balance     decimal.Decimal `json:"balance"`
	Credit      decimal.Decimal `json:"credit"`
	CreditLimit decimal.Decimal `json:"credit_limit"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
}

// NewWallet opens a wallet with no credit drawn.
func NewWallet(userID string, balance, creditLimit decimal.Decimal) (*Wallet, error) {
	if balance.IsNegative() {
		return nil, fmt.Errorf("%w: initial_balance must be >= 0", ErrValidation)
	}
	if creditLimit.IsNegative() {
		return nil, fmt.Errorf("%w: credit_limit must be >= 0", ErrValidation)
	}
	now := time.Now().UTC()
	return &Wallet{
		UserID:      userID,
		Balance:     balance,
		Credit:      decimal.Zero,
		CreditLimit: creditLimit,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// Validate reports whether 0 <= credit <= credit_limit and balance >= 0 hold.
func (w *Wallet) Validate() error {
	switch {
	case w.Balance.IsNegative():
		return fmt.Errorf("wallet %s: negative balance %s", w.ID, w.Balance)
	case w.Credit.IsNegative():
		return fmt.Errorf("wallet %s: negative credit %s", w.ID, w.Credit)
	case w.Credit.GreaterThan(w.CreditLimit):
		return fmt.Errorf("wallet %s: credit %s over limit %s", w.ID, w.Credit, w.CreditLimit)
	}
	return nil
}

// Available is the most this wallet can pay right now: cash plus unused credit.
func (w *Wallet) Available() decimal.Decimal {
	return w.Balance.Add(w.CreditLimit.Sub(w.Credit))
}

// Draw takes amount out of the wallet, cash first, then credit.
// On error the wallet is left untouched.
func (w *Wallet) Draw(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	if w.Balance.GreaterThanOrEqual(amount) {
		w.Balance = w.Balance.Sub(amount)
		w.UpdatedAt = time.Now().UTC()
		return nil
	}
	remaining := amount.Sub(w.Balance)
	if w.Credit.Add(remaining).GreaterThan(w.CreditLimit) {
		return ErrCreditLimitExceeded
	}
	w.Balance = decimal.Zero
	w.Credit = w.Credit.Add(remaining)
	w.UpdatedAt = time.Now().UTC()
	return nil
}

// Deposit adds amount to the cash balance.
func (w *Wallet) Deposit(amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return ErrInvalidAmount
	}
	w.Balance = w.Balance.Add(amount)
	w.UpdatedAt = time.Now().UTC()
	return nil
}
