package models

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func TestNewWallet(t *testing.T) {
	w, err := NewWallet("u1", d("100"), d("1000"))
	require.NoError(t, err)
	assert.True(t, w.Credit.IsZero())
	assert.True(t, w.Balance.Equal(d("100")))
	assert.NoError(t, w.Validate())

	_, err = NewWallet("u1", d("-1"), d("1000"))
	assert.ErrorIs(t, err, ErrValidation)

	_, err = NewWallet("u1", d("0"), d("-5"))
	assert.ErrorIs(t, err, ErrValidation)
}

func TestWalletDraw(t *testing.T) {
	tests := []struct {
		name        string
		balance     string
		credit      string
		limit       string
		amount      string
		wantBalance string
		wantCredit  string
		wantErr     error
	}{
		{name: "cash only", balance: "100", credit: "0", limit: "1000", amount: "40", wantBalance: "60", wantCredit: "0"},
		{name: "exact balance", balance: "100", credit: "0", limit: "1000", amount: "100", wantBalance: "0", wantCredit: "0"},
		{name: "spills into credit", balance: "100", credit: "0", limit: "1000", amount: "150", wantBalance: "0", wantCredit: "50"},
		{name: "credit up to limit", balance: "0", credit: "50", limit: "1000", amount: "950", wantBalance: "0", wantCredit: "1000"},
		{name: "over limit", balance: "0", credit: "50", limit: "1000", amount: "1000", wantBalance: "0", wantCredit: "50", wantErr: ErrCreditLimitExceeded},
		{name: "zero limit", balance: "10", credit: "0", limit: "0", amount: "10.01", wantBalance: "10", wantCredit: "0", wantErr: ErrCreditLimitExceeded},
		{name: "zero amount", balance: "10", credit: "0", limit: "100", amount: "0", wantBalance: "10", wantCredit: "0", wantErr: ErrInvalidAmount},
		{name: "negative amount", balance: "10", credit: "0", limit: "100", amount: "-3", wantBalance: "10", wantCredit: "0", wantErr: ErrInvalidAmount},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &Wallet{Balance: d(tt.balance), Credit: d(tt.credit), CreditLimit: d(tt.limit)}
			before := w.Balance.Sub(w.Credit)

			err := w.Draw(d(tt.amount))

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.True(t, w.Balance.Sub(w.Credit).Equal(before), "failed draw must not mutate")
			} else {
				require.NoError(t, err)
				assert.True(t, w.Balance.Sub(w.Credit).Equal(before.Sub(d(tt.amount))))
			}
			assert.True(t, w.Balance.Equal(d(tt.wantBalance)), "balance %s", w.Balance)
			assert.True(t, w.Credit.Equal(d(tt.wantCredit)), "credit %s", w.Credit)
			assert.NoError(t, w.Validate())
		})
	}
}

func TestWalletAvailable(t *testing.T) {
	w := &Wallet{Balance: d("20"), Credit: d("300"), CreditLimit: d("1000")}
	assert.True(t, w.Available().Equal(d("720")))

	require.ErrorIs(t, w.Draw(d("720.01")), ErrCreditLimitExceeded)
	require.NoError(t, w.Draw(d("720")))
	assert.True(t, w.Available().IsZero())
}

func TestWalletDeposit(t *testing.T) {
	w := &Wallet{Balance: d("0"), CreditLimit: d("0")}
	require.NoError(t, w.Deposit(d("12.50")))
	assert.True(t, w.Balance.Equal(d("12.5")))
	assert.ErrorIs(t, w.Deposit(decimal.Zero), ErrInvalidAmount)
}

func TestErrorKinds(t *testing.T) {
	assert.True(t, errors.Is(ErrCreditLimitExceeded, ErrBusinessRule))
	assert.True(t, errors.Is(ErrDuplicateName, ErrBusinessRule))
	assert.True(t, errors.Is(ErrMissingWallet, ErrBusinessRule))
	assert.True(t, errors.Is(ErrUserNotFound, ErrNotFound))
	assert.False(t, errors.Is(ErrUserNotFound, ErrBusinessRule))
	assert.Equal(t, "credit limit exceeded", ErrCreditLimitExceeded.Error())
}

func TestUserValidate(t *testing.T) {
	u := &User{Name: "  Alice "}
	require.NoError(t, u.Validate())
	assert.Equal(t, "Alice", u.Name)

	assert.ErrorIs(t, (&User{Name: "   "}).Validate(), ErrValidation)
}
