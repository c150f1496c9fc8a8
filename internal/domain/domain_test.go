package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestAccountTypeValid(t *testing.T) {
	t.Parallel()

	for _, at := range AccountTypes {
		require.True(t, at.Valid())
	}

	require.False(t, AccountType("Loan").Valid())
	require.False(t, AccountType("").Valid())
}

func TestCreditAccountAvailable(t *testing.T) {
	t.Parallel()

	acc := CreditAccount{
		Account: Account{Number: 1, Balance: decimal.NewFromFloat(-100)},
		Max:     decimal.NewFromFloat(500),
	}

	require.True(t, acc.Available().Equal(decimal.NewFromFloat(400)))
	require.True(t, acc.DepositWithinLimit(decimal.NewFromFloat(400)))
	require.False(t, acc.DepositWithinLimit(decimal.NewFromFloat(550)))
}

func TestCustomerAccountOf(t *testing.T) {
	t.Parallel()

	c := &Customer{
		Checking: Account{Number: 1},
		Savings:  Account{Number: 2},
		Credit:   CreditAccount{Account: Account{Number: 3}},
	}

	checking, err := c.AccountOf(Checking)
	require.NoError(t, err)
	require.Same(t, &c.Checking, checking)

	savings, err := c.AccountOf(Savings)
	require.NoError(t, err)
	require.Same(t, &c.Savings, savings)

	credit, err := c.AccountOf(Credit)
	require.NoError(t, err)
	require.Same(t, &c.Credit.Account, credit)

	_, err = c.AccountOf("Loan")
	require.ErrorIs(t, err, ErrUnsupportedAccountType)
}

func TestLedgerHistory(t *testing.T) {
	t.Parallel()

	l := Ledger{}
	require.Equal(t, "", l.History(Checking))

	l.Append(Checking, decimal.NewFromFloat(500), decimal.NewFromFloat(400), "Withdrew $100")
	l.Append(Checking, decimal.NewFromFloat(400), decimal.NewFromFloat(450), "Deposited $50")
	l.Append(Savings, decimal.NewFromFloat(1000), decimal.NewFromFloat(1200), "Received $200 from Checking")

	want := "Starting Balance: $500, Ending Balance: $400, Transaction: Withdrew $100.\n" +
		"Starting Balance: $400, Ending Balance: $450, Transaction: Deposited $50.\n"
	require.Equal(t, want, l.History(Checking))

	require.Equal(t,
		"Starting Balance: $1000, Ending Balance: $1200, Transaction: Received $200 from Checking.\n",
		l.History(Savings))

	require.Equal(t, "", l.History(Credit))
}
