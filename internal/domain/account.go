// Package domain provides definitions of all entities.
package domain

import (
	"errors"

	"github.com/shopspring/decimal"
)

var (
	// ErrUnsupportedAccountType indicates an account type outside the closed set.
	ErrUnsupportedAccountType = errors.New("unsupported account type")
	// ErrUnsupportedLegs indicates a from/to account pair no operation supports.
	ErrUnsupportedLegs = errors.New("unsupported account pair")
	// ErrInsufficientFunds indicates that the source account balance is below the requested amount.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrExceedsCreditBalance indicates a credit deposit that would overpay past zero.
	ErrExceedsCreditBalance = errors.New("amount exceeds the credit balance")
	// ErrCreditLimitExceeded indicates a charge that would violate the available credit.
	ErrCreditLimitExceeded = errors.New("charge exceeds available credit")
	// ErrNonPositiveAmount indicates a zero or negative amount.
	ErrNonPositiveAmount = errors.New("amount must be positive")
)

// AccountType is one of the closed set of account kinds a customer holds.
type AccountType string

// Constants for all supported account types.
const (
	Checking AccountType = "Checking"
	Savings  AccountType = "Savings"
	Credit   AccountType = "Credit"
)

// AccountTypes holds all the supported account types.
var AccountTypes = []AccountType{Checking, Savings, Credit}

// Valid returns true if the account type belongs to the closed set.
func (t AccountType) Valid() bool {
	for _, at := range AccountTypes {
		if t == at {
			return true
		}
	}

	return false
}

// Account holds the number and current balance of one account.
type Account struct {
	Number  int             `json:"number"`
	Balance decimal.Decimal `json:"balance"`
}

// CreditAccount is an account whose balance is the amount owed
// (typically non-positive) bounded by the credit limit Max.
type CreditAccount struct {
	Account
	Max decimal.Decimal `json:"credit_max"`
}

// Available returns the credit still chargeable: Max + Balance.
func (c CreditAccount) Available() decimal.Decimal {
	return c.Max.Add(c.Balance)
}

// DepositWithinLimit reports whether amount does not exceed the
// available credit.
func (c CreditAccount) DepositWithinLimit(amount decimal.Decimal) bool {
	return amount.LessThanOrEqual(c.Available())
}
