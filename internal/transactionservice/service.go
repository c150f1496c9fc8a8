// Package transactionservice implements the account transaction engine:
// the rules governing how money moves between accounts and the ledger
// entries recording every move.
package transactionservice

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/sunbelt-bank/bank-core/internal/directory"
	"github.com/sunbelt-bank/bank-core/internal/domain"
	"github.com/sunbelt-bank/bank-core/pkg/metricspkg"
)

// Store provides locked access to the customer directory.
//
//go:generate mockgen -source service.go -destination service_mock.go -package transactionservice
type Store interface {
	Update(fn func(directory.Txn) error) error
	View(fn func(directory.Txn) error) error
}

// Persister rewrites the backing sheet after a mutation.
type Persister interface {
	Persist(ctx context.Context) error
}

// Service is the transaction engine over one customer directory.
type Service struct {
	store     Store
	persister Persister
	metrics   *metricspkg.Collector
}

// New returns the engine. persister and metrics may be nil.
func New(store Store, persister Persister, metrics *metricspkg.Collector) *Service {
	return &Service{store: store, persister: persister, metrics: metrics}
}

// leg is one side of a balance move.
type leg struct {
	account *domain.Account
	ledger  domain.Ledger
	typ     domain.AccountType
	note    string
}

// move debits from and credits to, appending one ledger entry per leg.
// Runs inside the directory critical section; either both legs commit
// or neither does.
func move(from, to *leg, amount decimal.Decimal) error {
	if from != nil && from.account.Balance.LessThan(amount) {
		return domain.ErrInsufficientFunds
	}

	if from != nil {
		start := from.account.Balance
		from.account.Balance = start.Sub(amount)
		from.ledger.Append(from.typ, start, from.account.Balance, from.note)
	}

	if to != nil {
		start := to.account.Balance
		to.account.Balance = start.Add(amount)
		to.ledger.Append(to.typ, start, to.account.Balance, to.note)
	}

	return nil
}

// Withdraw takes amount out of the customer's checking or savings
// account. Fails with no mutation on unsupported account types or
// insufficient funds.
func (s *Service) Withdraw(ctx context.Context, fullName string, accountType domain.AccountType, amount decimal.Decimal) (domain.Account, error) {
	startedAt := time.Now()

	var acc domain.Account

	err := func() error {
		if amount.LessThanOrEqual(decimal.Zero) {
			return domain.ErrNonPositiveAmount
		}

		if accountType != domain.Checking && accountType != domain.Savings {
			return domain.ErrUnsupportedAccountType
		}

		return s.store.Update(func(tx directory.Txn) error {
			c, err := tx.ByName(fullName)
			if err != nil {
				return err
			}

			account, err := c.AccountOf(accountType)
			if err != nil {
				return err
			}

			from := &leg{account: account, ledger: c.Ledger, typ: accountType, note: "Withdrew $" + amount.String()}
			if err := move(from, nil, amount); err != nil {
				return err
			}

			acc = *account

			return nil
		})
	}()

	s.record(ctx, "withdraw", startedAt, err)

	if err != nil {
		return domain.Account{}, err
	}

	s.persist(ctx)

	return acc, nil
}

// Deposit puts amount into one of the customer's accounts. Checking
// and savings deposits always succeed; a credit deposit is a payment
// toward the owed balance and must not drive it past zero.
func (s *Service) Deposit(ctx context.Context, fullName string, accountType domain.AccountType, amount decimal.Decimal) (domain.Account, error) {
	startedAt := time.Now()

	var acc domain.Account

	err := func() error {
		if amount.LessThanOrEqual(decimal.Zero) {
			return domain.ErrNonPositiveAmount
		}

		if !accountType.Valid() {
			return domain.ErrUnsupportedAccountType
		}

		return s.store.Update(func(tx directory.Txn) error {
			c, err := tx.ByName(fullName)
			if err != nil {
				return err
			}

			account, err := c.AccountOf(accountType)
			if err != nil {
				return err
			}

			if accountType == domain.Credit && amount.Add(account.Balance).GreaterThan(decimal.Zero) {
				return domain.ErrExceedsCreditBalance
			}

			to := &leg{account: account, ledger: c.Ledger, typ: accountType, note: "Deposited $" + amount.String()}
			if err := move(nil, to, amount); err != nil {
				return err
			}

			acc = *account

			return nil
		})
	}()

	s.record(ctx, "deposit", startedAt, err)

	if err != nil {
		return domain.Account{}, err
	}

	s.persist(ctx)

	return acc, nil
}

// Transfer moves amount between the customer's own checking and
// savings accounts. Only the Checking→Savings and Savings→Checking
// directions are supported.
func (s *Service) Transfer(ctx context.Context, fullName string, fromType, toType domain.AccountType, amount decimal.Decimal) (domain.Account, domain.Account, error) {
	startedAt := time.Now()

	var fromAcc, toAcc domain.Account

	err := func() error {
		if amount.LessThanOrEqual(decimal.Zero) {
			return domain.ErrNonPositiveAmount
		}

		checkingToSavings := fromType == domain.Checking && toType == domain.Savings
		savingsToChecking := fromType == domain.Savings && toType == domain.Checking

		if !checkingToSavings && !savingsToChecking {
			return domain.ErrUnsupportedLegs
		}

		return s.store.Update(func(tx directory.Txn) error {
			c, err := tx.ByName(fullName)
			if err != nil {
				return err
			}

			fromAccount, err := c.AccountOf(fromType)
			if err != nil {
				return err
			}

			toAccount, err := c.AccountOf(toType)
			if err != nil {
				return err
			}

			from := &leg{account: fromAccount, ledger: c.Ledger, typ: fromType, note: "Transferred $" + amount.String() + " to " + string(toType)}
			to := &leg{account: toAccount, ledger: c.Ledger, typ: toType, note: "Received $" + amount.String() + " from " + string(fromType)}

			if err := move(from, to, amount); err != nil {
				return err
			}

			fromAcc, toAcc = *fromAccount, *toAccount

			return nil
		})
	}()

	s.record(ctx, "transfer", startedAt, err)

	if err != nil {
		return domain.Account{}, domain.Account{}, err
	}

	s.persist(ctx)

	return fromAcc, toAcc, nil
}

// Pay moves amount from the payer's checking account to the
// recipient's checking account. Only the Checking→Checking pair is
// supported and a customer cannot pay themselves.
func (s *Service) Pay(ctx context.Context, payerName, recipientName string, fromType, toType domain.AccountType, amount decimal.Decimal) (domain.Account, domain.Account, error) {
	startedAt := time.Now()

	var payerAcc, recipientAcc domain.Account

	err := func() error {
		if amount.LessThanOrEqual(decimal.Zero) {
			return domain.ErrNonPositiveAmount
		}

		if fromType != domain.Checking || toType != domain.Checking {
			return domain.ErrUnsupportedLegs
		}

		if payerName == recipientName {
			return domain.ErrSelfPayment
		}

		return s.store.Update(func(tx directory.Txn) error {
			payer, err := tx.ByName(payerName)
			if err != nil {
				return err
			}

			recipient, err := tx.ByName(recipientName)
			if err != nil {
				return domain.ErrRecipientNotFound
			}

			from := &leg{account: &payer.Checking, ledger: payer.Ledger, typ: domain.Checking, note: "Paid $" + amount.String() + " to " + recipient.FullName()}
			to := &leg{account: &recipient.Checking, ledger: recipient.Ledger, typ: domain.Checking, note: "Received $" + amount.String() + " from " + payer.FullName()}

			if err := move(from, to, amount); err != nil {
				return err
			}

			payerAcc, recipientAcc = payer.Checking, recipient.Checking

			return nil
		})
	}()

	s.record(ctx, "pay", startedAt, err)

	if err != nil {
		return domain.Account{}, domain.Account{}, err
	}

	s.persist(ctx)

	return payerAcc, recipientAcc, nil
}

// Balance is the read-only view returned by Inquire.
type Balance struct {
	AccountType domain.AccountType `json:"account_type"`
	Number      int                `json:"number"`
	Balance     decimal.Decimal    `json:"balance"`
	CreditMax   *decimal.Decimal   `json:"credit_max,omitempty"`
}

// Inquire returns the account number, balance and, for credit
// accounts, the credit limit. It never mutates state.
func (s *Service) Inquire(ctx context.Context, fullName string, accountType domain.AccountType) (Balance, error) {
	startedAt := time.Now()

	var b Balance

	err := func() error {
		if !accountType.Valid() {
			return domain.ErrUnsupportedAccountType
		}

		return s.store.View(func(tx directory.Txn) error {
			c, err := tx.ByName(fullName)
			if err != nil {
				return err
			}

			account, err := c.AccountOf(accountType)
			if err != nil {
				return err
			}

			b = Balance{AccountType: accountType, Number: account.Number, Balance: account.Balance}

			if accountType == domain.Credit {
				max := c.Credit.Max
				b.CreditMax = &max
			}

			return nil
		})
	}()

	s.record(ctx, "inquire", startedAt, err)

	if err != nil {
		return Balance{}, err
	}

	return b, nil
}

// History returns the rendered ledger text for one account type.
func (s *Service) History(ctx context.Context, fullName string, accountType domain.AccountType) (string, error) {
	var history string

	err := func() error {
		if !accountType.Valid() {
			return domain.ErrUnsupportedAccountType
		}

		return s.store.View(func(tx directory.Txn) error {
			c, err := tx.ByName(fullName)
			if err != nil {
				return err
			}

			history = c.Ledger.History(accountType)

			return nil
		})
	}()

	if err != nil {
		return "", err
	}

	return history, nil
}

func (s *Service) record(ctx context.Context, operation string, startedAt time.Time, err error) {
	if err != nil {
		zerolog.Ctx(ctx).Info().Err(err).Str("operation", operation).Send()
	}

	if s.metrics == nil {
		return
	}

	outcome := metricspkg.OutcomeOK
	if err != nil {
		outcome = metricspkg.OutcomeRejected
	}

	s.metrics.Record(operation, outcome, time.Since(startedAt))
}

func (s *Service) persist(ctx context.Context) {
	if s.persister == nil {
		return
	}

	if err := s.persister.Persist(ctx); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("persist after mutation failed")
	}
}
