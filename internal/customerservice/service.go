// Package customerservice manages customer onboarding, staff views and
// statement generation.
package customerservice

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/sunbelt-bank/bank-core/internal/creditpolicy"
	"github.com/sunbelt-bank/bank-core/internal/directory"
	"github.com/sunbelt-bank/bank-core/internal/domain"
	"github.com/sunbelt-bank/bank-core/internal/statement"
	"github.com/sunbelt-bank/bank-core/pkg/errorspkg"
	"github.com/sunbelt-bank/bank-core/pkg/randompkg"
)

// Store provides the customer directory interface needed by the
// service.
type Store interface {
	View(fn func(directory.Txn) error) error
	CreateCustomer(arg domain.CreateCustomerParams, creditMax decimal.Decimal) (*domain.Customer, error)
}

// Persister saves the customer sheet after directory mutations.
type Persister interface {
	Persist(ctx context.Context) error
}

// CredentialIssuer mints customer secrets. The plaintext is returned
// exactly once per issue.
type CredentialIssuer interface {
	Issue(fullName string) (string, error)
}

// Service facilitates customer onboarding and staff views.
type Service struct {
	store        Store
	persister    Persister
	credentials  CredentialIssuer
	statementDir string
}

// New returns a customer service.
func New(store Store, persister Persister, credentials CredentialIssuer, statementDir string) *Service {
	return &Service{
		store:        store,
		persister:    persister,
		credentials:  credentials,
		statementDir: statementDir,
	}
}

// NewCustomer is a freshly onboarded customer together with the
// one-time plaintext secret and the credit score the limit was drawn
// for.
type NewCustomer struct {
	Customer    domain.Customer `json:"customer"`
	CreditScore int             `json:"credit_score"`
	Secret      string          `json:"secret"`
}

// Create onboards a customer: draws a credit score, derives the credit
// limit, opens the three accounts and issues a login secret.
func (s *Service) Create(ctx context.Context, arg domain.CreateCustomerParams) (NewCustomer, error) {
	l := zerolog.Ctx(ctx)

	var result NewCustomer

	score := randompkg.CreditScore()
	creditMax := creditpolicy.LimitForScore(score)

	created, err := s.store.CreateCustomer(arg, creditMax)
	if err != nil {
		return result, err
	}

	secret, err := s.credentials.Issue(created.FullName())
	if err != nil {
		l.Error().Err(err).Send()
		return result, errorspkg.ErrInternal
	}

	if err := s.persister.Persist(ctx); err != nil {
		l.Error().Err(err).Send()
	}

	l.Info().
		Int("customer_id", created.ID).
		Int("credit_score", score).
		Str("credit_max", creditMax.String()).
		Msg("customer created")

	result = NewCustomer{
		Customer:    *created,
		CreditScore: score,
		Secret:      secret,
	}

	return result, nil
}

// ManagerView returns the customer's full record: identity, account
// numbers, balances and the credit limit.
func (s *Service) ManagerView(ctx context.Context, fullName string) (domain.Customer, error) {
	var c domain.Customer

	err := s.store.View(func(txn directory.Txn) error {
		found, err := txn.ByName(fullName)
		if err != nil {
			return err
		}

		c = *found
		c.Ledger = nil

		return nil
	})

	return c, err
}

// TellerView is the restricted staff view: identity plus a freshly
// issued login secret for the customer.
type TellerView struct {
	ID          int    `json:"id"`
	FullName    string `json:"full_name"`
	DateOfBirth string `json:"date_of_birth"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
	Secret      string `json:"secret"`
}

// ViewForTeller returns the customer's personal information together
// with a reissued secret for handover.
func (s *Service) ViewForTeller(ctx context.Context, fullName string) (TellerView, error) {
	l := zerolog.Ctx(ctx)

	var view TellerView

	err := s.store.View(func(txn directory.Txn) error {
		found, err := txn.ByName(fullName)
		if err != nil {
			return err
		}

		view = TellerView{
			ID:          found.ID,
			FullName:    found.FullName(),
			DateOfBirth: found.DateOfBirth,
			Address:     found.Address,
			PhoneNumber: found.PhoneNumber,
		}

		return nil
	})
	if err != nil {
		return view, err
	}

	secret, err := s.credentials.Issue(fullName)
	if err != nil {
		l.Error().Err(err).Send()
		return view, errorspkg.ErrInternal
	}

	view.Secret = secret

	return view, nil
}

// Statement renders the customer's full bank statement and writes it
// under the statement directory. It returns the written file path.
func (s *Service) Statement(ctx context.Context, fullName string) (string, error) {
	return s.render(ctx, fullName, statement.BankFileName, statement.Bank)
}

// Summary renders the customer's per-account transaction summary and
// writes it under the statement directory. It returns the written file
// path.
func (s *Service) Summary(ctx context.Context, fullName string) (string, error) {
	return s.render(ctx, fullName, statement.SummaryFileName, statement.Summary)
}

func (s *Service) render(
	ctx context.Context,
	fullName string,
	fileName func(domain.Customer) string,
	render func(domain.Customer, time.Time) string,
) (string, error) {
	l := zerolog.Ctx(ctx)

	var name, content string

	// Rendering reads the ledger, so it stays inside the view.
	err := s.store.View(func(txn directory.Txn) error {
		found, err := txn.ByName(fullName)
		if err != nil {
			return err
		}

		name = fileName(*found)
		content = render(*found, time.Now())

		return nil
	})
	if err != nil {
		return "", err
	}

	path, err := statement.Write(s.statementDir, name, content)
	if err != nil {
		l.Error().Err(err).Send()
		return "", errorspkg.ErrInternal
	}

	return path, nil
}
