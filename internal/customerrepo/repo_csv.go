// Package customerrepo persists customers to the flat CSV sheet loaded
// at startup and rewritten after mutations.
package customerrepo

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/shopspring/decimal"

	"github.com/sunbelt-bank/bank-core/internal/domain"
)

// Column headers of the customer sheet.
const (
	colID              = "Identification Number"
	colFirstName       = "First Name"
	colLastName        = "Last Name"
	colDateOfBirth     = "Date of Birth"
	colAddress         = "Address"
	colPhoneNumber     = "Phone Number"
	colCheckingNumber  = "Checking Account Number"
	colCheckingBalance = "Checking Starting Balance"
	colSavingsNumber   = "Savings Account Number"
	colSavingsBalance  = "Savings Starting Balance"
	colCreditNumber    = "Credit Account Number"
	colCreditMax       = "Credit Max"
	colCreditBalance   = "Credit Starting Balance"
)

var header = []string{
	colID, colFirstName, colLastName, colDateOfBirth, colAddress, colPhoneNumber,
	colCheckingNumber, colCheckingBalance,
	colSavingsNumber, colSavingsBalance,
	colCreditNumber, colCreditMax, colCreditBalance,
}

// RepoCSV reads and rewrites the customer sheet at a fixed path.
type RepoCSV struct {
	path string
}

// NewRepoCSV returns a repo over the given file path.
func NewRepoCSV(path string) *RepoCSV {
	return &RepoCSV{path: path}
}

// Load reads all customers from the sheet. Columns are located by
// header name, not by position.
func (r *RepoCSV) Load(ctx context.Context) ([]*domain.Customer, error) {
	f, err := os.Open(r.path)
	if err != nil {
		return nil, fmt.Errorf("open customer sheet: %w", err)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("read customer sheet: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	cols := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		cols[name] = i
	}

	for _, name := range header {
		if _, ok := cols[name]; !ok {
			return nil, fmt.Errorf("customer sheet is missing column %q", name)
		}
	}

	customers := make([]*domain.Customer, 0, len(records)-1)

	for line, rec := range records[1:] {
		c, err := parseRow(rec, cols)
		if err != nil {
			return nil, fmt.Errorf("customer sheet line %d: %w", line+2, err)
		}

		customers = append(customers, c)
	}

	return customers, nil
}

func parseRow(rec []string, cols map[string]int) (*domain.Customer, error) {
	id, err := strconv.Atoi(rec[cols[colID]])
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", colID, err)
	}

	numbers := make(map[string]int, 3)
	for _, name := range []string{colCheckingNumber, colSavingsNumber, colCreditNumber} {
		n, err := strconv.Atoi(rec[cols[name]])
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		numbers[name] = n
	}

	balances := make(map[string]decimal.Decimal, 4)
	for _, name := range []string{colCheckingBalance, colSavingsBalance, colCreditBalance, colCreditMax} {
		d, err := decimal.NewFromString(rec[cols[name]])
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		balances[name] = d
	}

	return &domain.Customer{
		ID:          id,
		FirstName:   rec[cols[colFirstName]],
		LastName:    rec[cols[colLastName]],
		DateOfBirth: rec[cols[colDateOfBirth]],
		Address:     rec[cols[colAddress]],
		PhoneNumber: rec[cols[colPhoneNumber]],
		Checking:    domain.Account{Number: numbers[colCheckingNumber], Balance: balances[colCheckingBalance]},
		Savings:     domain.Account{Number: numbers[colSavingsNumber], Balance: balances[colSavingsBalance]},
		Credit: domain.CreditAccount{
			Account: domain.Account{Number: numbers[colCreditNumber], Balance: balances[colCreditBalance]},
			Max:     balances[colCreditMax],
		},
		Ledger: domain.Ledger{},
	}, nil
}

// Save rewrites the whole sheet with the given customers.
func (r *RepoCSV) Save(ctx context.Context, customers []*domain.Customer) error {
	f, err := os.Create(r.path)
	if err != nil {
		return fmt.Errorf("create customer sheet: %w", err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)

	if err := writer.Write(header); err != nil {
		return fmt.Errorf("write customer sheet header: %w", err)
	}

	for _, c := range customers {
		row := []string{
			strconv.Itoa(c.ID),
			c.FirstName,
			c.LastName,
			c.DateOfBirth,
			c.Address,
			c.PhoneNumber,
			strconv.Itoa(c.Checking.Number),
			c.Checking.Balance.String(),
			strconv.Itoa(c.Savings.Number),
			c.Savings.Balance.String(),
			strconv.Itoa(c.Credit.Number),
			c.Credit.Max.String(),
			c.Credit.Balance.String(),
		}

		if err := writer.Write(row); err != nil {
			return fmt.Errorf("write customer %d: %w", c.ID, err)
		}
	}

	writer.Flush()

	return writer.Error()
}
