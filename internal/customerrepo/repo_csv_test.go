package customerrepo

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/sunbelt-bank/bank-core/internal/domain"
)

const sheet = `Identification Number,First Name,Last Name,Date of Birth,Address,Phone Number,Checking Account Number,Checking Starting Balance,Savings Account Number,Savings Starting Balance,Credit Account Number,Credit Max,Credit Starting Balance
0,Sofia,Hernandez,01-Jan-1990,123 Mesa St,(915) 123-4567,1000,500,2000,1000,3000,5000,-100
1,Diego,Luna,02-Feb-1992,456 Sun Ave,(915) 765-4321,1001,50,2001,0,3001,700,-10
`

func TestLoad(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "customers.csv")
	require.NoError(t, os.WriteFile(path, []byte(sheet), 0o644))

	repo := NewRepoCSV(path)

	customers, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 2)

	sofia := customers[0]
	require.Equal(t, 0, sofia.ID)
	require.Equal(t, "Sofia Hernandez", sofia.FullName())
	require.Equal(t, "01-Jan-1990", sofia.DateOfBirth)
	require.Equal(t, 1000, sofia.Checking.Number)
	require.True(t, sofia.Checking.Balance.Equal(decimal.NewFromInt(500)))
	require.Equal(t, 2000, sofia.Savings.Number)
	require.True(t, sofia.Savings.Balance.Equal(decimal.NewFromInt(1000)))
	require.Equal(t, 3000, sofia.Credit.Number)
	require.True(t, sofia.Credit.Balance.Equal(decimal.NewFromInt(-100)))
	require.True(t, sofia.Credit.Max.Equal(decimal.NewFromInt(5000)))
	require.NotNil(t, sofia.Ledger)
}

func TestLoadShuffledColumns(t *testing.T) {
	t.Parallel()

	// Columns are located by header name, not position.
	shuffled := `First Name,Identification Number,Last Name,Phone Number,Address,Date of Birth,Checking Starting Balance,Checking Account Number,Savings Account Number,Savings Starting Balance,Credit Account Number,Credit Max,Credit Starting Balance
Sofia,0,Hernandez,(915) 123-4567,123 Mesa St,01-Jan-1990,500,1000,2000,1000,3000,5000,-100
`
	path := filepath.Join(t.TempDir(), "customers.csv")
	require.NoError(t, os.WriteFile(path, []byte(shuffled), 0o644))

	customers, err := NewRepoCSV(path).Load(context.Background())
	require.NoError(t, err)
	require.Len(t, customers, 1)
	require.Equal(t, 1000, customers[0].Checking.Number)
	require.True(t, customers[0].Checking.Balance.Equal(decimal.NewFromInt(500)))
}

func TestLoadErrors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()

	_, err := NewRepoCSV(filepath.Join(dir, "missing.csv")).Load(context.Background())
	require.Error(t, err)

	noColumn := filepath.Join(dir, "nocol.csv")
	require.NoError(t, os.WriteFile(noColumn, []byte("First Name,Last Name\nSofia,Hernandez\n"), 0o644))
	_, err = NewRepoCSV(noColumn).Load(context.Background())
	require.ErrorContains(t, err, "missing column")

	badAmount := filepath.Join(dir, "badamount.csv")
	bad := sheet[:len(sheet)-len("-10\n")] + "not-a-number\n"
	require.NoError(t, os.WriteFile(badAmount, []byte(bad), 0o644))
	_, err = NewRepoCSV(badAmount).Load(context.Background())
	require.ErrorContains(t, err, "line 3")
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "customers.csv")
	repo := NewRepoCSV(path)

	customers := []*domain.Customer{
		{
			ID:          4,
			FirstName:   "Ana",
			LastName:    "Reyes",
			DateOfBirth: "03-Mar-1985",
			Address:     "789 Rio Blvd",
			PhoneNumber: "(915) 555-0000",
			Checking:    domain.Account{Number: 10, Balance: decimal.NewFromFloat(123.45)},
			Savings:     domain.Account{Number: 20, Balance: decimal.NewFromInt(0)},
			Credit: domain.CreditAccount{
				Account: domain.Account{Number: 30, Balance: decimal.NewFromInt(-10)},
				Max:     decimal.NewFromInt(16000),
			},
			Ledger: domain.Ledger{},
		},
	}

	require.NoError(t, repo.Save(context.Background(), customers))

	got, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 1)
	require.Equal(t, customers[0].ID, got[0].ID)
	require.Equal(t, customers[0].FullName(), got[0].FullName())
	require.True(t, got[0].Checking.Balance.Equal(decimal.NewFromFloat(123.45)))
	require.True(t, got[0].Credit.Max.Equal(decimal.NewFromInt(16000)))
}
