package statement

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/sunbelt-bank/bank-core/internal/domain"
)

func testCustomer() domain.Customer {
	c := domain.Customer{
		ID:          7,
		FirstName:   "Sofia",
		LastName:    "Hernandez",
		DateOfBirth: "12-March-1994",
		Address:     "42 Mesa Verde Dr, El Paso, TX",
		PhoneNumber: "(915) 555-0117",
		Checking:    domain.Account{Number: 70, Balance: decimal.NewFromInt(400)},
		Savings:     domain.Account{Number: 71, Balance: decimal.NewFromInt(1200)},
		Credit: domain.CreditAccount{
			Account: domain.Account{Number: 72, Balance: decimal.NewFromInt(-10)},
			Max:     decimal.NewFromInt(5000),
		},
		Ledger: domain.Ledger{},
	}

	c.Ledger.Append(domain.Checking, decimal.NewFromInt(500), decimal.NewFromInt(400), "Withdrew $100")

	return c
}

func TestBank(t *testing.T) {
	date := time.Date(2023, time.November, 4, 0, 0, 0, 0, time.UTC)

	got := Bank(testCustomer(), date)

	want := "Bank Statement for Sofia Hernandez\n" +
		"Date of Statement: 2023-11-04\n" +
		"\n" +
		"Customer Information:\n" +
		"ID: 7\n" +
		"Name: Sofia Hernandez\n" +
		"Address: 42 Mesa Verde Dr, El Paso, TX\n" +
		"Phone Number: (915) 555-0117\n" +
		"\n" +
		"Account Information:\n" +
		"Checking Account Balance: $400\n" +
		"Savings Account Balance: $1200\n" +
		"Credit Account Balance: $-10\n" +
		"\n" +
		"Transaction History:\n" +
		"Checking Account Transactions:\n" +
		"Starting Balance: $500, Ending Balance: $400, Transaction: Withdrew $100.\n" +
		"\n" +
		"Savings Account Transactions:\n" +
		"\n" +
		"Credit Account Transactions:\n" +
		"\n"

	require.Equal(t, want, got)
}

func TestSummary(t *testing.T) {
	date := time.Date(2023, time.November, 4, 0, 0, 0, 0, time.UTC)

	got := Summary(testCustomer(), date)

	want := "Sofia Hernandez's Transactions.\n" +
		"Date of Statement: 2023-11-04\n" +
		"\n" +
		"Checking Account Summary:\n" +
		"Starting Balance: $500, Ending Balance: $400, Transaction: Withdrew $100.\n" +
		"\n" +
		"Savings Account Summary:\n" +
		"No transactions for this account.\n" +
		"\n" +
		"Credit Account Summary:\n" +
		"No transactions for this account.\n" +
		"\n"

	require.Equal(t, want, got)
}

func TestFileNames(t *testing.T) {
	c := testCustomer()

	require.Equal(t, "BankStatement_7.txt", BankFileName(c))
	require.Equal(t, "Sofia_Hernandez_Transactions.txt", SummaryFileName(c))
}

func TestWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "statements")
	c := testCustomer()

	content := Bank(c, time.Now())

	path, err := Write(dir, BankFileName(c), content)
	require.NoError(t, err)

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, content, string(raw))
}
