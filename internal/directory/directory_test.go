package directory

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/sunbelt-bank/bank-core/internal/domain"
)

func loadedCustomer(id int, first, last string) *domain.Customer {
	return &domain.Customer{
		ID:        id,
		FirstName: first,
		LastName:  last,
		Checking:  domain.Account{Number: id * 10, Balance: decimal.NewFromInt(500)},
		Savings:   domain.Account{Number: id*10 + 1, Balance: decimal.NewFromInt(1000)},
		Credit: domain.CreditAccount{
			Account: domain.Account{Number: id*10 + 2, Balance: decimal.NewFromInt(-100)},
			Max:     decimal.NewFromInt(5000),
		},
		Ledger: domain.Ledger{},
	}
}

func TestAdd(t *testing.T) {
	t.Parallel()

	d := New()

	sofia := loadedCustomer(7, "Sofia", "Hernandez")
	require.NoError(t, d.Add(sofia))

	err := d.View(func(tx Txn) error {
		byName, err := tx.ByName("Sofia Hernandez")
		require.NoError(t, err)
		require.Same(t, sofia, byName)

		byID, err := tx.ByID(7)
		require.NoError(t, err)
		require.Same(t, sofia, byID)

		_, err = tx.ByName("Nobody Here")
		require.ErrorIs(t, err, domain.ErrCustomerNotFound)

		_, err = tx.ByID(99)
		require.ErrorIs(t, err, domain.ErrCustomerNotFound)

		return nil
	})
	require.NoError(t, err)

	// Duplicate full names are rejected: the name is the primary
	// lookup key for transfers and payments.
	require.ErrorIs(t, d.Add(loadedCustomer(8, "Sofia", "Hernandez")), domain.ErrNameAlreadyExists)
}

func TestCreateCustomer(t *testing.T) {
	t.Parallel()

	d := New()
	require.NoError(t, d.Add(loadedCustomer(7, "Sofia", "Hernandez")))

	arg := domain.CreateCustomerParams{
		FirstName:   "Diego",
		LastName:    "Luna",
		DateOfBirth: "01-Jan-2000",
		Address:     "123 Mesa St",
		PhoneNumber: "(915) 123-4567",
	}
	creditMax := decimal.NewFromInt(7000)

	c, err := d.CreateCustomer(arg, creditMax)
	require.NoError(t, err)

	// Numbers continue above the loaded watermarks, never reused
	// downward.
	require.Equal(t, 8, c.ID)
	require.Equal(t, 71, c.Checking.Number)
	require.Equal(t, 72, c.Savings.Number)
	require.Equal(t, 73, c.Credit.Number)

	require.True(t, c.Checking.Balance.IsZero())
	require.True(t, c.Savings.Balance.IsZero())
	require.True(t, c.Credit.Balance.Equal(decimal.NewFromInt(-10)))
	require.True(t, c.Credit.Max.Equal(creditMax))
	require.NotNil(t, c.Ledger)

	_, err = d.CreateCustomer(arg, creditMax)
	require.ErrorIs(t, err, domain.ErrNameAlreadyExists)

	err = d.View(func(tx Txn) error {
		customers := tx.Customers()
		require.Len(t, customers, 2)
		require.Equal(t, 7, customers[0].ID)
		require.Equal(t, 8, customers[1].ID)

		return nil
	})
	require.NoError(t, err)
}
