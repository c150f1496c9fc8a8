package domain

import "errors"

var (
	// ErrCustomerNotFound indicates that the customer is not found in the directory.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrRecipientNotFound indicates that the payment recipient is not found in the directory.
	ErrRecipientNotFound = errors.New("recipient not found")
	// ErrNameAlreadyExists indicates that a customer with the given full name already exists.
	ErrNameAlreadyExists = errors.New("customer with this name already exists")
	// ErrSelfPayment indicates an attempt to pay yourself.
	ErrSelfPayment = errors.New("payer and recipient are the same customer")
)

// Customer holds personal data, one account of each type and the
// transaction ledger.
type Customer struct {
	ID          int           `json:"id"`
	FirstName   string        `json:"first_name"`
	LastName    string        `json:"last_name"`
	DateOfBirth string        `json:"date_of_birth"`
	Address     string        `json:"address"`
	PhoneNumber string        `json:"phone_number"`
	Checking    Account       `json:"checking"`
	Savings     Account       `json:"savings"`
	Credit      CreditAccount `json:"credit"`
	Ledger      Ledger        `json:"-"`
}

// FullName returns the directory lookup key for the customer.
func (c *Customer) FullName() string {
	return c.FirstName + " " + c.LastName
}

// AccountOf returns the account holding balance data for the given
// type. The returned pointer aliases the customer's own account.
func (c *Customer) AccountOf(t AccountType) (*Account, error) {
	switch t {
	case Checking:
		return &c.Checking, nil
	case Savings:
		return &c.Savings, nil
	case Credit:
		return &c.Credit.Account, nil
	}

	return nil, ErrUnsupportedAccountType
}

// CreateCustomerParams is the input data to create a customer.
type CreateCustomerParams struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	DateOfBirth string `json:"date_of_birth"`
	Address     string `json:"address"`
	PhoneNumber string `json:"phone_number"`
}
