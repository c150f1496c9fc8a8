// Package directory provides the in-memory customer directory.
package directory

import (
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/sunbelt-bank/bank-core/internal/domain"
	"github.com/sunbelt-bank/bank-core/pkg/seqpkg"
)

// New credit accounts open with $10 owed.
var openingCreditBalance = decimal.NewFromInt(-10)

// Directory holds all known customers, indexable by full name and by
// numeric ID. Both views reference the same owned objects.
//
// The directory mutex is the single critical section for every
// engine mutation: both legs of a transfer or payment commit while
// the write lock is held.
type Directory struct {
	mu     sync.RWMutex
	byName map[string]*domain.Customer
	byID   map[int]*domain.Customer

	customerIDs     *seqpkg.Sequence
	checkingNumbers *seqpkg.Sequence
	savingsNumbers  *seqpkg.Sequence
	creditNumbers   *seqpkg.Sequence
}

// New returns an empty directory with fresh number allocators.
func New() *Directory {
	return &Directory{
		byName:          make(map[string]*domain.Customer),
		byID:            make(map[int]*domain.Customer),
		customerIDs:     seqpkg.New(),
		checkingNumbers: seqpkg.New(),
		savingsNumbers:  seqpkg.New(),
		creditNumbers:   seqpkg.New(),
	}
}

// Txn is a window onto the directory contents inside one critical
// section. It must not escape the function it is passed to.
type Txn struct {
	d *Directory
}

// ByName returns the customer with the given full name.
func (t Txn) ByName(fullName string) (*domain.Customer, error) {
	c, ok := t.d.byName[fullName]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}

	return c, nil
}

// ByID returns the customer with the given identification number.
func (t Txn) ByID(id int) (*domain.Customer, error) {
	c, ok := t.d.byID[id]
	if !ok {
		return nil, domain.ErrCustomerNotFound
	}

	return c, nil
}

// Customers returns all customers ordered by ID.
func (t Txn) Customers() []*domain.Customer {
	customers := make([]*domain.Customer, 0, len(t.d.byID))
	for _, c := range t.d.byID {
		customers = append(customers, c)
	}

	sort.Slice(customers, func(i, j int) bool { return customers[i].ID < customers[j].ID })

	return customers
}

// Update runs fn under the directory write lock.
func (d *Directory) Update(fn func(Txn) error) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	return fn(Txn{d})
}

// View runs fn under the directory read lock.
func (d *Directory) View(fn func(Txn) error) error {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return fn(Txn{d})
}

// Add inserts a loaded customer and raises the number watermarks to
// cover its ID and account numbers.
func (d *Directory) Add(c *domain.Customer) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if _, ok := d.byName[c.FullName()]; ok {
		return domain.ErrNameAlreadyExists
	}

	if c.Ledger == nil {
		c.Ledger = domain.Ledger{}
	}

	d.customerIDs.Observe(c.ID)
	d.checkingNumbers.Observe(c.Checking.Number)
	d.savingsNumbers.Observe(c.Savings.Number)
	d.creditNumbers.Observe(c.Credit.Number)

	d.byName[c.FullName()] = c
	d.byID[c.ID] = c

	return nil
}

// CreateCustomer mints a new customer with fresh account numbers, zero
// checking and savings balances and a credit account at the opening
// balance with the given limit.
func (d *Directory) CreateCustomer(arg domain.CreateCustomerParams, creditMax decimal.Decimal) (*domain.Customer, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	key := arg.FirstName + " " + arg.LastName
	if _, ok := d.byName[key]; ok {
		return nil, domain.ErrNameAlreadyExists
	}

	c := &domain.Customer{
		ID:          d.customerIDs.Next(),
		FirstName:   arg.FirstName,
		LastName:    arg.LastName,
		DateOfBirth: arg.DateOfBirth,
		Address:     arg.Address,
		PhoneNumber: arg.PhoneNumber,
		Checking:    domain.Account{Number: d.checkingNumbers.Next(), Balance: decimal.Zero},
		Savings:     domain.Account{Number: d.savingsNumbers.Next(), Balance: decimal.Zero},
		Credit: domain.CreditAccount{
			Account: domain.Account{Number: d.creditNumbers.Next(), Balance: openingCreditBalance},
			Max:     creditMax,
		},
		Ledger: domain.Ledger{},
	}

	d.byName[key] = c
	d.byID[c.ID] = c

	return c, nil
}
