// Package statement renders customer bank statements and transaction
// summaries as plain text.
package statement

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/sunbelt-bank/bank-core/internal/domain"
)

const dateLayout = "2006-01-02"

// BankFileName returns the file name a full bank statement is saved
// under for the given customer.
func BankFileName(c domain.Customer) string {
	return fmt.Sprintf("BankStatement_%d.txt", c.ID)
}

// SummaryFileName returns the file name a transaction summary is saved
// under for the given customer.
func SummaryFileName(c domain.Customer) string {
	return fmt.Sprintf("%s_%s_Transactions.txt", c.FirstName, c.LastName)
}

// Bank renders a full bank statement: customer identity, the balance
// of every account and the complete transaction history per account
// type.
func Bank(c domain.Customer, date time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Bank Statement for %s\n", c.FullName())
	fmt.Fprintf(&b, "Date of Statement: %s\n\n", date.Format(dateLayout))

	b.WriteString("Customer Information:\n")
	fmt.Fprintf(&b, "ID: %d\n", c.ID)
	fmt.Fprintf(&b, "Name: %s\n", c.FullName())
	fmt.Fprintf(&b, "Address: %s\n", c.Address)
	fmt.Fprintf(&b, "Phone Number: %s\n\n", c.PhoneNumber)

	b.WriteString("Account Information:\n")
	fmt.Fprintf(&b, "Checking Account Balance: $%s\n", c.Checking.Balance)
	fmt.Fprintf(&b, "Savings Account Balance: $%s\n", c.Savings.Balance)
	fmt.Fprintf(&b, "Credit Account Balance: $%s\n\n", c.Credit.Balance)

	b.WriteString("Transaction History:\n")
	for _, t := range []domain.AccountType{domain.Checking, domain.Savings, domain.Credit} {
		fmt.Fprintf(&b, "%s Account Transactions:\n", t)
		b.WriteString(c.Ledger.History(t))
		b.WriteString("\n")
	}

	return b.String()
}

// Summary renders a short per-account transaction summary.
func Summary(c domain.Customer, date time.Time) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s's Transactions.\n", c.FullName())
	fmt.Fprintf(&b, "Date of Statement: %s\n\n", date.Format(dateLayout))

	for _, t := range []domain.AccountType{domain.Checking, domain.Savings, domain.Credit} {
		fmt.Fprintf(&b, "%s Account Summary:\n", t)

		history := c.Ledger.History(t)
		if history == "" {
			b.WriteString("No transactions for this account.\n")
		} else {
			b.WriteString(history)
		}
		b.WriteString("\n")
	}

	return b.String()
}

// Write saves a rendered statement under dir, creating the directory
// if needed.
func Write(dir, name, content string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create statement dir: %w", err)
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("write statement: %w", err)
	}

	return path, nil
}
