package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Entry is one immutable ledger record of a balance change.
type Entry struct {
	Start       decimal.Decimal `json:"starting_balance"`
	End         decimal.Decimal `json:"ending_balance"`
	Description string          `json:"description"`
}

// String renders the entry as one history line.
func (e Entry) String() string {
	return fmt.Sprintf("Starting Balance: $%s, Ending Balance: $%s, Transaction: %s.", e.Start, e.End, e.Description)
}

// Ledger is a write-only append log of entries per account type.
// Entries are never removed or mutated.
type Ledger map[AccountType][]Entry

// Append records one entry for the given account type.
func (l Ledger) Append(t AccountType, start, end decimal.Decimal, description string) {
	l[t] = append(l[t], Entry{Start: start, End: end, Description: description})
}

// History returns the concatenated entries for the given account type
// in insertion order, one line per entry. Returns an empty string if
// no transactions are recorded.
func (l Ledger) History(t AccountType) string {
	entries := l[t]
	if len(entries) == 0 {
		return ""
	}

	var sb strings.Builder
	for _, e := range entries {
		sb.WriteString(e.String())
		sb.WriteString("\n")
	}

	return sb.String()
}
