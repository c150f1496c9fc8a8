// Package creditpolicy derives credit limits from credit score brackets.
package creditpolicy

import (
	"github.com/shopspring/decimal"

	"github.com/sunbelt-bank/bank-core/pkg/randompkg"
)

type bracket struct {
	maxScore int
	base     int
	spread   int
}

// Score brackets with the half-open limit range [base, base+spread)
// assigned to each.
var brackets = []bracket{
	{maxScore: 580, base: 100, spread: 600},
	{maxScore: 669, base: 700, spread: 4300},
	{maxScore: 739, base: 5000, spread: 2500},
	{maxScore: 799, base: 7500, spread: 8500},
}

const (
	topBase   = 16000
	topSpread = 9000
)

// LimitForScore returns a credit limit for the given credit score: a
// random offset inside the score's bracket range.
func LimitForScore(score int) decimal.Decimal {
	base, spread := topBase, topSpread

	for _, b := range brackets {
		if score <= b.maxScore {
			base, spread = b.base, b.spread
			break
		}
	}

	return decimal.NewFromInt(int64(base) + randompkg.Intn(spread))
}
