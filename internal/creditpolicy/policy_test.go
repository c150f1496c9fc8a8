package creditpolicy

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestLimitForScore(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		score int
		min   int64
		max   int64
	}{
		{name: "PoorScore", score: 550, min: 100, max: 700},
		{name: "FairScore", score: 600, min: 700, max: 5000},
		{name: "GoodScore", score: 700, min: 5000, max: 7500},
		{name: "VeryGoodScore", score: 750, min: 7500, max: 16000},
		{name: "ExceptionalScore", score: 810, min: 16000, max: 25000},
	}

	for i := range testCases {
		tc := testCases[i]

		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			min := decimal.NewFromInt(tc.min)
			max := decimal.NewFromInt(tc.max)

			// The offset inside the bracket is random, so assert
			// range membership over many draws.
			for i := 0; i < 1000; i++ {
				limit := LimitForScore(tc.score)
				require.True(t, limit.GreaterThanOrEqual(min), "limit %s below %s", limit, min)
				require.True(t, limit.LessThan(max), "limit %s not below %s", limit, max)
			}
		})
	}
}

func TestLimitForScoreBoundaries(t *testing.T) {
	t.Parallel()

	// Bracket edges map to the lower bracket.
	require.True(t, LimitForScore(580).LessThan(decimal.NewFromInt(700)))
	require.True(t, LimitForScore(581).GreaterThanOrEqual(decimal.NewFromInt(700)))
	require.True(t, LimitForScore(799).LessThan(decimal.NewFromInt(16000)))
	require.True(t, LimitForScore(800).GreaterThanOrEqual(decimal.NewFromInt(16000)))
}
