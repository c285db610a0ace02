// Package backtest simulates a position series against a price history and
// reduces the result into performance metrics.
package backtest

import (
	"math"
	"time"

	"github.com/quantview-lab/quantview/internal/types"
	"github.com/quantview-lab/quantview/pkg/errors"
)

// RunBacktest walks the position series day by day, carrying cash and holdings
// forward, and returns the resulting portfolio time series. The walk is a
// strict left-to-right fold: each day's balances depend on the previous day's
// balances and today's position and price.
//
// The transition table, with yesterday's/today's position:
//
//	flat -> long   enter: all cash converted to shares at today's close
//	long -> flat   exit: holdings realized at today's close
//	long -> long   holdings revalued by today's price change
//	flat -> flat   cash carried unchanged
func RunBacktest(prices []types.MarketData, position types.PositionSeries, initialCapital float64) (*types.PortfolioState, error) {
	if initialCapital <= 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidParameter,
			"initial capital must be positive, got %f", initialCapital)
	}

	if len(prices) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "price series is empty")
	}

	if len(position) != len(prices) {
		return nil, errors.Newf(errors.ErrCodeInvalidInput,
			"position series misaligned with prices: positions=%d prices=%d", len(position), len(prices))
	}

	for i, bar := range prices {
		if math.IsNaN(bar.Close) || math.IsInf(bar.Close, 0) {
			return nil, errors.Newf(errors.ErrCodeInvalidInput,
				"close price at index %d is not a finite number", i)
		}
	}

	n := len(prices)
	p := &types.PortfolioState{
		Time:                  make([]time.Time, n),
		Close:                 make([]float64, n),
		Position:              make([]types.Position, n),
		Cash:                  make([]float64, n),
		Holdings:              make([]float64, n),
		TotalValue:            make([]float64, n),
		DailyReturn:           make([]float64, n),
		CumulativeReturn:      make([]float64, n),
		DailyAssetReturn:      make([]float64, n),
		CumulativeAssetReturn: make([]float64, n),
	}

	for i, bar := range prices {
		p.Time[i] = bar.Time
		p.Close[i] = bar.Close
		p.Position[i] = position[i]
	}

	// A series that starts long (possible only when the caller supplies the
	// positions directly, the crossover lag always starts flat) is invested
	// from the first bar.
	if position[0] == types.PositionLong {
		p.Holdings[0] = initialCapital
	} else {
		p.Cash[0] = initialCapital
	}

	p.TotalValue[0] = initialCapital

	for i := 1; i < n; i++ {
		// Revaluation factor for holdings carried overnight. A zero previous
		// close is a degenerate input, not a fault: treat it as no change.
		changeFactor := 1.0
		if prices[i-1].Close != 0 {
			changeFactor = prices[i].Close / prices[i-1].Close
		}

		prev, curr := position[i-1], position[i]

		switch {
		case prev == types.PositionFlat && curr == types.PositionLong:
			// Enter: the full cash balance buys shares at today's close, so
			// the holdings value equals yesterday's cash.
			p.Holdings[i] = p.Cash[i-1]
			p.Cash[i] = 0
		case prev == types.PositionLong && curr == types.PositionFlat:
			p.Cash[i] = p.Holdings[i-1] * changeFactor
			p.Holdings[i] = 0
		case prev == types.PositionLong && curr == types.PositionLong:
			p.Cash[i] = p.Cash[i-1]
			p.Holdings[i] = p.Holdings[i-1] * changeFactor
		default:
			p.Cash[i] = p.Cash[i-1]
			p.Holdings[i] = 0
		}

		p.TotalValue[i] = p.Cash[i] + p.Holdings[i]
	}

	fillReturns(p.TotalValue, p.DailyReturn, p.CumulativeReturn)
	fillReturns(p.Close, p.DailyAssetReturn, p.CumulativeAssetReturn)

	return p, nil
}

// fillReturns derives day-over-day and compounded returns from a value series.
// Index 0 is zero for both; the cumulative series is forced to exactly zero
// there regardless of rounding.
func fillReturns(values, daily, cumulative []float64) {
	compounded := 1.0

	for i := 1; i < len(values); i++ {
		// Same sentinel policy as the revaluation factor: a zero previous
		// value yields a zero return instead of a division fault.
		if values[i-1] != 0 {
			daily[i] = values[i]/values[i-1] - 1
		}

		compounded *= 1 + daily[i]
		cumulative[i] = compounded - 1
	}

	if len(cumulative) > 0 {
		cumulative[0] = 0
	}
}
