// Package strategy converts moving averages into trade signals and positions.
//
// The crossover state at bar i is "short average above long average". A state
// flip produces a discrete buy or sell signal at the flipping bar. The
// position series lags the crossover state by exactly one bar: a state
// observable at the close of bar i-1 is only actable from bar i, which keeps
// the simulation free of look-ahead bias.
package strategy

import (
	"fmt"

	"github.com/quantview-lab/quantview/internal/types"
	"github.com/quantview-lab/quantview/pkg/errors"
)

// GenerateSignals derives the per-bar crossover signal and the lagged position
// series from a price series and its moving averages. Both outputs are aligned
// index-for-index with prices. The inputs are never mutated.
func GenerateSignals(prices []types.MarketData, mas types.MovingAverageSeries) (types.SignalSeries, types.PositionSeries, error) {
	if mas.Short == nil || mas.Long == nil {
		return nil, nil, errors.New(errors.ErrCodeMissingColumn, "both moving average series are required")
	}

	if len(mas.Short) != len(prices) || len(mas.Long) != len(prices) {
		return nil, nil, errors.Newf(errors.ErrCodeMissingColumn,
			"moving average series misaligned with prices: short=%d long=%d prices=%d",
			len(mas.Short), len(mas.Long), len(prices))
	}

	n := len(prices)
	signals := make(types.SignalSeries, n)
	positions := make(types.PositionSeries, n)
	prevAbove := false

	for i := 0; i < n; i++ {
		above := mas.Short[i] > mas.Long[i]

		switch {
		case i == 0:
			// No predecessor state, so no crossover can be observed.
			signals[i] = types.SignalTypeNoAction
		case above && !prevAbove:
			signals[i] = types.SignalTypeBuyLong
		case !above && prevAbove:
			signals[i] = types.SignalTypeSellLong
		default:
			signals[i] = types.SignalTypeNoAction
		}

		// One-bar execution lag: the position at bar i is the crossover state
		// of bar i-1. Bar 0 is always flat.
		if i > 0 && prevAbove {
			positions[i] = types.PositionLong
		} else {
			positions[i] = types.PositionFlat
		}

		prevAbove = above
	}

	return signals, positions, nil
}

// CrossoverEvents extracts the discrete buy/sell transitions from a signal
// series as timestamped events for reporting.
func CrossoverEvents(symbol string, prices []types.MarketData, signals types.SignalSeries) []types.Signal {
	var events []types.Signal

	for i, signal := range signals {
		if signal == types.SignalTypeNoAction {
			continue
		}

		direction := "above"
		if signal == types.SignalTypeSellLong {
			direction = "below"
		}

		events = append(events, types.Signal{
			Time:   prices[i].Time,
			Type:   signal,
			Symbol: symbol,
			Price:  prices[i].Close,
			Reason: fmt.Sprintf("short SMA crossed %s long SMA", direction),
		})
	}

	return events
}
