// Package indicator computes the technical indicators consumed by the
// crossover strategy. All functions are pure: they never mutate their input
// and always return freshly allocated series.
package indicator

import (
	"math"

	"github.com/quantview-lab/quantview/internal/types"
	"github.com/quantview-lab/quantview/pkg/errors"
)

// ComputeMovingAverages calculates trailing simple moving averages of the
// close price over the short and long windows. The two output series are
// aligned index-for-index with the input bars.
//
// The first window-1 entries of each series average over however many bars
// are available (a minimum window of one), so the early history produces
// values instead of gaps at the cost of being statistically thinner.
func ComputeMovingAverages(prices []types.MarketData, shortWindow, longWindow int) (types.MovingAverageSeries, error) {
	if shortWindow <= 0 || longWindow <= 0 {
		return types.MovingAverageSeries{}, errors.Newf(errors.ErrCodeInvalidParameter,
			"moving average windows must be positive integers, got short=%d long=%d", shortWindow, longWindow)
	}

	if shortWindow >= longWindow {
		return types.MovingAverageSeries{}, errors.Newf(errors.ErrCodeInvalidParameter,
			"short window must be strictly less than long window, got short=%d long=%d", shortWindow, longWindow)
	}

	if len(prices) == 0 {
		return types.MovingAverageSeries{}, errors.New(errors.ErrCodeInvalidInput, "price series is empty")
	}

	for i, bar := range prices {
		if math.IsNaN(bar.Close) || math.IsInf(bar.Close, 0) {
			return types.MovingAverageSeries{}, errors.Newf(errors.ErrCodeInvalidInput,
				"close price at index %d is not a finite number", i)
		}
	}

	return types.MovingAverageSeries{
		Short:       rollingMean(prices, shortWindow),
		Long:        rollingMean(prices, longWindow),
		ShortWindow: shortWindow,
		LongWindow:  longWindow,
	}, nil
}

// rollingMean computes the trailing mean of the close price over up to window
// bars ending at each index, using a running sum.
func rollingMean(prices []types.MarketData, window int) []float64 {
	out := make([]float64, len(prices))
	sum := 0.0

	for i, bar := range prices {
		sum += bar.Close
		if i >= window {
			sum -= prices[i-window].Close
		}

		n := i + 1
		if n > window {
			n = window
		}

		out[i] = sum / float64(n)
	}

	return out
}
