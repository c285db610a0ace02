package backtest

import (
	"math"
	"time"

	"github.com/google/uuid"

	"github.com/quantview-lab/quantview/internal/types"
	"github.com/quantview-lab/quantview/pkg/errors"
)

// AnnualizationFactor is the number of trading days per year used to scale
// daily returns and volatility.
const AnnualizationFactor = 252

// ComputeMetrics reduces a completed portfolio time series into summary
// performance metrics. It returns a typed error, never a panic, when the
// portfolio is empty or missing required series, since it is commonly invoked
// on best-effort upstream output.
func ComputeMetrics(portfolio *types.PortfolioState) (types.PerformanceReport, error) {
	if portfolio.Len() == 0 {
		return types.PerformanceReport{}, errors.New(errors.ErrCodeMetricsNotComputable, "portfolio is empty")
	}

	n := portfolio.Len()
	if len(portfolio.DailyReturn) != n ||
		len(portfolio.DailyAssetReturn) != n ||
		len(portfolio.CumulativeReturn) != n ||
		len(portfolio.CumulativeAssetReturn) != n ||
		len(portfolio.Cash) != n {
		return types.PerformanceReport{}, errors.New(errors.ErrCodeMetricsNotComputable,
			"portfolio is missing required return series")
	}

	last := n - 1
	cumulativeStrategy := portfolio.CumulativeReturn[last]
	cumulativeAsset := portfolio.CumulativeAssetReturn[last]

	strategyVolatility := sampleStdev(portfolio.DailyReturn) * math.Sqrt(AnnualizationFactor)
	assetVolatility := sampleStdev(portfolio.DailyAssetReturn) * math.Sqrt(AnnualizationFactor)

	annualizedStrategy := annualize(cumulativeStrategy, n)
	annualizedAsset := annualize(cumulativeAsset, n)

	// Undefined, not zero: a zero-volatility run has no meaningful
	// risk-adjusted return and must render differently from Sharpe = 0.
	sharpe := math.NaN()
	if strategyVolatility > 0 {
		sharpe = annualizedStrategy / strategyVolatility
	}

	return types.PerformanceReport{
		ID:                           uuid.NewString(),
		Timestamp:                    time.Now().UTC(),
		InitialCapital:               portfolio.TotalValue[0],
		FinalPortfolioValue:          portfolio.TotalValue[last],
		CumulativeStrategyReturn:     cumulativeStrategy,
		CumulativeAssetReturn:        cumulativeAsset,
		AnnualizedStrategyReturn:     annualizedStrategy,
		AnnualizedAssetReturn:        annualizedAsset,
		AnnualizedStrategyVolatility: strategyVolatility,
		AnnualizedAssetVolatility:    assetVolatility,
		SharpeRatio:                  sharpe,
		MaxDrawdown:                  maxDrawdown(portfolio.TotalValue),
	}, nil
}

// annualize compounds a cumulative return over n daily observations to a
// one-year horizon.
func annualize(cumulativeReturn float64, n int) float64 {
	if n == 0 {
		return 0
	}

	return math.Pow(1+cumulativeReturn, AnnualizationFactor/float64(n)) - 1
}

// sampleStdev returns the sample standard deviation (n-1 denominator) of the
// given observations, or 0 for fewer than two observations.
func sampleStdev(values []float64) float64 {
	n := len(values)
	if n < 2 {
		return 0
	}

	mean := 0.0
	for _, v := range values {
		mean += v
	}
	mean /= float64(n)

	sumSquares := 0.0
	for _, v := range values {
		d := v - mean
		sumSquares += d * d
	}

	return math.Sqrt(sumSquares / float64(n-1))
}

// maxDrawdown returns the most negative peak-to-trough decline of the value
// series as a fraction of the running peak. Always <= 0; exactly 0 for a
// non-decreasing series.
func maxDrawdown(values []float64) float64 {
	worst := 0.0
	runningMax := math.Inf(-1)

	for _, v := range values {
		if v > runningMax {
			runningMax = v
		}

		if runningMax > 0 {
			drawdown := (v - runningMax) / runningMax
			if drawdown < worst {
				worst = drawdown
			}
		}
	}

	return worst
}
