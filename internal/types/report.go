package types

import (
	"encoding/json"
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// PerformanceReport is an immutable snapshot of summary metrics derived from a
// completed portfolio simulation and the underlying price series.
//
// SharpeRatio is NaN when the annualized volatility is zero: the ratio is
// undefined there, which consumers must render differently from a true zero.
type PerformanceReport struct {
	// ID is the unique identifier for this backtest run.
	ID string `yaml:"id" json:"id"`
	// Timestamp is when this backtest run was executed.
	Timestamp time.Time `yaml:"timestamp" json:"timestamp"`
	// Symbol of the instrument.
	Symbol string `yaml:"symbol" json:"symbol"`
	// InitialCapital is the starting cash balance.
	InitialCapital float64 `yaml:"initial_capital" json:"initial_capital"`
	// FinalPortfolioValue is the portfolio value at the last bar.
	FinalPortfolioValue float64 `yaml:"final_portfolio_value" json:"final_portfolio_value"`
	// CumulativeStrategyReturn is the total strategy return over the run.
	CumulativeStrategyReturn float64 `yaml:"cumulative_strategy_return" json:"cumulative_strategy_return"`
	// CumulativeAssetReturn is the total buy-and-hold return over the run.
	CumulativeAssetReturn float64 `yaml:"cumulative_asset_return" json:"cumulative_asset_return"`
	// AnnualizedStrategyReturn is the strategy return compounded to one year.
	AnnualizedStrategyReturn float64 `yaml:"annualized_strategy_return" json:"annualized_strategy_return"`
	// AnnualizedAssetReturn is the buy-and-hold return compounded to one year.
	AnnualizedAssetReturn float64 `yaml:"annualized_asset_return" json:"annualized_asset_return"`
	// AnnualizedStrategyVolatility is the annualized standard deviation of daily strategy returns.
	AnnualizedStrategyVolatility float64 `yaml:"annualized_strategy_volatility" json:"annualized_strategy_volatility"`
	// AnnualizedAssetVolatility is the annualized standard deviation of daily asset returns.
	AnnualizedAssetVolatility float64 `yaml:"annualized_asset_volatility" json:"annualized_asset_volatility"`
	// SharpeRatio is the annualized return over annualized volatility. NaN when undefined.
	SharpeRatio float64 `yaml:"sharpe_ratio" json:"-"`
	// MaxDrawdown is the largest peak-to-trough decline of portfolio value. Always <= 0.
	MaxDrawdown float64 `yaml:"max_drawdown" json:"max_drawdown"`
}

// MarshalJSON emits SharpeRatio as null when it is NaN, since JSON has no NaN
// literal and the undefined case must stay distinguishable from zero.
func (r PerformanceReport) MarshalJSON() ([]byte, error) {
	type alias PerformanceReport

	var sharpe *float64
	if !math.IsNaN(r.SharpeRatio) {
		sharpe = &r.SharpeRatio
	}

	return json.Marshal(struct {
		alias
		SharpeRatio *float64 `json:"sharpe_ratio"`
	}{
		alias:       alias(r),
		SharpeRatio: sharpe,
	})
}

// WritePerformanceReport writes the report to the given path as YAML.
func WritePerformanceReport(path string, report PerformanceReport) error {
	// Marshal the struct to YAML
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("failed to marshal performance report to YAML: %w", err)
	}

	// Write the YAML data to the file
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write performance report to file: %w", err)
	}

	return nil
}

// Summary renders the report as a human-readable block for the CLI.
func (r PerformanceReport) Summary() string {
	var b strings.Builder

	fmt.Fprintf(&b, "Backtest %s (%s)\n", r.ID, r.Symbol)
	fmt.Fprintf(&b, "  Initial Capital:           %s\n", formatCurrency(r.InitialCapital))
	fmt.Fprintf(&b, "  Final Portfolio Value:     %s\n", formatCurrency(r.FinalPortfolioValue))
	fmt.Fprintf(&b, "  Strategy Return:           %s%%\n", formatPercent(r.CumulativeStrategyReturn))
	fmt.Fprintf(&b, "  Buy & Hold Return:         %s%%\n", formatPercent(r.CumulativeAssetReturn))
	fmt.Fprintf(&b, "  Annualized Return:         %s%%\n", formatPercent(r.AnnualizedStrategyReturn))
	fmt.Fprintf(&b, "  Annualized Volatility:     %s%%\n", formatPercent(r.AnnualizedStrategyVolatility))
	fmt.Fprintf(&b, "  Sharpe Ratio:              %s\n", formatSharpe(r.SharpeRatio))
	fmt.Fprintf(&b, "  Max Drawdown:              %s%%\n", formatPercent(r.MaxDrawdown))

	return b.String()
}

func formatCurrency(value float64) string {
	return "$" + decimal.NewFromFloat(value).StringFixed(2)
}

func formatPercent(fraction float64) string {
	return decimal.NewFromFloat(fraction * 100).StringFixed(2)
}

func formatSharpe(value float64) string {
	if math.IsNaN(value) {
		return "N/A"
	}

	return decimal.NewFromFloat(value).StringFixed(2)
}
