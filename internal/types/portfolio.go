package types

import "time"

// PortfolioState is the day-by-day result of simulating a position series
// against a price series. All slices are parallel and aligned with the input
// bars. It is produced once by the simulator and read-only afterwards.
type PortfolioState struct {
	// Time is the bar timestamp for each row.
	Time []time.Time `json:"time"`
	// Close is the close price for each row.
	Close []float64 `json:"close"`
	// Position is the simulated position for each row.
	Position []Position `json:"position"`
	// Cash is the uninvested balance for each row.
	Cash []float64 `json:"cash"`
	// Holdings is the market value of the invested balance for each row.
	Holdings []float64 `json:"holdings"`
	// TotalValue is Cash + Holdings for each row.
	TotalValue []float64 `json:"total_value"`
	// DailyReturn is the day-over-day change of TotalValue. Zero at row 0.
	DailyReturn []float64 `json:"daily_return"`
	// CumulativeReturn is the compounded DailyReturn. Exactly zero at row 0.
	CumulativeReturn []float64 `json:"cumulative_return"`
	// DailyAssetReturn is the day-over-day change of Close, the uninvested
	// buy-and-hold benchmark. Zero at row 0.
	DailyAssetReturn []float64 `json:"daily_asset_return"`
	// CumulativeAssetReturn is the compounded DailyAssetReturn. Exactly zero at row 0.
	CumulativeAssetReturn []float64 `json:"cumulative_asset_return"`
}

// Len returns the number of rows in the portfolio.
func (p *PortfolioState) Len() int {
	if p == nil {
		return 0
	}

	return len(p.TotalValue)
}
