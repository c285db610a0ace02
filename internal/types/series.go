package types

// MovingAverageSeries holds two trailing simple moving averages aligned with
// the price series they were derived from.
type MovingAverageSeries struct {
	// Short is the short-window moving average, one value per bar.
	Short []float64 `json:"short"`
	// Long is the long-window moving average, one value per bar.
	Long []float64 `json:"long"`
	// ShortWindow is the window length used for Short.
	ShortWindow int `json:"short_window"`
	// LongWindow is the window length used for Long. Always greater than ShortWindow.
	LongWindow int `json:"long_window"`
}

// Len returns the number of bars covered by the series.
func (m MovingAverageSeries) Len() int {
	return len(m.Short)
}

// Position is the market exposure held during a bar.
type Position int

const (
	// PositionFlat means fully in cash
	PositionFlat Position = 0
	// PositionLong means fully invested
	PositionLong Position = 1
)

// SignalSeries is the per-bar crossover signal, aligned with the price series.
type SignalSeries []SignalType

// PositionSeries is the per-bar position, aligned with the price series.
// The position lags the crossover state by one bar.
type PositionSeries []Position
