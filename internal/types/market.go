package types

import "time"

// MarketData represents a single OHLCV bar for a symbol.
type MarketData struct {
	// Id is the unique identifier of the data point.
	Id string `json:"id"`
	// Symbol is the ticker symbol of the instrument.
	Symbol string `json:"symbol"`
	// Time is the bar timestamp.
	Time time.Time `json:"time"`
	// Open is the opening price.
	Open float64 `json:"open"`
	// High is the highest price.
	High float64 `json:"high"`
	// Low is the lowest price.
	Low float64 `json:"low"`
	// Close is the closing price.
	Close float64 `json:"close"`
	// Volume is the traded volume.
	Volume float64 `json:"volume"`
}
