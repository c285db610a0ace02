package types

import "time"

type SignalType string

const (
	// SignalTypeBuyLong marks the bar where the short average crosses above the long average
	SignalTypeBuyLong SignalType = "buy_long"
	// SignalTypeSellLong marks the bar where the short average crosses below the long average
	SignalTypeSellLong SignalType = "sell_long"
	// SignalTypeNoAction marks a bar with no crossover
	SignalTypeNoAction SignalType = "no_action"
)

// Signal is a discrete crossover event extracted from a signal series.
type Signal struct {
	// Time is the time of the signal
	Time time.Time `json:"time"`
	// Type is the type of the signal
	Type SignalType `json:"type"`
	// Symbol is the symbol of the signal
	Symbol string `json:"symbol"`
	// Price is the close price at the time of the signal
	Price float64 `json:"price"`
	// Reason is the reason for the signal
	Reason string `json:"reason"`
}
