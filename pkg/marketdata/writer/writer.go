// Package writer persists downloaded market data bars.
package writer

import (
	"github.com/quantview-lab/quantview/internal/types"
)

// MarketDataWriter writes bars to a destination in three phases: Initialize
// prepares the destination, Write appends one bar at a time, and Finalize
// flushes everything and returns the path of the produced file.
type MarketDataWriter interface {
	// Initialize sets up the writer, creating tables or files as needed.
	Initialize() error
	// Write persists a single bar.
	Write(data types.MarketData) error
	// Finalize completes the write and returns the output file path.
	Finalize() (outputPath string, err error)
	// Close releases any resources held by the writer.
	Close() error
	// GetOutputPath returns the configured output file path.
	GetOutputPath() string
}
