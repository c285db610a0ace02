// Package datasource provides read access to stored market data bars.
//
// Every implementation returns bars sorted ascending by time with no duplicate
// timestamps; a store that cannot satisfy that contract refuses to return data
// rather than handing malformed series to the backtest.
package datasource

import (
	"context"
	"time"

	"github.com/moznion/go-optional"

	"github.com/quantview-lab/quantview/internal/types"
	"github.com/quantview-lab/quantview/pkg/errors"
)

type DataSource interface {
	// ReadBars returns all bars within the optional time bounds (inclusive),
	// sorted ascending by time.
	ReadBars(ctx context.Context, start, end optional.Option[time.Time]) ([]types.MarketData, error)
	// Count returns the number of bars within the optional time bounds.
	Count(ctx context.Context, start, end optional.Option[time.Time]) (int, error)
	// Close releases any resources held by the data source.
	Close() error
}

// ValidateBars checks the contract required by the backtest: strictly
// ascending timestamps with no duplicates.
func ValidateBars(bars []types.MarketData) error {
	for i := 1; i < len(bars); i++ {
		if bars[i].Time.Equal(bars[i-1].Time) {
			return errors.Newf(errors.ErrCodeInvalidInput,
				"duplicate bar timestamp %s at index %d", bars[i].Time.Format(time.RFC3339), i)
		}

		if bars[i].Time.Before(bars[i-1].Time) {
			return errors.Newf(errors.ErrCodeInvalidInput,
				"bars out of order at index %d: %s before %s",
				i, bars[i].Time.Format(time.RFC3339), bars[i-1].Time.Format(time.RFC3339))
		}
	}

	return nil
}

// inBounds reports whether t falls within the optional inclusive bounds.
func inBounds(t time.Time, start, end optional.Option[time.Time]) bool {
	if start.IsSome() && t.Before(start.Unwrap()) {
		return false
	}

	if end.IsSome() && t.After(end.Unwrap()) {
		return false
	}

	return true
}
