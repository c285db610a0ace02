// Package marketdata downloads historical bars from a market data provider
// and stores them as Parquet files readable by the backtest data source.
package marketdata

import (
	"github.com/polygon-io/client-go/rest/models"

	"github.com/quantview-lab/quantview/pkg/errors"
)

// Timespan is the bar interval requested from a provider, in compact notation.
type Timespan string

const (
	TimespanOneMinute      Timespan = "1m"
	TimespanFiveMinutes    Timespan = "5m"
	TimespanFifteenMinutes Timespan = "15m"
	TimespanThirtyMinutes  Timespan = "30m"
	TimespanOneHour        Timespan = "1h"
	TimespanFourHours      Timespan = "4h"
	TimespanOneDay         Timespan = "1d"
	TimespanOneWeek        Timespan = "1w"
	TimespanOneMonth       Timespan = "1M"
)

// Multiplier returns the numeric prefix of the timespan.
func (t Timespan) Multiplier() int {
	switch t {
	case TimespanFiveMinutes:
		return 5
	case TimespanFifteenMinutes:
		return 15
	case TimespanThirtyMinutes:
		return 30
	case TimespanFourHours:
		return 4
	default:
		return 1
	}
}

// PolygonTimespan maps the compact notation to the Polygon resolution unit.
func (t Timespan) PolygonTimespan() (models.Timespan, error) {
	switch t {
	case TimespanOneMinute, TimespanFiveMinutes, TimespanFifteenMinutes, TimespanThirtyMinutes:
		return models.Minute, nil
	case TimespanOneHour, TimespanFourHours:
		return models.Hour, nil
	case TimespanOneDay:
		return models.Day, nil
	case TimespanOneWeek:
		return models.Week, nil
	case TimespanOneMonth:
		return models.Month, nil
	default:
		return "", errors.Newf(errors.ErrCodeInvalidTimespan, "unsupported timespan: %s", t)
	}
}

// BinanceInterval maps the compact notation to a Binance kline interval string.
// The notations coincide, so this only rejects values Binance does not serve.
func (t Timespan) BinanceInterval() (string, error) {
	switch t {
	case TimespanOneMinute, TimespanFiveMinutes, TimespanFifteenMinutes, TimespanThirtyMinutes,
		TimespanOneHour, TimespanFourHours, TimespanOneDay, TimespanOneWeek, TimespanOneMonth:
		return string(t), nil
	default:
		return "", errors.Newf(errors.ErrCodeInvalidTimespan, "unsupported timespan for Binance: %s", t)
	}
}
