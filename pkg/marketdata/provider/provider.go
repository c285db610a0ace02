// Package provider fetches historical bars from external market data APIs.
package provider

import (
	"context"
	"time"

	"github.com/polygon-io/client-go/rest/models"

	"github.com/quantview-lab/quantview/pkg/errors"
	"github.com/quantview-lab/quantview/pkg/marketdata/writer"
)

// ProviderType identifies a supported market data provider.
type ProviderType string

const (
	ProviderPolygon ProviderType = "polygon"
	ProviderBinance ProviderType = "binance"
)

// OnDownloadProgress receives periodic progress callbacks during a download.
type OnDownloadProgress = func(current float64, total float64, message string)

// Provider downloads historical bars for one ticker and hands each bar to the
// configured writer.
type Provider interface {
	// ConfigWriter sets the destination for downloaded bars. Must be called
	// before Download.
	ConfigWriter(writer writer.MarketDataWriter)
	// Download fetches all bars for the ticker in [startDate, endDate], writes
	// them through the configured writer, and returns the output path. Cancel
	// the context to abort mid-download.
	Download(ctx context.Context, ticker string, startDate time.Time, endDate time.Time, multiplier int, timespan models.Timespan, onProgress OnDownloadProgress) (path string, err error)
}

// NewMarketDataProvider creates a provider of the given type. The Polygon
// provider requires an API key passed as the config value.
func NewMarketDataProvider(providerType ProviderType, config any) (Provider, error) {
	switch providerType {
	case ProviderBinance:
		return NewBinanceClient()
	case ProviderPolygon:
		apiKey, ok := config.(string)
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidProvider, "polygon provider requires an API key string config")
		}

		return NewPolygonClient(apiKey)
	default:
		return nil, errors.Newf(errors.ErrCodeInvalidProvider, "unsupported market data provider: %s", providerType)
	}
}
