package datasource

import (
	"context"
	"time"

	"github.com/moznion/go-optional"

	"github.com/quantview-lab/quantview/internal/types"
)

// InMemoryDataSource serves bars held in memory. Used for tests and for
// pipelines that already fetched their bars.
type InMemoryDataSource struct {
	bars []types.MarketData
}

// NewInMemoryDataSource creates a data source over the given bars. The bars
// must already be sorted ascending with unique timestamps.
func NewInMemoryDataSource(bars []types.MarketData) (*InMemoryDataSource, error) {
	if err := ValidateBars(bars); err != nil {
		return nil, err
	}

	copied := make([]types.MarketData, len(bars))
	copy(copied, bars)

	return &InMemoryDataSource{bars: copied}, nil
}

// ReadBars implements DataSource.
func (s *InMemoryDataSource) ReadBars(_ context.Context, start, end optional.Option[time.Time]) ([]types.MarketData, error) {
	var out []types.MarketData

	for _, bar := range s.bars {
		if inBounds(bar.Time, start, end) {
			out = append(out, bar)
		}
	}

	return out, nil
}

// Count implements DataSource.
func (s *InMemoryDataSource) Count(ctx context.Context, start, end optional.Option[time.Time]) (int, error) {
	bars, err := s.ReadBars(ctx, start, end)
	if err != nil {
		return 0, err
	}

	return len(bars), nil
}

// Close implements DataSource.
func (s *InMemoryDataSource) Close() error {
	return nil
}
