package datasource

import (
	"context"
	"testing"
	"time"

	"github.com/moznion/go-optional"
	"github.com/stretchr/testify/suite"

	"github.com/quantview-lab/quantview/internal/types"
	"github.com/quantview-lab/quantview/pkg/errors"
)

type InMemoryDataSourceTestSuite struct {
	suite.Suite
}

func TestInMemoryDataSourceSuite(t *testing.T) {
	suite.Run(t, new(InMemoryDataSourceTestSuite))
}

func dailyBars(n int) []types.MarketData {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]types.MarketData, n)

	for i := range bars {
		bars[i] = types.MarketData{
			Symbol: "AAPL",
			Time:   start.AddDate(0, 0, i),
			Open:   100,
			High:   101,
			Low:    99,
			Close:  100 + float64(i),
			Volume: 1000,
		}
	}

	return bars
}

func (suite *InMemoryDataSourceTestSuite) TestRejectsUnsortedBars() {
	bars := dailyBars(3)
	bars[0], bars[2] = bars[2], bars[0]

	_, err := NewInMemoryDataSource(bars)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidInput))
}

func (suite *InMemoryDataSourceTestSuite) TestRejectsDuplicateTimestamps() {
	bars := dailyBars(3)
	bars[2].Time = bars[1].Time

	_, err := NewInMemoryDataSource(bars)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidInput))
}

func (suite *InMemoryDataSourceTestSuite) TestReadAllBars() {
	source, err := NewInMemoryDataSource(dailyBars(5))
	suite.Require().NoError(err)

	bars, err := source.ReadBars(context.Background(), optional.None[time.Time](), optional.None[time.Time]())
	suite.NoError(err)
	suite.Len(bars, 5)
}

func (suite *InMemoryDataSourceTestSuite) TestReadBarsWithinBounds() {
	source, err := NewInMemoryDataSource(dailyBars(10))
	suite.Require().NoError(err)

	start := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 1, 7, 0, 0, 0, 0, time.UTC)

	bars, err := source.ReadBars(context.Background(), optional.Some(start), optional.Some(end))
	suite.NoError(err)
	suite.Len(bars, 5)

	// Bounds are inclusive.
	suite.Equal(start, bars[0].Time)
	suite.Equal(end, bars[len(bars)-1].Time)
}

func (suite *InMemoryDataSourceTestSuite) TestCount() {
	source, err := NewInMemoryDataSource(dailyBars(10))
	suite.Require().NoError(err)

	count, err := source.Count(context.Background(), optional.None[time.Time](), optional.None[time.Time]())
	suite.NoError(err)
	suite.Equal(10, count)

	start := time.Date(2024, 1, 6, 0, 0, 0, 0, time.UTC)

	count, err = source.Count(context.Background(), optional.Some(start), optional.None[time.Time]())
	suite.NoError(err)
	suite.Equal(5, count)
}

func (suite *InMemoryDataSourceTestSuite) TestSourceCopiesInput() {
	bars := dailyBars(3)

	source, err := NewInMemoryDataSource(bars)
	suite.Require().NoError(err)

	bars[0].Close = -1

	read, err := source.ReadBars(context.Background(), optional.None[time.Time](), optional.None[time.Time]())
	suite.NoError(err)
	suite.Equal(100.0, read[0].Close)
}
