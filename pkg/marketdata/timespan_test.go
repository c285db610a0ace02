package marketdata

import (
	"testing"

	"github.com/polygon-io/client-go/rest/models"
	"github.com/stretchr/testify/suite"

	"github.com/quantview-lab/quantview/pkg/errors"
)

type TimespanTestSuite struct {
	suite.Suite
}

func TestTimespanSuite(t *testing.T) {
	suite.Run(t, new(TimespanTestSuite))
}

func (suite *TimespanTestSuite) TestMultiplier() {
	tests := []struct {
		timespan Timespan
		expected int
	}{
		{TimespanOneMinute, 1},
		{TimespanFiveMinutes, 5},
		{TimespanFifteenMinutes, 15},
		{TimespanThirtyMinutes, 30},
		{TimespanOneHour, 1},
		{TimespanFourHours, 4},
		{TimespanOneDay, 1},
		{TimespanOneWeek, 1},
		{TimespanOneMonth, 1},
	}

	for _, tc := range tests {
		suite.Equal(tc.expected, tc.timespan.Multiplier(), "timespan %s", tc.timespan)
	}
}

func (suite *TimespanTestSuite) TestPolygonTimespan() {
	tests := []struct {
		timespan Timespan
		expected models.Timespan
	}{
		{TimespanOneMinute, models.Minute},
		{TimespanThirtyMinutes, models.Minute},
		{TimespanOneHour, models.Hour},
		{TimespanFourHours, models.Hour},
		{TimespanOneDay, models.Day},
		{TimespanOneWeek, models.Week},
		{TimespanOneMonth, models.Month},
	}

	for _, tc := range tests {
		actual, err := tc.timespan.PolygonTimespan()
		suite.NoError(err)
		suite.Equal(tc.expected, actual, "timespan %s", tc.timespan)
	}
}

func (suite *TimespanTestSuite) TestUnsupportedTimespan() {
	_, err := Timespan("7m").PolygonTimespan()
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidTimespan))

	_, err = Timespan("2w").BinanceInterval()
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidTimespan))
}

func (suite *TimespanTestSuite) TestBinanceInterval() {
	interval, err := TimespanOneDay.BinanceInterval()
	suite.NoError(err)
	suite.Equal("1d", interval)

	interval, err = TimespanOneMonth.BinanceInterval()
	suite.NoError(err)
	suite.Equal("1M", interval)
}
