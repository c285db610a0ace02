package marketdata

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/quantview-lab/quantview/internal/logger"
	"github.com/quantview-lab/quantview/pkg/errors"
	"github.com/quantview-lab/quantview/pkg/marketdata/provider"
)

type ClientTestSuite struct {
	suite.Suite
	log *logger.Logger
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (suite *ClientTestSuite) SetupTest() {
	suite.log = logger.NewNopLogger()
}

func (suite *ClientTestSuite) TestNewClientBinance() {
	client, err := NewClient(ClientConfig{
		ProviderType: provider.ProviderBinance,
		WriterType:   WriterDuckDB,
		DataPath:     suite.T().TempDir(),
	}, nil, suite.log)
	suite.NoError(err)
	suite.NotNil(client)
}

func (suite *ClientTestSuite) TestNewClientPolygonRequiresKey() {
	_, err := NewClient(ClientConfig{
		ProviderType: provider.ProviderPolygon,
		WriterType:   WriterDuckDB,
		DataPath:     suite.T().TempDir(),
	}, nil, suite.log)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}

func (suite *ClientTestSuite) TestNewClientUnsupportedProvider() {
	_, err := NewClient(ClientConfig{
		ProviderType: "alpaca",
		WriterType:   WriterDuckDB,
		DataPath:     suite.T().TempDir(),
	}, nil, suite.log)
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidConfiguration))
}

func (suite *ClientTestSuite) TestDownloadParamsValidation() {
	client, err := NewClient(ClientConfig{
		ProviderType: provider.ProviderBinance,
		WriterType:   WriterDuckDB,
		DataPath:     suite.T().TempDir(),
	}, nil, suite.log)
	suite.Require().NoError(err)

	// End date before start date.
	_, err = client.Download(context.Background(), DownloadParams{
		Ticker:    "BTCUSDT",
		StartDate: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Timespan:  TimespanOneDay,
	})
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameter))

	// Missing ticker.
	_, err = client.Download(context.Background(), DownloadParams{
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Timespan:  TimespanOneDay,
	})
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidParameter))
}

func (suite *ClientTestSuite) TestDownloadRejectsUnknownTimespan() {
	client, err := NewClient(ClientConfig{
		ProviderType: provider.ProviderBinance,
		WriterType:   WriterDuckDB,
		DataPath:     suite.T().TempDir(),
	}, nil, suite.log)
	suite.Require().NoError(err)

	_, err = client.Download(context.Background(), DownloadParams{
		Ticker:    "BTCUSDT",
		StartDate: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:   time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
		Timespan:  Timespan("7m"),
	})
	suite.Error(err)
	suite.True(errors.HasCode(err, errors.ErrCodeInvalidTimespan))
}
