package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/quantview-lab/quantview/internal/backtest"
	"github.com/quantview-lab/quantview/internal/datasource"
	"github.com/quantview-lab/quantview/internal/logger"
	"github.com/quantview-lab/quantview/internal/types"
)

type ServerTestSuite struct {
	suite.Suite
	server *httptest.Server
	result *backtest.Result
}

func TestServerSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

// SetupSuite runs one backtest over a rise-then-fall market and serves it.
func (suite *ServerTestSuite) SetupSuite() {
	closes := []float64{100, 101, 102, 103, 104, 105, 106, 107, 108, 109, 110,
		109, 108, 107, 106, 105, 104, 103, 102, 101}

	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	bars := make([]types.MarketData, len(closes))

	for i, c := range closes {
		bars[i] = types.MarketData{
			Symbol: "TEST",
			Time:   start.AddDate(0, 0, i),
			Open:   c,
			High:   c,
			Low:    c,
			Close:  c,
			Volume: 1000,
		}
	}

	source, err := datasource.NewInMemoryDataSource(bars)
	suite.Require().NoError(err)

	config := backtest.TestConfig()
	config.Symbol = "TEST"
	config.ShortWindow = 2
	config.LongWindow = 5
	config.InitialCapital = 10000

	log := logger.NewNopLogger()

	result, err := backtest.NewEngine(config, source, log).Run(context.Background())
	suite.Require().NoError(err)

	suite.result = result
	suite.server = httptest.NewServer(NewServer(result, log).Handler())
}

func (suite *ServerTestSuite) TearDownSuite() {
	suite.server.Close()
}

func (suite *ServerTestSuite) get(path string, v any) *http.Response {
	resp, err := http.Get(suite.server.URL + path)
	suite.Require().NoError(err)

	defer resp.Body.Close()

	if v != nil {
		suite.Require().NoError(json.NewDecoder(resp.Body).Decode(v))
	}

	return resp
}

func (suite *ServerTestSuite) TestHealth() {
	var body map[string]string

	resp := suite.get("/healthz", &body)
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Equal("ok", body["status"])
}

func (suite *ServerTestSuite) TestReport() {
	var report types.PerformanceReport

	resp := suite.get("/api/v1/report", &report)
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Equal("application/json", resp.Header.Get("Content-Type"))
	suite.Equal("TEST", report.Symbol)
	suite.Equal(10000.0, report.InitialCapital)
}

func (suite *ServerTestSuite) TestEquity() {
	var points []equityPoint

	resp := suite.get("/api/v1/equity", &points)
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Len(points, suite.result.Portfolio.Len())
	suite.Equal(10000.0, points[0].TotalValue)
	suite.Equal(0.0, points[0].CumulativeReturn)
}

func (suite *ServerTestSuite) TestSignals() {
	var events []types.Signal

	resp := suite.get("/api/v1/signals", &events)
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Len(events, len(suite.result.Events))
}

func (suite *ServerTestSuite) TestPrices() {
	var prices []types.MarketData

	resp := suite.get("/api/v1/prices", &prices)
	suite.Equal(http.StatusOK, resp.StatusCode)
	suite.Len(prices, len(suite.result.Prices))
}

func (suite *ServerTestSuite) TestUnknownRouteIs404() {
	resp := suite.get("/api/v1/trades", nil)
	suite.Equal(http.StatusNotFound, resp.StatusCode)
}

func (suite *ServerTestSuite) TestMethodNotAllowed() {
	resp, err := http.Post(suite.server.URL+"/api/v1/report", "application/json", nil)
	suite.Require().NoError(err)

	defer resp.Body.Close()
	suite.Equal(http.StatusMethodNotAllowed, resp.StatusCode)
}
