package backtest

import (
	"context"

	"go.uber.org/zap"

	"github.com/quantview-lab/quantview/internal/datasource"
	"github.com/quantview-lab/quantview/internal/indicator"
	"github.com/quantview-lab/quantview/internal/logger"
	"github.com/quantview-lab/quantview/internal/strategy"
	"github.com/quantview-lab/quantview/internal/types"
	"github.com/quantview-lab/quantview/pkg/errors"
)

// Result bundles every series produced by one backtest run. All fields are
// produced once and read-only afterwards; each stage consumed an immutable
// snapshot and returned a new one.
type Result struct {
	Symbol         string                    `json:"symbol"`
	Prices         []types.MarketData        `json:"prices"`
	MovingAverages types.MovingAverageSeries `json:"moving_averages"`
	Signals        types.SignalSeries        `json:"signals"`
	Positions      types.PositionSeries      `json:"positions"`
	Events         []types.Signal            `json:"events"`
	Portfolio      *types.PortfolioState     `json:"portfolio"`
	Report         types.PerformanceReport   `json:"report"`
}

// Engine orchestrates one backtest run: read bars, compute moving averages,
// derive signals and positions, simulate the portfolio, compute metrics. It
// halts on the first typed error from any stage.
type Engine struct {
	config Config
	source datasource.DataSource
	log    *logger.Logger
}

// NewEngine creates an engine over a validated config and a bar source.
func NewEngine(config Config, source datasource.DataSource, log *logger.Logger) *Engine {
	return &Engine{
		config: config,
		source: source,
		log:    log,
	}
}

// Run executes the pipeline and returns the completed result.
func (e *Engine) Run(ctx context.Context) (*Result, error) {
	if err := e.config.Validate(); err != nil {
		return nil, err
	}

	prices, err := e.source.ReadBars(ctx, e.config.StartTime, e.config.EndTime)
	if err != nil {
		return nil, err
	}

	if len(prices) == 0 {
		return nil, errors.Newf(errors.ErrCodeInvalidInput,
			"no bars available for %s in the requested period", e.config.Symbol)
	}

	e.log.Info("Loaded bars",
		zap.String("symbol", e.config.Symbol),
		zap.Int("count", len(prices)),
	)

	mas, err := indicator.ComputeMovingAverages(prices, e.config.ShortWindow, e.config.LongWindow)
	if err != nil {
		return nil, err
	}

	signals, positions, err := strategy.GenerateSignals(prices, mas)
	if err != nil {
		return nil, err
	}

	events := strategy.CrossoverEvents(e.config.Symbol, prices, signals)
	e.log.Info("Generated signals",
		zap.Int("crossovers", len(events)),
	)

	portfolio, err := RunBacktest(prices, positions, e.config.InitialCapital)
	if err != nil {
		return nil, err
	}

	report, err := ComputeMetrics(portfolio)
	if err != nil {
		return nil, err
	}

	report.Symbol = e.config.Symbol

	e.log.Info("Backtest complete",
		zap.String("run_id", report.ID),
		zap.Float64("final_value", report.FinalPortfolioValue),
		zap.Float64("max_drawdown", report.MaxDrawdown),
	)

	return &Result{
		Symbol:         e.config.Symbol,
		Prices:         prices,
		MovingAverages: mas,
		Signals:        signals,
		Positions:      positions,
		Events:         events,
		Portfolio:      portfolio,
		Report:         report,
	}, nil
}
