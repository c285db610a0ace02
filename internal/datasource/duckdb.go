package datasource

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/marcboeker/go-duckdb"
	"github.com/moznion/go-optional"
	"go.uber.org/zap"

	"github.com/quantview-lab/quantview/internal/logger"
	"github.com/quantview-lab/quantview/internal/types"
	"github.com/quantview-lab/quantview/pkg/errors"
)

// DuckDBDataSource reads bars from a Parquet file through an in-memory DuckDB
// view. Repeated backtests over the same downloaded range hit the local file
// instead of the market data provider.
type DuckDBDataSource struct {
	db     *sql.DB
	logger *logger.Logger
	sq     squirrel.StatementBuilderType
}

// NewDuckDBDataSource opens an in-memory DuckDB instance and exposes the given
// Parquet file as the bars view.
func NewDuckDBDataSource(parquetPath string, log *logger.Logger) (*DuckDBDataSource, error) {
	db, err := sql.Open("duckdb", "")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataSourceUnavailable, "failed to open DuckDB", err)
	}

	log.Debug("Initializing DuckDB data source", zap.String("path", parquetPath))

	// Squirrel doesn't support CREATE VIEW, so this stays raw SQL. DuckDB does
	// not accept bound parameters in DDL either.
	query := fmt.Sprintf(`CREATE OR REPLACE VIEW bars AS SELECT * FROM read_parquet('%s')`, parquetPath)
	if _, err := db.Exec(query); err != nil {
		db.Close()

		return nil, errors.Wrapf(errors.ErrCodeDataSourceUnavailable, err, "failed to create bars view over %s", parquetPath)
	}

	return &DuckDBDataSource{
		db:     db,
		logger: log,
		sq:     squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar),
	}, nil
}

// ReadBars implements DataSource.
func (d *DuckDBDataSource) ReadBars(ctx context.Context, start, end optional.Option[time.Time]) ([]types.MarketData, error) {
	builder := d.sq.
		Select("id", "symbol", "time", "open", "high", "low", "close", "volume").
		From("bars").
		OrderBy("time ASC")

	if start.IsSome() {
		builder = builder.Where(squirrel.GtOrEq{"time": start.Unwrap()})
	}

	if end.IsSome() {
		builder = builder.Where(squirrel.LtOrEq{"time": end.Unwrap()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build bars query", err)
	}

	rows, err := d.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to query bars", err)
	}
	defer rows.Close()

	var bars []types.MarketData

	for rows.Next() {
		var bar types.MarketData
		if err := rows.Scan(&bar.Id, &bar.Symbol, &bar.Time, &bar.Open, &bar.High, &bar.Low, &bar.Close, &bar.Volume); err != nil {
			return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed to scan bar", err)
		}

		bars = append(bars, bar)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(errors.ErrCodeQueryFailed, "failed while iterating bars", err)
	}

	if err := ValidateBars(bars); err != nil {
		return nil, err
	}

	d.logger.Debug("Read bars from DuckDB", zap.Int("count", len(bars)))

	return bars, nil
}

// Count implements DataSource.
func (d *DuckDBDataSource) Count(ctx context.Context, start, end optional.Option[time.Time]) (int, error) {
	builder := d.sq.Select("COUNT(*)").From("bars")

	if start.IsSome() {
		builder = builder.Where(squirrel.GtOrEq{"time": start.Unwrap()})
	}

	if end.IsSome() {
		builder = builder.Where(squirrel.LtOrEq{"time": end.Unwrap()})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeQueryFailed, "failed to build count query", err)
	}

	var count int
	if err := d.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, errors.Wrap(errors.ErrCodeQueryFailed, "failed to count bars", err)
	}

	return count, nil
}

// Close implements DataSource.
func (d *DuckDBDataSource) Close() error {
	return d.db.Close()
}
