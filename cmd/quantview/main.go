package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/urfave/cli/v3"

	"github.com/quantview-lab/quantview/internal/api"
	"github.com/quantview-lab/quantview/internal/backtest"
	"github.com/quantview-lab/quantview/internal/datasource"
	"github.com/quantview-lab/quantview/internal/logger"
	"github.com/quantview-lab/quantview/internal/types"
	"github.com/quantview-lab/quantview/pkg/marketdata"
	"github.com/quantview-lab/quantview/pkg/marketdata/provider"
)

func downloadCommand() *cli.Command {
	return &cli.Command{
		Name:  "download",
		Usage: "Download historical market data into a Parquet file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "ticker",
				Aliases:  []string{"t"},
				Usage:    "Ticker symbol to download",
				Required: true,
			},
			&cli.TimestampFlag{
				Name:    "start",
				Aliases: []string{"s"},
				Usage:   "Start date in `YYYY-MM-DD` format",
				Config: cli.TimestampConfig{
					Layouts: []string{"2006-01-02"},
				},
				Required: true,
			},
			&cli.TimestampFlag{
				Name:    "end",
				Aliases: []string{"e"},
				Usage:   "End date in `YYYY-MM-DD` format. Defaults to today.",
				Value:   time.Now(),
				Config: cli.TimestampConfig{
					Layouts: []string{"2006-01-02"},
				},
			},
			&cli.StringFlag{
				Name:    "provider",
				Aliases: []string{"p"},
				Usage:   fmt.Sprintf("Data provider to use (%s, %s)", provider.ProviderPolygon, provider.ProviderBinance),
				Value:   string(provider.ProviderPolygon),
			},
			&cli.StringFlag{
				Name:  "timespan",
				Usage: "Bar interval, e.g. 1d, 1h, 5m",
				Value: string(marketdata.TimespanOneDay),
			},
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "Path to the data output directory",
				Value:   "data",
			},
		},
		Action: downloadAction,
	}
}

func downloadAction(ctx context.Context, cmd *cli.Command) error {
	appLogger, err := logger.NewLogger()
	if err != nil {
		return err
	}
	defer appLogger.Sync()

	client, err := marketdata.NewClient(marketdata.ClientConfig{
		ProviderType:  provider.ProviderType(cmd.String("provider")),
		WriterType:    marketdata.WriterDuckDB,
		DataPath:      cmd.String("data"),
		PolygonApiKey: os.Getenv("POLYGON_API_KEY"),
	}, nil, appLogger)
	if err != nil {
		return err
	}

	path, err := client.Download(ctx, marketdata.DownloadParams{
		Ticker:    cmd.String("ticker"),
		StartDate: cmd.Timestamp("start"),
		EndDate:   cmd.Timestamp("end"),
		Timespan:  marketdata.Timespan(cmd.String("timespan")),
	})
	if err != nil {
		return err
	}

	fmt.Printf("Downloaded bars to %s\n", path)

	return nil
}

func backtestCommand() *cli.Command {
	return &cli.Command{
		Name:  "backtest",
		Usage: "Run a moving average crossover backtest over downloaded bars",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    "Path to the YAML backtest config",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Usage:   "Optional path to write the performance report as YAML",
			},
		},
		Action: backtestAction,
	}
}

func runBacktest(ctx context.Context, configPath string, appLogger *logger.Logger) (*backtest.Result, error) {
	content, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}

	config, err := backtest.ParseConfig(content)
	if err != nil {
		return nil, err
	}

	source, err := datasource.NewDuckDBDataSource(config.DataPath, appLogger)
	if err != nil {
		return nil, err
	}
	defer source.Close()

	return backtest.NewEngine(config, source, appLogger).Run(ctx)
}

func backtestAction(ctx context.Context, cmd *cli.Command) error {
	appLogger, err := logger.NewLogger()
	if err != nil {
		return err
	}
	defer appLogger.Sync()

	result, err := runBacktest(ctx, cmd.String("config"), appLogger)
	if err != nil {
		return err
	}

	fmt.Println(result.Report.Summary())

	if output := cmd.String("output"); output != "" {
		if err := types.WritePerformanceReport(output, result.Report); err != nil {
			return err
		}

		fmt.Printf("Report written to %s\n", output)
	}

	return nil
}

func schemaCommand() *cli.Command {
	return &cli.Command{
		Name:   "schema",
		Usage:  "Print the JSON schema for the backtest config",
		Action: schemaAction,
	}
}

func schemaAction(_ context.Context, _ *cli.Command) error {
	var config backtest.Config

	schema, err := config.GenerateSchemaJSON()
	if err != nil {
		return err
	}

	fmt.Println(schema)

	return nil
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run a backtest and serve the result over HTTP",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "config",
				Aliases:  []string{"c"},
				Usage:    "Path to the YAML backtest config",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "addr",
				Aliases: []string{"a"},
				Usage:   "Address to listen on",
				Value:   ":8080",
			},
		},
		Action: serveAction,
	}
}

func serveAction(ctx context.Context, cmd *cli.Command) error {
	appLogger, err := logger.NewLogger()
	if err != nil {
		return err
	}
	defer appLogger.Sync()

	result, err := runBacktest(ctx, cmd.String("config"), appLogger)
	if err != nil {
		return err
	}

	return api.NewServer(result, appLogger).ListenAndServe(cmd.String("addr"))
}

func main() {
	cmd := &cli.Command{
		Name:  "quantview",
		Usage: "Download market data and backtest a moving average crossover strategy",
		Commands: []*cli.Command{
			downloadCommand(),
			backtestCommand(),
			schemaCommand(),
			serveCommand(),
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		log.Fatal(err)
	}
}
