package backtest

import (
	"encoding/json"
	"reflect"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/invopop/jsonschema"
	"github.com/moznion/go-optional"
	"gopkg.in/yaml.v3"

	"github.com/quantview-lab/quantview/pkg/errors"
)

// Config is the flat parameter object supplied to the pipeline entry point.
// The pipeline validates these values but does not source them.
type Config struct {
	// Symbol is the ticker to backtest.
	Symbol string `yaml:"symbol" json:"symbol" validate:"required" jsonschema:"title=Symbol,description=Ticker symbol to backtest"`
	// ShortWindow is the short moving average window in bars.
	ShortWindow int `yaml:"short_window" json:"short_window" validate:"required,gt=0" jsonschema:"title=Short Window,description=Short moving average window in bars,minimum=1"`
	// LongWindow is the long moving average window in bars. Must exceed ShortWindow.
	LongWindow int `yaml:"long_window" json:"long_window" validate:"required,gtfield=ShortWindow" jsonschema:"title=Long Window,description=Long moving average window in bars;must be greater than the short window,minimum=2"`
	// InitialCapital is the starting cash balance in USD.
	InitialCapital float64 `yaml:"initial_capital" json:"initial_capital" validate:"required,gt=0" jsonschema:"title=Initial Capital,description=Starting capital for the backtest in USD,minimum=0"`
	// DataPath is the Parquet file holding the downloaded bars.
	DataPath string `yaml:"data_path" json:"data_path" validate:"required" jsonschema:"title=Data Path,description=Path to the Parquet file with historical bars"`
	// StartTime optionally bounds the backtest period.
	StartTime optional.Option[time.Time] `yaml:"start_time" json:"start_time" jsonschema:"title=Start Time,description=Optional start time for the backtest period"`
	// EndTime optionally bounds the backtest period.
	EndTime optional.Option[time.Time] `yaml:"end_time" json:"end_time" jsonschema:"title=End Time,description=Optional end time for the backtest period"`
}

// UnmarshalYAML implements custom unmarshaling for Config
func (c *Config) UnmarshalYAML(unmarshal func(interface{}) error) error {
	type plainConfig struct {
		Symbol         string     `yaml:"symbol"`
		ShortWindow    int        `yaml:"short_window"`
		LongWindow     int        `yaml:"long_window"`
		InitialCapital float64    `yaml:"initial_capital"`
		DataPath       string     `yaml:"data_path"`
		StartTime      *time.Time `yaml:"start_time"`
		EndTime        *time.Time `yaml:"end_time"`
	}

	var config plainConfig
	if err := unmarshal(&config); err != nil {
		return err
	}

	c.Symbol = config.Symbol
	c.ShortWindow = config.ShortWindow
	c.LongWindow = config.LongWindow
	c.InitialCapital = config.InitialCapital
	c.DataPath = config.DataPath

	if config.StartTime != nil {
		c.StartTime = optional.Some(*config.StartTime)
	}

	if config.EndTime != nil {
		c.EndTime = optional.Some(*config.EndTime)
	}

	return nil
}

// ParseConfig unmarshals and validates a YAML config document.
func ParseConfig(content []byte) (Config, error) {
	var config Config
	if err := yaml.Unmarshal(content, &config); err != nil {
		return Config{}, errors.Wrap(errors.ErrCodeInvalidConfiguration, "failed to parse config", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

// Validate checks the config against its struct constraints.
func (c Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfiguration, "invalid config", err)
	}

	return nil
}

// GenerateSchema generates a JSON schema for the Config
func (c *Config) GenerateSchema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
		ExpandedStruct:             true,
		AllowAdditionalProperties:  false,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t.String() == "optional.Option[time.Time]" {
				return &jsonschema.Schema{
					Type:   "string",
					Format: "date-time",
				}
			}

			return nil
		},
	}

	schema := reflector.Reflect(c)
	schema.Title = "backtest-config"
	schema.Description = "Configuration schema for a moving average crossover backtest"
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return schema
}

// GenerateSchemaJSON generates a JSON schema string for the Config
func (c *Config) GenerateSchemaJSON() (string, error) {
	schemaBytes, err := json.MarshalIndent(c.GenerateSchema(), "", "  ")
	if err != nil {
		return "", err
	}

	return string(schemaBytes), nil
}

// TestConfig returns a valid config for tests.
func TestConfig() Config {
	return Config{
		Symbol:         "AAPL",
		ShortWindow:    50,
		LongWindow:     200,
		InitialCapital: 100000,
		DataPath:       "data/AAPL.parquet",
		StartTime:      optional.None[time.Time](),
		EndTime:        optional.None[time.Time](),
	}
}
