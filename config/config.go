// Package config holds the run configuration. Values are layered: built-in
// defaults, then an optional YAML file, then HILD_* environment variables,
// then command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"github.com/ghjan/hildsalary/convert"
)

// EnvPrefix is the prefix of the environment variables read by Load.
const EnvPrefix = "HILD"

type Config struct {
	InputFile string `yaml:"input_file" envconfig:"INPUT_FILE"`
	OutputDir string `yaml:"output_dir" envconfig:"OUTPUT_DIR"`

	// Inclusive year bounds; convert.Unbounded disables a side.
	YearLower int `yaml:"year_lower" envconfig:"YEAR_LOWER"`
	YearUpper int `yaml:"year_upper" envconfig:"YEAR_UPPER"`

	// Jobs are matched as prefixes of a row's first cell and processed in this order.
	Jobs    []string               `yaml:"jobs" envconfig:"JOBS"`
	Columns convert.ColumnIndexSet `yaml:"columns" envconfig:"COLUMNS"`

	// SortSheets orders sheets by year before scanning.
	SortSheets bool `yaml:"sort_sheets" envconfig:"SORT_SHEETS"`
	// ContinueOnError skips a failing job category instead of aborting the run.
	ContinueOnError bool `yaml:"continue_on_error" envconfig:"CONTINUE_ON_ERROR"`

	SummaryFile string `yaml:"summary_file" envconfig:"SUMMARY_FILE"`
	ReportFile  string `yaml:"report_file" envconfig:"REPORT_FILE"`

	// ExitCode is the process status after a fatal error.
	ExitCode int `yaml:"exit_code" envconfig:"EXIT_CODE"`

	Logging LoggingConfig `yaml:"logging" envconfig:"LOGGING"`
}

type LoggingConfig struct {
	Level  string `yaml:"level" envconfig:"LEVEL"`
	Format string `yaml:"format" envconfig:"FORMAT"`
}

// Default returns the settings for the 1929-1990 white-collar export.
func Default() *Config {
	return &Config{
		InputFile: "tjansteman_privatsektor_1518916_wcw_1929-1990.xls",
		OutputDir: "./plots/",
		YearLower: convert.Unbounded,
		// the sheets change layout after 1946
		YearUpper: 1946,
		Jobs:      []string{"Teknisk personal", "Kontorspersonal", "Butikspersonal"},
		Columns:   convert.DefaultColumns(),
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds the configuration from defaults, the YAML file at path (if
// not empty) and the environment.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
		}
	}
	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.InputFile == "" {
		errs = append(errs, errors.New("input file is required"))
	}
	if c.OutputDir == "" {
		errs = append(errs, errors.New("output directory is required"))
	}
	if len(c.Jobs) == 0 {
		errs = append(errs, errors.New("at least one job category is required"))
	}
	for i, job := range c.Jobs {
		if job == "" {
			errs = append(errs, fmt.Errorf("job %d is empty", i))
		}
	}
	for name, col := range map[string]int{
		"men avg salary":   c.Columns.Men.AvgSalary,
		"women avg salary": c.Columns.Women.AvgSalary,
		"total avg salary": c.Columns.Total.AvgSalary,
	} {
		if col < 0 {
			errs = append(errs, fmt.Errorf("%s column must not be negative, got %d", name, col))
		}
	}
	if c.YearLower != convert.Unbounded && c.YearUpper != convert.Unbounded && c.YearLower > c.YearUpper {
		errs = append(errs, fmt.Errorf("year lower bound %d is after upper bound %d", c.YearLower, c.YearUpper))
	}
	return errors.Join(errs...)
}
