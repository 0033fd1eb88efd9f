// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/viper"

	"github.com/swcost/cocomo-estimate/pkg/constants"
	"github.com/swcost/cocomo-estimate/pkg/validation"
)

// Configuration holds all configuration for cocomo-estimate.
type Configuration struct {
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
	Form    FormDefaults  `yaml:"form,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// FormDefaults holds the values prefilled into the estimation form and used
// by the CLI when a flag is omitted.
type FormDefaults struct {
	SizeKLOC         float64 `mapstructure:"sizeKloc" yaml:"sizeKloc,omitempty"`
	MonthlyLaborCost float64 `mapstructure:"monthlyLaborCost" yaml:"monthlyLaborCost,omitempty"`
}

// DefaultConfiguration returns the configuration used when no config file is
// present.
func DefaultConfiguration() *Configuration {
	return &Configuration{
		Form: FormDefaults{
			SizeKLOC:         constants.DefaultSizeKLOC,
			MonthlyLaborCost: constants.DefaultMonthlyLaborCost,
		},
	}
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there. A missing file is not an error: the tool is fully
// usable from flags alone, so defaults are returned instead.
func LoadConfiguration(configPath string) (*Configuration, error) {
	if _, err := os.Stat(configPath); errors.Is(err, fs.ErrNotExist) {
		return DefaultConfiguration(), nil
	}

	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	configuration := DefaultConfiguration()
	if err := viper.Unmarshal(configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	if configuration.Form.SizeKLOC == 0 {
		configuration.Form.SizeKLOC = constants.DefaultSizeKLOC
	}
	if configuration.Form.MonthlyLaborCost == 0 {
		configuration.Form.MonthlyLaborCost = constants.DefaultMonthlyLaborCost
	}

	return configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if c.Output.Format != "" {
		if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
			warnings = append(warnings, fmt.Sprintf("Output format will be ignored: %v", err))
		}
	}

	switch c.Logging.Level {
	case "", "debug", "info", "warn", "warning", "error":
	default:
		warnings = append(warnings, fmt.Sprintf("Unknown log level '%s' will fail logger initialization", c.Logging.Level))
	}

	if err := validation.ValidateMagnitude("form default sizeKloc", c.Form.SizeKLOC); err != nil {
		warnings = append(warnings, fmt.Sprintf("Form default ignored: %v", err))
	}
	if err := validation.ValidateMagnitude("form default monthlyLaborCost", c.Form.MonthlyLaborCost); err != nil {
		warnings = append(warnings, fmt.Sprintf("Form default ignored: %v", err))
	}

	return warnings
}
