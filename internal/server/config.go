package server

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/swcost/cocomo-estimate/internal/config"
	"github.com/swcost/cocomo-estimate/pkg/constants"
)

// Config defines runtime parameters for the HTTP server.
type Config struct {
	Address string               `yaml:"address"`
	Logging config.LoggingConfig `yaml:"logging"`
	Form    config.FormDefaults  `yaml:"form"`
}

// LoadConfig loads the server configuration from YAML. If the file does not
// exist, defaults are returned without error.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		Address: constants.DefaultServerAddress,
		Form: config.FormDefaults{
			SizeKLOC:         constants.DefaultSizeKLOC,
			MonthlyLaborCost: constants.DefaultMonthlyLaborCost,
		},
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read server config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse server config: %w", err)
	}

	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.Address == "" {
		c.Address = constants.DefaultServerAddress
	}
	if c.Form.SizeKLOC <= 0 {
		c.Form.SizeKLOC = constants.DefaultSizeKLOC
	}
	if c.Form.MonthlyLaborCost <= 0 {
		c.Form.MonthlyLaborCost = constants.DefaultMonthlyLaborCost
	}
}
