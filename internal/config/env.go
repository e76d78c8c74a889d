package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// EnvPrefix is prepended to every environment override, e.g. LEY73_YEAR
const EnvPrefix = "ley73"

// Settings are the process defaults that command line flags override
type Settings struct {
	Year          int    `envconfig:"YEAR" default:"0"`
	ConstantsFile string `envconfig:"CONSTANTS_FILE" default:""`
	LogLevel      string `envconfig:"LOG_LEVEL" default:"info"`
	Format        string `envconfig:"FORMAT" default:"console"`
}

// LoadSettings reads the LEY73_* environment
func LoadSettings() (*Settings, error) {
	s := new(Settings)
	if err := envconfig.Process(EnvPrefix, s); err != nil {
		return nil, fmt.Errorf("failed to read environment: %w", err)
	}
	return s, nil
}
