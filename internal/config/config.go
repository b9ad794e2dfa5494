// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"

	"github.com/loancalc/loancalc/pkg/amortization"
	"github.com/loancalc/loancalc/pkg/constants"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for loancalc.
type Configuration struct {
	Loans   []Loan
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// Loan holds the terms for one loan to compute.
type Loan struct {
	Name       string
	Principal  float64
	AnnualRate float64
	TermYears  int
}

// Terms converts a configured loan into engine terms.
func (l Loan) Terms() amortization.Terms {
	return amortization.Terms{
		Name:       l.Name,
		Principal:  l.Principal,
		AnnualRate: l.AnnualRate,
		TermYears:  l.TermYears,
	}
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format     string `yaml:"format,omitempty"`     // pretty, csv
	ExportFile string `yaml:"exportFile,omitempty"` // optional CSV export destination
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	viper.SetConfigFile(configPath)
	viper.AutomaticEnv()

	viper.SetConfigType("yml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	err := viper.Unmarshal(&configuration)
	if err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	return &configuration, nil
}

// ValidateConfiguration performs general validation of the configuration and
// returns warnings. Hard input validation happens per-loan at calculation
// time; these warnings cover configuration shape only.
func (c *Configuration) ValidateConfiguration() []string {
	var warnings []string

	if len(c.Loans) == 0 {
		warnings = append(warnings, "no loans configured; nothing to calculate")
	}

	for i, loan := range c.Loans {
		if loan.Name == "" {
			warnings = append(warnings, fmt.Sprintf("loan %d has no name", i+1))
		}
		if loan.TermYears > constants.MaxRecommendedTermYears {
			warnings = append(warnings, fmt.Sprintf("loan '%s' has a term of %d years which exceeds the recommended maximum of %d",
				loan.Name, loan.TermYears, constants.MaxRecommendedTermYears))
		}
	}

	return warnings
}
