// Package constants provides shared constants for the loancalc application.
package constants

// Financial constants
const (
	// MonthsPerYear is the number of months in a year
	MonthsPerYear = 12

	// DecimalPrecision is the precision for currency rounding (2 decimal places)
	DecimalPrecision = 100

	// PercentageMultiplier is used for percentage conversions
	PercentageMultiplier = 100.0

	// CurrencyTolerance is the tolerance for currency comparisons (1 cent)
	CurrencyTolerance = 0.01

	// ToleranceForComparison is the tolerance for financial comparisons
	ToleranceForComparison = 1.0

	// MaxRecommendedTermYears is the upper bound on loan terms considered
	// sane; longer terms still compute but draw a configuration warning.
	MaxRecommendedTermYears = 50
)

// Default loan terms used when no flags or configuration override them.
const (
	DefaultPrincipal  = 100000.0
	DefaultAnnualRate = 5.0
	DefaultTermYears  = 30
)

// Output format constants
const (
	// OutputFormatPretty is the human-readable output format
	OutputFormatPretty = "pretty"

	// OutputFormatCSV is the CSV output format
	OutputFormatCSV = "csv"

	// CSVHeader is the header row of an exported schedule.
	CSVHeader = "Month,Payment,Principal,Interest,Balance,Total Interest"
)

// Configuration file constants
const (
	// DefaultConfigFile is the default configuration file name
	DefaultConfigFile = "config.yaml"

	// DefaultServerConfigFile is the default server configuration file name
	DefaultServerConfigFile = "server-config.yaml"
)

// Server configuration defaults
const (
	// DefaultServerAddress is the default HTTP listen address for the API
	DefaultServerAddress = ":8080"

	// DefaultMaxRequestBytes is the default maximum request body size (64 KB)
	DefaultMaxRequestBytes int64 = 64 * 1024
)
