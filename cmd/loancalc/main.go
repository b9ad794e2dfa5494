package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/loancalc/loancalc/internal/calculator"
	"github.com/loancalc/loancalc/internal/config"
	"github.com/loancalc/loancalc/pkg/constants"
	"github.com/loancalc/loancalc/pkg/output"
	"github.com/loancalc/loancalc/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", "", "path to configuration file; when empty the loan flags are used")
	principal := flag.Float64("principal", constants.DefaultPrincipal, "principal amount")
	rate := flag.Float64("rate", constants.DefaultAnnualRate, "annual interest rate in percent")
	term := flag.Int("term", constants.DefaultTermYears, "loan term in years")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	exportFlag := flag.String("export", "", "path to export the schedule as CSV")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	flag.Parse()

	var conf *config.Configuration
	if *configLocation != "" {
		var err error
		conf, err = config.LoadConfiguration(*configLocation)
		if err != nil {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
			return
		}
	} else {
		conf = &config.Configuration{
			Loans: []config.Loan{
				{Name: "loan", Principal: *principal, AnnualRate: *rate, TermYears: *term},
			},
			Logging: config.LoggingConfig{Format: "console"},
		}
	}

	// Initialize logging based on config and CLI override
	logger, err := config.InitializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	exportFile := conf.Output.ExportFile
	if *exportFlag != "" {
		exportFile = *exportFlag
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	calc := calculator.New(logger)
	for _, loan := range conf.Loans {
		records, err := calc.Calculate(loan.Terms())
		if err != nil {
			logger.Fatal("failed to compute amortization schedule",
				zap.String("op", "main"),
				zap.String("loan", loan.Name),
				zap.Error(err),
			)
		}

		switch outputFormat {
		case constants.OutputFormatPretty:
			output.PrettyFormat(os.Stdout, calc.Terms(), records)
		case constants.OutputFormatCSV:
			if err := output.WriteCSV(os.Stdout, records); err != nil {
				logger.Fatal("failed to write schedule",
					zap.String("op", "main"),
					zap.Error(err),
				)
			}
		}

		if exportFile != "" {
			if err := calc.ExportCSV(exportFile); err != nil {
				logger.Error("failed to export schedule",
					zap.String("op", "main"),
					zap.String("path", exportFile),
					zap.Error(err),
				)
			}
		}
	}
}
