package main

import (
	"flag"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/swcost/cocomo-estimate/internal/catalog"
	"github.com/swcost/cocomo-estimate/internal/config"
	"github.com/swcost/cocomo-estimate/internal/engine"
	"github.com/swcost/cocomo-estimate/pkg/constants"
	"github.com/swcost/cocomo-estimate/pkg/output"
	"github.com/swcost/cocomo-estimate/pkg/validation"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	sizeKLOC := flag.Float64("kloc", 0, "project size in thousands of lines of code (0 = config default)")
	mode := flag.String("mode", string(catalog.ModeOrganic), "development mode: organic, semidetached, embedded")
	laborCost := flag.Float64("cost", 0, "monthly cost of one person-month (0 = config default)")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")

	// One rating-code flag per cost driver, defaulting to the nominal rating.
	driverFlags := make(map[string]*string)
	for _, driver := range catalog.Drivers() {
		codes := make([]string, 0, len(driver.Levels))
		for _, level := range driver.Levels {
			codes = append(codes, level.Code)
		}
		driverFlags[driver.Key] = flag.String(strings.ToLower(driver.Key), "N",
			fmt.Sprintf("%s rating (%s)", driver.Name, strings.Join(codes, ", ")))
	}
	flag.Parse()

	// Load the config file to get logging configuration and form defaults
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := config.NewLogger(conf.Logging, *logLevel)
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
		outputFormat = constants.OutputFormatPretty // Default to pretty format
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	// Fall back to the configured form defaults for omitted flags.
	kloc := *sizeKLOC
	if kloc == 0 {
		kloc = conf.Form.SizeKLOC
	}
	cost := *laborCost
	if cost == 0 {
		cost = conf.Form.MonthlyLaborCost
	}

	// Map the rating codes to multipliers through the catalog.
	drivers := make(map[string]float64, len(driverFlags))
	for _, driver := range catalog.Drivers() {
		code := strings.ToUpper(strings.TrimSpace(*driverFlags[driver.Key]))
		if code == "" {
			continue
		}
		multiplier, ok := driver.ValueForCode(code)
		if !ok {
			logger.Fatal(fmt.Sprintf("driver %s has no rating level %s", driver.Key, code),
				zap.String("op", "main"),
			)
		}
		drivers[driver.Key] = multiplier
	}

	// Run the estimation.
	result, err := engine.Estimate(engine.Input{
		SizeKLOC:         kloc,
		Mode:             catalog.Mode(strings.ToLower(strings.TrimSpace(*mode))),
		Drivers:          drivers,
		MonthlyLaborCost: cost,
	})
	if err != nil {
		logger.Fatal("failed to compute estimate",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(result)
	case constants.OutputFormatCSV:
		output.CsvFormat(result)
	}

}
