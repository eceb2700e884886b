package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, `Retirement Drawdown Strategy Comparison

Projects, year by year, the outcome of drawing down a retirement fund under
competing investment strategies - physical gold, an index tracker inside a
SIPP, or a 50/50 blend - against historical market prices and UK tax rules,
and ranks the strategies by total value realized.

Usage:
  %s [options]

Options:
`, os.Args[0])
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, `
Examples:
  %s -list                                 Show available strategies
  %s -s1 gold -s2 ftse100                  Compare with config defaults
  %s -s1 gold -s2 nasdaq100 -start 1985 -horizon 25
  %s -s1 gold -s2 sp500 -capital 750000 -rate 3.5 -details
  %s -s1 gold -s2 gold-ftse100 -pdf        Also write a PDF report

Configuration:
  Fee percentages and simulation defaults live in config.yaml (see
  default-config.yaml for the format). Command-line flags override the
  simulation defaults; fee settings come from the config file only.
`, os.Args[0], os.Args[0], os.Args[0], os.Args[0], os.Args[0])
	}

	configFile := flag.String("config", "config.yaml", "Path to YAML configuration file")
	strategy1 := flag.String("s1", "", "First strategy ID (default from config)")
	strategy2 := flag.String("s2", "", "Second strategy ID (default from config)")
	capital := flag.Float64("capital", 0, "Starting capital in GBP (default from config)")
	startYear := flag.Int("start", 0, "First simulated year (default from config)")
	rate := flag.Float64("rate", 0, "Annual withdrawal as % of starting capital (default from config)")
	horizon := flag.Int("horizon", 0, "Number of years to simulate (default from config)")
	showDetails := flag.Bool("details", false, "Show year-by-year breakdown in console")
	generatePDF := flag.Bool("pdf", false, "Write a PDF report to the report output directory")
	listStrategies := flag.Bool("list", false, "List available strategies and exit")
	verbose := flag.Bool("v", false, "Verbose logging")
	flag.Parse()

	log := newLogger(*verbose)

	if *listStrategies {
		PrintStrategyList()
		return
	}

	config, err := LoadConfig(*configFile)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	id1, id2 := config.Comparison.Strategy1, config.Comparison.Strategy2
	if *strategy1 != "" {
		id1 = *strategy1
	}
	if *strategy2 != "" {
		id2 = *strategy2
	}

	inputs := SimulationInputs{
		Capital:               config.Simulation.Capital,
		StartYear:             config.Simulation.StartYear,
		WithdrawalRatePercent: config.Simulation.WithdrawalRatePercent,
		HorizonYears:          config.Simulation.HorizonYears,
	}
	if *capital > 0 {
		inputs.Capital = *capital
	}
	if *startYear > 0 {
		inputs.StartYear = *startYear
	}
	if *rate > 0 {
		inputs.WithdrawalRatePercent = *rate
	}
	if *horizon > 0 {
		inputs.HorizonYears = *horizon
	}

	PrintHeader(id1, id2, inputs, config.Fees)

	started := time.Now()
	result, err := CompareStrategies(id1, id2, inputs, config.Fees)
	if err != nil {
		log.Fatal().Err(err).Str("strategy1", id1).Str("strategy2", id2).Msg("comparison failed")
	}
	log.Debug().Dur("elapsed", time.Since(started)).Msg("comparison complete")

	PrintComparisonSummary(result)
	if *showDetails {
		PrintYearTable(result)
	}

	if *generatePDF {
		dir := config.Report.GetOutputDir()
		if err := os.MkdirAll(dir, 0o755); err != nil {
			log.Fatal().Err(err).Str("dir", dir).Msg("failed to create report directory")
		}
		path := filepath.Join(dir, fmt.Sprintf("comparison-%s-vs-%s-%d.pdf", id1, id2, inputs.StartYear))
		report := NewComparisonPDFReport(result)
		if err := report.Generate(path); err != nil {
			log.Fatal().Err(err).Str("path", path).Msg("failed to write PDF report")
		}
		fmt.Printf("PDF report written to %s\n", path)
	}
}

// newLogger builds the CLI logger. The engine itself never logs; everything
// observability-related stays in this layer.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}
	return zerolog.New(writer).Level(level).With().Timestamp().Logger()
}
