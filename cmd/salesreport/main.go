// Package main implements a batch tool that joins a sales record against a
// price catalogue and reports the total revenue.
package main

import (
	"errors"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/mreyes/salesreport/internal/catalogue"
	"github.com/mreyes/salesreport/internal/config"
	"github.com/mreyes/salesreport/internal/loader"
	"github.com/mreyes/salesreport/internal/report"
	"github.com/mreyes/salesreport/internal/sales"
	"github.com/mreyes/salesreport/internal/service"
	"github.com/mreyes/salesreport/pkg/bootstrap"
	"github.com/mreyes/salesreport/pkg/config/configloader"
)

const appName = "salesreport"

// errUsage indicates a wrong number of positional arguments.
var errUsage = errors.New("wrong number of arguments")

// defaults are the built-in configuration values, overridable via
// config.yaml, .env, or SALESREPORT_-prefixed environment variables.
var defaults = map[string]any{
	"log.level":   "info",
	"report.file": "SalesResults.txt",
}

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			log.Printf("application run failed: %v", err)
		}
		os.Exit(1)
	}
}

// run drives the pipeline: load catalogue, load sales, aggregate, report.
// Row-level problems end up in the report; only a wrong argument count or
// unloadable inputs are fatal.
func run(args []string, stderr io.Writer) error {
	if len(args) != 2 {
		fmt.Fprintf(stderr, "Usage: %s <catalogue.json> <sales.json>\n", appName)
		return errUsage
	}
	cataloguePath, salesPath := args[0], args[1]

	start := time.Now()

	cfg, cfgErr := configloader.Load[*config.Config](appName, defaults)
	if cfgErr != nil {
		return fmt.Errorf("failed to load configuration: %w", cfgErr)
	}

	logger := bootstrap.NewLogger(os.Stdout, cfg.Log.Level).
		With(slog.String("run_id", uuid.NewString()))
	slog.SetDefault(logger)
	logger.Debug("configuration loaded", slog.String("config", cfg.String()))

	// Both inputs are loaded before deciding to stop, so that a run with two
	// bad files reports both problems.
	entries, catErr := loader.Load[catalogue.Entry](logger, cataloguePath)
	records, salesErr := loader.Load[sales.RawRecord](logger, salesPath)
	if catErr != nil || salesErr != nil {
		return errors.New("unable to load input files")
	}

	result := service.NewService(logger).ComputeTotal(entries, records)
	elapsed := time.Since(start)

	reporter := report.NewReporter(logger, os.Stdout, cfg.Report.File)
	err := reporter.Write(report.Report{
		TotalCost: result.TotalCost,
		Elapsed:   elapsed,
		Errors:    result.Errors,
	})
	if err != nil {
		// A report that reached the console still counts as a completed run.
		logger.Error("unable to persist results", slog.Any("error", err))
	}
	return nil
}
