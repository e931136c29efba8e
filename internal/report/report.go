// Package report formats and persists the aggregation results.
package report

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

// Report is the material of one run: the computed total, the wall-clock time
// it took, and the row-level errors collected along the way.
type Report struct {
	TotalCost float64
	Elapsed   time.Duration
	Errors    []string
}

// Render produces the report text: the total to 2 decimal places, the elapsed
// time to 4 decimal places, and one " - " line per row-level error.
func (r Report) Render() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total sales: $%.2f\n", r.TotalCost)
	fmt.Fprintf(&b, "Execution time: %.4f seconds\n", r.Elapsed.Seconds())
	if len(r.Errors) > 0 {
		b.WriteString("Errors found:\n")
		for _, e := range r.Errors {
			fmt.Fprintf(&b, " - %s\n", e)
		}
	}
	return b.String()
}

// Reporter writes rendered reports to the console and to the results file.
type Reporter struct {
	logger *slog.Logger
	out    io.Writer
	file   string
}

// NewReporter creates a Reporter writing to out and to the named results file.
func NewReporter(logger *slog.Logger, out io.Writer, file string) *Reporter {
	return &Reporter{
		logger: logger,
		out:    out,
		file:   file,
	}
}

// Write renders the report, prints it to the console, and overwrites the
// results file with the same text. The console report is emitted even when
// persisting the file fails.
func (r *Reporter) Write(rep Report) error {
	text := rep.Render()
	if _, err := io.WriteString(r.out, text); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	if err := os.WriteFile(r.file, []byte(text), 0o644); err != nil {
		return fmt.Errorf("write results file %s: %w", r.file, err)
	}
	r.logger.Info("results file written", slog.String("path", r.file))
	return nil
}
