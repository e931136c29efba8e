package config

import (
	"fmt"
	"strings"
)

type ReportConfig struct {
	// File is the name of the results file written next to the console report.
	File string `koanf:"file"`
}

// String returns a string representation of the report configuration.
func (c *ReportConfig) String() string {
	var b strings.Builder
	b.WriteString("\n--- Report ---\n")
	b.WriteString(fmt.Sprintf("  file: %s\n", c.File))
	return b.String()
}

func (c *ReportConfig) Validate() error {
	if strings.TrimSpace(c.File) == "" {
		return fmt.Errorf("report file name is not configured")
	}
	return nil
}
