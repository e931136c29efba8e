package config

import (
	"fmt"
	"strings"

	"github.com/mreyes/salesreport/pkg/config"
	"github.com/mreyes/salesreport/pkg/config/configloader"
)

var _ configloader.Validator = (*Config)(nil)

type Config struct {
	Log    config.LogConfig    `koanf:"log"`
	Report config.ReportConfig `koanf:"report"`
}

func (c *Config) String() string {
	var b strings.Builder

	b.WriteString("\n--- Observability & Logging ---\n")
	b.WriteString(fmt.Sprintf("  log.level: %s\n", c.Log.Level))

	b.WriteString("\n--- Report ---\n")
	b.WriteString(fmt.Sprintf("  report.file: %s\n", c.Report.File))

	return b.String()
}

// Validate checks if the configuration values are valid
func (c *Config) Validate() error {
	if err := c.Log.Validate(); err != nil {
		return err
	}
	if err := c.Report.Validate(); err != nil {
		return err
	}
	return nil
}
