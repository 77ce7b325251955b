package store

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config drives one extraction run. There is no process-wide mutable
// configuration: the loaded value is passed explicitly into the
// document driver and the export step.
type Config struct {
	// MailDir is the directory holding saved confirmation documents
	// (.html files).
	MailDir string `yaml:"mail_dir"`

	Export struct {
		// Format selects the spreadsheet flavor: "xlsx" or "csv".
		Format      string `yaml:"format"`
		LedgerFile  string `yaml:"ledger_file"`
		SummaryFile string `yaml:"summary_file"`
	} `yaml:"export"`
}

func (c *Config) Validate() error {
	if c.MailDir == "" {
		return errors.New("mail_dir cannot be empty")
	}
	if c.Export.Format != "xlsx" && c.Export.Format != "csv" {
		return fmt.Errorf("invalid export.format '%s': must be 'xlsx' or 'csv'", c.Export.Format)
	}
	if c.Export.LedgerFile == "" || c.Export.SummaryFile == "" {
		return errors.New("export.ledger_file and export.summary_file cannot be empty")
	}
	return nil
}

// Default returns the configuration used when no config file exists.
func Default() *Config {
	var c Config
	c.applyDefaults()
	return &c
}

func (c *Config) applyDefaults() {
	if c.MailDir == "" {
		c.MailDir = "mails"
	}
	if c.Export.Format == "" {
		c.Export.Format = "xlsx"
	}
	if c.Export.LedgerFile == "" {
		c.Export.LedgerFile = "trade_ledger." + c.Export.Format
	}
	if c.Export.SummaryFile == "" {
		c.Export.SummaryFile = "cost_summary." + c.Export.Format
	}
}

func LoadConfig(path string) (*Config, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var c Config
	if err := yaml.Unmarshal(b, &c); err != nil {
		return nil, err
	}

	c.applyDefaults()

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &c, nil
}
