package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/alanw/fintrack/internal/ledger"
)

// formatsFile is the top-level TOML structure of formats.toml.
type formatsFile struct {
	Ledger ledgerFormats `toml:"ledger"`
}

type ledgerFormats struct {
	DateLayouts []string `toml:"date_layouts"` // Go reference-time layouts, tried in order
	AmountStrip string   `toml:"amount_strip"` // chars removed before parsing amounts
}

const defaultFormatsTOML = `# fintrack ledger parsing rules
# date_layouts are Go reference-time layouts tried in order.

[ledger]
date_layouts = ["2006-01-02", "01/02/2006", "2/01/2006", "Jan 2, 2006"]
amount_strip = ",$"
`

// formatsPath returns the full path to the formats.toml file.
func formatsPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "fintrack", "formats.toml"), nil
}

// LoadFormats loads ledger parsing rules from formats.toml, creating the
// file with defaults when missing. Any failure falls back to the built-in
// defaults alongside the error.
func LoadFormats() (ledger.Formats, error) {
	path, err := formatsPath()
	if err != nil {
		return ledger.DefaultFormats(), err
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
			return ledger.DefaultFormats(), fmt.Errorf("create config dir: %w", mkErr)
		}
		if wErr := os.WriteFile(path, []byte(defaultFormatsTOML), 0o644); wErr != nil {
			return ledger.DefaultFormats(), fmt.Errorf("write default formats: %w", wErr)
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return ledger.DefaultFormats(), fmt.Errorf("read formats: %w", err)
	}
	f, err := parseFormats(data)
	if err != nil {
		return ledger.DefaultFormats(), err
	}
	return f, nil
}

// parseFormats parses TOML bytes into ledger parsing rules.
func parseFormats(data []byte) (ledger.Formats, error) {
	var file formatsFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return ledger.Formats{}, fmt.Errorf("parse formats.toml: %w", err)
	}
	if len(file.Ledger.DateLayouts) == 0 {
		return ledger.Formats{}, fmt.Errorf("no date layouts defined in formats.toml")
	}
	reference := time.Date(2006, time.January, 2, 0, 0, 0, 0, time.UTC)
	for i, layout := range file.Ledger.DateLayouts {
		if _, err := time.Parse(layout, reference.Format(layout)); err != nil {
			return ledger.Formats{}, fmt.Errorf("date_layouts[%d] %q is not a valid layout", i, layout)
		}
	}
	return ledger.Formats{
		DateLayouts: file.Ledger.DateLayouts,
		AmountStrip: file.Ledger.AmountStrip,
	}, nil
}
