package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alanw/fintrack/internal/charts"
	"github.com/alanw/fintrack/internal/config"
	"github.com/alanw/fintrack/internal/ledger"
	"github.com/alanw/fintrack/internal/tui"
)

func main() {
	file := flag.String("file", "", "ledger CSV to report on (skips the interactive prompts)")
	limit := flag.Float64("limit", 0, "monthly spending limit, used with -file")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	formats, err := config.LoadFormats()
	if err != nil {
		log.Printf("warn: using built-in formats: %v", err)
	}

	if *file != "" {
		if err := runReport(os.Stdout, *file, *limit, cfg, formats); err != nil {
			log.Fatalf("report: %v", err)
		}
		return
	}

	p := tea.NewProgram(tui.New(cfg, formats), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

// runReport executes the non-interactive path: load, validate the limit,
// print every report section in workflow order. Unlike the TUI there is
// no prompt to retry on, so invalid input is fatal.
func runReport(w io.Writer, path string, limit float64, cfg config.Config, formats ledger.Formats) error {
	if limit <= 0 {
		return fmt.Errorf("limit must be greater than zero")
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(cfg.Ledger.Dir, path)
	}
	res, err := ledger.Load(path, formats)
	if err != nil {
		return err
	}

	st := charts.DefaultStyle(cfg.Chart.Width, cfg.Chart.Height)
	for _, section := range tui.ReportSections(res, limit, st) {
		if _, err := fmt.Fprintln(w, section); err != nil {
			return err
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
	}
	return nil
}
