package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alanw/fintrack/internal/config"
	"github.com/alanw/fintrack/internal/ledger"
)

func writeLedger(t *testing.T, csv string) (config.Config, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "transactions.csv")
	if err := os.WriteFile(path, []byte(csv), 0o644); err != nil {
		t.Fatal(err)
	}
	return config.Config{
		Chart:  config.ChartConfig{Width: 72, Height: 12},
		Ledger: config.LedgerConfig{Dir: dir},
	}, "transactions.csv"
}

func TestRunReportPrintsAllSections(t *testing.T) {
	cfg, file := writeLedger(t, `Date,Amount
2024-01-05,50
2024-01-20,80
2024-02-10,200
`)
	var out strings.Builder
	if err := runReport(&out, file, 150, cfg, ledger.DefaultFormats()); err != nil {
		t.Fatalf("runReport: %v", err)
	}
	got := out.String()
	for _, want := range []string{
		"--- Monthly Spending ---",
		"2024-01: $130.00",
		"--- Overspending Alerts ---",
		"2024-02: $200.00 (over your limit of $150.00)",
		"Suggested monthly budget based on your history",
		"Highest Spending Month",
		"Quarterly Spending",
		"Cumulative Spending Over Time",
		"--- Monthly Spending vs. Average ---",
		"Total transactions recorded: 3",
		"Thanks for using the Personal Finance Tracker!",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRunReportRejectsNonPositiveLimit(t *testing.T) {
	cfg, file := writeLedger(t, "Date,Amount\n2024-01-05,50\n")
	var out strings.Builder
	if err := runReport(&out, file, 0, cfg, ledger.DefaultFormats()); err == nil {
		t.Fatal("expected error for zero limit")
	}
}

func TestRunReportMissingFile(t *testing.T) {
	cfg, _ := writeLedger(t, "Date,Amount\n")
	var out strings.Builder
	if err := runReport(&out, "nope.csv", 100, cfg, ledger.DefaultFormats()); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestRunReportReportsDroppedRows(t *testing.T) {
	cfg, file := writeLedger(t, `Date,Amount
2024-01-05,50
not-a-date,80
2024-02-10,oops
`)
	var out strings.Builder
	if err := runReport(&out, file, 100, cfg, ledger.DefaultFormats()); err != nil {
		t.Fatalf("runReport: %v", err)
	}
	if !strings.Contains(out.String(), "Skipped 2 row(s)") {
		t.Error("output missing dropped-row diagnostic")
	}
}
