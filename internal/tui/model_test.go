package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alanw/fintrack/internal/config"
	"github.com/alanw/fintrack/internal/ledger"
)

const testCSV = `Date,Amount
2024-01-05,50
2024-01-20,80
2024-02-10,200
`

func testModel(t *testing.T) (Model, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "transactions.csv")
	if err := os.WriteFile(path, []byte(testCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := config.Config{
		Chart:  config.ChartConfig{Width: 72, Height: 12},
		Ledger: config.LedgerConfig{Dir: dir},
	}
	return New(cfg, ledger.DefaultFormats()), path
}

func enter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

func TestStartsInFilePrompt(t *testing.T) {
	m, _ := testModel(t)
	if m.state != statePickFile {
		t.Fatalf("state = %d, want statePickFile", m.state)
	}
	v := m.View()
	if !strings.Contains(v, "Welcome to the Personal Finance Tracker!") {
		t.Error("view missing welcome line")
	}
	if !strings.Contains(v, "transactions.csv") {
		t.Error("view missing file name placeholder")
	}
}

func TestEmptyFileNameKeepsPrompting(t *testing.T) {
	m, _ := testModel(t)
	next, cmd := m.Update(enter())
	m = next.(Model)
	if cmd != nil {
		t.Error("empty entry should not trigger a load")
	}
	if m.state != statePickFile {
		t.Errorf("state = %d, want statePickFile", m.state)
	}
	if !strings.Contains(m.status, "Enter a file name.") {
		t.Errorf("status = %q", m.status)
	}
}

func TestLoadFailureStaysOnFilePrompt(t *testing.T) {
	m, _ := testModel(t)
	m.input.SetValue("missing.csv")
	next, cmd := m.Update(enter())
	m = next.(Model)
	if cmd == nil {
		t.Fatal("expected a load command")
	}
	next, _ = m.Update(cmd())
	m = next.(Model)
	if m.state != statePickFile {
		t.Errorf("state = %d, want statePickFile after failed load", m.state)
	}
	if !strings.Contains(m.status, "try again") {
		t.Errorf("status = %q, want a retry hint", m.status)
	}
}

func TestLoadSuccessMovesToLimitPrompt(t *testing.T) {
	m, _ := testModel(t)
	m.input.SetValue("transactions.csv")
	next, cmd := m.Update(enter())
	m = next.(Model)
	if cmd == nil {
		t.Fatal("expected a load command")
	}
	next, _ = m.Update(cmd())
	m = next.(Model)
	if m.state != stateSetLimit {
		t.Fatalf("state = %d, want stateSetLimit", m.state)
	}
	if len(m.result.Transactions) != 3 {
		t.Errorf("loaded %d transactions, want 3", len(m.result.Transactions))
	}
	if !strings.Contains(m.status, "Loaded 3 transactions") {
		t.Errorf("status = %q", m.status)
	}
	if !strings.Contains(m.View(), "monthly spending limit") {
		t.Error("view missing limit prompt")
	}
}

func TestBadLimitKeepsPrompting(t *testing.T) {
	m := loadedModel(t)
	m.input.SetValue("not-a-number")
	next, _ := m.Update(enter())
	m = next.(Model)
	if m.state != stateSetLimit {
		t.Errorf("state = %d, want stateSetLimit", m.state)
	}
	if !strings.Contains(m.status, "positive number") {
		t.Errorf("status = %q", m.status)
	}
}

func TestValidLimitRendersReport(t *testing.T) {
	m := loadedModel(t)
	m.input.SetValue("150")
	next, _ := m.Update(enter())
	m = next.(Model)
	if m.state != stateReport {
		t.Fatalf("state = %d, want stateReport", m.state)
	}
	full := strings.Join(m.lines, "\n")
	for _, want := range []string{
		"Monthly Spending",
		"2024-01",
		"$130.00",
		"2024-02: $200.00 (over your limit of $150.00)",
		"Suggested monthly budget based on your history",
		"Thanks for using the Personal Finance Tracker!",
	} {
		if !strings.Contains(full, want) {
			t.Errorf("report missing %q", want)
		}
	}
}

func TestReportScrollAndQuit(t *testing.T) {
	m := loadedModel(t)
	m.input.SetValue("150")
	next, _ := m.Update(enter())
	m = next.(Model)
	m.height = 10 // small window so the report overflows

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("j")})
	m = next.(Model)
	if m.scroll != 1 {
		t.Errorf("scroll = %d after j, want 1", m.scroll)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	m = next.(Model)
	if m.scroll != 0 {
		t.Errorf("scroll = %d after k, want 0", m.scroll)
	}
	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("G")})
	m = next.(Model)
	if m.scroll != m.maxScroll() {
		t.Errorf("scroll = %d after G, want %d", m.scroll, m.maxScroll())
	}

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	if cmd == nil {
		t.Fatal("q should quit")
	}
	if msg := cmd(); msg != tea.Quit() {
		t.Errorf("q produced %v, want quit", msg)
	}
}

func TestCtrlCQuitsAnywhere(t *testing.T) {
	m, _ := testModel(t)
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyCtrlC})
	if cmd == nil {
		t.Fatal("ctrl+c should quit")
	}
}

// loadedModel runs the file-picking state to completion.
func loadedModel(t *testing.T) Model {
	t.Helper()
	m, _ := testModel(t)
	m.input.SetValue("transactions.csv")
	next, cmd := m.Update(enter())
	m = next.(Model)
	next, _ = m.Update(cmd())
	return next.(Model)
}
