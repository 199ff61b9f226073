// Package tui drives the interactive reporting workflow: pick a ledger
// file, set a spending limit, read the report. The two input states loop
// until their value is accepted; everything after that runs straight
// through.
package tui

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"github.com/alanw/fintrack/internal/charts"
	"github.com/alanw/fintrack/internal/config"
	"github.com/alanw/fintrack/internal/ledger"
	"github.com/alanw/fintrack/internal/report"
)

type state int

const (
	statePickFile state = iota
	stateSetLimit
	stateReport
)

type loadDoneMsg struct {
	res  ledger.Result
	err  error
	file string
}

// Model is the Bubble Tea model for the whole session.
type Model struct {
	cfg     config.Config
	formats ledger.Formats

	state   state
	input   textinput.Model
	status  string
	loading bool

	result ledger.Result
	file   string
	limit  float64

	lines  []string
	scroll int

	width  int
	height int
}

// New builds the initial model in the file-picking state.
func New(cfg config.Config, formats ledger.Formats) Model {
	inp := textinput.New()
	inp.Placeholder = "transactions.csv"
	inp.Prompt = "> "
	inp.TextStyle = inputStyle
	inp.Focus()
	return Model{
		cfg:     cfg,
		formats: formats,
		input:   inp,
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// loadCmd reads the ledger off the Update loop.
func loadCmd(path, baseDir string, f ledger.Formats) tea.Cmd {
	return func() tea.Msg {
		if !filepath.IsAbs(path) {
			path = filepath.Join(baseDir, path)
		}
		res, err := ledger.Load(path, f)
		return loadDoneMsg{res: res, err: err, file: filepath.Base(path)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.state == stateReport {
			m.buildReport()
		}
		return m, nil
	case loadDoneMsg:
		return m.handleLoadDone(msg)
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleLoadDone(msg loadDoneMsg) (tea.Model, tea.Cmd) {
	m.loading = false
	if msg.err != nil {
		m.status = errorStyle.Render(fmt.Sprintf("Error: %v. Check your file name and format, then try again.", msg.err))
		return m, nil
	}
	m.result = msg.res
	m.file = msg.file
	m.state = stateSetLimit
	m.input.Reset()
	m.input.Placeholder = "1500"
	m.status = loadedStyle.Render(fmt.Sprintf("Loaded %s transactions from %s.",
		report.FormatCount(len(msg.res.Transactions)), msg.file))
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	switch m.state {
	case statePickFile:
		if msg.Type == tea.KeyEnter {
			path := strings.TrimSpace(m.input.Value())
			if path == "" {
				m.status = errorStyle.Render("Enter a file name.")
				return m, nil
			}
			if m.loading {
				return m, nil
			}
			m.loading = true
			m.status = statusStyle.Render("Loading...")
			return m, loadCmd(path, m.cfg.Ledger.Dir, m.formats)
		}
	case stateSetLimit:
		if msg.Type == tea.KeyEnter {
			limit, err := validateLimit(m.input.Value())
			if err != nil {
				m.status = errorStyle.Render(fmt.Sprintf("Error: %v. Please enter a positive number.", err))
				return m, nil
			}
			m.limit = limit
			m.state = stateReport
			m.status = ""
			m.buildReport()
			return m, nil
		}
	case stateReport:
		switch msg.String() {
		case "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.scroll > 0 {
				m.scroll--
			}
			return m, nil
		case "down", "j":
			if m.scroll < m.maxScroll() {
				m.scroll++
			}
			return m, nil
		case "g":
			m.scroll = 0
			return m, nil
		case "G":
			m.scroll = m.maxScroll()
			return m, nil
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// buildReport renders every section at the current width and flattens
// them into scrollable lines.
func (m *Model) buildReport() {
	width := m.cfg.Chart.Width
	if m.width > 0 && m.width-4 < width {
		width = m.width - 4
	}
	st := chartStyle(width, m.cfg.Chart.Height)
	sections := ReportSections(m.result, m.limit, st)
	m.lines = strings.Split(strings.Join(sections, "\n\n"), "\n")
	m.scroll = 0
}

func (m Model) visibleLines() int {
	if m.height == 0 {
		return 24
	}
	v := m.height - 4 // title, blank, status, footer
	if v < 5 {
		v = 5
	}
	return v
}

func (m Model) maxScroll() int {
	max := len(m.lines) - m.visibleLines()
	if max < 0 {
		return 0
	}
	return max
}

func (m Model) View() string {
	switch m.state {
	case statePickFile:
		return m.promptView(
			"Welcome to the Personal Finance Tracker!",
			"Enter the name of your CSV file (e.g., transactions.csv):",
			"enter load · ctrl+c quit",
		)
	case stateSetLimit:
		return m.promptView(
			"Spending Limit",
			"Enter your monthly spending limit (e.g., 1500):",
			"enter continue · ctrl+c quit",
		)
	default:
		return m.reportView()
	}
}

func (m Model) promptView(title, prompt, footer string) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n\n")
	b.WriteString(promptStyle.Render(prompt))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(m.status)
	b.WriteString("\n")
	b.WriteString(footerStyle.Render(footer))
	return b.String()
}

func (m Model) reportView() string {
	visible := m.visibleLines()
	end := m.scroll + visible
	if end > len(m.lines) {
		end = len(m.lines)
	}
	rows := m.lines[m.scroll:end]
	if m.width > 0 {
		clipped := make([]string, len(rows))
		for i, line := range rows {
			clipped[i] = ansi.Truncate(line, m.width, "…")
		}
		rows = clipped
	}
	window := strings.Join(rows, "\n")

	pos := "bottom"
	if m.maxScroll() > 0 && m.scroll < m.maxScroll() {
		pos = fmt.Sprintf("%d%%", m.scroll*100/m.maxScroll())
	}
	header := titleStyle.Render(fmt.Sprintf("Spending Report — %s", m.file))
	footer := footerStyle.Render(fmt.Sprintf("j/k scroll (%s) · q quit", pos))
	return header + "\n\n" + window + "\n" + footer
}

// ReportSections renders every report section and chart in the fixed
// workflow order. Plain console mode prints these directly.
func ReportSections(res ledger.Result, limit float64, st charts.Style) []string {
	monthly := report.MonthlyTotals(res.Transactions)
	quarterly := report.QuarterlyTotals(res.Transactions)
	cumulative := report.Cumulative(monthly)

	sections := []string{
		report.RenderMonthly(monthly),
		report.RenderAlerts(report.Alerts(monthly, limit), limit),
		report.RenderSuggestedBudget(monthly),
		report.RenderAdditional(monthly, cumulative),
		charts.QuarterlyBars(st, quarterly),
		charts.MonthlyBars(st, monthly),
		charts.CumulativeLine(st, cumulative),
		report.RenderComparison(monthly),
		report.RenderSummary(res.Transactions),
	}
	if diag := report.RenderDropped(res.Dropped); diag != "" {
		sections = append(sections, diag)
	}
	sections = append(sections, statusStyle.Render("Thanks for using the Personal Finance Tracker!"))
	return sections
}
