package report

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alanw/fintrack/internal/ledger"
	"github.com/alanw/fintrack/internal/theme"
)

var (
	headingStyle = lipgloss.NewStyle().Foreground(theme.Peach).Bold(true)
	labelStyle   = lipgloss.NewStyle().Foreground(theme.Overlay1)
	valueStyle   = lipgloss.NewStyle().Foreground(theme.Text)
	alertStyle   = lipgloss.NewStyle().Foreground(theme.Red)
	okStyle      = lipgloss.NewStyle().Foreground(theme.Green)
)

func heading(title string) string {
	return headingStyle.Render("--- " + title + " ---")
}

// RenderMonthly lists each month's total in period order.
func RenderMonthly(monthly []MonthTotal) string {
	lines := []string{heading("Monthly Spending")}
	if len(monthly) == 0 {
		lines = append(lines, labelStyle.Render("  No spending recorded."))
	}
	for _, mt := range monthly {
		lines = append(lines, fmt.Sprintf("  %s: %s", labelStyle.Render(mt.Month.String()), valueStyle.Render(FormatMoney(mt.Total))))
	}
	return strings.Join(lines, "\n")
}

// RenderAlerts lists every month whose total strictly exceeds the limit.
// No alerts is reported explicitly, not silently.
func RenderAlerts(alerts []MonthTotal, limit float64) string {
	lines := []string{heading("Overspending Alerts")}
	if len(alerts) == 0 {
		lines = append(lines, okStyle.Render("  None."))
		return strings.Join(lines, "\n")
	}
	for _, mt := range alerts {
		lines = append(lines, alertStyle.Render(
			fmt.Sprintf("  %s: %s (over your limit of %s)", mt.Month, FormatMoney(mt.Total), FormatMoney(limit))))
	}
	return strings.Join(lines, "\n")
}

// RenderSuggestedBudget prints the 90%-of-average budget suggestion.
func RenderSuggestedBudget(monthly []MonthTotal) string {
	return labelStyle.Render("Suggested monthly budget based on your history: ") +
		valueStyle.Render(FormatMoney(SuggestedBudget(monthly)))
}

// RenderAdditional prints the highest spending month and the cumulative
// totals. With no data it prints a single notice instead.
func RenderAdditional(monthly, cumulative []MonthTotal) string {
	highest, ok := HighestMonth(monthly)
	if !ok {
		return labelStyle.Render("No data available for additional reports.")
	}
	lines := []string{
		labelStyle.Render("Highest Spending Month: ") +
			valueStyle.Render(fmt.Sprintf("%s  (%s)", highest.Month, FormatMoney(highest.Total))),
		heading("Cumulative Spending"),
	}
	for _, mt := range cumulative {
		lines = append(lines, fmt.Sprintf("  %s %s", labelStyle.Render("Through "+mt.Month.String()+":"), valueStyle.Render(FormatMoney(mt.Total))))
	}
	return strings.Join(lines, "\n")
}

// RenderComparison prints each month against the average. The comparison
// is strict: a month exactly on the average reads "below".
func RenderComparison(monthly []MonthTotal) string {
	avg := Average(monthly)
	lines := []string{heading("Monthly Spending vs. Average")}
	for _, mt := range monthly {
		diff := mt.Total - avg
		direction := "below"
		if diff > 0 {
			direction = "above"
		}
		lines = append(lines, fmt.Sprintf("  %s: %s %s",
			labelStyle.Render(mt.Month.String()),
			valueStyle.Render(FormatMoney(mt.Total)),
			labelStyle.Render(fmt.Sprintf("(%s %s average %s)", FormatMoney(math.Abs(diff)), direction, FormatMoney(avg)))))
	}
	return strings.Join(lines, "\n")
}

// RenderSummary prints the transaction count and size-bucket breakdown.
func RenderSummary(txns []ledger.Transaction) string {
	b := SizeBuckets(txns)
	lines := []string{
		labelStyle.Render("Total transactions recorded: ") + valueStyle.Render(FormatCount(len(txns))),
		fmt.Sprintf("  %s %s", labelStyle.Render("Small  (< $100):      "), valueStyle.Render(FormatCount(b.Small))),
		fmt.Sprintf("  %s %s", labelStyle.Render("Medium ($100 - $500): "), valueStyle.Render(FormatCount(b.Medium))),
		fmt.Sprintf("  %s %s", labelStyle.Render("Large  (>= $500):     "), valueStyle.Render(FormatCount(b.Large))),
	}
	return strings.Join(lines, "\n")
}

// RenderDropped reports the dropped-row diagnostic, or "" when no rows
// were dropped.
func RenderDropped(dropped int) string {
	if dropped <= 0 {
		return ""
	}
	return labelStyle.Render(fmt.Sprintf("Skipped %s row(s) with unparseable dates or amounts.", FormatCount(dropped)))
}
